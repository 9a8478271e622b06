package bfvm

// The eight recognized opcodes. Any other byte in a program is a
// zero-cost no-op.
const (
	OpIncrement = '+'
	OpDecrement = '-'
	OpLeft      = '<'
	OpRight     = '>'
	OpOutput    = '.'
	OpInput     = ','
	OpLoopOpen  = '['
	OpLoopClose = ']'
)
