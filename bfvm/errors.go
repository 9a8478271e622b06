package bfvm

import "errors"

var (
	// ErrTapeUnderflow: the pointer moved left of the first cell.
	ErrTapeUnderflow = errors.New("tape underflow")

	// ErrUnopenedLoop: a ']' with no active loop entry.
	ErrUnopenedLoop = errors.New("unopened loop")

	// ErrUnclosedLoop: a '[' with a zero guard whose forward scan hit
	// the end of the program without finding the matching ']'.
	ErrUnclosedLoop = errors.New("unclosed loop")

	// ErrOpLimit: the run dispatched more instructions than MaxOps allows.
	ErrOpLimit = errors.New("op limit exceeded")
)
