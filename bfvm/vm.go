package bfvm

import (
	"io"
	"log/slog"

	"github.com/judsonx/brainfck/logs"
)

// DefaultMaxOps is the dispatch ceiling a VM starts with. A run that
// dispatches more recognized instructions than this fails with
// ErrOpLimit. Zero or negative disables the ceiling.
const DefaultMaxOps = 100_000

// VM runs one program over its own Tape. A VM is single-use and
// single-threaded; concurrent runs each need their own VM.
type VM struct {
	Code   []byte
	Input  io.ByteReader
	Output io.ByteWriter
	MaxOps int
	Logger logs.Logger

	tape  *Tape
	loops []int
	pc    int
	ops   int
}

func NewVM(code []byte) *VM {
	return &VM{
		Code:   code,
		MaxOps: DefaultMaxOps,
		Logger: slog.Default(),
		tape:   NewTape(),
	}
}

// Tape exposes the cell memory for diagnostics. The tape is owned by
// the VM; mutating it mid-run is undefined.
func (v *VM) Tape() *Tape {
	return v.tape
}

// Ops reports how many instructions have been dispatched so far.
func (v *VM) Ops() int {
	return v.ops
}
