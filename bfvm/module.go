package bfvm

import (
	"io"

	"github.com/judsonx/brainfck/configs"
	"github.com/judsonx/brainfck/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

type NewMachine func(code []byte, input io.ByteReader, output io.ByteWriter) *VM

func (Module) NewMachine(
	logger logs.Logger,
	maxOps MaxOps,
) NewMachine {
	return func(code []byte, input io.ByteReader, output io.ByteWriter) *VM {
		vm := NewVM(code)
		vm.Input = input
		vm.Output = output
		vm.MaxOps = int(maxOps)
		vm.Logger = logger
		return vm
	}
}
