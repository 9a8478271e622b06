package bfvm

import (
	"context"
	"io"
	"strings"
	"testing"
)

type discardOutput struct{}

func (discardOutput) WriteByte(byte) error {
	return nil
}

func BenchmarkVM_CounterLoop(b *testing.B) {
	// 255 decrements per pass over the loop
	code := []byte("-[-]")
	ctx := context.Background()
	for b.Loop() {
		vm := NewVM(code)
		vm.Input = strings.NewReader("")
		vm.Output = discardOutput{}
		vm.MaxOps = 0
		if _, err := vm.Run(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVM_Output(b *testing.B) {
	code := []byte(strings.Repeat("+.", 100))
	ctx := context.Background()
	for b.Loop() {
		vm := NewVM(code)
		vm.Input = strings.NewReader("")
		vm.Output = discardOutput{}
		if _, err := vm.Run(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

var _ io.ByteWriter = discardOutput{}
