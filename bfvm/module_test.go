package bfvm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/judsonx/brainfck/configs"
	"github.com/judsonx/brainfck/modes"
	"github.com/reusee/dscope"
)

func TestNewMachine(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		newMachine NewMachine,
	) {
		out := new(bytes.Buffer)
		vm := newMachine(
			[]byte(",+."),
			strings.NewReader("0"),
			out,
		)
		if vm.MaxOps != int(DefaultMaxOps) {
			t.Fatalf("got %d", vm.MaxOps)
		}
		if _, err := vm.Run(t.Context()); err != nil {
			t.Fatal(err)
		}
		if out.String() != "1" {
			t.Fatalf("got %q", out.String())
		}
	})
}
