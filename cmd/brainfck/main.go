package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/judsonx/brainfck/bfconfigs"
	"github.com/judsonx/brainfck/bfvm"
	"github.com/judsonx/brainfck/cmds"
	"github.com/judsonx/brainfck/debugs"
	"github.com/judsonx/brainfck/logs"
	"github.com/judsonx/brainfck/modes"
	"github.com/judsonx/brainfck/problems"
	"github.com/reusee/dscope"
)

var debugFlag = cmds.Switch("-debug")

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(bfvm.Module),
		new(bfconfigs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newMachine bfvm.NewMachine,
		tap debugs.Tap,
	) {
		problem, err := problems.Read(bufio.NewReader(os.Stdin))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		stdout := bufio.NewWriter(os.Stdout)
		vm := newMachine(
			problem.Code,
			bytes.NewReader(problem.Input),
			stdout,
		)

		ctx, _ := newSpan(context.Background(), "")
		ops, runErr := vm.Run(ctx)
		if runErr == nil {
			stdout.WriteByte('\n')
		}
		// partial output stays written on failure
		stdout.Flush()

		if *debugFlag {
			globals := map[string]any{
				"tape": vm.Tape().Cells(),
				"pos":  vm.Tape().Pos(),
				"ops":  ops,
			}
			if runErr != nil {
				globals["err"] = runErr.Error()
			}
			tap(ctx, "machine", globals)
		}

		if runErr != nil {
			logger.Error("execution halted",
				"error", logs.WrapSpan(ctx, runErr),
				"ops", ops,
			)
			os.Exit(1)
		}
	})
}
