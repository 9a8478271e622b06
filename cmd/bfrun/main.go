package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/judsonx/brainfck/bfconfigs"
	"github.com/judsonx/brainfck/bfvm"
	"github.com/judsonx/brainfck/cmds"
	"github.com/judsonx/brainfck/logs"
	"github.com/judsonx/brainfck/modes"
	"github.com/judsonx/brainfck/syncs"
	"github.com/reusee/dscope"
)

var (
	fileFlags = cmds.Collect[string]("-file")
	jobsFlag  = cmds.Var[int]("-jobs")
)

func main() {
	cmds.Execute(os.Args[1:])

	paths := *fileFlags
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -file <source> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(bfvm.Module),
		new(bfconfigs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newMachine bfvm.NewMachine,
	) {
		ctx := context.Background()

		// a single program reads the process stdin; parallel runs
		// each get empty input, one interpretation per machine
		if len(paths) == 1 {
			code, err := os.ReadFile(paths[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			stdout := bufio.NewWriter(os.Stdout)
			vm := newMachine(code, bufio.NewReader(os.Stdin), stdout)
			ops, err := vm.Run(ctx)
			stdout.Flush()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", paths[0], err)
				os.Exit(1)
			}
			logger.Debug("run done", "file", paths[0], "ops", ops)
			return
		}

		jobs := *jobsFlag
		if jobs < 1 {
			jobs = 1
		}

		type result struct {
			output []byte
			ops    int
			err    error
		}
		results := make([]result, len(paths))

		sem := syncs.NewSemaphore(jobs)
		var wg sync.WaitGroup
		for i, path := range paths {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem.Acquire()
				defer sem.Release()

				code, err := os.ReadFile(path)
				if err != nil {
					results[i].err = err
					return
				}
				out := new(bytes.Buffer)
				var input io.ByteReader = strings.NewReader("")
				vm := newMachine(code, input, out)
				ops, err := vm.Run(ctx)
				results[i] = result{
					output: out.Bytes(),
					ops:    ops,
					err:    err,
				}
			}()
		}
		wg.Wait()

		failed := false
		for i, path := range paths {
			res := results[i]
			os.Stdout.Write(res.output)
			if res.err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, res.err)
				failed = true
				continue
			}
			logger.Debug("run done", "file", path, "ops", res.ops)
		}
		if failed {
			os.Exit(1)
		}
	})
}
