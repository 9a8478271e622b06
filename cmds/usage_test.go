package cmds

import "testing"

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Sub(map[string]*Command{
		"file": Func(func(path string) {
		}).Desc("run a source file"),
		"stdin": Func(func() {}).Desc("run source from standard input"),
	}).Desc("RUN"))
	executor.PrintUsage()
}
