package bfvm

import (
	"github.com/judsonx/brainfck/cmds"
	"github.com/judsonx/brainfck/configs"
	"github.com/judsonx/brainfck/vars"
)

// MaxOps is the configured dispatch ceiling: flag first, then config
// file, then DefaultMaxOps. Negative disables the ceiling.
type MaxOps int

func (m MaxOps) ConfigExpr() string {
	return "MaxOps"
}

var _ configs.Configurable = MaxOps(0)

var maxOpsFlag = cmds.Var[int]("-max-ops")

func (Module) MaxOps(
	loader configs.Loader,
) MaxOps {
	if n := vars.FirstNonZero(
		*maxOpsFlag,
		configs.First[int](loader, "max_ops"),
	); n != 0 {
		return MaxOps(n)
	}
	return DefaultMaxOps
}
