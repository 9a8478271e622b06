package bfconfigs

import (
	"github.com/judsonx/brainfck/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
