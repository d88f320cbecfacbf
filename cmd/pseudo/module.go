package main

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/pseudo/configs"
	"github.com/reusee/pseudo/debugs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Debugs  debugs.Module
}

// Output receives dumps and diagnostics.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
