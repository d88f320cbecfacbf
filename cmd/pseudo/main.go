package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/pseudo/cmds"
	"github.com/reusee/pseudo/modes"
	"golang.org/x/term"
)

var files []string

var devFlag = cmds.Switch("-dev")

func addFiles(pattern string) {
	paths, err := filepath.Glob(pattern)
	if err != nil || len(paths) == 0 {
		// reported when opened
		files = append(files, pattern)
		return
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, path)
	}
}

func init() {
	cmds.Define("file", cmds.Func(addFiles).
		Desc("parse files matching the pattern").
		Alias("-file"))
	cmds.Fallback(cmds.Func(addFiles))
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx := context.Background()

	var mode any = modes.ForProduction()
	if *devFlag {
		mode = modes.ForDevelopment()
	}

	ok := true
	dscope.New(
		new(Module),
		mode,
	).Call(func(
		processFiles ProcessFiles,
		processLines ProcessLines,
		runREPL RunREPL,
	) {
		switch {

		case len(files) > 0:
			ok = processFiles(ctx, files)

		case term.IsTerminal(int(os.Stdin.Fd())):
			runREPL(ctx)

		default:
			ok = processLines(ctx, os.Stdin)

		}
	})

	if !ok {
		os.Exit(1)
	}
}
