package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/reusee/pseudo/cmds"
	"github.com/reusee/pseudo/debugs"
	"github.com/reusee/pseudo/dumps"
	"github.com/reusee/pseudo/logs"
	"github.com/reusee/pseudo/parsers"
	"github.com/reusee/pseudo/syncs"
	"github.com/reusee/pseudo/tokens"
)

var (
	tokensFlag = cmds.Switch("-tokens")
	tapFlag    = cmds.Switch("-tap")
	jobsFlag   = cmds.Var[int]("-jobs")
)

// Process scans, parses and dumps one input to w, reporting diagnostics
// there too. It returns false if the input has errors.
type Process func(ctx context.Context, w io.Writer, name string, source string) bool

func (Module) Process(
	logger logs.Logger,
	newSpan logs.NewSpan,
	format dumps.Format,
	report Report,
	tap debugs.Tap,
) Process {
	return func(ctx context.Context, w io.Writer, name string, source string) bool {
		ctx, _ = newSpan(ctx, name)

		toks, err := tokens.Scan(source)
		if err != nil {
			var errs tokens.LexicalErrors
			if errors.As(err, &errs) {
				logger.WarnContext(ctx, "lexical errors", "count", len(errs))
			}
			report(w, err.Error())
			return false
		}

		if *tokensFlag {
			if err := dumps.Tokens(w, format, toks); err != nil {
				logger.ErrorContext(ctx, "dump tokens", "error", err)
				return false
			}
		}

		tree, err := parsers.Parse(toks)
		if err != nil {
			var parseErr *parsers.ParseError
			if !errors.As(err, &parseErr) {
				panic(err)
			}
			logger.WarnContext(ctx, "syntax error", "error", err)
			report(w, parseErr.Diagnose(source))
			return false
		}

		if err := dumps.Tree(w, format, tree); err != nil {
			logger.ErrorContext(ctx, "dump tree", "error", err)
			return false
		}
		logger.DebugContext(ctx, "parsed",
			"tokens", len(toks),
			"expressions", len(tree.List),
		)

		if *tapFlag {
			tap(ctx, name, debugs.TapInput(source, toks, tree))
		}

		return true
	}
}

// Jobs is the number of files processed at the same time.
type Jobs int

func (Module) Jobs() Jobs {
	if *tapFlag {
		// tap reads stdin
		return 1
	}
	if *jobsFlag > 0 {
		return Jobs(*jobsFlag)
	}
	return Jobs(runtime.NumCPU())
}

// ProcessFiles processes the files concurrently. Outputs are written in the
// order of paths.
type ProcessFiles func(ctx context.Context, paths []string) bool

func (Module) ProcessFiles(
	process Process,
	output Output,
	jobs Jobs,
	logger logs.Logger,
	newSpan logs.NewSpan,
) ProcessFiles {
	processFile := func(ctx context.Context, w io.Writer, path string) bool {
		content, err := os.ReadFile(path)
		if err != nil {
			ctx, _ = newSpan(ctx, path)
			err = logs.WrapSpan(ctx, fmt.Errorf("read file: %w", err))
			logger.ErrorContext(ctx, "read file", "error", err)
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		return process(ctx, w, path, string(content))
	}

	return func(ctx context.Context, paths []string) bool {
		if jobs == 1 {
			ok := true
			for _, path := range paths {
				if !processFile(ctx, output, path) {
					ok = false
				}
			}
			return ok
		}

		sem := syncs.NewSemaphore(int(jobs))
		bufs := make([]bytes.Buffer, len(paths))
		oks := make([]bool, len(paths))
		wg := new(sync.WaitGroup)
		for i, path := range paths {
			wg.Go(func() {
				sem.Acquire()
				defer sem.Release()
				oks[i] = processFile(ctx, &bufs[i], path)
			})
		}
		wg.Wait()

		ok := true
		for i := range paths {
			if _, err := bufs[i].WriteTo(output); err != nil {
				logger.ErrorContext(ctx, "write output", "error", err)
				return false
			}
			if !oks[i] {
				ok = false
			}
		}
		return ok
	}
}

// ProcessLines treats every non-blank line of r as a separate program.
type ProcessLines func(ctx context.Context, r io.Reader) bool

func (Module) ProcessLines(
	process Process,
	output Output,
	logger logs.Logger,
) ProcessLines {
	return func(ctx context.Context, r io.Reader) bool {
		ok := true
		scanner := bufio.NewScanner(r)
		for n := 1; scanner.Scan(); n++ {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !process(ctx, output, fmt.Sprintf("stdin:%d", n), line) {
				ok = false
			}
		}
		if err := scanner.Err(); err != nil {
			logger.ErrorContext(ctx, "read stdin", "error", err)
			return false
		}
		return ok
	}
}
