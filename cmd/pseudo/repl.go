package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/pseudo/configs"
	"github.com/reusee/pseudo/logs"
	"github.com/reusee/pseudo/parsers"
	"github.com/reusee/pseudo/tokens"
)

const continuationPrompt = "... "

type RunREPL func(ctx context.Context)

func (Module) RunREPL(
	prompt configs.Prompt,
	historyFile configs.HistoryFile,
	process Process,
	output Output,
	logger logs.Logger,
) RunREPL {
	return func(ctx context.Context) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			logger.ErrorContext(ctx, "readline", "error", err)
			return
		}
		defer rl.Close()

		var buf strings.Builder
		for n := 1; ; n++ {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				break
			}
			if buf.Len() == 0 && strings.TrimSpace(line) == "" {
				continue
			}
			buf.WriteString(line)
			buf.WriteString("\n")
			if incomplete(buf.String()) {
				rl.SetPrompt(continuationPrompt)
				continue
			}
			process(ctx, output, fmt.Sprintf("repl:%d", n), buf.String())
			buf.Reset()
			rl.SetPrompt(string(prompt))
		}
	}
}

// incomplete reports whether source scans but its parse runs out of
// tokens, so more lines may complete it.
func incomplete(source string) bool {
	if strings.TrimSpace(source) == "" {
		return false
	}
	toks, err := tokens.Scan(source)
	if err != nil {
		return false
	}
	_, err = parsers.Parse(toks)
	var parseErr *parsers.ParseError
	return errors.As(err, &parseErr) && parseErr.AtEnd
}
