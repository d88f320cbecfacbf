package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/pseudo/logs"
	"github.com/reusee/pseudo/nodes"
	"github.com/reusee/pseudo/parsers"
	"github.com/reusee/pseudo/tokens"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

// Globals converts globals for starlark and adds the front end functions:
// scan(source), parse(source) and line(source, n).
func Globals(globals map[string]any) starlark.StringDict {
	ret := starlark.StringDict{
		"scan":  starlark.NewBuiltin("scan", scanBuiltin),
		"parse": starlark.NewBuiltin("parse", parseBuiltin),
		"line":  toStarlarkValue(tokens.LineAt),
	}
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// TapInput binds what the command line tool has for one parsed input.
func TapInput(source string, toks []tokens.Token, tree *nodes.Expressions) map[string]any {
	return map[string]any{
		"source": source,
		"tokens": toks,
		"tree":   tree,
	}
}

func scanBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &source); err != nil {
		return nil, err
	}
	toks, err := tokens.Scan(source)
	if err != nil {
		return nil, err
	}
	return toStarlarkValue(toks), nil
}

func parseBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &source); err != nil {
		return nil, err
	}
	toks, err := tokens.Scan(source)
	if err != nil {
		return nil, err
	}
	tree, err := parsers.Parse(toks)
	if err != nil {
		return nil, err
	}
	return toStarlarkValue(tree), nil
}
