package dumps

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reusee/pseudo/nodes"
	"github.com/reusee/pseudo/tokens"
	"go.yaml.in/yaml/v3"
)

// Tree writes the syntax tree in format.
func Tree(w io.Writer, format Format, tree nodes.Node) error {
	if format == FormatTree {
		return nodes.Fprint(w, tree)
	}
	return encode(w, format, nodes.Export(tree))
}

// Tokens writes a token list in format. The tree format is one token per
// line, prefixed with its position.
func Tokens(w io.Writer, format Format, toks []tokens.Token) error {
	if format == FormatTree {
		for _, tok := range toks {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", tok.Pos, tok); err != nil {
				return err
			}
		}
		return nil
	}
	return encode(w, format, tokens.Export(toks))
}

func encode(w io.Writer, format Format, value any) error {
	switch format {

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()

	}
	return fmt.Errorf("unknown format %q", format)
}
