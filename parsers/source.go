package parsers

import (
	"fmt"
	"io"

	"github.com/reusee/pseudo/nodes"
	"github.com/reusee/pseudo/tokens"
)

// ParseSource reads all of r, then scans and parses it. Errors are prefixed
// with name and still unwrap to *ParseError or tokens.LexicalErrors.
func ParseSource(name string, r io.Reader) (*nodes.Expressions, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	toks, err := tokens.Scan(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tree, err := Parse(toks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tree, nil
}
