package parsers

import (
	"strings"

	"github.com/reusee/pseudo/nodes"
	"github.com/reusee/pseudo/tokens"
)

// Parse builds the syntax tree of a whole program. It stops at the first
// syntax error and returns no partial tree.
func Parse(toks []tokens.Token) (*nodes.Expressions, error) {
	p := &parser{
		toks: toks,
	}
	return p.program()
}

type parser struct {
	toks []tokens.Token
	idx  int
}

func (p *parser) atEnd() bool {
	return p.idx >= len(p.toks)
}

func (p *parser) is(kind tokens.Kind) bool {
	return !p.atEnd() && p.toks[p.idx].Kind == kind
}

func (p *parser) isAny(kinds ...tokens.Kind) bool {
	for _, kind := range kinds {
		if p.is(kind) {
			return true
		}
	}
	return false
}

// advance consumes the current token. Callers check for it first.
func (p *parser) advance() tokens.Token {
	if p.atEnd() {
		panic("advance past end of input")
	}
	tok := p.toks[p.idx]
	p.idx++
	return tok
}

// accept consumes the current token if it is of kind.
func (p *parser) accept(kind tokens.Kind) bool {
	if !p.is(kind) {
		return false
	}
	p.idx++
	return true
}

func (p *parser) fail(expected string) error {
	if p.atEnd() {
		err := &ParseError{
			Expected: expected,
			AtEnd:    true,
		}
		if n := len(p.toks); n > 0 {
			err.Found.Pos = p.toks[n-1].Pos
		}
		return err
	}
	return &ParseError{
		Expected: expected,
		Found:    p.toks[p.idx],
	}
}

// require consumes a token of kind or fails.
func (p *parser) require(kind tokens.Kind) error {
	if !p.is(kind) {
		return p.fail(describe(kind))
	}
	p.idx++
	return nil
}

// extract consumes a token of kind and returns its text payload.
func (p *parser) extract(kind tokens.Kind) (string, error) {
	if !p.is(kind) {
		return "", p.fail(describe(kind))
	}
	return p.advance().Text, nil
}

// tryConsume runs fn after consuming a token of kind. ok is false if the
// current token is of another kind, in which case nothing is consumed.
func tryConsume[T any](p *parser, kind tokens.Kind, fn func() (T, error)) (ret T, ok bool, err error) {
	if !p.accept(kind) {
		return
	}
	ret, err = fn()
	if err != nil {
		return
	}
	return ret, true, nil
}

// repeatWhile consumes a token of kind and runs fn, as long as the current
// token is of kind.
func repeatWhile(p *parser, kind tokens.Kind, fn func() error) error {
	for p.accept(kind) {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) skipEndlines() {
	for p.accept(tokens.Endline) {
	}
}

func describe(kinds ...tokens.Kind) string {
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		if kind.HasPayload() || kind == tokens.Endline {
			parts = append(parts, kind.String())
		} else {
			parts = append(parts, "'"+kind.String()+"'")
		}
	}
	return strings.Join(parts, " or ")
}

func (p *parser) program() (*nodes.Expressions, error) {
	p.skipEndlines()
	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	program := &nodes.Expressions{
		List: []nodes.Node{first},
	}
	for p.is(tokens.Endline) {
		p.skipEndlines()
		if p.atEnd() {
			break
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		program.List = append(program.List, expr)
	}
	if !p.atEnd() {
		return nil, p.fail(describe(tokens.Endline))
	}
	return program, nil
}

// block parses a body, stopping before any of the closing kinds.
func (p *parser) block(closing ...tokens.Kind) (*nodes.Expressions, error) {
	body := new(nodes.Expressions)
	p.skipEndlines()
	for !p.atEnd() && !p.isAny(closing...) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		body.List = append(body.List, expr)
		if p.isAny(closing...) {
			break
		}
		if !p.is(tokens.Endline) {
			return nil, p.fail(describe(append([]tokens.Kind{tokens.Endline}, closing...)...))
		}
		p.skipEndlines()
	}
	return body, nil
}
