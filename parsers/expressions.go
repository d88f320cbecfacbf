package parsers

import (
	"github.com/reusee/pseudo/nodes"
	"github.com/reusee/pseudo/tokens"
)

var (
	logicalOperators = map[tokens.Kind]nodes.Operator{
		tokens.And: nodes.OpAnd,
		tokens.Or:  nodes.OpOr,
	}

	comparisonOperators = map[tokens.Kind]nodes.Operator{
		tokens.Equals:       nodes.OpEqual,
		tokens.Less:         nodes.OpLess,
		tokens.LessEqual:    nodes.OpLessEqual,
		tokens.Greater:      nodes.OpGreater,
		tokens.GreaterEqual: nodes.OpGreaterEqual,
		tokens.Different:    nodes.OpDifferent,
	}

	additiveOperators = map[tokens.Kind]nodes.Operator{
		tokens.Plus:  nodes.OpAdd,
		tokens.Minus: nodes.OpSubtract,
	}

	multiplicativeOperators = map[tokens.Kind]nodes.Operator{
		tokens.Multiply: nodes.OpMultiply,
		tokens.Divide:   nodes.OpDivide,
		tokens.Modulo:   nodes.OpModulo,
	}
)

// operator returns the operator of the current token if it is in ops, and
// consumes it.
func (p *parser) operator(ops map[tokens.Kind]nodes.Operator) (nodes.Operator, bool) {
	if p.atEnd() {
		return nodes.OpInvalid, false
	}
	op, ok := ops[p.toks[p.idx].Kind]
	if !ok {
		return nodes.OpInvalid, false
	}
	p.advance()
	return op, true
}

// binary parses a left-associative chain of operands joined by ops.
func (p *parser) binary(
	ops map[tokens.Kind]nodes.Operator,
	operand func() (nodes.Node, error),
	build func(left, right nodes.Node, op nodes.Operator) nodes.Node,
) (nodes.Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.operator(ops)
		if !ok {
			return left, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = build(left, right, op)
	}
}

func (p *parser) logical() (nodes.Node, error) {
	return p.binary(logicalOperators, p.comparison, func(left, right nodes.Node, op nodes.Operator) nodes.Node {
		return &nodes.LogicalOperation{
			Left:  left,
			Right: right,
			Op:    op,
		}
	})
}

func (p *parser) comparison() (nodes.Node, error) {
	return p.binary(comparisonOperators, p.arith, func(left, right nodes.Node, op nodes.Operator) nodes.Node {
		return &nodes.ComparisonOperation{
			Left:  left,
			Right: right,
			Op:    op,
		}
	})
}

func (p *parser) arith() (nodes.Node, error) {
	return p.binary(additiveOperators, p.arith2, func(left, right nodes.Node, op nodes.Operator) nodes.Node {
		return &nodes.ArithmeticOperation{
			Left:  left,
			Right: right,
			Op:    op,
		}
	})
}

func (p *parser) arith2() (nodes.Node, error) {
	return p.binary(multiplicativeOperators, p.factor, func(left, right nodes.Node, op nodes.Operator) nodes.Node {
		return &nodes.ArithmeticOperation2{
			Left:  left,
			Right: right,
			Op:    op,
		}
	})
}

// factor parses a base followed by any number of index or call suffixes.
func (p *parser) factor() (nodes.Node, error) {
	expr, err := p.base()
	if err != nil {
		return nil, err
	}
	for {
		switch {

		case p.accept(tokens.BracketLeft):
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if err := p.require(tokens.BracketRight); err != nil {
				return nil, err
			}
			expr = &nodes.IndexAccess{
				Base:  expr,
				Index: index,
			}

		case p.accept(tokens.ParenLeft):
			args, err := delimited(p, tokens.ParenRight, p.expression)
			if err != nil {
				return nil, err
			}
			expr = &nodes.FnCall{
				Callee:    expr,
				Arguments: args,
			}

		default:
			return expr, nil
		}
	}
}

func (p *parser) base() (nodes.Node, error) {
	if p.atEnd() {
		return nil, p.fail("expression")
	}
	tok := p.toks[p.idx]
	switch tok.Kind {

	case tokens.Number:
		p.advance()
		return &nodes.Number{
			Value: tok.Number,
		}, nil

	case tokens.Char:
		p.advance()
		return &nodes.Char{
			Value: tok.Char,
		}, nil

	case tokens.String:
		p.advance()
		return &nodes.String{
			Value: tok.Text,
		}, nil

	case tokens.Identifier:
		p.advance()
		return &nodes.Identifier{
			Name: tok.Text,
		}, nil

	case tokens.Null:
		p.advance()
		return &nodes.Null{}, nil

	case tokens.True, tokens.False:
		p.advance()
		return &nodes.Bool{
			Value: tok.Kind == tokens.True,
		}, nil

	case tokens.ParenLeft:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.require(tokens.ParenRight); err != nil {
			return nil, err
		}
		return expr, nil

	case tokens.BracketLeft:
		p.advance()
		elements, err := delimited(p, tokens.BracketRight, p.expression)
		if err != nil {
			return nil, err
		}
		return &nodes.Array{
			Elements: elements,
		}, nil

	case tokens.CurlyLeft:
		p.advance()
		entries, err := delimited(p, tokens.CurlyRight, p.entry)
		if err != nil {
			return nil, err
		}
		return &nodes.Dictionary{
			Entries: entries,
		}, nil

	case tokens.Plus, tokens.Minus:
		p.advance()
		operand, err := p.base()
		if err != nil {
			return nil, err
		}
		return &nodes.Unary{
			Op:      additiveOperators[tok.Kind],
			Operand: operand,
		}, nil

	}
	return nil, p.fail("expression")
}

func (p *parser) entry() (nodes.Entry, error) {
	key, err := p.expression()
	if err != nil {
		return nodes.Entry{}, err
	}
	if err := p.require(tokens.Colon); err != nil {
		return nodes.Entry{}, err
	}
	value, err := p.expression()
	if err != nil {
		return nodes.Entry{}, err
	}
	return nodes.Entry{
		Key:   key,
		Value: value,
	}, nil
}

// delimited parses a possibly empty, comma separated list of items and the
// closing token. The opening token is already consumed.
func delimited[T any](p *parser, closing tokens.Kind, item func() (T, error)) ([]T, error) {
	if p.accept(closing) {
		return nil, nil
	}
	list, err := commaList(p, item)
	if err != nil {
		return nil, err
	}
	if err := p.require(closing); err != nil {
		return nil, err
	}
	return list, nil
}

func commaList[T any](p *parser, item func() (T, error)) ([]T, error) {
	first, err := item()
	if err != nil {
		return nil, err
	}
	list := []T{first}
	if err := repeatWhile(p, tokens.Comma, func() error {
		v, err := item()
		if err != nil {
			return err
		}
		list = append(list, v)
		return nil
	}); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *parser) expressionList() ([]nodes.Node, error) {
	return commaList(p, p.expression)
}
