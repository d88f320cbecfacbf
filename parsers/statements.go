package parsers

import (
	"github.com/reusee/pseudo/nodes"
	"github.com/reusee/pseudo/tokens"
)

func (p *parser) expression() (nodes.Node, error) {
	if p.atEnd() {
		return nil, p.fail("expression")
	}
	switch p.toks[p.idx].Kind {
	case tokens.If:
		return p.ifExpr()
	case tokens.For:
		return p.forExpr()
	case tokens.While:
		return p.whileExpr()
	case tokens.Do:
		return p.doUntilExpr()
	case tokens.Continue:
		p.advance()
		return &nodes.Continue{}, nil
	case tokens.Break:
		p.advance()
		return &nodes.Break{}, nil
	case tokens.Try:
		return p.tryCatchExpr()
	case tokens.Throw:
		p.advance()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &nodes.Throw{
			Value: value,
		}, nil
	case tokens.Function:
		return p.functionExpr()
	case tokens.Return:
		p.advance()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &nodes.Return{
			Value: value,
		}, nil
	case tokens.Include:
		p.advance()
		path, err := p.extract(tokens.String)
		if err != nil {
			return nil, err
		}
		return &nodes.Include{
			Path: path,
		}, nil
	case tokens.Run:
		p.advance()
		path, err := p.extract(tokens.String)
		if err != nil {
			return nil, err
		}
		return &nodes.Run{
			Path: path,
		}, nil
	case tokens.Read:
		return p.readExpr()
	case tokens.Print:
		return p.printExpr()
	case tokens.Let:
		return p.assignment()
	}
	return p.logical()
}

func (p *parser) ifExpr() (nodes.Node, error) {
	if err := p.require(tokens.If); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.Then); err != nil {
		return nil, err
	}
	trueBody, err := p.block(tokens.Else, tokens.End)
	if err != nil {
		return nil, err
	}
	falseBody, _, err := tryConsume(p, tokens.Else, func() (*nodes.Expressions, error) {
		return p.block(tokens.End)
	})
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.End); err != nil {
		return nil, err
	}
	return &nodes.If{
		Condition: condition,
		TrueBody:  trueBody,
		FalseBody: falseBody,
	}, nil
}

func (p *parser) forExpr() (nodes.Node, error) {
	if err := p.require(tokens.For); err != nil {
		return nil, err
	}
	identifier, err := p.extract(tokens.Identifier)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.Assignment); err != nil {
		return nil, err
	}
	start, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.Comma); err != nil {
		return nil, err
	}
	end, err := p.expression()
	if err != nil {
		return nil, err
	}
	step, _, err := tryConsume(p, tokens.Comma, p.expression)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.Execute); err != nil {
		return nil, err
	}
	body, err := p.block(tokens.End)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.End); err != nil {
		return nil, err
	}
	return &nodes.For{
		Identifier: identifier,
		Start:      start,
		End:        end,
		Step:       step,
		Body:       body,
	}, nil
}

func (p *parser) whileExpr() (nodes.Node, error) {
	if err := p.require(tokens.While); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.Execute); err != nil {
		return nil, err
	}
	body, err := p.block(tokens.End)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.End); err != nil {
		return nil, err
	}
	return &nodes.While{
		Condition: condition,
		Body:      body,
	}, nil
}

func (p *parser) doUntilExpr() (nodes.Node, error) {
	if err := p.require(tokens.Do); err != nil {
		return nil, err
	}
	body, err := p.block(tokens.Until)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.Until); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.End); err != nil {
		return nil, err
	}
	return &nodes.DoUntil{
		Body:      body,
		Condition: condition,
	}, nil
}

func (p *parser) tryCatchExpr() (nodes.Node, error) {
	if err := p.require(tokens.Try); err != nil {
		return nil, err
	}
	tryBody, err := p.block(tokens.Catch)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.Catch); err != nil {
		return nil, err
	}
	identifier, err := p.extract(tokens.Identifier)
	if err != nil {
		return nil, err
	}
	p.accept(tokens.Then)
	catchBody, err := p.block(tokens.End)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.End); err != nil {
		return nil, err
	}
	return &nodes.TryCatch{
		TryBody:         tryBody,
		CatchIdentifier: identifier,
		CatchBody:       catchBody,
	}, nil
}

func (p *parser) identifierList() ([]string, error) {
	return commaList(p, func() (string, error) {
		return p.extract(tokens.Identifier)
	})
}

func (p *parser) functionExpr() (nodes.Node, error) {
	if err := p.require(tokens.Function); err != nil {
		return nil, err
	}
	identifier, err := p.extract(tokens.Identifier)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.ParenLeft); err != nil {
		return nil, err
	}
	var parameters []string
	if !p.is(tokens.ParenRight) {
		parameters, err = p.identifierList()
		if err != nil {
			return nil, err
		}
	}
	if err := p.require(tokens.ParenRight); err != nil {
		return nil, err
	}
	p.accept(tokens.Colon)
	body, err := p.block(tokens.End)
	if err != nil {
		return nil, err
	}
	if err := p.require(tokens.End); err != nil {
		return nil, err
	}
	return &nodes.FunctionDefinition{
		Identifier: identifier,
		Parameters: parameters,
		Body:       body,
	}, nil
}

// redirection parses an optional `<file>` after read or print.
func (p *parser) redirection() (string, error) {
	file, _, err := tryConsume(p, tokens.Less, func() (string, error) {
		file, err := p.extract(tokens.Identifier)
		if err != nil {
			return "", err
		}
		if err := p.require(tokens.Greater); err != nil {
			return "", err
		}
		return file, nil
	})
	return file, err
}

func (p *parser) readExpr() (nodes.Node, error) {
	if err := p.require(tokens.Read); err != nil {
		return nil, err
	}
	file, err := p.redirection()
	if err != nil {
		return nil, err
	}
	identifiers, err := p.identifierList()
	if err != nil {
		return nil, err
	}
	return &nodes.Read{
		File:        file,
		Identifiers: identifiers,
	}, nil
}

func (p *parser) printExpr() (nodes.Node, error) {
	if err := p.require(tokens.Print); err != nil {
		return nil, err
	}
	file, err := p.redirection()
	if err != nil {
		return nil, err
	}
	expressions, err := p.expressionList()
	if err != nil {
		return nil, err
	}
	return &nodes.Print{
		File:        file,
		Expressions: expressions,
	}, nil
}

func (p *parser) assignment() (nodes.Node, error) {
	if err := p.require(tokens.Let); err != nil {
		return nil, err
	}
	identifier, err := p.extract(tokens.Identifier)
	if err != nil {
		return nil, err
	}
	var indices []nodes.Node
	if err := repeatWhile(p, tokens.BracketLeft, func() error {
		index, err := p.expression()
		if err != nil {
			return err
		}
		indices = append(indices, index)
		return p.require(tokens.BracketRight)
	}); err != nil {
		return nil, err
	}
	if err := p.require(tokens.Assignment); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &nodes.Assignment{
		Identifier: identifier,
		Indices:    indices,
		Value:      value,
	}, nil
}
