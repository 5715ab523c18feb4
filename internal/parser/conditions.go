package parser

import (
	"github.com/corelang/gocore/internal/ast"
	"github.com/corelang/gocore/pkg/token"
)

// parseCond parses
// <cond> ::= <comp> | ! <cond> | [ <cond> && <cond> ] | [ <cond> || <cond> ]
func (p *Parser) parseCond() (ast.Condition, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.LPAREN:
		return p.parseComparison()
	case token.NOT:
		p.cursor.Advance()
		cond, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		return &ast.NotCondition{Token: tok, Cond: cond}, nil
	case token.LBRACK:
		return p.parseLogical(tok)
	default:
		return nil, p.unexpectedError(tok, "", "")
	}
}

// parseLogical parses the bracketed conjunction and disjunction forms.
// The opening bracket is still current when called.
func (p *Parser) parseLogical(lbrack token.Token) (ast.Condition, error) {
	p.cursor.Advance()
	left, err := p.parseCond()
	if err != nil {
		return nil, err
	}

	opTok, err := p.current()
	if err != nil {
		return nil, err
	}
	if opTok.Type != token.AND && opTok.Type != token.OR {
		return nil, p.unexpectedError(opTok, "", "")
	}
	p.cursor.Advance()

	right, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return &ast.LogicalCondition{Token: lbrack, Left: left, Operator: opTok, Right: right}, nil
}

// parseComparison parses <comp> ::= ( <op> <comp op> <op> ).
func (p *Parser) parseComparison() (*ast.Comparison, error) {
	lparen, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, err
	}
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	opTok, err := p.parseCompOp()
	if err != nil {
		return nil, err
	}
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Comparison{Token: lparen, Left: left, Operator: opTok, Right: right}, nil
}

// parseCompOp parses <comp op> ::= != | == | < | > | <= | >=
func (p *Parser) parseCompOp() (token.Token, error) {
	tok, err := p.current()
	if err != nil {
		return tok, err
	}
	switch tok.Type {
	case token.NOT_EQ, token.EQ, token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ:
		p.cursor.Advance()
		return tok, nil
	default:
		return tok, p.unexpectedError(tok, "", "")
	}
}
