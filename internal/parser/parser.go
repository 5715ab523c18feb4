// Package parser implements the recursive-descent parser for Core.
//
// Each grammar production has one parsing routine that consumes
// terminals through the token cursor and returns the matching AST node.
// Identifier references are resolved against a symbol table while
// parsing: declarations must introduce a fresh name and the body may
// only use declared names. All failures are fatal; there is no
// recovery.
package parser

import (
	"fmt"
	"strconv"

	"github.com/corelang/gocore/internal/ast"
	"github.com/corelang/gocore/internal/lexer"
	"github.com/corelang/gocore/internal/symbols"
	"github.com/corelang/gocore/pkg/token"
)

// Parser parses a single Core program.
type Parser struct {
	file      string
	cursor    *TokenCursor
	symbols   *symbols.Table
	declPhase bool
}

// New creates a Parser reading tokens from l. The file name is used in
// diagnostics only.
func New(l *lexer.Lexer, file string) *Parser {
	return &Parser{
		file:    file,
		cursor:  NewTokenCursor(l),
		symbols: symbols.NewTable(),
	}
}

// Symbols returns the symbol table built during parsing.
func (p *Parser) Symbols() *symbols.Table {
	return p.symbols
}

// current returns the token at the cursor, surfacing a pending lexical
// error on demand.
func (p *Parser) current() (token.Token, error) {
	tok := p.cursor.Current()
	if tok.Type == token.ILLEGAL {
		return tok, p.lexicalError(tok)
	}
	return tok, nil
}

// expect consumes a token of the given type or fails with an
// unexpected-token diagnostic.
func (p *Parser) expect(tokenType token.TokenType) (token.Token, error) {
	tok, err := p.current()
	if err != nil {
		return tok, err
	}
	if tok.Type != tokenType {
		return tok, p.unexpectedError(tok, "", "")
	}
	p.cursor.Advance()
	return tok, nil
}

// expectIdent consumes an IDENT token or fails, naming the expectation.
func (p *Parser) expectIdent() (token.Token, error) {
	tok, err := p.current()
	if err != nil {
		return tok, err
	}
	if tok.Type != token.IDENT {
		return tok, p.unexpectedError(tok, ErrExpectedIdent, "an identifier")
	}
	p.cursor.Advance()
	return tok, nil
}

// expectInteger consumes an INTEGER token or fails, naming the
// expectation.
func (p *Parser) expectInteger() (token.Token, error) {
	tok, err := p.current()
	if err != nil {
		return tok, err
	}
	if tok.Type != token.INTEGER {
		return tok, p.unexpectedError(tok, ErrExpectedInt, "an integer")
	}
	p.cursor.Advance()
	return tok, nil
}

// ParseProgram parses <prog> ::= program <decl seq> begin <stmt seq> end
// and requires end of file after the closing end.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	progTok, err := p.expect(token.PROGRAM)
	if err != nil {
		return nil, err
	}

	p.declPhase = true
	decls, err := p.parseDeclSeq()
	if err != nil {
		return nil, err
	}
	p.declPhase = false

	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}

	body, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}

	return &ast.Program{Token: progTok, Decls: decls, Body: body}, nil
}

// parseDeclSeq parses <decl seq> ::= <decl> { <decl> }. The sequence
// continues while the current token is `int`.
func (p *Parser) parseDeclSeq() ([]*ast.Declaration, error) {
	var decls []*ast.Declaration
	for {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		if !p.cursor.Is(token.INT) {
			return decls, nil
		}
	}
}

// parseDecl parses <decl> ::= int <id list> ;
func (p *Parser) parseDecl() (*ast.Declaration, error) {
	intTok, err := p.expect(token.INT)
	if err != nil {
		return nil, err
	}
	names, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Declaration{Token: intTok, Names: names}, nil
}

// parseIdentList parses <id list> ::= <id> { , <id> }.
func (p *Parser) parseIdentList() ([]*ast.Identifier, error) {
	var ids []*ast.Identifier
	for {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if !p.cursor.Is(token.COMMA) {
			return ids, nil
		}
		p.cursor.Advance()
	}
}

// parseIdentifier consumes an identifier and resolves it against the
// symbol table. During the declaration phase the name must be fresh;
// in the body it must already be declared.
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var id symbols.ID
	if p.declPhase {
		id, err = p.symbols.Declare(tok.Literal, tok.Pos.Line)
		if err != nil {
			return nil, p.declarationError(tok, ErrRedeclared, "already")
		}
	} else {
		var ok bool
		id, ok = p.symbols.Lookup(tok.Literal)
		if !ok {
			return nil, p.declarationError(tok, ErrUndeclared, "not")
		}
		p.symbols.RecordUse(id, tok.Pos.Line)
	}

	return &ast.Identifier{Token: tok, Name: tok.Literal, Sym: id}, nil
}

// parseStmtSeq parses <stmt seq> ::= <stmt> { <stmt> }. The sequence
// continues until the current token is `end` or `else`. At least one
// statement is required.
func (p *Parser) parseStmtSeq() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.cursor.Is(token.END) || p.cursor.Is(token.ELSE) {
			return stmts, nil
		}
	}
}

// parseStmt dispatches on the current token to one of the five
// statement forms.
func (p *Parser) parseStmt() (ast.Statement, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.IDENT:
		return p.parseAssign()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.READ:
		return p.parseRead()
	case token.WRITE:
		return p.parseWrite()
	default:
		return nil, p.unexpectedError(tok, "", "")
	}
}

// parseAssign parses <assign> ::= <id> = <exp> ;
func (p *Parser) parseAssign() (*ast.AssignStatement, error) {
	target, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.AssignStatement{Token: target.Token, Target: target, Value: value}, nil
}

// parseIf parses <if> ::= if <cond> then <stmt seq> [ else <stmt seq> ] end ;
func (p *Parser) parseIf() (*ast.IfStatement, error) {
	ifTok, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	thenBody, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}

	var elseBody []ast.Statement
	if p.cursor.Is(token.ELSE) {
		p.cursor.Advance()
		elseBody, err = p.parseStmtSeq()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.IfStatement{Token: ifTok, Cond: cond, Then: thenBody, Else: elseBody}, nil
}

// parseWhile parses <while> ::= while <cond> loop <stmt seq> end ;
func (p *Parser) parseWhile() (*ast.WhileStatement, error) {
	whileTok, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LOOP); err != nil {
		return nil, err
	}
	body, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Token: whileTok, Cond: cond, Body: body}, nil
}

// parseRead parses <read> ::= read <id list> ;
func (p *Parser) parseRead() (*ast.ReadStatement, error) {
	readTok, err := p.expect(token.READ)
	if err != nil {
		return nil, err
	}
	targets, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ReadStatement{Token: readTok, Targets: targets}, nil
}

// parseWrite parses <write> ::= write <id list> ;
func (p *Parser) parseWrite() (*ast.WriteStatement, error) {
	writeTok, err := p.expect(token.WRITE)
	if err != nil {
		return nil, err
	}
	targets, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.WriteStatement{Token: writeTok, Targets: targets}, nil
}

// parseOperand parses <op> ::= <int> | <id> | ( <exp> ).
func (p *Parser) parseOperand() (ast.Expression, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.INTEGER:
		intTok, err := p.expectInteger()
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(intTok.Literal, 10, 64)
		if err != nil {
			return nil, &ParserError{
				Message: fmt.Sprintf("File %q, line %d: integer literal %q out of range",
					p.file, intTok.Pos.Line, intTok.Literal),
				Code: ErrUnexpectedToken,
				File: p.file,
				Pos:  intTok.Pos,
			}
		}
		return &ast.IntegerLiteral{Token: intTok, Value: value}, nil
	case token.IDENT:
		return p.parseIdentifier()
	case token.LPAREN:
		p.cursor.Advance()
		inner, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpression{Token: tok, Inner: inner}, nil
	default:
		return nil, p.unexpectedError(tok, "", "")
	}
}

// parseFac parses <fac> ::= <op> | <op> * <fac>. Multiplication nests
// to the right, as written in the grammar.
func (p *Parser) parseFac() (ast.Expression, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if !p.cursor.Is(token.ASTERISK) {
		return left, nil
	}
	opTok := p.cursor.Current()
	p.cursor.Advance()
	right, err := p.parseFac()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok, Right: right}, nil
}

// parseExp parses <exp> ::= <fac> | <fac> + <exp> | <fac> - <exp>.
// Addition and subtraction nest to the right, as written in the
// grammar: a - b - c parses as a - (b - c).
func (p *Parser) parseExp() (ast.Expression, error) {
	left, err := p.parseFac()
	if err != nil {
		return nil, err
	}
	if !p.cursor.Is(token.PLUS) && !p.cursor.Is(token.MINUS) {
		return left, nil
	}
	opTok := p.cursor.Current()
	p.cursor.Advance()
	right, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok, Right: right}, nil
}
