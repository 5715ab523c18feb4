package parser

import (
	"fmt"

	"github.com/corelang/gocore/pkg/token"
)

// Error code constants for programmatic error handling.
const (
	// ErrIllegalToken indicates the lexer produced an illegal token.
	ErrIllegalToken = "E_ILLEGAL_TOKEN"

	// ErrUnexpectedToken indicates a token that violates the grammar.
	ErrUnexpectedToken = "E_UNEXPECTED_TOKEN"

	// ErrUnexpectedEOF indicates the input ended mid-production.
	ErrUnexpectedEOF = "E_UNEXPECTED_EOF"

	// ErrExpectedIdent indicates an identifier was required.
	ErrExpectedIdent = "E_EXPECTED_IDENT"

	// ErrExpectedInt indicates an integer literal was required.
	ErrExpectedInt = "E_EXPECTED_INT"

	// ErrRedeclared indicates a doubly declared identifier.
	ErrRedeclared = "E_REDECLARED"

	// ErrUndeclared indicates a use of an undeclared identifier.
	ErrUndeclared = "E_UNDECLARED"
)

// ParserError is a fatal parse failure with position information. It
// covers all three compile-time error classes: lexical, syntactic, and
// context-sensitive; Code tells them apart.
type ParserError struct {
	Message string
	Code    string
	File    string
	Pos     token.Position
}

// Error implements the error interface.
func (e *ParserError) Error() string {
	return e.Message
}

// lexicalError reports an ILLEGAL token the parser has reached.
func (p *Parser) lexicalError(tok token.Token) error {
	return &ParserError{
		Message: fmt.Sprintf("File %q, line %d: Illegal token starting with %q",
			p.file, tok.Pos.Line, tok.Literal),
		Code: ErrIllegalToken,
		File: p.file,
		Pos:  tok.Pos,
	}
}

// unexpectedError reports a grammar violation at tok. The suffix names
// what the parser was specifically asking for ("an identifier",
// "an integer") and is empty for multi-alternative productions.
func (p *Parser) unexpectedError(tok token.Token, code, suffix string) error {
	var msg string
	if tok.Type == token.EOF {
		msg = fmt.Sprintf("Unexpected end of file %q", p.file)
		if code == "" {
			code = ErrUnexpectedEOF
		}
	} else {
		msg = fmt.Sprintf("File %q, line %d: unexpected %s %q",
			p.file, tok.Pos.Line, tok.Type.Class(), tok.Literal)
		if code == "" {
			code = ErrUnexpectedToken
		}
	}
	if suffix != "" {
		msg += ". Expected " + suffix
	}
	return &ParserError{
		Message: msg,
		Code:    code,
		File:    p.file,
		Pos:     tok.Pos,
	}
}

// declarationError reports a violated name rule: adverb is "already"
// for a duplicate declaration and "not" for an undeclared use.
func (p *Parser) declarationError(tok token.Token, code, adverb string) error {
	return &ParserError{
		Message: fmt.Sprintf("File %q, line %d: identifier %q has %s been declared",
			p.file, tok.Pos.Line, tok.Literal, adverb),
		Code: code,
		File: p.file,
		Pos:  tok.Pos,
	}
}
