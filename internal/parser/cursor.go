package parser

import (
	"github.com/corelang/gocore/internal/lexer"
	"github.com/corelang/gocore/pkg/token"
)

// TokenCursor is a peek-one cursor over the lexer's token stream. The
// lexer produces tokens lazily, one per Advance, so pre-reading never
// surfaces a lexical error; the parser decides when an ILLEGAL token
// becomes fatal. Advancing past EOF is a no-op: the cursor keeps
// yielding EOF.
type TokenCursor struct {
	lexer   *lexer.Lexer
	current token.Token
}

// NewTokenCursor creates a cursor positioned at the first token.
func NewTokenCursor(l *lexer.Lexer) *TokenCursor {
	return &TokenCursor{
		lexer:   l,
		current: l.NextToken(),
	}
}

// Current returns the token at the cursor position.
func (c *TokenCursor) Current() token.Token {
	return c.current
}

// Advance moves the cursor to the next token. Past EOF it stays at EOF.
func (c *TokenCursor) Advance() {
	if c.current.Type == token.EOF {
		return
	}
	c.current = c.lexer.NextToken()
}

// Is reports whether the current token has the given type.
func (c *TokenCursor) Is(tokenType token.TokenType) bool {
	return c.current.Type == tokenType
}
