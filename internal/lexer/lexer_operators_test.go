package lexer

import (
	"testing"

	"github.com/corelang/gocore/pkg/token"
)

func TestSpecialSymbols(t *testing.T) {
	input := `; , = ! [ ] && || ( ) + - * != == < > <= >=`

	expected := []struct {
		tokenType token.TokenType
		literal   string
	}{
		{token.SEMICOLON, ";"},
		{token.COMMA, ","},
		{token.ASSIGN, "="},
		{token.NOT, "!"},
		{token.LBRACK, "["},
		{token.RBRACK, "]"},
		{token.AND, "&&"},
		{token.OR, "||"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.PLUS, "+"},
		{token.MINUS, "-"},
		{token.ASTERISK, "*"},
		{token.NOT_EQ, "!="},
		{token.EQ, "=="},
		{token.LESS, "<"},
		{token.GREATER, ">"},
		{token.LESS_EQ, "<="},
		{token.GREATER_EQ, ">="},
		{token.EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.tokenType || tok.Literal != want.literal {
			t.Fatalf("token %d: got %v %q, want %v %q",
				i, tok.Type, tok.Literal, want.tokenType, want.literal)
		}
	}
}

func TestTwoCharSymbolsWin(t *testing.T) {
	// Maximal munch: <= must never scan as < then =.
	tests := []struct {
		input    string
		expected []token.TokenType
	}{
		{"<=", []token.TokenType{token.LESS_EQ, token.EOF}},
		{">=", []token.TokenType{token.GREATER_EQ, token.EOF}},
		{"==", []token.TokenType{token.EQ, token.EOF}},
		{"!=", []token.TokenType{token.NOT_EQ, token.EOF}},
		{"< =", []token.TokenType{token.LESS, token.ASSIGN, token.EOF}},
		{"= =", []token.TokenType{token.ASSIGN, token.ASSIGN, token.EOF}},
		{"===", []token.TokenType{token.EQ, token.ASSIGN, token.EOF}},
		{"!!", []token.TokenType{token.NOT, token.NOT, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			for i, want := range tt.expected {
				tok := l.NextToken()
				if tok.Type != want {
					t.Fatalf("token %d: got %v, want %v", i, tok.Type, want)
				}
			}
		})
	}
}

func TestSymbolsNeedNoWhitespace(t *testing.T) {
	input := `X=(Y+1)*2;`

	expected := []token.TokenType{
		token.IDENT, token.ASSIGN, token.LPAREN, token.IDENT, token.PLUS,
		token.INTEGER, token.RPAREN, token.ASTERISK, token.INTEGER,
		token.SEMICOLON, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: got %v (%q), want %v", i, tok.Type, tok.Literal, want)
		}
	}
}

func TestConditionSymbols(t *testing.T) {
	input := `[(A<B)&&!(C==D)]`

	expected := []token.TokenType{
		token.LBRACK, token.LPAREN, token.IDENT, token.LESS, token.IDENT,
		token.RPAREN, token.AND, token.NOT, token.LPAREN, token.IDENT,
		token.EQ, token.IDENT, token.RPAREN, token.RBRACK, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: got %v (%q), want %v", i, tok.Type, tok.Literal, want)
		}
	}
}
