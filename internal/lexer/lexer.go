// Package lexer implements the scanner for Core source code.
//
// The scanner is a greedy DFA over Core's ASCII alphabet. Whitespace
// separates tokens and is required between two tokens when neither is a
// special symbol: `intX` is a single illegal token while `int X` is a
// reserved word followed by an identifier. Two-character symbols always
// win over their one-character prefixes (`<=` is LESS_EQ, never LESS
// then ASSIGN), and `&`/`|` must be doubled or the input is illegal.
//
// Illegal input never aborts the scanner; it is reported as an ILLEGAL
// token whose literal carries the offending prefix, and the caller
// decides when to surface the lexical error.
package lexer

import (
	"github.com/corelang/gocore/pkg/token"
)

// Lexer is a lexical scanner over a Core source text.
type Lexer struct {
	input        string
	position     int  // offset of ch
	readPosition int  // offset after ch
	line         int  // 1-based line of ch
	column       int  // 1-based column of ch
	ch           byte // current character, 0 at EOF
}

// New creates a Lexer for the given input. A UTF-8 BOM at the start of
// the input is stripped.
func New(input string) *Lexer {
	if len(input) >= 3 &&
		input[0] == 0xEF &&
		input[1] == 0xBB &&
		input[2] == 0xBF {
		input = input[3:]
	}

	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar advances the lexer to the next character in the input.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
	} else {
		l.ch = l.input[l.readPosition]
		l.position = l.readPosition
		l.readPosition++
		l.column++
	}
}

// peekChar returns the next character without advancing, or 0 at EOF.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// currentPos returns the current Position for token creation.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isUpper(ch byte) bool {
	return 'A' <= ch && ch <= 'Z'
}

func isLower(ch byte) bool {
	return 'a' <= ch && ch <= 'z'
}

func isWordChar(ch byte) bool {
	return isDigit(ch) || isUpper(ch) || isLower(ch)
}

// skipWhitespace consumes spaces, tabs, carriage returns, and newlines.
// Blank lines fall out of this loop naturally.
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// NextToken scans and returns the next token. Once the input is
// exhausted it returns EOF tokens forever.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.New(token.EOF, "", pos)
	case isWordChar(l.ch):
		return l.readWord(pos)
	default:
		return l.readSymbol(pos)
	}
}

// Tokenize scans the whole input, returning every token up to and
// including the terminating EOF or the first ILLEGAL token.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			return tokens
		}
	}
}

// readWord scans a maximal run of letters and digits and classifies it
// as an integer, an identifier, or a reserved word. The run must be
// delimited by whitespace, end of input, or the start of a special
// symbol; otherwise the run and the offending character form an ILLEGAL
// token.
func (l *Lexer) readWord(pos token.Position) token.Token {
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.position]

	tokenType := classifyWord(word)
	if tokenType == token.ILLEGAL {
		return token.New(token.ILLEGAL, word, pos)
	}

	if !l.delimitsWord() {
		prefix := word + string(l.ch)
		l.readChar()
		return token.New(token.ILLEGAL, prefix, pos)
	}

	return token.New(tokenType, word, pos)
}

// classifyWord maps a maximal letter/digit run to its token type.
// Integer literals are all digits, identifiers are an uppercase letter
// followed by uppercase letters and digits, and reserved words are the
// eleven lowercase keywords. Anything else (mixed case, digits followed
// by letters, unknown lowercase runs) is illegal.
func classifyWord(word string) token.TokenType {
	allDigits := true
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return token.INTEGER
	}

	if isUpper(word[0]) {
		for i := 1; i < len(word); i++ {
			if !isUpper(word[i]) && !isDigit(word[i]) {
				return token.ILLEGAL
			}
		}
		return token.IDENT
	}

	if tt, ok := token.LookupKeyword(word); ok {
		return tt
	}
	return token.ILLEGAL
}

// delimitsWord reports whether the current character legally terminates
// a word token: whitespace, end of input, or the start of a special
// symbol. A lone '&' or '|' is not a symbol start; it must be doubled.
func (l *Lexer) delimitsWord() bool {
	switch l.ch {
	case 0, ' ', '\t', '\r', '\n':
		return true
	case ';', ',', '=', '!', '[', ']', '(', ')', '+', '-', '*', '<', '>':
		return true
	case '&', '|':
		return l.peekChar() == l.ch
	default:
		return false
	}
}

// readSymbol scans a special symbol, applying maximal munch for the
// two-character forms.
func (l *Lexer) readSymbol(pos token.Position) token.Token {
	switch l.ch {
	case ';':
		return l.simpleToken(token.SEMICOLON, ";", pos)
	case ',':
		return l.simpleToken(token.COMMA, ",", pos)
	case '[':
		return l.simpleToken(token.LBRACK, "[", pos)
	case ']':
		return l.simpleToken(token.RBRACK, "]", pos)
	case '(':
		return l.simpleToken(token.LPAREN, "(", pos)
	case ')':
		return l.simpleToken(token.RPAREN, ")", pos)
	case '+':
		return l.simpleToken(token.PLUS, "+", pos)
	case '-':
		return l.simpleToken(token.MINUS, "-", pos)
	case '*':
		return l.simpleToken(token.ASTERISK, "*", pos)
	case '=':
		return l.maybeEquals(token.ASSIGN, "=", token.EQ, "==", pos)
	case '!':
		return l.maybeEquals(token.NOT, "!", token.NOT_EQ, "!=", pos)
	case '<':
		return l.maybeEquals(token.LESS, "<", token.LESS_EQ, "<=", pos)
	case '>':
		return l.maybeEquals(token.GREATER, ">", token.GREATER_EQ, ">=", pos)
	case '&':
		return l.doubledToken(token.AND, "&&", pos)
	case '|':
		return l.doubledToken(token.OR, "||", pos)
	default:
		prefix := string(l.ch)
		l.readChar()
		return token.New(token.ILLEGAL, prefix, pos)
	}
}

// simpleToken emits a one-character symbol and advances.
func (l *Lexer) simpleToken(tokenType token.TokenType, literal string, pos token.Position) token.Token {
	l.readChar()
	return token.New(tokenType, literal, pos)
}

// maybeEquals emits the two-character form when the next character is
// '=', the one-character form otherwise.
func (l *Lexer) maybeEquals(single token.TokenType, singleLit string, double token.TokenType, doubleLit string, pos token.Position) token.Token {
	l.readChar()
	if l.ch == '=' {
		l.readChar()
		return token.New(double, doubleLit, pos)
	}
	return token.New(single, singleLit, pos)
}

// doubledToken handles '&' and '|', which are only legal when doubled.
// A lone '&' or '|' forms an ILLEGAL token together with whatever
// follows it, matching the DFA's intermediate-state behavior.
func (l *Lexer) doubledToken(tokenType token.TokenType, literal string, pos token.Position) token.Token {
	first := l.ch
	l.readChar()
	if l.ch == first {
		l.readChar()
		return token.New(tokenType, literal, pos)
	}
	prefix := string(first)
	if l.ch != 0 {
		prefix += string(l.ch)
		l.readChar()
	}
	return token.New(token.ILLEGAL, prefix, pos)
}
