package lexer

import (
	"testing"

	"github.com/corelang/gocore/pkg/token"
)

func TestLineTracking(t *testing.T) {
	input := "program\nint X;\nbegin\nread X;\nwrite X;\nend\n"

	expected := []struct {
		tokenType token.TokenType
		line      int
	}{
		{token.PROGRAM, 1},
		{token.INT, 2},
		{token.IDENT, 2},
		{token.SEMICOLON, 2},
		{token.BEGIN, 3},
		{token.READ, 4},
		{token.IDENT, 4},
		{token.SEMICOLON, 4},
		{token.WRITE, 5},
		{token.IDENT, 5},
		{token.SEMICOLON, 5},
		{token.END, 6},
		{token.EOF, 7},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.tokenType {
			t.Fatalf("token %d: got %v, want %v", i, tok.Type, want.tokenType)
		}
		if tok.Pos.Line != want.line {
			t.Fatalf("token %d (%v): got line %d, want %d", i, tok.Type, tok.Pos.Line, want.line)
		}
	}
}

func TestCRLFLineTracking(t *testing.T) {
	input := "program\r\nint X;\r\nbegin\r\nwrite X;\r\nend"
	l := New(input)

	var beginLine, endLine int
	for {
		tok := l.NextToken()
		if tok.Type == token.BEGIN {
			beginLine = tok.Pos.Line
		}
		if tok.Type == token.END {
			endLine = tok.Pos.Line
		}
		if tok.Type == token.EOF {
			break
		}
	}
	if beginLine != 3 {
		t.Errorf("begin on line %d, want 3", beginLine)
	}
	if endLine != 5 {
		t.Errorf("end on line %d, want 5", endLine)
	}
}

func TestColumnTracking(t *testing.T) {
	l := New("read X;")

	tok := l.NextToken()
	if tok.Pos.Column != 1 {
		t.Errorf("read at column %d, want 1", tok.Pos.Column)
	}
	tok = l.NextToken()
	if tok.Pos.Column != 6 {
		t.Errorf("X at column %d, want 6", tok.Pos.Column)
	}
	tok = l.NextToken()
	if tok.Pos.Column != 7 {
		t.Errorf("; at column %d, want 7", tok.Pos.Column)
	}
}

func TestTokenLineIsStartLine(t *testing.T) {
	// A token's reported line is the line on which it begins.
	input := "int\nX;"
	l := New(input)

	tok := l.NextToken()
	if tok.Type != token.INT || tok.Pos.Line != 1 {
		t.Fatalf("got %v on line %d, want INT on line 1", tok.Type, tok.Pos.Line)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Pos.Line != 2 {
		t.Fatalf("got %v on line %d, want IDENT on line 2", tok.Type, tok.Pos.Line)
	}
}
