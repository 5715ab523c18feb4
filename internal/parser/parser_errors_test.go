package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/corelang/gocore/internal/lexer"
)

func parseError(t *testing.T, source string) *ParserError {
	t.Helper()
	p := New(lexer.New(source), "test.core")
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("ParseProgram() succeeded, want error")
	}
	var parserErr *ParserError
	if !errors.As(err, &parserErr) {
		t.Fatalf("error is %T, want *ParserError", err)
	}
	return parserErr
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		code     string
		contains string
	}{
		{
			"missing program keyword",
			`int X; begin read X; end`,
			ErrUnexpectedToken,
			`unexpected reserved word "int"`,
		},
		{
			"missing semicolon after declaration",
			`program int X begin read X; end`,
			ErrUnexpectedToken,
			`unexpected reserved word "begin"`,
		},
		{
			"empty statement sequence",
			`program int X; begin end`,
			ErrUnexpectedToken,
			`unexpected reserved word "end"`,
		},
		{
			"declaration without identifier",
			`program int ; begin read X; end`,
			ErrExpectedIdent,
			"Expected an identifier",
		},
		{
			"read without identifier",
			`program int X; begin read ; end`,
			ErrExpectedIdent,
			"Expected an identifier",
		},
		{
			"comparison without operator",
			`program int X; begin if ( 1 1 ) then X = 1; end; end`,
			ErrUnexpectedToken,
			`unexpected integer "1"`,
		},
		{
			"bracket condition without connective",
			`program int X; begin if [ ( 1 < 2 ) ( 2 < 3 ) ] then X = 1; end; end`,
			ErrUnexpectedToken,
			"unexpected special symbol",
		},
		{
			"trailing tokens after end",
			`program int X; begin read X; end write`,
			ErrUnexpectedToken,
			`unexpected reserved word "write"`,
		},
		{
			"truncated program",
			`program int X; begin read X;`,
			ErrUnexpectedEOF,
			`Unexpected end of file "test.core"`,
		},
		{
			"eof where identifier expected",
			`program int`,
			ErrExpectedIdent,
			"Expected an identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parserErr := parseError(t, tt.source)
			if parserErr.Code != tt.code {
				t.Errorf("code = %q, want %q (message: %s)", parserErr.Code, tt.code, parserErr.Message)
			}
			if !strings.Contains(parserErr.Message, tt.contains) {
				t.Errorf("message %q does not contain %q", parserErr.Message, tt.contains)
			}
		})
	}
}

func TestContextSensitiveErrors(t *testing.T) {
	t.Run("redeclaration", func(t *testing.T) {
		parserErr := parseError(t, `program int X; int X; begin write X; end`)
		if parserErr.Code != ErrRedeclared {
			t.Errorf("code = %q, want %q", parserErr.Code, ErrRedeclared)
		}
		want := `identifier "X" has already been declared`
		if !strings.Contains(parserErr.Message, want) {
			t.Errorf("message %q does not contain %q", parserErr.Message, want)
		}
	})

	t.Run("redeclaration in same list", func(t *testing.T) {
		parserErr := parseError(t, `program int X, X; begin write X; end`)
		if parserErr.Code != ErrRedeclared {
			t.Errorf("code = %q, want %q", parserErr.Code, ErrRedeclared)
		}
	})

	t.Run("undeclared use", func(t *testing.T) {
		parserErr := parseError(t, `program int X; begin write Y; end`)
		if parserErr.Code != ErrUndeclared {
			t.Errorf("code = %q, want %q", parserErr.Code, ErrUndeclared)
		}
		want := `identifier "Y" has not been declared`
		if !strings.Contains(parserErr.Message, want) {
			t.Errorf("message %q does not contain %q", parserErr.Message, want)
		}
	})

	t.Run("undeclared in expression", func(t *testing.T) {
		parserErr := parseError(t, `program int X; begin X = Y + 1; end`)
		if parserErr.Code != ErrUndeclared {
			t.Errorf("code = %q, want %q", parserErr.Code, ErrUndeclared)
		}
	})
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		prefix string
		line   int
	}{
		{"glued keyword and identifier", "program intX; begin read X; end", "intX", 1},
		{"lone ampersand", "program int X;\nbegin\nif [ ( 1 < 2 ) & ( 2 < 3 ) ] then X = 1; end;\nend", "& ", 3},
		{"unknown character", "program int X;\n@\nbegin read X; end", "@", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parserErr := parseError(t, tt.source)
			if parserErr.Code != ErrIllegalToken {
				t.Fatalf("code = %q, want %q (message: %s)", parserErr.Code, ErrIllegalToken, parserErr.Message)
			}
			if !strings.Contains(parserErr.Message, "Illegal token starting with") {
				t.Errorf("message %q lacks illegal-token wording", parserErr.Message)
			}
			if !strings.Contains(parserErr.Message, `"`+tt.prefix+`"`) {
				t.Errorf("message %q does not name prefix %q", parserErr.Message, tt.prefix)
			}
			if parserErr.Pos.Line != tt.line {
				t.Errorf("line = %d, want %d", parserErr.Pos.Line, tt.line)
			}
		})
	}
}

func TestErrorCarriesFileAndLine(t *testing.T) {
	parserErr := parseError(t, "program\nint X;\nbegin\nread X\nend")
	if parserErr.File != "test.core" {
		t.Errorf("file = %q, want test.core", parserErr.File)
	}
	// The missing semicolon is discovered at `end` on line 5.
	if parserErr.Pos.Line != 5 {
		t.Errorf("line = %d, want 5", parserErr.Pos.Line)
	}
	if !strings.Contains(parserErr.Message, `line 5`) {
		t.Errorf("message %q does not cite line 5", parserErr.Message)
	}
}
