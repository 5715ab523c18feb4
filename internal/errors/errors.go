// Package errors provides diagnostic formatting for the Core
// interpreter. It renders compile-time errors with source context,
// line/column information, and a caret pointing at the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/corelang/gocore/pkg/token"
)

// CompilerError is a single compile-time diagnostic with position and
// source context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a compiler error.
func New(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Message
}

// Format renders the diagnostic with the offending source line and a
// caret. If color is true, ANSI color codes are used.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(e.Message)
	sb.WriteString("\n")

	sourceLine := e.sourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNum := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNum)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNum)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// sourceLine extracts the 1-indexed line from the source text.
func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[lineNum-1], "\r")
}
