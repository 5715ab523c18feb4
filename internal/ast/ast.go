// Package ast defines the Abstract Syntax Tree node types for Core.
//
// The node variants mirror the grammar productions: a Program holds a
// declaration sequence and a statement sequence, statements are the
// five statement forms, conditions are comparisons and the three
// logical connectives, and expressions keep the grammar's right-
// recursive shape for + - *.
package ast

import (
	"strings"

	"github.com/corelang/gocore/internal/symbols"
	"github.com/corelang/gocore/pkg/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal of the token the node begins with.
	TokenLiteral() string

	// String returns the canonical source form of the node. For
	// conditions and expressions this is exactly the pretty-printed
	// form; statement layout (indentation, line breaks) is the
	// printer's job.
	String() string

	// Pos returns the position of the node in the source.
	Pos() token.Position
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()

	// Line returns the 1-based source line the statement begins on.
	// Runtime diagnostics cite this line.
	Line() int
}

// Condition is a node that evaluates to a boolean.
type Condition interface {
	Node
	conditionNode()
}

// Expression is a node that evaluates to an integer.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: a declaration sequence followed by a
// statement sequence.
type Program struct {
	Token token.Token // the PROGRAM token
	Decls []*Declaration
	Body  []Statement
}

func (p *Program) TokenLiteral() string { return p.Token.Literal }
func (p *Program) Pos() token.Position  { return p.Token.Pos }
func (p *Program) String() string {
	var out strings.Builder
	out.WriteString("program\n")
	for _, d := range p.Decls {
		out.WriteString("  ")
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	out.WriteString("begin\n")
	for _, s := range p.Body {
		out.WriteString("  ")
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("end\n")
	return out.String()
}

// Declaration is one `int <id list> ;` declaration.
type Declaration struct {
	Token token.Token // the INT token
	Names []*Identifier
}

func (d *Declaration) TokenLiteral() string { return d.Token.Literal }
func (d *Declaration) Pos() token.Position  { return d.Token.Pos }
func (d *Declaration) String() string {
	var out strings.Builder
	out.WriteString("int ")
	for i, name := range d.Names {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(name.String())
	}
	out.WriteString(";")
	return out.String()
}

// Identifier is a resolved identifier occurrence. Sym addresses the
// shared Symbol record in the program's symbol table.
type Identifier struct {
	Token token.Token // the IDENT token
	Name  string
	Sym   symbols.ID
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Name }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }

// IntegerLiteral is an unsigned integer literal.
type IntegerLiteral struct {
	Token token.Token // the INTEGER token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }
