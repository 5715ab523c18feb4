// Package printer renders a parsed Core program in its canonical
// formatting. The layout follows the reference formatting exactly:
// declarations and statements are indented by one unit per nesting
// level, an if/else body sits one level deeper than its `if`, and a
// while body sits two levels deeper, with the `loop` keyword on its own
// line between them.
package printer

import (
	"strings"

	"github.com/corelang/gocore/internal/ast"
)

// Printer formats Core ASTs.
type Printer struct {
	indent string
}

// Option configures a Printer.
type Option func(*Printer)

// WithIndent sets the number of spaces per indentation level. The
// default is two.
func WithIndent(width int) Option {
	return func(p *Printer) {
		if width > 0 {
			p.indent = strings.Repeat(" ", width)
		}
	}
}

// WithTabs switches indentation to one tab per level.
func WithTabs() Option {
	return func(p *Printer) {
		p.indent = "\t"
	}
}

// New creates a Printer with the given options applied.
func New(opts ...Option) *Printer {
	p := &Printer{indent: "  "}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print returns the canonical source form of the program, terminated by
// a newline.
func (p *Printer) Print(prog *ast.Program) string {
	var sb strings.Builder

	sb.WriteString("program\n")
	for _, decl := range prog.Decls {
		sb.WriteString(p.indent)
		sb.WriteString(decl.String())
		sb.WriteString("\n")
	}
	sb.WriteString("begin\n")
	p.printStmtSeq(&sb, prog.Body, 1)
	sb.WriteString("end\n")

	return sb.String()
}

func (p *Printer) printStmtSeq(sb *strings.Builder, stmts []ast.Statement, level int) {
	for _, stmt := range stmts {
		p.printStmt(sb, stmt, level)
	}
}

func (p *Printer) printStmt(sb *strings.Builder, stmt ast.Statement, level int) {
	prefix := strings.Repeat(p.indent, level)

	switch s := stmt.(type) {
	case *ast.IfStatement:
		sb.WriteString(prefix)
		sb.WriteString("if ")
		sb.WriteString(s.Cond.String())
		sb.WriteString(" then\n")
		p.printStmtSeq(sb, s.Then, level+1)
		if s.Else != nil {
			sb.WriteString(prefix)
			sb.WriteString("else\n")
			p.printStmtSeq(sb, s.Else, level+1)
		}
		sb.WriteString(prefix)
		sb.WriteString("end;\n")
	case *ast.WhileStatement:
		sb.WriteString(prefix)
		sb.WriteString("while ")
		sb.WriteString(s.Cond.String())
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(p.indent, level+1))
		sb.WriteString("loop\n")
		p.printStmtSeq(sb, s.Body, level+2)
		sb.WriteString(prefix)
		sb.WriteString("end;\n")
	default:
		// Assign, read, and write are single lines; their canonical
		// form is the node's String.
		sb.WriteString(prefix)
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
}
