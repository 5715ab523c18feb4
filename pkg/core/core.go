// Package core provides the embedding API for the Core interpreter.
// It wraps the lexer, parser, printer, and evaluator behind an Engine
// that compiles source text into a Program, which can then be
// pretty-printed and executed over a data stream.
package core

import (
	"fmt"
	"io"

	"github.com/corelang/gocore/internal/ast"
	"github.com/corelang/gocore/internal/interp"
	"github.com/corelang/gocore/internal/lexer"
	"github.com/corelang/gocore/internal/parser"
	"github.com/corelang/gocore/internal/symbols"
	"github.com/corelang/gocore/pkg/printer"
)

// Engine compiles and runs Core programs.
type Engine struct {
	printerOpts []printer.Option
}

// Option configures an Engine.
type Option func(*Engine) error

// WithIndent sets the pretty-printer indentation width.
func WithIndent(width int) Option {
	return func(e *Engine) error {
		if width < 1 {
			return fmt.Errorf("indent width must be positive, got %d", width)
		}
		e.printerOpts = append(e.printerOpts, printer.WithIndent(width))
		return nil
	}
}

// WithTabs switches the pretty-printer to tab indentation.
func WithTabs() Option {
	return func(e *Engine) error {
		e.printerOpts = append(e.printerOpts, printer.WithTabs())
		return nil
	}
}

// New creates an Engine with the given options applied.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Compile tokenizes and parses source into a Program. filename is used
// in diagnostics. Lexical, syntactic, and context-sensitive errors are
// all reported here; the returned error is a *parser.ParserError.
func (e *Engine) Compile(source, filename string) (*Program, error) {
	p := parser.New(lexer.New(source), filename)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return &Program{
		engine:  e,
		ast:     prog,
		symbols: p.Symbols(),
		file:    filename,
	}, nil
}

// Interpret compiles source, writes its pretty-printed form to out, and
// executes it over data. This is the full interpreter pipeline in one
// call.
func (e *Engine) Interpret(source, progName string, data io.Reader, dataName string, out io.Writer) error {
	prog, err := e.Compile(source, progName)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, prog.Format()); err != nil {
		return err
	}
	return prog.Execute(data, dataName, out)
}

// Program is a compiled Core program.
type Program struct {
	engine  *Engine
	ast     *ast.Program
	symbols *symbols.Table
	file    string
}

// Format returns the canonical pretty-printed source.
func (p *Program) Format() string {
	return printer.New(p.engine.printerOpts...).Print(p.ast)
}

// Execute runs the program, reading one integer per line from data for
// read statements and writing labeled values to out for write
// statements. dataName is used in runtime diagnostics. Programs are
// not re-entrant: execute a freshly compiled Program per run.
func (p *Program) Execute(data io.Reader, dataName string, out io.Writer) error {
	i := interp.New(p.symbols, data, out, p.file, dataName)
	return i.Run(p.ast)
}

// Symbol describes one declared identifier after compilation or
// execution.
type Symbol struct {
	Name         string
	DeclaredLine int
	Initialized  bool
	Value        int64
}

// Symbols returns the program's identifiers in declaration order.
func (p *Program) Symbols() []Symbol {
	all := p.symbols.All()
	out := make([]Symbol, len(all))
	for i, s := range all {
		out[i] = Symbol{
			Name:         s.Name,
			DeclaredLine: s.DeclaredLine,
			Initialized:  s.Initialized,
			Value:        s.Value,
		}
	}
	return out
}
