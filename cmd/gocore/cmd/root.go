package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/corelang/gocore/internal/interp"
	"github.com/corelang/gocore/internal/parser"
	"github.com/corelang/gocore/pkg/core"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gocore <program> <data>",
	Short: "Core language interpreter",
	Long: `gocore is an interpreter for Core, a small imperative teaching
language with integer variables, read/write I/O, arithmetic,
conditionals, and while loops.

Given a Core program and a data file supplying one integer per line
for read statements, gocore pretty-prints the program in its
canonical form and then executes it, writing labeled values to
standard output.`,
	Version:      Version,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if err := interpretFiles(args[0], args[1]); err != nil {
			os.Exit(1)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	cobra.OnInitialize(func() {
		verbose, _ = rootCmd.PersistentFlags().GetBool("verbose")
	})
}

// indentWidth returns the pretty-printer indentation, overridable via
// the GOCORE_INDENT environment variable.
func indentWidth() int {
	width := env.Int("GOCORE_INDENT", 2)
	if width < 1 {
		return 2
	}
	return width
}

// colorEnabled reports whether diagnostics may use ANSI colors.
// NO_COLOR wins; GOCORE_COLOR forces color on.
func colorEnabled() bool {
	if env.Bool("NO_COLOR") {
		return false
	}
	if env.Bool("GOCORE_COLOR") {
		return true
	}
	return isTerminal(os.Stderr)
}

// reportError writes one diagnostic line to stderr for err.
func reportError(err error) {
	var rtErr *interp.RuntimeError
	if errors.As(err, &rtErr) {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// interpretFiles runs the full pipeline over a program file and a data
// file: pretty-print to stdout, then execute. Diagnostics go to stderr;
// the returned error only signals the exit status.
func interpretFiles(progPath, dataPath string) error {
	source, err := os.ReadFile(progPath)
	if err != nil {
		reportError(fmt.Errorf("failed to read program file: %v", err))
		return err
	}

	engine, err := core.New(core.WithIndent(indentWidth()))
	if err != nil {
		reportError(err)
		return err
	}

	prog, err := engine.Compile(string(source), progPath)
	if err != nil {
		reportError(err)
		return err
	}

	fmt.Print(prog.Format())

	data, err := os.Open(dataPath)
	if err != nil {
		reportError(fmt.Errorf("failed to read data file: %v", err))
		return err
	}
	defer data.Close()

	if err := prog.Execute(data, dataPath, os.Stdout); err != nil {
		reportError(err)
		return err
	}
	return nil
}

// compileFile reads and compiles a program file, reporting any
// diagnostic to stderr.
func compileFile(path string) (*core.Program, string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		reportError(fmt.Errorf("failed to read program file: %v", err))
		return nil, "", err
	}

	engine, err := core.New(core.WithIndent(indentWidth()))
	if err != nil {
		reportError(err)
		return nil, "", err
	}

	prog, err := engine.Compile(string(source), path)
	if err != nil {
		reportCompileError(err, string(source))
		return nil, string(source), err
	}
	return prog, string(source), nil
}

// reportCompileError renders a compile-time diagnostic with source
// context and a caret when position information is available.
func reportCompileError(err error, source string) {
	var parserErr *parser.ParserError
	if errors.As(err, &parserErr) {
		fmt.Fprint(os.Stderr, formatWithContext(parserErr, source))
		return
	}
	reportError(err)
}
