package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corelang/gocore/pkg/core"
)

var (
	fmtWrite   bool
	fmtIndent  int
	fmtUseTabs bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <files...>",
	Short: "Format Core source files",
	Long: `Format Core source files into the canonical layout.

The formatter parses each file and pretty-prints it back with
consistent indentation. By default the result goes to standard
output; -w rewrites the source file in place.

Examples:
  # Format to stdout
  gocore fmt program.core

  # Rewrite files with their formatted version
  gocore fmt -w one.core two.core

  # Use four-space indentation
  gocore fmt --indent 4 program.core`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		for _, path := range args {
			if err := formatFile(path); err != nil {
				os.Exit(1)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", 0, "number of spaces per indentation level (default GOCORE_INDENT or 2)")
	fmtCmd.Flags().BoolVar(&fmtUseTabs, "tabs", false, "use tabs instead of spaces for indentation")
}

// newFmtEngine builds an engine honoring the fmt flags, falling back
// to the environment default indentation.
func newFmtEngine() (*core.Engine, error) {
	if fmtUseTabs {
		return core.New(core.WithTabs())
	}
	width := fmtIndent
	if width == 0 {
		width = indentWidth()
	}
	return core.New(core.WithIndent(width))
}

func formatFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		reportError(fmt.Errorf("failed to read program file: %v", err))
		return err
	}

	engine, err := newFmtEngine()
	if err != nil {
		reportError(err)
		return err
	}

	prog, err := engine.Compile(string(source), path)
	if err != nil {
		reportCompileError(err, string(source))
		return err
	}

	formatted := prog.Format()
	if fmtWrite {
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			reportError(fmt.Errorf("failed to write %s: %v", path, err))
			return err
		}
		return nil
	}
	fmt.Print(formatted)
	return nil
}
