package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var watchFiles bool

var runCmd = &cobra.Command{
	Use:   "run <program> <data>",
	Short: "Interpret a Core program over a data file",
	Long: `Pretty-print and execute a Core program.

The data file supplies one decimal integer per line; each read
statement consumes one line per target identifier.

Examples:
  # Interpret a program
  gocore run program.core program.data

  # Re-interpret whenever either file changes
  gocore run --watch program.core program.data`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		progPath, dataPath := args[0], args[1]

		if !watchFiles {
			if err := interpretFiles(progPath, dataPath); err != nil {
				os.Exit(1)
			}
			return nil
		}

		// Watch mode: rerun on every change, never exit on
		// interpretation errors.
		interpretFiles(progPath, dataPath)

		watcher, err := newFileWatcher(func(path string) {
			if verbose {
				fmt.Fprintf(os.Stderr, "%s changed, re-interpreting\n", path)
			}
			interpretFiles(progPath, dataPath)
		})
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
		if err := watcher.addFile(progPath); err != nil {
			reportError(err)
			os.Exit(1)
		}
		if err := watcher.addFile(dataPath); err != nil {
			reportError(err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "watching %s and %s\n", progPath, dataPath)
		watcher.watch()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&watchFiles, "watch", false, "re-interpret when the program or data file changes")
}
