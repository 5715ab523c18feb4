package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corelang/gocore/internal/lexer"
	"github.com/corelang/gocore/pkg/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <program>",
	Short: "Dump the token stream of a Core program",
	Long: `Tokenize a Core program and print one token per line with its
type, literal, and source position. Useful for debugging lexical
issues in a program before parsing it.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		path := args[0]
		source, err := os.ReadFile(path)
		if err != nil {
			reportError(fmt.Errorf("failed to read program file: %v", err))
			os.Exit(1)
		}

		tokens := lexer.New(string(source)).Tokenize()
		for _, tok := range tokens {
			if tok.Type == token.ILLEGAL {
				reportError(fmt.Errorf("File %q, line %d: Illegal token starting with %q",
					path, tok.Pos.Line, tok.Literal))
				os.Exit(1)
			}
			fmt.Printf("%-12s %-10q %s\n", tok.Type, tok.Literal, tok.Pos)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
