package cmd

import (
	"fmt"
	"os"

	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a compilation unit and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l := lexer.New(string(content), args[0])
		for {
			tok := l.Next()
			if tok.Kind == lexer.ILLEGAL {
				fmt.Printf("%-12s %-10q @%s  %s\n", tok.Kind, tok.Lit, tok.Loc.String(), tok.Err)
				os.Exit(1)
			}
			fmt.Printf("%-12s %-10q @%s\n", tok.Kind, tok.Lit, tok.Loc.String())
			if tok.Kind == lexer.EOF {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
