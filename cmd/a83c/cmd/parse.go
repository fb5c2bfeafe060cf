package cmd

import (
	"fmt"
	"os"

	"github.com/AdaDoom3/Ada83-sub006/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a compilation unit and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cu := parser.Parse(string(content), args[0])
		for _, w := range cu.WithClauses {
			fmt.Println(w.String())
		}
		for _, u := range cu.UseClauses {
			fmt.Println(u.String())
		}
		fmt.Println(cu.Library.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
