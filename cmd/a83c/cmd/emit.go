package cmd

import (
	"fmt"
	"os"

	"github.com/AdaDoom3/Ada83-sub006/internal/driver"
	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit <file>",
	Short: "Lex, parse, analyze, and emit the IR to standard output",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := driver.Config{IncludePaths: includePaths, Verbose: verbose}
		if verbose {
			fmt.Fprintf(os.Stderr, "emitting %s\n", args[0])
		}
		os.Exit(driver.Emit(cfg, args[0], os.Stdout))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(emitCmd)
}
