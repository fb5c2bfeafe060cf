package cmd

import (
	"fmt"
	"os"

	"github.com/AdaDoom3/Ada83-sub006/internal/driver"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Lex, parse, analyze, and interpret a compilation unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := driver.Config{IncludePaths: includePaths, Verbose: verbose}
		if verbose {
			fmt.Fprintf(os.Stderr, "running %s\n", args[0])
		}
		os.Exit(driver.Run(cfg, args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
