package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set by build flags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	includePaths []string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "a83c [file]",
	Short: "Ada 83 front end and tree-walking evaluator",
	Long: `a83c lexes, parses, analyzes, and either interprets or emits an
intermediate representation for a single Ada 83 compilation unit.

With no subcommand, a83c behaves like "a83c emit": it lexes, parses,
analyzes and prints the resolved unit's intermediate representation to
standard output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return emitCmd.RunE(c, args)
	},
	Version: Version,
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

	rootCmd.PersistentFlags().StringSliceVarP(&includePaths, "include", "I", nil, "with-clause search path (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
