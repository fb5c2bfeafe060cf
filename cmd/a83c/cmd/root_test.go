package cmd

import "testing"

// TestCommandTreeWiring checks the subcommands the CLI spec requires are
// all registered under the root command. The subcommands themselves call
// os.Exit with the driver's process exit code (spec §6), so their
// behavior is exercised through internal/driver's own tests rather than
// by invoking RunE here.
func TestCommandTreeWiring(t *testing.T) {
	want := []string{"run", "emit", "lex", "parse", "version"}
	got := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("rootCmd is missing subcommand %q", name)
		}
	}
}

func TestPersistentFlagsRegistered(t *testing.T) {
	if f := rootCmd.PersistentFlags().Lookup("include"); f == nil {
		t.Error("rootCmd is missing the --include/-I persistent flag")
	}
	if f := rootCmd.PersistentFlags().Lookup("verbose"); f == nil {
		t.Error("rootCmd is missing the --verbose/-v persistent flag")
	}
}
