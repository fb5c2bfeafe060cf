// Command a83c is the Ada 83 core's command-line front end.
package main

import (
	"fmt"
	"os"

	"github.com/AdaDoom3/Ada83-sub006/cmd/a83c/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
