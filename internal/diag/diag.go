// Package diag formats and reports compiler diagnostics with source
// context, rendering a caret-pointing excerpt under the offending line.
package diag

import (
	"fmt"
	"os"
	"strings"

	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
)

// Diagnostic is a single fatal compiler message with enough context to
// render a source-pointing caret.
type Diagnostic struct {
	Loc     ident.Loc
	Message string
	Source  string
}

// New builds a Diagnostic from a location, printf-style message, and the
// full source text it was found in (used only to render the offending
// line).
func New(loc ident.Loc, source string, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Loc:     loc,
		Message: fmt.Sprintf(format, args...),
		Source:  source,
	}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic as "file:line:col: message" followed by
// the source line and a caret pointing at the column. If color is true,
// the caret is wrapped in ANSI red-bold escapes.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", d.Loc.String(), d.Message)

	line := sourceLine(d.Source, d.Loc.Line)
	if line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Loc.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+max(d.Loc.Col-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Fatal prints the formatted diagnostic to stderr and terminates the
// process with a non-zero status, per spec §4.2: "fatal(loc, format,
// args) prints file:line:col: message and exits non-zero. No recovery;
// the first fatal ends the compilation."
func Fatal(loc ident.Loc, source string, format string, args ...any) {
	d := New(loc, source, format, args...)
	fmt.Fprint(os.Stderr, d.Format(false))
	os.Exit(1)
}

// FormatAll renders a batch of diagnostics, one after another.
func FormatAll(diags []*Diagnostic, color bool) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.Format(color))
	}
	return sb.String()
}
