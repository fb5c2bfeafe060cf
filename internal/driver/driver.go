// Package driver wires the lexer, parser, resolver, evaluator and IR
// emitter together into the two end-to-end pipelines the CLI exposes
// (SPEC_FULL.md §6.1): "run" (lex, parse, analyze, interpret) and
// "emit" (lex, parse, analyze, emit IR). It also owns with-clause
// resolution: a name-keyed lookup across configured search directories,
// implemented as the driver's own recursive compile-then-analyze walk
// rather than a standalone unit registry, since this core shares one
// symbol table across a whole program instead of keeping per-unit symbol
// tables.
package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/interp"
	"github.com/AdaDoom3/Ada83-sub006/internal/ir"
	"github.com/AdaDoom3/Ada83-sub006/internal/parser"
	"github.com/AdaDoom3/Ada83-sub006/internal/semantic"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
)

// unitExtensions is the order spec §6 requires: ".ada", ".adb", ".ads".
var unitExtensions = []string{".ada", ".adb", ".ads"}

// Config holds the include-path search list and CLI flags the driver
// needs (§6: "process-wide singletons are explicitly rejected", so this
// is threaded explicitly rather than held in package-level state).
type Config struct {
	IncludePaths []string
	Verbose      bool
}

// CompileFile parses path and recursively compiles and analyzes every
// library unit named, transitively, by its with-clauses, all against
// one shared Resolver (one symbol table, one type registry for the
// whole program), then analyzes path's own unit last. The directory
// containing path is always searched, in addition to cfg.IncludePaths.
func CompileFile(cfg Config, path string) (*ast.CompilationUnit, *semantic.Resolver, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	paths := append(append([]string{}, cfg.IncludePaths...), filepath.Dir(path))

	cu := parser.Parse(string(source), path)
	r := semantic.New(string(source), path)
	seen := map[string]bool{unitKey(path): true}
	analyzeUnit(paths, r, string(source), path, cu, seen)
	return cu, r, nil
}

func unitKey(path string) string {
	return strings.ToLower(filepath.Base(path))
}

// analyzeUnit resolves cu's own with-clauses depth-first — so every
// dependency is fully analyzed before the unit that names it — then
// repoints r's diagnostic context at (source, file) and analyzes cu
// itself (spec §6: "On hit: load, lex, parse, analyze before resolving
// the requesting compilation unit").
func analyzeUnit(paths []string, r *semantic.Resolver, source, file string, cu *ast.CompilationUnit, seen map[string]bool) {
	for _, w := range cu.WithClauses {
		for _, name := range w.Names {
			depPath, ok := findUnit(paths, name.Name)
			if !ok {
				continue // silent miss, spec §6
			}
			key := unitKey(depPath)
			if seen[key] {
				continue
			}
			seen[key] = true
			depSource, err := os.ReadFile(depPath)
			if err != nil {
				continue
			}
			depCU := parser.Parse(string(depSource), depPath)
			analyzeUnit(paths, r, string(depSource), depPath, depCU, seen)
		}
	}
	r.SetSource(source, file)
	r.Analyze(cu)
}

// findUnit searches paths in order for name (case-folded) with each of
// unitExtensions in turn, returning the first hit.
func findUnit(paths []string, name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, dir := range paths {
		for _, ext := range unitExtensions {
			candidate := filepath.Join(dir, lower+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}
	}
	return "", false
}

// libraryUnitName returns the name a compilation unit's library
// declaration installs in the symbol table, or "" if it names none (a
// renaming or generic at the library level, which this driver does not
// treat as runnable).
func libraryUnitName(d ast.Decl) string {
	switch n := d.(type) {
	case *ast.SubprogramBody:
		return n.Spec.Name
	case *ast.PackageBody:
		return n.Name
	case *ast.PackageSpec:
		return n.Name
	}
	return ""
}

// mainSymbol resolves cu's own library unit to the procedure symbol
// interp.Run should execute: only a procedure is runnable (spec §6's
// "run" pipeline interprets the compilation's library-unit procedure).
// Its formals, if any, are not checked here; Run passes no actuals.
func mainSymbol(cu *ast.CompilationUnit, r *semantic.Resolver) *symtab.Symbol {
	name := libraryUnitName(cu.Library)
	if name == "" {
		return nil
	}
	sym := r.Symbols.Lookup(name)
	if sym == nil || sym.Kind != symtab.KindProcedure {
		return nil
	}
	return sym
}

// Run compiles and interprets path, writing program output to stdout
// and reading program input from stdin, and returns the process exit
// code spec §6 defines: 0 success, 1 for any diagnostic or an unhandled
// exception at top level, 2 reserved for usage errors (not produced by
// this function; the CLI layer returns 2 directly for malformed
// invocations before Run is ever called).
func Run(cfg Config, path string) int {
	return RunIO(cfg, path, os.Stdout, os.Stdin)
}

// RunIO is Run with explicit output/input streams, split out so tests
// can capture program output without touching the process's real
// stdout/stdin.
func RunIO(cfg Config, path string, out io.Writer, in io.Reader) int {
	cu, r, err := CompileFile(cfg, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	main := mainSymbol(cu, r)
	if main == nil {
		fmt.Fprintf(os.Stderr, "%s: no runnable library procedure\n", path)
		return 1
	}

	ctx := interp.New(r.Symbols, r.Types, out, in)
	unhandled := interp.Run(ctx, main)
	ctx.Flush()
	if unhandled != nil {
		fmt.Fprintf(os.Stderr, "unhandled exception: %s\n", unhandled.Error())
		return 1
	}
	return 0
}

// Emit compiles path and writes its IR to w, returning the process exit
// code (spec §6's default, no-subcommand action).
func Emit(cfg Config, path string, w io.Writer) int {
	cu, _, err := CompileFile(cfg, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := ir.Emit(w, cu); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
