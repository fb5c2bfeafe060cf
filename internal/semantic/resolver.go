// Package semantic implements the core's resolver: a post-order walk
// over the parsed AST that installs symbols, freezes types, folds
// constant integer arithmetic, and annotates every node with its
// resolved type/symbol (§4.8), split file-per-concern (analyze_*.go)
// and built around a fatal-at-first-error model, matching the parser's
// own diagnostic style rather than an accumulating-error batch.
package semantic

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/diag"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// Resolver drives semantic analysis over one compilation unit.
type Resolver struct {
	Symbols *symtab.Table
	Types   *types.Registry

	source string
	file   string

	// returnStack tracks the enclosing subprogram's return type (nil for
	// a procedure) across nested subprogram bodies.
	returnStack []*types.Type
	loopDepth   int
}

// New returns a resolver ready to analyze source from file.
func New(source, file string) *Resolver {
	r := &Resolver{
		Symbols: symtab.New(),
		Types:   types.NewRegistry(),
		source:  source,
		file:    file,
	}
	r.predeclare()
	return r
}

func (r *Resolver) fatal(loc ident.Loc, format string, args ...any) {
	diag.Fatal(loc, r.source, format, args...)
}

// SetSource repoints this resolver's diagnostic context at a different
// file's text, keeping the same Symbols/Types for the whole program.
// The driver calls this once per with-clause-resolved unit before
// Analyze, so a fatal error's file:line:col header names the unit it
// actually occurred in rather than the original root file (spec §6:
// each referenced library unit is "load[ed], lex[ed], parse[d],
// analyze[d]" as its own unit before the requesting one).
func (r *Resolver) SetSource(source, file string) {
	r.source = source
	r.file = file
}

// Analyze resolves a whole compilation unit: its use clauses, then its
// single library-unit declaration (spec §4.8). With-clauses are
// resolved by the driver, which compiles the named units and feeds
// their exported symbols back in before Analyze runs on the dependent
// unit; nothing about a with-clause's syntax itself needs resolution.
func (r *Resolver) Analyze(cu *ast.CompilationUnit) {
	for _, u := range cu.UseClauses {
		r.analyzeUseClause(u)
	}
	r.analyzeDecl(cu.Library)
}

func (r *Resolver) analyzeUseClause(u *ast.UseClause) {
	for _, name := range u.Names {
		sym := r.Symbols.Lookup(name.Name)
		if sym == nil || sym.Kind != symtab.KindPackage {
			r.fatal(name.Pos(), "undefined package %q in use clause", name.Name)
		}
		r.Symbols.Use(sym, r.Symbols.SymbolsOfParent(sym))
	}
}

// currentReturnType reports the innermost enclosing subprogram's return
// type, or nil if there is none (top level) or it is a procedure.
func (r *Resolver) currentReturnType() *types.Type {
	if len(r.returnStack) == 0 {
		return nil
	}
	return r.returnStack[len(r.returnStack)-1]
}
