// Package ast defines the abstract syntax tree produced by the parser.
// Nodes are grouped into families by Go interface (Expr, Stmt, Decl,
// TypeNode); helper nodes (elsif parts, case alternatives, handlers)
// satisfy only Node. Every concrete node embeds Base for the shared
// header §3 and Design Note §9 call for (location, resolved type,
// resolved symbol), composed rather than inherited.
package ast

import "github.com/AdaDoom3/Ada83-sub006/internal/ident"

// Node is the root interface every AST node satisfies.
type Node interface {
	Pos() ident.Loc
	String() string
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
	// ResolvedType/SetResolvedType back-reference the node's resolved
	// type descriptor; ResolvedSymbol/SetResolvedSymbol its symbol.
	// The concrete *types.Type is threaded through via an opaque "any" to
	// avoid an import cycle between ast and types (types.Type embeds
	// references back into ast for e.g. enumeration literal symbols).
	ResolvedType() any
	SetResolvedType(t any)
	ResolvedSymbol() any
	SetResolvedSymbol(s any)
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is any declaration node.
type Decl interface {
	Node
	declNode()
}

// TypeNode is any type-construct node (enumeration def, array def, ...).
type TypeNode interface {
	Node
	typeNode()
}

// Base is the shared header embedded by every concrete node: its source
// location plus the resolver's symbol/type back-references (spec §3:
// "AST node: a tagged variant with shared header ... and per-variant
// payload").
type Base struct {
	Loc  ident.Loc
	Typ  any // *types.Type once resolved
	Sym  any // *symtab.Symbol once resolved
}

func (b *Base) Pos() ident.Loc          { return b.Loc }
func (b *Base) ResolvedType() any       { return b.Typ }
func (b *Base) SetResolvedType(t any)   { b.Typ = t }
func (b *Base) ResolvedSymbol() any     { return b.Sym }
func (b *Base) SetResolvedSymbol(s any) { b.Sym = s }

// exprNode/stmtNode/declNode/typeNode are deliberately NOT defined here:
// each concrete node type defines its own marker method (one line, next
// to its struct) so the Go type checker keeps Expr/Stmt/Decl/TypeNode
// disjoint, rather than a shared base that would let every node satisfy
// every family.

// CompilationUnit is the parse-tree root for one source file: an optional
// context clause (with/use) followed by one library-unit declaration
// (spec §3: "compilation-unit/context").
type CompilationUnit struct {
	Base
	WithClauses []*WithClause
	UseClauses  []*UseClause
	Library     Decl // the library unit: a procedure/package/subprogram decl
}

func (c *CompilationUnit) String() string { return "<compilation-unit>" }

// WithClause names one or more library units to make visible (spec §6).
type WithClause struct {
	Base
	Names []*Identifier
}

func (w *WithClause) String() string { return "with ...;" }
func (w *WithClause) declNode()      {}

// UseClause makes a package's visible declarations use-visible (spec
// §4.7).
type UseClause struct {
	Base
	Names []*Identifier
}

func (u *UseClause) String() string { return "use ...;" }
func (u *UseClause) declNode()      {}
