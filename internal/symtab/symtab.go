// Package symtab implements the core's symbol table: a fixed 4096-bucket
// hash-chained table keyed by case-insensitive name, with scope level,
// declaration serial, and a directly-visible/use-visible bitmask (§4.7),
// generalized from a simpler per-scope map[string]*Symbol design into
// this bucketed one.
package symtab

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

const bucketCount = 4096

// Visibility bits.
const (
	DirectlyVisible = 1 << iota
	UseVisible
)

// Kind tags what sort of entity a Symbol names.
type Kind int

const (
	KindType Kind = iota
	KindEnumLiteral
	KindException
	KindProcedure
	KindFunction
	KindPackage
	KindVariable
	KindConstant
	KindParameter
	KindLoopVariable
	KindComponent
	KindDiscriminant
	KindEntry
	KindTaskType
	KindLabel
	KindGeneric
	KindGenericFormal
)

// Symbol is one entry in the table (spec §3 "Symbol entry").
type Symbol struct {
	Name  string // original case, for diagnostics
	Fold  string // case-folded, for lookup
	Kind  Kind
	Type  *types.Type
	Node  any // defining AST node (any to avoid an ast<->symtab import cycle)

	ScopeLevel int
	Serial     int
	Visibility int

	next *Symbol // hash-chain link, most-recently-defined first

	Parent *Symbol // enclosing scope's symbol, if any (e.g. a package)

	ConstValue any // compile-time value, for constants and enum literals

	ID   int
	Loc  ident.Loc
}

// Table is the core's semantic context symbol table.
type Table struct {
	buckets    [bucketCount]*Symbol
	scopeLevel int
	serial     int
	elabOrder  int
	nextID     int

	scopeStack []*Symbol // symbols defined at or above the current scope, for PopScope
	usedPkgs   []*Symbol
	exceptions []*Symbol
}

// New returns an empty table at global scope (level 0).
func New() *Table {
	return &Table{}
}

func hashBucket(fold string) int {
	return int(ident.Hash(fold) % bucketCount)
}

// PushScope enters a new nested scope.
func (t *Table) PushScope() { t.scopeLevel++ }

// PopScope leaves the current scope, clearing the directly-visible bit on
// every symbol defined within it. Entries are never unlinked from their
// bucket (spec: "scope exit hides but does not remove the entry").
func (t *Table) PopScope() {
	kept := t.scopeStack[:0]
	for _, s := range t.scopeStack {
		if s.ScopeLevel >= t.scopeLevel {
			s.Visibility &^= DirectlyVisible
			continue
		}
		kept = append(kept, s)
	}
	t.scopeStack = kept
	if t.scopeLevel > 0 {
		t.scopeLevel--
	}
}

// Define installs a new symbol, prepending it to its bucket's chain,
// recording the current scope level and a monotonically increasing
// serial, and setting its direct-visibility bit.
func (t *Table) Define(name string, kind Kind, typ *types.Type, node any, loc ident.Loc) *Symbol {
	fold := ident.Fold(name)
	b := hashBucket(fold)
	t.serial++
	t.nextID++
	sym := &Symbol{
		Name:       name,
		Fold:       fold,
		Kind:       kind,
		Type:       typ,
		Node:       node,
		ScopeLevel: t.scopeLevel,
		Serial:     t.serial,
		Visibility: DirectlyVisible,
		next:       t.buckets[b],
		ID:         t.nextID,
		Loc:        loc,
	}
	t.buckets[b] = sym
	t.scopeStack = append(t.scopeStack, sym)
	if kind == KindException {
		t.exceptions = append(t.exceptions, sym)
	}
	return sym
}

// Lookup finds a symbol by case-insensitive name, preferring a
// directly-visible entry at the deepest scope; otherwise the first
// use-visible entry (spec §4.7).
func (t *Table) Lookup(name string) *Symbol {
	fold := ident.Fold(name)
	b := hashBucket(fold)

	var bestDirect *Symbol
	var firstUse *Symbol
	for s := t.buckets[b]; s != nil; s = s.next {
		if s.Fold != fold {
			continue
		}
		if s.Visibility&DirectlyVisible != 0 {
			if bestDirect == nil || s.ScopeLevel > bestDirect.ScopeLevel {
				bestDirect = s
			}
		} else if s.Visibility&UseVisible != 0 && firstUse == nil {
			firstUse = s
		}
	}
	if bestDirect != nil {
		return bestDirect
	}
	return firstUse
}

// LookupAll returns every visible symbol with the given name, most
// recently defined first, for overload-candidate collection (spec
// §4.7: subprogram overloading resolves among all visible homographs).
func (t *Table) LookupAll(name string) []*Symbol {
	fold := ident.Fold(name)
	b := hashBucket(fold)
	var out []*Symbol
	for s := t.buckets[b]; s != nil; s = s.next {
		if s.Fold != fold {
			continue
		}
		if s.Visibility&(DirectlyVisible|UseVisible) != 0 {
			out = append(out, s)
		}
	}
	return out
}

// SymbolsOfParent returns every symbol whose Parent is the given symbol,
// in declaration order, for installing a used package's declarations as
// use-visible (spec §4.7).
func (t *Table) SymbolsOfParent(parent *Symbol) []*Symbol {
	var out []*Symbol
	for _, b := range t.buckets {
		for s := b; s != nil; s = s.next {
			if s.Parent == parent {
				out = append(out, s)
			}
		}
	}
	return out
}

// CurrentSerial reports the serial of the most recently defined symbol,
// for bracketing a span of declarations (e.g. a package's members) to
// attach as children after the fact.
func (t *Table) CurrentSerial() int { return t.serial }

// SymbolsDefinedAfter returns every symbol with a serial greater than
// serial, in no particular order, for retroactively assigning Parent to
// an enclosing package or task symbol once its member declarations have
// all been installed.
func (t *Table) SymbolsDefinedAfter(serial int) []*Symbol {
	var out []*Symbol
	for _, b := range t.buckets {
		for s := b; s != nil; s = s.next {
			if s.Serial > serial {
				out = append(out, s)
			}
		}
	}
	return out
}

// Use makes a package's visible declarations additionally use-visible.
// Repeating the same package is idempotent.
func (t *Table) Use(pkg *Symbol, visible []*Symbol) {
	for _, p := range t.usedPkgs {
		if p == pkg {
			return
		}
	}
	t.usedPkgs = append(t.usedPkgs, pkg)
	for _, s := range visible {
		s.Visibility |= UseVisible
	}
}

// Exceptions returns every declared exception symbol, in declaration
// order.
func (t *Table) Exceptions() []*Symbol { return t.exceptions }

// Elaborate returns the next elaboration-order counter value.
func (t *Table) Elaborate() int {
	t.elabOrder++
	return t.elabOrder
}
