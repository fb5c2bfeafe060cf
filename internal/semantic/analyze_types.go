package semantic

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// resolveSubtypeIndication turns "TypeMark [constraint]" into a type
// descriptor: the base type unchanged when there is no constraint, or a
// new descriptor carrying the base's shape with overridden bounds
// (spec §4.6, §4.8).
func (r *Resolver) resolveSubtypeIndication(si *ast.SubtypeIndication) *types.Type {
	base, ok := r.Types.Lookup(si.TypeMark)
	if !ok {
		r.fatal(si.Pos(), "undefined type %q", si.TypeMark)
	}
	if si.Constraint == nil {
		return base
	}
	switch c := si.Constraint.(type) {
	case *ast.RangeConstraint:
		low := r.evalConstInt(c.Range.Low)
		high := r.evalConstInt(c.Range.High)
		return &types.Type{
			Kind: base.Kind, Name: base.Name, BaseType: base,
			Low: low, High: high, Size: base.Size, Alignment: base.Alignment,
			Literals: base.Literals,
		}
	case *ast.IndexConstraint:
		if base.Kind != types.Array || len(c.Ranges) == 0 {
			return base
		}
		nt := &types.Type{
			Kind: types.Array, Name: base.Name, BaseType: base,
			ElementType: base.ElementType, IndexType: base.IndexType,
		}
		// the core's minimal model constrains only the first dimension;
		// additional index ranges are accepted but not separately tracked.
		if rng, ok := c.Ranges[0].(*ast.RangeExpr); ok {
			nt.Low = r.evalConstInt(rng.Low)
			nt.High = r.evalConstInt(rng.High)
		}
		types.Freeze(nt)
		return nt
	case *ast.DiscriminantConstraint:
		// component shapes that vary by discriminant value are not
		// modeled; the unconstrained record type is reused as-is.
		return base
	default:
		return base
	}
}

// resolveTypeDefinition builds the type descriptor for a full type
// declaration's definition (spec §4.6, §4.8).
func (r *Resolver) resolveTypeDefinition(name string, def ast.TypeNode, discrs []*ast.ObjectDecl) *types.Type {
	switch d := def.(type) {
	case *ast.EnumerationTypeDef:
		t := types.New(types.Enumeration, name)
		t.Low = 0
		t.High = int64(len(d.Literals) - 1)
		for i, lit := range d.Literals {
			sym := r.Symbols.Define(lit.Name, symtab.KindEnumLiteral, t, lit, lit.Pos())
			sym.ConstValue = int64(i)
			t.Literals = append(t.Literals, sym)
		}
		return t
	case *ast.IntegerTypeDef:
		t := types.New(types.Integer, name)
		t.Low = r.evalConstInt(d.Range.Low)
		t.High = r.evalConstInt(d.Range.High)
		return t
	case *ast.FloatTypeDef:
		return types.New(types.Float, name)
	case *ast.FixedTypeDef:
		return types.New(types.Fixed, name)
	case *ast.ArrayTypeDef:
		return r.resolveArrayTypeDef(name, d)
	case *ast.RecordTypeDef:
		return r.resolveRecordTypeDef(name, d, discrs)
	case *ast.AccessTypeDef:
		t := types.New(types.Access, name)
		if dt, ok := r.Types.Lookup(d.DesignatedName); ok {
			t.ElementType = dt
		} else {
			// a forward reference to a type whose full declaration has not
			// landed yet; the placeholder is replaced once it does, since
			// Define overwrites the registry entry by name.
			t.ElementType = types.New(types.Private, d.DesignatedName)
		}
		return t
	case *ast.DerivedTypeDef:
		parent := r.resolveSubtypeIndication(d.Parent)
		return &types.Type{
			Kind: parent.Kind, Name: name, ParentType: parent, BaseType: parent,
			ElementType: parent.ElementType, IndexType: parent.IndexType,
			Low: parent.Low, High: parent.High,
			Components: parent.Components, Discriminants: parent.Discriminants,
			Literals: parent.Literals, Size: parent.Size, Alignment: parent.Alignment,
		}
	case *ast.PrivateTypeDef:
		return types.New(types.Private, name)
	default:
		return types.New(types.Void, name)
	}
}

func (r *Resolver) resolveArrayTypeDef(name string, d *ast.ArrayTypeDef) *types.Type {
	t := types.New(types.Array, name)
	t.ElementType = r.resolveSubtypeIndication(d.Component)
	if d.Unconstrained || len(d.IndexRanges) == 0 {
		t.IndexType = r.Types.Integer()
		t.Low, t.High = 0, -1
		return t
	}
	switch idx := d.IndexRanges[0].(type) {
	case *ast.RangeExpr:
		t.IndexType = r.Types.Integer()
		t.Low = r.evalConstInt(idx.Low)
		t.High = r.evalConstInt(idx.High)
	case *ast.Identifier:
		if idxType, ok := r.Types.Lookup(idx.Name); ok {
			t.IndexType = idxType
			t.Low, t.High = idxType.Low, idxType.High
		} else {
			t.IndexType = r.Types.Integer()
		}
	default:
		t.IndexType = r.Types.Integer()
	}
	types.Freeze(t)
	return t
}

func (r *Resolver) resolveRecordTypeDef(name string, d *ast.RecordTypeDef, discrs []*ast.ObjectDecl) *types.Type {
	t := types.New(types.Record, name)
	for _, disc := range discrs {
		dt := r.resolveSubtypeIndication(disc.Subtype)
		for _, dn := range disc.Names {
			t.Discriminants = append(t.Discriminants, &types.Component{Name: dn, Type: dt, IsDiscr: true})
		}
	}
	appendComponents := func(decls []*ast.ObjectDecl) {
		for _, comp := range decls {
			ct := r.resolveSubtypeIndication(comp.Subtype)
			for _, cn := range comp.Names {
				t.Components = append(t.Components, &types.Component{Name: cn, Type: ct})
			}
		}
	}
	appendComponents(d.Components)
	if d.Variant != nil {
		// component shapes conditional on the discriminant's value are
		// not modeled; every variant's components are simply flattened
		// into the record's shape.
		for _, v := range d.Variant.Variants {
			appendComponents(v.Components)
		}
	}
	return t
}

// evalConstInt evaluates e as a compile-time integer constant, resolving
// it first so identifier lookups and literal arithmetic folding run
// through the ordinary expression path (spec §4.8).
func (r *Resolver) evalConstInt(e ast.Expr) int64 {
	resolved, _ := r.resolveExpr(e, r.Types.UniversalInteger())
	switch n := resolved.(type) {
	case *ast.IntegerLiteral:
		return n.Value
	case *ast.UnaryExpr:
		v := r.evalConstInt(n.Operand)
		if n.Op == "-" {
			return -v
		}
		return v
	case *ast.Identifier:
		if sym, ok := n.ResolvedSymbol().(*symtab.Symbol); ok {
			if v, ok := sym.ConstValue.(int64); ok {
				return v
			}
		}
		return 0
	default:
		return 0
	}
}
