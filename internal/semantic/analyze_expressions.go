package semantic

import (
	"strings"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// resolveExpr analyzes e under the given expected-type hint (nil if
// none), returning the node to use in its parent's place (unchanged
// except where a call is rewritten to an indexed component or a literal
// arithmetic expression is constant-folded) and its resolved type (spec
// §4.8).
func (r *Resolver) resolveExpr(e ast.Expr, expected *types.Type) (ast.Expr, *types.Type) {
	if e == nil {
		return nil, nil
	}
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		t := r.Types.UniversalInteger()
		n.SetResolvedType(t)
		return n, t
	case *ast.RealLiteral:
		t := r.Types.UniversalReal()
		n.SetResolvedType(t)
		return n, t
	case *ast.CharLiteral:
		t := r.Types.Character()
		n.SetResolvedType(t)
		return n, t
	case *ast.StringLiteral:
		t := stringLiteralType(r)
		n.SetResolvedType(t)
		return n, t
	case *ast.NullLiteral:
		t := expected
		if t == nil {
			t = types.New(types.Access, "universal_access")
		}
		n.SetResolvedType(t)
		return n, t
	case *ast.OthersChoice:
		return n, nil
	case *ast.Identifier:
		return r.analyzeIdentifier(n, expected)
	case *ast.BinaryExpr:
		return r.analyzeBinary(n, expected)
	case *ast.UnaryExpr:
		return r.analyzeUnary(n, expected)
	case *ast.AttributeExpr:
		return r.analyzeAttribute(n, expected)
	case *ast.QualifiedExpr:
		return r.analyzeQualified(n, expected)
	case *ast.CallExpr:
		return r.analyzeCall(n, expected)
	case *ast.IndexedExpr:
		return r.analyzeIndexed(n, expected)
	case *ast.SliceExpr:
		return r.analyzeSlice(n, expected)
	case *ast.SelectedExpr:
		return r.analyzeSelected(n, expected)
	case *ast.AllocatorExpr:
		return r.analyzeAllocator(n, expected)
	case *ast.DereferenceExpr:
		return r.analyzeDereference(n, expected)
	case *ast.AggregateExpr:
		return r.analyzeAggregate(n, expected)
	case *ast.RangeExpr:
		return r.analyzeRange(n, expected)
	case *ast.Association:
		val, t := r.resolveExpr(n.Value, expected)
		n.Value = val
		return n, t
	default:
		return e, nil
	}
}

func stringLiteralType(r *Resolver) *types.Type {
	t := types.New(types.Array, "string_literal")
	t.ElementType = r.Types.Character()
	return t
}

// analyzeIdentifier binds a name to an enumeration literal of the
// expected type, or else performs a global symbol lookup (spec §4.8:
// "if the expected type is an enumeration and the name matches a
// literal, bind to that literal; else global-lookup; else fatal unless
// the name is `others`").
func (r *Resolver) analyzeIdentifier(n *ast.Identifier, expected *types.Type) (ast.Expr, *types.Type) {
	if expected != nil && expected.Kind == types.Enumeration {
		for _, lit := range expected.Literals {
			if sym, ok := lit.(*symtab.Symbol); ok && ident.Equal(sym.Name, n.Name) {
				n.SetResolvedSymbol(sym)
				n.SetResolvedType(expected)
				return n, expected
			}
		}
	}
	if ident.Equal(n.Name, "others") {
		return n, nil
	}
	sym := r.Symbols.Lookup(n.Name)
	if sym == nil {
		r.fatal(n.Pos(), "undefined identifier %q", n.Name)
	}
	n.SetResolvedSymbol(sym)
	n.SetResolvedType(sym.Type)
	return n, sym.Type
}

// analyzeBinary resolves both operands under the same expected type and
// folds integer-literal arithmetic in place (spec §4.8); division and
// modulo by a literal zero divisor suppress folding, leaving the
// constraint-error check to the evaluator.
func (r *Resolver) analyzeBinary(n *ast.BinaryExpr, expected *types.Type) (ast.Expr, *types.Type) {
	left, lt := r.resolveExpr(n.Left, expected)
	right, _ := r.resolveExpr(n.Right, expected)
	n.Left, n.Right = left, right

	result := lt
	switch n.Op {
	case "=", "/=", "<", "<=", ">", ">=", "and", "or", "xor", "and then", "or else":
		result = r.Types.Boolean()
	case "&":
		result = lt
	}
	n.SetResolvedType(result)

	if folded := r.foldBinary(n); folded != nil {
		return folded, result
	}
	return n, result
}

func (r *Resolver) foldBinary(n *ast.BinaryExpr) *ast.IntegerLiteral {
	li, lok := n.Left.(*ast.IntegerLiteral)
	ri, rok := n.Right.(*ast.IntegerLiteral)
	if !lok || !rok || li.Big != nil || ri.Big != nil {
		return nil
	}
	var v int64
	switch n.Op {
	case "+":
		v = li.Value + ri.Value
	case "-":
		v = li.Value - ri.Value
	case "*":
		v = li.Value * ri.Value
	case "/":
		if ri.Value == 0 {
			return nil
		}
		v = li.Value / ri.Value
	case "mod":
		if ri.Value == 0 {
			return nil
		}
		v = ((li.Value % ri.Value) + ri.Value) % ri.Value
	case "rem":
		if ri.Value == 0 {
			return nil
		}
		v = li.Value % ri.Value
	default:
		return nil
	}
	out := &ast.IntegerLiteral{Base: ast.Base{Loc: n.Pos()}, Value: v}
	out.SetResolvedType(r.Types.UniversalInteger())
	return out
}

func (r *Resolver) analyzeUnary(n *ast.UnaryExpr, expected *types.Type) (ast.Expr, *types.Type) {
	operand, t := r.resolveExpr(n.Operand, expected)
	n.Operand = operand
	result := t
	if n.Op == "not" {
		result = r.Types.Boolean()
	}
	n.SetResolvedType(result)

	if lit, ok := n.Operand.(*ast.IntegerLiteral); ok && lit.Big == nil {
		switch n.Op {
		case "-":
			out := &ast.IntegerLiteral{Base: ast.Base{Loc: n.Pos()}, Value: -lit.Value}
			out.SetResolvedType(r.Types.UniversalInteger())
			return out, result
		case "+":
			return lit, result
		}
	}
	return n, result
}

// analyzeAttribute resolves Prefix'Designator[(Args)] to the result type
// the source language's standard attribute table assigns the designator
// (spec §4.8).
func (r *Resolver) analyzeAttribute(n *ast.AttributeExpr, expected *types.Type) (ast.Expr, *types.Type) {
	prefix, pt := r.resolveExpr(n.Prefix, nil)
	n.Prefix = prefix
	for i, a := range n.Args {
		v, _ := r.resolveExpr(a, nil)
		n.Args[i] = v
	}

	var result *types.Type
	switch strings.ToUpper(n.Designator) {
	case "FIRST", "LAST", "SUCC", "PRED", "VAL":
		if pt != nil && pt.Kind == types.Array {
			result = pt.IndexType
		} else {
			result = pt
		}
	case "LENGTH", "POS", "COUNT", "SIZE":
		result = r.Types.Integer()
	case "IMAGE":
		result = stringLiteralType(r)
	default:
		result = pt
	}
	n.SetResolvedType(result)
	return n, result
}

func (r *Resolver) analyzeQualified(n *ast.QualifiedExpr, expected *types.Type) (ast.Expr, *types.Type) {
	name := ""
	if id, ok := n.Prefix.(*ast.Identifier); ok {
		name = id.Name
	}
	t, ok := r.Types.Lookup(name)
	if !ok {
		r.fatal(n.Pos(), "undefined type %q in qualified expression", name)
	}
	val, _ := r.resolveExpr(n.Value, t)
	n.Value = val
	n.SetResolvedType(t)
	return n, t
}

// calleeCandidates extracts the overload-candidate set and plain name for
// a call's callee, when it is a simple name or a package-selected name;
// any other callee shape (e.g. a dereferenced access-to-subprogram) is
// reported back via an empty name so analyzeCall falls back to resolving
// it as an ordinary expression.
func (r *Resolver) calleeCandidates(e ast.Expr) ([]*symtab.Symbol, string, ident.Loc) {
	switch c := e.(type) {
	case *ast.Identifier:
		return r.Symbols.LookupAll(c.Name), c.Name, c.Pos()
	case *ast.SelectedExpr:
		if id, ok := c.Prefix.(*ast.Identifier); ok {
			pkgSym := r.Symbols.Lookup(id.Name)
			if pkgSym != nil && pkgSym.Kind == symtab.KindPackage {
				var out []*symtab.Symbol
				for _, m := range r.Symbols.SymbolsOfParent(pkgSym) {
					if ident.Equal(m.Name, c.Selector) {
						out = append(out, m)
					}
				}
				return out, c.Selector, c.Pos()
			}
		}
	}
	return nil, "", ident.Loc{}
}

// analyzeCall resolves Callee(Args): an array-typed callee is rewritten
// to an indexed component, a type-named callee is a type conversion, and
// otherwise the callee is a subprogram name resolved by overload
// (spec §4.8).
func (r *Resolver) analyzeCall(n *ast.CallExpr, expected *types.Type) (ast.Expr, *types.Type) {
	candidates, name, loc := r.calleeCandidates(n.Callee)
	if name == "" {
		callee, ct := r.resolveExpr(n.Callee, nil)
		n.Callee = callee
		for i, a := range n.Args {
			v, _ := r.resolveExpr(a.Value, nil)
			n.Args[i].Value = v
		}
		n.SetResolvedType(ct)
		return n, ct
	}

	if len(candidates) == 0 {
		r.fatal(loc, "undefined identifier %q", name)
	}

	if len(candidates) == 1 && candidates[0].Kind != symtab.KindProcedure && candidates[0].Kind != symtab.KindFunction {
		sym := candidates[0]
		if sym.Kind == symtab.KindType {
			if len(n.Args) != 1 {
				r.fatal(n.Pos(), "type conversion %q takes exactly one argument", name)
			}
			val, _ := r.resolveExpr(n.Args[0].Value, sym.Type)
			n.Args[0].Value = val
			n.SetResolvedType(sym.Type)
			n.SetResolvedSymbol(sym)
			return n, sym.Type
		}
		if sym.Type != nil && sym.Type.Kind == types.Array {
			callee, _ := r.resolveExpr(n.Callee, nil)
			idx := &ast.IndexedExpr{Base: ast.Base{Loc: n.Pos()}, Prefix: callee}
			for _, a := range n.Args {
				v, _ := r.resolveExpr(a.Value, sym.Type.IndexType)
				idx.Indices = append(idx.Indices, v)
			}
			idx.SetResolvedType(sym.Type.ElementType)
			return idx, sym.Type.ElementType
		}
		r.fatal(n.Pos(), "%q is not callable", name)
		return n, nil
	}

	var argTypes []*types.Type
	for i, a := range n.Args {
		v, t := r.resolveExpr(a.Value, nil)
		n.Args[i].Value = v
		argTypes = append(argTypes, t)
	}

	var cands []symtab.Candidate
	for _, c := range candidates {
		if c.Kind != symtab.KindProcedure && c.Kind != symtab.KindFunction {
			continue
		}
		pts, rt := r.signatureOf(c)
		cands = append(cands, symtab.Candidate{Symbol: c, ParamTypes: pts, ReturnType: rt})
	}
	best := symtab.Resolve(cands, argTypes, expected)
	if best == nil {
		r.fatal(n.Pos(), "no matching overload for %q", name)
	}
	n.SetResolvedSymbol(best)
	n.SetResolvedType(best.Type)
	return n, best.Type
}

// signatureOf extracts a subprogram symbol's parameter and return types
// from its defining spec or body node.
func (r *Resolver) signatureOf(sym *symtab.Symbol) ([]*types.Type, *types.Type) {
	spec := specOf(sym.Node)
	if spec == nil {
		return nil, sym.Type
	}
	var pts []*types.Type
	for _, p := range spec.Params {
		pt := r.resolveSubtypeIndication(p.Subtype)
		for range p.Names {
			pts = append(pts, pt)
		}
	}
	var rt *types.Type
	if spec.IsFunction {
		rt, _ = r.Types.Lookup(spec.ReturnType)
	}
	return pts, rt
}

func specOf(node any) *ast.SubprogramSpec {
	switch s := node.(type) {
	case *ast.SubprogramSpec:
		return s
	case *ast.SubprogramBody:
		return s.Spec
	default:
		return nil
	}
}

func (r *Resolver) analyzeIndexed(n *ast.IndexedExpr, expected *types.Type) (ast.Expr, *types.Type) {
	prefix, pt := r.resolveExpr(n.Prefix, nil)
	n.Prefix = prefix
	var indexType *types.Type
	if pt != nil {
		indexType = pt.IndexType
	}
	for i, idx := range n.Indices {
		v, _ := r.resolveExpr(idx, indexType)
		n.Indices[i] = v
	}
	var elem *types.Type
	if pt != nil {
		elem = pt.ElementType
	}
	n.SetResolvedType(elem)
	return n, elem
}

func (r *Resolver) analyzeSlice(n *ast.SliceExpr, expected *types.Type) (ast.Expr, *types.Type) {
	prefix, pt := r.resolveExpr(n.Prefix, nil)
	n.Prefix = prefix
	low, _ := r.resolveExpr(n.Low, r.Types.Integer())
	high, _ := r.resolveExpr(n.High, r.Types.Integer())
	n.Low, n.High = low, high
	n.SetResolvedType(pt)
	return n, pt
}

// analyzeSelected resolves Prefix.Selector: a package-qualified name, or
// a record component selection (spec §4.8).
func (r *Resolver) analyzeSelected(n *ast.SelectedExpr, expected *types.Type) (ast.Expr, *types.Type) {
	if id, ok := n.Prefix.(*ast.Identifier); ok {
		sym := r.Symbols.Lookup(id.Name)
		if sym != nil && sym.Kind == symtab.KindPackage {
			for _, m := range r.Symbols.SymbolsOfParent(sym) {
				if ident.Equal(m.Name, n.Selector) {
					n.SetResolvedSymbol(m)
					n.SetResolvedType(m.Type)
					return n, m.Type
				}
			}
			r.fatal(n.Pos(), "undefined selector %q in package %q", n.Selector, id.Name)
		}
	}
	prefix, pt := r.resolveExpr(n.Prefix, nil)
	n.Prefix = prefix
	if pt != nil && pt.Kind == types.Record {
		for _, c := range pt.Components {
			if ident.Equal(c.Name, n.Selector) {
				n.SetResolvedType(c.Type)
				return n, c.Type
			}
		}
		for _, d := range pt.Discriminants {
			if ident.Equal(d.Name, n.Selector) {
				n.SetResolvedType(d.Type)
				return n, d.Type
			}
		}
	}
	r.fatal(n.Pos(), "undefined selector %q", n.Selector)
	return n, nil
}

func (r *Resolver) analyzeAllocator(n *ast.AllocatorExpr, expected *types.Type) (ast.Expr, *types.Type) {
	designated, ok := r.Types.Lookup(n.SubtypeName)
	if !ok {
		r.fatal(n.Pos(), "undefined type %q in allocator", n.SubtypeName)
	}
	if n.Qualifier != nil {
		q, _ := r.resolveExpr(n.Qualifier, designated)
		n.Qualifier = q
	}
	access := types.New(types.Access, "access "+n.SubtypeName)
	access.ElementType = designated
	n.SetResolvedType(access)
	return n, access
}

func (r *Resolver) analyzeDereference(n *ast.DereferenceExpr, expected *types.Type) (ast.Expr, *types.Type) {
	prefix, pt := r.resolveExpr(n.Prefix, nil)
	n.Prefix = prefix
	var result *types.Type
	if pt != nil {
		result = pt.ElementType
	}
	n.SetResolvedType(result)
	return n, result
}

func (r *Resolver) analyzeAggregate(n *ast.AggregateExpr, expected *types.Type) (ast.Expr, *types.Type) {
	isRecord := expected != nil && expected.Kind == types.Record
	var elemExpected *types.Type
	if expected != nil {
		elemExpected = expected.ElementType
	}
	for _, el := range n.Elements {
		compExpected := elemExpected
		for i, c := range el.Choices {
			// A record aggregate's choice names a component, not a
			// value; resolving it as an identifier would look it up as
			// a global symbol and fail. Leave it unresolved and use its
			// Name directly at evaluation time.
			if isRecord {
				if _, ok := c.(*ast.OthersChoice); !ok {
					if id, ok := c.(*ast.Identifier); ok {
						if ct := componentType(expected, id.Name); ct != nil {
							compExpected = ct
						}
						continue
					}
				}
			}
			v, _ := r.resolveExpr(c, nil)
			el.Choices[i] = v
		}
		v, _ := r.resolveExpr(el.Value, compExpected)
		el.Value = v
	}
	n.SetResolvedType(expected)
	return n, expected
}

func componentType(rec *types.Type, name string) *types.Type {
	for _, c := range rec.Components {
		if ident.Equal(c.Name, name) {
			return c.Type
		}
	}
	for _, d := range rec.Discriminants {
		if ident.Equal(d.Name, name) {
			return d.Type
		}
	}
	return nil
}

func (r *Resolver) analyzeRange(n *ast.RangeExpr, expected *types.Type) (ast.Expr, *types.Type) {
	low, lt := r.resolveExpr(n.Low, expected)
	high, _ := r.resolveExpr(n.High, expected)
	n.Low, n.High = low, high
	n.SetResolvedType(lt)
	return n, lt
}
