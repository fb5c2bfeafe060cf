package interp

import (
	"math"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// Eval evaluates a resolved expression node to a runtime Value (spec
// §4.9's eval-expr). Every case assumes the resolver has already
// annotated the node with its resolved type/symbol; Eval never reports
// semantic errors, only the runtime ones the source language itself
// defines (division by zero, range violations, null dereference, ...).
func Eval(ctx *Context, e ast.Expr) Value {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		if n.Big != nil {
			v, ok := n.Big.Int64()
			if !ok {
				raise(ConstraintError, "integer literal %s does not fit a runtime value", n.Big.String())
			}
			return NewInteger(v, resolvedType(ctx, n))
		}
		return NewInteger(n.Value, resolvedType(ctx, n))
	case *ast.RealLiteral:
		return NewReal(n.Value, resolvedType(ctx, n))
	case *ast.CharLiteral:
		return NewInteger(n.Value, resolvedType(ctx, n))
	case *ast.StringLiteral:
		return NewString(n.Value, resolvedType(ctx, n))
	case *ast.NullLiteral:
		return Value{Kind: KindAccess, Type: resolvedType(ctx, n)}
	case *ast.OthersChoice:
		return None
	case *ast.Identifier:
		return evalIdentifier(ctx, n)
	case *ast.BinaryExpr:
		return evalBinary(ctx, n)
	case *ast.UnaryExpr:
		return evalUnary(ctx, n)
	case *ast.AttributeExpr:
		return evalAttribute(ctx, n)
	case *ast.QualifiedExpr:
		v := Eval(ctx, n.Value)
		v.Type = resolvedType(ctx, n)
		return v
	case *ast.CallExpr:
		return evalCall(ctx, n)
	case *ast.IndexedExpr:
		cell := indexCell(ctx, n)
		return *cell
	case *ast.SliceExpr:
		return evalSlice(ctx, n)
	case *ast.SelectedExpr:
		cell := selectedCell(ctx, n)
		return *cell
	case *ast.AllocatorExpr:
		return evalAllocator(ctx, n)
	case *ast.DereferenceExpr:
		ref := Eval(ctx, n.Prefix)
		if ref.Ref == nil {
			raise(ConstraintError, "dereference of null access value")
		}
		return *ref.Ref
	case *ast.AggregateExpr:
		return evalAggregate(ctx, n, resolvedType(ctx, n))
	case *ast.RangeExpr:
		return Eval(ctx, n.Low)
	default:
		return None
	}
}

func resolvedType(ctx *Context, e ast.Expr) *types.Type {
	if t, ok := e.ResolvedType().(*types.Type); ok {
		return t
	}
	return nil
}

func evalIdentifier(ctx *Context, n *ast.Identifier) Value {
	sym, ok := n.ResolvedSymbol().(*symtab.Symbol)
	if !ok || sym == nil {
		return None
	}
	switch sym.Kind {
	case symtab.KindEnumLiteral:
		if ord, ok := sym.ConstValue.(int64); ok {
			return NewInteger(ord, sym.Type)
		}
		return NewInteger(0, sym.Type)
	case symtab.KindConstant:
		if cell := ctx.cell(sym); cell != nil {
			return *cell
		}
		if ord, ok := sym.ConstValue.(int64); ok {
			return NewInteger(ord, sym.Type)
		}
		if od, ok := sym.Node.(*ast.ObjectDecl); ok && od.Init != nil {
			return Eval(ctx, od.Init)
		}
		return zeroValue(sym.Type)
	default:
		if cell := ctx.cell(sym); cell != nil {
			return *cell
		}
		return zeroValue(sym.Type)
	}
}

func evalBinary(ctx *Context, n *ast.BinaryExpr) Value {
	switch n.Op {
	case "and then":
		l := Eval(ctx, n.Left)
		if !Truthy(l) {
			return l
		}
		return Eval(ctx, n.Right)
	case "or else":
		l := Eval(ctx, n.Left)
		if Truthy(l) {
			return l
		}
		return Eval(ctx, n.Right)
	}

	l := Eval(ctx, n.Left)
	r := Eval(ctx, n.Right)
	boolType := resultBoolType(ctx, n)

	switch n.Op {
	case "and":
		return Bool(Truthy(l) && Truthy(r), boolType)
	case "or":
		return Bool(Truthy(l) || Truthy(r), boolType)
	case "xor":
		return Bool(Truthy(l) != Truthy(r), boolType)
	case "&":
		return evalConcat(l, r, resolvedType(ctx, n))
	case "=":
		return Bool(valuesEqual(l, r), boolType)
	case "/=":
		return Bool(!valuesEqual(l, r), boolType)
	}

	if l.Kind == KindReal || r.Kind == KindReal {
		return evalRealBinary(n.Op, l, r, boolType, resolvedType(ctx, n))
	}
	return evalIntBinary(ctx, n.Op, l, r, boolType, resolvedType(ctx, n))
}

func resultBoolType(ctx *Context, n *ast.BinaryExpr) *types.Type {
	switch n.Op {
	case "=", "/=", "<", "<=", ">", ">=", "and", "or", "xor":
		if t := resolvedType(ctx, n); t != nil {
			return t
		}
		return ctx.Types.Boolean()
	default:
		return ctx.Types.Boolean()
	}
}

func evalIntBinary(ctx *Context, op string, l, r Value, boolType, resType *types.Type) Value {
	a, b := l.Int, r.Int
	switch op {
	case "+":
		return NewInteger(a+b, resType)
	case "-":
		return NewInteger(a-b, resType)
	case "*":
		return NewInteger(a*b, resType)
	case "/":
		if b == 0 {
			raise(ConstraintError, "division by zero")
		}
		return NewInteger(a/b, resType)
	case "mod":
		if b == 0 {
			raise(ConstraintError, "mod by zero")
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return NewInteger(m, resType)
	case "rem":
		if b == 0 {
			raise(ConstraintError, "rem by zero")
		}
		return NewInteger(a%b, resType)
	case "**":
		return NewInteger(ipow(a, b), resType)
	case "<":
		return Bool(a < b, boolType)
	case "<=":
		return Bool(a <= b, boolType)
	case ">":
		return Bool(a > b, boolType)
	case ">=":
		return Bool(a >= b, boolType)
	default:
		return None
	}
}

func evalRealBinary(op string, l, r Value, boolType, resType *types.Type) Value {
	a, b := asFloat(l), asFloat(r)
	switch op {
	case "+":
		return NewReal(a+b, resType)
	case "-":
		return NewReal(a-b, resType)
	case "*":
		return NewReal(a*b, resType)
	case "/":
		if b == 0 {
			raise(ConstraintError, "division by zero")
		}
		return NewReal(a/b, resType)
	case "**":
		// The right operand of "**" is always of type Integer (spec §4.6),
		// even when the left operand is real.
		return NewReal(math.Pow(a, float64(r.Int)), resType)
	case "<":
		return Bool(a < b, boolType)
	case "<=":
		return Bool(a <= b, boolType)
	case ">":
		return Bool(a > b, boolType)
	case ">=":
		return Bool(a >= b, boolType)
	default:
		return None
	}
}

func asFloat(v Value) float64 {
	if v.Kind == KindReal {
		return v.Real
	}
	return float64(v.Int)
}

func ipow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	var result int64 = 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

func evalConcat(l, r Value, resType *types.Type) Value {
	lb, lok := charBytes(l)
	rb, rok := charBytes(r)
	if lok || rok {
		buf := append(append([]byte{}, lb...), rb...)
		return Value{Kind: KindString, Type: resType, Str: &StringObj{Bytes: buf}}
	}
	var elems []Value
	if l.Kind == KindArray && l.Arr != nil {
		elems = append(elems, l.Arr.Elements...)
	} else {
		elems = append(elems, l)
	}
	if r.Kind == KindArray && r.Arr != nil {
		elems = append(elems, r.Arr.Elements...)
	} else {
		elems = append(elems, r)
	}
	return Value{Kind: KindArray, Type: resType, Arr: &ArrayObj{Elements: elems, Low: 1, High: int64(len(elems))}}
}

// charBytes renders a string or single-character value as bytes, for
// use by "&" catenation; ok is false for values that are neither.
func charBytes(v Value) ([]byte, bool) {
	switch v.Kind {
	case KindString:
		if v.Str == nil {
			return nil, true
		}
		return v.Str.Bytes, true
	case KindInteger:
		if v.Type != nil && v.Type.Kind == types.Character {
			return []byte{byte(v.Int)}, true
		}
	}
	return nil, false
}

func valuesEqual(l, r Value) bool {
	switch {
	case l.Kind == KindReal || r.Kind == KindReal:
		return asFloat(l) == asFloat(r)
	case l.Kind == KindString || r.Kind == KindString:
		lb, _ := charBytes(l)
		rb, _ := charBytes(r)
		return string(lb) == string(rb)
	case l.Kind == KindArray && r.Kind == KindArray:
		if l.Arr == nil || r.Arr == nil || len(l.Arr.Elements) != len(r.Arr.Elements) {
			return l.Arr == r.Arr
		}
		for i := range l.Arr.Elements {
			if !valuesEqual(l.Arr.Elements[i], r.Arr.Elements[i]) {
				return false
			}
		}
		return true
	case l.Kind == KindAccess || r.Kind == KindAccess:
		return l.Ref == r.Ref
	case l.Kind == KindRecord && r.Kind == KindRecord:
		if l.Rec == nil || r.Rec == nil || len(l.Rec.Fields) != len(r.Rec.Fields) {
			return l.Rec == r.Rec
		}
		for i := range l.Rec.Fields {
			if !valuesEqual(*l.Rec.Fields[i].Cell, *r.Rec.Fields[i].Cell) {
				return false
			}
		}
		return true
	default:
		return l.Int == r.Int
	}
}

func evalUnary(ctx *Context, n *ast.UnaryExpr) Value {
	v := Eval(ctx, n.Operand)
	switch n.Op {
	case "not":
		return Bool(!Truthy(v), resultType(ctx, n, ctx.Types.Boolean()))
	case "-":
		if v.Kind == KindReal {
			return NewReal(-v.Real, v.Type)
		}
		return NewInteger(-v.Int, v.Type)
	case "+":
		return v
	case "abs":
		if v.Kind == KindReal {
			if v.Real < 0 {
				return NewReal(-v.Real, v.Type)
			}
			return v
		}
		if v.Int < 0 {
			return NewInteger(-v.Int, v.Type)
		}
		return v
	default:
		return v
	}
}

func resultType(ctx *Context, e ast.Expr, fallback *types.Type) *types.Type {
	if t := resolvedType(ctx, e); t != nil {
		return t
	}
	return fallback
}

func evalSlice(ctx *Context, n *ast.SliceExpr) Value {
	prefix := Eval(ctx, n.Prefix)
	low := Eval(ctx, n.Low).Int
	high := Eval(ctx, n.High).Int
	switch prefix.Kind {
	case KindString:
		if prefix.Str == nil || low < 1 || high > int64(len(prefix.Str.Bytes)) {
			if high >= low {
				raise(ConstraintError, "slice (%d .. %d) out of bounds", low, high)
			}
		}
		n := high - low + 1
		if n < 0 {
			n = 0
		}
		buf := make([]byte, n)
		if n > 0 {
			copy(buf, prefix.Str.Bytes[low-1:high])
		}
		return Value{Kind: KindString, Type: prefix.Type, Str: &StringObj{Bytes: buf}}
	case KindArray:
		if prefix.Arr == nil {
			return prefix
		}
		var elems []Value
		for i := low; i <= high; i++ {
			idx := i - prefix.Arr.Low
			if idx < 0 || int(idx) >= len(prefix.Arr.Elements) {
				raise(ConstraintError, "slice index %d out of bounds", i)
			}
			elems = append(elems, prefix.Arr.Elements[idx])
		}
		return Value{Kind: KindArray, Type: prefix.Type, Arr: &ArrayObj{Elements: elems, Low: low, High: high}}
	default:
		return prefix
	}
}

func evalAllocator(ctx *Context, n *ast.AllocatorExpr) Value {
	t := resolvedType(ctx, n)
	var designated *types.Type
	if t != nil {
		designated = t.ElementType
	}
	var init Value
	if n.Qualifier != nil {
		init = Eval(ctx, n.Qualifier)
	} else {
		init = zeroValue(designated)
	}
	cell := new(Value)
	*cell = init
	return Value{Kind: KindAccess, Type: t, Ref: cell}
}

func evalAggregate(ctx *Context, n *ast.AggregateExpr, t *types.Type) Value {
	if t != nil && t.Kind == types.Record {
		return evalRecordAggregate(ctx, n, t)
	}
	return evalArrayAggregate(ctx, n, t)
}

func evalRecordAggregate(ctx *Context, n *ast.AggregateExpr, t *types.Type) Value {
	v := zeroRecord(t)
	pos := 0
	allComponents := append(append([]*types.Component{}, t.Discriminants...), t.Components...)
	for _, el := range n.Elements {
		val := Eval(ctx, el.Value)
		if len(el.Choices) == 0 {
			if pos < len(allComponents) {
				*findComponent(v.Rec, allComponents[pos].Name) = val
				pos++
			}
			continue
		}
		for _, c := range el.Choices {
			if id, ok := c.(*ast.Identifier); ok {
				if cell := findComponent(v.Rec, id.Name); cell != nil {
					*cell = val
				}
			}
		}
	}
	return v
}

func evalArrayAggregate(ctx *Context, n *ast.AggregateExpr, t *types.Type) Value {
	var elemType *types.Type
	low := int64(1)
	if t != nil {
		elemType = t.ElementType
		if t.Low != 0 || t.High != 0 {
			low = t.Low
		}
	}
	var elems []Value
	next := low
	for _, el := range n.Elements {
		val := Eval(ctx, el.Value)
		if len(el.Choices) == 0 {
			elems = appendAt(elems, next-low, val, elemType)
			next++
			continue
		}
		for _, c := range el.Choices {
			if _, ok := c.(*ast.OthersChoice); ok {
				continue
			}
			if rng, ok := c.(*ast.RangeExpr); ok {
				lo := Eval(ctx, rng.Low).Int
				hi := Eval(ctx, rng.High).Int
				for i := lo; i <= hi; i++ {
					elems = appendAt(elems, i-low, val, elemType)
				}
				if hi+1 > next {
					next = hi + 1
				}
				continue
			}
			idx := Eval(ctx, c).Int
			elems = appendAt(elems, idx-low, val, elemType)
			if idx+1 > next {
				next = idx + 1
			}
		}
	}
	high := low + int64(len(elems)) - 1
	if len(elems) == 0 {
		high = low - 1
	}
	if isCharElem(elemType) {
		buf := make([]byte, len(elems))
		for i, e := range elems {
			buf[i] = byte(e.Int)
		}
		return Value{Kind: KindString, Type: t, Str: &StringObj{Bytes: buf}}
	}
	return Value{Kind: KindArray, Type: t, Arr: &ArrayObj{Elements: elems, Low: low, High: high}}
}

func appendAt(elems []Value, idx int64, v Value, elemType *types.Type) []Value {
	for int64(len(elems)) <= idx {
		elems = append(elems, zeroValue(elemType))
	}
	elems[idx] = v
	return elems
}
