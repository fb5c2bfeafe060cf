package interp

import (
	"strings"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// evalAttribute evaluates Prefix'Designator[(Args)] (spec §4.9's
// attribute table: FIRST, LAST, LENGTH, SIZE, POS, VAL, SUCC, PRED,
// IMAGE). A type-name prefix yields the type's own bounds; a value
// prefix yields the bounds of that particular array/scalar object.
func evalAttribute(ctx *Context, n *ast.AttributeExpr) Value {
	designator := strings.ToUpper(n.Designator)

	if id, ok := n.Prefix.(*ast.Identifier); ok {
		if sym, ok2 := id.ResolvedSymbol().(*symtab.Symbol); ok2 && sym != nil && sym.Kind == symtab.KindType {
			return evalTypeAttribute(ctx, sym.Type, designator, n.Args)
		}
	}

	v := Eval(ctx, n.Prefix)
	return evalValueAttribute(ctx, v, designator, n.Args)
}

func evalTypeAttribute(ctx *Context, t *types.Type, designator string, args []ast.Expr) Value {
	switch designator {
	case "FIRST":
		return NewInteger(t.Low, t)
	case "LAST":
		return NewInteger(t.High, t)
	case "SUCC":
		return NewInteger(Eval(ctx, args[0]).Int+1, t)
	case "PRED":
		return NewInteger(Eval(ctx, args[0]).Int-1, t)
	case "VAL":
		return NewInteger(Eval(ctx, args[0]).Int, t)
	case "POS":
		return NewInteger(Eval(ctx, args[0]).Int, ctx.Types.Integer())
	case "IMAGE":
		return NewString(Eval(ctx, args[0]).Text(), resolvedType(ctx, args[0]))
	case "SIZE":
		return NewInteger(int64(t.Size*8), ctx.Types.Integer())
	default:
		return zeroValue(t)
	}
}

func evalValueAttribute(ctx *Context, v Value, designator string, args []ast.Expr) Value {
	switch designator {
	case "FIRST":
		if v.Kind == KindArray && v.Arr != nil {
			return NewInteger(v.Arr.Low, ctx.Types.Integer())
		}
		if v.Kind == KindString {
			return NewInteger(1, ctx.Types.Integer())
		}
		if v.Type != nil {
			return NewInteger(v.Type.Low, v.Type)
		}
		return NewInteger(0, ctx.Types.Integer())
	case "LAST":
		if v.Kind == KindArray && v.Arr != nil {
			return NewInteger(v.Arr.High, ctx.Types.Integer())
		}
		if v.Kind == KindString {
			n := int64(0)
			if v.Str != nil {
				n = int64(len(v.Str.Bytes))
			}
			return NewInteger(n, ctx.Types.Integer())
		}
		if v.Type != nil {
			return NewInteger(v.Type.High, v.Type)
		}
		return NewInteger(0, ctx.Types.Integer())
	case "LENGTH":
		switch v.Kind {
		case KindArray:
			if v.Arr == nil {
				return NewInteger(0, ctx.Types.Integer())
			}
			return NewInteger(int64(len(v.Arr.Elements)), ctx.Types.Integer())
		case KindString:
			if v.Str == nil {
				return NewInteger(0, ctx.Types.Integer())
			}
			return NewInteger(int64(len(v.Str.Bytes)), ctx.Types.Integer())
		default:
			return NewInteger(0, ctx.Types.Integer())
		}
	case "SUCC":
		if v.Kind == KindReal {
			return NewReal(v.Real, v.Type)
		}
		return NewInteger(v.Int+1, v.Type)
	case "PRED":
		if v.Kind == KindReal {
			return NewReal(v.Real, v.Type)
		}
		return NewInteger(v.Int-1, v.Type)
	case "POS":
		return NewInteger(v.Int, ctx.Types.Integer())
	case "VAL":
		return NewInteger(v.Int, v.Type)
	case "IMAGE":
		return NewString(v.Text(), stringResultType(ctx))
	case "SIZE":
		size := 64
		if v.Type != nil {
			size = v.Type.Size * 8
		}
		return NewInteger(int64(size), ctx.Types.Integer())
	case "COUNT":
		return NewInteger(0, ctx.Types.Integer())
	default:
		return v
	}
}

func stringResultType(ctx *Context) *types.Type {
	t, ok := ctx.Types.Lookup("string")
	if !ok {
		return nil
	}
	return t
}
