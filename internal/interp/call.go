package interp

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// specOf extracts a callable symbol's signature node, whether it names
// a full body or (for a builtin, or a subprogram only declared so far)
// a bare spec.
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

// evalCall evaluates a resolved CallExpr: a type-conversion call
// converts and range-checks its single argument; anything else calls
// the subprogram the resolver bound to Callee (spec §4.8/§4.9).
func evalCall(ctx *Context, n *ast.CallExpr) Value {
	sym, ok := n.ResolvedSymbol().(*symtab.Symbol)
	if !ok || sym == nil {
		// the resolver leaves CallExpr.Callee as an ordinary expression
		// when it isn't a simple or package-selected name (e.g. a call
		// through a dereferenced access-to-subprogram); not modeled by
		// this evaluator beyond evaluating the callee for effect.
		return Eval(ctx, n.Callee)
	}
	if sym.Kind == symtab.KindType {
		v := Eval(ctx, n.Args[0].Value)
		v.Type = sym.Type
		checkRange(ctx.Types, sym.Type, v)
		return v
	}
	return execCall(ctx, sym, n.Args)
}

// execCall runs a subprogram call: a builtin dispatches by name with
// positionally-evaluated arguments; an ordinary subprogram pushes a
// call frame, binds actuals to formals, elaborates its declarative
// part, runs its handled statement sequence, writes back out/in-out
// actuals, and returns the function's result (Value{} for a procedure).
func execCall(ctx *Context, sym *symtab.Symbol, args []*ast.Association) Value {
	spec := specOf(sym.Node)
	if spec == nil {
		raise(ProgramError, "call to unresolved subprogram %q", sym.Name)
	}
	body, hasBody := sym.Node.(*ast.SubprogramBody)
	if !hasBody {
		return callBuiltin(ctx, sym.Name, args)
	}

	// Actuals are evaluated against the caller's own frame, before the
	// callee's frame is pushed: otherwise an actual that names one of
	// the caller's locals would resolve against the (still-empty)
	// callee frame instead (spec §4.9's call-by-value passes the
	// actual's value computed in the caller's environment).
	formals := flattenFormals(spec)
	evaluated, bound, exprs := evalActuals(ctx, formals, args)

	frame := ctx.Push(body, sym.Name)
	writebacks := bindActuals(ctx, frame, spec, formals, evaluated, bound, exprs)
	for _, d := range body.Decls {
		ElaborateDecl(ctx, d)
	}
	runHandled(ctx, body.Stmts, body.Handlers)
	result := frame.Return
	ctx.Pop()
	// Writebacks run against the actual expressions' home frame, which is
	// the caller's, now current again: a deeper call nesting than one
	// level would otherwise see ctx.cell resolve the target against the
	// just-popped callee frame's own (already-gone) locals instead.
	for _, wb := range writebacks {
		wb()
	}
	return result
}

// formalEntry is one flattened (name, symbol, mode, default) formal
// parameter, built once per call from a formal's ObjectDecl group (each
// of which may share a single Subtype/Mode/Init across several Names).
type formalEntry struct {
	name    string
	subtype *ast.SubtypeIndication
	mode    ast.ParamMode
	init    ast.Expr
}

func flattenFormals(spec *ast.SubprogramSpec) []formalEntry {
	var out []formalEntry
	for _, p := range spec.Params {
		for _, name := range p.Names {
			out = append(out, formalEntry{name: name, subtype: p.Subtype, mode: p.Mode, init: p.Init})
		}
	}
	return out
}

// evalActuals evaluates each actual-argument expression against the
// caller's own (still current) frame, matching each to its flattened
// formal by position or named choice, before any callee frame exists.
// The parallel exprs slice is carried through to bindActuals so
// out/in-out write-back thunks can still target the original
// expression.
func evalActuals(ctx *Context, formals []formalEntry, args []*ast.Association) (values []Value, bound []bool, exprs []ast.Expr) {
	values = make([]Value, len(formals))
	bound = make([]bool, len(formals))
	exprs = make([]ast.Expr, len(formals))

	pos := 0
	for _, a := range args {
		idx := pos
		if len(a.Choices) > 0 {
			if id, ok := a.Choices[0].(*ast.Identifier); ok {
				idx = -1
				for i, f := range formals {
					if equalFold(f.name, id.Name) {
						idx = i
						break
					}
				}
			}
		}
		if idx < 0 || idx >= len(formals) {
			pos++
			continue
		}
		values[idx] = Eval(ctx, a.Value)
		bound[idx] = true
		exprs[idx] = a.Value
		if len(a.Choices) == 0 {
			pos++
		}
	}
	return values, bound, exprs
}

// bindActuals binds each actual argument to its formal's cell in
// frame.Locals, evaluating defaults for any formal with no
// corresponding actual, and returns the write-back thunks needed for
// out/in-out formals once the call returns (spec §4.9's call-by-value,
// call-by-value-result argument passing; the core approximates
// in-out/out as copy-in-copy-out). values/bound/exprs come from
// evalActuals, computed in the caller's frame before frame was pushed.
func bindActuals(ctx *Context, frame *CallFrame, spec *ast.SubprogramSpec, formals []formalEntry, values []Value, bound []bool, actualExprs []ast.Expr) []func() {
	var syms []*symtab.Symbol
	if len(formals) > 0 {
		syms = resolveFormalSymbols(spec)
	}

	var writebacks []func()
	for i, f := range formals {
		v := values[i]
		if !bound[i] {
			if f.init != nil {
				v = Eval(ctx, f.init)
			} else {
				v = zeroValue(resolveFormalType(ctx, f.subtype))
			}
		} else if f.mode != ast.ModeOut {
			v = copyValue(v)
		} else {
			v = zeroValue(resolveFormalType(ctx, f.subtype))
		}
		var sym *symtab.Symbol
		if i < len(syms) {
			sym = syms[i]
		}
		cell := new(Value)
		*cell = v
		if sym != nil {
			frame.Locals.Bind(sym, cell)
		}
		if (f.mode == ast.ModeOut || f.mode == ast.ModeInOut) && actualExprs[i] != nil {
			target := actualExprs[i]
			c := cell
			writebacks = append(writebacks, func() { assignTarget(ctx, target, *c) })
		}
	}
	return writebacks
}

// resolveFormalSymbols returns the *symtab.Symbol the resolver
// installed for each flattened formal, in the same order
// flattenFormals produces, via each parameter group's Syms
// back-reference.
func resolveFormalSymbols(spec *ast.SubprogramSpec) []*symtab.Symbol {
	var out []*symtab.Symbol
	for _, p := range spec.Params {
		for _, s := range p.Syms {
			if sym, ok := s.(*symtab.Symbol); ok {
				out = append(out, sym)
			}
		}
	}
	return out
}

// resolveFormalType looks up a parameter's subtype mark directly
// against the context's type registry; used only for the no-actual
// default-value fallback, where the resolver's own resolved type isn't
// reachable from the evaluator without re-walking the constraint.
func resolveFormalType(ctx *Context, si *ast.SubtypeIndication) *types.Type {
	if si == nil {
		return nil
	}
	t, _ := ctx.Types.Lookup(si.TypeMark)
	return t
}
