package interp

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
)

// ctlKind tags the three ways a statement sequence can be interrupted
// without an exception: none (fell through), an exit from an enclosing
// loop, or a goto searching for its label. A subprogram return is
// instead tracked on the active CallFrame (Returned/Return), since it
// must also stop sibling statement execution the same way exit/goto do
// but is never itself the target of a search (spec §4.9's "exec-stmt"
// distinguishes loop exit, procedure return, and goto as three
// different non-local transfers; none of them unwinds past call frames,
// which only an exception raise does).
type ctlKind int

const (
	ctlNone ctlKind = iota
	ctlExit
	ctlGoto
)

type ctl struct {
	kind  ctlKind
	label string
}

var noCtl = ctl{}

// ExecStmts runs a statement list in order, stopping early on a
// subprogram return, an exit, or a goto — resolving a goto whose label
// appears in this same list before resuming, and otherwise propagating
// it to the caller (spec §4.9: "goto searches labels in the same or an
// enclosing declarative region").
func ExecStmts(ctx *Context, stmts []ast.Stmt) ctl {
	i := 0
	for i < len(stmts) {
		c := execStmt(ctx, stmts[i])
		if f := ctx.Current(); f != nil && f.Returned {
			return noCtl
		}
		if c.kind == ctlGoto {
			if target := findLabel(stmts, c.label); target >= 0 {
				i = target + 1
				continue
			}
			return c
		}
		if c.kind != ctlNone {
			return c
		}
		i++
	}
	return noCtl
}

func findLabel(stmts []ast.Stmt, name string) int {
	for i, s := range stmts {
		if lbl, ok := s.(*ast.LabelStmt); ok && equalFold(lbl.Name, name) {
			return i
		}
	}
	return -1
}

func execStmt(ctx *Context, s ast.Stmt) ctl {
	switch n := s.(type) {
	case *ast.AssignStmt:
		v := Eval(ctx, n.Value)
		assignTarget(ctx, n.Target, copyValue(v))
	case *ast.CallStmt:
		evalCall(ctx, n.Call)
	case *ast.NullStmt:
	case *ast.IfStmt:
		return execIf(ctx, n)
	case *ast.CaseStmt:
		return execCase(ctx, n)
	case *ast.LoopStmt:
		return execLoop(ctx, n)
	case *ast.BlockStmt:
		return execBlock(ctx, n)
	case *ast.ExitStmt:
		if n.Cond == nil || Truthy(Eval(ctx, n.Cond)) {
			return ctl{kind: ctlExit, label: n.Label}
		}
	case *ast.ReturnStmt:
		if f := ctx.Current(); f != nil {
			if n.Value != nil {
				f.Return = copyValue(Eval(ctx, n.Value))
			}
			f.Returned = true
		}
	case *ast.GotoStmt:
		return ctl{kind: ctlGoto, label: n.Label}
	case *ast.LabelStmt:
	case *ast.RaiseStmt:
		execRaise(ctx, n)
	case *ast.DelayStmt:
		Eval(ctx, n.Delay)
	case *ast.AbortStmt:
	case *ast.AcceptStmt:
		return ExecStmts(ctx, n.Stmts)
	case *ast.SelectStmt:
		if len(n.Alternatives) > 0 {
			return ExecStmts(ctx, n.Alternatives[0])
		}
		return ExecStmts(ctx, n.Else)
	}
	return noCtl
}

func execIf(ctx *Context, n *ast.IfStmt) ctl {
	if Truthy(Eval(ctx, n.Cond)) {
		return ExecStmts(ctx, n.Then)
	}
	for _, e := range n.Elsifs {
		if Truthy(Eval(ctx, e.Cond)) {
			return ExecStmts(ctx, e.Stmts)
		}
	}
	return ExecStmts(ctx, n.Else)
}

func execCase(ctx *Context, n *ast.CaseStmt) ctl {
	sel := Eval(ctx, n.Selector)
	var othersAlt *ast.CaseAlt
	for _, alt := range n.Alternatives {
		for _, c := range alt.Choices {
			if _, ok := c.(*ast.OthersChoice); ok {
				othersAlt = alt
				continue
			}
			if rng, ok := c.(*ast.RangeExpr); ok {
				lo := Eval(ctx, rng.Low).Int
				hi := Eval(ctx, rng.High).Int
				if sel.Int >= lo && sel.Int <= hi {
					return ExecStmts(ctx, alt.Stmts)
				}
				continue
			}
			if Eval(ctx, c).Int == sel.Int {
				return ExecStmts(ctx, alt.Stmts)
			}
		}
	}
	if othersAlt != nil {
		return ExecStmts(ctx, othersAlt.Stmts)
	}
	return noCtl
}

func execLoop(ctx *Context, n *ast.LoopStmt) ctl {
	switch {
	case n.ForSpec != nil:
		return execForLoop(ctx, n)
	case n.Cond != nil:
		for Truthy(Eval(ctx, n.Cond)) {
			if c, done := runLoopBody(ctx, n, n.Stmts); done {
				return c
			}
		}
	default:
		for {
			if c, done := runLoopBody(ctx, n, n.Stmts); done {
				return c
			}
		}
	}
	return noCtl
}

func execForLoop(ctx *Context, n *ast.LoopStmt) ctl {
	sym, _ := n.ForSpec.Sym.(*symtab.Symbol)
	rng := n.ForSpec.Range
	var lo, hi int64
	if r, ok := rng.(*ast.RangeExpr); ok {
		lo = Eval(ctx, r.Low).Int
		hi = Eval(ctx, r.High).Int
	} else {
		v := Eval(ctx, rng)
		lo, hi = v.Int, v.Int
	}
	step := func(i int64) int64 { return i + 1 }
	start, stop := lo, hi
	if n.ForSpec.Reverse {
		start, stop = hi, lo
		step = func(i int64) int64 { return i - 1 }
	}
	for i := start; (!n.ForSpec.Reverse && i <= stop) || (n.ForSpec.Reverse && i >= stop); i = step(i) {
		if sym != nil {
			ctx.bindLocal(sym, NewInteger(i, sym.Type))
		}
		if c, done := runLoopBody(ctx, n, n.Stmts); done {
			return c
		}
	}
	return noCtl
}

// runLoopBody runs one iteration's statements, reporting (control,
// true) when the loop itself must stop: the iteration returned from
// the enclosing subprogram, exited this loop (label match or no
// label), or propagated a goto/differently-labeled exit that the
// caller must keep unwinding.
func runLoopBody(ctx *Context, n *ast.LoopStmt, stmts []ast.Stmt) (ctl, bool) {
	c := ExecStmts(ctx, stmts)
	if f := ctx.Current(); f != nil && f.Returned {
		return noCtl, true
	}
	switch c.kind {
	case ctlNone:
		return noCtl, false
	case ctlExit:
		if c.label == "" || equalFold(c.label, n.Label) {
			return noCtl, true
		}
		return c, true
	default: // ctlGoto
		return c, true
	}
}

func execBlock(ctx *Context, n *ast.BlockStmt) ctl {
	for _, d := range n.Decls {
		ElaborateDecl(ctx, d)
	}
	return runHandled(ctx, n.Stmts, n.Handlers)
}

func execRaise(ctx *Context, n *ast.RaiseStmt) {
	if n.Name == "" {
		if ctx.currentException != nil {
			panic(ctx.currentException)
		}
		raise(ProgramError, "bare raise outside an exception handler")
	}
	sym := ctx.Symbols.Lookup(n.Name)
	name := n.Name
	if sym != nil {
		name = sym.Name
	}
	raise(name, "")
}

// runHandled runs stmts, catching any exceptionSignal that propagates
// out of them against handlers, running the first matching handler's
// statements in its place (spec §4.9/§7). A handler match or mismatch
// is permanent: Go's recover already unwound the panic, so no
// candidate deeper in the call stack gets a second look.
func runHandled(ctx *Context, stmts []ast.Stmt, handlers []*ast.ExceptionHandler) ctl {
	var result ctl
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			sig, ok := r.(*exceptionSignal)
			if !ok {
				panic(r)
			}
			for _, h := range handlers {
				if handlerMatches(ctx, h, sig.Name) {
					prev := ctx.currentException
					ctx.currentException = sig
					result = ExecStmts(ctx, h.Stmts)
					ctx.currentException = prev
					return
				}
			}
			panic(r)
		}()
		result = ExecStmts(ctx, stmts)
	}()
	return result
}

func handlerMatches(ctx *Context, h *ast.ExceptionHandler, name string) bool {
	for _, c := range h.Choices {
		if _, ok := c.(*ast.OthersChoice); ok {
			return true
		}
		if id, ok := c.(*ast.Identifier); ok && equalFold(id.Name, name) {
			return true
		}
	}
	return false
}
