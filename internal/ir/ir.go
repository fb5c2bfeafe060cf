// Package ir emits a line-oriented, three-address-ish text form of a
// resolved compilation unit: a Visit(node ast.Node)-style dispatcher
// over the AST (SPEC_FULL.md §6.3), following the same
// switch-per-node-kind visitor shape the evaluator itself uses, but
// targeting readable text opcodes instead of direct evaluation. One
// line per operation: `op dest, src1, src2`, `label:` lines, and
// `call`/`ret`/`br`/`brt`/`brf` control opcodes. Swapping in a different back
// end is a matter of writing a different visitor over the same resolved
// tree.
package ir

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
)

// Emitter walks a resolved AST and writes its line-oriented IR.
type Emitter struct {
	w        *bufio.Writer
	temp     int
	label    int
	loopExit map[string]string // loop label -> its "end" IR label, for EXIT
}

// NewEmitter returns an emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w), loopExit: make(map[string]string)}
}

// Emit emits IR for every declaration composed into cu's library unit
// and flushes the writer.
func Emit(w io.Writer, cu *ast.CompilationUnit) error {
	e := NewEmitter(w)
	e.VisitDecl(cu.Library)
	return e.w.Flush()
}

func (e *Emitter) newTemp() string {
	e.temp++
	return fmt.Sprintf("t%d", e.temp)
}

func (e *Emitter) newLabel(prefix string) string {
	e.label++
	return fmt.Sprintf("%s%d", prefix, e.label)
}

func (e *Emitter) line(format string, args ...any) {
	fmt.Fprintf(e.w, format+"\n", args...)
}

func (e *Emitter) labelLine(name string) {
	fmt.Fprintf(e.w, "%s:\n", name)
}

// VisitDecl emits one declaration: a subprogram body emits a `proc`/
// `endproc` bracket around its statements; a package emits its own
// declarations and, for a body, its initialization statements. Other
// declaration kinds contribute no executable code (their effect was
// folded into the symbol table by analysis, per spec §4.8) so they are
// silently skipped here, matching interp.ElaborateDecl's own split
// between declarations with runtime effect and those without.
func (e *Emitter) VisitDecl(d ast.Decl) {
	switch n := d.(type) {
	case *ast.SubprogramBody:
		e.visitSubprogramBody(n)
	case *ast.PackageSpec:
		for _, decl := range n.Visible {
			e.VisitDecl(decl)
		}
		for _, decl := range n.Private {
			e.VisitDecl(decl)
		}
	case *ast.PackageBody:
		for _, decl := range n.Decls {
			e.VisitDecl(decl)
		}
		if len(n.Stmts) > 0 {
			e.line("proc %s$init", n.Name)
			e.VisitStmts(n.Stmts)
			e.line("endproc")
		}
	case *ast.ObjectDecl:
		for _, name := range n.Names {
			if n.Init != nil {
				v := e.VisitExpr(n.Init)
				e.line("mov %s, %s", name, v)
			}
		}
	}
}

func (e *Emitter) visitSubprogramBody(n *ast.SubprogramBody) {
	e.line("proc %s", n.Spec.Name)
	for _, d := range n.Decls {
		e.VisitDecl(d)
	}
	e.VisitStmts(n.Stmts)
	if len(n.Handlers) > 0 {
		e.line("; %d exception handler(s) omitted from IR", len(n.Handlers))
	}
	e.line("endproc")
}

// VisitStmts emits one statement sequence in order.
func (e *Emitter) VisitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.VisitStmt(s)
	}
}

// VisitStmt emits one statement's IR.
func (e *Emitter) VisitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.NullStmt:
		e.line("nop")
	case *ast.AssignStmt:
		v := e.VisitExpr(n.Value)
		e.line("mov %s, %s", e.VisitLValue(n.Target), v)
	case *ast.CallStmt:
		e.VisitExpr(n.Call)
	case *ast.IfStmt:
		e.visitIf(n)
	case *ast.CaseStmt:
		e.visitCase(n)
	case *ast.LoopStmt:
		e.visitLoop(n)
	case *ast.BlockStmt:
		for _, d := range n.Decls {
			e.VisitDecl(d)
		}
		e.VisitStmts(n.Stmts)
	case *ast.ExitStmt:
		target := e.loopExit[n.Label]
		if target == "" {
			target = e.loopExit[""]
		}
		if n.Cond != nil {
			c := e.VisitExpr(n.Cond)
			e.line("brt %s, %s", c, target)
		} else {
			e.line("br %s", target)
		}
	case *ast.ReturnStmt:
		if n.Value != nil {
			v := e.VisitExpr(n.Value)
			e.line("ret %s", v)
		} else {
			e.line("ret")
		}
	case *ast.GotoStmt:
		e.line("br %s", n.Label)
	case *ast.LabelStmt:
		e.labelLine(n.Name)
	case *ast.RaiseStmt:
		if n.Name != "" {
			e.line("raise %s", n.Name)
		} else {
			e.line("raise")
		}
	case *ast.DelayStmt, *ast.AbortStmt, *ast.AcceptStmt, *ast.SelectStmt:
		e.line("; %T not lowered (parse-only per spec Non-goal)", s)
	}
}

func (e *Emitter) visitIf(n *ast.IfStmt) {
	end := e.newLabel("Lendif")
	e.visitIfArm(n.Cond, n.Then, end)
	for _, elsif := range n.Elsifs {
		e.visitIfArm(elsif.Cond, elsif.Stmts, end)
	}
	if n.Else != nil {
		e.VisitStmts(n.Else)
	}
	e.labelLine(end)
}

func (e *Emitter) visitIfArm(cond ast.Expr, stmts []ast.Stmt, end string) {
	next := e.newLabel("Lelse")
	c := e.VisitExpr(cond)
	e.line("brf %s, %s", c, next)
	e.VisitStmts(stmts)
	e.line("br %s", end)
	e.labelLine(next)
}

func (e *Emitter) visitCase(n *ast.CaseStmt) {
	sel := e.VisitExpr(n.Selector)
	end := e.newLabel("Lendcase")
	for _, alt := range n.Alternatives {
		next := e.newLabel("Lcase")
		body := e.newLabel("Lwhen")
		others := false
		for _, c := range alt.Choices {
			if _, ok := c.(*ast.OthersChoice); ok {
				others = true
				continue
			}
			cv := e.VisitExpr(c)
			eq := e.newTemp()
			e.line("eq %s, %s, %s", eq, sel, cv)
			e.line("brt %s, %s", eq, body)
		}
		if !others {
			e.line("br %s", next)
		}
		e.labelLine(body)
		e.VisitStmts(alt.Stmts)
		e.line("br %s", end)
		e.labelLine(next)
	}
	e.labelLine(end)
}

func (e *Emitter) visitLoop(n *ast.LoopStmt) {
	start := e.newLabel("Lloop")
	end := e.newLabel("Lendloop")
	prevExit, hadPrev := e.loopExit[""]
	e.loopExit[""] = end
	if n.Label != "" {
		e.loopExit[n.Label] = end
	}

	e.labelLine(start)
	switch {
	case n.Cond != nil:
		c := e.VisitExpr(n.Cond)
		e.line("brf %s, %s", c, end)
	case n.ForSpec != nil:
		e.visitForSpecGuard(n.ForSpec, end)
	}
	e.VisitStmts(n.Stmts)
	if n.ForSpec != nil {
		e.line("%s %s", forStep(n.ForSpec), n.ForSpec.Var)
	}
	e.line("br %s", start)
	e.labelLine(end)

	if hadPrev {
		e.loopExit[""] = prevExit
	} else {
		delete(e.loopExit, "")
	}
	if n.Label != "" {
		delete(e.loopExit, n.Label)
	}
}

func forStep(spec *ast.ForSpec) string {
	if spec.Reverse {
		return "dec"
	}
	return "inc"
}

// visitForSpecGuard emits the bound check a FOR loop's range implies;
// the actual low/high bookkeeping is left to the runtime (the IR form
// only needs to show the test, not re-derive range semantics).
func (e *Emitter) visitForSpecGuard(spec *ast.ForSpec, end string) {
	rng, ok := spec.Range.(*ast.RangeExpr)
	if !ok {
		return
	}
	lo := e.VisitExpr(rng.Low)
	hi := e.VisitExpr(rng.High)
	inRange := e.newTemp()
	if spec.Reverse {
		e.line("le %s, %s, %s", inRange, lo, spec.Var)
	} else {
		e.line("le %s, %s, %s", inRange, spec.Var, hi)
	}
	e.line("brf %s, %s", inRange, end)
}

// VisitLValue renders an assignment target's name for a `mov dest, ...`
// line; composite targets render as a dotted/indexed textual path since
// the IR has no separate address-computation opcodes.
func (e *Emitter) VisitLValue(expr ast.Expr) string {
	switch n := expr.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.SelectedExpr:
		return e.VisitLValue(n.Prefix) + "." + n.Selector
	case *ast.IndexedExpr:
		return e.VisitLValue(n.Prefix) + "[" + strings.Join(e.visitExprs(n.Indices), ",") + "]"
	case *ast.DereferenceExpr:
		return e.VisitLValue(n.Prefix) + ".all"
	default:
		return e.VisitExpr(expr)
	}
}

func (e *Emitter) visitExprs(exprs []ast.Expr) []string {
	out := make([]string, len(exprs))
	for i, x := range exprs {
		out[i] = e.VisitExpr(x)
	}
	return out
}

// VisitExpr emits the operations needed to compute expr's value and
// returns the name of the temp (or literal/identifier text) holding the
// result.
func (e *Emitter) VisitExpr(expr ast.Expr) string {
	switch n := expr.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.IntegerLiteral:
		return n.String()
	case *ast.RealLiteral:
		return n.String()
	case *ast.CharLiteral:
		return n.String()
	case *ast.StringLiteral:
		return n.String()
	case *ast.NullLiteral:
		return "null"
	case *ast.BinaryExpr:
		l := e.VisitExpr(n.Left)
		r := e.VisitExpr(n.Right)
		t := e.newTemp()
		e.line("%s %s, %s, %s", irOp(n.Op), t, l, r)
		return t
	case *ast.UnaryExpr:
		v := e.VisitExpr(n.Operand)
		t := e.newTemp()
		e.line("%s %s, %s", irUnaryOp(n.Op), t, v)
		return t
	case *ast.QualifiedExpr:
		return e.VisitExpr(n.Value)
	case *ast.AttributeExpr:
		v := e.VisitExpr(n.Prefix)
		t := e.newTemp()
		e.line("attr.%s %s, %s", strings.ToLower(n.Designator), t, v)
		return t
	case *ast.CallExpr:
		return e.visitCall(n)
	case *ast.IndexedExpr:
		p := e.VisitExpr(n.Prefix)
		t := e.newTemp()
		e.line("idx %s, %s, %s", t, p, strings.Join(e.visitExprs(n.Indices), ", "))
		return t
	case *ast.SliceExpr:
		p := e.VisitExpr(n.Prefix)
		lo := e.VisitExpr(n.Low)
		hi := e.VisitExpr(n.High)
		t := e.newTemp()
		e.line("slice %s, %s, %s, %s", t, p, lo, hi)
		return t
	case *ast.SelectedExpr:
		p := e.VisitExpr(n.Prefix)
		t := e.newTemp()
		e.line("sel %s, %s, %s", t, p, n.Selector)
		return t
	case *ast.AllocatorExpr:
		t := e.newTemp()
		e.line("new %s, %s", t, n.SubtypeName)
		return t
	case *ast.DereferenceExpr:
		p := e.VisitExpr(n.Prefix)
		t := e.newTemp()
		e.line("deref %s, %s", t, p)
		return t
	case *ast.AggregateExpr:
		t := e.newTemp()
		e.line("agg %s, %d", t, len(n.Elements))
		for _, el := range n.Elements {
			v := e.VisitExpr(el.Value)
			e.line("agg.elem %s, %s", t, v)
		}
		return t
	case *ast.RangeExpr:
		lo := e.VisitExpr(n.Low)
		hi := e.VisitExpr(n.High)
		t := e.newTemp()
		e.line("range %s, %s, %s", t, lo, hi)
		return t
	}
	return "?"
}

func (e *Emitter) visitCall(n *ast.CallExpr) string {
	name := n.Callee.String()
	t := e.newTemp()
	var args []string
	for _, a := range n.Args {
		args = append(args, e.VisitExpr(a.Value))
	}
	if len(args) == 0 {
		e.line("call %s, %s", t, name)
	} else {
		e.line("call %s, %s, %s", t, name, strings.Join(args, ", "))
	}
	return t
}

func irOp(op string) string {
	switch strings.ToLower(op) {
	case "+":
		return "add"
	case "-":
		return "sub"
	case "*":
		return "mul"
	case "/":
		return "div"
	case "mod":
		return "mod"
	case "rem":
		return "rem"
	case "**":
		return "pow"
	case "=":
		return "eq"
	case "/=":
		return "ne"
	case "<":
		return "lt"
	case "<=":
		return "le"
	case ">":
		return "gt"
	case ">=":
		return "ge"
	case "and", "and then":
		return "and"
	case "or", "or else":
		return "or"
	case "xor":
		return "xor"
	case "&":
		return "concat"
	default:
		return "op." + op
	}
}

func irUnaryOp(op string) string {
	switch strings.ToLower(op) {
	case "-":
		return "neg"
	case "+":
		return "pos"
	case "not":
		return "not"
	case "abs":
		return "abs"
	default:
		return "op." + op
	}
}
