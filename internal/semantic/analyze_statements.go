package semantic

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
)

func (r *Resolver) analyzeStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.analyzeStmt(s)
	}
}

// analyzeStmt recurses into a statement's sub-expressions and nested
// statement lists, pushing/popping scopes where the statement introduces
// one (spec §4.9).
func (r *Resolver) analyzeStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.AssignStmt:
		target, tt := r.resolveExpr(n.Target, nil)
		n.Target = target
		val, _ := r.resolveExpr(n.Value, tt)
		n.Value = val
	case *ast.CallStmt:
		call, _ := r.resolveExpr(n.Call, nil)
		if c, ok := call.(*ast.CallExpr); ok {
			n.Call = c
		}
	case *ast.NullStmt:
	case *ast.IfStmt:
		cond, _ := r.resolveExpr(n.Cond, r.Types.Boolean())
		n.Cond = cond
		r.analyzeStmts(n.Then)
		for _, e := range n.Elsifs {
			c, _ := r.resolveExpr(e.Cond, r.Types.Boolean())
			e.Cond = c
			r.analyzeStmts(e.Stmts)
		}
		r.analyzeStmts(n.Else)
	case *ast.CaseStmt:
		sel, st := r.resolveExpr(n.Selector, nil)
		n.Selector = sel
		for _, alt := range n.Alternatives {
			for i, c := range alt.Choices {
				v, _ := r.resolveExpr(c, st)
				alt.Choices[i] = v
			}
			r.analyzeStmts(alt.Stmts)
		}
	case *ast.LoopStmt:
		r.Symbols.PushScope()
		if n.Cond != nil {
			cond, _ := r.resolveExpr(n.Cond, r.Types.Boolean())
			n.Cond = cond
		}
		if n.ForSpec != nil {
			rangeExpr, rt := r.resolveExpr(n.ForSpec.Range, nil)
			n.ForSpec.Range = rangeExpr
			loopVarType := rt
			if loopVarType == nil {
				loopVarType = r.Types.Integer()
			}
			n.ForSpec.Sym = r.Symbols.Define(n.ForSpec.Var, symtab.KindLoopVariable, loopVarType, n.ForSpec, n.ForSpec.Pos())
		}
		r.loopDepth++
		r.analyzeStmts(n.Stmts)
		r.loopDepth--
		r.Symbols.PopScope()
	case *ast.BlockStmt:
		r.Symbols.PushScope()
		for _, d := range n.Decls {
			r.analyzeDecl(d)
		}
		r.analyzeStmts(n.Stmts)
		for _, h := range n.Handlers {
			r.analyzeHandler(h)
		}
		r.Symbols.PopScope()
	case *ast.ExitStmt:
		if n.Cond != nil {
			cond, _ := r.resolveExpr(n.Cond, r.Types.Boolean())
			n.Cond = cond
		}
	case *ast.ReturnStmt:
		if n.Value != nil {
			val, _ := r.resolveExpr(n.Value, r.currentReturnType())
			n.Value = val
		}
	case *ast.GotoStmt:
	case *ast.LabelStmt:
	case *ast.RaiseStmt:
		if n.Name != "" {
			sym := r.Symbols.Lookup(n.Name)
			if sym == nil || sym.Kind != symtab.KindException {
				r.fatal(n.Pos(), "undefined exception %q", n.Name)
			}
		}
	case *ast.DelayStmt:
		val, _ := r.resolveExpr(n.Delay, r.Types.Float())
		n.Delay = val
	case *ast.AbortStmt:
		for _, name := range n.Names {
			if r.Symbols.Lookup(name.Name) == nil {
				r.fatal(name.Pos(), "undefined identifier %q", name.Name)
			}
		}
	case *ast.AcceptStmt:
		r.Symbols.PushScope()
		for _, p := range n.Params {
			r.declareParam(p)
		}
		r.analyzeStmts(n.Stmts)
		r.Symbols.PopScope()
	case *ast.SelectStmt:
		for _, alt := range n.Alternatives {
			r.analyzeStmts(alt)
		}
		r.analyzeStmts(n.Else)
	}
}

func (r *Resolver) analyzeHandler(h *ast.ExceptionHandler) {
	for i, c := range h.Choices {
		if _, ok := c.(*ast.OthersChoice); ok {
			continue
		}
		if id, ok := c.(*ast.Identifier); ok {
			sym := r.Symbols.Lookup(id.Name)
			if sym == nil || sym.Kind != symtab.KindException {
				r.fatal(id.Pos(), "undefined exception %q", id.Name)
			}
			id.SetResolvedSymbol(sym)
			continue
		}
		v, _ := r.resolveExpr(c, nil)
		h.Choices[i] = v
	}
	r.analyzeStmts(h.Stmts)
}

// declareParam installs one parameter-spec's names as KindParameter
// symbols in the current scope; shared by subprogram bodies and accept
// statements (spec §4.3, §4.9).
func (r *Resolver) declareParam(p *ast.ObjectDecl) {
	t := r.resolveSubtypeIndication(p.Subtype)
	for _, name := range p.Names {
		sym := r.Symbols.Define(name, symtab.KindParameter, t, p, p.Pos())
		p.Syms = append(p.Syms, sym)
	}
}
