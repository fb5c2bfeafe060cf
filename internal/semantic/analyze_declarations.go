package semantic

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// analyzeDecl installs the symbols and type descriptors a declaration
// contributes, per spec §4.8: "a type declaration creates a type
// descriptor, populates record components or enumeration literals, and
// freezes; a subprogram body opens a scope, installs parameters,
// analyzes declarations then statements then handlers; a package body
// registers against its matching spec if any."
func (r *Resolver) analyzeDecl(d ast.Decl) {
	switch n := d.(type) {
	case *ast.ObjectDecl:
		r.analyzeObjectDecl(n)
	case *ast.TypeDecl:
		r.analyzeTypeDecl(n)
	case *ast.IncompleteTypeDecl:
		t := types.New(types.Private, n.Name)
		r.Types.Define(t)
		r.Symbols.Define(n.Name, symtab.KindType, t, n, n.Pos())
	case *ast.SubtypeDecl:
		base := r.resolveSubtypeIndication(n.Subtype)
		alias := &types.Type{
			Kind: base.Kind, Name: n.Name, BaseType: base,
			ElementType: base.ElementType, IndexType: base.IndexType,
			Low: base.Low, High: base.High,
			Components: base.Components, Discriminants: base.Discriminants,
			Literals: base.Literals, Size: base.Size, Alignment: base.Alignment,
			Frozen: base.Frozen,
		}
		r.Types.Define(alias)
		r.Symbols.Define(n.Name, symtab.KindType, alias, n, n.Pos())
	case *ast.ExceptionDecl:
		for _, name := range n.Names {
			r.Symbols.Define(name, symtab.KindException, nil, n, n.Pos())
		}
	case *ast.RenamingDecl:
		target, tt := r.resolveExpr(n.Renamed, nil)
		n.Renamed = target
		kind := symtab.KindVariable
		if n.IsSubNam {
			kind = symtab.KindProcedure
		}
		sym := r.Symbols.Define(n.Name, kind, tt, n, n.Pos())
		n.SetResolvedSymbol(sym)
	case *ast.SubprogramSpec:
		r.declareSubprogramSpec(n)
	case *ast.SubprogramBody:
		r.analyzeSubprogramBody(n)
	case *ast.PackageSpec:
		r.analyzePackageSpec(n)
	case *ast.PackageBody:
		r.analyzePackageBody(n)
	case *ast.PragmaDecl:
		for i, a := range n.Args {
			v, _ := r.resolveExpr(a, nil)
			n.Args[i] = v
		}
	case *ast.EntryDecl:
		r.Symbols.PushScope()
		for _, p := range n.Params {
			r.declareParam(p)
		}
		r.Symbols.PopScope()
		r.Symbols.Define(n.Name, symtab.KindEntry, nil, n, n.Pos())
	case *ast.TaskDecl:
		r.analyzeTaskDecl(n)
	case *ast.GenericDecl:
		// Formal parameters and the template spec are parsed for
		// well-formedness only; the core never substitutes or
		// instantiates a generic (spec §1 Non-goal), so nothing here
		// is installed as a usable symbol.
	case *ast.GenericInstantiationDecl:
		for i, a := range n.Actuals {
			v, _ := r.resolveExpr(a.Value, nil)
			n.Actuals[i].Value = v
		}
		// The generic template is not substituted; only the
		// instantiation's own name is installed so later references to
		// it resolve, matching the Non-goal's "parsed but not
		// instantiated" stance.
		r.Symbols.Define(n.Name, symtab.KindProcedure, nil, n, n.Pos())
	case *ast.UseClause:
		r.analyzeUseClause(n)
	case *ast.WithClause:
		// a with-clause's named units are compiled and their exported
		// symbols installed by the driver before Analyze runs; nothing
		// about the clause itself needs resolving here.
	}
}

func (r *Resolver) analyzeObjectDecl(n *ast.ObjectDecl) {
	t := r.resolveSubtypeIndication(n.Subtype)
	if n.Init != nil {
		val, _ := r.resolveExpr(n.Init, t)
		n.Init = val
	}
	kind := symtab.KindVariable
	if n.Constant {
		kind = symtab.KindConstant
	}
	for _, name := range n.Names {
		sym := r.Symbols.Define(name, kind, t, n, n.Pos())
		if n.Constant && n.Init != nil {
			if lit, ok := n.Init.(*ast.IntegerLiteral); ok {
				sym.ConstValue = lit.Value
			}
		}
		n.Syms = append(n.Syms, sym)
	}
}

func (r *Resolver) analyzeTypeDecl(n *ast.TypeDecl) {
	t := r.resolveTypeDefinition(n.Name, n.Def, n.Discriminants)
	types.Freeze(t)
	r.Types.Define(t)
	r.Symbols.Define(n.Name, symtab.KindType, t, n, n.Pos())
}

// declareSubprogramSpec installs a subprogram's name, resolving its
// return type for a function (Void for a procedure) without yet
// descending into a body.
func (r *Resolver) declareSubprogramSpec(spec *ast.SubprogramSpec) *symtab.Symbol {
	retType := r.Types.Void()
	if spec.IsFunction {
		rt, ok := r.Types.Lookup(spec.ReturnType)
		if !ok {
			r.fatal(spec.Pos(), "undefined type %q", spec.ReturnType)
		}
		retType = rt
	}
	kind := symtab.KindProcedure
	if spec.IsFunction {
		kind = symtab.KindFunction
	}
	return r.Symbols.Define(spec.Name, kind, retType, spec, spec.Pos())
}

func (r *Resolver) analyzeSubprogramBody(body *ast.SubprogramBody) {
	sym := r.declareSubprogramSpec(body.Spec)
	sym.Node = body

	r.Symbols.PushScope()
	for _, p := range body.Spec.Params {
		r.declareParam(p)
	}
	r.returnStack = append(r.returnStack, sym.Type)
	for _, d := range body.Decls {
		r.analyzeDecl(d)
	}
	r.analyzeStmts(body.Stmts)
	for _, h := range body.Handlers {
		r.analyzeHandler(h)
	}
	r.returnStack = r.returnStack[:len(r.returnStack)-1]
	r.Symbols.PopScope()
}

// analyzePackageSpec installs a package's own symbol, then its visible
// and private declarations, attaching each as a child of the package
// symbol so selected-name and use-clause resolution can find them later
// (spec §4.7, §4.8).
func (r *Resolver) analyzePackageSpec(spec *ast.PackageSpec) *symtab.Symbol {
	before := r.Symbols.CurrentSerial()
	pkgSym := r.Symbols.Define(spec.Name, symtab.KindPackage, nil, spec, spec.Pos())

	r.Symbols.PushScope()
	for _, d := range spec.Visible {
		r.analyzeDecl(d)
	}
	for _, d := range spec.Private {
		r.analyzeDecl(d)
	}
	for _, s := range r.Symbols.SymbolsDefinedAfter(before) {
		if s != pkgSym {
			s.Parent = pkgSym
		}
	}
	r.Symbols.PopScope()
	return pkgSym
}

func (r *Resolver) analyzePackageBody(body *ast.PackageBody) {
	sym := r.Symbols.Lookup(body.Name)
	if sym == nil || sym.Kind != symtab.KindPackage {
		sym = r.Symbols.Define(body.Name, symtab.KindPackage, nil, body, body.Pos())
	} else {
		sym.Node = body
	}

	before := r.Symbols.CurrentSerial()
	r.Symbols.PushScope()
	for _, d := range body.Decls {
		r.analyzeDecl(d)
	}
	r.analyzeStmts(body.Stmts)
	for _, s := range r.Symbols.SymbolsDefinedAfter(before) {
		if s != sym {
			s.Parent = sym
		}
	}
	r.Symbols.PopScope()
}

func (r *Resolver) analyzeTaskDecl(n *ast.TaskDecl) {
	if n.IsBody {
		sym := r.Symbols.Lookup(n.Name)
		if sym == nil {
			sym = r.Symbols.Define(n.Name, symtab.KindTaskType, nil, n, n.Pos())
		} else {
			sym.Node = n
		}
		r.Symbols.PushScope()
		for _, d := range n.Decls {
			r.analyzeDecl(d)
		}
		r.analyzeStmts(n.Stmts)
		r.Symbols.PopScope()
		return
	}

	t := types.New(types.Task, n.Name)
	r.Types.Define(t)
	r.Symbols.Define(n.Name, symtab.KindTaskType, t, n, n.Pos())

	r.Symbols.PushScope()
	for _, e := range n.Entries {
		r.analyzeDecl(e)
	}
	r.Symbols.PopScope()
}
