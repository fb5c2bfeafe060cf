package interp

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
)

// ElaborateDecl performs one declaration's runtime elaboration (spec
// §4.9): an object declaration creates and initializes a binding cell;
// a renaming aliases an existing cell; a package body runs its own
// initialization statements once. Type, subtype, exception, pragma and
// subprogram declarations need no runtime action — their effects were
// already folded into the symbol table and type registry by analysis,
// and a subprogram's body is reached through its symbol's Node, never
// "elaborated" as a standalone step.
func ElaborateDecl(ctx *Context, d ast.Decl) {
	switch n := d.(type) {
	case *ast.ObjectDecl:
		elaborateObjectDecl(ctx, n)
	case *ast.RenamingDecl:
		elaborateRenaming(ctx, n)
	case *ast.PackageBody:
		ExecStmts(ctx, n.Stmts)
	case *ast.TaskDecl:
		if n.IsBody {
			ExecStmts(ctx, n.Stmts)
		}
	}
}

func elaborateObjectDecl(ctx *Context, n *ast.ObjectDecl) {
	for _, sym := range n.Syms {
		s, ok := sym.(*symtab.Symbol)
		if !ok {
			continue
		}
		var v Value
		if n.Init != nil {
			v = copyValue(Eval(ctx, n.Init))
			v.Type = s.Type
		} else {
			v = zeroValue(s.Type)
		}
		checkRange(ctx.Types, s.Type, v)
		ctx.bindLocal(s, v)
	}
}

// elaborateRenaming binds the renaming's own symbol to the very same
// cell the renamed expression addresses, so reads and writes through
// either name observe each other (spec §4.3's renaming semantics).
func elaborateRenaming(ctx *Context, n *ast.RenamingDecl) {
	sym, ok := n.ResolvedSymbol().(*symtab.Symbol)
	if !ok || sym == nil {
		return
	}
	cell := targetCell(ctx, n.Renamed)
	if f := ctx.Current(); f != nil {
		f.Locals.Bind(sym, cell)
	} else {
		ctx.Globals.Bind(sym, cell)
	}
}
