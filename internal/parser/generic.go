package parser

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
)

// parseGenericInstantiation parses the tail of "... is new Generic_Name
// [(actuals)];" once the leading "is" has already been consumed.
func (p *Parser) parseGenericInstantiation(loc ident.Loc, name string) ast.Decl {
	p.expect(lexer.KW_NEW)
	genericName := p.expectIdent()
	var actuals []*ast.Association
	if p.match(lexer.LPAREN) {
		actuals = append(actuals, p.parseAssociationValue().assoc)
		for p.match(lexer.COMMA) {
			actuals = append(actuals, p.parseAssociationValue().assoc)
		}
		p.expect(lexer.RPAREN)
	}
	p.expect(lexer.SEMI)
	return &ast.GenericInstantiationDecl{Base: ast.Base{Loc: loc}, Name: name, GenericName: genericName, Actuals: actuals}
}

// parseGenericDiscarded parses "generic {formal_part} Spec", where Spec
// is the templated procedure/function/package specification. Per spec
// §1's Non-goal, generics are parsed (so their formal-parameter list can
// be checked well-formed) but never instantiated; GenericDecl carries
// the formals and the templated spec for that well-formedness check,
// without an instantiation-substitution mechanism.
func (p *Parser) parseGenericDiscarded() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_GENERIC)

	var formals []ast.Decl
	for p.check(lexer.KW_TYPE) || p.check(lexer.IDENT) || p.check(lexer.KW_WITH) {
		formals = append(formals, p.parseGenericFormal())
	}

	spec := p.parseLibraryUnit()
	return &ast.GenericDecl{Base: ast.Base{Loc: loc}, Formals: formals, Template: spec}
}

// parseGenericFormal parses one generic formal declaration: "type Name is
// <>;", "Names : [in] Subtype [:= Default];", or "with function/procedure
// ... is <>;". Formal subprogram parameters are consumed and discarded
// since the core never substitutes them.
func (p *Parser) parseGenericFormal() ast.Decl {
	switch {
	case p.check(lexer.KW_TYPE):
		return p.parseGenericFormalType()
	case p.check(lexer.KW_WITH):
		return p.parseGenericFormalSubprogram()
	default:
		return p.parseObjectOrExceptionOrRenaming()
	}
}

// parseGenericFormalSubprogram parses and discards "with function/procedure
// Name ... ;" down to its terminating semicolon.
func (p *Parser) parseGenericFormalSubprogram() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_WITH)
	if p.check(lexer.KW_FUNCTION) || p.check(lexer.KW_PROCEDURE) {
		p.advance()
	}
	name := p.expectIdent()
	for !p.check(lexer.SEMI) && !p.check(lexer.EOF) {
		p.advance()
	}
	p.expect(lexer.SEMI)
	return &ast.IncompleteTypeDecl{Base: ast.Base{Loc: loc}, Name: name}
}

// parseTaskDecl parses a task specification, "task [type] Name [is
// {entry_decl} end [Name]];", or a task body, "task body Name is {decls}
// begin {stmts} end [Name];". Per spec §1's Non-goal, tasks are parsed
// for completeness but the evaluator never schedules or activates them.
func (p *Parser) parseTaskDecl() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_TASK)

	if p.match(lexer.KW_BODY) {
		name := p.expectIdent()
		p.expect(lexer.KW_IS)
		decls := p.parseDeclarativePart(lexer.KW_BEGIN, lexer.KW_END)
		var stmts []ast.Stmt
		if p.match(lexer.KW_BEGIN) {
			stmts = p.parseStatements(lexer.KW_END)
		}
		p.expect(lexer.KW_END)
		if p.check(lexer.IDENT) {
			p.advance()
		}
		p.expect(lexer.SEMI)
		return &ast.TaskDecl{Base: ast.Base{Loc: loc}, Name: name, IsBody: true, Decls: decls, Stmts: stmts}
	}

	p.match(lexer.KW_TYPE)
	name := p.expectIdent()
	task := &ast.TaskDecl{Base: ast.Base{Loc: loc}, Name: name}

	if p.match(lexer.KW_IS) {
		for p.check(lexer.KW_ENTRY) {
			task.Entries = append(task.Entries, p.parseEntryDecl())
		}
		p.expect(lexer.KW_END)
		if p.check(lexer.IDENT) {
			p.advance()
		}
	}
	p.expect(lexer.SEMI)
	return task
}

func (p *Parser) parseEntryDecl() *ast.EntryDecl {
	loc := p.loc()
	p.expect(lexer.KW_ENTRY)
	name := p.expectIdent()
	var params []*ast.ObjectDecl
	if p.match(lexer.LPAREN) {
		params = append(params, p.parseObjectDeclNoTerminator())
		for p.match(lexer.SEMI) {
			params = append(params, p.parseObjectDeclNoTerminator())
		}
		p.expect(lexer.RPAREN)
	}
	p.expect(lexer.SEMI)
	return &ast.EntryDecl{Base: ast.Base{Loc: loc}, Name: name, Params: params}
}

func (p *Parser) parseGenericFormalType() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_TYPE)
	name := p.expectIdent()
	p.expect(lexer.KW_IS)
	// The formal type's definition is either a box "<>" (any type matches)
	// or a constrained shape; either way it is not elaborated here.
	for !p.check(lexer.SEMI) && !p.check(lexer.EOF) {
		p.advance()
	}
	p.expect(lexer.SEMI)
	return &ast.IncompleteTypeDecl{Base: ast.Base{Loc: loc}, Name: name}
}
