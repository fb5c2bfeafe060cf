package parser

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
)

// parseSubprogram parses a procedure or function: its spec, then either
// ";" (a bare spec/forward declaration), "renames Existing;", or "is
// ... end Name;" (a body). Spec §4.5.
func (p *Parser) parseSubprogram() ast.Decl {
	spec := p.parseSubprogramSpec()

	switch {
	case p.match(lexer.SEMI):
		return spec
	case p.match(lexer.KW_RENAMES):
		renamed := p.parseNameChain()
		p.expect(lexer.SEMI)
		return &ast.RenamingDecl{Base: ast.Base{Loc: spec.Pos()}, Name: spec.Name, Renamed: renamed, IsSubNam: true}
	case p.match(lexer.KW_IS):
		if p.check(lexer.KW_SEPARATE) {
			p.advance()
			p.expect(lexer.SEMI)
			return spec
		}
		if p.check(lexer.KW_NEW) {
			return p.parseGenericInstantiation(spec.Pos(), spec.Name)
		}
		return p.parseSubprogramBody(spec)
	default:
		p.fatal("expected ';', 'renames', or 'is' after subprogram specification")
		return nil
	}
}

func (p *Parser) parseSubprogramSpec() *ast.SubprogramSpec {
	loc := p.loc()
	isFunc := p.check(lexer.KW_FUNCTION)
	if isFunc {
		p.expect(lexer.KW_FUNCTION)
	} else {
		p.expect(lexer.KW_PROCEDURE)
	}
	name := p.expectIdent()

	spec := &ast.SubprogramSpec{Base: ast.Base{Loc: loc}, Name: name, IsFunction: isFunc}
	if p.match(lexer.LPAREN) {
		spec.Params = append(spec.Params, p.parseObjectDeclNoTerminator())
		for p.match(lexer.SEMI) {
			spec.Params = append(spec.Params, p.parseObjectDeclNoTerminator())
		}
		p.expect(lexer.RPAREN)
	}
	if isFunc {
		p.expect(lexer.KW_RETURN)
		spec.ReturnType = p.expectIdent()
	}
	return spec
}

func (p *Parser) parseSubprogramBody(spec *ast.SubprogramSpec) *ast.SubprogramBody {
	decls := p.parseDeclarativePart(lexer.KW_BEGIN)
	p.expect(lexer.KW_BEGIN)
	stmts := p.parseStatements(lexer.KW_EXCEPTION, lexer.KW_END)
	var handlers []*ast.ExceptionHandler
	if p.match(lexer.KW_EXCEPTION) {
		handlers = p.parseExceptionHandlers()
	}
	p.expect(lexer.KW_END)
	endName := ""
	if p.check(lexer.IDENT) {
		endName = p.expectIdent()
	}
	p.expect(lexer.SEMI)
	return &ast.SubprogramBody{
		Base:     ast.Base{Loc: spec.Pos()},
		Spec:     spec,
		Decls:    decls,
		Stmts:    stmts,
		Handlers: handlers,
		EndName:  endName,
	}
}

// parsePackage parses "package Name is ... end [Name];" (a spec) or
// "package body Name is ... end [Name];" (a body), and the instantiation
// and renaming forms.
func (p *Parser) parsePackage() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_PACKAGE)

	if p.match(lexer.KW_BODY) {
		return p.parsePackageBody(loc)
	}
	name := p.expectIdent()

	if p.match(lexer.KW_RENAMES) {
		renamed := p.parseNameChain()
		p.expect(lexer.SEMI)
		return &ast.RenamingDecl{Base: ast.Base{Loc: loc}, Name: name, Renamed: renamed}
	}

	p.expect(lexer.KW_IS)
	if p.check(lexer.KW_NEW) {
		return p.parseGenericInstantiation(loc, name)
	}
	spec := &ast.PackageSpec{Base: ast.Base{Loc: loc}, Name: name}
	spec.Visible = p.parseDeclarativePart(lexer.KW_PRIVATE, lexer.KW_END)
	if p.match(lexer.KW_PRIVATE) {
		spec.Private = p.parseDeclarativePart(lexer.KW_END)
	}
	p.expect(lexer.KW_END)
	if p.check(lexer.IDENT) {
		p.advance()
	}
	p.expect(lexer.SEMI)
	return spec
}

func (p *Parser) parsePackageBody(loc ident.Loc) *ast.PackageBody {
	name := p.expectIdent()
	p.expect(lexer.KW_IS)
	body := &ast.PackageBody{Base: ast.Base{Loc: loc}, Name: name}
	body.Decls = p.parseDeclarativePart(lexer.KW_BEGIN, lexer.KW_END)
	if p.match(lexer.KW_BEGIN) {
		body.Stmts = p.parseStatements(lexer.KW_END)
	}
	p.expect(lexer.KW_END)
	if p.check(lexer.IDENT) {
		p.advance()
	}
	p.expect(lexer.SEMI)
	return body
}
