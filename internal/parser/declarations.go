package parser

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
)

// parseDeclarativePart parses zero or more declarations until one of the
// given terminator keywords is reached.
func (p *Parser) parseDeclarativePart(terminators ...lexer.Kind) []ast.Decl {
	var decls []ast.Decl
	for !p.atTerminator(terminators) && !p.check(lexer.EOF) {
		decls = append(decls, p.parseDeclaration())
	}
	return decls
}

func (p *Parser) parseDeclaration() ast.Decl {
	switch p.cur.Kind {
	case lexer.KW_TYPE:
		return p.parseTypeDecl()
	case lexer.KW_SUBTYPE:
		return p.parseSubtypeDecl()
	case lexer.KW_PROCEDURE, lexer.KW_FUNCTION:
		return p.parseSubprogram()
	case lexer.KW_PACKAGE:
		return p.parsePackage()
	case lexer.KW_PRAGMA:
		return p.parsePragma()
	case lexer.KW_USE:
		return p.parseUseClause()
	case lexer.KW_GENERIC:
		return p.parseGenericDiscarded()
	case lexer.KW_TASK:
		return p.parseTaskDecl()
	case lexer.KW_FOR:
		return p.parseRepresentationClauseDiscarded()
	default:
		return p.parseObjectOrExceptionOrRenaming()
	}
}

// parseRepresentationClauseDiscarded parses and discards "for Name use
// ...;" (spec §4.5: "parsed and discarded").
func (p *Parser) parseRepresentationClauseDiscarded() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_FOR)
	for !p.check(lexer.SEMI) && !p.check(lexer.EOF) {
		p.advance()
	}
	p.expect(lexer.SEMI)
	return &ast.PragmaDecl{Base: ast.Base{Loc: loc}, Name: "<representation clause>"}
}

func (p *Parser) parsePragma() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_PRAGMA)
	name := p.expectIdent()
	var args []ast.Expr
	if p.match(lexer.LPAREN) {
		args = p.parseExprListUntilRParen()
		p.expect(lexer.RPAREN)
	}
	p.expect(lexer.SEMI)
	return &ast.PragmaDecl{Base: ast.Base{Loc: loc}, Name: name, Args: args}
}

// parseObjectOrExceptionOrRenaming parses "Names : ...;" in its three
// forms: object/constant declaration, exception declaration, or renaming.
func (p *Parser) parseObjectOrExceptionOrRenaming() ast.Decl {
	loc := p.loc()
	names := p.parseNameList()
	p.expect(lexer.COLON)

	if p.check(lexer.KW_EXCEPTION) {
		p.advance()
		p.expect(lexer.SEMI)
		return &ast.ExceptionDecl{Base: ast.Base{Loc: loc}, Names: names}
	}

	constant := p.match(lexer.KW_CONSTANT)
	sub := p.parseSubtypeIndication()

	if p.match(lexer.KW_RENAMES) {
		renamed := p.parseExpression()
		p.expect(lexer.SEMI)
		return &ast.RenamingDecl{Base: ast.Base{Loc: loc}, Name: names[0], Subtype: sub, Renamed: renamed}
	}

	var init ast.Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseExpression()
	}
	p.expect(lexer.SEMI)
	return &ast.ObjectDecl{Base: ast.Base{Loc: loc}, Names: names, Constant: constant, Subtype: sub, Init: init}
}

func (p *Parser) parseNameList() []string {
	names := []string{p.expectIdent()}
	for p.match(lexer.COMMA) {
		names = append(names, p.expectIdent())
	}
	return names
}

// parseSubtypeIndication parses "TypeName [constraint]" (spec §4.6).
func (p *Parser) parseSubtypeIndication() *ast.SubtypeIndication {
	loc := p.loc()
	mark := p.expectIdent()
	si := &ast.SubtypeIndication{Base: ast.Base{Loc: loc}, TypeMark: mark}

	switch {
	case p.check(lexer.KW_RANGE):
		p.advance()
		low := p.parseSimpleExpression()
		p.expect(lexer.DOTDOT)
		high := p.parseSimpleExpression()
		si.Constraint = &ast.RangeConstraint{Base: ast.Base{Loc: loc}, Range: &ast.RangeExpr{Base: ast.Base{Loc: loc}, Low: low, High: high}}
	case p.check(lexer.LPAREN):
		p.advance()
		ranges := []ast.Expr{p.parseRangeOrSubtype()}
		for p.match(lexer.COMMA) {
			ranges = append(ranges, p.parseRangeOrSubtype())
		}
		p.expect(lexer.RPAREN)
		si.Constraint = &ast.IndexConstraint{Base: ast.Base{Loc: loc}, Ranges: ranges}
	}
	return si
}

func (p *Parser) parseTypeDecl() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_TYPE)
	name := p.expectIdent()

	var discrs []*ast.ObjectDecl
	if p.match(lexer.LPAREN) {
		discrs = append(discrs, p.parseObjectDeclNoTerminator())
		for p.match(lexer.SEMI) {
			discrs = append(discrs, p.parseObjectDeclNoTerminator())
		}
		p.expect(lexer.RPAREN)
	}

	if p.check(lexer.SEMI) {
		p.advance()
		return &ast.IncompleteTypeDecl{Base: ast.Base{Loc: loc}, Name: name}
	}

	p.expect(lexer.KW_IS)
	def := p.parseTypeDefinition()
	p.expect(lexer.SEMI)
	return &ast.TypeDecl{Base: ast.Base{Loc: loc}, Name: name, Discriminants: discrs, Def: def}
}

// parseObjectDeclNoTerminator parses "Names : [mode] Subtype [:= Init]"
// without a trailing semicolon, for parameter/discriminant/component
// lists that are separated by ';' inside parentheses.
func (p *Parser) parseObjectDeclNoTerminator() *ast.ObjectDecl {
	loc := p.loc()
	names := p.parseNameList()
	p.expect(lexer.COLON)

	mode := ast.ModeIn
	switch {
	case p.match(lexer.KW_OUT):
		mode = ast.ModeOut
	case p.cur.Kind == lexer.KW_IN && p.peek.Kind == lexer.KW_OUT:
		p.advance()
		p.advance()
		mode = ast.ModeInOut
	case p.match(lexer.KW_IN):
		mode = ast.ModeIn
	}
	sub := p.parseSubtypeIndication()
	var init ast.Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseExpression()
	}
	return &ast.ObjectDecl{Base: ast.Base{Loc: loc}, Names: names, Subtype: sub, Init: init, Mode: mode}
}

func (p *Parser) parseTypeDefinition() ast.TypeNode {
	loc := p.loc()
	switch p.cur.Kind {
	case lexer.LPAREN:
		return p.parseEnumerationDef()
	case lexer.KW_RANGE:
		p.advance()
		low := p.parseSimpleExpression()
		p.expect(lexer.DOTDOT)
		high := p.parseSimpleExpression()
		return &ast.IntegerTypeDef{Base: ast.Base{Loc: loc}, Range: &ast.RangeExpr{Base: ast.Base{Loc: loc}, Low: low, High: high}}
	case lexer.KW_DIGITS:
		p.advance()
		digits := p.parseSimpleExpression()
		def := &ast.FloatTypeDef{Base: ast.Base{Loc: loc}, Digits: digits}
		if p.match(lexer.KW_RANGE) {
			low := p.parseSimpleExpression()
			p.expect(lexer.DOTDOT)
			high := p.parseSimpleExpression()
			def.Range = &ast.RangeExpr{Base: ast.Base{Loc: loc}, Low: low, High: high}
		}
		return def
	case lexer.KW_DELTA:
		p.advance()
		delta := p.parseSimpleExpression()
		def := &ast.FixedTypeDef{Base: ast.Base{Loc: loc}, Delta: delta}
		if p.match(lexer.KW_RANGE) {
			low := p.parseSimpleExpression()
			p.expect(lexer.DOTDOT)
			high := p.parseSimpleExpression()
			def.Range = &ast.RangeExpr{Base: ast.Base{Loc: loc}, Low: low, High: high}
		}
		return def
	case lexer.KW_ARRAY:
		return p.parseArrayDef()
	case lexer.KW_RECORD:
		return p.parseRecordDef()
	case lexer.KW_ACCESS:
		p.advance()
		name := p.expectIdent()
		return &ast.AccessTypeDef{Base: ast.Base{Loc: loc}, DesignatedName: name}
	case lexer.KW_NEW:
		p.advance()
		parent := p.parseSubtypeIndication()
		return &ast.DerivedTypeDef{Base: ast.Base{Loc: loc}, Parent: parent}
	case lexer.KW_PRIVATE:
		p.advance()
		return &ast.PrivateTypeDef{Base: ast.Base{Loc: loc}}
	case lexer.KW_LIMITED:
		p.advance()
		p.expect(lexer.KW_PRIVATE)
		return &ast.PrivateTypeDef{Base: ast.Base{Loc: loc}, Limited: true}
	default:
		p.fatal("expected a type definition")
		return nil
	}
}

func (p *Parser) parseEnumerationDef() ast.TypeNode {
	loc := p.loc()
	p.expect(lexer.LPAREN)
	var literals []*ast.Identifier
	for {
		lloc := p.loc()
		name := p.expectIdent()
		literals = append(literals, &ast.Identifier{Base: ast.Base{Loc: lloc}, Name: name})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN)
	return &ast.EnumerationTypeDef{Base: ast.Base{Loc: loc}, Literals: literals}
}

func (p *Parser) parseArrayDef() ast.TypeNode {
	loc := p.loc()
	p.expect(lexer.KW_ARRAY)
	p.expect(lexer.LPAREN)

	def := &ast.ArrayTypeDef{Base: ast.Base{Loc: loc}}
	if p.check(lexer.BOX) {
		def.Unconstrained = true
		p.advance()
		def.IndexRanges = append(def.IndexRanges, nil)
		for p.match(lexer.COMMA) {
			p.expect(lexer.BOX)
			def.IndexRanges = append(def.IndexRanges, nil)
		}
	} else {
		def.IndexRanges = append(def.IndexRanges, p.parseRangeOrSubtype())
		for p.match(lexer.COMMA) {
			def.IndexRanges = append(def.IndexRanges, p.parseRangeOrSubtype())
		}
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.KW_OF)
	def.Component = p.parseSubtypeIndication()
	return def
}

func (p *Parser) parseRecordDef() ast.TypeNode {
	loc := p.loc()
	p.expect(lexer.KW_RECORD)
	def := &ast.RecordTypeDef{Base: ast.Base{Loc: loc}}
	for !p.check(lexer.KW_END) && !p.check(lexer.KW_CASE) {
		def.Components = append(def.Components, p.parseObjectDeclNoTerminator())
		p.expect(lexer.SEMI)
	}
	if p.match(lexer.KW_CASE) {
		def.Variant = p.parseVariantPart(loc)
	}
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_RECORD)
	return def
}

func (p *Parser) parseVariantPart(loc ident.Loc) *ast.VariantPart {
	selector := p.expectIdent()
	p.expect(lexer.KW_IS)
	vp := &ast.VariantPart{Base: ast.Base{Loc: loc}, Selector: selector}
	for p.check(lexer.KW_WHEN) {
		p.advance()
		var choices []ast.Expr
		if p.check(lexer.KW_OTHERS) {
			choices = append(choices, &ast.OthersChoice{Base: ast.Base{Loc: p.loc()}})
			p.advance()
		} else {
			choices = append(choices, p.parseChoiceOrExpr())
			for p.match(lexer.PIPE) {
				choices = append(choices, p.parseChoiceOrExpr())
			}
		}
		p.expect(lexer.ARROW)
		var comps []*ast.ObjectDecl
		for !p.check(lexer.KW_WHEN) && !p.check(lexer.KW_END) {
			comps = append(comps, p.parseObjectDeclNoTerminator())
			p.expect(lexer.SEMI)
		}
		vp.Variants = append(vp.Variants, &ast.Variant{Choices: choices, Components: comps})
	}
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_CASE)
	p.expect(lexer.SEMI)
	return vp
}

func (p *Parser) parseSubtypeDecl() ast.Decl {
	loc := p.loc()
	p.expect(lexer.KW_SUBTYPE)
	name := p.expectIdent()
	p.expect(lexer.KW_IS)
	sub := p.parseSubtypeIndication()
	p.expect(lexer.SEMI)
	return &ast.SubtypeDecl{Base: ast.Base{Loc: loc}, Name: name, Subtype: sub}
}
