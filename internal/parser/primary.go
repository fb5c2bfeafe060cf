package parser

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
)

// parsePrimary parses a literal, NULL, OTHERS, an allocator, a
// parenthesized expression/aggregate, or a name chain (spec §4.5
// "Names"): an identifier followed by any mixture of .selector,
// 'attribute[(args)], '(qualified), (arg-list), parsed left to right.
func (p *Parser) parsePrimary() ast.Expr {
	loc := p.loc()
	switch p.cur.Kind {
	case lexer.INT_LITERAL:
		tok := p.cur
		p.advance()
		return &ast.IntegerLiteral{Base: ast.Base{Loc: loc}, Value: tok.IntVal, Big: tok.Big}
	case lexer.FLOAT_LITERAL:
		tok := p.cur
		p.advance()
		return &ast.RealLiteral{Base: ast.Base{Loc: loc}, Value: tok.FloatVal}
	case lexer.CHAR_LITERAL:
		tok := p.cur
		p.advance()
		return &ast.CharLiteral{Base: ast.Base{Loc: loc}, Value: tok.IntVal}
	case lexer.STRING_LITERAL:
		tok := p.cur
		p.advance()
		return &ast.StringLiteral{Base: ast.Base{Loc: loc}, Value: tok.StrVal}
	case lexer.KW_NULL:
		p.advance()
		return &ast.NullLiteral{Base: ast.Base{Loc: loc}}
	case lexer.KW_OTHERS:
		p.advance()
		return &ast.OthersChoice{Base: ast.Base{Loc: loc}}
	case lexer.KW_NEW:
		return p.parseAllocator()
	case lexer.LPAREN:
		return p.parseParenExprOrAggregate()
	case lexer.IDENT:
		return p.parseNameChain()
	default:
		p.fatal("unexpected token %s in expression", p.cur.Kind)
		return nil
	}
}

func (p *Parser) parseAllocator() ast.Expr {
	loc := p.loc()
	p.expect(lexer.KW_NEW)
	name := p.expectIdent()
	var qual ast.Expr
	if p.check(lexer.TICK) {
		p.advance()
		p.expect(lexer.LPAREN)
		qual = p.parseExpression()
		p.expect(lexer.RPAREN)
	}
	return &ast.AllocatorExpr{Base: ast.Base{Loc: loc}, SubtypeName: name, Qualifier: qual}
}

// parseParenExprOrAggregate disambiguates "(expr)" from an aggregate by
// whether a top-level "=>" or "," appears before the matching ")" (spec
// §4.5).
func (p *Parser) parseParenExprOrAggregate() ast.Expr {
	loc := p.loc()
	p.expect(lexer.LPAREN)
	first := p.parseAssociationValue()
	if p.check(lexer.COMMA) || first.named {
		elems := []*ast.Association{first.assoc}
		for p.match(lexer.COMMA) {
			elems = append(elems, p.parseAssociationValue().assoc)
		}
		p.expect(lexer.RPAREN)
		return &ast.AggregateExpr{Base: ast.Base{Loc: loc}, Elements: elems}
	}
	p.expect(lexer.RPAREN)
	return first.assoc.Value
}

type assocResult struct {
	assoc *ast.Association
	named bool
}

// parseAssociationValue parses one aggregate/call element: either
// "choice [| choice] => value" or a bare positional value. A single
// identifier followed by "=>" (or a choice list of them) is named; the
// parser speculatively parses an expression and reinterprets it as a
// choice list if "=>" follows.
func (p *Parser) parseAssociationValue() assocResult {
	loc := p.loc()
	first := p.parseChoiceOrExpr()
	choices := []ast.Expr{first}
	for p.check(lexer.PIPE) {
		p.advance()
		choices = append(choices, p.parseChoiceOrExpr())
	}
	if p.match(lexer.ARROW) {
		value := p.parseExpression()
		return assocResult{
			assoc: &ast.Association{Base: ast.Base{Loc: loc}, Choices: choices, Value: value},
			named: true,
		}
	}
	return assocResult{assoc: &ast.Association{Base: ast.Base{Loc: loc}, Value: first}}
}

// parseChoiceOrExpr parses a plain expression used as an aggregate
// element or variant choice. A discrete range ("Low .. High") is not
// accepted here; case statement choices go through parseRangeOrSubtype,
// which does accept one.
func (p *Parser) parseChoiceOrExpr() ast.Expr {
	e := p.parseExpression()
	return e
}

// parseNameChain parses an identifier followed by any mixture of
// .selector, 'designator[(args)] / '(qualified), and (arg-list), left to
// right (spec §4.5).
func (p *Parser) parseNameChain() ast.Expr {
	loc := p.loc()
	name := p.expectIdent()
	var result ast.Expr = &ast.Identifier{Base: ast.Base{Loc: loc}, Name: name}

	for {
		switch {
		case p.check(lexer.DOT):
			p.advance()
			if p.match(lexer.KW_ALL) {
				result = &ast.DereferenceExpr{Base: ast.Base{Loc: result.Pos()}, Prefix: result}
				continue
			}
			sel := p.expectIdent()
			result = &ast.SelectedExpr{Base: ast.Base{Loc: result.Pos()}, Prefix: result, Selector: sel}
		case p.check(lexer.TICK):
			result = p.parseTickSuffix(result)
		case p.check(lexer.LPAREN):
			result = p.parseCallOrIndexOrSlice(result)
		default:
			return result
		}
	}
}

// parseTickSuffix parses the continuation after a tick: either a
// qualified expression "'(Expr)" or an attribute "'Designator[(Args)]".
func (p *Parser) parseTickSuffix(prefix ast.Expr) ast.Expr {
	loc := p.loc()
	p.expect(lexer.TICK)
	if p.check(lexer.LPAREN) {
		p.advance()
		value := p.parseExpression()
		p.expect(lexer.RPAREN)
		return &ast.QualifiedExpr{Base: ast.Base{Loc: loc}, Prefix: prefix, Value: value}
	}
	designator := p.tickDesignator()
	var args []ast.Expr
	if p.check(lexer.LPAREN) {
		p.advance()
		args = p.parseExprListUntilRParen()
		p.expect(lexer.RPAREN)
	}
	return &ast.AttributeExpr{Base: ast.Base{Loc: loc}, Prefix: prefix, Designator: designator, Args: args}
}

// tickDesignator accepts either a plain identifier or one of the
// reserved-word attribute designators (spec §4.5's attribute grammar
// allows both, e.g. 'RANGE, 'DIGITS).
func (p *Parser) tickDesignator() string {
	if p.cur.Kind == lexer.IDENT || p.cur.Kind.IsReserved() {
		text := p.cur.Lit
		p.advance()
		return text
	}
	p.fatal("expected attribute designator, got %s", p.cur.Kind)
	return ""
}

func (p *Parser) parseExprListUntilRParen() []ast.Expr {
	var exprs []ast.Expr
	if p.check(lexer.RPAREN) {
		return exprs
	}
	exprs = append(exprs, p.parseExpression())
	for p.match(lexer.COMMA) {
		exprs = append(exprs, p.parseExpression())
	}
	return exprs
}

// parseCallOrIndexOrSlice parses "Prefix(...)": a call with associations,
// or (if exactly one argument containing "..") a slice. Disambiguating a
// call from an indexed component on an array-typed prefix happens during
// resolution (spec §4.8), not here.
func (p *Parser) parseCallOrIndexOrSlice(prefix ast.Expr) ast.Expr {
	loc := p.loc()
	p.expect(lexer.LPAREN)
	if p.check(lexer.RPAREN) {
		p.advance()
		return &ast.CallExpr{Base: ast.Base{Loc: loc}, Callee: prefix}
	}

	first := p.parseAssociationValue()
	if !first.named && p.check(lexer.DOTDOT) {
		p.advance()
		high := p.parseSimpleExpression()
		p.expect(lexer.RPAREN)
		return &ast.SliceExpr{Base: ast.Base{Loc: loc}, Prefix: prefix, Low: first.assoc.Value, High: high}
	}

	args := []*ast.Association{first.assoc}
	for p.match(lexer.COMMA) {
		args = append(args, p.parseAssociationValue().assoc)
	}
	p.expect(lexer.RPAREN)
	return &ast.CallExpr{Base: ast.Base{Loc: loc}, Callee: prefix, Args: args}
}
