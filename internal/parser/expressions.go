package parser

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
)

// parseExpression implements the full precedence chain of spec §4.5:
// expression = or-expression of and-expressions; and-expression =
// relation {AND/AND THEN relation}; relation = simple-expression
// [rel-op simple-expression | [NOT] IN range]; simple-expression =
// [unary +/-] term {adding-op term}; term = factor {multiplying-op
// factor}; factor = primary [** factor] | NOT primary | ABS primary.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseOrExpression()
}

// parseOrExpression handles a flat chain of OR / OR ELSE / XOR at the
// weakest precedence. Per spec §4.5 these cannot be mixed in one chain;
// the first operator seen fixes which is allowed for the rest.
func (p *Parser) parseOrExpression() ast.Expr {
	left := p.parseAndExpression()
	var chainOp string

	for p.checkKwOr() || p.isOrElse() || p.checkKwXor() {
		loc := p.loc()
		var op string
		switch {
		case p.isOrElse():
			op = p.consumeAndThenOrElse()
		case p.checkKwXor():
			op = "xor"
			p.advance()
		default:
			op = "or"
			p.advance()
		}
		if chainOp == "" {
			chainOp = op
		} else if chainOp != op {
			p.fatal("cannot mix %q and %q in the same expression", chainOp, op)
		}
		right := p.parseAndExpression()
		left = &ast.BinaryExpr{Base: ast.Base{Loc: loc}, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAndExpression() ast.Expr {
	left := p.parseRelation()
	for p.checkKwAnd() {
		loc := p.loc()
		op := p.consumeAndThenOrElse()
		right := p.parseRelation()
		left = &ast.BinaryExpr{Base: ast.Base{Loc: loc}, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseRelation() ast.Expr {
	left := p.parseSimpleExpression()

	if op, ok := p.relOp(); ok {
		loc := p.loc()
		p.advance()
		right := p.parseSimpleExpression()
		return &ast.BinaryExpr{Base: ast.Base{Loc: loc}, Op: op, Left: left, Right: right}
	}

	negated := false
	loc := p.loc()
	if p.checkKwNot() && p.peekIsIn() {
		negated = true
		p.advance()
	}
	if p.checkKwIn() {
		p.advance()
		rangeExpr := p.parseRangeOrSubtype()
		op := "in"
		if negated {
			op = "not in"
		}
		return &ast.BinaryExpr{Base: ast.Base{Loc: loc}, Op: op, Left: left, Right: rangeExpr}
	}
	return left
}

// parseRangeOrSubtype parses the right-hand operand of IN: either a
// discrete range "Low .. High" or a bare subtype mark.
func (p *Parser) parseRangeOrSubtype() ast.Expr {
	low := p.parseSimpleExpression()
	if p.match(lexer.DOTDOT) {
		high := p.parseSimpleExpression()
		return &ast.RangeExpr{Base: ast.Base{Loc: low.Pos()}, Low: low, High: high}
	}
	return low
}

func (p *Parser) parseSimpleExpression() ast.Expr {
	var result ast.Expr
	if p.checkUnaryAdding() {
		loc := p.loc()
		op := p.cur.Lit
		p.advance()
		operand := p.parseTerm()
		result = &ast.UnaryExpr{Base: ast.Base{Loc: loc}, Op: op, Operand: operand}
	} else {
		result = p.parseTerm()
	}

	for p.checkAddingOp() {
		loc := p.loc()
		op := p.cur.Lit
		p.advance()
		right := p.parseTerm()
		result = &ast.BinaryExpr{Base: ast.Base{Loc: loc}, Op: op, Left: result, Right: right}
	}
	return result
}

func (p *Parser) parseTerm() ast.Expr {
	result := p.parseFactor()
	for p.checkMultiplyingOp() {
		loc := p.loc()
		op := p.curOpText()
		p.advance()
		right := p.parseFactor()
		result = &ast.BinaryExpr{Base: ast.Base{Loc: loc}, Op: op, Left: result, Right: right}
	}
	return result
}

func (p *Parser) parseFactor() ast.Expr {
	loc := p.loc()
	switch {
	case p.checkKwNot():
		p.advance()
		operand := p.parsePrimary()
		return &ast.UnaryExpr{Base: ast.Base{Loc: loc}, Op: "not", Operand: operand}
	case p.checkKwAbs():
		p.advance()
		operand := p.parsePrimary()
		return &ast.UnaryExpr{Base: ast.Base{Loc: loc}, Op: "abs", Operand: operand}
	default:
		left := p.parsePrimary()
		if p.checkStarStar() {
			p.advance()
			right := p.parseFactor() // right-associative
			return &ast.BinaryExpr{Base: ast.Base{Loc: loc}, Op: "**", Left: left, Right: right}
		}
		return left
	}
}
