package parser

import "github.com/AdaDoom3/Ada83-sub006/internal/lexer"

func (p *Parser) checkKwOr() bool  { return p.cur.Kind == lexer.KW_OR && p.peek.Kind != lexer.KW_ELSE }
func (p *Parser) checkKwXor() bool { return p.cur.Kind == lexer.KW_XOR }
func (p *Parser) checkKwAnd() bool { return p.cur.Kind == lexer.KW_AND }
func (p *Parser) checkKwNot() bool { return p.cur.Kind == lexer.KW_NOT }
func (p *Parser) checkKwAbs() bool { return p.cur.Kind == lexer.KW_ABS }
func (p *Parser) checkKwIn() bool  { return p.cur.Kind == lexer.KW_IN }

func (p *Parser) peekIsIn() bool { return p.peek.Kind == lexer.KW_IN }

// relOp returns the relational operator's text when the current token is
// one, and whether a relational operator was found. "or else" resolution
// for KW_OR happens separately since it binds at a different level.
func (p *Parser) relOp() (string, bool) {
	switch p.cur.Kind {
	case lexer.EQ:
		return "=", true
	case lexer.NE:
		return "/=", true
	case lexer.LT:
		return "<", true
	case lexer.LE:
		return "<=", true
	case lexer.GT:
		return ">", true
	case lexer.GE:
		return ">=", true
	}
	return "", false
}

func (p *Parser) checkUnaryAdding() bool {
	return p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS
}

func (p *Parser) checkAddingOp() bool {
	switch p.cur.Kind {
	case lexer.PLUS, lexer.MINUS, lexer.AMP:
		return true
	}
	return false
}

func (p *Parser) checkMultiplyingOp() bool {
	switch p.cur.Kind {
	case lexer.STAR, lexer.SLASH, lexer.KW_MOD, lexer.KW_REM:
		return true
	}
	return false
}

func (p *Parser) curOpText() string {
	switch p.cur.Kind {
	case lexer.KW_MOD:
		return "mod"
	case lexer.KW_REM:
		return "rem"
	default:
		return p.cur.Lit
	}
}

func (p *Parser) checkStarStar() bool { return p.cur.Kind == lexer.STARSTAR }
