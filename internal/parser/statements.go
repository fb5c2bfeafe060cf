package parser

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
)

// parseStatements parses a sequence of statements until one of the given
// terminator keywords is reached (without consuming it).
func (p *Parser) parseStatements(terminators ...lexer.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atTerminator(terminators) && !p.check(lexer.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

func (p *Parser) atTerminator(terminators []lexer.Kind) bool {
	for _, k := range terminators {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement() ast.Stmt {
	loc := p.loc()

	// "<<Label>>" form.
	if p.check(lexer.LSHIFT) {
		p.advance()
		name := p.expectIdent()
		p.expect(lexer.RSHIFT)
		return &ast.LabelStmt{Base: ast.Base{Loc: loc}, Name: name}
	}

	// "name : " prefixing a loop or block gives it a statement label.
	if p.check(lexer.IDENT) && p.peek.Kind == lexer.COLON {
		label := p.cur.Lit
		p.advance()
		p.advance()
		return p.parseLabeledConstruct(loc, label)
	}

	switch p.cur.Kind {
	case lexer.KW_NULL:
		p.advance()
		p.expect(lexer.SEMI)
		return &ast.NullStmt{Base: ast.Base{Loc: loc}}
	case lexer.KW_IF:
		return p.parseIfStmt()
	case lexer.KW_CASE:
		return p.parseCaseStmt()
	case lexer.KW_LOOP, lexer.KW_WHILE, lexer.KW_FOR:
		return p.parseLoopStmt("")
	case lexer.KW_DECLARE, lexer.KW_BEGIN:
		return p.parseBlockStmt("")
	case lexer.KW_EXIT:
		return p.parseExitStmt()
	case lexer.KW_RETURN:
		return p.parseReturnStmt()
	case lexer.KW_GOTO:
		return p.parseGotoStmt()
	case lexer.KW_RAISE:
		return p.parseRaiseStmt()
	case lexer.KW_DELAY:
		return p.parseDelayStmt()
	case lexer.KW_ABORT:
		return p.parseAbortStmt()
	case lexer.KW_ACCEPT:
		return p.parseAcceptStmt()
	case lexer.KW_SELECT:
		return p.parseSelectStmt()
	case lexer.KW_TERMINATE:
		p.advance()
		p.expect(lexer.SEMI)
		return &ast.NullStmt{Base: ast.Base{Loc: loc}}
	default:
		return p.parseAssignOrCallStmt()
	}
}

func (p *Parser) parseLabeledConstruct(loc ident.Loc, label string) ast.Stmt {
	switch p.cur.Kind {
	case lexer.KW_LOOP, lexer.KW_WHILE, lexer.KW_FOR:
		return p.parseLoopStmt(label)
	case lexer.KW_DECLARE, lexer.KW_BEGIN:
		return p.parseBlockStmt(label)
	default:
		p.fatal("expected loop or block after statement label")
		return nil
	}
}

// parseDelayStmt parses "delay Expr;"; the evaluator treats it as a no-op
// (spec §4.9) but the expression is kept on the AST node rather than
// discarded.
func (p *Parser) parseDelayStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_DELAY)
	delay := p.parseExpression()
	p.expect(lexer.SEMI)
	return &ast.DelayStmt{Base: ast.Base{Loc: loc}, Delay: delay}
}

// parseAbortStmt parses "abort Name {, Name};"; recognized but the
// evaluator never actually aborts a task (spec §4.9, no task scheduling).
func (p *Parser) parseAbortStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_ABORT)
	nloc := p.loc()
	names := []*ast.Identifier{{Base: ast.Base{Loc: nloc}, Name: p.expectIdent()}}
	for p.match(lexer.COMMA) {
		nloc = p.loc()
		names = append(names, &ast.Identifier{Base: ast.Base{Loc: nloc}, Name: p.expectIdent()})
	}
	p.expect(lexer.SEMI)
	return &ast.AbortStmt{Base: ast.Base{Loc: loc}, Names: names}
}

// parseAcceptStmt parses "accept Name [(formals)] [do Stmts end [Name]];".
// Recognized for completeness; the evaluator never performs an actual
// rendezvous (spec §4.9, no task scheduling) and simply runs Stmts in
// sequence as if they executed unconditionally.
func (p *Parser) parseAcceptStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_ACCEPT)
	name := p.expectIdent()
	var params []*ast.ObjectDecl
	if p.match(lexer.LPAREN) {
		params = append(params, p.parseObjectDeclNoTerminator())
		for p.match(lexer.SEMI) {
			params = append(params, p.parseObjectDeclNoTerminator())
		}
		p.expect(lexer.RPAREN)
	}
	var stmts []ast.Stmt
	if p.match(lexer.KW_DO) {
		stmts = p.parseStatements(lexer.KW_END)
		p.expect(lexer.KW_END)
		if p.check(lexer.IDENT) {
			p.advance()
		}
	}
	p.expect(lexer.SEMI)
	return &ast.AcceptStmt{Base: ast.Base{Loc: loc}, EntryName: name, Params: params, Stmts: stmts}
}

// parseSelectStmt parses "select Stmts {or Stmts} [else Stmts] end
// select;". Recognized but never scheduled as a real rendezvous
// selection (spec §4.9); the evaluator runs the first alternative's
// statements unconditionally.
func (p *Parser) parseSelectStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_SELECT)

	stmt := &ast.SelectStmt{Base: ast.Base{Loc: loc}}
	stmt.Alternatives = append(stmt.Alternatives, p.parseStatements(lexer.KW_OR, lexer.KW_ELSE, lexer.KW_END))
	for p.match(lexer.KW_OR) {
		stmt.Alternatives = append(stmt.Alternatives, p.parseStatements(lexer.KW_OR, lexer.KW_ELSE, lexer.KW_END))
	}
	if p.match(lexer.KW_ELSE) {
		stmt.Else = p.parseStatements(lexer.KW_END)
	}
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_SELECT)
	p.expect(lexer.SEMI)
	return stmt
}

func (p *Parser) parseAssignOrCallStmt() ast.Stmt {
	loc := p.loc()
	name := p.parseNameChain()
	if p.check(lexer.ASSIGN) {
		p.advance()
		value := p.parseExpression()
		p.expect(lexer.SEMI)
		return &ast.AssignStmt{Base: ast.Base{Loc: loc}, Target: name, Value: value}
	}
	p.expect(lexer.SEMI)
	call, ok := name.(*ast.CallExpr)
	if !ok {
		call = &ast.CallExpr{Base: ast.Base{Loc: loc}, Callee: name}
	}
	return &ast.CallStmt{Base: ast.Base{Loc: loc}, Call: call}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_IF)
	cond := p.parseExpression()
	p.expect(lexer.KW_THEN)
	thenStmts := p.parseStatements(lexer.KW_ELSIF, lexer.KW_ELSE, lexer.KW_END)

	stmt := &ast.IfStmt{Base: ast.Base{Loc: loc}, Cond: cond, Then: thenStmts}
	for p.check(lexer.KW_ELSIF) {
		eloc := p.loc()
		p.advance()
		econd := p.parseExpression()
		p.expect(lexer.KW_THEN)
		estmts := p.parseStatements(lexer.KW_ELSIF, lexer.KW_ELSE, lexer.KW_END)
		stmt.Elsifs = append(stmt.Elsifs, &ast.ElsifPart{Base: ast.Base{Loc: eloc}, Cond: econd, Stmts: estmts})
	}
	if p.match(lexer.KW_ELSE) {
		stmt.Else = p.parseStatements(lexer.KW_END)
	}
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_IF)
	p.expect(lexer.SEMI)
	return stmt
}

func (p *Parser) parseCaseStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_CASE)
	selector := p.parseExpression()
	p.expect(lexer.KW_IS)

	stmt := &ast.CaseStmt{Base: ast.Base{Loc: loc}, Selector: selector}
	for p.check(lexer.KW_WHEN) {
		aloc := p.loc()
		p.advance()
		choices := []ast.Expr{p.parseRangeOrSubtype()}
		for p.match(lexer.PIPE) {
			choices = append(choices, p.parseRangeOrSubtype())
		}
		p.expect(lexer.ARROW)
		astmts := p.parseStatements(lexer.KW_WHEN, lexer.KW_END)
		stmt.Alternatives = append(stmt.Alternatives, &ast.CaseAlt{Base: ast.Base{Loc: aloc}, Choices: choices, Stmts: astmts})
	}
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_CASE)
	p.expect(lexer.SEMI)
	return stmt
}

func (p *Parser) parseLoopStmt(label string) ast.Stmt {
	loc := p.loc()
	stmt := &ast.LoopStmt{Base: ast.Base{Loc: loc}, Label: label}

	switch p.cur.Kind {
	case lexer.KW_WHILE:
		p.advance()
		stmt.Cond = p.parseExpression()
	case lexer.KW_FOR:
		p.advance()
		varName := p.expectIdent()
		p.expect(lexer.KW_IN)
		reverse := p.match(lexer.KW_REVERSE)
		rangeExpr := p.parseRangeOrSubtype()
		stmt.ForSpec = &ast.ForSpec{Base: ast.Base{Loc: loc}, Var: varName, Reverse: reverse, Range: rangeExpr}
	}
	p.expect(lexer.KW_LOOP)
	stmt.Stmts = p.parseStatements(lexer.KW_END)
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_LOOP)
	if p.check(lexer.IDENT) {
		stmt.EndLabel = p.expectIdent()
	}
	p.expect(lexer.SEMI)
	return stmt
}

func (p *Parser) parseBlockStmt(label string) ast.Stmt {
	loc := p.loc()
	stmt := &ast.BlockStmt{Base: ast.Base{Loc: loc}, Label: label}
	if p.match(lexer.KW_DECLARE) {
		stmt.Decls = p.parseDeclarativePart(lexer.KW_BEGIN)
	}
	p.expect(lexer.KW_BEGIN)
	stmt.Stmts = p.parseStatements(lexer.KW_EXCEPTION, lexer.KW_END)
	if p.match(lexer.KW_EXCEPTION) {
		stmt.Handlers = p.parseExceptionHandlers()
	}
	p.expect(lexer.KW_END)
	if p.check(lexer.IDENT) {
		p.advance()
	}
	p.expect(lexer.SEMI)
	return stmt
}

func (p *Parser) parseExceptionHandlers() []*ast.ExceptionHandler {
	var handlers []*ast.ExceptionHandler
	for p.check(lexer.KW_WHEN) {
		loc := p.loc()
		p.advance()
		var choices []ast.Expr
		if p.check(lexer.KW_OTHERS) {
			choices = append(choices, &ast.OthersChoice{Base: ast.Base{Loc: p.loc()}})
			p.advance()
		} else {
			choices = append(choices, p.parseNameChain())
			for p.match(lexer.PIPE) {
				choices = append(choices, p.parseNameChain())
			}
		}
		p.expect(lexer.ARROW)
		stmts := p.parseStatements(lexer.KW_WHEN, lexer.KW_END, lexer.KW_EXCEPTION)
		handlers = append(handlers, &ast.ExceptionHandler{Base: ast.Base{Loc: loc}, Choices: choices, Stmts: stmts})
	}
	return handlers
}

func (p *Parser) parseExitStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_EXIT)
	var label string
	if p.check(lexer.IDENT) {
		label = p.expectIdent()
	}
	var cond ast.Expr
	if p.match(lexer.KW_WHEN) {
		cond = p.parseExpression()
	}
	p.expect(lexer.SEMI)
	return &ast.ExitStmt{Base: ast.Base{Loc: loc}, Label: label, Cond: cond}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_RETURN)
	var value ast.Expr
	if !p.check(lexer.SEMI) {
		value = p.parseExpression()
	}
	p.expect(lexer.SEMI)
	return &ast.ReturnStmt{Base: ast.Base{Loc: loc}, Value: value}
}

func (p *Parser) parseGotoStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_GOTO)
	label := p.expectIdent()
	p.expect(lexer.SEMI)
	return &ast.GotoStmt{Base: ast.Base{Loc: loc}, Label: label}
}

func (p *Parser) parseRaiseStmt() ast.Stmt {
	loc := p.loc()
	p.expect(lexer.KW_RAISE)
	var name string
	if p.check(lexer.IDENT) {
		name = p.expectIdent()
	}
	p.expect(lexer.SEMI)
	return &ast.RaiseStmt{Base: ast.Base{Loc: loc}, Name: name}
}
