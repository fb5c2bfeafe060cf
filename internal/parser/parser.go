// Package parser implements the core's recursive-descent parser: one
// token of lookahead plus one token of peek, fatal-on-first-error
// (§4.5), built around a precedence-climbing expression parser
// generalized to Ada 83's fixed operator grammar instead of a
// token-to-precedence map sized for a different language, with parsing
// kept to a single-shot fatal diagnostic model rather than backtracking
// token-cursor/error-recovery machinery.
package parser

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/diag"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/lexer"
)

// Parser holds the lexer and its two-token lookahead window.
type Parser struct {
	lex    *lexer.Lexer
	source string
	file   string

	cur  lexer.Token
	peek lexer.Token
}

// New creates a parser over input, fetching the first two tokens per
// spec §4.5.
func New(input, file string) *Parser {
	p := &Parser{lex: lexer.New(input, file), source: input, file: file}
	p.cur = p.lex.Next()
	p.peek = p.lex.Next()
	return p
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Next()
	if p.cur.Kind == lexer.ILLEGAL {
		p.fatal("%s", p.cur.Err)
	}
}

// isAndThen reports whether the lookahead window is positioned at "and
// then".
func (p *Parser) isAndThen() bool {
	return p.cur.Kind == lexer.KW_AND && p.peek.Kind == lexer.KW_THEN
}

// isOrElse reports whether the lookahead window is positioned at "or
// else".
func (p *Parser) isOrElse() bool {
	return p.cur.Kind == lexer.KW_OR && p.peek.Kind == lexer.KW_ELSE
}

// consumeAndThenOrElse advances past both keywords of a coalesced pair
// and returns its canonical operator spelling.
func (p *Parser) consumeAndThenOrElse() string {
	var op string
	switch {
	case p.isAndThen():
		op = "and then"
	case p.isOrElse():
		op = "or else"
	default:
		op = p.cur.Lit
	}
	p.advance()
	if op == "and then" || op == "or else" {
		p.advance()
	}
	return op
}

// check reports whether the current token has the given kind, without
// consuming it.
func (p *Parser) check(k lexer.Kind) bool { return p.cur.Kind == k }

// match consumes and returns true if the current token has the given
// kind; otherwise it leaves the cursor unchanged and returns false.
func (p *Parser) match(k lexer.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has the given kind; otherwise
// it is a fatal error (spec §4.5).
func (p *Parser) expect(k lexer.Kind) lexer.Token {
	if !p.check(k) {
		p.fatal("expected %s, got %s %q", k, p.cur.Kind, p.cur.Lit)
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) loc() ident.Loc { return p.cur.Loc }

func (p *Parser) fatal(format string, args ...any) {
	diag.Fatal(p.loc(), p.source, format, args...)
}

// expectIdent consumes an identifier token and returns its text.
func (p *Parser) expectIdent() string {
	tok := p.expect(lexer.IDENT)
	return tok.Lit
}

// Parse parses one compilation unit: an optional context clause (with/use
// clauses) followed by exactly one library-unit declaration.
func Parse(input, file string) *ast.CompilationUnit {
	p := New(input, file)
	return p.parseCompilationUnit()
}

func (p *Parser) parseCompilationUnit() *ast.CompilationUnit {
	loc := p.loc()
	cu := &ast.CompilationUnit{Base: ast.Base{Loc: loc}}

	for p.check(lexer.KW_WITH) || p.check(lexer.KW_USE) {
		if p.check(lexer.KW_WITH) {
			cu.WithClauses = append(cu.WithClauses, p.parseWithClause())
		} else {
			cu.UseClauses = append(cu.UseClauses, p.parseUseClause())
		}
	}

	cu.Library = p.parseLibraryUnit()
	return cu
}

func (p *Parser) parseWithClause() *ast.WithClause {
	loc := p.loc()
	p.expect(lexer.KW_WITH)
	names := p.parseIdentifierList()
	p.expect(lexer.SEMI)
	return &ast.WithClause{Base: ast.Base{Loc: loc}, Names: names}
}

func (p *Parser) parseUseClause() *ast.UseClause {
	loc := p.loc()
	p.expect(lexer.KW_USE)
	names := p.parseIdentifierList()
	p.expect(lexer.SEMI)
	return &ast.UseClause{Base: ast.Base{Loc: loc}, Names: names}
}

func (p *Parser) parseIdentifierList() []*ast.Identifier {
	var names []*ast.Identifier
	for {
		loc := p.loc()
		name := p.expectIdent()
		for p.check(lexer.DOT) {
			p.advance()
			name = name + "." + p.expectIdent()
		}
		names = append(names, &ast.Identifier{Base: ast.Base{Loc: loc}, Name: name})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return names
}

// parseLibraryUnit parses the single library-unit declaration that forms
// the bulk of a compilation unit: a subprogram, package, or generic
// declaration.
func (p *Parser) parseLibraryUnit() ast.Decl {
	switch {
	case p.check(lexer.KW_PROCEDURE) || p.check(lexer.KW_FUNCTION):
		return p.parseSubprogram()
	case p.check(lexer.KW_PACKAGE):
		return p.parsePackage()
	case p.check(lexer.KW_GENERIC):
		return p.parseGenericDiscarded()
	default:
		p.fatal("expected a library unit (procedure, function, package, or generic)")
		return nil
	}
}
