// Package parser implements a recursive-descent parser that turns a
// Veureka token stream into an ast.Program. There is no Pratt dispatch
// table: the grammar's precedence chain (spec.md §4.2) is expressed
// directly as one parsing function per precedence level.
package parser

import (
	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/lexer"
	"github.com/veureka-lang/veureka-go/token"
)

// Parser consumes tokens from a Lexer one at a time, keeping one token of
// lookahead (cur, peek), and builds an ast.Program.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token

	errors []*Error
}

// New creates a Parser over l and primes the lookahead tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*Error {
	return p.errors
}

// next advances the lookahead window by one token, silently filtering
// NEWLINE: statements are delimited by keywords, not line breaks, but the
// lexer still emits them so future grammar extensions stay possible.
func (p *Parser) next() {
	p.cur = p.peek
	for {
		p.peek = p.l.NextToken()
		if p.peek.Type != token.NEWLINE {
			break
		}
	}
}

func (p *Parser) curIs(tt token.Type) bool  { return p.cur.Type == tt }
func (p *Parser) peekIs(tt token.Type) bool { return p.peek.Type == tt }

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, newError(p.cur.Pos, format, args...))
}

// expect asserts the current token has type tt, recording an error and
// returning false otherwise. On success it advances past it.
func (p *Parser) expect(tt token.Type) bool {
	if p.curIs(tt) {
		p.next()
		return true
	}
	p.addError("expected %s, got %s %q", tt, p.cur.Type, p.cur.Literal)
	return false
}

// expectEnd consumes the 'end' keyword closing a block that started at
// openPos, producing a hint-bearing error if it's missing (spec.md §9: parse
// errors for a missing `end` should name what it was supposed to close).
func (p *Parser) expectEnd(construct string, openPos token.Position) bool {
	if p.curIs(token.END) {
		p.next()
		return true
	}
	p.errors = append(p.errors, newError(p.cur.Pos,
		"expected 'end' to close %s opened at %s, got %s %q",
		construct, openPos, p.cur.Type, p.cur.Literal))
	return false
}

// ParseProgram parses the entire token stream into an ast.Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// parseBlock parses statements until 'end', 'elif', or 'else' is seen
// (the latter two so parseIf's caller can tell clauses apart) or EOF.
func (p *Parser) parseBlock() []ast.Node {
	var body []ast.Node
	for !p.curIs(token.END) && !p.curIs(token.ELIF) && !p.curIs(token.ELSE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			// parseStatement failed to make progress; force advancement so
			// a single bad token cannot loop the parser forever.
			p.next()
			continue
		}
		body = append(body, stmt)
	}
	return body
}
