package parser

import (
	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/token"
)

// parseStatement dispatches on the current token: a reserved keyword starts
// a statement form, anything else is parsed as an expression whose value is
// discarded at the top level but whose side effects (assignment, calls)
// still occur.
func (p *Parser) parseStatement() ast.Node {
	switch p.cur.Type {
	case token.INCLUDE:
		return p.parseInclude()
	case token.LET:
		return p.parseLet()
	case token.FN:
		return p.parseFnDef()
	case token.CLASS:
		return p.parseClassDef()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		tok := p.cur
		p.next()
		return &ast.Break{Token: tok}
	case token.CONTINUE:
		tok := p.cur
		p.next()
		return &ast.Continue{Token: tok}
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseInclude() ast.Node {
	tok := p.cur
	p.next() // consume 'include'
	if !p.curIs(token.STRING) {
		p.addError("expected string path after 'include', got %s %q", p.cur.Type, p.cur.Literal)
		return &ast.Include{Token: tok}
	}
	path := p.cur.Literal
	p.next()
	return &ast.Include{Token: tok, Path: path}
}

func (p *Parser) parseLet() ast.Node {
	tok := p.cur
	p.next() // consume 'let'
	if !p.curIs(token.IDENT) {
		p.addError("expected identifier after 'let', got %s %q", p.cur.Type, p.cur.Literal)
		return nil
	}
	name := p.cur.Literal
	p.next()
	if !p.expect(token.ASSIGN) {
		return nil
	}
	value := p.parseExpression()
	return &ast.Let{Token: tok, Name: name, Value: value}
}

func (p *Parser) parseReturn() ast.Node {
	tok := p.cur
	p.next() // consume 'return'
	if p.startsBlockEnd() {
		return &ast.Return{Token: tok}
	}
	val := p.parseExpression()
	return &ast.Return{Token: tok, Value: val}
}

// startsBlockEnd reports whether the current token closes the enclosing
// block ('end', 'elif', 'else', or EOF), in which case 'return' has no
// value. Line breaks are not seen here, so any other token after 'return',
// even on the next line, is parsed as its value.
func (p *Parser) startsBlockEnd() bool {
	switch p.cur.Type {
	case token.END, token.ELIF, token.ELSE, token.EOF:
		return true
	default:
		return false
	}
}

func (p *Parser) parseIf() ast.Node {
	tok := p.cur
	p.next() // consume 'if'
	cond := p.parseExpression()
	then := p.parseBlock()

	node := &ast.If{Token: tok, Cond: cond, Then: then}
	for p.curIs(token.ELIF) {
		p.next() // consume 'elif'
		elifCond := p.parseExpression()
		elifBody := p.parseBlock()
		node.Elifs = append(node.Elifs, ast.ElifClause{Cond: elifCond, Body: elifBody})
	}
	if p.curIs(token.ELSE) {
		p.next() // consume 'else'
		node.Else = p.parseBlock()
	}
	p.expectEnd("if", tok.Pos)
	return node
}

func (p *Parser) parseFor() ast.Node {
	tok := p.cur
	p.next() // consume 'for'
	if !p.curIs(token.IDENT) {
		p.addError("expected loop variable after 'for', got %s %q", p.cur.Type, p.cur.Literal)
		return nil
	}
	varName := p.cur.Literal
	p.next()
	if !p.expect(token.IN) {
		return nil
	}
	iterable := p.parseExpression()
	body := p.parseBlock()
	p.expectEnd("for", tok.Pos)
	return &ast.For{Token: tok, Var: varName, Iterable: iterable, Body: body}
}

func (p *Parser) parseWhile() ast.Node {
	tok := p.cur
	p.next() // consume 'while'
	cond := p.parseExpression()
	body := p.parseBlock()
	p.expectEnd("while", tok.Pos)
	return &ast.While{Token: tok, Cond: cond, Body: body}
}
