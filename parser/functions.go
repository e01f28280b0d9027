package parser

import (
	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/token"
)

// parseFnDef parses both surface forms: `fn name(params) <body> end` and
// `fn name(params) => expr`, the latter desugaring to a single `return expr`
// body. Name is omitted for anonymous functions.
func (p *Parser) parseFnDef() *ast.FnDef {
	tok := p.cur
	p.next() // consume 'fn'

	name := ""
	if p.curIs(token.IDENT) {
		name = p.cur.Literal
		p.next()
	}

	params := p.parseParams()

	if p.curIs(token.ARROW) {
		arrow := p.cur
		p.next() // consume '=>'
		expr := p.parseExpression()
		body := []ast.Node{&ast.Return{Token: arrow, Value: expr}}
		return &ast.FnDef{Token: tok, Name: name, Params: params, Body: body}
	}

	body := p.parseBlock()
	p.expectEnd("fn "+name, tok.Pos)
	return &ast.FnDef{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseParams() []ast.Param {
	if !p.expect(token.LPAREN) {
		return nil
	}
	var params []ast.Param
	if p.curIs(token.RPAREN) {
		p.next()
		return params
	}
	for {
		if !p.curIs(token.IDENT) {
			p.addError("expected parameter name, got %s %q", p.cur.Type, p.cur.Literal)
			break
		}
		params = append(params, ast.Param{Name: p.cur.Literal})
		p.next()
		if p.curIs(token.COMMA) {
			p.next()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseArgs() []ast.Node {
	if !p.expect(token.LPAREN) {
		return nil
	}
	var args []ast.Node
	if p.curIs(token.RPAREN) {
		p.next()
		return args
	}
	for {
		args = append(args, p.parseExpression())
		if p.curIs(token.COMMA) {
			p.next()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return args
}

// parseClassDef parses `class Name <method-defs> end`. Anonymous methods
// (no name) are silently discarded, matching spec.md §4.2.
func (p *Parser) parseClassDef() ast.Node {
	tok := p.cur
	p.next() // consume 'class'
	if !p.curIs(token.IDENT) {
		p.addError("expected class name, got %s %q", p.cur.Type, p.cur.Literal)
		return nil
	}
	name := p.cur.Literal
	p.next()

	var methods []*ast.FnDef
	for !p.curIs(token.END) && !p.curIs(token.EOF) {
		if !p.curIs(token.FN) {
			p.addError("expected method definition inside class %s, got %s %q", name, p.cur.Type, p.cur.Literal)
			p.next()
			continue
		}
		m := p.parseFnDef()
		if m.Name != "" {
			methods = append(methods, m)
		}
	}
	p.expectEnd("class "+name, tok.Pos)
	return &ast.ClassDef{Token: tok, Name: name, Methods: methods}
}

// parseNewInstance parses `new ClassName(args)`: a distinct primary,
// parallel to a call but not desugared to one.
func (p *Parser) parseNewInstance() ast.Node {
	tok := p.cur
	p.next() // consume 'new'
	if !p.curIs(token.IDENT) {
		p.addError("expected class name after 'new', got %s %q", p.cur.Type, p.cur.Literal)
		return nil
	}
	className := p.cur.Literal
	p.next()
	args := p.parseArgs()
	return &ast.NewInstance{Token: tok, ClassName: className, Args: args}
}
