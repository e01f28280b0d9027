package parser

import (
	"strconv"
	"strings"

	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/token"
)

// parseExpression is the entry point for the precedence chain: assignment
// is the lowest (and rightmost-binding) level, per spec.md §4.2.
func (p *Parser) parseExpression() ast.Node {
	return p.parseAssignment()
}

// compoundBase maps a compound-assignment token to the binary operator its
// desugared form uses.
var compoundBase = map[token.Type]token.Type{
	token.PLUS_EQ:  token.PLUS,
	token.MINUS_EQ: token.MINUS,
	token.STAR_EQ:  token.STAR,
	token.SLASH_EQ: token.SLASH,
}

// parseAssignment parses the `or` level first, then — right-associatively —
// checks whether the result is an assignable target followed by `=` or a
// compound-assignment operator (spec.md §4.2).
func (p *Parser) parseAssignment() ast.Node {
	left := p.parseOr()

	op := p.cur
	isAssign := op.Type == token.ASSIGN
	base, isCompound := compoundBase[op.Type]
	if !isAssign && !isCompound {
		return left
	}
	p.next() // consume the assignment operator
	right := p.parseAssignment()

	switch target := left.(type) {
	case *ast.Var:
		if isAssign {
			return &ast.Let{Token: op, Name: target.Name, Value: right}
		}
		return &ast.CompoundAssign{Token: op, Name: target.Name, Op: base, Value: right}
	case *ast.Attr:
		if isAssign {
			return &ast.AttrAssign{Token: op, Target: target.Target, Name: target.Name, Value: right}
		}
		desugared := &ast.BinaryOp{Token: op, Op: base, Left: target, Right: right}
		return &ast.AttrAssign{Token: op, Target: target.Target, Name: target.Name, Value: desugared}
	default:
		p.errors = append(p.errors, newError(op.Pos, "invalid assignment target"))
		return left
	}
}

func (p *Parser) parseOr() ast.Node {
	left := p.parseAnd()
	for p.curIs(token.OR) {
		tok := p.cur
		p.next()
		right := p.parseAnd()
		left = &ast.BinaryOp{Token: tok, Op: token.OR, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Node {
	left := p.parseComparison()
	for p.curIs(token.AND) {
		tok := p.cur
		p.next()
		right := p.parseComparison()
		left = &ast.BinaryOp{Token: tok, Op: token.AND, Left: left, Right: right}
	}
	return left
}

var comparisonOps = map[token.Type]bool{
	token.EQ: true, token.NOT_EQ: true,
	token.LT: true, token.LT_EQ: true,
	token.GT: true, token.GT_EQ: true,
}

func (p *Parser) parseComparison() ast.Node {
	left := p.parseAdditive()
	for comparisonOps[p.cur.Type] {
		tok := p.cur
		p.next()
		right := p.parseAdditive()
		left = &ast.BinaryOp{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Node {
	left := p.parseMultiplicative()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		tok := p.cur
		p.next()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Node {
	left := p.parseExponent()
	for p.curIs(token.STAR) || p.curIs(token.SLASH) || p.curIs(token.PERCENT) {
		tok := p.cur
		p.next()
		right := p.parseExponent()
		left = &ast.BinaryOp{Token: tok, Op: tok.Type, Left: left, Right: right}
	}
	return left
}

// parseExponent is right-associative: `2 ** 3 ** 2` parses as `2 ** (3 ** 2)`.
func (p *Parser) parseExponent() ast.Node {
	left := p.parseUnary()
	if p.curIs(token.POW) {
		tok := p.cur
		p.next()
		right := p.parseExponent()
		return &ast.BinaryOp{Token: tok, Op: token.POW, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Node {
	switch p.cur.Type {
	case token.MINUS, token.NOT:
		tok := p.cur
		p.next()
		operand := p.parseUnary()
		return &ast.UnaryOp{Token: tok, Op: tok.Type, Operand: operand}
	case token.INC, token.DEC:
		tok := p.cur
		p.next()
		target := p.parseUnary()
		if !isAssignable(target) {
			p.errors = append(p.errors, newError(tok.Pos, "invalid %s target", tok.Type))
		}
		return &ast.IncDec{Token: tok, Target: target, Op: tok.Type, Prefix: true}
	default:
		return p.parsePostfix()
	}
}

func isAssignable(n ast.Node) bool {
	switch n.(type) {
	case *ast.Var, *ast.Attr:
		return true
	default:
		return false
	}
}

func (p *Parser) parsePostfix() ast.Node {
	expr := p.parsePrimary()
	for {
		switch p.cur.Type {
		case token.LPAREN:
			tok := p.cur
			args := p.parseArgs()
			expr = &ast.Call{Token: tok, Func: expr, Args: args}
		case token.LBRACKET:
			tok := p.cur
			p.next()
			key := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.Index{Token: tok, Target: expr, Key: key}
		case token.DOT:
			tok := p.cur
			p.next()
			if !p.curIs(token.IDENT) {
				p.addError("expected attribute name after '.', got %s %q", p.cur.Type, p.cur.Literal)
				return expr
			}
			name := p.cur.Literal
			p.next()
			expr = &ast.Attr{Token: tok, Target: expr, Name: name}
		case token.INC, token.DEC:
			if !isAssignable(expr) {
				return expr
			}
			tok := p.cur
			p.next()
			expr = &ast.IncDec{Token: tok, Target: expr, Op: tok.Type, Prefix: false}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Node {
	switch p.cur.Type {
	case token.NUMBER:
		return p.parseNumber()
	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case token.TRUE:
		tok := p.cur
		p.next()
		return &ast.Literal{Token: tok, Value: true}
	case token.FALSE:
		tok := p.cur
		p.next()
		return &ast.Literal{Token: tok, Value: false}
	case token.NIL:
		tok := p.cur
		p.next()
		return &ast.Literal{Token: tok, Value: nil}
	case token.SELF:
		tok := p.cur
		p.next()
		return &ast.Var{Token: tok, Name: "self"}
	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.Var{Token: tok, Name: tok.Literal}
	case token.LPAREN:
		p.next()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	case token.LBRACKET:
		return p.parseListLit()
	case token.LBRACE:
		return p.parseMapLit()
	case token.FN:
		return p.parseFnDef()
	case token.NEW:
		return p.parseNewInstance()
	default:
		tok := p.cur
		p.addError("unexpected token %s %q", tok.Type, tok.Literal)
		p.next()
		return &ast.Literal{Token: tok, Value: nil}
	}
}

func (p *Parser) parseNumber() ast.Node {
	tok := p.cur
	p.next()
	if strings.Contains(tok.Literal, ".") {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errors = append(p.errors, newError(tok.Pos, "invalid float literal %q", tok.Literal))
		}
		return &ast.Literal{Token: tok, Value: f}
	}
	n, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, newError(tok.Pos, "invalid integer literal %q", tok.Literal))
	}
	return &ast.Literal{Token: tok, Value: n}
}

func (p *Parser) parseListLit() ast.Node {
	tok := p.cur
	p.next() // consume '['
	var elems []ast.Node
	if !p.curIs(token.RBRACKET) {
		for {
			elems = append(elems, p.parseExpression())
			if p.curIs(token.COMMA) {
				p.next()
				continue
			}
			break
		}
	}
	p.expect(token.RBRACKET)
	return &ast.ListLit{Token: tok, Elements: elems}
}

// parseMapLit parses `{k: v, ...}`. Keys are bare identifiers or string
// literals; both become string keys (spec.md §4.2).
func (p *Parser) parseMapLit() ast.Node {
	tok := p.cur
	p.next() // consume '{'
	var entries []ast.MapEntry
	if !p.curIs(token.RBRACE) {
		for {
			var key string
			switch p.cur.Type {
			case token.IDENT, token.STRING:
				key = p.cur.Literal
				p.next()
			default:
				p.addError("expected map key (identifier or string), got %s %q", p.cur.Type, p.cur.Literal)
			}
			p.expect(token.COLON)
			value := p.parseExpression()
			entries = append(entries, ast.MapEntry{Key: key, Value: value})
			if p.curIs(token.COMMA) {
				p.next()
				continue
			}
			break
		}
	}
	p.expect(token.RBRACE)
	return &ast.MapLit{Token: tok, Entries: entries}
}
