// Package ast defines the Veureka abstract syntax tree. Statement-like and
// expression-like nodes share a single Node interface: the grammar does not
// separate them by type, so anything that can appear inside a block can
// also appear at the top level of a program.
package ast

import (
	"bytes"
	"strings"

	"github.com/veureka-lang/veureka-go/token"
)

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	Pos() token.Position
	String() string
}

// Program is the root node: a flat list of top-level nodes.
type Program struct {
	Statements []Node
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{}
}
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Var references a name: a variable, function, or class looked up through
// the scope chain at evaluation time.
type Var struct {
	Token token.Token
	Name  string
}

func (v *Var) TokenLiteral() string     { return v.Token.Literal }
func (v *Var) Pos() token.Position      { return v.Token.Pos }
func (v *Var) String() string           { return v.Name }

// Literal wraps a constant value already computed at parse time: a number,
// string, bool, or nil. Value holds an int64, float64, string, bool, or nil.
type Literal struct {
	Token token.Token
	Value any
}

func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() token.Position  { return l.Token.Pos }
func (l *Literal) String() string       { return l.Token.Literal }

// ListLit is a `[e1, e2, ...]` list literal.
type ListLit struct {
	Token    token.Token // the '['
	Elements []Node
}

func (l *ListLit) TokenLiteral() string { return l.Token.Literal }
func (l *ListLit) Pos() token.Position  { return l.Token.Pos }
func (l *ListLit) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MapEntry is one `key: value` pair of a MapLit. Key is already resolved to
// a string at parse time (bare identifiers and string literals both become
// string keys).
type MapEntry struct {
	Key   string
	Value Node
}

// MapLit is a `{k: v, ...}` map literal.
type MapLit struct {
	Token   token.Token // the '{'
	Entries []MapEntry
}

func (m *MapLit) TokenLiteral() string { return m.Token.Literal }
func (m *MapLit) Pos() token.Position  { return m.Token.Pos }
func (m *MapLit) String() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// BinaryOp is a two-operand operator expression, including `and`/`or` which
// the evaluator short-circuits.
type BinaryOp struct {
	Token token.Token // the operator token
	Op    token.Type
	Left  Node
	Right Node
}

func (b *BinaryOp) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryOp) Pos() token.Position  { return b.Token.Pos }
func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Token.Literal + " " + b.Right.String() + ")"
}

// UnaryOp is a prefix `-` or `not` expression.
type UnaryOp struct {
	Token   token.Token
	Op      token.Type
	Operand Node
}

func (u *UnaryOp) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryOp) Pos() token.Position  { return u.Token.Pos }
func (u *UnaryOp) String() string {
	return "(" + u.Token.Literal + u.Operand.String() + ")"
}

// Call applies a function value to evaluated arguments. Func is typically a
// Var or Attr, but any expression producing a callable is valid.
type Call struct {
	Token token.Token // the '('
	Func  Node
	Args  []Node
}

func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Pos() token.Position  { return c.Token.Pos }
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Func.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Index is a `target[key]` subscript, valid on lists (integer key) and maps
// (string key).
type Index struct {
	Token  token.Token // the '['
	Target Node
	Key    Node
}

func (ix *Index) TokenLiteral() string { return ix.Token.Literal }
func (ix *Index) Pos() token.Position  { return ix.Token.Pos }
func (ix *Index) String() string {
	return ix.Target.String() + "[" + ix.Key.String() + "]"
}

// Attr is a `target.name` attribute read: a field on an instance, a method
// materialized as a bound function, or (rarely) an attribute access error.
type Attr struct {
	Token  token.Token // the '.'
	Target Node
	Name   string
}

func (a *Attr) TokenLiteral() string { return a.Token.Literal }
func (a *Attr) Pos() token.Position  { return a.Token.Pos }
func (a *Attr) String() string       { return a.Target.String() + "." + a.Name }
