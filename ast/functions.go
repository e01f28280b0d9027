package ast

import (
	"strings"

	"github.com/veureka-lang/veureka-go/token"
)

// Let is both a declaration and an assignment: it mutates the nearest
// existing binding of Name in the scope chain, or binds Name in the
// innermost scope if it is unbound anywhere in the chain (spec.md §4.3,
// Invariant 3).
type Let struct {
	Token token.Token // 'let', or the identifier token for a bare assignment
	Name  string
	Value Node
}

func (l *Let) TokenLiteral() string { return l.Token.Literal }
func (l *Let) Pos() token.Position  { return l.Token.Pos }
func (l *Let) String() string       { return l.Name + " = " + l.Value.String() }

// CompoundAssign desugars `name OP= value` to a read-modify-write against
// whichever scope already binds name.
type CompoundAssign struct {
	Token token.Token
	Name  string
	Op    token.Type // PLUS, MINUS, STAR, or SLASH
	Value Node
}

func (c *CompoundAssign) TokenLiteral() string { return c.Token.Literal }
func (c *CompoundAssign) Pos() token.Position  { return c.Token.Pos }
func (c *CompoundAssign) String() string {
	return c.Name + " " + c.Token.Literal + " " + c.Value.String()
}

// AttrAssign assigns to an instance field: `target.name = value`. Compound
// forms (`+=` etc.) are desugared by the parser to `target.name = target.name OP value`.
type AttrAssign struct {
	Token  token.Token
	Target Node
	Name   string
	Value  Node
}

func (a *AttrAssign) TokenLiteral() string { return a.Token.Literal }
func (a *AttrAssign) Pos() token.Position  { return a.Token.Pos }
func (a *AttrAssign) String() string {
	return a.Target.String() + "." + a.Name + " = " + a.Value.String()
}

// IncDec is a `++`/`--` increment or decrement of a Var or Attr target.
// Prefix forms evaluate to the new value; postfix forms evaluate to the old.
type IncDec struct {
	Token  token.Token
	Target Node // *Var or *Attr
	Op     token.Type // INC or DEC
	Prefix bool
}

func (i *IncDec) TokenLiteral() string { return i.Token.Literal }
func (i *IncDec) Pos() token.Position  { return i.Token.Pos }
func (i *IncDec) String() string {
	if i.Prefix {
		return i.Token.Literal + i.Target.String()
	}
	return i.Target.String() + i.Token.Literal
}

// Param is a single declared function parameter: a bare name, no type
// annotation (Veureka is dynamically typed).
type Param struct {
	Name string
}

// FnDef is a function definition. Name is empty for anonymous functions
// (lambdas), which are legal wherever a primary expression is expected.
type FnDef struct {
	Token  token.Token // 'fn'
	Name   string
	Params []Param
	Body   []Node
}

func (f *FnDef) TokenLiteral() string { return f.Token.Literal }
func (f *FnDef) Pos() token.Position  { return f.Token.Pos }
func (f *FnDef) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	head := "fn " + f.Name + "(" + strings.Join(names, ", ") + ")"
	if f.Name == "" {
		head = "fn(" + strings.Join(names, ", ") + ")"
	}
	return head + " ... end"
}

// ClassDef installs a class value binding Name to the given methods. There
// is no inheritance slot: Veureka classes do not extend one another.
type ClassDef struct {
	Token   token.Token // 'class'
	Name    string
	Methods []*FnDef
}

func (c *ClassDef) TokenLiteral() string { return c.Token.Literal }
func (c *ClassDef) Pos() token.Position  { return c.Token.Pos }
func (c *ClassDef) String() string       { return "class " + c.Name + " ... end" }

// NewInstance is `new ClassName(args)`, a distinct primary rather than a
// unary operator or ordinary call.
type NewInstance struct {
	Token     token.Token // 'new'
	ClassName string
	Args      []Node
}

func (n *NewInstance) TokenLiteral() string { return n.Token.Literal }
func (n *NewInstance) Pos() token.Position  { return n.Token.Pos }
func (n *NewInstance) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return "new " + n.ClassName + "(" + strings.Join(parts, ", ") + ")"
}
