package ast

import "github.com/veureka-lang/veureka-go/token"

// ElifClause is one `elif cond <body>` arm of an If.
type ElifClause struct {
	Cond Node
	Body []Node
}

// If evaluates Cond, then Elifs in order, executing the first truthy
// branch's body; if none are truthy, the Else body runs if present.
type If struct {
	Token token.Token // 'if'
	Cond  Node
	Then  []Node
	Elifs []ElifClause
	Else  []Node // nil if no else clause
}

func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) Pos() token.Position  { return i.Token.Pos }
func (i *If) String() string       { return "if " + i.Cond.String() + " ... end" }

// For iterates Iterable (a list, or a materialized range() result), binding
// each element to Var in the loop's innermost scope before running Body.
type For struct {
	Token    token.Token // 'for'
	Var      string
	Iterable Node
	Body     []Node
}

func (f *For) TokenLiteral() string { return f.Token.Literal }
func (f *For) Pos() token.Position  { return f.Token.Pos }
func (f *For) String() string       { return "for " + f.Var + " in " + f.Iterable.String() + " ... end" }

// While runs Body repeatedly while Cond evaluates truthy.
type While struct {
	Token token.Token // 'while'
	Cond  Node
	Body  []Node
}

func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) Pos() token.Position  { return w.Token.Pos }
func (w *While) String() string       { return "while " + w.Cond.String() + " ... end" }

// Return unwinds to the enclosing function call. Value is nil for a bare
// `return`, which yields nil.
type Return struct {
	Token token.Token // 'return'
	Value Node        // nil if bare
}

func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) Pos() token.Position  { return r.Token.Pos }
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// Break unwinds to the enclosing loop, skipping the remainder of its body
// and terminating it.
type Break struct {
	Token token.Token
}

func (b *Break) TokenLiteral() string { return b.Token.Literal }
func (b *Break) Pos() token.Position  { return b.Token.Pos }
func (b *Break) String() string       { return "break" }

// Continue unwinds to the enclosing loop, skipping to its next iteration.
type Continue struct {
	Token token.Token
}

func (c *Continue) TokenLiteral() string { return c.Token.Literal }
func (c *Continue) Pos() token.Position  { return c.Token.Pos }
func (c *Continue) String() string       { return "continue" }

// Include loads, compiles, and evaluates another source file in the current
// evaluator's current scope (spec.md §4.3 "include directive"). Splicing,
// not namespacing: the included program's top-level definitions land
// directly in the caller's scope.
type Include struct {
	Token token.Token // 'include'
	Path  string
}

func (inc *Include) TokenLiteral() string { return inc.Token.Literal }
func (inc *Include) Pos() token.Position  { return inc.Token.Pos }
func (inc *Include) String() string       { return "include " + inc.Path }
