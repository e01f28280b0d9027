// Package interp implements the Veureka tree-walking evaluator: the scoped
// environment, the runtime value model, and the builtins that close over
// them.
package interp

import (
	"sort"
	"strconv"
	"strings"

	"github.com/veureka-lang/veureka-go/ast"
)

// Value is the interface every Veureka runtime value implements. Modeled on
// a tagged sum: one concrete type per case of spec.md §3's value model.
type Value interface {
	Type() string
	String() string
}

// NilValue is Veureka's single nil value.
type NilValue struct{}

func (NilValue) Type() string   { return "nil" }
func (NilValue) String() string { return "nil" }

// Nil is the shared nil value; every nil in the language is this instance.
var Nil = NilValue{}

// BoolValue is a boolean.
type BoolValue bool

func (b BoolValue) Type() string { return "bool" }
func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// IntValue is a signed integer.
type IntValue int64

func (i IntValue) Type() string   { return "int" }
func (i IntValue) String() string { return strconv.FormatInt(int64(i), 10) }

// FloatValue is a 64-bit float.
type FloatValue float64

func (f FloatValue) Type() string   { return "float" }
func (f FloatValue) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// StringValue is an immutable string.
type StringValue string

func (s StringValue) Type() string   { return "string" }
func (s StringValue) String() string { return string(s) }

// ListValue is an ordered, mutable, indexable sequence. It is always held
// behind a pointer so that two references to "the same list" observe each
// other's mutations, matching spec.md §3's reference-semantic container rule.
type ListValue struct {
	Elements []Value
}

func NewList(elements []Value) *ListValue { return &ListValue{Elements: elements} }

func (l *ListValue) Type() string { return "list" }
func (l *ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MapValue is a string-keyed map. Insertion order is not significant per
// spec.md §3; String() sorts keys so output is deterministic.
type MapValue struct {
	Entries map[string]Value
}

func NewMap() *MapValue { return &MapValue{Entries: make(map[string]Value)} }

func (m *MapValue) Type() string { return "map" }
func (m *MapValue) String() string {
	keys := make([]string, 0, len(m.Entries))
	for k := range m.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + m.Entries[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionValue is a user-defined function: parameter names, a body, and a
// closure reference to the scope active when the function was constructed.
// The closure is a live reference, not a snapshot (spec.md §3, Invariant 1):
// mutations to variables in the defining scope after construction are
// visible the next time the function runs.
type FunctionValue struct {
	Name    string
	Params  []ast.Param
	Body    []ast.Node
	Closure *Environment
}

func (f *FunctionValue) Type() string { return "function" }
func (f *FunctionValue) String() string {
	if f.Name == "" {
		return "<anonymous fn>"
	}
	return "<fn " + f.Name + ">"
}

// ClassValue is a user class: a name and its methods. There is no
// inheritance slot — Veureka classes do not extend one another.
type ClassValue struct {
	Name    string
	Methods map[string]*FunctionValue
}

func (c *ClassValue) Type() string   { return "class" }
func (c *ClassValue) String() string { return "<class " + c.Name + ">" }

// InstanceValue is a runtime instance of a ClassValue, with its own field
// storage. Fields start out empty; __init__, if present, populates them.
type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]Value
}

func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{Class: class, Fields: make(map[string]Value)}
}

func (o *InstanceValue) Type() string   { return "instance" }
func (o *InstanceValue) String() string { return "<" + o.Class.Name + " instance>" }

// BuiltinFunc is the Go signature of a built-in function. It receives the
// interpreter (so higher-order builtins like map/filter/reduce can call
// back into user functions) and the already-evaluated arguments.
type BuiltinFunc func(i *Interpreter, args []Value) (Value, error)

// BuiltinValue wraps a BuiltinFunc as a callable runtime value.
type BuiltinValue struct {
	Name string
	Fn   BuiltinFunc
}

func (b *BuiltinValue) Type() string   { return "builtin" }
func (b *BuiltinValue) String() string { return "<builtin " + b.Name + ">" }

// Truthy implements spec.md §4.3's truthiness rule: nil, false, numeric
// zero, and empty string/list are false; everything else (including empty
// maps and instances) is true.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return bool(x)
	case IntValue:
		return x != 0
	case FloatValue:
		return x != 0
	case StringValue:
		return x != ""
	case *ListValue:
		return len(x.Elements) != 0
	default:
		return true
	}
}
