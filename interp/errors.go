package interp

import (
	"fmt"

	"github.com/veureka-lang/veureka-go/token"
)

// Kind enumerates the error categories of spec.md §7. These name behavior,
// not Go types: every RuntimeError carries one as a tag for callers (e.g.
// the REPL) that want to react differently to, say, a LoadError than a
// ZeroDivisionError.
type Kind string

const (
	KindName          Kind = "NameError"
	KindType          Kind = "TypeError"
	KindAttribute     Kind = "AttributeError"
	KindIndex         Kind = "IndexError"
	KindKey           Kind = "KeyError"
	KindLoad          Kind = "LoadError"
	KindZeroDivision  Kind = "ZeroDivisionError"
)

// RuntimeError is any error raised during evaluation. It terminates the
// current top-level statement and propagates to the interpreter's caller
// (spec.md §5 "Failure scope") — there is no user-level try/catch.
type RuntimeError struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Pos)
}

func newError(kind Kind, pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func nameError(pos token.Position, name string) *RuntimeError {
	return newError(KindName, pos, "name %q is not defined", name)
}

func typeError(pos token.Position, format string, args ...any) *RuntimeError {
	return newError(KindType, pos, format, args...)
}

func attributeError(pos token.Position, class, name string) *RuntimeError {
	return newError(KindAttribute, pos, "%s has no attribute %q", class, name)
}
