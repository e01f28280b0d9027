package parser

import (
	"fmt"

	"github.com/veureka-lang/veureka-go/token"
)

// Error is a single syntactic error: an unexpected token or a missing
// closing delimiter, reported with the offending token's position.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func newError(pos token.Position, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: pos}
}
