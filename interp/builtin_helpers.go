package interp

import "github.com/veureka-lang/veureka-go/token"

// zeroPos is used for errors raised inside a builtin, which has no source
// position of its own to attach (the call site's position is already lost
// by the time args reach BuiltinFunc).
var zeroPos = token.Position{}

const addOp = token.PLUS

func gtOp(a, b Value) (bool, error) {
	v, err := applyBinary(token.GT, a, b, zeroPos)
	if err != nil {
		return false, err
	}
	return bool(v.(BoolValue)), nil
}

func ltOp(a, b Value) (bool, error) {
	v, err := applyBinary(token.LT, a, b, zeroPos)
	if err != nil {
		return false, err
	}
	return bool(v.(BoolValue)), nil
}
