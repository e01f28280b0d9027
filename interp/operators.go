package interp

import (
	"math"

	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/token"
)

func (i *Interpreter) evalBinaryOp(n *ast.BinaryOp, env *Environment) (Value, error) {
	// `and`/`or` short-circuit and never evaluate the right operand unless
	// needed; `or` returns the first truthy operand unchanged (spec.md §4.3).
	if n.Op == token.AND {
		left, err := i.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		if !Truthy(left) {
			return left, nil
		}
		return i.Eval(n.Right, env)
	}
	if n.Op == token.OR {
		left, err := i.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		if Truthy(left) {
			return left, nil
		}
		return i.Eval(n.Right, env)
	}

	left, err := i.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinary(n.Op, left, right, n.Pos())
}

// applyBinary implements the arithmetic/comparison rules of spec.md §3
// Invariant 5 and §9: int+int stays int, any float operand promotes to
// float, string+string concatenates, equality across numeric types compares
// by value, and equality across unrelated kinds is false rather than an error.
func applyBinary(op token.Type, left, right Value, pos token.Position) (Value, error) {
	switch op {
	case token.EQ:
		return BoolValue(valuesEqual(left, right)), nil
	case token.NOT_EQ:
		return BoolValue(!valuesEqual(left, right)), nil
	}

	if op == token.PLUS {
		if ls, ok := left.(StringValue); ok {
			rs, ok := right.(StringValue)
			if !ok {
				return nil, typeError(pos, "cannot add %s to string", right.Type())
			}
			return ls + rs, nil
		}
		if _, ok := right.(StringValue); ok {
			return nil, typeError(pos, "cannot add string to %s", left.Type())
		}
	}

	switch op {
	case token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		return compareOrdered(op, left, right, pos)
	}

	lf, lok := asNumber(left)
	rf, rok := asNumber(right)
	if !lok || !rok {
		return nil, typeError(pos, "unsupported operand types for %s: %s and %s", op, left.Type(), right.Type())
	}
	_, lIsFloat := left.(FloatValue)
	_, rIsFloat := right.(FloatValue)
	useFloat := lIsFloat || rIsFloat

	switch op {
	case token.PLUS:
		return numericResult(lf+rf, useFloat), nil
	case token.MINUS:
		return numericResult(lf-rf, useFloat), nil
	case token.STAR:
		return numericResult(lf*rf, useFloat), nil
	case token.SLASH:
		if rf == 0 {
			return nil, newError(KindZeroDivision, pos, "division by zero")
		}
		return numericResult(lf/rf, useFloat), nil
	case token.PERCENT:
		if rf == 0 {
			return nil, newError(KindZeroDivision, pos, "modulo by zero")
		}
		if !useFloat {
			return IntValue(int64(lf) % int64(rf)), nil
		}
		return FloatValue(math.Mod(lf, rf)), nil
	case token.POW:
		result := math.Pow(lf, rf)
		return numericResult(result, useFloat || rf < 0), nil
	default:
		return nil, typeError(pos, "unsupported binary operator %s", op)
	}
}

func numericResult(f float64, useFloat bool) Value {
	if useFloat {
		return FloatValue(f)
	}
	return IntValue(int64(f))
}

func asNumber(v Value) (float64, bool) {
	switch x := v.(type) {
	case IntValue:
		return float64(x), true
	case FloatValue:
		return float64(x), true
	default:
		return 0, false
	}
}

func valuesEqual(left, right Value) bool {
	lf, lok := asNumber(left)
	rf, rok := asNumber(right)
	if lok && rok {
		return lf == rf
	}
	switch l := left.(type) {
	case StringValue:
		r, ok := right.(StringValue)
		return ok && l == r
	case BoolValue:
		r, ok := right.(BoolValue)
		return ok && l == r
	case NilValue:
		_, ok := right.(NilValue)
		return ok
	default:
		return left == right
	}
}

func compareOrdered(op token.Type, left, right Value, pos token.Position) (Value, error) {
	if ls, ok := left.(StringValue); ok {
		rs, ok := right.(StringValue)
		if !ok {
			return nil, typeError(pos, "cannot compare string and %s", right.Type())
		}
		return BoolValue(stringCompare(op, string(ls), string(rs))), nil
	}
	lf, lok := asNumber(left)
	rf, rok := asNumber(right)
	if !lok || !rok {
		return nil, typeError(pos, "unsupported operand types for %s: %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case token.LT:
		return BoolValue(lf < rf), nil
	case token.LT_EQ:
		return BoolValue(lf <= rf), nil
	case token.GT:
		return BoolValue(lf > rf), nil
	case token.GT_EQ:
		return BoolValue(lf >= rf), nil
	}
	return nil, typeError(pos, "unsupported comparison operator %s", op)
}

func stringCompare(op token.Type, l, r string) bool {
	switch op {
	case token.LT:
		return l < r
	case token.LT_EQ:
		return l <= r
	case token.GT:
		return l > r
	case token.GT_EQ:
		return l >= r
	}
	return false
}

func (i *Interpreter) evalUnaryOp(n *ast.UnaryOp, env *Environment) (Value, error) {
	v, err := i.Eval(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.NOT:
		return BoolValue(!Truthy(v)), nil
	case token.MINUS:
		switch x := v.(type) {
		case IntValue:
			return -x, nil
		case FloatValue:
			return -x, nil
		default:
			return nil, typeError(n.Pos(), "unary - not supported on %s", v.Type())
		}
	default:
		return nil, typeError(n.Pos(), "unsupported unary operator %s", n.Op)
	}
}

// evalCompoundAssign reads n.Name using the Var rule (scope chain, then
// builtins), computes the new value, and writes it back using the Let rule.
// Unlike Let, a compound assignment to an unbound name is an error
// (spec.md §4.3).
func (i *Interpreter) evalCompoundAssign(n *ast.CompoundAssign, env *Environment) (Value, error) {
	current, err := i.lookup(env, n.Name, n.Pos())
	if err != nil {
		return nil, err
	}
	rhs, err := i.Eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	result, err := applyBinary(n.Op, current, rhs, n.Pos())
	if err != nil {
		return nil, err
	}
	if !env.Set(n.Name, result) {
		env.Define(n.Name, result)
	}
	return result, nil
}

// evalIncDec reads the target's current value, computes current±1, and
// writes it back, returning the post-increment value for prefix forms and
// the pre-increment value for postfix forms (spec.md §8).
func (i *Interpreter) evalIncDec(n *ast.IncDec, env *Environment) (Value, error) {
	current, err := i.evalAssignTargetRead(n.Target, env)
	if err != nil {
		return nil, err
	}
	var next Value
	switch x := current.(type) {
	case IntValue:
		if n.Op == token.INC {
			next = x + 1
		} else {
			next = x - 1
		}
	case FloatValue:
		if n.Op == token.INC {
			next = x + 1
		} else {
			next = x - 1
		}
	default:
		return nil, typeError(n.Pos(), "%s not supported on %s", n.Op, current.Type())
	}
	if err := i.evalAssignTargetWrite(n.Target, next, env); err != nil {
		return nil, err
	}
	if n.Prefix {
		return next, nil
	}
	return current, nil
}

func (i *Interpreter) evalAssignTargetRead(target ast.Node, env *Environment) (Value, error) {
	switch t := target.(type) {
	case *ast.Var:
		return i.lookup(env, t.Name, t.Pos())
	case *ast.Attr:
		obj, err := i.Eval(t.Target, env)
		if err != nil {
			return nil, err
		}
		return i.getAttr(obj, t.Name, t.Pos())
	default:
		return nil, typeError(target.Pos(), "invalid assignment target")
	}
}

func (i *Interpreter) evalAssignTargetWrite(target ast.Node, v Value, env *Environment) error {
	switch t := target.(type) {
	case *ast.Var:
		if !env.Set(t.Name, v) {
			env.Define(t.Name, v)
		}
		return nil
	case *ast.Attr:
		obj, err := i.Eval(t.Target, env)
		if err != nil {
			return err
		}
		return i.setAttr(obj, t.Name, v, t.Pos())
	default:
		return typeError(target.Pos(), "invalid assignment target")
	}
}
