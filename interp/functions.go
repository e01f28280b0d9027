package interp

import (
	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/token"
)

// evalCall evaluates the callee and arguments left-to-right, then dispatches
// to a builtin or a user function (spec.md §4.3 "Function calls").
func (i *Interpreter) evalCall(n *ast.Call, env *Environment) (Value, error) {
	fnVal, err := i.Eval(n.Func, env)
	if err != nil {
		return nil, err
	}
	args := make([]Value, len(n.Args))
	for idx, a := range n.Args {
		v, err := i.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return i.call(fnVal, args, n.Pos())
}

// call dispatches a callable Value. Arity is not enforced: extra arguments
// are silently discarded, and missing ones leave their parameter unbound —
// referencing an unbound parameter later surfaces as a NameError
// (spec.md §4.3, a documented laxity carried over unchanged).
func (i *Interpreter) call(fnVal Value, args []Value, pos token.Position) (Value, error) {
	switch fn := fnVal.(type) {
	case *BuiltinValue:
		return fn.Fn(i, args)
	case *FunctionValue:
		frame := NewEnclosedEnvironment(fn.Closure)
		for idx, p := range fn.Params {
			if idx < len(args) {
				frame.Define(p.Name, args[idx])
			}
		}
		_, err := i.evalBlock(fn.Body, frame)
		if err != nil {
			if ret, ok := err.(*returnSignal); ok {
				return ret.Value, nil
			}
			return nil, err
		}
		return Nil, nil
	default:
		return nil, typeError(pos, "%s is not callable", fnVal.Type())
	}
}
