package interp

import (
	"github.com/veureka-lang/veureka-go/ast"
)

func (i *Interpreter) evalIf(n *ast.If, env *Environment) (Value, error) {
	cond, err := i.Eval(n.Cond, env)
	if err != nil {
		return nil, err
	}
	if Truthy(cond) {
		return i.evalBlock(n.Then, NewEnclosedEnvironment(env))
	}
	for _, elif := range n.Elifs {
		cond, err := i.Eval(elif.Cond, env)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return i.evalBlock(elif.Body, NewEnclosedEnvironment(env))
		}
	}
	if n.Else != nil {
		return i.evalBlock(n.Else, NewEnclosedEnvironment(env))
	}
	return Nil, nil
}

// evalFor iterates a list value, binding n.Var to each element in turn in a
// fresh child scope per iteration. break/continue signals are caught here;
// anything else propagates (spec.md §4.3 "for loops").
func (i *Interpreter) evalFor(n *ast.For, env *Environment) (Value, error) {
	iterable, err := i.Eval(n.Iterable, env)
	if err != nil {
		return nil, err
	}
	list, ok := iterable.(*ListValue)
	if !ok {
		return nil, typeError(n.Pos(), "cannot iterate over %s", iterable.Type())
	}
	for _, elem := range list.Elements {
		loopEnv := NewEnclosedEnvironment(env)
		loopEnv.Define(n.Var, elem)
		_, err := i.evalBlock(n.Body, loopEnv)
		if err != nil {
			if _, ok := err.(breakSignal); ok {
				break
			}
			if _, ok := err.(continueSignal); ok {
				continue
			}
			return nil, err
		}
	}
	return Nil, nil
}

func (i *Interpreter) evalWhile(n *ast.While, env *Environment) (Value, error) {
	for {
		cond, err := i.Eval(n.Cond, env)
		if err != nil {
			return nil, err
		}
		if !Truthy(cond) {
			break
		}
		loopEnv := NewEnclosedEnvironment(env)
		_, err = i.evalBlock(n.Body, loopEnv)
		if err != nil {
			if _, ok := err.(breakSignal); ok {
				break
			}
			if _, ok := err.(continueSignal); ok {
				continue
			}
			return nil, err
		}
	}
	return Nil, nil
}

// evalIndex implements list[i] (negative indices not supported, out-of-range
// is an IndexError) and map[key] (missing key is a KeyError), per spec.md §3
// Invariant and §7 error taxonomy.
func (i *Interpreter) evalIndex(n *ast.Index, env *Environment) (Value, error) {
	target, err := i.Eval(n.Target, env)
	if err != nil {
		return nil, err
	}
	idx, err := i.Eval(n.Key, env)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case *ListValue:
		iv, ok := idx.(IntValue)
		if !ok {
			return nil, typeError(n.Pos(), "list index must be int, got %s", idx.Type())
		}
		pos := int64(iv)
		if pos < 0 || pos >= int64(len(t.Elements)) {
			return nil, newError(KindIndex, n.Pos(), "list index out of range: %d", pos)
		}
		return t.Elements[pos], nil
	case *MapValue:
		key, ok := idx.(StringValue)
		if !ok {
			return nil, typeError(n.Pos(), "map key must be string, got %s", idx.Type())
		}
		v, ok := t.Entries[string(key)]
		if !ok {
			return nil, newError(KindKey, n.Pos(), "key not found: %q", string(key))
		}
		return v, nil
	default:
		return nil, typeError(n.Pos(), "%s is not indexable", target.Type())
	}
}
