package interp

import (
	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/token"
)

// Eval walks a single AST node and produces its value (or propagates a
// *RuntimeError or control signal). It is the one recursive entry point the
// rest of the evaluator calls back into.
func (i *Interpreter) Eval(node ast.Node, env *Environment) (Value, error) {
	switch n := node.(type) {

	case *ast.Program:
		return i.evalBlock(n.Statements, env)

	case *ast.Literal:
		return literalValue(n), nil

	case *ast.ListLit:
		elems := make([]Value, len(n.Elements))
		for idx, e := range n.Elements {
			v, err := i.Eval(e, env)
			if err != nil {
				return nil, err
			}
			elems[idx] = v
		}
		return NewList(elems), nil

	case *ast.MapLit:
		m := NewMap()
		for _, entry := range n.Entries {
			v, err := i.Eval(entry.Value, env)
			if err != nil {
				return nil, err
			}
			m.Entries[entry.Key] = v
		}
		return m, nil

	case *ast.Var:
		return i.lookup(env, n.Name, n.Pos())

	case *ast.Let:
		v, err := i.Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Set(n.Name, v) {
			env.Define(n.Name, v)
		}
		return v, nil

	case *ast.CompoundAssign:
		return i.evalCompoundAssign(n, env)

	case *ast.IncDec:
		return i.evalIncDec(n, env)

	case *ast.BinaryOp:
		return i.evalBinaryOp(n, env)

	case *ast.UnaryOp:
		return i.evalUnaryOp(n, env)

	case *ast.Call:
		return i.evalCall(n, env)

	case *ast.Index:
		return i.evalIndex(n, env)

	case *ast.Attr:
		target, err := i.Eval(n.Target, env)
		if err != nil {
			return nil, err
		}
		return i.getAttr(target, n.Name, n.Pos())

	case *ast.AttrAssign:
		return i.evalAttrAssign(n, env)

	case *ast.FnDef:
		fn := &FunctionValue{Name: n.Name, Params: n.Params, Body: n.Body, Closure: env}
		if n.Name != "" {
			env.Define(n.Name, fn)
		}
		return fn, nil

	case *ast.ClassDef:
		return i.evalClassDef(n, env)

	case *ast.NewInstance:
		return i.evalNewInstance(n, env)

	case *ast.If:
		return i.evalIf(n, env)

	case *ast.For:
		return i.evalFor(n, env)

	case *ast.While:
		return i.evalWhile(n, env)

	case *ast.Return:
		if n.Value == nil {
			return nil, &returnSignal{Value: Nil}
		}
		v, err := i.Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		return nil, &returnSignal{Value: v}

	case *ast.Break:
		return nil, breakSignal{}

	case *ast.Continue:
		return nil, continueSignal{}

	case *ast.Include:
		return i.evalInclude(n, env)

	default:
		return nil, typeError(node.Pos(), "cannot evaluate node of type %T", node)
	}
}

func literalValue(n *ast.Literal) Value {
	switch v := n.Value.(type) {
	case nil:
		return Nil
	case bool:
		return BoolValue(v)
	case int64:
		return IntValue(v)
	case float64:
		return FloatValue(v)
	case string:
		return StringValue(v)
	default:
		return Nil
	}
}

// evalBlock runs a list of nodes in order, propagating the first error or
// control signal, and returns the value of the last node (used by Run to
// report a program's last value and by top-level `include` splicing).
func (i *Interpreter) evalBlock(body []ast.Node, env *Environment) (Value, error) {
	var result Value = Nil
	for _, stmt := range body {
		v, err := i.Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (i *Interpreter) lookup(env *Environment, name string, pos token.Position) (Value, error) {
	if v, ok := env.Get(name); ok {
		return v, nil
	}
	if v, ok := i.builtins[name]; ok {
		return v, nil
	}
	return nil, nameError(pos, name)
}
