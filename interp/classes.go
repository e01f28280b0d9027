package interp

import (
	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/token"
)

func (i *Interpreter) evalClassDef(n *ast.ClassDef, env *Environment) (Value, error) {
	class := &ClassValue{Name: n.Name, Methods: make(map[string]*FunctionValue)}
	for _, m := range n.Methods {
		class.Methods[m.Name] = &FunctionValue{Name: m.Name, Params: m.Params, Body: m.Body, Closure: env}
	}
	env.Define(n.Name, class)
	return class, nil
}

// evalNewInstance resolves the class, builds an empty instance, and — if
// the class defines __init__ — calls it with self bound, before returning
// the instance (spec.md §4.3 "Classes and instances").
func (i *Interpreter) evalNewInstance(n *ast.NewInstance, env *Environment) (Value, error) {
	classVal, err := i.lookup(env, n.ClassName, n.Pos())
	if err != nil {
		return nil, err
	}
	class, ok := classVal.(*ClassValue)
	if !ok {
		return nil, typeError(n.Pos(), "%s is not a class", n.ClassName)
	}

	args := make([]Value, len(n.Args))
	for idx, a := range n.Args {
		v, err := i.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	instance := NewInstance(class)
	if init, ok := class.Methods["__init__"]; ok {
		bound := bindMethod(init, instance)
		if _, err := i.call(bound, args, n.Pos()); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// bindMethod materializes a bound method: a fresh FunctionValue whose
// closure is the method's original closure extended with self → instance.
// This is a transient value — it is never cached (spec.md §3 "Bound method").
func bindMethod(method *FunctionValue, instance *InstanceValue) *FunctionValue {
	boundEnv := NewEnclosedEnvironment(method.Closure)
	boundEnv.Define("self", instance)
	return &FunctionValue{Name: method.Name, Params: method.Params, Body: method.Body, Closure: boundEnv}
}

// getAttr reads target.name. Fields are checked before methods
// (spec.md §3, Invariant 4); a primitive value has no attributes at all.
func (i *Interpreter) getAttr(target Value, name string, pos token.Position) (Value, error) {
	instance, ok := target.(*InstanceValue)
	if !ok {
		return nil, typeError(pos, "%s has no attribute %q", target.Type(), name)
	}
	if v, ok := instance.Fields[name]; ok {
		return v, nil
	}
	if method, ok := instance.Class.Methods[name]; ok {
		return bindMethod(method, instance), nil
	}
	return nil, attributeError(pos, instance.Class.Name, name)
}

// setAttr writes target.name = v. Attribute writes always set instance
// fields; methods can never be reassigned through an instance, because this
// path never touches Class.Methods (spec.md §4.3).
func (i *Interpreter) setAttr(target Value, name string, v Value, pos token.Position) error {
	instance, ok := target.(*InstanceValue)
	if !ok {
		return typeError(pos, "cannot set attribute %q on %s", name, target.Type())
	}
	instance.Fields[name] = v
	return nil
}

func (i *Interpreter) evalAttrAssign(n *ast.AttrAssign, env *Environment) (Value, error) {
	target, err := i.Eval(n.Target, env)
	if err != nil {
		return nil, err
	}
	v, err := i.Eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	if err := i.setAttr(target, n.Name, v, n.Pos()); err != nil {
		return nil, err
	}
	return v, nil
}
