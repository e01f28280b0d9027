package interp

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var stdin = bufio.NewReader(os.Stdin)

// installBuiltins populates the fixed, immutable global function table
// (spec.md §6 "Builtins"). Builtins are consulted only after the full scope
// chain misses, so a user binding of the same name always shadows one.
func installBuiltins(table map[string]Value) {
	register := func(name string, fn BuiltinFunc) {
		table[name] = &BuiltinValue{Name: name, Fn: fn}
	}

	register("print", builtinPrint)
	register("len", builtinLen)
	register("range", builtinRange)
	register("str", builtinStr)
	register("int", builtinInt)
	register("float", builtinFloat)
	register("type", builtinType)
	register("input", builtinInput)
	register("sum", builtinSum)
	register("max", builtinMax)
	register("min", builtinMin)
	register("abs", builtinAbs)
	register("map", builtinMap)
	register("filter", builtinFilter)
	register("reduce", builtinReduce)
}

func builtinPrint(i *Interpreter, args []Value) (Value, error) {
	parts := make([]string, len(args))
	for idx, a := range args {
		parts[idx] = a.String()
	}
	fmt.Println(strings.Join(parts, " "))
	return Nil, nil
}

func builtinLen(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, typeError(zeroPos, "len() takes exactly one argument")
	}
	switch v := args[0].(type) {
	case StringValue:
		return IntValue(len([]rune(string(v)))), nil
	case *ListValue:
		return IntValue(len(v.Elements)), nil
	case *MapValue:
		return IntValue(len(v.Entries)), nil
	default:
		return nil, typeError(zeroPos, "object of type %s has no len()", args[0].Type())
	}
}

// builtinRange materializes a list rather than a lazy iterator: spec.md §6
// treats range() as a plain value-producing builtin, and Veureka's `for`
// only ever iterates *ListValue.
func builtinRange(i *Interpreter, args []Value) (Value, error) {
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, ok := args[0].(IntValue)
		if !ok {
			return nil, typeError(zeroPos, "range() argument must be int")
		}
		stop = int64(n)
	case 2:
		a, aok := args[0].(IntValue)
		b, bok := args[1].(IntValue)
		if !aok || !bok {
			return nil, typeError(zeroPos, "range() arguments must be int")
		}
		start, stop = int64(a), int64(b)
	case 3:
		a, aok := args[0].(IntValue)
		b, bok := args[1].(IntValue)
		c, cok := args[2].(IntValue)
		if !aok || !bok || !cok {
			return nil, typeError(zeroPos, "range() arguments must be int")
		}
		start, stop, step = int64(a), int64(b), int64(c)
		if step == 0 {
			return nil, typeError(zeroPos, "range() step must not be zero")
		}
	default:
		return nil, typeError(zeroPos, "range() takes 1 to 3 arguments")
	}

	var elems []Value
	if step > 0 {
		for v := start; v < stop; v += step {
			elems = append(elems, IntValue(v))
		}
	} else {
		for v := start; v > stop; v += step {
			elems = append(elems, IntValue(v))
		}
	}
	return NewList(elems), nil
}

func builtinStr(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, typeError(zeroPos, "str() takes exactly one argument")
	}
	return StringValue(args[0].String()), nil
}

func builtinInt(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, typeError(zeroPos, "int() takes exactly one argument")
	}
	switch v := args[0].(type) {
	case IntValue:
		return v, nil
	case FloatValue:
		return IntValue(int64(v)), nil
	case StringValue:
		n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		if err != nil {
			return nil, typeError(zeroPos, "invalid literal for int(): %q", string(v))
		}
		return IntValue(n), nil
	case BoolValue:
		if v {
			return IntValue(1), nil
		}
		return IntValue(0), nil
	default:
		return nil, typeError(zeroPos, "cannot convert %s to int", args[0].Type())
	}
}

func builtinFloat(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, typeError(zeroPos, "float() takes exactly one argument")
	}
	switch v := args[0].(type) {
	case FloatValue:
		return v, nil
	case IntValue:
		return FloatValue(v), nil
	case StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return nil, typeError(zeroPos, "invalid literal for float(): %q", string(v))
		}
		return FloatValue(f), nil
	default:
		return nil, typeError(zeroPos, "cannot convert %s to float", args[0].Type())
	}
}

func builtinType(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, typeError(zeroPos, "type() takes exactly one argument")
	}
	return StringValue(args[0].Type()), nil
}

func builtinInput(i *Interpreter, args []Value) (Value, error) {
	if len(args) == 1 {
		fmt.Print(args[0].String())
	}
	line, _ := stdin.ReadString('\n')
	return StringValue(strings.TrimRight(line, "\r\n")), nil
}

func builtinSum(i *Interpreter, args []Value) (Value, error) {
	list, err := requireList(args, "sum")
	if err != nil {
		return nil, err
	}
	var total Value = IntValue(0)
	for _, e := range list.Elements {
		total, err = applyBinary(addOp, total, e, zeroPos)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func builtinMax(i *Interpreter, args []Value) (Value, error) {
	return extremum(args, gtOp)
}

func builtinMin(i *Interpreter, args []Value) (Value, error) {
	return extremum(args, ltOp)
}

func builtinAbs(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, typeError(zeroPos, "abs() takes exactly one argument")
	}
	switch v := args[0].(type) {
	case IntValue:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case FloatValue:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	default:
		return nil, typeError(zeroPos, "abs() requires a number, got %s", args[0].Type())
	}
}

// builtinMap, builtinFilter, and builtinReduce are the higher-order builtins
// that call back into user functions via i.call (spec.md §6).
func builtinMap(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, typeError(zeroPos, "map() takes exactly two arguments")
	}
	list, err := requireList(args[:1], "map")
	if err != nil {
		return nil, err
	}
	result := make([]Value, len(list.Elements))
	for idx, e := range list.Elements {
		v, err := i.call(args[1], []Value{e}, zeroPos)
		if err != nil {
			return nil, err
		}
		result[idx] = v
	}
	return NewList(result), nil
}

func builtinFilter(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, typeError(zeroPos, "filter() takes exactly two arguments")
	}
	list, err := requireList(args[:1], "filter")
	if err != nil {
		return nil, err
	}
	var result []Value
	for _, e := range list.Elements {
		v, err := i.call(args[1], []Value{e}, zeroPos)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			result = append(result, e)
		}
	}
	return NewList(result), nil
}

func builtinReduce(i *Interpreter, args []Value) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, typeError(zeroPos, "reduce() takes two or three arguments")
	}
	list, err := requireList(args[:1], "reduce")
	if err != nil {
		return nil, err
	}
	elements := list.Elements
	var acc Value
	if len(args) == 3 {
		acc = args[2]
	} else {
		if len(elements) == 0 {
			return nil, typeError(zeroPos, "reduce() of empty list with no initial value")
		}
		acc = elements[0]
		elements = elements[1:]
	}
	for _, e := range elements {
		acc, err = i.call(args[1], []Value{acc, e}, zeroPos)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func requireList(args []Value, fn string) (*ListValue, error) {
	if len(args) == 0 {
		return nil, typeError(zeroPos, "%s() requires a list argument", fn)
	}
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, typeError(zeroPos, "%s() requires a list, got %s", fn, args[0].Type())
	}
	return list, nil
}

func extremum(args []Value, op func(a, b Value) (bool, error)) (Value, error) {
	var elems []Value
	if len(args) == 1 {
		list, ok := args[0].(*ListValue)
		if !ok {
			return nil, typeError(zeroPos, "expected a list or multiple arguments")
		}
		elems = list.Elements
	} else {
		elems = args
	}
	if len(elems) == 0 {
		return nil, typeError(zeroPos, "argument is an empty sequence")
	}
	best := elems[0]
	for _, e := range elems[1:] {
		better, err := op(e, best)
		if err != nil {
			return nil, err
		}
		if better {
			best = e
		}
	}
	return best, nil
}
