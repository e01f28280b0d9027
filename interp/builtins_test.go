package interp

import "testing"

func TestBuiltinLen(t *testing.T) {
	v, err := evalSource(t, `len("hello")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != IntValue(5) {
		t.Fatalf("expected 5, got %v", v)
	}
}

func TestBuiltinLenRejectsUnsized(t *testing.T) {
	_, err := evalSource(t, `len(1)`)
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != KindType {
		t.Fatalf("expected KindType, got %#v", err)
	}
}

func TestBuiltinRangeOneArg(t *testing.T) {
	v, err := evalSource(t, `range(3)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := v.(*ListValue)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("expected a 3-element list, got %v", v)
	}
	if list.Elements[0] != IntValue(0) || list.Elements[2] != IntValue(2) {
		t.Fatalf("expected [0, 1, 2], got %v", list)
	}
}

func TestBuiltinRangeThreeArgsWithStep(t *testing.T) {
	v, err := evalSource(t, `range(10, 0, -2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := v.(*ListValue)
	if len(list.Elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(list.Elements))
	}
	if list.Elements[0] != IntValue(10) || list.Elements[4] != IntValue(2) {
		t.Fatalf("expected [10, 8, 6, 4, 2], got %v", list)
	}
}

func TestBuiltinRangeZeroStepIsError(t *testing.T) {
	_, err := evalSource(t, `range(1, 5, 0)`)
	if err == nil {
		t.Fatal("expected an error for a zero step")
	}
}

func TestBuiltinStrIntFloat(t *testing.T) {
	v, err := evalSource(t, `str(42)`)
	if err != nil || v != StringValue("42") {
		t.Fatalf("str(42): got %v, %v", v, err)
	}
	v, err = evalSource(t, `int("7")`)
	if err != nil || v != IntValue(7) {
		t.Fatalf("int(\"7\"): got %v, %v", v, err)
	}
	v, err = evalSource(t, `float("2.5")`)
	if err != nil || v != FloatValue(2.5) {
		t.Fatalf("float(\"2.5\"): got %v, %v", v, err)
	}
}

func TestBuiltinType(t *testing.T) {
	v, err := evalSource(t, `type([1,2])`)
	if err != nil || v != StringValue("list") {
		t.Fatalf("type([1,2]): got %v, %v", v, err)
	}
}

func TestBuiltinSumMaxMinAbs(t *testing.T) {
	v, err := evalSource(t, `sum([1,2,3])`)
	if err != nil || v != IntValue(6) {
		t.Fatalf("sum: got %v, %v", v, err)
	}
	v, err = evalSource(t, `max([3,1,4,1,5])`)
	if err != nil || v != IntValue(5) {
		t.Fatalf("max: got %v, %v", v, err)
	}
	v, err = evalSource(t, `min(3, 1, 4)`)
	if err != nil || v != IntValue(1) {
		t.Fatalf("min: got %v, %v", v, err)
	}
	v, err = evalSource(t, `abs(-5)`)
	if err != nil || v != IntValue(5) {
		t.Fatalf("abs: got %v, %v", v, err)
	}
}

func TestBuiltinMapFilterReduce(t *testing.T) {
	v, err := evalSource(t, `map([1,2,3], fn(x) => x * 2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := v.(*ListValue)
	if list.String() != "[2, 4, 6]" {
		t.Fatalf("expected [2, 4, 6], got %v", list)
	}

	v, err = evalSource(t, `filter([1,2,3,4], fn(x) => x > 2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list = v.(*ListValue)
	if list.String() != "[3, 4]" {
		t.Fatalf("expected [3, 4], got %v", list)
	}

	v, err = evalSource(t, `reduce([1,2,3,4], fn(a,b) => a+b, 0)`)
	if err != nil || v != IntValue(10) {
		t.Fatalf("reduce: got %v, %v", v, err)
	}

	v, err = evalSource(t, `reduce([1,2,3,4], fn(a,b) => a+b)`)
	if err != nil || v != IntValue(10) {
		t.Fatalf("reduce without initial: got %v, %v", v, err)
	}
}

func TestBuiltinShadowedByUserDefinition(t *testing.T) {
	// Builtins are consulted only after the full scope chain misses, so a
	// user binding of the same name always shadows one (spec.md §6).
	v, err := evalSource(t, `
fn len(x)
  return 999
end
len([1,2,3])
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != IntValue(999) {
		t.Fatalf("expected the user-defined len to shadow the builtin, got %v", v)
	}
}
