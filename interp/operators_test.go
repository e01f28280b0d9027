package interp

import (
	"testing"

	"github.com/veureka-lang/veureka-go/token"
)

var pos = token.Position{Line: 1, Column: 1}

func TestApplyBinaryIntPromotion(t *testing.T) {
	v, err := applyBinary(token.PLUS, IntValue(1), IntValue(2), pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != IntValue(3) {
		t.Fatalf("expected int 3, got %v (%T)", v, v)
	}
}

func TestApplyBinaryFloatPromotion(t *testing.T) {
	v, err := applyBinary(token.PLUS, IntValue(1), FloatValue(2.5), pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != FloatValue(3.5) {
		t.Fatalf("expected float 3.5, got %v (%T)", v, v)
	}
}

func TestApplyBinaryStringConcat(t *testing.T) {
	v, err := applyBinary(token.PLUS, StringValue("a"), StringValue("b"), pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != StringValue("ab") {
		t.Fatalf("expected \"ab\", got %v", v)
	}
}

func TestApplyBinaryStringPlusNonStringIsTypeError(t *testing.T) {
	_, err := applyBinary(token.PLUS, StringValue("a"), IntValue(1), pos)
	if err == nil {
		t.Fatal("expected a TypeError")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != KindType {
		t.Fatalf("expected KindType, got %#v", err)
	}
}

func TestApplyBinaryDivisionByZero(t *testing.T) {
	_, err := applyBinary(token.SLASH, IntValue(1), IntValue(0), pos)
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != KindZeroDivision {
		t.Fatalf("expected KindZeroDivision, got %#v", err)
	}
}

func TestValuesEqualAcrossNumericKinds(t *testing.T) {
	v, _ := applyBinary(token.EQ, IntValue(2), FloatValue(2.0), pos)
	if v != BoolValue(true) {
		t.Fatalf("expected int 2 == float 2.0 to be true, got %v", v)
	}
}

func TestValuesEqualAcrossUnrelatedKindsIsFalseNotError(t *testing.T) {
	v, err := applyBinary(token.EQ, StringValue("2"), IntValue(2), pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != BoolValue(false) {
		t.Fatalf("expected string \"2\" == int 2 to be false, got %v", v)
	}
}

func TestApplyBinaryModulo(t *testing.T) {
	v, err := applyBinary(token.PERCENT, IntValue(7), IntValue(3), pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != IntValue(1) {
		t.Fatalf("expected 1, got %v", v)
	}
}

func TestApplyBinaryComparisonOnStrings(t *testing.T) {
	v, err := applyBinary(token.LT, StringValue("a"), StringValue("b"), pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != BoolValue(true) {
		t.Fatalf("expected \"a\" < \"b\" to be true, got %v", v)
	}
}

func TestApplyBinaryComparisonStringVsNonStringIsTypeError(t *testing.T) {
	_, err := applyBinary(token.LT, StringValue("a"), IntValue(1), pos)
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != KindType {
		t.Fatalf("expected KindType, got %#v", err)
	}
}
