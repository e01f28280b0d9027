package interp

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", IntValue(1))
	v, ok := env.Get("x")
	if !ok || v != IntValue(1) {
		t.Fatalf("expected x=1, got %v, %v", v, ok)
	}
}

func TestEnvironmentGetFallsThroughToOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", IntValue(1))
	inner := NewEnclosedEnvironment(outer)
	v, ok := inner.Get("x")
	if !ok || v != IntValue(1) {
		t.Fatalf("expected inner scope to see outer's x, got %v, %v", v, ok)
	}
}

func TestEnvironmentDefineShadowsInnerOnly(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", IntValue(1))
	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", IntValue(2))

	innerV, _ := inner.Get("x")
	outerV, _ := outer.Get("x")
	if innerV != IntValue(2) {
		t.Fatalf("expected inner x=2, got %v", innerV)
	}
	if outerV != IntValue(1) {
		t.Fatalf("expected outer x to remain 1, got %v", outerV)
	}
}

func TestEnvironmentSetMutatesNearestExistingBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", IntValue(1))
	inner := NewEnclosedEnvironment(outer)

	if !inner.Set("x", IntValue(99)) {
		t.Fatal("expected Set to find x in the outer scope")
	}
	outerV, _ := outer.Get("x")
	if outerV != IntValue(99) {
		t.Fatalf("expected outer x mutated to 99, got %v", outerV)
	}
	if _, ok := inner.vars["x"]; ok {
		t.Fatal("Set should not have created a new binding in the inner scope")
	}
}

func TestEnvironmentSetOnUnboundNameFails(t *testing.T) {
	env := NewEnvironment()
	if env.Set("missing", IntValue(1)) {
		t.Fatal("expected Set to report false for an unbound name")
	}
}

func TestEnvironmentHas(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", IntValue(1))
	inner := NewEnclosedEnvironment(outer)

	if !inner.Has("x") {
		t.Fatal("expected Has to see x through the outer scope")
	}
	if inner.Has("y") {
		t.Fatal("expected Has to report false for an unbound name")
	}
}

func TestEnvironmentClosureSeesLaterMutation(t *testing.T) {
	// Mirrors the counter-closure scenario (spec.md §3, Invariant 1): a
	// closure holds a live *Environment, so a mutation made after capture
	// is visible on the next lookup.
	defScope := NewEnvironment()
	defScope.Define("n", IntValue(0))

	captured := defScope
	captured.Set("n", IntValue(41))

	v, ok := defScope.Get("n")
	if !ok || v != IntValue(41) {
		t.Fatalf("expected live mutation to be visible, got %v, %v", v, ok)
	}
}
