package interp

import "testing"

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", Nil, false},
		{"false", BoolValue(false), false},
		{"true", BoolValue(true), true},
		{"zero int", IntValue(0), false},
		{"nonzero int", IntValue(1), true},
		{"zero float", FloatValue(0), false},
		{"nonzero float", FloatValue(0.1), true},
		{"empty string", StringValue(""), false},
		{"nonempty string", StringValue("a"), true},
		{"empty list", NewList(nil), false},
		{"nonempty list", NewList([]Value{IntValue(1)}), true},
		{"empty map is truthy", NewMap(), true},
		{"instance is truthy", NewInstance(&ClassValue{Name: "C", Methods: map[string]*FunctionValue{}}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Fatalf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestValueStringFormatting(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int", IntValue(42), "42"},
		{"float", FloatValue(3.5), "3.5"},
		{"string", StringValue("hi"), "hi"},
		{"bool true", BoolValue(true), "true"},
		{"bool false", BoolValue(false), "false"},
		{"nil", Nil, "nil"},
		{"list", NewList([]Value{IntValue(1), IntValue(2)}), "[1, 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapValueStringIsKeySorted(t *testing.T) {
	m := NewMap()
	m.Entries["z"] = IntValue(1)
	m.Entries["a"] = IntValue(2)
	if got, want := m.String(), "{a: 2, z: 1}"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFunctionValueStringDistinguishesAnonymous(t *testing.T) {
	named := &FunctionValue{Name: "f"}
	anon := &FunctionValue{}
	if named.String() != "<fn f>" {
		t.Fatalf("named.String() = %q", named.String())
	}
	if anon.String() != "<anonymous fn>" {
		t.Fatalf("anon.String() = %q", anon.String())
	}
}
