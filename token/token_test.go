package token

import "testing"

func TestIsIdentifierName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a", true},
		{"_", true},
		{"$x1", true},
		{"class", true},
		{"ünïcode", true},
		{"", false},
		{"1a", false},
		{"a-b", false},
		{"a b", false},
	}
	for _, tt := range tests {
		if got := IsIdentifierName(tt.name); got != tt.want {
			t.Errorf("IsIdentifierName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsReservedWord(t *testing.T) {
	for _, name := range []string{"class", "this", "let", "yield", "await", "arguments", "eval", "undefined"} {
		if !IsReservedWord(name) {
			t.Errorf("%q should be reserved", name)
		}
	}
	for _, name := range []string{"_", "x", "constructor", "of"} {
		if IsReservedWord(name) {
			t.Errorf("%q should not be reserved", name)
		}
	}
}

func TestPrecedence(t *testing.T) {
	if In.Precedence(false) != 0 {
		t.Error("in must not be an operator when disallowed")
	}
	if In.Precedence(true) != Less.Precedence(true) {
		t.Error("in binds like a comparison")
	}
	order := []Token{Coalesce, LogicalOr, LogicalAnd, Or, ExclusiveOr, And, Equal, Less, ShiftLeft, Plus, Multiply, Exponent}
	for i := 1; i < len(order); i++ {
		if order[i-1].Precedence(true) >= order[i].Precedence(true) {
			t.Errorf("%s should bind looser than %s", order[i-1], order[i])
		}
	}
	if Assign.Precedence(true) != 0 {
		t.Error("= is not a binary operator")
	}
}
