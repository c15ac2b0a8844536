package ext

import (
	"testing"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

var b = ast.NewBuilder()

func global(name string) *ast.Expression {
	return b.Expression(b.Identifier(name, 0))
}

func local(name string) *ast.Expression {
	return b.Expression(b.Identifier(name, 2))
}

func TestMayHaveSideEffects(t *testing.T) {
	tests := []struct {
		name string
		expr *ast.Expression
		want bool
	}{
		{"literal", b.Number(1), false},
		{"this", b.This(), false},
		{"local binding", local("a"), false},
		{"known global", global("Math"), false},
		{"unknown global", global("foo"), true},
		{"binary of locals", b.Binary(token.Plus, local("a"), b.String("x")), false},
		{"assignment", b.Assign(token.Assign, local("a"), b.Number(1)), true},
		{"call", b.Call(local("f")), true},
		{"pure call", b.Call(b.Member(global("Math"), "max"), b.Number(1), b.Number(2)), false},
		{"delete", b.Unary(token.Delete, b.Member(local("o"), "x")), true},
		{"typeof global", b.Unary(token.Typeof, local("a")), false},
		{"member of local", b.Member(local("o"), "x"), true},
		{"function", b.Expression(b.Function(nil, b.Params(), ast.Statements{b.Return(b.Call(local("f")))}, 0)), false},
		{"array", b.Array(b.Number(1), local("a")), false},
		{"array with call", b.Array(b.Call(local("f"))), true},
		{"object with computed key", b.Object(ast.Property{Prop: &ast.PropertyKeyed{Key: b.Call(local("k")), Kind: ast.PropertyKindValue, Value: b.Number(1), Computed: true}}), true},
		{"sequence", b.Sequence(b.Number(1), local("a")), false},
		{"private access", b.PrivateMember(b.This(), "x"), true},
		{"class with static initializer", b.Expression(b.Class(nil, nil, ast.ClassElements{
			b.Field(b.String("x"), b.Call(local("f")), false, true),
		})), true},
		{"class with instance initializer", b.Expression(b.Class(nil, nil, ast.ClassElements{
			b.Field(b.String("x"), b.Call(local("f")), false, false),
		})), false},
		{"class with empty static block", b.Expression(b.Class(nil, nil, ast.ClassElements{
			b.StaticBlock(ast.Statements{{Stmt: &ast.EmptyStatement{}}}),
		})), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MayHaveSideEffects(tt.expr); got != tt.want {
				t.Errorf("MayHaveSideEffects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLiteral(t *testing.T) {
	tests := []struct {
		name string
		expr *ast.Expression
		want bool
	}{
		{"string", b.String("a"), true},
		{"number", b.Number(1), true},
		{"negative number", b.Unary(token.Minus, b.Number(1)), true},
		{"void 0", b.Void0(), true},
		{"null", b.Null(), true},
		{"identifier", local("a"), false},
		{"negated identifier", b.Unary(token.Minus, local("a")), false},
		{"call", b.Call(local("f")), false},
	}
	for _, tt := range tests {
		if got := IsLiteral(tt.expr); got != tt.want {
			t.Errorf("%s: IsLiteral() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPropName(t *testing.T) {
	if name, ok := PropName(b.String("x"), false); !ok || name != "x" {
		t.Errorf("string key: %q %v", name, ok)
	}
	if name, ok := PropName(b.Number(1.5), true); !ok || name != "1.5" {
		t.Errorf("number key: %q %v", name, ok)
	}
	if _, ok := PropName(local("k"), true); ok {
		t.Error("computed identifier key has no static name")
	}
	if !PropNameEq(local("constructor"), false, "constructor") {
		t.Error("identifier key should match its name")
	}
}
