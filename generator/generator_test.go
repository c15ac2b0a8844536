package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

var b = ast.NewBuilder()

func id(name string) *ast.Expression {
	return b.Expression(b.Identifier(name, 0))
}

func num(v float64) *ast.Expression {
	return b.Number(v)
}

func program(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{Body: stmts}
}

func exprStmt(e *ast.Expression) ast.Statement {
	return b.ExpressionStatement(e)
}

func generateASTNoIndent(program ast.Node) string {
	output := Generate(program)
	return strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", "")
}

func TestSequenceExpressionInNewExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    ast.Statement
		expected string
	}{
		{
			name:     "sequence as single argument to new",
			input:    exprStmt(b.New(id("F6"), b.Sequence(b.Assign(token.Assign, id("a"), num(1)), num(2)))),
			expected: "new F6((a = 1, 2));",
		},
		{
			name:     "sequence as second argument to new",
			input:    exprStmt(b.New(id("F6"), id("x"), b.Sequence(b.Assign(token.Assign, id("b"), num(2)), num(3)))),
			expected: "new F6(x, (b = 2, 3));",
		},
		{
			name: "sequence with function literal in new",
			input: exprStmt(b.New(id("F6"), id("h"), b.Sequence(
				b.Assign(token.Assign, id("r"), id("R")),
				b.Expression(b.Function(nil,
					b.Params(b.BindingIdentifier(b.Identifier("W", 0))),
					ast.Statements{b.Return(b.Update(token.Increment, id("r"), true))}, 0)),
			))),
			expected: "new F6(h, (r = R, function(W) {return r++;}));",
		},
		{
			name:     "sequence in regular function call",
			input:    exprStmt(b.Call(id("f"), b.Sequence(b.Assign(token.Assign, id("d"), num(4)), num(5)))),
			expected: "f((d = 4, 5));",
		},
		{
			name:     "sequence as expression statement",
			input:    exprStmt(b.Sequence(b.Assign(token.Assign, id("a"), num(1)), id("a"))),
			expected: "a = 1, a;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateASTNoIndent(program(tt.input))
			if got != tt.expected {
				t.Errorf("\nexpected: %s\ngot:      %s", tt.expected, got)
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		input    *ast.Expression
		expected string
	}{
		{
			name:     "lower precedence on the left",
			input:    b.Binary(token.Multiply, b.Binary(token.Plus, id("a"), id("b")), id("c")),
			expected: "(a + b) * c;",
		},
		{
			name:     "left associative",
			input:    b.Binary(token.Minus, b.Binary(token.Minus, id("a"), id("b")), id("c")),
			expected: "a - b - c;",
		},
		{
			name:     "right operand of same precedence",
			input:    b.Binary(token.Minus, id("a"), b.Binary(token.Minus, id("b"), id("c"))),
			expected: "a - (b - c);",
		},
		{
			name:     "exponent is right associative",
			input:    b.Binary(token.Exponent, id("a"), b.Binary(token.Exponent, id("b"), id("c"))),
			expected: "a ** b ** c;",
		},
		{
			name:     "assignment chain",
			input:    b.Assign(token.Assign, id("a"), b.Assign(token.Assign, id("b"), id("c"))),
			expected: "a = b = c;",
		},
		{
			name:     "compound assignment",
			input:    b.Assign(token.Plus, id("a"), num(1)),
			expected: "a += 1;",
		},
		{
			name:     "assignment as binary operand",
			input:    b.Binary(token.Plus, b.Assign(token.Assign, id("a"), num(1)), num(2)),
			expected: "(a = 1) + 2;",
		},
		{
			name:     "nested negation",
			input:    b.Unary(token.Minus, b.Unary(token.Minus, id("x"))),
			expected: "- -x;",
		},
		{
			name:     "void",
			input:    b.Void0(),
			expected: "void 0;",
		},
		{
			name:     "negative number operand",
			input:    b.Member(num(-1), "x"),
			expected: "(-1).x;",
		},
		{
			name:     "private in",
			input:    b.Expression(&ast.PrivateInExpression{Left: &ast.PrivateIdentifier{Name: "x"}, Right: id("o")}),
			expected: "#x in o;",
		},
		{
			name:     "postfix update on member of call",
			input:    b.Update(token.Increment, b.Member(b.Call(id("f"), id("o")), "_"), true),
			expected: "f(o)._++;",
		},
		{
			name:     "conditional in conditional test",
			input:    b.Conditional(b.Conditional(id("a"), id("b"), id("c")), id("d"), id("e")),
			expected: "(a ? b : c) ? d : e;",
		},
		{
			name:     "call of new expression",
			input:    b.Call(b.Member(b.New(id("F")), "x")),
			expected: "new F().x();",
		},
		{
			name:     "new with call callee",
			input:    b.New(b.Call(id("f"))),
			expected: "new (f())();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateASTNoIndent(program(exprStmt(tt.input)))
			if got != tt.expected {
				t.Errorf("\nexpected: %s\ngot:      %s", tt.expected, got)
			}
		})
	}
}

func TestStatementStart(t *testing.T) {
	emptyFn := func() *ast.Expression {
		return b.Expression(b.Function(nil, b.Params(), nil, 0))
	}

	tests := []struct {
		name     string
		input    *ast.Expression
		expected string
	}{
		{
			name:     "function literal",
			input:    emptyFn(),
			expected: "(function() {});",
		},
		{
			name:     "called function literal",
			input:    b.Call(b.Member(emptyFn(), "call"), id("C")),
			expected: "(function() {}).call(C);",
		},
		{
			name:     "object literal member",
			input:    b.Member(b.Object(), "x"),
			expected: "({}.x);",
		},
		{
			name:     "class literal",
			input:    b.Expression(b.Class(nil, nil, nil)),
			expected: "(class {});",
		},
		{
			name:     "arrow callee",
			input:    b.Call(b.Expression(b.Arrow(b.Params(), nil, 0))),
			expected: "(() => {})();",
		},
		{
			name:     "class in assignment",
			input:    b.Sequence(b.Assign(token.Assign, id("_C"), b.Expression(b.Class(nil, nil, nil))), id("_C")),
			expected: "_C = class {}, _C;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateASTNoIndent(program(exprStmt(tt.input)))
			if got != tt.expected {
				t.Errorf("\nexpected: %s\ngot:      %s", tt.expected, got)
			}
		})
	}
}

func TestMemberAccess(t *testing.T) {
	tests := []struct {
		name     string
		input    *ast.Expression
		expected string
	}{
		{"identifier name", b.Member(id("a"), "b"), "a.b;"},
		{"reserved word", b.Member(id("a"), "class"), "a.class;"},
		{"not an identifier", b.Member(id("a"), "b-c"), `a["b-c"];`},
		{"computed", b.Index(id("a"), num(0)), "a[0];"},
		{"private", b.PrivateMember(b.This(), "x"), "this.#x;"},
		{"escaped string", b.Index(id("a"), b.String("\"\n")), `a["\"\n"];`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateASTNoIndent(program(exprStmt(tt.input)))
			if got != tt.expected {
				t.Errorf("\nexpected: %s\ngot:      %s", tt.expected, got)
			}
		})
	}
}

func TestClass(t *testing.T) {
	getter := b.Function(nil, b.Params(), ast.Statements{b.Return(b.PrivateMember(b.This(), "y"))}, 0)
	class := b.Class(b.Identifier("C", 0), id("B"), ast.ClassElements{
		b.Field(b.String("x"), num(1), false, true),
		b.Field(b.Expression(&ast.PrivateIdentifier{Name: "y"}), nil, false, false),
		b.Field(id("k"), nil, true, false),
		b.Method(ast.PropertyKindGet, b.String("z"), getter, false, false),
		b.StaticBlock(ast.Statements{exprStmt(b.Call(id("f")))}),
	})

	got := generateASTNoIndent(program(b.ClassDeclaration(class)))
	expected := "class C extends B {static x = 1;#y;[k];get z() {return this.#y;}static {f();}}"
	if got != expected {
		t.Errorf("\nexpected: %s\ngot:      %s", expected, got)
	}
}

func TestIndentation(t *testing.T) {
	fn := b.Function(b.Identifier("f", 0), b.Params(), ast.Statements{
		b.If(id("a"), b.Return(nil), nil),
		b.VariableDeclaration(token.Var, b.Declarator(b.BindingIdentifier(b.Identifier("x", 0)), num(1))),
	}, 0)

	got := Generate(program(b.FunctionDeclaration(fn)))
	expected := "function f() {\n    if (a) return;\n    var x = 1;\n}\n"
	if got != expected {
		t.Errorf("\nexpected: %q\ngot:      %q", expected, got)
	}
}
