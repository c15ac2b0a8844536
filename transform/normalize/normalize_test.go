package normalize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/generator"
	"github.com/t14raptor/go-lower/token"
)

var whitespace = regexp.MustCompile(`\s+`)

func test(t *testing.T, p *ast.Program, expected string) {
	t.Helper()
	Normalize(p)
	got := strings.TrimSpace(whitespace.ReplaceAllString(generator.Generate(p), " "))
	if got != expected {
		t.Errorf("\nexpected: %s\ngot:      %s", expected, got)
	}
}

func TestNormalize(t *testing.T) {
	b := ast.NewBuilder()
	id := func(name string) *ast.Expression { return b.Expression(b.Identifier(name, 0)) }
	paren := func(e *ast.Expression) *ast.Expression {
		return b.Expression(&ast.ParenthesizedExpression{Expression: e})
	}
	empty := ast.Statement{Stmt: &ast.EmptyStatement{}}

	t.Run("parentheses", func(t *testing.T) {
		test(t, &ast.Program{Body: ast.Statements{
			b.ExpressionStatement(b.Binary(token.Multiply, paren(paren(b.Binary(token.Plus, id("a"), id("b")))), id("c"))),
			b.ExpressionStatement(paren(b.Assign(token.Assign, b.PrivateMember(paren(b.This()), "x"), paren(b.Number(1))))),
		}}, "(a + b) * c; this.#x = 1;")
	})

	t.Run("type assertions", func(t *testing.T) {
		test(t, &ast.Program{Body: ast.Statements{
			b.ExpressionStatement(b.Call(b.Expression(&ast.TSNonNullExpression{
				Expression: b.Expression(&ast.TSAsExpression{Expression: paren(id("f")), Type: "Fn"}),
			}))),
			b.ExpressionStatement(b.Expression(&ast.TSSatisfiesExpression{Expression: id("o"), Type: "T"})),
		}}, "f(); o;")
	})

	t.Run("empty statements", func(t *testing.T) {
		alt := empty
		test(t, &ast.Program{Body: ast.Statements{
			empty,
			b.If(id("a"), empty, &alt),
			b.ExpressionStatement(b.Expression(b.Function(nil, b.Params(), ast.Statements{empty, b.Return(nil), empty}, 0))),
			empty,
		}}, "if (a) ; (function() { return; });")
	})
}
