package classprops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
	"github.com/t14raptor/go-lower/transform/traverse"
)

func TestCreateArray(t *testing.T) {
	calls := 0
	table := createArray(4, func() int {
		calls++
		return calls - 1
	})
	require.Equal(t, []int{0, 1, 2, 3}, table)
	require.Equal(t, 4, calls)

	require.Empty(t, createArray(0, func() int {
		t.Fatal("init called for an empty table")
		return 0
	}))
}

func TestTryCreateArray(t *testing.T) {
	errBoom := errors.New("boom")

	calls := 0
	table, err := tryCreateArray(5, func() (string, error) {
		calls++
		if calls == 3 {
			return "", errBoom
		}
		return "ok", nil
	})
	require.ErrorIs(t, err, errBoom)
	require.EqualError(t, err, "slot 2: boom")
	require.Nil(t, table)
	require.Equal(t, 3, calls)

	table, err = tryCreateArray(2, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	require.Equal(t, []string{"ok", "ok"}, table)
}

func TestExprsIntoStmtsIsLazy(t *testing.T) {
	ctx := traverse.NewCtx(program())

	pulled := 0
	exprs := func(yield func(*ast.Expression) bool) {
		for _, name := range []string{"a", "b", "c"} {
			pulled++
			if !yield(id(name)) {
				return
			}
		}
	}

	stmts := exprsIntoStmts(ctx, exprs)
	require.Zero(t, pulled)

	for range stmts {
		break
	}
	require.Equal(t, 1, pulled)

	var names []string
	for s := range stmts {
		e := s.Stmt.(*ast.ExpressionStatement).Expression
		names = append(names, e.Expr.(*ast.Identifier).Name)
	}
	require.Equal(t, []string{"a", "b", "c"}, names)
	require.Equal(t, 4, pulled)
}

func TestCreateUnderscoreIdentName(t *testing.T) {
	ctx := traverse.NewCtx(program(
		b.VariableDeclaration(token.Var, b.Declarator(target("_"), num(1))),
		stmt(id("_2")),
	))
	require.Equal(t, "_3", createUnderscoreIdentName(ctx))
	require.Equal(t, "_4", createUnderscoreIdentName(ctx))
}

func TestTempBase(t *testing.T) {
	for _, tc := range []struct {
		expr *ast.Expression
		want string
	}{
		{id("foo"), "foo"},
		{b.Member(id("a"), "bar"), "bar"},
		{b.Call(id("make")), "make"},
		{b.Call(b.Member(id("a"), "get")), "get"},
		{b.PrivateMember(b.This(), "secret"), "secret"},
		{num(1), "obj"},
	} {
		require.Equal(t, tc.want, tempBase(tc.expr))
	}
}

func TestAssertExprNeitherParenthesisNorTypeScriptSyntax(t *testing.T) {
	if !debugAssertions {
		t.Skip("assertions are compiled out")
	}
	paren := func() *ast.Expression {
		return b.Expression(&ast.ParenthesizedExpression{Expression: id("a")})
	}

	require.NotPanics(t, func() { assertExprNeitherParenthesisNorTypeScriptSyntax(id("a")) })
	require.Panics(t, func() { assertExprNeitherParenthesisNorTypeScriptSyntax(paren()) })
	require.Panics(t, func() {
		_ = Transform(program(class("C", nil, b.Field(b.String("x"), paren(), false, false))), Options{})
	})
}
