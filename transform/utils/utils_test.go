package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
)

func TestCollectDeclarationsInScope(t *testing.T) {
	b := ast.NewBuilder()
	ident := func(name string) *ast.Identifier { return b.Identifier(name, 0) }

	pattern := &ast.ArrayPattern{Elements: ast.Expressions{
		*b.Expression(ident("a")),
		*b.Assign(token.Assign, b.Expression(ident("b")), b.Expression(ident("dflt"))),
	}}
	inner := b.Function(ident("inner"), b.Params(b.BindingIdentifier(ident("p"))), nil, 0)
	fn := b.Function(nil, b.Params(b.BindingIdentifier(ident("x"))), ast.Statements{
		b.VariableDeclaration(token.Let, b.Declarator(&ast.BindingTarget{Target: pattern}, b.Expression(ident("src")))),
		b.FunctionDeclaration(inner),
		b.ExpressionStatement(b.Expression(ident("y"))),
	}, 0)
	p := &ast.Program{Body: ast.Statements{b.ExpressionStatement(b.Expression(fn))}}
	resolver.Resolve(p)

	got := CollectDeclarationsInScope(fn, fn.ScopeContext)
	want := map[ast.Id]struct{}{
		{Name: "x", ScopeContext: fn.ScopeContext}:     {},
		{Name: "a", ScopeContext: fn.ScopeContext}:     {},
		{Name: "b", ScopeContext: fn.ScopeContext}:     {},
		{Name: "inner", ScopeContext: fn.ScopeContext}: {},
	}
	require.Equal(t, want, got)

	all := CollectDeclarations(fn)
	require.Contains(t, all, ast.Id{Name: "p", ScopeContext: inner.ScopeContext})
	require.NotContains(t, all, ast.Id{Name: "dflt", ScopeContext: resolver.UnresolvedMark})
}

func TestRename(t *testing.T) {
	b := ast.NewBuilder()
	decl := b.Identifier("a", 0)
	use := b.Identifier("a", 0)
	global := b.Identifier("g", 0)
	p := &ast.Program{Body: ast.Statements{
		b.VariableDeclaration(token.Var, b.Declarator(b.BindingIdentifier(decl), nil)),
		b.ExpressionStatement(b.Binary(token.Plus, b.Expression(use), b.Expression(global))),
	}}
	scoping := resolver.Resolve(p)

	renamed := scoping.RenameBinding(decl.ToId())
	n := Rename(p, map[ast.Id]ast.Id{{Name: "a", ScopeContext: resolver.TopLevelMark}: renamed})

	require.Equal(t, 2, n)
	require.Equal(t, "_a", decl.Name)
	require.Equal(t, "_a", use.Name)
	require.Equal(t, "g", global.Name)

	ids := CollectIdentifiers(p)
	require.Len(t, ids, 2)
}
