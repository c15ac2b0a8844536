package traverse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
)

func TestTemps(t *testing.T) {
	b := ast.NewBuilder()
	fn := b.Function(b.Identifier("f", 0), b.Params(), nil, 0)
	p := &ast.Program{Body: ast.Statements{
		b.FunctionDeclaration(fn),
		b.ExpressionStatement(b.Expression(b.Identifier("_o", 0))),
	}}
	c := NewCtx(p)
	require.Equal(t, p.ScopeContext, c.CurrentVarScope())

	c.EnterScope(fn.ScopeContext)
	require.Equal(t, fn.ScopeContext, c.CurrentVarScope())

	o := c.GenerateTemp("o")
	o2 := c.GenerateTemp("o")
	require.Equal(t, "_o2", o.Name)
	require.Equal(t, "_o3", o2.Name)
	require.Equal(t, fn.ScopeContext, o.Symbol.ScopeContext)

	o.CreateReadExpression(c)
	o.CreateWriteExpression(c)
	o.CreateReadWriteExpression(c)
	sym, ok := c.Scoping.Symbol(o.Symbol)
	require.True(t, ok)
	require.True(t, sym.Generated)
	require.Equal(t, 2, sym.Reads)
	require.Equal(t, 2, sym.Writes)

	temps := c.ExitScope()
	require.Equal(t, []BoundIdentifier{o, o2}, temps)
	require.Equal(t, p.ScopeContext, c.CurrentScope())

	c.DeclareTemps(&fn.Body.List, temps)
	require.Len(t, fn.Body.List, 1)
	decl := fn.Body.List[0].Stmt.(*ast.VariableDeclaration)
	require.Equal(t, token.Var, decl.Token)
	require.Len(t, decl.List, 2)
	require.Equal(t, "_o3", decl.List[1].Target.Target.(*ast.Identifier).Name)
}

func TestBlockScopeKeepsVarScope(t *testing.T) {
	b := ast.NewBuilder()
	block := b.Block(nil, 0)
	p := &ast.Program{Body: ast.Statements{{Stmt: block}}}
	c := NewCtx(p)

	c.EnterScope(block.ScopeContext)
	temp := c.GenerateTemp("")
	require.Equal(t, "_", temp.Name)
	require.Nil(t, c.ExitScope())

	require.Equal(t, []BoundIdentifier{temp}, c.TakeProgramTemps())
	require.Empty(t, c.TakeProgramTemps())
}

func TestGenerateUidInRootScope(t *testing.T) {
	p := &ast.Program{}
	c := NewCtx(p)
	helper := c.GenerateUidInRootScope("privateGet", resolver.DeclKindFunction)
	require.Equal(t, ast.Id{Name: "_privateGet", ScopeContext: p.ScopeContext}, helper.Symbol)

	id, ok := c.Scoping.Lookup(c.NewScope(resolver.ScopeKindBlock), "_privateGet")
	require.True(t, ok)
	require.Equal(t, helper.Symbol, id)

	weakMap := c.Global("WeakMap")
	require.Equal(t, "WeakMap", weakMap.Expr.(*ast.Identifier).Name)
	require.Equal(t, 1, c.Scoping.UnresolvedReferences("WeakMap"))
}

func TestExitProgramScopePanics(t *testing.T) {
	c := NewCtx(&ast.Program{})
	require.Panics(t, func() { c.ExitScope() })
}
