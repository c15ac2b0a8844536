package classprops

import (
	"fmt"
	"iter"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
	"github.com/t14raptor/go-lower/transform/traverse"
)

// createAssignment creates `binding = value`.
func createAssignment(ctx *traverse.Ctx, binding traverse.BoundIdentifier, value *ast.Expression) *ast.Expression {
	return ctx.Builder.Assign(token.Assign, binding.CreateWriteExpression(ctx), value)
}

// createVariableDeclaration creates `var binding = init;`.
func createVariableDeclaration(ctx *traverse.Ctx, binding traverse.BoundIdentifier, init *ast.Expression) ast.Statement {
	return ctx.Builder.VariableDeclaration(token.Var, ctx.Builder.Declarator(binding.CreateBindingTarget(ctx), init))
}

// exprsIntoStmts wraps each expression of exprs in an expression
// statement. Nothing is evaluated until the result is ranged over.
func exprsIntoStmts(ctx *traverse.Ctx, exprs iter.Seq[*ast.Expression]) iter.Seq[ast.Statement] {
	return func(yield func(ast.Statement) bool) {
		for expr := range exprs {
			if !yield(ctx.Builder.ExpressionStatement(expr)) {
				return
			}
		}
	}
}

// createUnderscoreIdentName returns a fresh name for a slot that must be
// named but is never resolved, such as the accessor of a private wrapper.
// It is reserved like any generated binding.
func createUnderscoreIdentName(ctx *traverse.Ctx) string {
	return ctx.Scoping.GenerateUid("")
}

// createArray returns a table of n slots, each filled by one call to init,
// in slot order.
func createArray[T any](n int, init func() T) []T {
	table := make([]T, 0, n)
	for range n {
		table = append(table, init())
	}
	return table
}

// tryCreateArray is createArray for an init that can fail. On the first
// failure no table is returned.
func tryCreateArray[T any](n int, init func() (T, error)) ([]T, error) {
	table := make([]T, 0, n)
	for i := range n {
		v, err := init()
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		table = append(table, v)
	}
	return table, nil
}

// seq yields exprs in order.
func seq(exprs []*ast.Expression) iter.Seq[*ast.Expression] {
	return func(yield func(*ast.Expression) bool) {
		for _, e := range exprs {
			if !yield(e) {
				return
			}
		}
	}
}

func concat[E any](lists ...[]E) []E {
	var n int
	for _, list := range lists {
		n += len(list)
	}
	out := make([]E, 0, n)
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

func collect(stmts iter.Seq[ast.Statement]) ast.Statements {
	var out ast.Statements
	for s := range stmts {
		out = append(out, s)
	}
	return out
}

// isSimpleReference reports whether e can be evaluated twice without
// observable difference.
func isSimpleReference(e *ast.Expression) bool {
	switch e.Expr.(type) {
	case *ast.ThisExpression, *ast.Identifier:
		return true
	}
	return false
}

// tempBase picks a readable stem for a temporary holding e.
func tempBase(e *ast.Expression) string {
	switch n := e.Expr.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.MemberExpression:
		if s, ok := n.Property.Expr.(*ast.StringLiteral); ok {
			return s.Value
		}
		return tempBase(n.Object)
	case *ast.CallExpression:
		return tempBase(n.Callee)
	case *ast.PrivateDotExpression:
		return n.Identifier.Name
	}
	return "obj"
}

func newFunctionScope(ctx *traverse.Ctx, parent ast.ScopeContext) ast.ScopeContext {
	return ctx.Scoping.NewScope(parent, resolver.ScopeKindFunction)
}
