package ext

import (
	"testing"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

type dropCalls struct {
	RemoveVisitor
}

func (v *dropCalls) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if _, ok := n.Expression.Expr.(*ast.CallExpression); ok {
		v.Remove()
	}
}

func (v *dropCalls) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	if n.Initializer == nil {
		v.Remove()
	}
}

func TestRemoveVisitor(t *testing.T) {
	decl := b.VariableDeclaration(token.Var,
		b.Declarator(b.BindingIdentifier(b.Identifier("a", 0)), nil),
		b.Declarator(b.BindingIdentifier(b.Identifier("b", 0)), b.Number(1)),
	)
	p := &ast.Program{Body: ast.Statements{
		b.ExpressionStatement(b.Call(local("f"))),
		decl,
		b.ExpressionStatement(local("x")),
		b.VariableDeclaration(token.Var, b.Declarator(b.BindingIdentifier(b.Identifier("c", 0)), nil)),
		b.ExpressionStatement(b.Call(local("g"))),
	}}

	v := &dropCalls{}
	v.V = v
	p.VisitWith(v)

	if len(p.Body) != 2 {
		t.Fatalf("got %d statements, want 2", len(p.Body))
	}
	if p.Body[0].Stmt != decl.Stmt {
		t.Error("declaration should come first")
	}
	if n := len(decl.Stmt.(*ast.VariableDeclaration).List); n != 1 {
		t.Errorf("got %d declarators, want 1", n)
	}
	if _, ok := p.Body[1].Stmt.(*ast.ExpressionStatement); !ok {
		t.Errorf("unexpected %T", p.Body[1].Stmt)
	}
}
