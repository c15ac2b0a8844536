// Package normalize removes the syntax that has no runtime meaning and that
// later passes must not see: grouping parentheses, TypeScript type
// assertions and empty statements.
package normalize

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/ast/ext"
)

type normalizer struct {
	ext.RemoveVisitor
}

// Normalize rewrites p in place.
func Normalize(p *ast.Program) {
	v := &normalizer{}
	v.V = v
	p.VisitWith(v)
}

func (v *normalizer) VisitExpression(n *ast.Expression) {
	n.Expr = unwrap(n.Expr)
	n.VisitChildrenWith(v.V)
}

func unwrap(e ast.Expr) ast.Expr {
	for {
		switch n := e.(type) {
		case *ast.ParenthesizedExpression:
			e = n.Expression.Expr
		case *ast.TSAsExpression:
			e = n.Expression.Expr
		case *ast.TSSatisfiesExpression:
			e = n.Expression.Expr
		case *ast.TSNonNullExpression:
			e = n.Expression.Expr
		default:
			return e
		}
	}
}

func (v *normalizer) VisitEmptyStatement(n *ast.EmptyStatement) {
	v.Remove()
}

func (v *normalizer) VisitIfStatement(n *ast.IfStatement) {
	n.Test.VisitWith(v.V)

	// `if (a);` keeps its empty body.
	n.Consequent.VisitWith(v.V)
	v.Keep()

	if n.Alternate != nil {
		n.Alternate.VisitWith(v.V)
		v.Keep()
		if _, ok := n.Alternate.Stmt.(*ast.EmptyStatement); ok {
			n.Alternate = nil
		}
	}
}
