package classprops

import (
	"fmt"

	"github.com/t14raptor/go-lower/ast"
)

// assertExprNeitherParenthesisNorTypeScriptSyntax panics if expr still
// carries syntax the normalize pass removes. Expressions are checked
// before they are moved into synthesized code.
func assertExprNeitherParenthesisNorTypeScriptSyntax(expr *ast.Expression) {
	if !debugAssertions {
		return
	}
	if _, ok := expr.Expr.(*ast.ParenthesizedExpression); ok || ast.IsTypeScriptSyntax(expr.Expr) {
		panic(fmt.Sprintf("classprops: should not be %T, run normalize first", expr.Expr))
	}
}
