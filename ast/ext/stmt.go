package ext

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

// MayHaveSideEffectsStmt returns true if the statement may have side effects.
func MayHaveSideEffectsStmt(stmt ast.Statement) bool {
	switch s := stmt.Stmt.(type) {
	case *ast.BlockStatement:
		for _, stmt := range s.List {
			if MayHaveSideEffectsStmt(stmt) {
				return true
			}
		}
		return false
	case *ast.EmptyStatement:
		return false
	case *ast.IfStatement:
		if MayHaveSideEffects(s.Test) || MayHaveSideEffectsStmt(*s.Consequent) {
			return true
		}
		if s.Alternate != nil && MayHaveSideEffectsStmt(*s.Alternate) {
			return true
		}
		return false
	case *ast.ClassDeclaration:
		return classHasSideEffect(s.Class)
	case *ast.VariableDeclaration:
		if s.Token == token.Var {
			return true
		}
		for i := range s.List {
			if init := s.List[i].Initializer; init != nil && MayHaveSideEffects(init) {
				return true
			}
		}
		return false
	case *ast.ExpressionStatement:
		return MayHaveSideEffects(s.Expression)
	}
	return true
}
