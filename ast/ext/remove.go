package ext

import "github.com/t14raptor/go-lower/ast"

// RemoveVisitor is a helper visitor that can help remove nodes from the AST.
//
// If you override a Visit method that has deletion logic:
//   - [RemoveVisitor.VisitStatements]
//   - [RemoveVisitor.VisitExpressions]
//   - [RemoveVisitor.VisitSequenceExpression]
//   - [RemoveVisitor.VisitVariableDeclarators]
//   - [RemoveVisitor.VisitVariableDeclaration]
//   - [RemoveVisitor.VisitClassElements]
//
// make sure to either call the base implementation or handle removal manually.
type RemoveVisitor struct {
	ast.NoopVisitor
	remove bool
}

// Remove marks the current node for removal.
func (v *RemoveVisitor) Remove() {
	v.remove = true
}

// Keep clears a removal mark. Use it after visiting a node that is not an
// element of a list, such as the body of an if statement.
func (v *RemoveVisitor) Keep() {
	v.remove = false
}

func compact[S ~[]E, E any](v *RemoveVisitor, n *S, visit func(*E)) {
	w := 0
	for i := 0; i < len(*n); i++ {
		visit(&(*n)[i])
		if v.remove {
			v.remove = false
			continue
		}
		if w != i {
			(*n)[w] = (*n)[i]
		}
		w++
	}
	if w == len(*n) {
		return
	}

	clear((*n)[w:])
	*n = (*n)[:w]
}

func (v *RemoveVisitor) VisitStatements(n *ast.Statements) {
	compact(v, n, func(s *ast.Statement) { s.VisitWith(v.V) })
}

func (v *RemoveVisitor) VisitExpressions(n *ast.Expressions) {
	compact(v, n, func(e *ast.Expression) { e.VisitWith(v.V) })
}

func (v *RemoveVisitor) VisitSequenceExpression(n *ast.SequenceExpression) {
	n.VisitChildrenWith(v.V)
	if len(n.Sequence) == 0 {
		v.Remove()
	}
}

func (v *RemoveVisitor) VisitVariableDeclarators(n *ast.VariableDeclarators) {
	compact(v, n, func(d *ast.VariableDeclarator) { d.VisitWith(v.V) })
}

func (v *RemoveVisitor) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	n.VisitChildrenWith(v.V)
	if len(n.List) == 0 {
		v.Remove()
	}
}

func (v *RemoveVisitor) VisitClassElements(n *ast.ClassElements) {
	compact(v, n, func(el *ast.ClassElement) { el.VisitWith(v.V) })
}
