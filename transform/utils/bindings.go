package utils

import "github.com/t14raptor/go-lower/ast"

type BindingCollector struct {
	ast.NoopVisitor
	only      *ast.ScopeContext
	bindings  map[ast.Id]struct{}
	inPattern bool
}

func (v *BindingCollector) add(id ast.Id) {
	if v.only != nil && *v.only != id.ScopeContext {
		return
	}
	v.bindings[id] = struct{}{}
}

func (v *BindingCollector) VisitClassDeclaration(n *ast.ClassDeclaration) {
	n.VisitChildrenWith(v.V)
	if n.Class.Name != nil {
		v.add(n.Class.Name.ToId())
	}
}

func (v *BindingCollector) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	n.VisitChildrenWith(v.V)
	if n.Function.Name != nil {
		v.add(n.Function.Name.ToId())
	}
}

func (v *BindingCollector) VisitBindingTarget(n *ast.BindingTarget) {
	old := v.inPattern
	v.inPattern = true
	n.VisitChildrenWith(v.V)
	v.inPattern = old
}

func (v *BindingCollector) VisitIdentifier(n *ast.Identifier) {
	if v.inPattern {
		v.add(n.ToId())
	}
}

func (v *BindingCollector) VisitAssignExpression(n *ast.AssignExpression) {
	// `[a = f()]` binds a only. The default is an ordinary expression.
	n.Left.VisitWith(v.V)
	v.visitExpr(n.Right)
}

func (v *BindingCollector) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	if n.Computed {
		v.visitExpr(n.Key)
	}
	n.Value.VisitWith(v.V)
}

func (v *BindingCollector) VisitFieldDefinition(n *ast.FieldDefinition) {
	if n.Computed {
		v.visitExpr(n.Key)
	}
	if n.Initializer != nil {
		v.visitExpr(n.Initializer)
	}
}

func (v *BindingCollector) visitExpr(n *ast.Expression) {
	old := v.inPattern
	v.inPattern = false
	n.VisitWith(v.V)
	v.inPattern = old
}

// CollectDeclarations collects binding identifiers.
func CollectDeclarations(n ast.VisitableNode) map[ast.Id]struct{} {
	visitor := &BindingCollector{
		bindings: make(map[ast.Id]struct{}),
	}
	visitor.V = visitor
	n.VisitWith(visitor)
	return visitor.bindings
}

// CollectDeclarationsInScope collects binding if they are in the given scope.
func CollectDeclarationsInScope(n ast.VisitableNode, scope ast.ScopeContext) map[ast.Id]struct{} {
	visitor := &BindingCollector{
		only:     &scope,
		bindings: make(map[ast.Id]struct{}),
	}
	visitor.V = visitor
	n.VisitWith(visitor)
	return visitor.bindings
}

type IdentifierCollector struct {
	ast.NoopVisitor
	ids map[ast.Id]struct{}
}

func (v *IdentifierCollector) VisitIdentifier(n *ast.Identifier) {
	v.ids[n.ToId()] = struct{}{}
}

// CollectIdentifiers collects every identifier in n, bindings and
// references alike.
func CollectIdentifiers(n ast.VisitableNode) map[ast.Id]struct{} {
	visitor := &IdentifierCollector{
		ids: make(map[ast.Id]struct{}),
	}
	visitor.V = visitor
	n.VisitWith(visitor)
	return visitor.ids
}
