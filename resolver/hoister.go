package resolver

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

// Hoister declares the bindings of a statement list before the resolver
// walks it, so that references ahead of a declaration resolve. `var`
// declarations are collected through nested blocks; lexical declarations
// and functions only at the top of the list.
type Hoister struct {
	ast.NoopVisitor

	resolver *Resolver
	inBlock  bool
}

func NewHoister(resolver *Resolver) *Hoister {
	h := &Hoister{resolver: resolver}
	h.V = h
	return h
}

func (h *Hoister) VisitStatements(n *ast.Statements) {
	for i := range *n {
		(*n)[i].VisitWith(h)
	}
}

func (h *Hoister) VisitBlockStatement(n *ast.BlockStatement) {
	old := h.inBlock
	h.inBlock = true
	n.VisitChildrenWith(h)
	h.inBlock = old
}

func (h *Hoister) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	kind := DeclKindVar
	if n.Token != token.Var {
		if h.inBlock {
			return
		}
		kind = DeclKindLexical
	}

	for i := range n.List {
		for _, ident := range findIdents(n.List[i].Target) {
			h.resolver.declare(ident, kind)
		}
	}
}

func (h *Hoister) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if h.inBlock {
		return
	}
	h.resolver.declare(n.Function.Name, DeclKindFunction)
}

func (h *Hoister) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if h.inBlock {
		return
	}
	h.resolver.declare(n.Class.Name, DeclKindClass)
}

func (h *Hoister) VisitIfStatement(n *ast.IfStatement) {
	old := h.inBlock
	h.inBlock = true
	n.Consequent.VisitWith(h)
	if n.Alternate != nil {
		n.Alternate.VisitWith(h)
	}
	h.inBlock = old
}

func (h *Hoister) VisitExpressionStatement(n *ast.ExpressionStatement) {}
func (h *Hoister) VisitReturnStatement(n *ast.ReturnStatement)         {}
func (h *Hoister) VisitThrowStatement(n *ast.ThrowStatement)           {}

type identsFinder struct {
	ast.NoopVisitor

	found []*ast.Identifier
}

// findIdents returns the identifiers a binding target binds, skipping
// default values and computed keys.
func findIdents(n *ast.BindingTarget) []*ast.Identifier {
	v := &identsFinder{}
	v.V = v
	n.VisitWith(v)
	return v.found
}

func (v *identsFinder) VisitIdentifier(n *ast.Identifier) {
	v.found = append(v.found, n)
}

func (v *identsFinder) VisitAssignExpression(n *ast.AssignExpression) {
	// `[a = 1]`: only the left side binds.
	n.Left.VisitWith(v)
}

func (v *identsFinder) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	n.Value.VisitWith(v)
}

func (v *identsFinder) VisitPropertyShort(n *ast.PropertyShort) {
	v.found = append(v.found, n.Name)
}
