package resolver

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

// Loosely inspired from https://rustdoc.swc.rs/swc_ecma_transforms_base/fn.resolver.html

const (
	UnresolvedMark ast.ScopeContext = 0
	TopLevelMark   ast.ScopeContext = 1
)

type Resolver struct {
	ast.NoopVisitor

	scoping *Scoping
	current *Scope

	refFlags ReferenceFlags
}

// Resolve assigns a ScopeContext to every identifier and scope-owning node
// of p and returns the resulting symbol table. Identifiers that already
// carry a context are left alone, so resolving twice is harmless.
func Resolve(p *ast.Program) *Scoping {
	r := &Resolver{
		scoping:  NewScoping(),
		refFlags: ReferenceFlagsRead,
	}
	r.V = r

	p.VisitWith(r)
	return r.scoping
}

func (r *Resolver) pushScope(kind ScopeKind) ast.ScopeContext {
	parent := UnresolvedMark
	if r.current != nil {
		parent = r.current.ctx
	}
	ctx := r.scoping.NewScope(parent, kind)
	r.current = r.scoping.Scope(ctx)
	return ctx
}

func (r *Resolver) popScope() {
	if r.current.parent != nil {
		r.current = r.current.parent
	}
}

// declare binds id in the current scope, or in the enclosing function
// scope for `var`.
func (r *Resolver) declare(id *ast.Identifier, kind DeclKind) {
	if id == nil || id.ScopeContext != UnresolvedMark {
		return
	}
	id.ScopeContext = r.scoping.DeclareBinding(r.current.ctx, id.Name, kind).ScopeContext
}

func (r *Resolver) withFlags(flags ReferenceFlags, n ast.VisitableNode) {
	old := r.refFlags
	r.refFlags = flags
	n.VisitWith(r)
	r.refFlags = old
}

func (r *Resolver) VisitProgram(n *ast.Program) {
	n.ScopeContext = r.pushScope(ScopeKindFunction)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitStatements(n *ast.Statements) {
	// Handle hoisting
	n.VisitWith(NewHoister(r))

	// Resolve
	n.VisitChildrenWith(r)
}

func (r *Resolver) VisitBlockStatement(n *ast.BlockStatement) {
	n.ScopeContext = r.pushScope(ScopeKindBlock)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	kind := DeclKindVar
	if n.Token != token.Var {
		kind = DeclKindLexical
	}

	for i := range n.List {
		decl := &n.List[i]
		for _, ident := range findIdents(decl.Target) {
			r.declare(ident, kind)
		}
		decl.Target.VisitWith(r)
		if decl.Initializer != nil {
			r.withFlags(ReferenceFlagsRead, decl.Initializer)
		}
	}
}

func (r *Resolver) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	r.declare(n.Function.Name, DeclKindFunction)
	r.visitFunction(n.Function, false)
}

func (r *Resolver) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	r.visitFunction(n, true)
}

func (r *Resolver) visitFunction(n *ast.FunctionLiteral, expr bool) {
	n.ScopeContext = r.pushScope(ScopeKindFunction)

	if expr && n.Name != nil {
		r.declare(n.Name, DeclKindFunction)
	}
	r.visitParams(n.ParameterList)

	// Prevent creating new scope.
	n.Body.ScopeContext = n.ScopeContext
	n.Body.VisitChildrenWith(r)

	r.popScope()
}

func (r *Resolver) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	n.ScopeContext = r.pushScope(ScopeKindFunction)

	r.visitParams(n.ParameterList)

	switch body := n.Body.Body.(type) {
	case *ast.BlockStatement:
		body.ScopeContext = n.ScopeContext
		// Prevent creating a new scope.
		body.VisitChildrenWith(r)
	case *ast.Expression:
		r.withFlags(ReferenceFlagsRead, body)
	}

	r.popScope()
}

func (r *Resolver) visitParams(n *ast.ParameterList) {
	for i := range n.List {
		for _, ident := range findIdents(n.List[i].Target) {
			r.declare(ident, DeclKindParam)
		}
	}
	if n.Rest != nil {
		for _, ident := range findIdents(n.Rest) {
			r.declare(ident, DeclKindParam)
		}
	}
	// Default values and computed keys.
	n.VisitChildrenWith(r)
}

func (r *Resolver) VisitClassDeclaration(n *ast.ClassDeclaration) {
	r.declare(n.Class.Name, DeclKindClass)
	r.visitClass(n.Class, false)
}

func (r *Resolver) VisitClassLiteral(n *ast.ClassLiteral) {
	r.visitClass(n, true)
}

func (r *Resolver) visitClass(n *ast.ClassLiteral, expr bool) {
	n.ScopeContext = r.pushScope(ScopeKindClass)

	if expr && n.Name != nil {
		r.declare(n.Name, DeclKindClass)
	}
	if n.SuperClass != nil {
		r.withFlags(ReferenceFlagsRead, n.SuperClass)
	}
	n.Body.VisitWith(r)

	r.popScope()
}

func (r *Resolver) VisitFieldDefinition(n *ast.FieldDefinition) {
	if n.Computed {
		n.Key.VisitWith(r)
	}
	if n.Initializer != nil {
		n.Initializer.VisitWith(r)
	}
}

func (r *Resolver) VisitMethodDefinition(n *ast.MethodDefinition) {
	if n.Computed {
		n.Key.VisitWith(r)
	}
	n.Body.VisitWith(r)
}

func (r *Resolver) VisitClassStaticBlock(n *ast.ClassStaticBlock) {
	// A static block is its own `var` scope.
	n.Block.ScopeContext = r.pushScope(ScopeKindFunction)
	n.Block.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	if n.Computed {
		r.withFlags(ReferenceFlagsRead, n.Key)
	}
	n.Value.VisitWith(r)
}

func (r *Resolver) VisitPropertyShort(n *ast.PropertyShort) {
	n.Name.VisitWith(r)
	if n.Initializer != nil {
		r.withFlags(ReferenceFlagsRead, n.Initializer)
	}
}

func (r *Resolver) VisitAssignExpression(n *ast.AssignExpression) {
	flags := ReferenceFlagsReadWrite
	if n.Operator == token.Assign {
		flags = ReferenceFlagsWrite
	}
	r.withFlags(flags, n.Left)
	r.withFlags(ReferenceFlagsRead, n.Right)
}

func (r *Resolver) VisitUpdateExpression(n *ast.UpdateExpression) {
	r.withFlags(ReferenceFlagsReadWrite, n.Operand)
}

func (r *Resolver) VisitMemberExpression(n *ast.MemberExpression) {
	r.withFlags(ReferenceFlagsRead, n.Object)
	r.withFlags(ReferenceFlagsRead, n.Property)
}

func (r *Resolver) VisitPrivateDotExpression(n *ast.PrivateDotExpression) {
	r.withFlags(ReferenceFlagsRead, n.Left)
}

func (r *Resolver) VisitIdentifier(n *ast.Identifier) {
	if n == nil || n.ScopeContext != UnresolvedMark {
		return
	}

	if scope := r.current.lookup(n.Name); scope != nil {
		n.ScopeContext = scope.ctx
	}
	r.scoping.AddReference(n.ToId(), r.refFlags)
}
