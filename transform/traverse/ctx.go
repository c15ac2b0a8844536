package traverse

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/diagnostic"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
)

// Ctx is the state a transform carries while walking one program: the
// symbol table, the node allocator, the diagnostics and the stack of scopes
// the walk is currently in.
//
// A Ctx belongs to one program and one goroutine.
type Ctx struct {
	Program     *ast.Program
	Scoping     *resolver.Scoping
	Builder     *ast.Builder
	Diagnostics *diagnostic.Diagnostics

	scopes    []ast.ScopeContext
	varScopes []*varScope
}

// varScope holds the temporaries generated inside one function scope. They
// are declared with a single `var` when the scope is exited.
type varScope struct {
	ctx   ast.ScopeContext
	temps []BoundIdentifier
}

// NewCtx resolves p and returns a context positioned at its top level.
func NewCtx(p *ast.Program) *Ctx {
	scoping := resolver.Resolve(p)
	return NewCtxWithScoping(p, scoping)
}

// NewCtxWithScoping returns a context for a program that was resolved
// already.
func NewCtxWithScoping(p *ast.Program, scoping *resolver.Scoping) *Ctx {
	c := &Ctx{
		Program:     p,
		Scoping:     scoping,
		Builder:     ast.NewBuilder(),
		Diagnostics: diagnostic.New(),
	}
	c.EnterScope(p.ScopeContext)
	return c
}

// EnterScope pushes a scope created by the resolver or by NewScope.
func (c *Ctx) EnterScope(ctx ast.ScopeContext) {
	c.scopes = append(c.scopes, ctx)
	if c.Scoping.Scope(ctx).Kind() == resolver.ScopeKindFunction {
		c.varScopes = append(c.varScopes, &varScope{ctx: ctx})
	}
}

// ExitScope pops the current scope. When it is a function scope, the
// temporaries generated in it are returned so that the caller can declare
// them with DeclareTemps.
func (c *Ctx) ExitScope() []BoundIdentifier {
	if len(c.scopes) <= 1 {
		panic("traverse: exit of the program scope")
	}
	ctx := c.scopes[len(c.scopes)-1]
	c.scopes = c.scopes[:len(c.scopes)-1]

	top := c.varScopes[len(c.varScopes)-1]
	if top.ctx != ctx {
		return nil
	}
	c.varScopes = c.varScopes[:len(c.varScopes)-1]
	return top.temps
}

// TakeProgramTemps returns the temporaries of the program scope and forgets
// them.
func (c *Ctx) TakeProgramTemps() []BoundIdentifier {
	top := c.varScopes[0]
	temps := top.temps
	top.temps = nil
	return temps
}

func (c *Ctx) CurrentScope() ast.ScopeContext {
	return c.scopes[len(c.scopes)-1]
}

// CurrentVarScope returns the function scope `var` declarations made at
// the current position belong to.
func (c *Ctx) CurrentVarScope() ast.ScopeContext {
	return c.varScopes[len(c.varScopes)-1].ctx
}

// NewScope creates a scope below the current one for a node a transform
// synthesizes. It is not entered.
func (c *Ctx) NewScope(kind resolver.ScopeKind) ast.ScopeContext {
	return c.Scoping.NewScope(c.CurrentScope(), kind)
}

// GenerateUidInScope declares a fresh binding derived from base in scope.
func (c *Ctx) GenerateUidInScope(base string, scope ast.ScopeContext, kind resolver.DeclKind) BoundIdentifier {
	name := c.Scoping.GenerateUid(base)
	id := c.Scoping.DeclareBinding(scope, name, kind)
	if sym, ok := c.Scoping.Symbol(id); ok {
		sym.Generated = true
	}
	return NewBoundIdentifier(id)
}

// GenerateUidInCurrentScope declares a fresh binding in the current scope,
// or in the current var scope for DeclKindVar.
func (c *Ctx) GenerateUidInCurrentScope(base string, kind resolver.DeclKind) BoundIdentifier {
	return c.GenerateUidInScope(base, c.CurrentScope(), kind)
}

// GenerateUidInRootScope declares a fresh binding at the top level.
func (c *Ctx) GenerateUidInRootScope(base string, kind resolver.DeclKind) BoundIdentifier {
	return c.GenerateUidInScope(base, c.Program.ScopeContext, kind)
}

// GenerateTemp declares a fresh `var` in the current var scope. The
// declaration itself is emitted when the scope is exited.
func (c *Ctx) GenerateTemp(base string) BoundIdentifier {
	top := c.varScopes[len(c.varScopes)-1]
	temp := c.GenerateUidInScope(base, top.ctx, resolver.DeclKindVar)
	top.temps = append(top.temps, temp)
	return temp
}

// DeclareTemps prepends `var a, b;` for temps to body.
func (c *Ctx) DeclareTemps(body *ast.Statements, temps []BoundIdentifier) {
	if len(temps) == 0 {
		return
	}
	decls := make(ast.VariableDeclarators, len(temps))
	for i, temp := range temps {
		decls[i] = c.Builder.Declarator(temp.CreateBindingTarget(c), nil)
	}
	*body = slices.Insert(*body, 0, c.Builder.VariableDeclaration(token.Var, decls...))
}

// Reference creates an identifier for id and records the reference.
func (c *Ctx) Reference(id ast.Id, flags resolver.ReferenceFlags) *ast.Identifier {
	ident := c.Builder.Identifier(id.Name, id.ScopeContext)
	c.Scoping.AddReference(id, flags)
	return ident
}

// Global creates a read of an unresolved name such as WeakMap.
func (c *Ctx) Global(name string) *ast.Expression {
	return c.Builder.Expression(c.Reference(ast.Id{Name: name, ScopeContext: resolver.UnresolvedMark}, resolver.ReferenceFlagsRead))
}
