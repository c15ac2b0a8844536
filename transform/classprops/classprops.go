// Package classprops lowers class fields, private members and static
// blocks to code that runs on engines without them.
//
// Private members become WeakMap and WeakSet entries reached through a
// small set of runtime helpers declared at the top of the program. Field
// initializers move into the constructor, static members after the class.
// Programs should go through normalize first.
package classprops

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/transform/traverse"
)

type classProperties struct {
	ast.NoopVisitor

	ctx     *traverse.Ctx
	opts    Options
	helpers *helpers

	registries []*privateRegistry
	invalid    map[*ast.ClassLiteral]bool

	// splice receives the statements a lowered class declaration needs
	// around itself.
	splice *splice
}

type splice struct {
	before, after ast.Statements
}

// Transform resolves p and lowers every class in it. Classes that have
// errors are reported and left as they are; the others are lowered
// regardless.
func Transform(p *ast.Program, opts Options) error {
	ctx := traverse.NewCtx(p)
	TransformWith(ctx, opts)
	return ctx.Diagnostics.Err()
}

// TransformWith lowers the program of ctx. Diagnostics are added to ctx.
func TransformWith(ctx *traverse.Ctx, opts Options) {
	v := &classProperties{
		ctx:     ctx,
		opts:    opts,
		helpers: newHelpers(ctx),
		invalid: make(map[*ast.ClassLiteral]bool),
	}
	v.V = v
	ctx.Program.VisitWith(v)
}

func (v *classProperties) VisitProgram(n *ast.Program) {
	scanPrivateNames(n, v.ctx.Diagnostics, v.invalid)
	n.VisitChildrenWith(v)
	v.ctx.DeclareTemps(&n.Body, v.ctx.TakeProgramTemps())
	n.Body = slices.Insert(n.Body, 0, v.helpers.declarations()...)
}

func (v *classProperties) VisitStatements(n *ast.Statements) {
	for i := 0; i < len(*n); i++ {
		saved := v.splice
		v.splice = nil
		v.VisitStatement(&(*n)[i])
		if s := v.splice; s != nil {
			*n = slices.Insert(*n, i+1, s.after...)
			*n = slices.Insert(*n, i, s.before...)
			i += len(s.before) + len(s.after)
		}
		v.splice = saved
	}
}

func (v *classProperties) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	v.ctx.EnterScope(n.ScopeContext)
	n.VisitChildrenWith(v)
	v.ctx.DeclareTemps(&n.Body.List, v.ctx.ExitScope())
}

func (v *classProperties) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	v.ctx.EnterScope(n.ScopeContext)
	n.VisitChildrenWith(v)
	temps := v.ctx.ExitScope()
	if len(temps) == 0 {
		return
	}
	if expr, ok := n.Body.Body.(*ast.Expression); ok {
		n.Body.Body = v.ctx.Builder.Block(ast.Statements{v.ctx.Builder.Return(expr)}, n.ScopeContext)
	}
	v.ctx.DeclareTemps(&n.Body.Body.(*ast.BlockStatement).List, temps)
}

func (v *classProperties) VisitBlockStatement(n *ast.BlockStatement) {
	if n.ScopeContext == v.ctx.CurrentScope() {
		// Function body.
		n.VisitChildrenWith(v)
		return
	}
	v.ctx.EnterScope(n.ScopeContext)
	n.VisitChildrenWith(v)
	v.ctx.DeclareTemps(&n.List, v.ctx.ExitScope())
}

func (v *classProperties) VisitClassDeclaration(n *ast.ClassDeclaration) {
	before, after, _ := v.visitClass(n.Class, true)
	if len(before) > 0 || len(after) > 0 {
		v.splice = &splice{before: before, after: after}
	}
}

func (v *classProperties) VisitExpression(n *ast.Expression) {
	switch e := n.Expr.(type) {
	case *ast.ClassLiteral:
		if _, _, replacement := v.visitClass(e, false); replacement != nil {
			n.Expr = replacement.Expr
		}
		return
	case *ast.PrivateDotExpression:
		v.visitPrivateGet(n, e)
		return
	case *ast.AssignExpression:
		v.visitAssign(n, e)
		return
	case *ast.UpdateExpression:
		v.visitUpdate(n, e)
		return
	case *ast.CallExpression:
		v.visitCall(n, e)
		return
	case *ast.PrivateInExpression:
		v.visitPrivateIn(n, e)
		return
	}
	n.VisitChildrenWith(v)
}

// visitClass walks class and lowers it. Declarations return the
// statements to place around them, expressions their replacement.
func (v *classProperties) visitClass(class *ast.ClassLiteral, isDecl bool) (before, after ast.Statements, replacement *ast.Expression) {
	if class.SuperClass != nil {
		class.SuperClass.VisitWith(v)
	}

	reg := v.pushRegistry(class, isDecl)
	v.ctx.EnterScope(class.ScopeContext)
	class.Body.VisitWith(v)
	v.ctx.ExitScope()
	v.popRegistry()

	if reg.invalid || !needsLowering(class) {
		return nil, nil, nil
	}
	l := newLowering(v, class, reg, isDecl)
	l.lower()
	if isDecl {
		return l.before, l.after(), nil
	}
	return nil, nil, l.replacement()
}
