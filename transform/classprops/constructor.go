package classprops

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/transform/utils"
)

// injectConstructor runs inits on every new instance: first thing in a
// base class, right after super() in a derived one.
func (l *lowering) injectConstructor(inits []*ast.Expression) {
	ctor, _ := l.class.Constructor()
	if ctor == nil {
		ctor = l.createConstructor()
	} else {
		l.renameShadowed(ctor.Body, inits)
	}
	fn := ctor.Body

	if l.class.SuperClass == nil {
		stmts := collect(exprsIntoStmts(l.ctx, seq(inits)))
		fn.Body.List = slices.Insert(fn.Body.List, 0, stmts...)
		return
	}
	if i, ok := singleSuperCall(fn); ok {
		stmts := collect(exprsIntoStmts(l.ctx, seq(inits)))
		fn.Body.List = slices.Insert(fn.Body.List, i+1, stmts...)
		return
	}
	l.insertSuperShim(fn, inits)
}

// createConstructor adds `constructor(...args) { super(...args); }`, or an
// empty constructor to a base class.
func (l *lowering) createConstructor() *ast.MethodDefinition {
	b := l.ctx.Builder
	scope := newFunctionScope(l.ctx, l.class.ScopeContext)
	fn := b.Function(nil, &ast.ParameterList{}, nil, scope)

	if l.class.SuperClass != nil {
		args := l.ctx.GenerateUidInScope("args", scope, resolver.DeclKindParam)
		fn.ParameterList = b.RestParams(args.CreateBindingTarget(l.ctx))
		super := b.Call(b.Super(), b.Spread(args.CreateReadExpression(l.ctx)))
		fn.Body.List = ast.Statements{b.ExpressionStatement(super)}
	}

	ctor := b.Method(ast.PropertyKindConstructor, b.String("constructor"), fn, false, false)
	l.class.Body = slices.Insert(l.class.Body, 0, ctor)
	return ctor.Element.(*ast.MethodDefinition)
}

// renameShadowed renames parameters and variables of the constructor that
// would capture identifiers of the moved initializers.
func (l *lowering) renameShadowed(fn *ast.FunctionLiteral, inits []*ast.Expression) {
	used := make(map[string]struct{})
	for _, init := range inits {
		for id := range utils.CollectIdentifiers(init) {
			used[id.Name] = struct{}{}
		}
	}

	shadowing := make(map[string]ast.Id)
	for id := range utils.CollectDeclarationsInScope(fn, fn.ScopeContext) {
		if _, ok := used[id.Name]; ok {
			shadowing[id.Name] = id
		}
	}
	if len(shadowing) == 0 {
		return
	}

	names := maps.Keys(shadowing)
	slices.Sort(names)
	to := make(map[ast.Id]ast.Id, len(names))
	for _, name := range names {
		id := shadowing[name]
		to[id] = l.ctx.Scoping.RenameBinding(id)
	}
	utils.Rename(fn, to)
}

// superCalls finds the super() calls that belong to one constructor.
type superCalls struct {
	ast.NoopVisitor

	found []*ast.CallExpression
}

func findSuperCalls(fn *ast.FunctionLiteral) []*ast.CallExpression {
	v := &superCalls{}
	v.V = v
	fn.Body.VisitWith(v)
	return v.found
}

func (v *superCalls) VisitFunctionLiteral(n *ast.FunctionLiteral) {}
func (v *superCalls) VisitClassLiteral(n *ast.ClassLiteral) {
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
}

func (v *superCalls) VisitCallExpression(n *ast.CallExpression) {
	n.VisitChildrenWith(v)
	if _, ok := n.Callee.Expr.(*ast.SuperExpression); ok {
		v.found = append(v.found, n)
	}
}

// singleSuperCall returns the index of the statement `super(...)` when it
// is the only super() call of fn and sits at the top of its body.
func singleSuperCall(fn *ast.FunctionLiteral) (int, bool) {
	calls := findSuperCalls(fn)
	if len(calls) != 1 {
		return 0, false
	}
	for i, stmt := range fn.Body.List {
		es, ok := stmt.Stmt.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		if call, ok := es.Expression.Expr.(*ast.CallExpression); ok && call == calls[0] {
			return i, true
		}
	}
	return 0, false
}

// insertSuperShim handles constructors where super() is nested or called
// more than once. Every super() call goes through
//
//	var _super = (...args) => (super(...args), inits..., this);
func (l *lowering) insertSuperShim(fn *ast.FunctionLiteral, inits []*ast.Expression) {
	b := l.ctx.Builder
	shim := l.ctx.GenerateUidInScope("super", fn.ScopeContext, resolver.DeclKindVar)
	for _, call := range findSuperCalls(fn) {
		call.Callee = shim.CreateReadExpression(l.ctx)
	}

	scope := newFunctionScope(l.ctx, fn.ScopeContext)
	args := l.ctx.GenerateUidInScope("args", scope, resolver.DeclKindParam)
	body := make([]*ast.Expression, 0, len(inits)+2)
	body = append(body, b.Call(b.Super(), b.Spread(args.CreateReadExpression(l.ctx))))
	body = append(body, inits...)
	body = append(body, b.This())

	arrow := &ast.ArrowFunctionLiteral{
		ParameterList: b.RestParams(args.CreateBindingTarget(l.ctx)),
		Body:          &ast.ConciseBody{Body: b.Sequence(body...)},
		ScopeContext:  scope,
	}
	decl := createVariableDeclaration(l.ctx, shim, b.Expression(arrow))
	fn.Body.List = slices.Insert(fn.Body.List, 0, decl)
}
