package classprops

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/ast/ext"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
	"github.com/t14raptor/go-lower/transform/traverse"
	"github.com/t14raptor/go-lower/transform/utils"
)

// initKind orders the expressions a class runs when it is set up.
type initKind int

const (
	// initInstanceBrand and initInstanceField run in the constructor,
	// right after super().
	initInstanceBrand initKind = iota
	initInstanceField
	// initStaticBrand and initStatic run once, after the class.
	initStaticBrand
	initStatic

	numInitKinds
)

// lowering rewrites one class. Class declarations are surrounded by
// statements; class expressions become a sequence expression.
type lowering struct {
	v      *classProperties
	ctx    *traverse.Ctx
	class  *ast.ClassLiteral
	reg    *privateRegistry
	isDecl bool

	inits [][]*ast.Expression

	// Declarations.
	before ast.Statements
	moved  ast.Statements

	// Expressions.
	pre  []*ast.Expression
	post []*ast.Expression

	ref *traverse.BoundIdentifier
}

func newLowering(v *classProperties, class *ast.ClassLiteral, reg *privateRegistry, isDecl bool) *lowering {
	l := &lowering{v: v, ctx: v.ctx, class: class, reg: reg, isDecl: isDecl}
	l.inits = createArray(int(numInitKinds), func() []*ast.Expression {
		return make([]*ast.Expression, 0, len(class.Body))
	})
	return l
}

func (l *lowering) lower() {
	b := l.ctx.Builder
	for _, s := range l.reg.storage {
		ctor := "WeakMap"
		if s.weakSet {
			ctor = "WeakSet"
		}
		l.initBinding(s.binding, b.New(l.ctx.Global(ctor)))
	}
	l.hoistKeys()

	for _, brand := range []struct {
		static bool
		kind   initKind
	}{{false, initInstanceBrand}, {true, initStaticBrand}} {
		i := 0
		if brand.static {
			i = 1
		}
		if l.reg.brands[i] != nil {
			add := l.v.helpers.call(helperPrivateAdd, l.receiver(brand.static), l.reg.brands[i].CreateReadExpression(l.ctx))
			l.inits[brand.kind] = append(l.inits[brand.kind], add)
		}
	}

	for _, el := range l.class.Body {
		static := isStatic(el)
		switch kind := classify(el); kind {
		case memberPublicField, memberPrivateField:
			l.lowerField(el.Element.(*ast.FieldDefinition), kind, static)
		case memberPrivateMethod, memberPrivateGetter, memberPrivateSetter:
			l.lowerPrivateMethod(el.Element.(*ast.MethodDefinition), kind, static)
		case memberStaticBlock:
			l.lowerStaticBlock(el.Element.(*ast.ClassStaticBlock))
		}
	}

	if instance := concat(l.inits[initInstanceBrand], l.inits[initInstanceField]); len(instance) > 0 {
		l.injectConstructor(instance)
	}
	l.class.Body = slices.DeleteFunc(l.class.Body, func(el ast.ClassElement) bool {
		return classify(el).lowered()
	})
	l.renameClassName()
}

// initBinding emits the initialization of a binding created with
// newBinding.
func (l *lowering) initBinding(binding traverse.BoundIdentifier, init *ast.Expression) {
	if l.isDecl {
		l.before = append(l.before, createVariableDeclaration(l.ctx, binding, init))
		return
	}
	l.pre = append(l.pre, createAssignment(l.ctx, binding, init))
}

// hoist evaluates e ahead of the class and returns a read of the result.
func (l *lowering) hoist(e *ast.Expression) *ast.Expression {
	assertExprNeitherParenthesisNorTypeScriptSyntax(e)
	binding := l.v.newBinding(tempBase(e), resolver.DeclKindVar, l.isDecl)
	l.initBinding(binding, e)
	return binding.CreateReadExpression(l.ctx)
}

// hoistKeys moves computed keys out of the class so that they are
// evaluated once, in source order, before any initializer runs. The
// superclass is evaluated before them when that is observable.
func (l *lowering) hoistKeys() {
	var keys []*ast.Expression
	for _, el := range l.class.Body {
		switch e := el.Element.(type) {
		case *ast.FieldDefinition:
			if e.Computed && !ext.IsLiteral(e.Key) {
				keys = append(keys, e.Key)
			}
		case *ast.MethodDefinition:
			if e.Computed && !ext.IsLiteral(e.Key) {
				keys = append(keys, e.Key)
			}
		}
	}
	if len(keys) == 0 {
		return
	}
	if super := l.class.SuperClass; super != nil && ext.MayHaveSideEffects(super) {
		l.class.SuperClass = l.hoist(super)
	}
	for _, key := range keys {
		*key = *l.hoist(&ast.Expression{Expr: key.Expr})
	}
}

// receiver returns the object members are installed on.
func (l *lowering) receiver(static bool) *ast.Expression {
	if static {
		return l.classRef()
	}
	return l.ctx.Builder.This()
}

// classRef returns a read of the class from outside its body.
func (l *lowering) classRef() *ast.Expression {
	if l.isDecl {
		return l.ctx.Builder.Expression(l.ctx.Reference(l.class.Name.ToId(), resolver.ReferenceFlagsRead))
	}
	return l.refBinding().CreateReadExpression(l.ctx)
}

// refBinding returns the temporary a class expression is stored in.
func (l *lowering) refBinding() *traverse.BoundIdentifier {
	if l.ref == nil {
		base := "class"
		if l.class.Name != nil {
			base = l.class.Name.Name
		}
		ref := l.ctx.GenerateTemp(base)
		l.ref = &ref
	}
	return l.ref
}

func (l *lowering) lowerField(f *ast.FieldDefinition, kind memberKind, static bool) {
	b := l.ctx.Builder
	value := f.Initializer
	if value == nil {
		value = b.Void0()
	}
	assertExprNeitherParenthesisNorTypeScriptSyntax(value)

	target := l.receiver(static)
	var init *ast.Expression
	switch {
	case kind == memberPrivateField:
		prop := l.reg.props[privateKey(f.Key).Name]
		init = l.v.helpers.call(helperPrivateAdd, target, prop.storage.CreateReadExpression(l.ctx), value)
	case l.v.opts.UseDefineForClassFields:
		init = l.v.helpers.call(helperPublicField, target, f.Key, value)
	default:
		init = b.Assign(token.Assign, b.Index(target, f.Key), value)
	}

	if static {
		l.rewriteStatic(init)
		l.inits[initStatic] = append(l.inits[initStatic], init)
		return
	}
	l.inits[initInstanceField] = append(l.inits[initInstanceField], init)
}

func (l *lowering) lowerPrivateMethod(m *ast.MethodDefinition, kind memberKind, static bool) {
	prop := l.reg.props[privateKey(m.Key).Name]
	binding := prop.method
	switch kind {
	case memberPrivateGetter:
		binding = *prop.getter
	case memberPrivateSetter:
		binding = *prop.setter
	}

	fn := m.Body
	l.rewriteSuper(fn, static)
	if l.isDecl {
		fn.Name = binding.CreateBindingIdentifier(l.ctx)
		l.moved = append(l.moved, l.ctx.Builder.FunctionDeclaration(fn))
		return
	}
	fn.Name = nil
	l.post = append(l.post, createAssignment(l.ctx, binding, l.ctx.Builder.Expression(fn)))
}

// lowerStaticBlock inlines a block made of expression statements and
// calls any other block as a function with the class as `this`. Blocks
// without side effects are dropped.
func (l *lowering) lowerStaticBlock(sb *ast.ClassStaticBlock) {
	stmts := sb.Block.List
	if !slices.ContainsFunc(stmts, ext.MayHaveSideEffectsStmt) {
		return
	}

	inline := !slices.ContainsFunc(stmts, func(s ast.Statement) bool {
		_, ok := s.Stmt.(*ast.ExpressionStatement)
		return !ok
	})
	if inline {
		for _, s := range stmts {
			expr := s.Stmt.(*ast.ExpressionStatement).Expression
			assertExprNeitherParenthesisNorTypeScriptSyntax(expr)
			l.rewriteStatic(expr)
			l.inits[initStatic] = append(l.inits[initStatic], expr)
		}
		return
	}

	b := l.ctx.Builder
	fn := &ast.FunctionLiteral{
		ParameterList: &ast.ParameterList{},
		Body:          sb.Block,
		ScopeContext:  sb.Block.ScopeContext,
	}
	l.rewriteSuper(fn, true)
	call := b.Call(b.Member(b.Expression(fn), "call"), l.classRef())
	l.inits[initStatic] = append(l.inits[initStatic], call)
}

// renameClassName points references to the name of a class expression
// that were moved out of the class at the temporary holding it.
func (l *lowering) renameClassName() {
	if l.isDecl || l.class.Name == nil {
		return
	}
	outside := concat(l.post, l.inits[initStaticBrand], l.inits[initStatic])
	if len(outside) == 0 {
		return
	}
	ref := l.refBinding()
	to := map[ast.Id]ast.Id{l.class.Name.ToId(): ref.Symbol}
	for _, e := range outside {
		for range utils.Rename(e, to) {
			l.ctx.Scoping.AddReference(ref.Symbol, resolver.ReferenceFlagsRead)
		}
	}
}

// statics returns what runs after the class body is evaluated.
func (l *lowering) statics() []*ast.Expression {
	return concat(l.inits[initStaticBrand], l.inits[initStatic])
}

func (l *lowering) after() ast.Statements {
	return append(l.moved, collect(exprsIntoStmts(l.ctx, seq(l.statics())))...)
}

// replacement returns the expression that replaces a class expression.
func (l *lowering) replacement() *ast.Expression {
	b := l.ctx.Builder
	class := b.Expression(l.class)
	tail := concat(l.post, l.statics())
	if len(tail) == 0 && len(l.pre) == 0 {
		return class
	}
	if len(tail) == 0 {
		return b.Sequence(append(l.pre, class)...)
	}
	exprs := slices.Clone(l.pre)
	exprs = append(exprs, createAssignment(l.ctx, *l.refBinding(), class))
	exprs = append(exprs, tail...)
	exprs = append(exprs, l.classRef())
	return b.Sequence(exprs...)
}
