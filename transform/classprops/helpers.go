package classprops

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
	"github.com/t14raptor/go-lower/transform/traverse"
)

type helper int

const (
	helperPrivateAdd helper = iota
	helperPrivateGet
	helperPrivateSet
	helperPrivateMethod
	helperPrivateIn
	helperPrivateWrapper
	helperPublicField

	numHelpers
)

var helperNames = [numHelpers]string{
	helperPrivateAdd:     "privateAdd",
	helperPrivateGet:     "privateGet",
	helperPrivateSet:     "privateSet",
	helperPrivateMethod:  "privateMethod",
	helperPrivateIn:      "privateIn",
	helperPrivateWrapper: "privateWrapper",
	helperPublicField:    "publicField",
}

// helpers tracks the runtime functions a program needs. Each is declared
// once at the top of the program, in a fixed order.
type helpers struct {
	ctx      *traverse.Ctx
	bindings [numHelpers]*traverse.BoundIdentifier

	// wrapperProp names the accessor of the objects _privateWrapper
	// returns.
	wrapperProp string
}

func newHelpers(ctx *traverse.Ctx) *helpers {
	return &helpers{ctx: ctx}
}

func (h *helpers) use(kind helper) traverse.BoundIdentifier {
	if kind == helperPrivateWrapper {
		h.use(helperPrivateGet)
		h.use(helperPrivateSet)
		if h.wrapperProp == "" {
			h.wrapperProp = createUnderscoreIdentName(h.ctx)
		}
	}
	if h.bindings[kind] == nil {
		b := h.ctx.GenerateUidInRootScope(helperNames[kind], resolver.DeclKindFunction)
		h.bindings[kind] = &b
	}
	return *h.bindings[kind]
}

// call creates a call of the helper kind. Trailing nil arguments are
// dropped.
func (h *helpers) call(kind helper, args ...*ast.Expression) *ast.Expression {
	for len(args) > 0 && args[len(args)-1] == nil {
		args = args[:len(args)-1]
	}
	for i, arg := range args {
		if arg == nil {
			args[i] = h.ctx.Builder.Void0()
		}
	}
	callee := h.use(kind).CreateReadExpression(h.ctx)
	return h.ctx.Builder.Call(callee, args...)
}

// wrapper creates `_privateWrapper(obj, ...)._`, a reference that forwards
// reads and writes to the helpers.
func (h *helpers) wrapper(args ...*ast.Expression) *ast.Expression {
	call := h.call(helperPrivateWrapper, args...)
	return h.ctx.Builder.Member(call, h.wrapperProp)
}

func (h *helpers) declarations() ast.Statements {
	var out ast.Statements
	for kind := range numHelpers {
		if h.bindings[kind] == nil {
			continue
		}
		out = append(out, h.ctx.Builder.FunctionDeclaration(h.build(kind, *h.bindings[kind])))
	}
	return out
}

// fnBuilder creates a synthesized function whose parameters are declared
// in a fresh scope.
type fnBuilder struct {
	ctx    *traverse.Ctx
	scope  ast.ScopeContext
	params map[string]traverse.BoundIdentifier
	list   []*ast.BindingTarget
}

func newFnBuilder(ctx *traverse.Ctx, parent ast.ScopeContext, params ...string) *fnBuilder {
	f := &fnBuilder{
		ctx:    ctx,
		scope:  newFunctionScope(ctx, parent),
		params: make(map[string]traverse.BoundIdentifier, len(params)),
	}
	for _, name := range params {
		b := traverse.NewBoundIdentifier(ctx.Scoping.DeclareBinding(f.scope, name, resolver.DeclKindParam))
		f.params[name] = b
		f.list = append(f.list, b.CreateBindingTarget(ctx))
	}
	return f
}

func (f *fnBuilder) ref(name string) *ast.Expression {
	return f.params[name].CreateReadExpression(f.ctx)
}

func (f *fnBuilder) function(name *ast.Identifier, body ...ast.Statement) *ast.FunctionLiteral {
	return f.ctx.Builder.Function(name, f.ctx.Builder.Params(f.list...), body, f.scope)
}

// guard creates `if (!member.has(obj)) throw new TypeError(msg);`.
func (f *fnBuilder) guard(msg string) ast.Statement {
	b := f.ctx.Builder
	has := b.Call(b.Member(f.ref("member"), "has"), f.ref("obj"))
	return b.If(b.Unary(token.Not, has), f.throw(msg), nil)
}

func (f *fnBuilder) throw(msg string) ast.Statement {
	b := f.ctx.Builder
	return b.Throw(b.New(f.ctx.Global("TypeError"), b.String(msg)))
}

// readOrCall creates `fn ? fn.call(obj, args...) : member.method(obj, args...)`.
func (f *fnBuilder) readOrCall(fn, method string, args ...string) *ast.Expression {
	b := f.ctx.Builder
	callArgs := []*ast.Expression{f.ref("obj")}
	memberArgs := []*ast.Expression{f.ref("obj")}
	for _, a := range args {
		callArgs = append(callArgs, f.ref(a))
		memberArgs = append(memberArgs, f.ref(a))
	}
	return b.Conditional(
		f.ref(fn),
		b.Call(b.Member(f.ref(fn), "call"), callArgs...),
		b.Call(b.Member(f.ref("member"), method), memberArgs...),
	)
}

func (h *helpers) build(kind helper, binding traverse.BoundIdentifier) *ast.FunctionLiteral {
	c := h.ctx
	b := c.Builder
	name := binding.CreateBindingIdentifier(c)
	root := c.Program.ScopeContext

	switch kind {
	case helperPrivateAdd:
		f := newFnBuilder(c, root, "obj", "member", "value")
		has := b.Call(b.Member(f.ref("member"), "has"), f.ref("obj"))
		add := b.Conditional(
			b.Binary(token.InstanceOf, f.ref("member"), c.Global("WeakSet")),
			b.Call(b.Member(f.ref("member"), "add"), f.ref("obj")),
			b.Call(b.Member(f.ref("member"), "set"), f.ref("obj"), f.ref("value")),
		)
		return f.function(name,
			b.If(has, f.throw("Cannot add the same private member more than once"), nil),
			b.ExpressionStatement(add),
		)
	case helperPrivateGet:
		f := newFnBuilder(c, root, "obj", "member", "getter")
		return f.function(name,
			f.guard("Cannot read from private field"),
			b.Return(f.readOrCall("getter", "get")),
		)
	case helperPrivateSet:
		f := newFnBuilder(c, root, "obj", "member", "value", "setter")
		return f.function(name,
			f.guard("Cannot write to private field"),
			b.ExpressionStatement(f.readOrCall("setter", "set", "value")),
			b.Return(f.ref("value")),
		)
	case helperPrivateMethod:
		f := newFnBuilder(c, root, "obj", "member", "method")
		return f.function(name,
			f.guard("Cannot access private method"),
			b.Return(f.ref("method")),
		)
	case helperPrivateIn:
		f := newFnBuilder(c, root, "member", "obj")
		isObject := b.Binary(token.StrictNotEqual, b.Call(c.Global("Object"), f.ref("obj")), f.ref("obj"))
		return f.function(name,
			b.If(isObject, f.throw(`Cannot use the "in" operator on a non-object`), nil),
			b.Return(b.Call(b.Member(f.ref("member"), "has"), f.ref("obj"))),
		)
	case helperPrivateWrapper:
		f := newFnBuilder(c, root, "obj", "member", "setter", "getter")
		set := newFnBuilder(c, f.scope, "value")
		setBody := b.Call(h.bindings[helperPrivateSet].CreateReadExpression(c),
			f.ref("obj"), f.ref("member"), set.ref("value"), f.ref("setter"))
		get := newFnBuilder(c, f.scope)
		getBody := b.Call(h.bindings[helperPrivateGet].CreateReadExpression(c),
			f.ref("obj"), f.ref("member"), f.ref("getter"))
		obj := b.Object(
			b.KeyedProperty(ast.PropertyKindSet, b.String(h.wrapperProp),
				b.Expression(set.function(nil, b.ExpressionStatement(setBody)))),
			b.KeyedProperty(ast.PropertyKindGet, b.String(h.wrapperProp),
				b.Expression(get.function(nil, b.Return(getBody)))),
		)
		return f.function(name, b.Return(obj))
	case helperPublicField:
		f := newFnBuilder(c, root, "obj", "key", "value")
		descriptor := b.Object(
			b.KeyedProperty(ast.PropertyKindValue, b.String("value"), f.ref("value")),
			b.KeyedProperty(ast.PropertyKindValue, b.String("enumerable"), b.Boolean(true)),
			b.KeyedProperty(ast.PropertyKindValue, b.String("configurable"), b.Boolean(true)),
			b.KeyedProperty(ast.PropertyKindValue, b.String("writable"), b.Boolean(true)),
		)
		define := b.Call(b.Member(c.Global("Object"), "defineProperty"), f.ref("obj"), f.ref("key"), descriptor)
		return f.function(name,
			b.ExpressionStatement(define),
			b.Return(f.ref("value")),
		)
	}
	panic("classprops: unknown helper")
}
