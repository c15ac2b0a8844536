package classprops

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/generator"
	"github.com/t14raptor/go-lower/token"
	"github.com/t14raptor/go-lower/transform/normalize"
	"github.com/t14raptor/go-lower/transform/traverse"
)

var b = ast.NewBuilder()

func id(name string) *ast.Expression { return b.Expression(b.Identifier(name, 0)) }

func target(name string) *ast.BindingTarget { return b.BindingIdentifier(b.Identifier(name, 0)) }

func num(v float64) *ast.Expression { return b.Number(v) }

func priv(name string) *ast.Expression { return b.Expression(&ast.PrivateIdentifier{Name: name}) }

func stmt(e *ast.Expression) ast.Statement { return b.ExpressionStatement(e) }

func fn(params *ast.ParameterList, body ...ast.Statement) *ast.FunctionLiteral {
	return b.Function(nil, params, body, 0)
}

func method(name string, f *ast.FunctionLiteral) ast.ClassElement {
	return b.Method(ast.PropertyKindMethod, b.String(name), f, false, false)
}

func ctor(f *ast.FunctionLiteral) ast.ClassElement {
	return b.Method(ast.PropertyKindConstructor, b.String("constructor"), f, false, false)
}

func class(name string, super *ast.Expression, body ...ast.ClassElement) ast.Statement {
	return b.ClassDeclaration(b.Class(b.Identifier(name, 0), super, body))
}

func program(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{Body: stmts}
}

func isHelper(s ast.Statement) bool {
	decl, ok := s.Stmt.(*ast.FunctionDeclaration)
	if !ok || decl.Function.Name == nil {
		return false
	}
	name := decl.Function.Name.Name
	return strings.HasPrefix(name, "_private") || strings.HasPrefix(name, "_publicField")
}

// lines drops indentation and blank lines.
func lines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// render prints p without the runtime helpers.
func render(p *ast.Program) string {
	body := p.Body
	for len(body) > 0 && isHelper(body[0]) {
		body = body[1:]
	}
	return lines(generator.Generate(&ast.Program{Body: body}))
}

func check(t *testing.T, expected, got string) {
	t.Helper()
	if expected = lines(expected); got != expected {
		t.Errorf("output mismatch (-want +got):\n%s", diff.Diff(expected, got))
	}
}

func lower(t *testing.T, opts Options, stmts ...ast.Statement) string {
	t.Helper()
	p := program(stmts...)
	require.NoError(t, Transform(p, opts))
	return render(p)
}

func TestPrivateField(t *testing.T) {
	got := lower(t, Options{},
		class("C", nil,
			b.Field(priv("v"), num(1), false, false),
			method("getV", fn(b.Params(), b.Return(b.PrivateMember(b.This(), "v")))),
		),
	)
	check(t, `
		var _v = new WeakMap();
		class C {
			constructor() {
				_privateAdd(this, _v, 1);
			}
			getV() {
				return _privateGet(this, _v);
			}
		}`, got)
}

func TestEachClassOwnsItsStorage(t *testing.T) {
	got := lower(t, Options{},
		class("A", nil, b.Field(priv("x"), num(1), false, false)),
		class("B", nil, b.Field(priv("x"), num(2), false, false)),
	)
	check(t, `
		var _x = new WeakMap();
		class A {
			constructor() {
				_privateAdd(this, _x, 1);
			}
		}
		var _x2 = new WeakMap();
		class B {
			constructor() {
				_privateAdd(this, _x2, 2);
			}
		}`, got)
}

func TestHelpers(t *testing.T) {
	p := program(class("C", nil,
		b.Field(priv("x"), nil, false, false),
		b.Method(ast.PropertyKindMethod, b.String("has"), fn(b.Params(target("o")),
			b.Return(b.Expression(&ast.PrivateInExpression{Left: &ast.PrivateIdentifier{Name: "x"}, Right: id("o")})),
		), false, true),
	))
	require.NoError(t, Transform(p, Options{}))
	check(t, `
		function _privateAdd(obj, member, value) {
			if (member.has(obj)) throw new TypeError("Cannot add the same private member more than once");
			member instanceof WeakSet ? member.add(obj) : member.set(obj, value);
		}
		function _privateIn(member, obj) {
			if (Object(obj) !== obj) throw new TypeError("Cannot use the \"in\" operator on a non-object");
			return member.has(obj);
		}
		var _x = new WeakMap();
		class C {
			constructor() {
				_privateAdd(this, _x, void 0);
			}
			static has(o) {
				return _privateIn(_x, o);
			}
		}`, lines(generator.Generate(p)))
}

func TestHelperNamesAvoidUserBindings(t *testing.T) {
	p := program(
		b.VariableDeclaration(token.Var, b.Declarator(target("_privateGet"), num(1))),
		class("C", nil,
			b.Field(priv("v"), num(1), false, false),
			method("getV", fn(b.Params(), b.Return(b.PrivateMember(b.This(), "v")))),
		),
	)
	require.NoError(t, Transform(p, Options{}))

	var names []string
	for _, s := range p.Body {
		if isHelper(s) {
			names = append(names, s.Stmt.(*ast.FunctionDeclaration).Function.Name.Name)
		}
	}
	require.Equal(t, []string{"_privateAdd", "_privateGet2"}, names)
	require.Contains(t, render(p), "return _privateGet2(this, _v);")
}

func TestStaticMembers(t *testing.T) {
	t.Run("inline block", func(t *testing.T) {
		got := lower(t, Options{},
			class("C", nil,
				b.Field(b.String("x"), num(1), false, true),
				b.StaticBlock(ast.Statements{
					stmt(b.Assign(token.Assign, b.Member(id("C"), "y"), b.Binary(token.Plus, b.Member(id("C"), "x"), num(1)))),
				}),
			),
		)
		check(t, `
			class C {}
			C.x = 1;
			C.y = C.x + 1;`, got)
	})

	t.Run("this", func(t *testing.T) {
		got := lower(t, Options{},
			class("C", nil,
				b.Field(b.String("x"), b.Member(b.This(), "name"), false, true),
				b.Field(b.String("f"), b.Expression(b.Arrow(b.Params(), ast.Statements{b.Return(b.This())}, 0)), false, true),
				b.Field(b.String("g"), b.Expression(fn(b.Params(), b.Return(b.This()))), false, true),
			),
		)
		check(t, `
			class C {}
			C.x = C.name;
			C.f = () => {
				return C;
			};
			C.g = function() {
				return this;
			};`, got)
	})

	t.Run("wrapped and dropped blocks", func(t *testing.T) {
		got := lower(t, Options{},
			class("C", nil,
				b.StaticBlock(ast.Statements{
					b.VariableDeclaration(token.Var, b.Declarator(target("t"), num(1))),
					stmt(b.Call(id("log"), id("t"))),
				}),
				b.StaticBlock(nil),
				b.StaticBlock(ast.Statements{stmt(num(1))}),
			),
		)
		check(t, `
			class C {}
			(function() {
				var t = 1;
				log(t);
			}).call(C);`, got)
	})
}

func TestFieldsRunAfterSuper(t *testing.T) {
	got := lower(t, Options{},
		class("B", id("A"),
			b.Field(b.String("a"), num(1), false, false),
			b.Field(priv("b"), num(2), false, false),
			ctor(fn(b.Params(target("x")),
				stmt(b.Call(id("foo"))),
				stmt(b.Call(b.Super(), id("x"))),
				stmt(b.Call(id("bar"))),
			)),
		),
	)
	check(t, `
		var _b = new WeakMap();
		class B extends A {
			constructor(x) {
				foo();
				super(x);
				this.a = 1;
				_privateAdd(this, _b, 2);
				bar();
			}
		}`, got)
}

func TestSuperShim(t *testing.T) {
	alt := stmt(b.Call(b.Super(), num(2)))
	got := lower(t, Options{},
		class("C", id("B"),
			b.Field(b.String("x"), num(1), false, false),
			ctor(fn(b.Params(),
				b.If(id("a"), stmt(b.Call(b.Super(), num(1))), &alt),
			)),
		),
	)
	check(t, `
		class C extends B {
			constructor() {
				var _super = (..._args) => (super(..._args), this.x = 1, this);
				if (a) _super(1); else _super(2);
			}
		}`, got)
}

func TestConstructorBindingsDoNotShadowInitializers(t *testing.T) {
	got := lower(t, Options{},
		b.VariableDeclaration(token.Var, b.Declarator(target("y"), num(1))),
		class("C", nil,
			b.Field(b.String("x"), id("y"), false, false),
			ctor(fn(b.Params(target("y")), stmt(b.Call(id("use"), id("y"))))),
		),
	)
	check(t, `
		var y = 1;
		class C {
			constructor(_y) {
				this.x = y;
				use(_y);
			}
		}`, got)
}

func TestComputedKeys(t *testing.T) {
	t.Run("hoisted in order", func(t *testing.T) {
		got := lower(t, Options{},
			class("C", nil,
				b.Field(b.Call(id("k")), num(1), true, false),
				b.Field(id("j"), num(2), true, true),
				b.Field(b.String("lit"), num(3), true, false),
				method("m", fn(b.Params())),
			),
		)
		check(t, `
			var _k = k();
			var _j = j;
			class C {
				constructor() {
					this[_k] = 1;
					this.lit = 3;
				}
				m() {}
			}
			C[_j] = 2;`, got)
	})

	t.Run("superclass first", func(t *testing.T) {
		got := lower(t, Options{},
			class("C", b.Call(id("f")), b.Field(id("k"), num(1), true, false)),
		)
		check(t, `
			var _f = f();
			var _k = k;
			class C extends _f {
				constructor(..._args) {
					super(..._args);
					this[_k] = 1;
				}
			}`, got)
	})
}

func TestPrivateAccess(t *testing.T) {
	this := func() *ast.Expression { return b.This() }
	got := lower(t, Options{},
		class("C", nil,
			b.Field(priv("x"), num(0), false, false),
			b.Method(ast.PropertyKindMethod, priv("m"), fn(b.Params(), b.Return(num(1))), false, false),
			method("run", fn(b.Params(target("o")),
				stmt(b.Assign(token.Plus, b.PrivateMember(this(), "x"), num(1))),
				stmt(b.Assign(token.LogicalOr, b.PrivateMember(id("o"), "x"), num(2))),
				stmt(b.Assign(token.Multiply, b.PrivateMember(b.Call(id("f")), "x"), num(3))),
				stmt(b.Update(token.Increment, b.PrivateMember(this(), "x"), true)),
				stmt(b.Expression(&ast.PrivateInExpression{Left: &ast.PrivateIdentifier{Name: "x"}, Right: id("o")})),
				stmt(b.Call(b.PrivateMember(this(), "m"), num(1))),
				stmt(b.Call(b.PrivateMember(b.Call(id("g")), "m"))),
				stmt(b.Assign(token.Assign,
					b.Expression(&ast.ArrayPattern{Elements: ast.Expressions{*b.PrivateMember(this(), "x")}}),
					b.Array(num(4)))),
			)),
		),
	)
	check(t, `
		var _x = new WeakMap();
		var _C_instances = new WeakSet();
		class C {
			constructor() {
				_privateAdd(this, _C_instances);
				_privateAdd(this, _x, 0);
			}
			run(o) {
				var _f, _g;
				_privateSet(this, _x, _privateGet(this, _x) + 1);
				_privateGet(o, _x) || _privateSet(o, _x, 2);
				_privateSet(_f = f(), _x, _privateGet(_f, _x) * 3);
				_privateWrapper(this, _x)._++;
				_privateIn(_x, o);
				_privateMethod(this, _C_instances, _m).call(this, 1);
				_privateMethod(_g = g(), _C_instances, _m).call(_g);
				[_privateWrapper(this, _x)._] = [4];
			}
		}
		function _m() {
			return 1;
		}`, got)
}

func TestPrivateAccessors(t *testing.T) {
	got := lower(t, Options{},
		class("C", nil,
			b.Method(ast.PropertyKindGet, priv("p"), fn(b.Params(), b.Return(num(1))), false, false),
			b.Method(ast.PropertyKindSet, priv("p"), fn(b.Params(target("v"))), false, false),
			method("m", fn(b.Params(),
				stmt(b.Assign(token.Assign, b.PrivateMember(b.This(), "p"), b.PrivateMember(b.This(), "p"))),
			)),
		),
	)
	check(t, `
		var _C_instances = new WeakSet();
		class C {
			constructor() {
				_privateAdd(this, _C_instances);
			}
			m() {
				_privateSet(this, _C_instances, _privateGet(this, _C_instances, _get_p), _set_p);
			}
		}
		function _get_p() {
			return 1;
		}
		function _set_p(v) {}`, got)
}

func TestStaticPrivateMethodAndSuper(t *testing.T) {
	superCall := b.Call(b.Member(b.Super(), "f"))
	got := lower(t, Options{},
		class("C", id("B"),
			b.Method(ast.PropertyKindMethod, priv("s"), fn(b.Params(), b.Return(superCall)), false, true),
			b.Method(ast.PropertyKindMethod, b.String("g"), fn(b.Params(),
				b.Return(b.Call(b.PrivateMember(id("C"), "s"))),
			), false, true),
		),
	)
	check(t, `
		var _C_static = new WeakSet();
		class C extends B {
			static g() {
				return _privateMethod(C, _C_static, _s).call(C);
			}
		}
		function _s() {
			return Reflect.get(Object.getPrototypeOf(C), "f", this).call(this);
		}
		_privateAdd(C, _C_static);`, got)
}

func TestClassExpression(t *testing.T) {
	expr := b.Class(b.Identifier("Named", 0), nil, ast.ClassElements{
		b.Field(priv("count"), num(0), false, true),
		b.Method(ast.PropertyKindMethod, b.String("inc"), fn(b.Params(),
			b.Return(b.Update(token.Increment, b.PrivateMember(id("Named"), "count"), false)),
		), false, true),
		b.StaticBlock(ast.Statements{
			stmt(b.Assign(token.Assign, b.PrivateMember(b.This(), "count"), num(5))),
		}),
	})
	got := lower(t, Options{},
		b.VariableDeclaration(token.Var, b.Declarator(target("D"), b.Expression(expr))),
	)
	check(t, `
		var _count, _Named;
		var D = (_count = new WeakMap(), _Named = class Named {
			static inc() {
				return ++_privateWrapper(Named, _count)._;
			}
		}, _privateAdd(_Named, _count, 0), _privateSet(_Named, _count, 5), _Named);`, got)
}

func TestClassExpressionNameInMovedCode(t *testing.T) {
	expr := b.Class(b.Identifier("K", 0), nil, ast.ClassElements{
		b.Field(b.String("self"), id("K"), false, true),
	})
	got := lower(t, Options{},
		stmt(b.Call(id("use"), b.Expression(expr))),
	)
	check(t, `
		var _K;
		use((_K = class K {}, _K.self = _K, _K));`, got)
}

func TestDefineSemantics(t *testing.T) {
	got := lower(t, Options{UseDefineForClassFields: true},
		class("C", nil,
			b.Field(b.String("x"), num(1), false, false),
			b.Field(b.String("y"), nil, false, true),
		),
	)
	check(t, `
		class C {
			constructor() {
				_publicField(this, "x", 1);
			}
		}
		_publicField(C, "y", void 0);`, got)
}

func TestClassesWithoutNewFeaturesAreUntouched(t *testing.T) {
	p := program(class("A", id("B"),
		ctor(fn(b.Params(), stmt(b.Call(b.Super())))),
		b.Method(ast.PropertyKindMethod, id("k"), fn(b.Params()), true, false),
		b.Method(ast.PropertyKindMethod, b.String("m"), fn(b.Params(), b.Return(num(1))), false, true),
	))
	before := generator.Generate(p)
	require.NoError(t, Transform(p, Options{}))
	require.Equal(t, before, generator.Generate(p))
}

func TestDiagnostics(t *testing.T) {
	t.Run("undeclared name", func(t *testing.T) {
		p := program(
			class("A", nil,
				method("m", fn(b.Params(), b.Return(b.PrivateMember(b.This(), "nope")))),
				b.Field(priv("y"), num(1), false, false),
			),
			class("B", nil,
				b.Field(priv("z"), num(1), false, false),
				method("m", fn(b.Params(), b.Return(b.PrivateMember(b.This(), "z")))),
			),
		)
		ctx := traverse.NewCtx(p)
		TransformWith(ctx, Options{})

		errs := ctx.Diagnostics.Errors()
		require.Len(t, errs, 1)
		require.Equal(t, "Private field '#nope' must be declared in an enclosing class", errs[0].Message)
		require.Equal(t, "the class declares #y", errs[0].Hint)
		require.Error(t, ctx.Diagnostics.Err())

		check(t, `
			class A {
				m() {
					return this.#nope;
				}
				#y = 1;
			}
			var _z = new WeakMap();
			class B {
				constructor() {
					_privateAdd(this, _z, 1);
				}
				m() {
					return _privateGet(this, _z);
				}
			}`, render(p))
	})

	t.Run("duplicate name", func(t *testing.T) {
		p := program(class("D", nil,
			b.Field(priv("a"), nil, false, false),
			b.Field(priv("a"), nil, false, false),
			b.Method(ast.PropertyKindGet, priv("p"), fn(b.Params()), false, false),
			b.Method(ast.PropertyKindSet, priv("p"), fn(b.Params(target("v"))), false, false),
		))
		err := Transform(p, Options{})
		require.EqualError(t, err, "error[0]: Identifier '#a' has already been declared")
		check(t, `
			class D {
				#a;
				#a;
				get #p() {}
				set #p(v) {}
			}`, render(p))
	})

	t.Run("outside any class", func(t *testing.T) {
		err := Transform(program(stmt(b.PrivateMember(id("o"), "x"))), Options{})
		require.EqualError(t, err, "error[0]: Private field '#x' must be declared in an enclosing class")
	})
}

func TestAfterNormalize(t *testing.T) {
	paren := b.Expression(&ast.ParenthesizedExpression{Expression: b.Call(id("a"))})
	p := program(class("C", nil, b.Field(priv("x"), paren, false, false)))
	normalize.Normalize(p)
	require.NoError(t, Transform(p, Options{}))
	check(t, `
		var _x = new WeakMap();
		class C {
			constructor() {
				_privateAdd(this, _x, a());
			}
		}`, render(p))
}
