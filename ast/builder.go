package ast

import "github.com/t14raptor/go-lower/token"

// Builder allocates synthesized nodes. Positions of built nodes are 0;
// callers that replace a node copy its Idx themselves when it matters.
//
// A Builder is not safe for concurrent use. Use one per program.
type Builder struct {
	exprs   *miniArena[Expression]
	idents  *miniArena[Identifier]
	strs    *miniArena[StringLiteral]
	calls   *miniArena[CallExpression]
	members *miniArena[MemberExpression]
	assigns *miniArena[AssignExpression]
}

func NewBuilder() *Builder {
	return &Builder{
		exprs:   newArena[Expression](256),
		idents:  newArena[Identifier](128),
		strs:    newArena[StringLiteral](64),
		calls:   newArena[CallExpression](64),
		members: newArena[MemberExpression](64),
		assigns: newArena[AssignExpression](64),
	}
}

// Expression wraps e.
func (b *Builder) Expression(e Expr) *Expression {
	return b.exprs.alloc(Expression{Expr: e})
}

// Identifier creates an identifier already resolved to ctx.
func (b *Builder) Identifier(name string, ctx ScopeContext) *Identifier {
	return b.idents.alloc(Identifier{Name: name, ScopeContext: ctx})
}

func (b *Builder) This() *Expression {
	return b.Expression(&ThisExpression{})
}

func (b *Builder) Super() *Expression {
	return b.Expression(&SuperExpression{})
}

func (b *Builder) String(v string) *Expression {
	return b.Expression(b.strs.alloc(StringLiteral{Value: v}))
}

func (b *Builder) Number(v float64) *Expression {
	return b.Expression(&NumberLiteral{Value: v})
}

func (b *Builder) Boolean(v bool) *Expression {
	return b.Expression(&BooleanLiteral{Value: v})
}

func (b *Builder) Null() *Expression {
	return b.Expression(&NullLiteral{})
}

// Void0 is the side-effect free spelling of undefined.
func (b *Builder) Void0() *Expression {
	return b.Unary(token.Void, b.Number(0))
}

func (b *Builder) Assign(op token.Token, left, right *Expression) *Expression {
	return b.Expression(b.assigns.alloc(AssignExpression{Operator: op, Left: left, Right: right}))
}

func (b *Builder) Binary(op token.Token, left, right *Expression) *Expression {
	return b.Expression(&BinaryExpression{Operator: op, Left: left, Right: right})
}

func (b *Builder) Unary(op token.Token, operand *Expression) *Expression {
	return b.Expression(&UnaryExpression{Operator: op, Operand: operand})
}

func (b *Builder) Update(op token.Token, operand *Expression, postfix bool) *Expression {
	return b.Expression(&UpdateExpression{Operator: op, Operand: operand, Postfix: postfix})
}

func (b *Builder) Conditional(test, consequent, alternate *Expression) *Expression {
	return b.Expression(&ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate})
}

func (b *Builder) Call(callee *Expression, args ...*Expression) *Expression {
	return b.Expression(b.calls.alloc(CallExpression{Callee: callee, ArgumentList: derefAll(args)}))
}

func (b *Builder) New(callee *Expression, args ...*Expression) *Expression {
	return b.Expression(&NewExpression{Callee: callee, ArgumentList: derefAll(args)})
}

// Member creates `obj.name`.
func (b *Builder) Member(obj *Expression, name string) *Expression {
	return b.Index(obj, b.String(name))
}

// Index creates `obj[prop]`.
func (b *Builder) Index(obj, prop *Expression) *Expression {
	return b.Expression(b.members.alloc(MemberExpression{Object: obj, Property: prop}))
}

// PrivateMember creates `obj.#name`.
func (b *Builder) PrivateMember(obj *Expression, name string) *Expression {
	return b.Expression(&PrivateDotExpression{Left: obj, Identifier: &PrivateIdentifier{Name: name}})
}

// Sequence joins exprs with the comma operator. A single expression is
// returned as is.
func (b *Builder) Sequence(exprs ...*Expression) *Expression {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return b.Expression(&SequenceExpression{Sequence: derefAll(exprs)})
}

func (b *Builder) Spread(e *Expression) *Expression {
	return b.Expression(&SpreadElement{Expression: e})
}

func (b *Builder) Array(elems ...*Expression) *Expression {
	return b.Expression(&ArrayLiteral{Value: derefAll(elems)})
}

func (b *Builder) Object(props ...Property) *Expression {
	return b.Expression(&ObjectLiteral{Value: props})
}

// KeyedProperty creates `key: value`, or an accessor when kind is get or set.
func (b *Builder) KeyedProperty(kind PropertyKind, key, value *Expression) Property {
	return Property{Prop: &PropertyKeyed{Key: key, Kind: kind, Value: value}}
}

func (b *Builder) BindingIdentifier(id *Identifier) *BindingTarget {
	return &BindingTarget{Target: id}
}

func (b *Builder) Params(params ...*BindingTarget) *ParameterList {
	list := make(VariableDeclarators, len(params))
	for i, p := range params {
		list[i] = VariableDeclarator{Target: p}
	}
	return &ParameterList{List: list}
}

// RestParams creates `(...rest)`.
func (b *Builder) RestParams(rest *BindingTarget) *ParameterList {
	return &ParameterList{Rest: rest}
}

func (b *Builder) Function(name *Identifier, params *ParameterList, body Statements, ctx ScopeContext) *FunctionLiteral {
	return &FunctionLiteral{
		Name:          name,
		ParameterList: params,
		Body:          &BlockStatement{List: body, ScopeContext: ctx},
		ScopeContext:  ctx,
	}
}

func (b *Builder) Arrow(params *ParameterList, body Statements, ctx ScopeContext) *ArrowFunctionLiteral {
	return &ArrowFunctionLiteral{
		ParameterList: params,
		Body:          &ConciseBody{Body: &BlockStatement{List: body, ScopeContext: ctx}},
		ScopeContext:  ctx,
	}
}

func (b *Builder) Block(body Statements, ctx ScopeContext) *BlockStatement {
	return &BlockStatement{List: body, ScopeContext: ctx}
}

func (b *Builder) ExpressionStatement(e *Expression) Statement {
	return Statement{Stmt: &ExpressionStatement{Expression: e}}
}

func (b *Builder) Declarator(target *BindingTarget, init *Expression) VariableDeclarator {
	return VariableDeclarator{Target: target, Initializer: init}
}

func (b *Builder) VariableDeclaration(kind token.Token, decls ...VariableDeclarator) Statement {
	return Statement{Stmt: &VariableDeclaration{Token: kind, List: decls}}
}

func (b *Builder) FunctionDeclaration(fn *FunctionLiteral) Statement {
	return Statement{Stmt: &FunctionDeclaration{Function: fn}}
}

func (b *Builder) ClassDeclaration(class *ClassLiteral) Statement {
	return Statement{Stmt: &ClassDeclaration{Class: class}}
}

func (b *Builder) Return(arg *Expression) Statement {
	return Statement{Stmt: &ReturnStatement{Argument: arg}}
}

func (b *Builder) Throw(arg *Expression) Statement {
	return Statement{Stmt: &ThrowStatement{Argument: arg}}
}

func (b *Builder) If(test *Expression, consequent Statement, alternate *Statement) Statement {
	return Statement{Stmt: &IfStatement{Test: test, Consequent: &consequent, Alternate: alternate}}
}

func (b *Builder) Class(name *Identifier, superClass *Expression, body ClassElements) *ClassLiteral {
	return &ClassLiteral{Name: name, SuperClass: superClass, Body: body}
}

func (b *Builder) Field(key, init *Expression, computed, static bool) ClassElement {
	return ClassElement{Element: &FieldDefinition{Key: key, Initializer: init, Computed: computed, Static: static}}
}

func (b *Builder) Method(kind PropertyKind, key *Expression, fn *FunctionLiteral, computed, static bool) ClassElement {
	return ClassElement{Element: &MethodDefinition{Key: key, Kind: kind, Body: fn, Computed: computed, Static: static}}
}

func (b *Builder) StaticBlock(body Statements) ClassElement {
	return ClassElement{Element: &ClassStaticBlock{Block: &BlockStatement{List: body}}}
}

func derefAll(exprs []*Expression) Expressions {
	if len(exprs) == 0 {
		return nil
	}
	out := make(Expressions, len(exprs))
	for i, e := range exprs {
		out[i] = *e
	}
	return out
}
