package classprops

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
	"github.com/t14raptor/go-lower/transform/traverse"
)

// receiver returns obj for an access that evaluates it twice: as is when
// that is safe, otherwise as `_o = obj` followed by `_o`.
func (v *classProperties) receiver(obj *ast.Expression) (first, again *ast.Expression) {
	assertExprNeitherParenthesisNorTypeScriptSyntax(obj)
	if isSimpleReference(obj) {
		return obj, v.cloneReference(obj)
	}
	temp := v.ctx.GenerateTemp(tempBase(obj))
	return createAssignment(v.ctx, temp, obj), temp.CreateReadExpression(v.ctx)
}

func (v *classProperties) cloneReference(e *ast.Expression) *ast.Expression {
	switch n := e.Expr.(type) {
	case *ast.ThisExpression:
		return v.ctx.Builder.This()
	case *ast.Identifier:
		return v.ctx.Builder.Expression(v.ctx.Reference(n.ToId(), resolver.ReferenceFlagsRead))
	}
	panic("classprops: not a simple reference")
}

func (v *classProperties) optionalRead(b *traverse.BoundIdentifier) *ast.Expression {
	if b == nil {
		return nil
	}
	return b.CreateReadExpression(v.ctx)
}

// get creates the read of prop on obj.
func (v *classProperties) get(prop *privateProp, obj *ast.Expression) *ast.Expression {
	storage := prop.storage.CreateReadExpression(v.ctx)
	switch {
	case prop.isField():
		return v.helpers.call(helperPrivateGet, obj, storage)
	case prop.isAccessor():
		return v.helpers.call(helperPrivateGet, obj, storage, v.optionalRead(prop.getter))
	}
	return v.helpers.call(helperPrivateMethod, obj, storage, prop.method.CreateReadExpression(v.ctx))
}

// set creates the write of value to prop on obj. Writing a method throws
// at runtime.
func (v *classProperties) set(prop *privateProp, obj, value *ast.Expression) *ast.Expression {
	assertExprNeitherParenthesisNorTypeScriptSyntax(value)
	storage := prop.storage.CreateReadExpression(v.ctx)
	if prop.isAccessor() {
		return v.helpers.call(helperPrivateSet, obj, storage, value, v.optionalRead(prop.setter))
	}
	return v.helpers.call(helperPrivateSet, obj, storage, value)
}

// wrapper creates a reference through which prop is both read and
// written.
func (v *classProperties) wrapper(prop *privateProp, obj *ast.Expression) *ast.Expression {
	storage := prop.storage.CreateReadExpression(v.ctx)
	if prop.isAccessor() {
		return v.helpers.wrapper(obj, storage, v.optionalRead(prop.setter), v.optionalRead(prop.getter))
	}
	return v.helpers.wrapper(obj, storage)
}

// `o.#x`
func (v *classProperties) visitPrivateGet(n *ast.Expression, e *ast.PrivateDotExpression) {
	e.Left.VisitWith(v)
	prop := v.lookup(e.Identifier.Name)
	if prop == nil {
		return
	}
	assertExprNeitherParenthesisNorTypeScriptSyntax(e.Left)
	n.Expr = v.get(prop, e.Left).Expr
}

// `o.#x = v`, `o.#x += v` and destructuring into private members.
func (v *classProperties) visitAssign(n *ast.Expression, e *ast.AssignExpression) {
	switch left := e.Left.Expr.(type) {
	case *ast.PrivateDotExpression:
		left.Left.VisitWith(v)
		e.Right.VisitWith(v)
		if prop := v.lookup(left.Identifier.Name); prop != nil {
			n.Expr = v.assign(prop, left.Left, e.Operator, e.Right).Expr
		}
	case *ast.ArrayPattern, *ast.ObjectPattern:
		v.visitAssignTarget(e.Left)
		e.Right.VisitWith(v)
	default:
		e.Left.VisitWith(v)
		e.Right.VisitWith(v)
	}
}

func (v *classProperties) assign(prop *privateProp, obj *ast.Expression, op token.Token, value *ast.Expression) *ast.Expression {
	if op == token.Assign {
		assertExprNeitherParenthesisNorTypeScriptSyntax(obj)
		return v.set(prop, obj, value)
	}

	b := v.ctx.Builder
	first, again := v.receiver(obj)
	switch op {
	case token.LogicalAnd, token.LogicalOr, token.Coalesce:
		// The write only happens when the read does not short-circuit.
		return b.Binary(op, v.get(prop, first), v.set(prop, again, value))
	}
	return v.set(prop, first, b.Binary(op, v.get(prop, again), value))
}

// visitAssignTarget walks a destructuring target. Private members in it
// become wrapper references.
func (v *classProperties) visitAssignTarget(n *ast.Expression) {
	switch t := n.Expr.(type) {
	case *ast.PrivateDotExpression:
		t.Left.VisitWith(v)
		if prop := v.lookup(t.Identifier.Name); prop != nil {
			assertExprNeitherParenthesisNorTypeScriptSyntax(t.Left)
			n.Expr = v.wrapper(prop, t.Left).Expr
		}
	case *ast.ArrayPattern:
		for i := range t.Elements {
			if t.Elements[i].Expr != nil {
				v.visitAssignTarget(&t.Elements[i])
			}
		}
		if t.Rest != nil {
			v.visitAssignTarget(t.Rest)
		}
	case *ast.ObjectPattern:
		for i := range t.Properties {
			switch p := t.Properties[i].Prop.(type) {
			case *ast.PropertyKeyed:
				if p.Computed {
					p.Key.VisitWith(v)
				}
				v.visitAssignTarget(p.Value)
			case *ast.PropertyShort:
				if p.Initializer != nil {
					p.Initializer.VisitWith(v)
				}
			}
		}
		if t.Rest != nil {
			v.visitAssignTarget(t.Rest)
		}
	case *ast.AssignExpression:
		// Default value.
		v.visitAssignTarget(t.Left)
		t.Right.VisitWith(v)
	default:
		n.VisitWith(v)
	}
}

// `o.#x++`
func (v *classProperties) visitUpdate(n *ast.Expression, e *ast.UpdateExpression) {
	target, ok := e.Operand.Expr.(*ast.PrivateDotExpression)
	if !ok {
		e.Operand.VisitWith(v)
		return
	}
	target.Left.VisitWith(v)
	if prop := v.lookup(target.Identifier.Name); prop != nil {
		assertExprNeitherParenthesisNorTypeScriptSyntax(target.Left)
		e.Operand = v.wrapper(prop, target.Left)
	}
}

// `o.#m(args)` keeps o as the receiver.
func (v *classProperties) visitCall(n *ast.Expression, e *ast.CallExpression) {
	callee, ok := e.Callee.Expr.(*ast.PrivateDotExpression)
	if !ok {
		n.VisitChildrenWith(v)
		return
	}
	callee.Left.VisitWith(v)
	e.ArgumentList.VisitWith(v)

	prop := v.lookup(callee.Identifier.Name)
	if prop == nil {
		return
	}
	b := v.ctx.Builder
	first, again := v.receiver(callee.Left)
	fn := v.get(prop, first)
	args := make([]*ast.Expression, 0, len(e.ArgumentList)+1)
	args = append(args, again)
	for i := range e.ArgumentList {
		args = append(args, &e.ArgumentList[i])
	}
	n.Expr = b.Call(b.Member(fn, "call"), args...).Expr
}

// `#x in o`
func (v *classProperties) visitPrivateIn(n *ast.Expression, e *ast.PrivateInExpression) {
	e.Right.VisitWith(v)
	prop := v.lookup(e.Left.Name)
	if prop == nil {
		return
	}
	assertExprNeitherParenthesisNorTypeScriptSyntax(e.Right)
	n.Expr = v.helpers.call(helperPrivateIn, prop.storage.CreateReadExpression(v.ctx), e.Right).Expr
}
