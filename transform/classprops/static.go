package classprops

import (
	"github.com/t14raptor/go-lower/ast"
)

// homeRewriter fixes code that leaves the class body. `super.x` loses
// its home object once moved, so it becomes an explicit Reflect.get on
// the prototype of the home. In static code `this` becomes the class.
//
// Nested non-arrow functions and class bodies have their own `this` and
// `super` and are skipped.
type homeRewriter struct {
	ast.NoopVisitor

	l      *lowering
	root   *ast.FunctionLiteral
	static bool
	// thisToClass is set for static initializers that run outside any
	// function.
	thisToClass bool
}

func (l *lowering) rewriteStatic(expr *ast.Expression) {
	r := &homeRewriter{l: l, static: true, thisToClass: true}
	r.V = r
	expr.VisitWith(r)
}

func (l *lowering) rewriteSuper(fn *ast.FunctionLiteral, static bool) {
	r := &homeRewriter{l: l, root: fn, static: static}
	r.V = r
	fn.VisitWith(r)
}

func (r *homeRewriter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	if n == r.root {
		n.VisitChildrenWith(r)
	}
}

func (r *homeRewriter) VisitClassLiteral(n *ast.ClassLiteral) {
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(r)
	}
	for _, el := range n.Body {
		switch e := el.Element.(type) {
		case *ast.FieldDefinition:
			if e.Computed {
				e.Key.VisitWith(r)
			}
		case *ast.MethodDefinition:
			if e.Computed {
				e.Key.VisitWith(r)
			}
		}
	}
}

func (r *homeRewriter) receiver() *ast.Expression {
	if r.thisToClass {
		return r.l.classRef()
	}
	return r.l.ctx.Builder.This()
}

// proto creates `Object.getPrototypeOf(home)`.
func (r *homeRewriter) proto() *ast.Expression {
	b := r.l.ctx.Builder
	home := r.l.classRef()
	if !r.static {
		home = b.Member(home, "prototype")
	}
	return b.Call(b.Member(r.l.ctx.Global("Object"), "getPrototypeOf"), home)
}

func superMember(e *ast.Expression) (*ast.MemberExpression, bool) {
	m, ok := e.Expr.(*ast.MemberExpression)
	if !ok {
		return nil, false
	}
	_, ok = m.Object.Expr.(*ast.SuperExpression)
	return m, ok
}

// get creates `Reflect.get(proto, key, receiver)`.
func (r *homeRewriter) get(m *ast.MemberExpression) *ast.Expression {
	b := r.l.ctx.Builder
	return b.Call(b.Member(r.l.ctx.Global("Reflect"), "get"), r.proto(), m.Property, r.receiver())
}

func (r *homeRewriter) VisitExpression(n *ast.Expression) {
	switch e := n.Expr.(type) {
	case *ast.ThisExpression:
		if r.thisToClass {
			n.Expr = r.l.classRef().Expr
		}
		return
	case *ast.MemberExpression:
		if _, ok := superMember(n); ok {
			e.Property.VisitWith(r)
			n.Expr = r.get(e).Expr
			return
		}
	case *ast.CallExpression:
		if m, ok := superMember(e.Callee); ok {
			m.Property.VisitWith(r)
			e.ArgumentList.VisitWith(r)
			b := r.l.ctx.Builder
			args := make([]*ast.Expression, 0, len(e.ArgumentList)+1)
			args = append(args, r.receiver())
			for i := range e.ArgumentList {
				args = append(args, &e.ArgumentList[i])
			}
			n.Expr = b.Call(b.Member(r.get(m), "call"), args...).Expr
			return
		}
	case *ast.AssignExpression:
		if _, ok := superMember(e.Left); ok {
			r.l.ctx.Diagnostics.Errorf(e.Left.Idx0(), "Assignment to a super property outside of the class body is not supported")
			return
		}
	case *ast.UpdateExpression:
		if _, ok := superMember(e.Operand); ok {
			r.l.ctx.Diagnostics.Errorf(e.Operand.Idx0(), "Assignment to a super property outside of the class body is not supported")
			return
		}
	}
	n.VisitChildrenWith(r)
}
