package ext

import (
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/token"
)

// knownGlobals are unresolved names that can be read without throwing.
var knownGlobals = []string{"Infinity", "NaN", "Math", "undefined",
	"Object", "Array", "Promise", "Boolean", "Number", "String", "Symbol",
	"BigInt", "Error", "RegExp", "Function", "Reflect", "WeakMap", "WeakSet", "TypeError"}

// IsGlobalRefTo returns true if expr is an unresolved reference to id.
func IsGlobalRefTo(expr *ast.Expression, id string) bool {
	if ident, ok := expr.Expr.(*ast.Identifier); ok {
		return ident.Name == id && ident.ScopeContext == resolver.UnresolvedMark
	}
	return false
}

// IsLiteral returns true if expr is a primitive literal: a string, number,
// boolean, null, a negated number or `void 0`.
func IsLiteral(expr *ast.Expression) bool {
	switch e := expr.Expr.(type) {
	case *ast.StringLiteral, *ast.NumberLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return true
	case *ast.UnaryExpression:
		switch e.Operator {
		case token.Minus:
			_, ok := e.Operand.Expr.(*ast.NumberLiteral)
			return ok
		case token.Void:
			return IsLiteral(e.Operand)
		}
	}
	return false
}

// PropName returns the static name of a property key, if it has one.
func PropName(key *ast.Expression, computed bool) (string, bool) {
	switch k := key.Expr.(type) {
	case *ast.StringLiteral:
		return k.Value, true
	case *ast.NumberLiteral:
		return strconv.FormatFloat(k.Value, 'f', -1, 64), true
	case *ast.Identifier:
		if !computed {
			return k.Name, true
		}
	}
	return "", false
}

// PropNameEq returns true if the property name of the expression is equal to key.
func PropNameEq(p *ast.Expression, computed bool, key string) bool {
	name, ok := PropName(p, computed)
	return ok && name == key
}

// IsPureCallee returns true if the expression is a pure function.
func IsPureCallee(expr *ast.Expression) bool {
	if IsGlobalRefTo(expr, "Date") {
		return true
	}
	switch e := expr.Expr.(type) {
	case *ast.MemberExpression:
		if IsGlobalRefTo(e.Object, "Math") {
			return true
		}
		// Some methods of string are pure
		if _, ok := e.Object.Expr.(*ast.StringLiteral); !ok {
			return false
		}
		if strLit, ok := e.Property.Expr.(*ast.StringLiteral); ok {
			if slices.Contains([]string{"charAt", "charCodeAt", "concat", "endsWith",
				"includes", "indexOf", "lastIndexOf", "localeCompare", "slice", "split",
				"startsWith", "substr", "substring", "toLocaleLowerCase", "toLocaleUpperCase",
				"toLowerCase", "toString", "toUpperCase", "trim", "trimEnd", "trimStart"}, strLit.Value) {
				return true
			}
		}
	case *ast.FunctionLiteral:
		if e.ParameterList.Rest == nil && !slices.ContainsFunc(e.ParameterList.List, func(decl ast.VariableDeclarator) bool {
			return decl.Initializer != nil
		}) && len(e.Body.List) == 0 {
			return true
		}
	}
	return false
}

// MayHaveSideEffects returns true if the expression may have side effects.
func MayHaveSideEffects(expr *ast.Expression) bool {
	if IsPureCallee(expr) {
		return false
	}
	switch e := expr.Expr.(type) {
	case *ast.Identifier:
		if e.ScopeContext == resolver.UnresolvedMark && !slices.Contains(knownGlobals, e.Name) {
			return true
		}
		return false
	case *ast.StringLiteral, *ast.NumberLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.ThisExpression:
		return false
	// Function expression does not have any side effect if it's not used.
	case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral:
		return false
	case *ast.ClassLiteral:
		return classHasSideEffect(e)
	case *ast.ArrayLiteral:
		for i := range e.Value {
			if e.Value[i].Expr != nil && MayHaveSideEffects(&e.Value[i]) {
				return true
			}
		}
		return false
	case *ast.UnaryExpression:
		if e.Operator == token.Delete {
			return true
		}
		return MayHaveSideEffects(e.Operand)
	case *ast.BinaryExpression:
		return MayHaveSideEffects(e.Left) || MayHaveSideEffects(e.Right)
	case *ast.MemberExpression:
		switch obj := e.Object.Expr.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral, *ast.ArrowFunctionLiteral, *ast.ClassLiteral:
			if MayHaveSideEffects(e.Object) {
				return true
			}
			switch obj := obj.(type) {
			case *ast.ClassLiteral:
				for _, elem := range obj.Body {
					if elem, ok := elem.Element.(*ast.MethodDefinition); ok && elem.Static {
						if elem.Kind == ast.PropertyKindGet || elem.Kind == ast.PropertyKindSet {
							return true
						}
					}
				}
				return false
			case *ast.ObjectLiteral:
				for _, prop := range obj.Value {
					switch p := prop.Prop.(type) {
					case *ast.SpreadElement:
						return true
					case *ast.PropertyShort:
						if p.Name.Name == "__proto__" {
							return true
						}
					case *ast.PropertyKeyed:
						if PropNameEq(p.Key, p.Computed, "__proto__") || p.Computed {
							return true
						}
					}
				}
				return false
			}

			if _, ok := e.Property.Expr.(*ast.StringLiteral); ok {
				return false
			}
			return MayHaveSideEffects(e.Property)
		}
	case *ast.AwaitExpression, *ast.YieldExpression, *ast.SuperExpression, *ast.UpdateExpression, *ast.AssignExpression:
	case *ast.PrivateDotExpression, *ast.PrivateInExpression, *ast.NewExpression, *ast.SpreadElement:
	case *ast.CallExpression:
		if IsPureCallee(e.Callee) {
			for i := range e.ArgumentList {
				if MayHaveSideEffects(&e.ArgumentList[i]) {
					return true
				}
			}
			return false
		}
	case *ast.SequenceExpression:
		for i := range e.Sequence {
			if MayHaveSideEffects(&e.Sequence[i]) {
				return true
			}
		}
		return false
	case *ast.ConditionalExpression:
		return MayHaveSideEffects(e.Test) || MayHaveSideEffects(e.Consequent) || MayHaveSideEffects(e.Alternate)
	case *ast.ObjectLiteral:
		for _, prop := range e.Value {
			switch p := prop.Prop.(type) {
			case *ast.SpreadElement:
				return true
			case *ast.PropertyShort:
				if MayHaveSideEffects(&ast.Expression{Expr: p.Name}) {
					return true
				}
			case *ast.PropertyKeyed:
				if p.Computed && MayHaveSideEffects(p.Key) {
					return true
				}
				if MayHaveSideEffects(p.Value) {
					return true
				}
			}
		}
		return false
	case *ast.ParenthesizedExpression:
		return MayHaveSideEffects(e.Expression)
	case *ast.TSAsExpression:
		return MayHaveSideEffects(e.Expression)
	case *ast.TSSatisfiesExpression:
		return MayHaveSideEffects(e.Expression)
	}
	return true
}

// classHasSideEffect returns true if evaluating the class may have side effects.
func classHasSideEffect(class *ast.ClassLiteral) bool {
	if class.SuperClass != nil {
		if MayHaveSideEffects(class.SuperClass) {
			return true
		}
	}
	for _, elem := range class.Body {
		switch el := elem.Element.(type) {
		case *ast.MethodDefinition:
			if el.Computed && MayHaveSideEffects(el.Key) {
				return true
			}
		case *ast.FieldDefinition:
			if el.Computed && MayHaveSideEffects(el.Key) {
				return true
			}
			if el.Static && el.Initializer != nil && MayHaveSideEffects(el.Initializer) {
				return true
			}
		case *ast.ClassStaticBlock:
			if slices.ContainsFunc(el.Block.List, MayHaveSideEffectsStmt) {
				return true
			}
		}
	}
	return false
}
