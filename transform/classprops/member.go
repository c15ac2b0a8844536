package classprops

import (
	"fmt"

	"github.com/t14raptor/go-lower/ast"
)

type memberKind int

const (
	memberPublicField memberKind = iota
	memberPrivateField
	memberPrivateMethod
	memberPrivateGetter
	memberPrivateSetter
	memberStaticBlock
	memberMethod
	memberConstructor
)

func (k memberKind) String() string {
	switch k {
	case memberPublicField:
		return "public field"
	case memberPrivateField:
		return "private field"
	case memberPrivateMethod:
		return "private method"
	case memberPrivateGetter:
		return "private getter"
	case memberPrivateSetter:
		return "private setter"
	case memberStaticBlock:
		return "static block"
	case memberMethod:
		return "method"
	case memberConstructor:
		return "constructor"
	}
	return fmt.Sprintf("memberKind(%d)", int(k))
}

// isPrivate reports whether members of this kind are keyed by a #name.
func (k memberKind) isPrivate() bool {
	switch k {
	case memberPrivateField, memberPrivateMethod, memberPrivateGetter, memberPrivateSetter:
		return true
	}
	return false
}

// lowered reports whether members of this kind leave the class body.
func (k memberKind) lowered() bool {
	switch k {
	case memberMethod, memberConstructor:
		return false
	}
	return true
}

func classify(el ast.ClassElement) memberKind {
	switch e := el.Element.(type) {
	case *ast.FieldDefinition:
		if privateKey(e.Key) != nil {
			return memberPrivateField
		}
		return memberPublicField
	case *ast.MethodDefinition:
		if e.Kind == ast.PropertyKindConstructor {
			return memberConstructor
		}
		if privateKey(e.Key) == nil {
			return memberMethod
		}
		switch e.Kind {
		case ast.PropertyKindGet:
			return memberPrivateGetter
		case ast.PropertyKindSet:
			return memberPrivateSetter
		}
		return memberPrivateMethod
	case *ast.ClassStaticBlock:
		return memberStaticBlock
	}
	panic(fmt.Sprintf("classprops: unexpected class element %T", el.Element))
}

func privateKey(key *ast.Expression) *ast.PrivateIdentifier {
	if id, ok := key.Expr.(*ast.PrivateIdentifier); ok {
		return id
	}
	return nil
}

func isStatic(el ast.ClassElement) bool {
	switch e := el.Element.(type) {
	case *ast.FieldDefinition:
		return e.Static
	case *ast.MethodDefinition:
		return e.Static
	case *ast.ClassStaticBlock:
		return true
	}
	return false
}

// needsLowering reports whether class uses anything the output target
// lacks.
func needsLowering(class *ast.ClassLiteral) bool {
	for _, el := range class.Body {
		if classify(el).lowered() {
			return true
		}
	}
	return false
}
