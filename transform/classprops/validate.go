package classprops

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/diagnostic"
)

func declaredPrivateNames(class *ast.ClassLiteral) map[string]struct{} {
	names := make(map[string]struct{})
	for _, el := range class.Body {
		var key *ast.Expression
		switch e := el.Element.(type) {
		case *ast.FieldDefinition:
			key = e.Key
		case *ast.MethodDefinition:
			key = e.Key
		default:
			continue
		}
		if id := privateKey(key); id != nil {
			names[id.Name] = struct{}{}
		}
	}
	return names
}

type privateScope struct {
	class *ast.ClassLiteral
	names map[string]struct{}
}

// privateNameScanner reports #name references that no enclosing class
// declares. The innermost class containing such a reference is marked
// invalid and is not lowered.
type privateNameScanner struct {
	ast.NoopVisitor

	diags   *diagnostic.Diagnostics
	scopes  []privateScope
	invalid map[*ast.ClassLiteral]bool
}

func scanPrivateNames(n ast.VisitableNode, diags *diagnostic.Diagnostics, invalid map[*ast.ClassLiteral]bool) {
	s := &privateNameScanner{diags: diags, invalid: invalid}
	s.V = s
	n.VisitWith(s)
}

func (s *privateNameScanner) VisitClassLiteral(n *ast.ClassLiteral) {
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(s)
	}
	s.scopes = append(s.scopes, privateScope{class: n, names: declaredPrivateNames(n)})
	n.Body.VisitWith(s)
	s.scopes = s.scopes[:len(s.scopes)-1]
}

func (s *privateNameScanner) VisitPrivateDotExpression(n *ast.PrivateDotExpression) {
	n.Left.VisitWith(s)
	s.check(n.Identifier)
}

func (s *privateNameScanner) VisitPrivateInExpression(n *ast.PrivateInExpression) {
	s.check(n.Left)
	n.Right.VisitWith(s)
}

func (s *privateNameScanner) check(id *ast.PrivateIdentifier) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if _, ok := s.scopes[i].names[id.Name]; ok {
			return
		}
	}

	msg := fmt.Sprintf("Private field '#%s' must be declared in an enclosing class", id.Name)
	if len(s.scopes) == 0 {
		s.diags.Errorf(id.Idx, "%s", msg)
		return
	}
	inner := s.scopes[len(s.scopes)-1]
	s.invalid[inner.class] = true

	if len(inner.names) == 0 {
		s.diags.Errorf(id.Idx, "%s", msg)
		return
	}
	declared := maps.Keys(inner.names)
	slices.Sort(declared)
	for i := range declared {
		declared[i] = "#" + declared[i]
	}
	s.diags.ErrorWithHint(id.Idx, msg, "the class declares "+strings.Join(declared, ", "))
}
