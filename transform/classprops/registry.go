package classprops

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
	"github.com/t14raptor/go-lower/transform/traverse"
)

// privateProp is what a #name of a class lowers to. Fields are stored in
// their own WeakMap; methods and accessors share the brand WeakSet of the
// class and live in moved-out functions.
type privateProp struct {
	name   string
	kind   memberKind
	static bool

	storage traverse.BoundIdentifier
	method  traverse.BoundIdentifier
	getter  *traverse.BoundIdentifier
	setter  *traverse.BoundIdentifier
}

func (p *privateProp) isField() bool { return p.kind == memberPrivateField }

func (p *privateProp) isAccessor() bool { return p.getter != nil || p.setter != nil }

// privateRegistry holds the private names one class declares while its
// body is walked.
type privateRegistry struct {
	class *ast.ClassLiteral
	props map[string]*privateProp

	// brands are indexed by staticness.
	brands [2]*traverse.BoundIdentifier

	// storage lists the WeakMaps and WeakSets to create, in the order
	// their members appear.
	storage []storageDecl

	invalid bool
}

type storageDecl struct {
	binding traverse.BoundIdentifier
	weakSet bool
}

type privateSlot struct {
	name   string
	kind   memberKind
	static bool
	idx    ast.Idx
}

type duplicateNameError struct {
	name string
	idx  ast.Idx
}

func (e *duplicateNameError) Error() string {
	return fmt.Sprintf("Identifier '#%s' has already been declared", e.name)
}

// privateSlots lists the private members of class in source order. A name
// may appear twice only as one getter and one setter with the same
// staticness.
func privateSlots(class *ast.ClassLiteral) ([]privateSlot, error) {
	var members []ast.ClassElement
	for _, el := range class.Body {
		if classify(el).isPrivate() {
			members = append(members, el)
		}
	}

	next := 0
	seen := make(map[string]privateSlot, len(members))
	paired := make(map[string]bool)
	return tryCreateArray(len(members), func() (privateSlot, error) {
		el := members[next]
		next++

		var key *ast.Expression
		switch e := el.Element.(type) {
		case *ast.FieldDefinition:
			key = e.Key
		case *ast.MethodDefinition:
			key = e.Key
		}
		id := privateKey(key)
		slot := privateSlot{name: id.Name, kind: classify(el), static: isStatic(el), idx: id.Idx}

		if prev, ok := seen[slot.name]; ok {
			if paired[slot.name] || !isAccessorPair(prev, slot) {
				return privateSlot{}, &duplicateNameError{name: slot.name, idx: slot.idx}
			}
			paired[slot.name] = true
		}
		seen[slot.name] = slot
		return slot, nil
	})
}

func isAccessorPair(a, b privateSlot) bool {
	if a.static != b.static {
		return false
	}
	return a.kind == memberPrivateGetter && b.kind == memberPrivateSetter ||
		a.kind == memberPrivateSetter && b.kind == memberPrivateGetter
}

// pushRegistry declares the private names of class. Bindings for storage,
// brands and moved methods are allocated here so that accesses can be
// rewritten while the body is walked.
func (v *classProperties) pushRegistry(class *ast.ClassLiteral, isDecl bool) *privateRegistry {
	reg := &privateRegistry{class: class, props: make(map[string]*privateProp)}
	v.registries = append(v.registries, reg)

	if v.invalid[class] {
		reg.invalid = true
		return reg
	}
	slots, err := privateSlots(class)
	if err != nil {
		var dup *duplicateNameError
		if errors.As(err, &dup) {
			v.ctx.Diagnostics.Errorf(dup.idx, "%s", dup.Error())
		}
		reg.invalid = true
		return reg
	}

	className := ""
	if class.Name != nil {
		className = class.Name.Name
	}
	for _, slot := range slots {
		prop, ok := reg.props[slot.name]
		if !ok {
			prop = &privateProp{name: slot.name, kind: slot.kind, static: slot.static}
			reg.props[slot.name] = prop
		}
		switch slot.kind {
		case memberPrivateField:
			if !ok {
				prop.storage = v.newBinding(slot.name, resolver.DeclKindVar, isDecl)
				reg.storage = append(reg.storage, storageDecl{binding: prop.storage})
			}
			continue
		case memberPrivateMethod:
			prop.method = v.newBinding(slot.name, resolver.DeclKindFunction, isDecl)
		case memberPrivateGetter:
			b := v.newBinding("get_"+slot.name, resolver.DeclKindFunction, isDecl)
			prop.getter = &b
		case memberPrivateSetter:
			b := v.newBinding("set_"+slot.name, resolver.DeclKindFunction, isDecl)
			prop.setter = &b
		}
		prop.storage = reg.brand(v, className, slot.static, isDecl)
	}
	return reg
}

func (r *privateRegistry) brand(v *classProperties, className string, static, isDecl bool) traverse.BoundIdentifier {
	i := 0
	if static {
		i = 1
	}
	if r.brands[i] == nil {
		base := "instances"
		if static {
			base = "static"
		}
		if className != "" {
			base = className + "_" + base
		}
		b := v.newBinding(base, resolver.DeclKindVar, isDecl)
		r.brands[i] = &b
		r.storage = append(r.storage, storageDecl{binding: b, weakSet: true})
	}
	return *r.brands[i]
}

func (v *classProperties) popRegistry() {
	v.registries = v.registries[:len(v.registries)-1]
}

// lookup finds the innermost class declaring name. Names of classes that
// are left as they are resolve to nil, so their accesses stay untouched.
func (v *classProperties) lookup(name string) *privateProp {
	for i := len(v.registries) - 1; i >= 0; i-- {
		reg := v.registries[i]
		if reg.invalid {
			if declaresPrivate(reg.class, name) {
				return nil
			}
			continue
		}
		if prop, ok := reg.props[name]; ok {
			return prop
		}
	}
	return nil
}

func declaresPrivate(class *ast.ClassLiteral, name string) bool {
	_, ok := declaredPrivateNames(class)[name]
	return ok
}

// newBinding allocates a binding that lives next to the class: a
// declaration in the enclosing scope for class declarations, a temporary
// for class expressions.
func (v *classProperties) newBinding(base string, kind resolver.DeclKind, isDecl bool) traverse.BoundIdentifier {
	if isDecl {
		return v.ctx.GenerateUidInCurrentScope(base, kind)
	}
	return v.ctx.GenerateTemp(base)
}
