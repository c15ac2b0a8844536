package ast

import "strconv"

type (
	// ScopeContext identifies the scope a binding was declared in. The
	// resolver assigns it; 0 means the identifier refers to a global.
	ScopeContext int

	// Id is the resolved identity of a binding: two identifiers with the
	// same Id refer to the same variable.
	Id struct {
		Name         string
		ScopeContext ScopeContext
	}

	Identifier struct {
		Idx          Idx
		Name         string
		ScopeContext ScopeContext
	}

	// PrivateIdentifier is a `#name` reference. Name does not include the
	// leading '#'.
	PrivateIdentifier struct {
		Idx  Idx
		Name string
	}
)

func (n *Identifier) ToId() Id {
	return Id{Name: n.Name, ScopeContext: n.ScopeContext}
}

func (id Id) String() string {
	return id.Name + "#" + strconv.Itoa(int(id.ScopeContext))
}

func (*Identifier) _expr()        {}
func (*PrivateIdentifier) _expr() {}

func (*Identifier) _bindingTarget() {}
