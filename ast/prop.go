package ast

type PropertyKind string

const (
	PropertyKindValue       PropertyKind = "value"
	PropertyKindGet         PropertyKind = "get"
	PropertyKindSet         PropertyKind = "set"
	PropertyKindMethod      PropertyKind = "method"
	PropertyKindConstructor PropertyKind = "constructor"
)

type (
	Properties []Property

	Property struct {
		Prop Prop
	}

	Prop interface {
		VisitableNode
		_property()
	}

	PropertyShort struct {
		Name        *Identifier
		Initializer *Expression `optional:"true"`
	}

	PropertyKeyed struct {
		Key      *Expression
		Kind     PropertyKind
		Value    *Expression
		Computed bool
	}
)

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}
func (*SpreadElement) _property() {}
