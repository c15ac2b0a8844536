package ast

type (
	ClassLiteral struct {
		Class      Idx
		RightBrace Idx
		Name       *Identifier `optional:"true"`
		SuperClass *Expression `optional:"true"`
		Body       ClassElements

		ScopeContext ScopeContext
	}

	ClassElements []ClassElement

	ClassElement struct {
		Element
	}

	Element interface {
		VisitableNode
		_classElement()
	}

	// FieldDefinition is a class field. Key holds a *PrivateIdentifier
	// for `#name` fields and a *StringLiteral for other non-computed keys.
	FieldDefinition struct {
		Idx         Idx
		Key         *Expression
		Initializer *Expression `optional:"true"`
		Computed    bool
		Static      bool
	}

	MethodDefinition struct {
		Idx      Idx
		Key      *Expression
		Kind     PropertyKind // "method", "get", "set" or "constructor"
		Body     *FunctionLiteral
		Computed bool
		Static   bool
	}

	ClassStaticBlock struct {
		Static Idx
		Block  *BlockStatement
	}
)

func (*ClassLiteral) _expr() {}

func (*FieldDefinition) _classElement()  {}
func (*MethodDefinition) _classElement() {}
func (*ClassStaticBlock) _classElement() {}

// Constructor returns the constructor of the class, if it declares one.
func (n *ClassLiteral) Constructor() (*MethodDefinition, int) {
	for i, el := range n.Body {
		if m, ok := el.Element.(*MethodDefinition); ok && m.Kind == PropertyKindConstructor {
			return m, i
		}
	}
	return nil, -1
}
