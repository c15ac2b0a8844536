package ast

type (
	// Literal holds the source text of a parsed literal. Synthesized
	// literals leave it empty and the printer formats Value instead.
	BooleanLiteral struct {
		Idx     Idx
		Literal string
		Value   bool
	}

	NullLiteral struct {
		Idx     Idx
		Literal string
	}

	NumberLiteral struct {
		Idx     Idx
		Literal string
		Value   float64
	}

	StringLiteral struct {
		Idx     Idx
		Literal string
		Value   string
	}
)

func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*NumberLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
