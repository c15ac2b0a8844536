package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier `optional:"true"`
		ParameterList *ParameterList
		Body          *BlockStatement

		Async, Generator bool

		ScopeContext ScopeContext
	}

	ParameterList struct {
		Opening Idx
		List    VariableDeclarators
		Rest    *BindingTarget `optional:"true"`
		Closing Idx
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList *ParameterList
		Body          *ConciseBody
		Async         bool

		ScopeContext ScopeContext
	}

	// ConciseBody is either a *BlockStatement or an *Expression.
	ConciseBody struct {
		Body Body
	}

	Body interface {
		VisitableNode
		_conciseBody()
	}
)

func (*FunctionLiteral) _expr()      {}
func (*ArrowFunctionLiteral) _expr() {}

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}
