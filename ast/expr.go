package ast

import "github.com/t14raptor/go-lower/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		VisitableNode
		_expr()
	}

	BindingTarget struct {
		Target
	}

	Target interface {
		Expr
		_bindingTarget()
	}

	YieldExpression struct {
		Yield    Idx
		Argument *Expression `optional:"true"`
		Delegate bool
	}

	AwaitExpression struct {
		Await    Idx
		Argument *Expression
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	// ArrayPattern is an array destructuring target. Holes are elements
	// with a nil Expr.
	ArrayPattern struct {
		LeftBracket  Idx
		RightBracket Idx
		Elements     Expressions
		Rest         *Expression `optional:"true"`
	}

	ObjectPattern struct {
		LeftBrace  Idx
		RightBrace Idx
		Properties Properties
		Rest       *Expression `optional:"true"`
	}

	// AssignExpression stores the binary operator of a compound assignment
	// in Operator, so `a += b` has Operator token.Plus. Plain assignment
	// uses token.Assign.
	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	// MemberExpression is `Object[Property]`. A StringLiteral property that
	// is a valid identifier name prints as `Object.name`.
	MemberExpression struct {
		Object   *Expression
		Property *Expression
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	// PrivateDotExpression is `Left.#name`.
	PrivateDotExpression struct {
		Left       *Expression
		Identifier *PrivateIdentifier
	}

	// PrivateInExpression is the brand check `#name in Right`.
	PrivateInExpression struct {
		Left  *PrivateIdentifier
		Right *Expression
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	SpreadElement struct {
		Expression *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	SuperExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // If a prefix operation
		Operand  *Expression
		Postfix  bool
	}

	// ParenthesizedExpression preserves source grouping. Lowering passes
	// expect it to be stripped beforehand.
	ParenthesizedExpression struct {
		LeftParenthesis  Idx
		Expression       *Expression
		RightParenthesis Idx
	}
)

func (*ArrayPattern) _bindingTarget()         {}
func (*ObjectPattern) _bindingTarget()        {}
func (*MemberExpression) _bindingTarget()     {}
func (*PrivateDotExpression) _bindingTarget() {}

func (*ArrayLiteral) _expr()            {}
func (*ArrayPattern) _expr()            {}
func (*ObjectPattern) _expr()           {}
func (*AssignExpression) _expr()        {}
func (*YieldExpression) _expr()         {}
func (*AwaitExpression) _expr()         {}
func (*BinaryExpression) _expr()        {}
func (*CallExpression) _expr()          {}
func (*ConditionalExpression) _expr()   {}
func (*MemberExpression) _expr()        {}
func (*PrivateDotExpression) _expr()    {}
func (*PrivateInExpression) _expr()     {}
func (*NewExpression) _expr()           {}
func (*ObjectLiteral) _expr()           {}
func (*SpreadElement) _expr()           {}
func (*SequenceExpression) _expr()      {}
func (*ThisExpression) _expr()          {}
func (*SuperExpression) _expr()         {}
func (*UnaryExpression) _expr()         {}
func (*UpdateExpression) _expr()        {}
func (*ParenthesizedExpression) _expr() {}
