package ast

type (
	Statements []Statement

	Statement struct {
		Stmt `optional:"true"`
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		VisitableNode
		_stmt()
	}

	BlockStatement struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx

		ScopeContext ScopeContext
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement `optional:"true"`
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression `optional:"true"`
	}

	ThrowStatement struct {
		Throw    Idx
		Argument *Expression
	}
)

func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*ReturnStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
