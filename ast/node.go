package ast

// Idx is a compact encoding of a source position within JS code. Nodes
// synthesized by a transform carry the Idx of the node they replace, or 0.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type Program struct {
	Body Statements

	ScopeContext ScopeContext
}

func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}

func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}

func (n *ArrayLiteral) Idx0() Idx          { return n.LeftBracket }
func (n *ArrayPattern) Idx0() Idx          { return n.LeftBracket }
func (n *ObjectPattern) Idx0() Idx         { return n.LeftBrace }
func (n *ParameterList) Idx0() Idx         { return n.Opening }
func (n *YieldExpression) Idx0() Idx       { return n.Yield }
func (n *AwaitExpression) Idx0() Idx       { return n.Await }
func (n *AssignExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BinaryExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BooleanLiteral) Idx0() Idx        { return n.Idx }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (n *MemberExpression) Idx0() Idx      { return n.Object.Idx0() }
func (n *PrivateDotExpression) Idx0() Idx  { return n.Left.Idx0() }
func (n *PrivateInExpression) Idx0() Idx   { return n.Left.Idx0() }
func (n *FunctionLiteral) Idx0() Idx       { return n.Function }
func (n *ClassLiteral) Idx0() Idx          { return n.Class }
func (n *ArrowFunctionLiteral) Idx0() Idx  { return n.Start }
func (n *Identifier) Idx0() Idx            { return n.Idx }
func (n *PrivateIdentifier) Idx0() Idx     { return n.Idx }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *SpreadElement) Idx0() Idx         { return n.Expression.Idx0() }
func (n *ThisExpression) Idx0() Idx        { return n.Idx }
func (n *SuperExpression) Idx0() Idx       { return n.Idx }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *UpdateExpression) Idx0() Idx      { return n.Idx }
func (n *ParenthesizedExpression) Idx0() Idx {
	return n.LeftParenthesis
}
func (n *TSAsExpression) Idx0() Idx        { return n.Expression.Idx0() }
func (n *TSSatisfiesExpression) Idx0() Idx { return n.Expression.Idx0() }
func (n *TSNonNullExpression) Idx0() Idx   { return n.Expression.Idx0() }

func (n *ArrayLiteral) Idx1() Idx          { return n.RightBracket + 1 }
func (n *ArrayPattern) Idx1() Idx          { return n.RightBracket + 1 }
func (n *ObjectPattern) Idx1() Idx         { return n.RightBrace + 1 }
func (n *ParameterList) Idx1() Idx         { return n.Closing + 1 }
func (n *AssignExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *AwaitExpression) Idx1() Idx       { return n.Argument.Idx1() }
func (n *BinaryExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BooleanLiteral) Idx1() Idx        { return n.Idx + Idx(len(n.Literal)) }
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (n *MemberExpression) Idx1() Idx      { return n.Property.Idx1() }
func (n *PrivateDotExpression) Idx1() Idx  { return n.Identifier.Idx1() }
func (n *PrivateInExpression) Idx1() Idx   { return n.Right.Idx1() }
func (n *FunctionLiteral) Idx1() Idx       { return n.Body.Idx1() }
func (n *ClassLiteral) Idx1() Idx          { return n.RightBrace + 1 }
func (n *ArrowFunctionLiteral) Idx1() Idx  { return n.Body.Idx1() }
func (n *Identifier) Idx1() Idx            { return n.Idx + Idx(len(n.Name)) }
func (n *PrivateIdentifier) Idx1() Idx     { return n.Idx + Idx(len(n.Name)) + 1 }
func (n *NullLiteral) Idx1() Idx           { return n.Idx + 4 } // "null"
func (n *NumberLiteral) Idx1() Idx         { return n.Idx + Idx(len(n.Literal)) }
func (n *StringLiteral) Idx1() Idx         { return n.Idx + Idx(len(n.Literal)) }
func (n *ObjectLiteral) Idx1() Idx         { return n.RightBrace + 1 }
func (n *SequenceExpression) Idx1() Idx    { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *SpreadElement) Idx1() Idx         { return n.Expression.Idx1() }
func (n *ThisExpression) Idx1() Idx        { return n.Idx + 4 }
func (n *SuperExpression) Idx1() Idx       { return n.Idx + 5 }
func (n *UnaryExpression) Idx1() Idx       { return n.Operand.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Operand.Idx1() + 2 // x++ x--
	}
	return n.Operand.Idx1()
}
func (n *NewExpression) Idx1() Idx {
	if n.ArgumentList != nil {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}
func (n *YieldExpression) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Yield + 5
}
func (n *ParenthesizedExpression) Idx1() Idx {
	return n.RightParenthesis + 1
}
func (n *TSAsExpression) Idx1() Idx        { return n.Expression.Idx1() }
func (n *TSSatisfiesExpression) Idx1() Idx { return n.Expression.Idx1() }
func (n *TSNonNullExpression) Idx1() Idx   { return n.Expression.Idx1() + 1 }

func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *ThrowStatement) Idx0() Idx      { return n.Throw }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }
func (n *ClassDeclaration) Idx0() Idx    { return n.Class.Idx0() }
func (n *VariableDeclarator) Idx0() Idx  { return n.Target.Idx0() }

func (n *BlockStatement) Idx1() Idx      { return n.RightBrace + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *ThrowStatement) Idx1() Idx { return n.Argument.Idx1() }
func (n *VariableDeclaration) Idx1() Idx {
	if len(n.List) == 0 {
		return n.Idx
	}
	return n.List[len(n.List)-1].Idx1()
}
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (n *ClassDeclaration) Idx1() Idx    { return n.Class.Idx1() }
func (n *VariableDeclarator) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Target.Idx1()
}

func (n *PropertyShort) Idx0() Idx { return n.Name.Idx }
func (n *PropertyKeyed) Idx0() Idx { return n.Key.Idx0() }
func (n *PropertyShort) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Name.Idx1()
}
func (n *PropertyKeyed) Idx1() Idx { return n.Value.Idx1() }

func (n *FieldDefinition) Idx0() Idx  { return n.Idx }
func (n *MethodDefinition) Idx0() Idx { return n.Idx }
func (n *ClassStaticBlock) Idx0() Idx { return n.Static }
func (n *FieldDefinition) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Key.Idx1()
}
func (n *MethodDefinition) Idx1() Idx { return n.Body.Idx1() }
func (n *ClassStaticBlock) Idx1() Idx { return n.Block.Idx1() }

func (n *ConciseBody) Idx0() Idx { return n.Body.Idx0() }
func (n *ConciseBody) Idx1() Idx { return n.Body.Idx1() }

// Idx0 of an empty wrapper is 0 so that holes in array patterns are safe to
// ask for a position.
func (n *Expression) Idx0() Idx {
	if n == nil || n.Expr == nil {
		return 0
	}
	return n.Expr.Idx0()
}

func (n *Expression) Idx1() Idx {
	if n == nil || n.Expr == nil {
		return 0
	}
	return n.Expr.Idx1()
}

func (n *Statement) Idx0() Idx { return n.Stmt.Idx0() }
func (n *Statement) Idx1() Idx { return n.Stmt.Idx1() }

func (n *BindingTarget) Idx0() Idx { return n.Target.Idx0() }
func (n *BindingTarget) Idx1() Idx { return n.Target.Idx1() }
