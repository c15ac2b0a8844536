package ast

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitProgram(n *Program)
	VisitBindingTarget(n *BindingTarget)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitParameterList(n *ParameterList)
	VisitConciseBody(n *ConciseBody)
	VisitProperty(n *Property)
	VisitClassElement(n *ClassElement)
	VisitIdentifier(n *Identifier)
	VisitPrivateIdentifier(n *PrivateIdentifier)
	VisitThisExpression(n *ThisExpression)
	VisitSuperExpression(n *SuperExpression)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitArrayPattern(n *ArrayPattern)
	VisitObjectPattern(n *ObjectPattern)
	VisitAssignExpression(n *AssignExpression)
	VisitAwaitExpression(n *AwaitExpression)
	VisitYieldExpression(n *YieldExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitCallExpression(n *CallExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitPrivateDotExpression(n *PrivateDotExpression)
	VisitPrivateInExpression(n *PrivateInExpression)
	VisitNewExpression(n *NewExpression)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitSequenceExpression(n *SequenceExpression)
	VisitSpreadElement(n *SpreadElement)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitParenthesizedExpression(n *ParenthesizedExpression)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral)
	VisitClassLiteral(n *ClassLiteral)
	VisitFieldDefinition(n *FieldDefinition)
	VisitMethodDefinition(n *MethodDefinition)
	VisitClassStaticBlock(n *ClassStaticBlock)
	VisitPropertyKeyed(n *PropertyKeyed)
	VisitPropertyShort(n *PropertyShort)
	VisitTSAsExpression(n *TSAsExpression)
	VisitTSSatisfiesExpression(n *TSSatisfiesExpression)
	VisitTSNonNullExpression(n *TSNonNullExpression)
	VisitBlockStatement(n *BlockStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitReturnStatement(n *ReturnStatement)
	VisitIfStatement(n *IfStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitExpression(n *Expression)
	VisitStatement(n *Statement)
	VisitStatements(n *Statements)
	VisitExpressions(n *Expressions)
	VisitVariableDeclarators(n *VariableDeclarators)
	VisitProperties(n *Properties)
	VisitClassElements(n *ClassElements)
}

// NoopVisitor walks the whole tree without doing anything. Embed it and set
// V to the embedding visitor so that overridden methods are dispatched:
//
//	v := &myVisitor{}
//	v.V = v
//	program.VisitWith(v)
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBindingTarget(n *BindingTarget) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParameterList(n *ParameterList) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConciseBody(n *ConciseBody) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(n *Property) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElement(n *ClassElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(n *Identifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateIdentifier(n *PrivateIdentifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSuperExpression(n *SuperExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayPattern(n *ArrayPattern) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectPattern(n *ObjectPattern) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAwaitExpression(n *AwaitExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitYieldExpression(n *YieldExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateDotExpression(n *PrivateDotExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateInExpression(n *PrivateInExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNewExpression(n *NewExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSpreadElement(n *SpreadElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParenthesizedExpression(n *ParenthesizedExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFieldDefinition(n *FieldDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMethodDefinition(n *MethodDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassStaticBlock(n *ClassStaticBlock) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTSAsExpression(n *TSAsExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTSSatisfiesExpression(n *TSSatisfiesExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTSNonNullExpression(n *TSNonNullExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassDeclaration(n *ClassDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarators(n *VariableDeclarators) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(n *Properties) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElements(n *ClassElements) { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *BindingTarget) VisitWith(v Visitor) { v.VisitBindingTarget(n) }
func (n *BindingTarget) VisitChildrenWith(v Visitor) {
	if n.Target != nil {
		n.Target.VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitVariableDeclarator(n) }
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *ParameterList) VisitWith(v Visitor) { v.VisitParameterList(n) }
func (n *ParameterList) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *ConciseBody) VisitWith(v Visitor) { v.VisitConciseBody(n) }
func (n *ConciseBody) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *Property) VisitWith(v Visitor) { v.VisitProperty(n) }
func (n *Property) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *ClassElement) VisitWith(v Visitor) { v.VisitClassElement(n) }
func (n *ClassElement) VisitChildrenWith(v Visitor) {
	if n.Element != nil {
		n.Element.VisitWith(v)
	}
}

func (n *Identifier) VisitWith(v Visitor) { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *PrivateIdentifier) VisitWith(v Visitor) { v.VisitPrivateIdentifier(n) }
func (n *PrivateIdentifier) VisitChildrenWith(v Visitor) {}

func (n *ThisExpression) VisitWith(v Visitor) { v.VisitThisExpression(n) }
func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *SuperExpression) VisitWith(v Visitor) { v.VisitSuperExpression(n) }
func (n *SuperExpression) VisitChildrenWith(v Visitor) {}

func (n *BooleanLiteral) VisitWith(v Visitor) { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *NullLiteral) VisitWith(v Visitor) { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor) { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor) { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *ArrayPattern) VisitWith(v Visitor) { v.VisitArrayPattern(n) }
func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	n.Elements.VisitWith(v)
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *ObjectPattern) VisitWith(v Visitor) { v.VisitObjectPattern(n) }
func (n *ObjectPattern) VisitChildrenWith(v Visitor) {
	n.Properties.VisitWith(v)
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *AwaitExpression) VisitWith(v Visitor) { v.VisitAwaitExpression(n) }
func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *YieldExpression) VisitWith(v Visitor) { v.VisitYieldExpression(n) }
func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *PrivateDotExpression) VisitWith(v Visitor) { v.VisitPrivateDotExpression(n) }
func (n *PrivateDotExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Identifier.VisitWith(v)
}

func (n *PrivateInExpression) VisitWith(v Visitor) { v.VisitPrivateInExpression(n) }
func (n *PrivateInExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }
func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }
func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *SpreadElement) VisitWith(v Visitor) { v.VisitSpreadElement(n) }
func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitWith(v Visitor) { v.VisitUpdateExpression(n) }
func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *ParenthesizedExpression) VisitWith(v Visitor) { v.VisitParenthesizedExpression(n) }
func (n *ParenthesizedExpression) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }
func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }
func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *FieldDefinition) VisitWith(v Visitor) { v.VisitFieldDefinition(n) }
func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *MethodDefinition) VisitWith(v Visitor) { v.VisitMethodDefinition(n) }
func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassStaticBlock) VisitWith(v Visitor) { v.VisitClassStaticBlock(n) }
func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}

func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }
func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *PropertyShort) VisitWith(v Visitor) { v.VisitPropertyShort(n) }
func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *TSAsExpression) VisitWith(v Visitor) { v.VisitTSAsExpression(n) }
func (n *TSAsExpression) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *TSSatisfiesExpression) VisitWith(v Visitor) { v.VisitTSSatisfiesExpression(n) }
func (n *TSSatisfiesExpression) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *TSNonNullExpression) VisitWith(v Visitor) { v.VisitTSNonNullExpression(n) }
func (n *TSNonNullExpression) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }
func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor) { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ClassDeclaration) VisitWith(v Visitor) { v.VisitClassDeclaration(n) }
func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *ThrowStatement) VisitWith(v Visitor) { v.VisitThrowStatement(n) }
func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }
func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }
func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitStatement(&(*n)[i])
	}
}

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitExpression(&(*n)[i])
	}
}

func (n *VariableDeclarators) VisitWith(v Visitor) { v.VisitVariableDeclarators(n) }
func (n *VariableDeclarators) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitVariableDeclarator(&(*n)[i])
	}
}

func (n *Properties) VisitWith(v Visitor) { v.VisitProperties(n) }
func (n *Properties) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitProperty(&(*n)[i])
	}
}

func (n *ClassElements) VisitWith(v Visitor) { v.VisitClassElements(n) }
func (n *ClassElements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitClassElement(&(*n)[i])
	}
}
