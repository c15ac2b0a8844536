package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

// Generate prints node as JavaScript source.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Expression:
		if n.Expr != nil {
			gen(s.wrapAt(n.Expr, s.level))
		}
	case *ast.Statement:
		gen(s.wrap(n.Stmt))
	case *ast.BindingTarget:
		gen(s.wrapAt(n.Target, s.level))

	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.PrivateIdentifier:
		s.out.WriteString("#" + n.Name)
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.SuperExpression:
		s.out.WriteString("super")
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.NumberLiteral:
		if n.Literal != "" {
			s.out.WriteString(n.Literal)
		} else {
			defer s.parens(n.Value < 0 && s.level >= lPrefix)()
			s.out.WriteString(formatNumber(n.Value))
		}
	case *ast.StringLiteral:
		if n.Literal != "" {
			s.out.WriteString(n.Literal)
		} else {
			s.out.WriteString(quote(n.Value))
		}

	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		genElements(s, n.Value)
		s.out.WriteString("]")
	case *ast.ArrayPattern:
		s.out.WriteString("[")
		genElements(s, n.Elements)
		if n.Rest != nil {
			if len(n.Elements) > 0 {
				s.out.WriteString(", ")
			}
			s.out.WriteString("...")
			gen(s.wrapAt(n.Rest, lComma))
		}
		s.out.WriteString("]")
	case *ast.ObjectLiteral:
		genProperties(s, n.Value, nil)
	case *ast.ObjectPattern:
		genProperties(s, n.Properties, n.Rest)
	case *ast.PropertyKeyed:
		switch n.Kind {
		case ast.PropertyKindGet, ast.PropertyKindSet:
			s.out.WriteString(string(n.Kind) + " ")
			genKey(s, n.Key, n.Computed)
			genFunctionTail(s, n.Value.Expr.(*ast.FunctionLiteral))
		case ast.PropertyKindMethod:
			genKey(s, n.Key, n.Computed)
			genFunctionTail(s, n.Value.Expr.(*ast.FunctionLiteral))
		default:
			genKey(s, n.Key, n.Computed)
			s.out.WriteString(": ")
			gen(s.wrapAt(n.Value, lComma))
		}
	case *ast.PropertyShort:
		gen(s.wrap(n.Name))
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrapAt(n.Initializer, lComma))
		}
	case *ast.SpreadElement:
		s.out.WriteString("...")
		gen(s.wrapAt(n.Expression, lComma))

	case *ast.AssignExpression:
		defer s.parens(s.level >= lAssign)()
		gen(s.wrapAt(n.Left, lAssign))
		s.out.WriteString(" ")
		if n.Operator != token.Assign {
			s.out.WriteString(n.Operator.String())
		}
		s.out.WriteString("= ")
		gen(s.wrapAt(n.Right, lAssign-1))
	case *ast.ConditionalExpression:
		defer s.parens(s.level >= lConditional)()
		gen(s.wrapAt(n.Test, lConditional))
		s.out.WriteString(" ? ")
		gen(s.wrapAt(n.Consequent, lYield))
		s.out.WriteString(" : ")
		gen(s.wrapAt(n.Alternate, lYield))
	case *ast.BinaryExpression:
		l := binaryLevel(n.Operator)
		defer s.parens(s.level >= l)()
		left, right := l-1, l
		if n.Operator == token.Exponent {
			left, right = l, l-1
		}
		gen(s.wrapAt(n.Left, left))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrapAt(n.Right, right))
	case *ast.PrivateInExpression:
		defer s.parens(s.level >= lCompare)()
		gen(s.wrap(n.Left))
		s.out.WriteString(" in ")
		gen(s.wrapAt(n.Right, lCompare))
	case *ast.UnaryExpression:
		defer s.parens(s.level >= lPrefix)()
		op := n.Operator.String()
		s.out.WriteString(op)
		if len(op) > 1 || startsWithOperator(n.Operand, op) {
			s.out.WriteString(" ")
		}
		gen(s.wrapAt(n.Operand, lPrefix-1))
	case *ast.UpdateExpression:
		if n.Postfix {
			defer s.parens(s.level >= lPostfix)()
			gen(s.wrapAt(n.Operand, lPostfix-1))
			s.out.WriteString(n.Operator.String())
		} else {
			defer s.parens(s.level >= lPrefix)()
			s.out.WriteString(n.Operator.String())
			gen(s.wrapAt(n.Operand, lPrefix-1))
		}
	case *ast.AwaitExpression:
		defer s.parens(s.level >= lPrefix)()
		s.out.WriteString("await ")
		gen(s.wrapAt(n.Argument, lPrefix-1))
	case *ast.YieldExpression:
		defer s.parens(s.level >= lAssign)()
		s.out.WriteString("yield")
		if n.Delegate {
			s.out.WriteString("*")
		}
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrapAt(n.Argument, lYield))
		}
	case *ast.SequenceExpression:
		defer s.parens(s.level >= lComma)()
		for i := range n.Sequence {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrapAt(&n.Sequence[i], lComma))
		}
	case *ast.CallExpression:
		defer s.parens(s.level >= lNew)()
		gen(s.wrapAt(n.Callee, lPostfix))
		genArguments(s, n.ArgumentList)
	case *ast.NewExpression:
		defer s.parens(s.level >= lCall)()
		s.out.WriteString("new ")
		gen(s.wrapAt(n.Callee, lNew))
		genArguments(s, n.ArgumentList)
	case *ast.MemberExpression:
		gen(s.wrapAt(n.Object, lPostfix))
		if st, ok := n.Property.Expr.(*ast.StringLiteral); ok && token.IsIdentifierName(st.Value) {
			s.out.WriteString(".")
			s.out.WriteString(st.Value)
		} else {
			s.out.WriteString("[")
			gen(s.wrap(n.Property))
			s.out.WriteString("]")
		}
	case *ast.PrivateDotExpression:
		gen(s.wrapAt(n.Left, lPostfix))
		s.out.WriteString(".")
		gen(s.wrap(n.Identifier))
	case *ast.ParenthesizedExpression:
		s.out.WriteString("(")
		gen(s.wrap(n.Expression))
		s.out.WriteString(")")
	case *ast.TSAsExpression:
		defer s.parens(s.level >= lCompare)()
		gen(s.wrapAt(n.Expression, lCompare-1))
		s.out.WriteString(" as " + n.Type)
	case *ast.TSSatisfiesExpression:
		defer s.parens(s.level >= lCompare)()
		gen(s.wrapAt(n.Expression, lCompare-1))
		s.out.WriteString(" satisfies " + n.Type)
	case *ast.TSNonNullExpression:
		gen(s.wrapAt(n.Expression, lPostfix))
		s.out.WriteString("!")

	case *ast.FunctionLiteral:
		defer s.parens(s.level >= lPostfix)()
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("function")
		if n.Generator {
			s.out.WriteString("*")
		}
		if n.Name != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Name))
		}
		genFunctionTail(s, n)
	case *ast.ArrowFunctionLiteral:
		defer s.parens(s.level >= lAssign)()
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("(")
		gen(s.wrap(n.ParameterList))
		s.out.WriteString(") => ")
		switch body := n.Body.Body.(type) {
		case *ast.BlockStatement:
			gen(s.wrap(body))
		case *ast.Expression:
			if _, ok := leftmost(body.Expr).(*ast.ObjectLiteral); ok {
				s.out.WriteString("(")
				gen(s.wrap(body))
				s.out.WriteString(")")
			} else {
				gen(s.wrapAt(body, lComma))
			}
		}
	case *ast.ParameterList:
		for i := range n.List {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(&n.List[i]))
		}
		if n.Rest != nil {
			if len(n.List) > 0 {
				s.out.WriteString(", ")
			}
			s.out.WriteString("...")
			gen(s.wrap(n.Rest))
		}

	case *ast.ClassLiteral:
		defer s.parens(s.level >= lPostfix)()
		s.out.WriteString("class")
		if n.Name != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Name))
		}
		if n.SuperClass != nil {
			s.out.WriteString(" extends ")
			gen(s.wrapAt(n.SuperClass, lNew))
		}
		s.out.WriteString(" {")
		if len(n.Body) == 0 {
			s.out.WriteString("}")
			return
		}
		s.indent++
		for _, el := range n.Body {
			s.lineAndPad()
			gen(s.wrap(el.Element))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.FieldDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		genKey(s, n.Key, n.Computed)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrapAt(n.Initializer, lComma))
		}
		s.out.WriteString(";")
	case *ast.MethodDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		if n.Body.Async {
			s.out.WriteString("async ")
		}
		if n.Body.Generator {
			s.out.WriteString("*")
		}
		switch n.Kind {
		case ast.PropertyKindGet, ast.PropertyKindSet:
			s.out.WriteString(string(n.Kind) + " ")
		}
		genKey(s, n.Key, n.Computed)
		genFunctionTail(s, n.Body)
	case *ast.ClassStaticBlock:
		s.out.WriteString("static ")
		gen(s.wrap(n.Block))

	case *ast.Program:
		for i := range n.Body {
			gen(s.wrap(&n.Body[i]))
			s.line()
		}
	case *ast.BlockStatement:
		s.out.WriteString("{")
		if len(n.List) == 0 {
			s.out.WriteString("}")
			return
		}
		s.indent++
		for i := range n.List {
			s.lineAndPad()
			gen(s.wrap(&n.List[i]))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		if startsAmbiguously(n.Expression.Expr) {
			s.out.WriteString("(")
			gen(s.wrap(n.Expression))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Expression))
		}
		s.out.WriteString(";")
	case *ast.VariableDeclaration:
		s.out.WriteString(n.Token.String())
		s.out.WriteString(" ")
		for i := range n.List {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(&n.List[i]))
		}
		s.out.WriteString(";")
	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrapAt(n.Initializer, lComma))
		}
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		gen(s.wrap(n.Class))
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument))
		}
		s.out.WriteString(";")
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		gen(s.wrap(n.Argument))
		s.out.WriteString(";")
	case *ast.IfStatement:
		s.out.WriteString("if (")
		gen(s.wrap(n.Test))
		s.out.WriteString(") ")
		gen(s.wrap(n.Consequent))
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			gen(s.wrap(n.Alternate))
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genFunctionTail(s *state, fn *ast.FunctionLiteral) {
	s.out.WriteString("(")
	gen(s.wrap(fn.ParameterList))
	s.out.WriteString(") ")
	gen(s.wrap(fn.Body))
}

func genKey(s *state, key *ast.Expression, computed bool) {
	if computed {
		s.out.WriteString("[")
		gen(s.wrapAt(key, lComma))
		s.out.WriteString("]")
		return
	}
	if st, ok := key.Expr.(*ast.StringLiteral); ok && token.IsIdentifierName(st.Value) {
		s.out.WriteString(st.Value)
		return
	}
	gen(s.wrap(key))
}

func genArguments(s *state, args ast.Expressions) {
	s.out.WriteString("(")
	for i := range args {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrapAt(&args[i], lComma))
	}
	s.out.WriteString(")")
}

func genElements(s *state, elems ast.Expressions) {
	for i := range elems {
		if i > 0 {
			s.out.WriteString(", ")
		}
		if elems[i].Expr != nil {
			gen(s.wrapAt(&elems[i], lComma))
		} else if i == len(elems)-1 {
			// A trailing hole needs its own comma.
			s.out.WriteString(",")
		}
	}
}

func genProperties(s *state, props ast.Properties, rest *ast.Expression) {
	if len(props) == 0 && rest == nil {
		s.out.WriteString("{}")
		return
	}
	s.out.WriteString("{")
	s.indent++
	for i := range props {
		s.lineAndPad()
		gen(s.wrap(props[i].Prop))
		if i < len(props)-1 || rest != nil {
			s.out.WriteString(",")
		}
	}
	if rest != nil {
		s.lineAndPad()
		s.out.WriteString("...")
		gen(s.wrapAt(rest, lComma))
	}
	s.indent--
	s.lineAndPad()
	s.out.WriteString("}")
}

func binaryLevel(op token.Token) level {
	return lNullishCoalescing - 1 + level(op.Precedence(true))
}

// leftmost returns the node printed first for e, ignoring nodes that
// print their own parentheses in that position.
func leftmost(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.CallExpression:
		return leftmostOperand(n.Callee)
	case *ast.MemberExpression:
		return leftmostOperand(n.Object)
	case *ast.PrivateDotExpression:
		return leftmostOperand(n.Left)
	case *ast.TSNonNullExpression:
		return leftmostOperand(n.Expression)
	case *ast.AssignExpression:
		return leftmost(n.Left.Expr)
	case *ast.BinaryExpression:
		return leftmost(n.Left.Expr)
	case *ast.ConditionalExpression:
		return leftmost(n.Test.Expr)
	case *ast.SequenceExpression:
		return leftmost(n.Sequence[0].Expr)
	case *ast.UpdateExpression:
		if n.Postfix {
			return leftmost(n.Operand.Expr)
		}
	case *ast.TSAsExpression:
		return leftmost(n.Expression.Expr)
	case *ast.TSSatisfiesExpression:
		return leftmost(n.Expression.Expr)
	}
	return e
}

// leftmostOperand handles operands printed at postfix level, where
// function and class literals are parenthesized already.
func leftmostOperand(e *ast.Expression) ast.Expr {
	switch e.Expr.(type) {
	case *ast.FunctionLiteral, *ast.ClassLiteral:
		return nil
	}
	return leftmost(e.Expr)
}

// startsAmbiguously reports whether an expression statement would be
// parsed as a declaration or a block.
func startsAmbiguously(e ast.Expr) bool {
	switch leftmost(e).(type) {
	case *ast.FunctionLiteral, *ast.ClassLiteral, *ast.ObjectLiteral, *ast.ObjectPattern:
		return true
	}
	return false
}

func startsWithOperator(e *ast.Expression, op string) bool {
	switch n := e.Expr.(type) {
	case *ast.UnaryExpression:
		return (op == "-" || op == "+") && n.Operator.String()[0] == op[0]
	case *ast.UpdateExpression:
		return !n.Postfix && (op == "-" || op == "+") && n.Operator.String()[0] == op[0]
	case *ast.NumberLiteral:
		return op == "-" && n.Value < 0
	}
	return false
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote renders s as a double quoted JS string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
