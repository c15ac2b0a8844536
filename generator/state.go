package generator

import (
	"strings"

	"github.com/t14raptor/go-lower/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int

	// level is the precedence of the surrounding context. An expression
	// that binds looser than level is wrapped in parentheses.
	level level
}

func (s *state) wrap(node ast.Node) *state {
	return s.wrapAt(node, lLowest)
}

func (s *state) wrapAt(node ast.Node, l level) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		level:  l,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

// parens opens a parenthesis when cond holds and returns the func that
// closes it.
func (s *state) parens(cond bool) func() {
	if !cond {
		return func() {}
	}
	s.out.WriteString("(")
	return func() { s.out.WriteString(")") }
}

type level int

const (
	lLowest level = iota
	lComma
	lSpread
	lYield
	lAssign
	lConditional
	lNullishCoalescing
	lLogicalOr
	lLogicalAnd
	lBitwiseOr
	lBitwiseXor
	lBitwiseAnd
	lEquals
	lCompare
	lShift
	lAdd
	lMultiply
	lExponentiation
	lPrefix
	lPostfix
	lNew
	lCall
	lMember
)
