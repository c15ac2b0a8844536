package token

import (
	"strconv"
)

// Token is the set of operators and keywords the tree can carry.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator. Higher values
// bind tighter; 0 means t is not a binary operator. In is only an operator
// when in is set, mirroring the `for (a in b)` ambiguity.
func (t Token) Precedence(in bool) int {
	switch t {
	case Coalesce:
		return 1
	case LogicalOr:
		return 2
	case LogicalAnd:
		return 3
	case Or:
		return 4
	case ExclusiveOr:
		return 5
	case And:
		return 6
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 7
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 8
	case In:
		if in {
			return 8
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 9
	case Plus, Minus:
		return 10
	case Multiply, Slash, Remainder:
		return 11
	case Exponent:
		return 12
	}
	return 0
}

// IsLogical reports whether t short-circuits.
func (t Token) IsLogical() bool {
	return t == LogicalAnd || t == LogicalOr || t == Coalesce
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
	strict        bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword token. If the literal is a future keyword
// (const, let, class, super, ...), or 0 if the literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword, k.strict
		}
		return k.token, false
	}
	return 0, false
}

// IsReservedWord reports whether name can never be used as a binding name
// in strict mode code.
func IsReservedWord(name string) bool {
	switch name {
	case "arguments", "eval", "undefined", "NaN", "Infinity":
		return true
	}
	_, exists := keywordTable[name]
	return exists
}
