package ast

type (
	// TSAsExpression is `Expression as Type`. Types are opaque text; no
	// pass inspects them.
	TSAsExpression struct {
		Expression *Expression
		Type       string
	}

	// TSSatisfiesExpression is `Expression satisfies Type`.
	TSSatisfiesExpression struct {
		Expression *Expression
		Type       string
	}

	// TSNonNullExpression is `Expression!`.
	TSNonNullExpression struct {
		Expression *Expression
	}
)

func (*TSAsExpression) _expr()        {}
func (*TSSatisfiesExpression) _expr() {}
func (*TSNonNullExpression) _expr()   {}

// IsTypeScriptSyntax reports whether e only exists in TypeScript source
// and has no runtime meaning of its own.
func IsTypeScriptSyntax(e Expr) bool {
	switch e.(type) {
	case *TSAsExpression, *TSSatisfiesExpression, *TSNonNullExpression:
		return true
	}
	return false
}
