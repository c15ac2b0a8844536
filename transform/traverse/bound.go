package traverse

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/resolver"
)

// BoundIdentifier is a binding a transform created, together with its
// resolved identity. Every expression made from it is recorded in the
// symbol table with the matching reference flags.
type BoundIdentifier struct {
	Name   string
	Symbol ast.Id
}

func NewBoundIdentifier(id ast.Id) BoundIdentifier {
	return BoundIdentifier{Name: id.Name, Symbol: id}
}

// CreateBindingIdentifier creates the identifier at the declaration site.
// A declaration is not a reference.
func (b BoundIdentifier) CreateBindingIdentifier(c *Ctx) *ast.Identifier {
	return c.Builder.Identifier(b.Name, b.Symbol.ScopeContext)
}

func (b BoundIdentifier) CreateBindingTarget(c *Ctx) *ast.BindingTarget {
	return c.Builder.BindingIdentifier(b.CreateBindingIdentifier(c))
}

func (b BoundIdentifier) CreateReference(c *Ctx, flags resolver.ReferenceFlags) *ast.Identifier {
	return c.Reference(b.Symbol, flags)
}

func (b BoundIdentifier) CreateReadExpression(c *Ctx) *ast.Expression {
	return c.Builder.Expression(b.CreateReference(c, resolver.ReferenceFlagsRead))
}

func (b BoundIdentifier) CreateWriteExpression(c *Ctx) *ast.Expression {
	return c.Builder.Expression(b.CreateReference(c, resolver.ReferenceFlagsWrite))
}

func (b BoundIdentifier) CreateReadWriteExpression(c *Ctx) *ast.Expression {
	return c.Builder.Expression(b.CreateReference(c, resolver.ReferenceFlagsReadWrite))
}
