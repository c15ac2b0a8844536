package utils

import "github.com/t14raptor/go-lower/ast"

// Renamer points every identifier bound to a key of To at the binding it
// maps to.
type Renamer struct {
	ast.NoopVisitor
	To map[ast.Id]ast.Id

	renamed int
}

func (v *Renamer) VisitIdentifier(n *ast.Identifier) {
	if to, ok := v.To[n.ToId()]; ok {
		n.Name = to.Name
		n.ScopeContext = to.ScopeContext
		v.renamed++
	}
}

// Rename rewrites the identifiers of n according to to and returns how many
// it changed. Callers record the new references themselves.
func Rename(n ast.VisitableNode, to map[ast.Id]ast.Id) int {
	if len(to) == 0 {
		return 0
	}
	v := &Renamer{To: to}
	v.V = v
	n.VisitWith(v)
	return v.renamed
}
