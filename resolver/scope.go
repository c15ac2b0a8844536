package resolver

import "github.com/t14raptor/go-lower/ast"

type DeclKind int

const (
	DeclKindVar DeclKind = iota
	DeclKindFunction
	DeclKindLexical
	DeclKindClass
	DeclKindParam
)

// Hoisted reports whether bindings of this kind belong to the nearest
// function scope rather than the enclosing block.
func (k DeclKind) Hoisted() bool {
	return k == DeclKindVar
}

type ScopeKind int

const (
	ScopeKindBlock ScopeKind = iota
	ScopeKindFunction
	ScopeKindClass
)

type Scope struct {
	parent *Scope

	kind ScopeKind

	ctx ast.ScopeContext

	declaredSymbols map[string]DeclKind
}

func (s *Scope) Parent() *Scope            { return s.parent }
func (s *Scope) Kind() ScopeKind           { return s.kind }
func (s *Scope) Context() ast.ScopeContext { return s.ctx }

// Declares reports whether name is bound directly in s.
func (s *Scope) Declares(name string) bool {
	_, ok := s.declaredSymbols[name]
	return ok
}

// lookup returns the scope that declares name, searching outwards.
func (s *Scope) lookup(name string) *Scope {
	for scope := s; scope != nil; scope = scope.parent {
		if _, exists := scope.declaredSymbols[name]; exists {
			return scope
		}
	}
	return nil
}

// varScope returns the nearest function scope, which owns `var` bindings.
// The program scope counts as a function scope.
func (s *Scope) varScope() *Scope {
	scope := s
	for scope.kind != ScopeKindFunction && scope.parent != nil {
		scope = scope.parent
	}
	return scope
}
