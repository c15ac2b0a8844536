package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

// ReferenceFlags describe how a reference uses its binding.
type ReferenceFlags uint8

const (
	ReferenceFlagsRead ReferenceFlags = 1 << iota
	ReferenceFlagsWrite

	ReferenceFlagsReadWrite = ReferenceFlagsRead | ReferenceFlagsWrite
)

func (f ReferenceFlags) IsRead() bool  { return f&ReferenceFlagsRead != 0 }
func (f ReferenceFlags) IsWrite() bool { return f&ReferenceFlagsWrite != 0 }

func (f ReferenceFlags) String() string {
	switch f {
	case ReferenceFlagsRead:
		return "Read"
	case ReferenceFlagsWrite:
		return "Write"
	case ReferenceFlagsReadWrite:
		return "ReadWrite"
	}
	return "ReferenceFlags(" + strconv.Itoa(int(f)) + ")"
}

// Symbol is one binding and the usage recorded against it.
type Symbol struct {
	Id    ast.Id
	Kind  DeclKind
	Scope *Scope

	Reads  int
	Writes int

	// Generated is set for bindings a transform introduced.
	Generated bool
}

// Scoping is the scope tree and symbol table of one program. The resolver
// fills it; transforms extend it with the bindings and references they
// synthesize so that later passes see accurate usage counts.
type Scoping struct {
	scopes     map[ast.ScopeContext]*Scope
	symbols    map[ast.Id]*Symbol
	unresolved map[string]int

	// names holds every name that is declared, referenced or generated
	// anywhere in the program. Generated uids avoid all of them.
	names map[string]struct{}

	nextCtxt ast.ScopeContext
}

func NewScoping() *Scoping {
	return &Scoping{
		scopes:     make(map[ast.ScopeContext]*Scope),
		symbols:    make(map[ast.Id]*Symbol),
		unresolved: make(map[string]int),
		names:      make(map[string]struct{}),
		nextCtxt:   TopLevelMark,
	}
}

// NewScope creates a scope below parent. Pass UnresolvedMark as parent for
// the program scope.
func (s *Scoping) NewScope(parent ast.ScopeContext, kind ScopeKind) ast.ScopeContext {
	ctx := s.nextCtxt
	s.nextCtxt++

	s.scopes[ctx] = &Scope{
		parent:          s.scopes[parent],
		kind:            kind,
		ctx:             ctx,
		declaredSymbols: make(map[string]DeclKind),
	}
	return ctx
}

// Scope returns the scope for ctx, or nil if ctx is unknown.
func (s *Scoping) Scope(ctx ast.ScopeContext) *Scope {
	return s.scopes[ctx]
}

// VarScope returns the function scope that owns `var` bindings made in ctx.
func (s *Scoping) VarScope(ctx ast.ScopeContext) ast.ScopeContext {
	scope := s.mustScope(ctx)
	return scope.varScope().ctx
}

// DeclareBinding binds name in scope and returns its identity. Declaring
// an existing name again returns the existing binding.
func (s *Scoping) DeclareBinding(scope ast.ScopeContext, name string, kind DeclKind) ast.Id {
	sc := s.mustScope(scope)
	if kind.Hoisted() {
		sc = sc.varScope()
	}

	id := ast.Id{Name: name, ScopeContext: sc.ctx}
	if _, exists := sc.declaredSymbols[name]; !exists {
		sc.declaredSymbols[name] = kind
		s.symbols[id] = &Symbol{Id: id, Kind: kind, Scope: sc}
	}
	s.names[name] = struct{}{}
	return id
}

// Lookup resolves name as seen from scope.
func (s *Scoping) Lookup(scope ast.ScopeContext, name string) (ast.Id, bool) {
	if found := s.mustScope(scope).lookup(name); found != nil {
		return ast.Id{Name: name, ScopeContext: found.ctx}, true
	}
	return ast.Id{Name: name, ScopeContext: UnresolvedMark}, false
}

// AddReference records a use of id. References to globals are counted by
// name.
func (s *Scoping) AddReference(id ast.Id, flags ReferenceFlags) {
	s.names[id.Name] = struct{}{}

	if id.ScopeContext == UnresolvedMark {
		s.unresolved[id.Name]++
		return
	}
	sym, ok := s.symbols[id]
	if !ok {
		panic(fmt.Sprintf("reference to undeclared binding %s", id))
	}
	if flags.IsRead() {
		sym.Reads++
	}
	if flags.IsWrite() {
		sym.Writes++
	}
}

// Symbol returns the symbol bound to id.
func (s *Scoping) Symbol(id ast.Id) (*Symbol, bool) {
	sym, ok := s.symbols[id]
	return sym, ok
}

// UnresolvedReferences returns how often name was used without a binding.
func (s *Scoping) UnresolvedReferences(name string) int {
	return s.unresolved[name]
}

// GenerateUid returns a name derived from base that is not used anywhere
// in the program, and reserves it. Repeated calls never return the same
// name: "_x", "_x2", "_x3"...
//
// An empty base yields "_", then "_2" and so on.
func (s *Scoping) GenerateUid(base string) string {
	base = uidBase(base)
	for i := 1; ; i++ {
		uid := "_" + base
		if i > 1 {
			uid += strconv.Itoa(i)
		}
		if s.isNameTaken(uid) {
			continue
		}
		s.names[uid] = struct{}{}
		return uid
	}
}

// RenameBinding moves the binding id to a fresh name derived from it and
// returns the new identity. Identifiers in the tree are not touched.
func (s *Scoping) RenameBinding(id ast.Id) ast.Id {
	sym, ok := s.symbols[id]
	if !ok {
		panic(fmt.Sprintf("rename of undeclared binding %s", id))
	}
	name := s.GenerateUid(id.Name)

	delete(sym.Scope.declaredSymbols, id.Name)
	delete(s.symbols, id)
	sym.Scope.declaredSymbols[name] = sym.Kind

	sym.Id = ast.Id{Name: name, ScopeContext: id.ScopeContext}
	s.symbols[sym.Id] = sym
	return sym.Id
}

func (s *Scoping) isNameTaken(name string) bool {
	if _, ok := s.names[name]; ok {
		return true
	}
	return token.IsReservedWord(name)
}

func (s *Scoping) mustScope(ctx ast.ScopeContext) *Scope {
	scope, ok := s.scopes[ctx]
	if !ok {
		panic(fmt.Sprintf("unknown scope context %d", ctx))
	}
	return scope
}

// uidBase turns an arbitrary name into the stem of a generated one: leading
// underscores and trailing digits are dropped so that uids derived from
// uids stay short, and characters that cannot appear in an identifier are
// replaced.
func uidBase(name string) string {
	name = norm.NFC.String(name)
	name = strings.TrimLeft(name, "_")
	name = strings.TrimRightFunc(name, func(r rune) bool { return r >= '0' && r <= '9' })

	var b strings.Builder
	for _, r := range name {
		if token.IsIdentifierPart(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
