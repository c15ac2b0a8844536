package classprops

// Options configures the lowering.
type Options struct {
	// UseDefineForClassFields selects [[Define]] semantics for public
	// fields: they are installed with Object.defineProperty instead of
	// plain assignment, so setters inherited from a base class are not
	// triggered.
	UseDefineForClassFields bool
}
