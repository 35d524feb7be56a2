package ast

// Immutability is the three-way case derived from a closure's synthetic
// isImmutable/toImmutable methods (spec.md §4.5 Closures). The front-end
// resolves it; this package exposes only the derived case, which
// ExprPrinter/StmtPrinter read as-is, per spec.md §9's re-architecting note.
type Immutability int

const (
	// ImmutableAlways: no synthetic isImmutable (absent) and a toImmutable
	// that would throw (absent), or an isImmutable returning a true literal.
	ImmutableAlways Immutability = iota
	// ImmutableMaybe: isImmutable returns a captured-field reference.
	ImmutableMaybe
	// ImmutableNever: toImmutable throws unconditionally.
	ImmutableNever
)

func (i Immutability) String() string {
	switch i {
	case ImmutableAlways:
		return "always"
	case ImmutableMaybe:
		return "maybe"
	case ImmutableNever:
		return "never"
	default:
		return "maybe"
	}
}

// ClosureExpr is a closure literal: an anonymous `|params| { body }` or
// it-block. SyntheticMethods, when present, is read only to derive
// Immutability; the core doesn't need the synthetic class hierarchy
// itself (spec.md §9).
type ClosureExpr struct {
	// ID is assigned by the front-end and is stable across re-analysis;
	// PrinterState keys its registeredClosures table on this identity.
	ID                 uint64
	Signature          *TypeRef // a sys::Func TypeRef describing params/return
	DeclaredParams     []*Param
	Body               *Block
	CapturedFieldNames []string
	SyntheticMethods   []*MethodDef
	Immutable          Immutability
	// IsItBlock marks a closure whose single implicit parameter is `it`.
	IsItBlock bool
}
