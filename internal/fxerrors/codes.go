// Package fxerrors provides the structured error taxonomy for fanxpy,
// mirroring spec.md §7's four-category model: unsupported-node markers
// (EMIT), type-metadata fallbacks (TYP), fatal I/O failures (IO), and
// invariant violations (INV) that indicate a transpiler bug.
package fxerrors

// Error code constants, one per recognized condition. Unlike a type
// checker's diagnostics these never block emission on their own — only
// IO### and INV### are fatal; see Report.Fatal.
const (
	// EMIT001 indicates an unsupported expression kind was lowered to
	// the "None" placeholder.
	EMIT001 = "EMIT001"
	// EMIT002 indicates an unsupported statement kind was lowered to a
	// "# TODO" marker.
	EMIT002 = "EMIT002"

	// TYP001 indicates a parameterized element type could not be
	// extracted and the emitter fell back to sys::Obj.
	TYP001 = "TYP001"
	// TYP002 indicates a parameterized element type fell back to
	// sys::Obj? (nullable).
	TYP002 = "TYP002"

	// IO001 indicates an output stream could not be opened or written.
	IO001 = "IO001"

	// INV001 indicates a closure was referenced without being registered.
	INV001 = "INV001"
	// INV002 indicates a type lacks a transitive Obj base at emission time.
	INV002 = "INV002"
	// INV003 indicates a dependency cycle among the pods being emitted.
	INV003 = "INV003"
)

// Schema is the constant `schema` field stamped on every Report.
const Schema = "fanxpy.error/v1"

// phaseOf returns the taxonomy phase a code belongs to; Wrap uses it to
// fill in a Report's Phase when the caller left it empty.
func phaseOf(code string) string {
	switch code {
	case EMIT001, EMIT002:
		return "emit"
	case TYP001, TYP002:
		return "typemeta"
	case IO001:
		return "io"
	case INV001, INV002, INV003:
		return "invariant"
	default:
		return "unknown"
	}
}

// Fatal reports whether an error code is fatal for the current pod
// (IO###, INV###) versus a recoverable per-node fallback (EMIT###, TYP###).
func Fatal(code string) bool {
	switch code {
	case IO001, INV001, INV002, INV003:
		return true
	default:
		return false
	}
}
