// Package printstate holds the single mutable context threaded through
// one type's emission: the current type/method, indentation, the
// closure table, for-loop update tracking, and the captured-variable
// wrapper mapping. TypePrinter owns a State for the lifetime of one
// type; it is re-initialized per method.
package printstate

import (
	"bytes"
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
)

// ClosureRegistration records where a multi-statement closure must be
// emitted: the statement index of its first use in the enclosing
// method body, and the generated Python identifier for its def.
type ClosureRegistration struct {
	ID         uint64
	Name       string // "_closure_0", "_closure_1", ...
	FirstUse   int    // stmtIndex at which this closure is first referenced
	Closure    *ast.ClosureExpr
	Emitted    bool
}

// State is the shared mutable bag PrinterState specifies in spec.md §4.4.
type State struct {
	Out *bytes.Buffer

	CurrentType   *ast.TypeDef
	CurrentMethod *ast.MethodDef
	Indent        int

	InStaticContext  bool
	InClosureOuter   bool // inline closure capturing outer `this` -> `_outer`
	InWrappedClosure bool // multi-statement extracted closure -> `_self`

	closureCount   int
	switchVarCount int

	// registeredClosures maps a closure's stable ID to its generated name.
	registeredClosures map[uint64]*ClosureRegistration
	// pendingClosures is the subset not yet emitted, in registration order.
	pendingClosures []*ClosureRegistration

	StmtIndex   int
	ClosureDepth int

	// ForLoopUpdate is a stack of update expressions; `continue` lowering
	// consults the top entry (spec.md §4.6).
	ForLoopUpdate []ast.Expr

	// ParamWrappers maps an original local name to its cvar wrapper name.
	ParamWrappers map[string]string
}

// New creates a State for emitting one type.
func New() *State {
	return &State{
		Out:                &bytes.Buffer{},
		registeredClosures: make(map[uint64]*ClosureRegistration),
		ParamWrappers:      make(map[string]string),
	}
}

// ResetForMethod clears per-method fields; called by TypePrinter before
// emitting each method body, per the ownership rule in spec.md §3:
// "re-initialized per method".
func (s *State) ResetForMethod(m *ast.MethodDef) {
	s.CurrentMethod = m
	s.InStaticContext = m.IsStatic()
	s.InClosureOuter = false
	s.InWrappedClosure = false
	s.closureCount = 0
	s.switchVarCount = 0
	s.registeredClosures = make(map[uint64]*ClosureRegistration)
	s.pendingClosures = nil
	s.StmtIndex = 0
	s.ClosureDepth = 0
	s.ForLoopUpdate = nil
	s.ParamWrappers = make(map[string]string)
}

// RegisterClosure assigns a fresh _closure_N name to a multi-statement
// closure discovered by StmtPrinter's pre-pass and records the statement
// index of its first use, so emission can place the def immediately
// before that statement (spec.md §5 ordering guarantee).
func (s *State) RegisterClosure(c *ast.ClosureExpr, firstUse int) *ClosureRegistration {
	if existing, ok := s.registeredClosures[c.ID]; ok {
		return existing
	}
	reg := &ClosureRegistration{
		ID:       c.ID,
		Name:     fmt.Sprintf("_closure_%d", s.closureCount),
		FirstUse: firstUse,
		Closure:  c,
	}
	s.closureCount++
	s.registeredClosures[c.ID] = reg
	s.pendingClosures = append(s.pendingClosures, reg)
	return reg
}

// LookupClosure returns the registration for an already-registered
// closure. A miss means the pre-pass did not register it as
// multi-statement; ExprPrinter then lowers it as an inline lambda.
func (s *State) LookupClosure(id uint64) (*ClosureRegistration, bool) {
	reg, ok := s.registeredClosures[id]
	return reg, ok
}

// PendingAt returns, and marks emitted, every unemitted closure whose
// FirstUse equals stmtIndex — the emission driver in spec.md §4.6.
func (s *State) PendingAt(stmtIndex int) []*ClosureRegistration {
	var due []*ClosureRegistration
	for _, reg := range s.pendingClosures {
		if !reg.Emitted && reg.FirstUse == stmtIndex {
			reg.Emitted = true
			due = append(due, reg)
		}
	}
	return due
}

// EnterWrappedClosure marks State as emitting the body of a hoisted
// multi-statement closure def, so `this` lowers to `_self` (spec.md
// §4.5 identifier resolution). The returned func restores the prior
// value, so nested closures bracket correctly.
func (s *State) EnterWrappedClosure() func() {
	prev := s.InWrappedClosure
	s.InWrappedClosure = true
	return func() { s.InWrappedClosure = prev }
}

// EnterClosureOuter marks State as emitting the body of an inline
// single-expression closure that captures the enclosing method's
// `this`, so `this` lowers to `_outer` (spec.md §4.5 identifier
// resolution). The returned func restores the prior value.
func (s *State) EnterClosureOuter() func() {
	prev := s.InClosureOuter
	s.InClosureOuter = true
	return func() { s.InClosureOuter = prev }
}

// NextSwitchVar returns the next "_switch_N" name.
func (s *State) NextSwitchVar() string {
	name := fmt.Sprintf("_switch_%d", s.switchVarCount)
	s.switchVarCount++
	return name
}

// PushForUpdate / PopForUpdate bracket a for-loop body so nested
// `continue` statements can find and re-emit the enclosing loop's
// update expression first (spec.md §4.6).
func (s *State) PushForUpdate(update ast.Expr) {
	s.ForLoopUpdate = append(s.ForLoopUpdate, update)
}

func (s *State) PopForUpdate() {
	if len(s.ForLoopUpdate) == 0 {
		return
	}
	s.ForLoopUpdate = s.ForLoopUpdate[:len(s.ForLoopUpdate)-1]
}

// CurrentForUpdate returns the innermost enclosing for-loop's update
// expression, or nil if not inside one.
func (s *State) CurrentForUpdate() ast.Expr {
	if len(s.ForLoopUpdate) == 0 {
		return nil
	}
	return s.ForLoopUpdate[len(s.ForLoopUpdate)-1]
}

// IndentStr renders the current indent depth as 4-space units.
func (s *State) IndentStr() string {
	b := make([]byte, s.Indent*4)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
