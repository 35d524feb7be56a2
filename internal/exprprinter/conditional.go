package exprprinter

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
)

// ternary lowers each branch normally; if a branch is itself a local-var
// assignment, Print already produces the walrus form, so no extra
// handling is needed here beyond delegating.
func (p *Printer) ternary(n *ast.Ternary) string {
	return fmt.Sprintf("(%s if %s else %s)", p.Print(n.Then), p.Print(n.Cond), p.Print(n.Else))
}

// elvis: `lhs ?: rhs` evaluates lhs exactly once via a lambda parameter.
func (p *Printer) elvis(n *ast.Elvis) string {
	return fmt.Sprintf("((lambda _v: _v if _v is not None else %s)(%s))", p.Print(n.RHS), p.Print(n.LHS))
}
