package exprprinter

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/importresolve"
	"github.com/fantom-lang/fanxpy/internal/namemap"
)

// construction always emits a factory call (spec.md §3 invariant 3):
// `<Class>.make(args)` for the unnamed constructor, `<Class>.<name>(args)`
// for a named one. __init__ is never called directly by generated code.
// The factory name is run through NameMap, matching the static factory
// TypePrinter emits in printCtorFactory (internal/typeprinter/members.go).
func (p *Printer) construction(n *ast.Construction) string {
	factory := "make"
	if n.CtorName != "" {
		factory = namemap.Name(n.CtorName)
	}
	className := p.Resolve(n.Type, importresolve.RoleOrdinary).Use
	return fmt.Sprintf("%s.%s(%s)", className, factory, p.argList(n.Args))
}
