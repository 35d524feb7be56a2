package exprprinter

import (
	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/namemap"
)

// localVar emits the cvar wrapper name when inside a wrapped closure and
// ParamWrappers has this local, otherwise the NameMap'd identifier. The
// AST carries source-level names; the rewrite happens here, matching the
// name StmtPrinter's localDef and the parameter lists declare.
func (p *Printer) localVar(n *ast.LocalVar) string {
	if p.State.InWrappedClosure {
		if wrapper, ok := p.State.ParamWrappers[n.Name]; ok {
			return wrapper
		}
	}
	return namemap.Name(n.Name)
}

// thisExpr lowers `this`/`$this` depending on closure nesting:
// ordinary method body -> "self"; inline closure capturing outer this ->
// "_outer"; multi-statement extracted closure -> "_self".
func (p *Printer) thisExpr() string {
	switch {
	case p.State.InWrappedClosure:
		return "_self"
	case p.State.InClosureOuter:
		return "_outer"
	default:
		return "self"
	}
}
