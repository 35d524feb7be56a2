package exprprinter

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
)

func (p *Printer) typeCheck(n *ast.TypeCheck) string {
	sig := n.Of.Signature
	if n.Of.IsJavaFFI() {
		sig = ast.SanitizeJavaSig(sig)
	}
	switch n.Kind {
	case ast.TypeIs:
		return fmt.Sprintf("ObjUtil.is_(%s, '%s')", p.Print(n.Target), sig)
	case ast.TypeIsNot:
		return fmt.Sprintf("(not ObjUtil.is_(%s, '%s'))", p.Print(n.Target), sig)
	case ast.TypeAs:
		return fmt.Sprintf("ObjUtil.as_(%s, '%s')", p.Print(n.Target), sig)
	case ast.TypeCoerce:
		return fmt.Sprintf("ObjUtil.coerce(%s, '%s')", p.Print(n.Target), sig)
	default:
		p.report(fxerrors.EMIT001, "unsupported type-check kind")
		return "None"
	}
}
