// Package exprprinter lowers one SL expression node at a time into a
// Python text fragment. Every expression kind has exactly one rewrite
// rule (spec.md §4.5); Printer carries the shared PrinterState and the
// current pod name needed to resolve cross-pod references.
package exprprinter

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
	"github.com/fantom-lang/fanxpy/internal/importresolve"
	"github.com/fantom-lang/fanxpy/internal/printstate"
)

// Printer lowers Expr nodes to Python fragments.
type Printer struct {
	State       *printstate.State
	CurrentPod  string
	Resolve     func(target *ast.TypeRef, role importresolve.Role) importresolve.Resolution
	OnUnsupported func(rep *fxerrors.Report)
}

// New builds a Printer bound to a pod and its import resolution.
func New(state *printstate.State, currentPod string, resolveImport func(*ast.TypeRef, importresolve.Role) importresolve.Resolution, onUnsupported func(*fxerrors.Report)) *Printer {
	return &Printer{State: state, CurrentPod: currentPod, Resolve: resolveImport, OnUnsupported: onUnsupported}
}

// Print lowers one expression to a Python fragment. Unknown kinds emit
// the "None" placeholder and report an EMIT### finding rather than
// aborting — spec.md §7's recoverable-fallback policy.
func (p *Printer) Print(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.NullLit:
		return "None"
	case *ast.BoolLit:
		return p.boolLit(n)
	case *ast.IntLit:
		return fmt.Sprintf("%d", n.Value)
	case *ast.FloatLit:
		return p.floatLit(n)
	case *ast.StrLit:
		return p.strLit(n)
	case *ast.ListLit:
		return p.listLit(n)
	case *ast.MapLit:
		return p.mapLit(n)
	case *ast.RangeLit:
		return p.rangeLit(n)
	case *ast.DurationLit:
		return fmt.Sprintf("ObjUtil.duration(%d)", n.Nanos)
	case *ast.DecimalLit:
		return fmt.Sprintf("ObjUtil.decimal('%s')", n.Literal)
	case *ast.UriLit:
		return fmt.Sprintf("ObjUtil.uri(%s)", pyStr(n.Value))

	case *ast.LocalVar:
		return p.localVar(n)
	case *ast.ThisExpr:
		return p.thisExpr()
	case *ast.SuperExpr:
		return "super()"
	case *ast.ItExpr:
		return "it"
	case *ast.StaticTarget:
		return p.Resolve(n.Type, importresolve.RoleOrdinary).Use

	case *ast.Call:
		return p.call(n)
	case *ast.Construction:
		return p.construction(n)

	case *ast.FieldAccess:
		return p.fieldAccess(n)
	case *ast.Assign:
		return p.assign(n)

	case *ast.Same:
		return fmt.Sprintf("ObjUtil.same(%s, %s)", p.Print(n.A), p.Print(n.B))
	case *ast.NotSame:
		return fmt.Sprintf("not ObjUtil.same(%s, %s)", p.Print(n.A), p.Print(n.B))
	case *ast.CmpNull:
		return fmt.Sprintf("%s is None", p.Print(n.A))
	case *ast.CmpNotNull:
		return fmt.Sprintf("%s is not None", p.Print(n.A))

	case *ast.BoolNot:
		return fmt.Sprintf("not %s", p.Print(n.A))
	case *ast.BoolOr:
		return fmt.Sprintf("(%s or %s)", p.Print(n.A), p.Print(n.B))
	case *ast.BoolAnd:
		return fmt.Sprintf("(%s and %s)", p.Print(n.A), p.Print(n.B))

	case *ast.TypeCheck:
		return p.typeCheck(n)

	case *ast.Ternary:
		return p.ternary(n)
	case *ast.Elvis:
		return p.elvis(n)

	case *ast.Shortcut:
		return p.shortcut(n)

	case *ast.Closure:
		return p.closure(n)

	case *ast.TypeLiteral:
		return fmt.Sprintf("Type.find('%s')", n.Of.Signature)
	case *ast.SlotLiteral:
		return p.slotLiteral(n)

	case *ast.ThrowExpr:
		return fmt.Sprintf("ObjUtil.throw_(%s)", p.Print(n.Err))

	default:
		p.report(fxerrors.EMIT001, fmt.Sprintf("unsupported expression kind %T", e))
		return "None"
	}
}

func (p *Printer) report(code, message string) {
	if p.OnUnsupported == nil {
		return
	}
	p.OnUnsupported(&fxerrors.Report{
		Schema:  fxerrors.Schema,
		Code:    code,
		Phase:   "emit",
		Message: message,
		Pod:     p.CurrentPod,
	})
}

func pyStr(s string) string {
	return "'" + escapeNoNormalize(s) + "'"
}
