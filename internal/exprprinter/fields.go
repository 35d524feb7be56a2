package exprprinter

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
	"github.com/fantom-lang/fanxpy/internal/namemap"
)

// handWrittenPropertyTypes is the set of hand-written sys types whose
// Python bodies expose fields as @property objects rather than
// method-style accessors (spec.md §4.5 Field access / §GLOSSARY
// "Hand-written sys type").
var handWrittenPropertyTypes = map[string]bool{
	"Map": true, "List": true, "Type": true, "StrBuf": true,
}

func isHandWrittenPropertyType(t *ast.TypeRef) bool {
	return t != nil && t.InSysPod() && handWrittenPropertyTypes[t.Name]
}

// fieldAccess lowers a value-position field read.
func (p *Printer) fieldAccess(n *ast.FieldAccess) string {
	if n.SafeNav {
		inner := *n
		inner.SafeNav = false
		inner.Target = &ast.LocalVar{Name: "_safe_"}
		body := p.fieldAccess(&inner)
		return fmt.Sprintf("((lambda _safe_: None if _safe_ is None else %s)(%s))", body, p.Print(n.Target))
	}

	name := namemap.Name(n.Field.Name)

	if n.Field.Flags.Static {
		className := p.currentClassName()
		return fmt.Sprintf("%s.%s()", className, name)
	}

	target := "self"
	if n.Target != nil {
		target = p.Print(n.Target)
	}

	if n.Mode == ast.RawStorageMode {
		return fmt.Sprintf("%s._%s", target, name)
	}

	if isHandWrittenPropertyType(parentTypeRef(n)) {
		return fmt.Sprintf("%s.%s", target, name)
	}
	return fmt.Sprintf("%s.%s()", target, name)
}

// rawFieldRef renders a field as its raw-storage Python attribute
// (`target._field`), bypassing whatever accessor-call form fieldAccess
// would otherwise choose. Compound-assignment and inc/dec targets must
// use the underlying storage slot directly since Python cannot assign
// to a call expression (spec.md §4.5).
func (p *Printer) rawFieldRef(n *ast.FieldAccess) string {
	name := namemap.Name(n.Field.Name)
	target := "self"
	if n.Field.Flags.Static {
		target = p.currentClassName()
	} else if n.Target != nil {
		target = p.Print(n.Target)
	}
	return fmt.Sprintf("%s._%s", target, name)
}

// fieldRefTarget renders the instance/class a field lives on, without
// the field name — the first argument to the ObjUtil.inc_field /
// dec_field raw-storage helpers.
func (p *Printer) fieldRefTarget(n *ast.FieldAccess) string {
	if n.Field.Flags.Static {
		return p.currentClassName()
	}
	if n.Target != nil {
		return p.Print(n.Target)
	}
	return "self"
}

// parentTypeRef recovers the static type of the field's target, which
// the front-end stashes on FieldDef.Type's owning type via CType on the
// access node itself in practice; here we fall back to inspecting the
// target expression's resolved type.
func parentTypeRef(n *ast.FieldAccess) *ast.TypeRef {
	if n.Target == nil {
		return nil
	}
	return n.Target.CType()
}

// assign lowers an assignment expression per spec.md §4.5 Assignment.
func (p *Printer) assign(n *ast.Assign) string {
	switch lhs := n.LHS.(type) {
	case *ast.LocalVar:
		return fmt.Sprintf("(%s := %s)", namemap.Name(lhs.Name), p.Print(n.RHS))

	case *ast.FieldAccess:
		return p.assignField(lhs, n.RHS, n.IsResultUsed)

	case *ast.Shortcut:
		if lhs.Op == ast.OpIndexGet {
			return fmt.Sprintf("%s[%s] = %s", p.Print(lhs.A), p.Print(lhs.B), p.Print(n.RHS))
		}
	}
	p.report(fxerrors.EMIT001, fmt.Sprintf("unsupported assignment LHS kind %T", n.LHS))
	return "None"
}

func (p *Printer) assignField(lhs *ast.FieldAccess, rhs ast.Expr, resultUsed bool) string {
	name := namemap.Name(lhs.Field.Name)
	target := "self"
	if lhs.Target != nil {
		target = p.Print(lhs.Target)
	}

	if lhs.Field.Flags.Static {
		target = p.currentClassName()
	}

	if resultUsed {
		ref := name
		if lhs.Mode == ast.RawStorageMode {
			ref = "_" + name
		}
		return fmt.Sprintf("ObjUtil.setattr_return(%s, '%s', %s)", target, ref, p.Print(rhs))
	}

	if lhs.Mode == ast.RawStorageMode {
		return fmt.Sprintf("%s._%s = %s", target, name, p.Print(rhs))
	}
	if isHandWrittenPropertyType(parentTypeRef(lhs)) {
		return fmt.Sprintf("%s.%s = %s", target, name, p.Print(rhs))
	}
	return fmt.Sprintf("%s.%s(%s)", target, name, p.Print(rhs))
}
