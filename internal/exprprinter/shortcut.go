package exprprinter

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/namemap"
	"github.com/fantom-lang/fanxpy/internal/operatormap"
)

func (p *Printer) shortcut(n *ast.Shortcut) string {
	switch n.Op {
	case ast.OpAdd:
		return p.additive(n)
	case ast.OpSub, ast.OpMul, ast.OpDiv:
		return p.arithmetic(n)
	case ast.OpMod:
		return fmt.Sprintf("ObjUtil.mod(%s, %s)", p.Print(n.A), p.Print(n.B))
	case ast.OpEq:
		return fmt.Sprintf("(%s == %s)", p.Print(n.A), p.Print(n.B))
	case ast.OpNe:
		return fmt.Sprintf("(%s != %s)", p.Print(n.A), p.Print(n.B))
	case ast.OpLt:
		return p.compareTieBreak(n, "lt", "<")
	case ast.OpLe:
		return p.compareTieBreak(n, "le", "<=")
	case ast.OpGt:
		return p.compareTieBreak(n, "gt", ">")
	case ast.OpGe:
		return p.compareTieBreak(n, "ge", ">=")
	case ast.OpCmp:
		return fmt.Sprintf("ObjUtil.compare(%s, %s)", p.Print(n.A), p.Print(n.B))
	case ast.OpAddAssign, ast.OpSubAssign, ast.OpMulAssign, ast.OpDivAssign, ast.OpModAssign:
		return p.compoundAssign(n)
	case ast.OpPreInc, ast.OpPostInc, ast.OpPreDec, ast.OpPostDec:
		return p.incDec(n)
	case ast.OpIndexGet:
		return p.indexGet(n)
	default:
		return "None"
	}
}

// additive handles `+`, special-casing the sys::Str exception: when one
// side is sys::Str and the other is not, Str.plus forces SL's implicit
// toStr conversion; when both sides are strings (or neither), plain `+`.
func (p *Printer) additive(n *ast.Shortcut) string {
	aIsStr := isStrType(n.A.CType())
	bIsStr := isStrType(n.B.CType())
	if aIsStr != bIsStr {
		return fmt.Sprintf("Str.plus(%s, %s)", p.Print(n.A), p.Print(n.B))
	}
	return fmt.Sprintf("(%s + %s)", p.Print(n.A), p.Print(n.B))
}

func isStrType(t *ast.TypeRef) bool {
	return t != nil && t.InSysPod() && t.Name == "Str"
}

// arithmetic handles `-`, `*`, `/`: integer `/` routes through
// ObjUtil.div (truncated semantics), everything else looks up its token
// in OperatorMap keyed by the receiver type's qname.
func (p *Printer) arithmetic(n *ast.Shortcut) string {
	if n.Op == ast.OpDiv && isIntType(n.A.CType()) {
		return fmt.Sprintf("ObjUtil.div(%s, %s)", p.Print(n.A), p.Print(n.B))
	}
	qname := arithmeticQname(n.Op, n.A.CType())
	tok, ok := operatormap.Binary(qname)
	if !ok {
		tok = fallbackToken(n.Op)
	}
	return fmt.Sprintf("(%s %s %s)", p.Print(n.A), tok, p.Print(n.B))
}

func isIntType(t *ast.TypeRef) bool {
	return t != nil && t.InSysPod() && t.Name == "Int"
}

func arithmeticQname(op ast.ShortcutOp, receiver *ast.TypeRef) string {
	typeName := "Int"
	if receiver != nil && receiver.InSysPod() {
		typeName = receiver.Name
	}
	opName := map[ast.ShortcutOp]string{ast.OpAdd: "plus", ast.OpSub: "minus", ast.OpMul: "mult", ast.OpDiv: "div"}[op]
	return fmt.Sprintf("sys::%s.%s", typeName, opName)
}

func fallbackToken(op ast.ShortcutOp) string {
	switch op {
	case ast.OpSub:
		return "-"
	case ast.OpMul:
		return "*"
	case ast.OpDiv:
		return "/"
	default:
		return "?"
	}
}

// compareTieBreak: a bare comparison with a `<=>` tie-breaker operand
// (n.Target holds the tie-break expression when present) emits the
// corresponding ObjUtil.compare_* helper; otherwise the direct Python
// token.
func (p *Printer) compareTieBreak(n *ast.Shortcut, helper, token string) string {
	if n.Target != nil {
		return fmt.Sprintf("ObjUtil.compare_%s(%s, %s)", helper, p.Print(n.A), p.Print(n.B))
	}
	return fmt.Sprintf("(%s %s %s)", p.Print(n.A), token, p.Print(n.B))
}

func (p *Printer) compoundAssign(n *ast.Shortcut) string {
	tok := compoundToken(n.Op)
	target := n.Target
	if target == nil {
		target = n.A
	}
	switch t := target.(type) {
	case *ast.LocalVar:
		name := namemap.Name(t.Name)
		return fmt.Sprintf("(%s := (%s %s %s))", name, name, tok, p.Print(n.B))
	case *ast.FieldAccess:
		// Raw-storage form: Python cannot assign to the accessor-call form
		// fieldAccess would otherwise emit (spec.md §4.5).
		ref := p.rawFieldRef(t)
		return fmt.Sprintf("%s = %s %s %s", ref, ref, tok, p.Print(n.B))
	case *ast.Shortcut:
		if t.Op == ast.OpIndexGet {
			c := p.Print(t.A)
			i := p.Print(t.B)
			return fmt.Sprintf("%s[%s] = %s[%s] %s %s", c, i, c, i, tok, p.Print(n.B))
		}
	}
	return "None"
}

func compoundToken(op ast.ShortcutOp) string {
	switch op {
	case ast.OpAddAssign:
		return "+"
	case ast.OpSubAssign:
		return "-"
	case ast.OpMulAssign:
		return "*"
	case ast.OpDivAssign:
		return "/"
	case ast.OpModAssign:
		return "%"
	default:
		return "?"
	}
}

// incDec lowers pre/post increment/decrement. Field and index targets
// call runtime helpers that return the chosen value; locals use walrus,
// with the post-form capturing the old value via a tuple-index trick
// since Python has no comma-expression.
func (p *Printer) incDec(n *ast.Shortcut) string {
	delta := "1"
	if n.Op == ast.OpPreDec || n.Op == ast.OpPostDec {
		delta = "-1"
	}
	isPost := n.Op == ast.OpPostInc || n.Op == ast.OpPostDec
	target := n.Target
	if target == nil {
		target = n.A
	}

	switch t := target.(type) {
	case *ast.LocalVar:
		name := namemap.Name(t.Name)
		if isPost {
			return fmt.Sprintf("((_old_%s := %s, %s := %s + (%s), _old_%s)[2])", name, name, name, name, delta, name)
		}
		return fmt.Sprintf("(%s := %s + (%s))", name, name, delta)
	case *ast.FieldAccess:
		// Pass the target instance plus the raw field name, not the
		// accessor's value, so the helper has a settable location to write
		// the new value back to (spec.md §4.5).
		helper := incDecHelper(n.Op, isPost, "field")
		name := namemap.Name(t.Field.Name)
		return fmt.Sprintf("%s(%s, '%s')", helper, p.fieldRefTarget(t), name)
	case *ast.Shortcut:
		if t.Op == ast.OpIndexGet {
			helper := incDecHelper(n.Op, isPost, "index")
			return fmt.Sprintf("%s(%s, %s)", helper, p.Print(t.A), p.Print(t.B))
		}
	}
	return "None"
}

func incDecHelper(op ast.ShortcutOp, isPost bool, kind string) string {
	base := "ObjUtil.inc_" + kind
	if op == ast.OpPreDec || op == ast.OpPostDec {
		base = "ObjUtil.dec_" + kind
	}
	if isPost {
		base += "_post"
	}
	return base
}

// indexGet implements spec.md §4.5 Indexing: Str range/codepoint access,
// List range access, and plain subscript otherwise.
func (p *Printer) indexGet(n *ast.Shortcut) string {
	target := n.A
	index := n.B
	isRange := isRangeExpr(index)
	if isStrType(target.CType()) {
		if isRange {
			return fmt.Sprintf("Str.get_range(%s, %s)", p.Print(target), p.Print(index))
		}
		return fmt.Sprintf("Str.get(%s, %s)", p.Print(target), p.Print(index))
	}
	if isRange {
		return fmt.Sprintf("List.get_range(%s, %s)", p.Print(target), p.Print(index))
	}
	return fmt.Sprintf("%s[%s]", p.Print(target), p.Print(index))
}

func isRangeExpr(e ast.Expr) bool {
	if _, ok := e.(*ast.RangeLit); ok {
		return true
	}
	t := e.CType()
	return t != nil && t.InSysPod() && t.Name == "Range"
}
