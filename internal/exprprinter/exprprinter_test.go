package exprprinter

import (
	"testing"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
	"github.com/fantom-lang/fanxpy/internal/importresolve"
	"github.com/fantom-lang/fanxpy/internal/printstate"
	"github.com/stretchr/testify/assert"
)

// unsupportedExpr is a stand-in expression kind Print never recognizes,
// used to exercise the default-case fallback.
type unsupportedExpr struct{ ast.ExprBase }

func newTestPrinter(pod string) *Printer {
	state := printstate.New()
	state.CurrentType = &ast.TypeDef{Name: "Widget"}
	resolve := func(t *ast.TypeRef, role importresolve.Role) importresolve.Resolution {
		return importresolve.Resolve(pod, t, role)
	}
	return New(state, pod, resolve, nil)
}

func intType() *ast.TypeRef  { return &ast.TypeRef{PodName: "sys", Name: "Int", Signature: "sys::Int"} }
func strType() *ast.TypeRef  { return &ast.TypeRef{PodName: "sys", Name: "Str", Signature: "sys::Str"} }

// Scenario 1: x.toStr where x: Int -> Int.to_str(x)
func TestScenario_PrimitiveDispatch(t *testing.T) {
	p := newTestPrinter("acme")
	x := &ast.LocalVar{ExprBase: ast.ExprBase{Ctype: intType()}, Name: "x"}
	call := &ast.Call{
		Target:           x,
		MethodName:       "toStr",
		TargetStaticType: intType(),
	}
	assert.Equal(t, "Int.to_str(x)", p.Print(call))
}

// Scenario 3 (approximate): a?.b.c with b an accessor-method field
func TestScenario_SafeNavChain(t *testing.T) {
	p := newTestPrinter("acme")
	a := &ast.LocalVar{Name: "a"}
	bField := &ast.FieldDef{Name: "b"}
	cField := &ast.FieldDef{Name: "c"}
	access := &ast.FieldAccess{
		SafeNav: true,
		Target:  a,
		Field:   bField,
	}
	outer := &ast.FieldAccess{Target: access, Field: cField}
	got := p.Print(outer)
	assert.Contains(t, got, "lambda _safe_")
	assert.Contains(t, got, "(a)")
}

// Scenario 6: throw Err("x") ?: 0 (elvis with throw expr)
func TestScenario_ElvisWithThrow(t *testing.T) {
	p := newTestPrinter("acme")
	errCall := &ast.ThrowExpr{Err: &ast.Construction{Type: &ast.TypeRef{PodName: "acme", Name: "Err", Signature: "acme::Err"}, Args: []ast.Expr{&ast.StrLit{Value: "x"}}}}
	elvis := &ast.Elvis{LHS: &ast.IntLit{Value: 0}, RHS: errCall}
	got := p.Print(elvis)
	assert.Contains(t, got, "ObjUtil.throw_(")
	assert.Contains(t, got, "Err.make(")
}

func TestIntegerDivTruncated(t *testing.T) {
	p := newTestPrinter("acme")
	shortcut := &ast.Shortcut{
		Op: ast.OpDiv,
		A:  &ast.IntLit{ExprBase: ast.ExprBase{Ctype: intType()}, Value: -7},
		B:  &ast.IntLit{ExprBase: ast.ExprBase{Ctype: intType()}, Value: 4},
	}
	assert.Equal(t, "ObjUtil.div(-7, 4)", p.Print(shortcut))
}

func TestStringPlusException(t *testing.T) {
	p := newTestPrinter("acme")
	s := &ast.Shortcut{
		Op: ast.OpAdd,
		A:  &ast.LocalVar{ExprBase: ast.ExprBase{Ctype: strType()}, Name: "s"},
		B:  &ast.LocalVar{ExprBase: ast.ExprBase{Ctype: intType()}, Name: "n"},
	}
	assert.Equal(t, "Str.plus(s, n)", p.Print(s))
}

func TestStringPlusBothStrings(t *testing.T) {
	p := newTestPrinter("acme")
	s := &ast.Shortcut{
		Op: ast.OpAdd,
		A:  &ast.LocalVar{ExprBase: ast.ExprBase{Ctype: strType()}, Name: "a"},
		B:  &ast.LocalVar{ExprBase: ast.ExprBase{Ctype: strType()}, Name: "b"},
	}
	assert.Equal(t, "(a + b)", p.Print(s))
}

func TestSameAndNotSame(t *testing.T) {
	p := newTestPrinter("acme")
	a := &ast.LocalVar{Name: "a"}
	b := &ast.LocalVar{Name: "b"}
	assert.Equal(t, "ObjUtil.same(a, b)", p.Print(&ast.Same{A: a, B: b}))
	assert.Equal(t, "not ObjUtil.same(a, b)", p.Print(&ast.NotSame{A: a, B: b}))
}

func TestConstructionUsesFactory(t *testing.T) {
	p := newTestPrinter("acme")
	c := &ast.Construction{Type: &ast.TypeRef{PodName: "acme", Name: "Widget", Signature: "acme::Widget"}}
	got := p.Print(c)
	assert.Contains(t, got, ".make(")
}

func TestConstructionNamedCtor(t *testing.T) {
	p := newTestPrinter("acme")
	c := &ast.Construction{
		Type:     &ast.TypeRef{PodName: "acme", Name: "Widget", Signature: "acme::Widget"},
		CtorName: "fromSize",
	}
	got := p.Print(c)
	assert.Contains(t, got, ".from_size(")
}

func TestUnsupportedExprEmitsNonePlaceholderAndReport(t *testing.T) {
	p := newTestPrinter("acme")
	var got *fxerrors.Report
	p.OnUnsupported = func(r *fxerrors.Report) { got = r }

	result := p.Print(&unsupportedExpr{})

	assert.Equal(t, "None", result)
	assert.NotNil(t, got)
	assert.Equal(t, fxerrors.EMIT001, got.Code)
	assert.Equal(t, "acme", got.Pod)
}
