package stmtprinter

import (
	"testing"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/exprprinter"
	"github.com/fantom-lang/fanxpy/internal/importresolve"
	"github.com/fantom-lang/fanxpy/internal/printstate"
	"github.com/stretchr/testify/assert"
)

func newTestPrinter() *Printer {
	state := printstate.New()
	state.CurrentType = &ast.TypeDef{Name: "Widget"}
	resolve := func(t *ast.TypeRef, role importresolve.Role) importresolve.Resolution {
		return importresolve.Resolve("acme", t, role)
	}
	ep := exprprinter.New(state, "acme", resolve, nil)
	return New(state, ep)
}

func TestEmptyBlockEmitsPass(t *testing.T) {
	p := newTestPrinter()
	p.PrintMethodBody(&ast.Block{})
	assert.Equal(t, "pass\n", p.State.Out.String())
}

func TestIfElseLowering(t *testing.T) {
	p := newTestPrinter()
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.IfStmt{
			Cond: &ast.BoolLit{Value: true},
			Then: &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.IntLit{Value: 1}}}},
			Else: &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.IntLit{Value: 2}}}},
		},
	}}
	p.PrintMethodBody(body)
	out := p.State.Out.String()
	assert.Contains(t, out, "if True:")
	assert.Contains(t, out, "    return 1")
	assert.Contains(t, out, "else:")
	assert.Contains(t, out, "    return 2")
}

func TestForLoopRepeatsUpdateOnContinue(t *testing.T) {
	p := newTestPrinter()
	update := &ast.Shortcut{
		Op:     ast.OpPostInc,
		A:      &ast.LocalVar{Name: "i"},
	}
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.ForStmt{
			Init:   &ast.LocalDef{Name: "i", Initializer: &ast.IntLit{Value: 0}},
			Cond:   &ast.Shortcut{Op: ast.OpLt, A: &ast.LocalVar{Name: "i"}, B: &ast.IntLit{Value: 10}},
			Update: update,
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.ContinueStmt{},
			}},
		},
	}}
	p.PrintMethodBody(body)
	out := p.State.Out.String()
	assert.Contains(t, out, "while")
	// update must appear before `continue` inside the loop body
	continueIdx := indexOf(out, "continue")
	updateCount := countOccurrences(out, "_old_i")
	assert.True(t, continueIdx > 0)
	assert.Equal(t, 4, updateCount) // "_old_i" appears twice per update emission, emitted before continue and once more at natural loop end
}

func TestSwitchLowersToIfElifChainWithEqualityCompare(t *testing.T) {
	p := newTestPrinter()
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.SwitchStmt{
			Cond: &ast.LocalVar{Name: "x"},
			Cases: []*ast.SwitchCase{
				{Literal: &ast.IntLit{Value: 1}, Body: &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.IntLit{Value: 10}}}}},
				{Literal: &ast.IntLit{Value: 2}, Body: &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.IntLit{Value: 20}}}}},
				{Literal: nil, Body: &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.IntLit{Value: 0}}}}},
			},
		},
	}}
	p.PrintMethodBody(body)
	out := p.State.Out.String()
	assert.Contains(t, out, "_switch_0 = x")
	assert.Contains(t, out, "if (_switch_0 == 1):")
	assert.Contains(t, out, "elif (_switch_0 == 2):")
	assert.Contains(t, out, "else:")
}

func TestTryCatchFinally(t *testing.T) {
	p := newTestPrinter()
	excType := &ast.TypeRef{PodName: "sys", Name: "Err", Signature: "sys::Err"}
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.TryStmt{
			Body: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.IntLit{Value: 1}}}},
			Catches: []*ast.CatchClause{
				{ExcType: excType, VarName: "e", Body: &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.IntLit{Value: 2}}}}},
			},
			Finally: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.IntLit{Value: 3}}}},
		},
	}}
	p.PrintMethodBody(body)
	out := p.State.Out.String()
	assert.Contains(t, out, "try:")
	assert.Contains(t, out, "except")
	assert.Contains(t, out, "as e:")
	assert.Contains(t, out, "finally:")
}

func TestCatchBindingLocalDefSuppressed(t *testing.T) {
	p := newTestPrinter()
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.LocalDef{Name: "e", IsCatchBinding: true},
		&ast.ReturnStmt{Expr: &ast.IntLit{Value: 1}},
	}}
	p.PrintMethodBody(body)
	out := p.State.Out.String()
	assert.NotContains(t, out, "e = None")
	assert.Contains(t, out, "return 1")
}

func TestMultiStatementClosureIsHoistedBeforeFirstUse(t *testing.T) {
	p := newTestPrinter()
	closureBody := &ast.Block{Stmts: []ast.Stmt{
		&ast.LocalDef{Name: "tmp", Initializer: &ast.IntLit{Value: 1}},
		&ast.ReturnStmt{Expr: &ast.LocalVar{Name: "tmp"}},
	}}
	ce := &ast.ClosureExpr{ID: 42, Body: closureBody, Immutable: ast.ImmutableAlways}
	body := &ast.Block{Stmts: []ast.Stmt{
		&ast.ExprStmt{Expr: &ast.Call{
			MethodName: "each",
			Args:       []ast.Expr{&ast.Closure{Expr: ce}},
		}},
	}}
	p.PrintMethodBody(body)
	out := p.State.Out.String()
	assert.Contains(t, out, "def _closure_0(_self=self):")
	assert.Contains(t, out, "tmp = 1")
	assert.Contains(t, out, "return tmp")
	assert.Contains(t, out, "_closure_0")
	// the def must appear before the statement referencing it
	defIdx := indexOf(out, "def _closure_0")
	useIdx := indexOf(out, "each(")
	assert.True(t, defIdx < useIdx)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
			i += len(sub) - 1
		}
	}
	return count
}
