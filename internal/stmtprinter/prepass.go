// Package stmtprinter lowers one method body (a *ast.Block) to Python
// statement text. Before emitting anything it runs a pre-pass over the
// whole body that finds every closure literal requiring a hoisted,
// multi-statement `def` rather than an inline lambda, and registers each
// one on the shared PrinterState at the statement index of its first
// use (spec.md §4.6, "Performs a per-method pre-pass").
package stmtprinter

import (
	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/printstate"
)

// prepass walks a method body once, registering every closure literal
// that needs a hoisted def and recording the statement index of its
// first textual appearance.
type prepass struct {
	state     *printstate.State
	stmtIndex int
}

// RunPrepass registers every multi-statement closure found in body
// against state, keyed by the top-level statement index that first
// references it.
func RunPrepass(state *printstate.State, body *ast.Block) {
	pp := &prepass{state: state}
	for i, s := range body.Stmts {
		pp.stmtIndex = i
		pp.walkStmt(s)
	}
}

func (pp *prepass) walkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		pp.walkExpr(n.Expr)
	case *ast.LocalDef:
		if n.Initializer != nil {
			pp.walkExpr(n.Initializer)
		}
	case *ast.IfStmt:
		pp.walkExpr(n.Cond)
		pp.walkBlock(n.Then)
		pp.walkBlock(n.Else)
	case *ast.ReturnStmt:
		if n.Expr != nil {
			pp.walkExpr(n.Expr)
		}
	case *ast.ThrowStmt:
		pp.walkExpr(n.Err)
	case *ast.ForStmt:
		if n.Init != nil {
			pp.walkStmt(n.Init)
		}
		if n.Cond != nil {
			pp.walkExpr(n.Cond)
		}
		if n.Update != nil {
			pp.walkExpr(n.Update)
		}
		pp.walkBlock(n.Body)
	case *ast.WhileStmt:
		pp.walkExpr(n.Cond)
		pp.walkBlock(n.Body)
	case *ast.TryStmt:
		pp.walkBlock(n.Body)
		for _, c := range n.Catches {
			pp.walkBlock(c.Body)
		}
		pp.walkBlock(n.Finally)
	case *ast.SwitchStmt:
		pp.walkExpr(n.Cond)
		for _, c := range n.Cases {
			if c.Literal != nil {
				pp.walkExpr(c.Literal)
			}
			pp.walkBlock(c.Body)
		}
	}
}

func (pp *prepass) walkBlock(b *ast.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		pp.walkStmt(s)
	}
}

// walkExpr descends into every expression kind that can nest another
// expression, registering any *ast.Closure whose body qualifies as
// multi-statement.
func (pp *prepass) walkExpr(e ast.Expr) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Closure:
		if isMultiStatement(n.Expr.Body) {
			pp.state.RegisterClosure(n.Expr, pp.stmtIndex)
		}
		pp.walkBlock(n.Expr.Body)
	case *ast.Call:
		pp.walkExpr(n.Target)
		for _, a := range n.Args {
			pp.walkExpr(a)
		}
	case *ast.Construction:
		for _, a := range n.Args {
			pp.walkExpr(a)
		}
	case *ast.FieldAccess:
		pp.walkExpr(n.Target)
	case *ast.Assign:
		pp.walkExpr(n.LHS)
		pp.walkExpr(n.RHS)
	case *ast.Same:
		pp.walkExpr(n.A)
		pp.walkExpr(n.B)
	case *ast.NotSame:
		pp.walkExpr(n.A)
		pp.walkExpr(n.B)
	case *ast.CmpNull:
		pp.walkExpr(n.A)
	case *ast.CmpNotNull:
		pp.walkExpr(n.A)
	case *ast.BoolNot:
		pp.walkExpr(n.A)
	case *ast.BoolOr:
		pp.walkExpr(n.A)
		pp.walkExpr(n.B)
	case *ast.BoolAnd:
		pp.walkExpr(n.A)
		pp.walkExpr(n.B)
	case *ast.TypeCheck:
		pp.walkExpr(n.Target)
	case *ast.Ternary:
		pp.walkExpr(n.Cond)
		pp.walkExpr(n.Then)
		pp.walkExpr(n.Else)
	case *ast.Elvis:
		pp.walkExpr(n.LHS)
		pp.walkExpr(n.RHS)
	case *ast.Shortcut:
		pp.walkExpr(n.A)
		pp.walkExpr(n.B)
		pp.walkExpr(n.Target)
	case *ast.ListLit:
		for _, el := range n.Elements {
			pp.walkExpr(el)
		}
	case *ast.MapLit:
		for _, k := range n.Keys {
			pp.walkExpr(k)
		}
		for _, v := range n.Vals {
			pp.walkExpr(v)
		}
	case *ast.RangeLit:
		pp.walkExpr(n.Start)
		pp.walkExpr(n.End)
	case *ast.ThrowExpr:
		pp.walkExpr(n.Err)
	}
}

// isMultiStatement implements spec.md §4.6's criterion: a closure body
// needs a hoisted def (rather than an inline lambda) if it declares
// locals, contains an assignment statement, contains any control-flow
// statement, or has more than one real statement once synthetic nops
// and bare empty returns are stripped.
func isMultiStatement(b *ast.Block) bool {
	real := 0
	for _, s := range b.Stmts {
		switch n := s.(type) {
		case *ast.NopStmt:
			continue
		case *ast.ReturnStmt:
			if n.Expr == nil {
				continue
			}
		case *ast.LocalDef:
			return true
		case *ast.IfStmt, *ast.SwitchStmt, *ast.ForStmt, *ast.WhileStmt, *ast.TryStmt:
			return true
		case *ast.ExprStmt:
			if _, ok := n.Expr.(*ast.Assign); ok {
				return true
			}
		}
		real++
	}
	return real > 1
}
