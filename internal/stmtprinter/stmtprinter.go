package stmtprinter

import (
	"fmt"
	"strings"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/exprprinter"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
	"github.com/fantom-lang/fanxpy/internal/importresolve"
	"github.com/fantom-lang/fanxpy/internal/namemap"
	"github.com/fantom-lang/fanxpy/internal/printstate"
)

// Printer lowers a method body to Python statement text, writing
// directly into State.Out. It delegates every expression fragment to
// the shared exprprinter.Printer.
type Printer struct {
	State *printstate.State
	Expr  *exprprinter.Printer
}

// New builds a Printer sharing state with an already-constructed
// exprprinter.Printer.
func New(state *printstate.State, expr *exprprinter.Printer) *Printer {
	return &Printer{State: state, Expr: expr}
}

// PrintMethodBody runs the pre-pass, then emits every statement in
// order, interleaving hoisted closure defs immediately before the
// top-level statement that first references them.
func (p *Printer) PrintMethodBody(body *ast.Block) {
	RunPrepass(p.State, body)
	p.emitBlockStmts(body.Stmts, true)
}

func (p *Printer) line(format string, args ...interface{}) {
	p.State.Out.WriteString(p.State.IndentStr())
	fmt.Fprintf(p.State.Out, format, args...)
	p.State.Out.WriteString("\n")
}

func (p *Printer) indented(f func()) {
	p.State.Indent++
	f()
	p.State.Indent--
}

// PrintBlock lowers a nested block (if/for/while/try body), emitting
// `pass` when it has no real statements after synthetic ones are
// stripped.
func (p *Printer) PrintBlock(b *ast.Block) {
	if b == nil || allSynthetic(b) {
		p.line("pass")
		return
	}
	p.emitBlockStmts(b.Stmts, false)
}

func allSynthetic(b *ast.Block) bool {
	for _, s := range b.Stmts {
		switch n := s.(type) {
		case *ast.NopStmt:
			continue
		case *ast.ReturnStmt:
			if n.Expr == nil {
				continue
			}
			return false
		default:
			return false
		}
	}
	return true
}

// emitBlockStmts emits each statement, and when topLevel is set,
// interleaves any closures whose hoisted def is due at this index
// (spec.md §4.6 emission order: a closure's def appears immediately
// before the statement that first references it).
func (p *Printer) emitBlockStmts(stmts []ast.Stmt, topLevel bool) {
	emitted := false
	for i, s := range stmts {
		if topLevel {
			for _, reg := range p.State.PendingAt(i) {
				p.emitClosureDef(reg)
				emitted = true
			}
		}
		if p.stmt(s) {
			emitted = true
		}
	}
	if !emitted {
		p.line("pass")
	}
}

// emitClosureDef renders a hoisted multi-statement closure as a
// top-level `def _closure_N(params=None, ..., _self=self):` followed by
// its body, then the wrapping `_closure_N = Func.make_closure({...},
// _closure_N)` statement (spec.md §4.6 emission driver). The trailing
// `_self=self` default pins the enclosing instance at def-time, and
// `this` inside the body lowers to `_self` (spec.md §4.5 identifier
// resolution) via State.InWrappedClosure.
func (p *Printer) emitClosureDef(reg *printstate.ClosureRegistration) {
	c := reg.Closure
	names := make([]string, 0, len(c.DeclaredParams)+1)
	for _, prm := range c.DeclaredParams {
		names = append(names, namemap.Name(prm.Name)+"=None")
	}
	names = append(names, "_self=self")
	paramList := strings.Join(names, ", ")

	p.line("def %s(%s):", reg.Name, paramList)
	restore := p.State.EnterWrappedClosure()
	p.indented(func() {
		p.PrintBlock(c.Body)
	})
	restore()
	p.line("%s = Func.make_closure(%s, %s)", reg.Name, exprprinter.ClosureSpecDict(c), reg.Name)
}

// stmt lowers one statement, returning false for statements that emit
// no Python text of their own (so the caller can fall back to `pass`
// when a block turns out empty).
func (p *Printer) stmt(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.NopStmt:
		return false

	case *ast.ExprStmt:
		// A bare closure-literal statement only matters for its hoisting
		// side effect once registered; it has no runtime effect of its own.
		if c, ok := n.Expr.(*ast.Closure); ok {
			if _, registered := p.State.LookupClosure(c.Expr.ID); registered {
				return false
			}
		}
		p.line("%s", p.Expr.Print(n.Expr))
		return true

	case *ast.LocalDef:
		if n.IsCatchBinding {
			return false
		}
		// (a) self-referential captured-variable re-binding: Python's
		// closures already capture the enclosing scope, so `name$N = name$N`
		// contributes nothing (spec.md §4.6 localDef).
		if lv, ok := n.Initializer.(*ast.LocalVar); ok && lv.Name == n.Name {
			return false
		}
		// (b) cvar-wrapper recognition: a local defined as `this.make(x)`
		// records x -> this local's Python name in ParamWrappers, before any
		// closure body that references x is emitted (spec.md §4.6 localDef,
		// §5 "recorded before any closure body").
		if call, ok := n.Initializer.(*ast.Call); ok && call.Kind == ast.CallCvarWrap {
			if arg, ok := call.Args[0].(*ast.LocalVar); ok {
				p.State.ParamWrappers[arg.Name] = namemap.Name(n.Name)
			}
		}
		if n.Initializer == nil {
			p.line("%s = None", namemap.Name(n.Name))
			return true
		}
		p.line("%s = %s", namemap.Name(n.Name), p.Expr.Print(n.Initializer))
		return true

	case *ast.IfStmt:
		p.line("if %s:", p.Expr.Print(n.Cond))
		p.indented(func() { p.PrintBlock(n.Then) })
		if n.Else != nil {
			p.line("else:")
			p.indented(func() { p.PrintBlock(n.Else) })
		}
		return true

	case *ast.ReturnStmt:
		if n.Expr == nil {
			p.line("return")
		} else {
			p.line("return %s", p.Expr.Print(n.Expr))
		}
		return true

	case *ast.ThrowStmt:
		p.line("raise %s", p.Expr.Print(n.Err))
		return true

	case *ast.ForStmt:
		return p.forStmt(n)

	case *ast.WhileStmt:
		p.line("while %s:", p.Expr.Print(n.Cond))
		p.indented(func() { p.PrintBlock(n.Body) })
		return true

	case *ast.BreakStmt:
		p.line("break")
		return true

	case *ast.ContinueStmt:
		if update := p.State.CurrentForUpdate(); update != nil {
			p.line("%s", p.Expr.Print(update))
		}
		p.line("continue")
		return true

	case *ast.TryStmt:
		p.tryStmt(n)
		return true

	case *ast.SwitchStmt:
		p.switchStmt(n)
		return true
	}
	// Unsupported statement kind: leave a "# TODO" marker and report
	// EMIT002. A comment is not a statement, so the caller still falls
	// back to `pass` if nothing else in the block emitted code.
	p.line("# TODO: unsupported statement kind %T", s)
	if p.Expr.OnUnsupported != nil {
		p.Expr.OnUnsupported(&fxerrors.Report{
			Schema: fxerrors.Schema, Code: fxerrors.EMIT002, Phase: "emit",
			Message: fmt.Sprintf("unsupported statement kind %T", s), Pod: p.Expr.CurrentPod,
		})
	}
	return false
}

// forStmt lowers a C-style for loop to a Python while loop, since the
// update expression must run on every iteration including ones reached
// via `continue` (spec.md §4.6 For). The update is pushed onto
// State.ForLoopUpdate for the body's continue statements to consult,
// and re-emitted once more at the natural end of the loop body.
func (p *Printer) forStmt(n *ast.ForStmt) bool {
	if n.Init != nil {
		p.stmt(n.Init)
	}
	cond := "True"
	if n.Cond != nil {
		cond = p.Expr.Print(n.Cond)
	}
	p.line("while %s:", cond)
	p.State.PushForUpdate(n.Update)
	p.indented(func() {
		p.PrintBlock(n.Body)
		if n.Update != nil {
			p.line("%s", p.Expr.Print(n.Update))
		}
	})
	p.State.PopForUpdate()
	return true
}

func (p *Printer) tryStmt(n *ast.TryStmt) {
	p.line("try:")
	p.indented(func() { p.PrintBlock(n.Body) })
	for _, c := range n.Catches {
		if c.VarName == "" {
			p.line("except %s:", p.Expr.Resolve(c.ExcType, importresolve.RoleCatchClause).Use)
		} else {
			p.line("except %s as %s:", p.Expr.Resolve(c.ExcType, importresolve.RoleCatchClause).Use, namemap.Name(c.VarName))
		}
		p.indented(func() { p.PrintBlock(c.Body) })
	}
	if n.Finally != nil {
		p.line("finally:")
		p.indented(func() { p.PrintBlock(n.Finally) })
	}
}

// switchStmt caches the switch value exactly once, then lowers cases to
// an if/elif/else chain comparing with plain `==` (spec.md §8 scenario
// 4: `_switch_0 == 1`), evaluating the condition expression exactly
// once (spec.md §8 property 8).
func (p *Printer) switchStmt(n *ast.SwitchStmt) {
	varName := p.State.NextSwitchVar()
	p.line("%s = %s", varName, p.Expr.Print(n.Cond))

	first := true
	for _, c := range n.Cases {
		if c.Literal == nil {
			p.line("else:")
			p.indented(func() { p.PrintBlock(c.Body) })
			continue
		}
		kw := "elif"
		if first {
			kw = "if"
			first = false
		}
		p.line("%s (%s == %s):", kw, varName, p.Expr.Print(c.Literal))
		p.indented(func() { p.PrintBlock(c.Body) })
	}
}
