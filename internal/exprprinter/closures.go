package exprprinter

import (
	"fmt"
	"strings"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/namemap"
)

// closure lowers a closure literal. A multi-statement closure was
// already registered by StmtPrinter's pre-pass, hoisted to a top-level
// `def`, and wrapped exactly once by the `_closure_N = Func.make_closure(...)`
// statement emitted right after that def (internal/stmtprinter's
// emitClosureDef); every reference here just names that single wrapped
// callable (spec.md §3 invariant 5 / §8 property 5 — one closure, one
// callable object referenced at every use). An inline single-expression
// closure has no such statement, so it is wrapped at every use site.
func (p *Printer) closure(n *ast.Closure) string {
	if reg, ok := p.State.LookupClosure(n.Expr.ID); ok {
		return reg.Name
	}

	spec := ClosureSpecDict(n.Expr)
	return fmt.Sprintf("Func.make_closure(%s, %s)", spec, p.inlineLambda(n.Expr))
}

// inlineLambda renders a single-expression closure body as a Python
// lambda, with the boundary cases spec.md §8 names: zero parameters in
// a zero-param context get a placeholder `_=None` parameter (Python
// lambdas cannot have an empty parameter list act like a thunk the way
// make_closure's caller expects to invoke it), and parameters beyond the
// declared closure's signature arity are dropped. A closure that
// captures the enclosing method's `this` gets a trailing `_outer=self`
// default parameter, pinning the capture at lambda-creation time, and
// `this` inside its body lowers to `_outer` (spec.md §4.5 identifier
// resolution).
func (p *Printer) inlineLambda(c *ast.ClosureExpr) string {
	arity := len(c.DeclaredParams)
	if c.Signature != nil && len(c.Signature.FuncParams) < arity {
		arity = len(c.Signature.FuncParams)
	}
	params := c.DeclaredParams[:arity]

	names := make([]string, len(params))
	for i, prm := range params {
		names[i] = namemap.Name(prm.Name) + "=None"
	}
	if len(names) == 0 {
		names = []string{"_=None"}
	}

	capturesThis := capturesOuterThis(c)
	if capturesThis {
		names = append(names, "_outer=self")
	}

	var body string
	if capturesThis {
		restore := p.State.EnterClosureOuter()
		body = p.inlineBodyExpr(c.Body)
		restore()
	} else {
		body = p.inlineBodyExpr(c.Body)
	}
	return fmt.Sprintf("(lambda %s: %s)", strings.Join(names, ", "), body)
}

// capturesOuterThis reports whether a closure's captured-field set
// includes the enclosing method's `this` (spec.md §4.5 identifier
// resolution's "inline-lambda closure that captures outer this" case).
func capturesOuterThis(c *ast.ClosureExpr) bool {
	for _, f := range c.CapturedFieldNames {
		if f == "this" {
			return true
		}
	}
	return false
}

// inlineBodyExpr extracts the single expression of a single-statement
// closure body, whether written as a bare expression statement or an
// implicit return.
func (p *Printer) inlineBodyExpr(b *ast.Block) string {
	if b == nil || len(b.Stmts) == 0 {
		return "None"
	}
	switch s := b.Stmts[0].(type) {
	case *ast.ExprStmt:
		return p.Print(s.Expr)
	case *ast.ReturnStmt:
		if s.Expr == nil {
			return "None"
		}
		return p.Print(s.Expr)
	default:
		return "None"
	}
}

// ClosureSpecDict renders the {returns, immutable, params} literal every
// make_closure call carries (spec.md §4.5 Closures). Exported so
// internal/stmtprinter's emitClosureDef can build the identical dict for
// the one wrapping statement a hoisted multi-statement closure gets.
func ClosureSpecDict(c *ast.ClosureExpr) string {
	var params []string
	for _, prm := range c.DeclaredParams {
		params = append(params, fmt.Sprintf(`{"name": "%s", "type": "%s"}`, namemap.Name(prm.Name), prm.Type.String()))
	}
	returns := "sys::Obj"
	if c.Signature != nil && c.Signature.FuncReturn != nil {
		returns = c.Signature.FuncReturn.String()
	}
	return fmt.Sprintf(`{"returns": "%s", "immutable": "%s", "params": [%s]}`,
		returns, c.Immutable.String(), strings.Join(params, ", "))
}
