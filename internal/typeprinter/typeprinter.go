// Package typeprinter emits one Python source file per SL type,
// following the region order in spec.md §4.7: path setup, type-hint
// imports, the sys import, direct and namespace imports, the class
// statement, __init__, field accessors, methods, static init, and the
// reflection registration block.
package typeprinter

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/exprprinter"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
	"github.com/fantom-lang/fanxpy/internal/importresolve"
	"github.com/fantom-lang/fanxpy/internal/namemap"
	"github.com/fantom-lang/fanxpy/internal/printstate"
	"github.com/fantom-lang/fanxpy/internal/stmtprinter"
)

// Printer emits one *ast.TypeDef as complete Python source text.
type Printer struct {
	State *printstate.State
	Expr  *exprprinter.Printer
	Stmt  *stmtprinter.Printer
	Pod   string
}

// New builds a Printer bound to a pod; every type it prints resolves
// imports relative to that pod. onUnsupported receives every recoverable
// EMIT###/TYP### finding surfaced while lowering the type.
func New(pod string, onUnsupported func(*fxerrors.Report)) *Printer {
	state := printstate.New()
	resolve := func(t *ast.TypeRef, role importresolve.Role) importresolve.Resolution {
		return importresolve.Resolve(pod, t, role)
	}
	ep := exprprinter.New(state, pod, resolve, onUnsupported)
	return &Printer{
		State: state,
		Expr:  ep,
		Stmt:  stmtprinter.New(state, ep),
		Pod:   pod,
	}
}

// Print renders one type's complete file text.
func (p *Printer) Print(t *ast.TypeDef) string {
	p.State.CurrentType = t
	var out strings.Builder

	imports := p.collectImports(t)

	out.WriteString("import sys as sys_module\n")
	out.WriteString("sys_module.path.insert(0, '.')\n\n")
	out.WriteString("from typing import Optional, Callable, List as TypingList, Dict as TypingDict\n\n")

	if imports.needsSysPrefix {
		out.WriteString("from fan import sys\n")
	}
	for _, line := range imports.direct {
		out.WriteString(line + "\n")
	}
	for _, line := range imports.namespace {
		out.WriteString(line + "\n")
	}
	out.WriteString("from fan.sys.Obj import Obj\n")
	out.WriteString("from fan.sys.ObjUtil import ObjUtil\n\n")

	if t.IsEnum() {
		p.printEnum(&out, t)
		return out.String()
	}

	bases := p.classBases(t)
	fmt.Fprintf(&out, "class %s(%s):\n", t.Name, strings.Join(bases, ", "))

	for _, f := range t.Fields {
		if f.Flags.Static {
			fmt.Fprintf(&out, "    %s = None\n", "_"+namemap.Name(f.Name))
		}
	}
	out.WriteString("\n")

	p.printInit(&out, t)
	out.WriteString("\n")

	for _, f := range t.Fields {
		p.printFieldAccessors(&out, t, f)
	}

	for _, m := range t.Methods {
		if m.IsCtor() {
			continue
		}
		p.printMethod(&out, t, m)
	}

	p.printStaticInit(&out, t)
	p.printReflection(&out, t)

	return out.String()
}

// PrintReflectionOnly renders just the reflection registration block
// (spec.md §4.8): used when a hand-written native file is the
// authoritative class body and only the reflection block is generated.
func (p *Printer) PrintReflectionOnly(t *ast.TypeDef) string {
	p.State.CurrentType = t
	var out strings.Builder
	p.printReflection(&out, t)
	return out.String()
}

func (p *Printer) classBases(t *ast.TypeDef) []string {
	bases := []string{}
	if t.Base != nil {
		bases = append(bases, p.Expr.Resolve(t.Base, importresolve.RoleBaseOrMixin).Use)
	} else {
		bases = append(bases, "Obj")
	}
	for _, m := range t.Mixins {
		bases = append(bases, p.Expr.Resolve(m, importresolve.RoleBaseOrMixin).Use)
	}
	return bases
}

// collectImports walks the type's base, mixins, field/param/return type
// references, and catch-clause exception types to build the direct and
// namespace import regions (spec.md §4.7 steps 3-5), deduplicated and
// sorted for deterministic output.
type importSet struct {
	needsSysPrefix bool
	direct         []string
	namespace      []string
}

func (p *Printer) collectImports(t *ast.TypeDef) importSet {
	direct := map[string]string{}
	namespace := map[string]string{}
	needsSys := false

	note := func(ref *ast.TypeRef, role importresolve.Role) {
		if ref == nil {
			return
		}
		res := p.Expr.Resolve(ref, role)
		switch res.Form {
		case importresolve.FormSysPrefix:
			needsSys = true
		case importresolve.FormDirect:
			if res.TopImport != "" {
				direct[res.TopImport] = res.TopImport
			}
		case importresolve.FormNamespace:
			if res.TopImport != "" {
				namespace[res.TopImport] = res.TopImport
			}
		}
	}

	note(t.Base, importresolve.RoleBaseOrMixin)
	for _, m := range t.Mixins {
		note(m, importresolve.RoleBaseOrMixin)
	}
	for _, f := range t.Fields {
		note(f.Type, importresolve.RoleOrdinary)
	}
	for _, m := range t.Methods {
		for _, prm := range m.Parameters {
			note(prm.Type, importresolve.RoleOrdinary)
		}
		note(m.Returns, importresolve.RoleOrdinary)
		walkCatchTypes(m.Body, func(ref *ast.TypeRef) { note(ref, importresolve.RoleCatchClause) })
	}

	return importSet{
		needsSysPrefix: needsSys,
		direct:         sortedValues(direct),
		namespace:      sortedValues(namespace),
	}
}

func sortedValues(m map[string]string) []string {
	out := maps.Values(m)
	slices.Sort(out)
	return out
}

func walkCatchTypes(b *ast.Block, fn func(*ast.TypeRef)) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		switch n := s.(type) {
		case *ast.TryStmt:
			for _, c := range n.Catches {
				fn(c.ExcType)
			}
			walkCatchTypes(n.Body, fn)
			for _, c := range n.Catches {
				walkCatchTypes(c.Body, fn)
			}
			walkCatchTypes(n.Finally, fn)
		case *ast.IfStmt:
			walkCatchTypes(n.Then, fn)
			walkCatchTypes(n.Else, fn)
		case *ast.ForStmt:
			walkCatchTypes(n.Body, fn)
		case *ast.WhileStmt:
			walkCatchTypes(n.Body, fn)
		case *ast.SwitchStmt:
			for _, c := range n.Cases {
				walkCatchTypes(c.Body, fn)
			}
		}
	}
}
