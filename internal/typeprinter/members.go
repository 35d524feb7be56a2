package typeprinter

import (
	"fmt"
	"strings"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/namemap"
)

// printInit emits __init__, initializing every instance field to its
// declared initializer lowering (or None). Named constructors become
// static factories that build the instance, call __init__, then run
// the per-constructor body as a separate method (spec.md §4.7 step 7).
func (p *Printer) printInit(out *strings.Builder, t *ast.TypeDef) {
	out.WriteString("    def __init__(self):\n")
	wrote := false
	for _, f := range t.Fields {
		if f.Flags.Static {
			continue
		}
		name := namemap.Name(f.Name)
		init := "None"
		if f.Initializer != nil {
			init = p.Expr.Print(f.Initializer)
		}
		fmt.Fprintf(out, "        self._%s = %s\n", name, init)
		wrote = true
	}
	if !wrote {
		out.WriteString("        pass\n")
	}

	for _, m := range t.Methods {
		if !m.IsCtor() {
			continue
		}
		p.printCtorFactory(out, t, m)
	}
}

// printCtorFactory emits a named constructor as a static factory:
// `make()` builds the instance via __init__, then invokes a per-ctor
// body method so ctor logic never runs twice and __init__ never throws.
// The factory's own parameter list never includes `self` — it is a
// plain static function called as `Class.name(args)` by ExprPrinter's
// construction() — `self` only appears as the local instance variable
// it builds and returns.
func (p *Printer) printCtorFactory(out *strings.Builder, t *ast.TypeDef, m *ast.MethodDef) {
	factoryName := "make"
	if m.Name != "" {
		factoryName = namemap.Name(m.Name)
	}
	factoryParams := renderArgParams(m.Parameters)
	ctorParams := renderParams(m.Parameters)
	args := renderArgNames(m.Parameters)

	fmt.Fprintf(out, "\n    @staticmethod\n    def %s(%s):\n", factoryName, factoryParams)
	fmt.Fprintf(out, "        self = %s()\n", t.Name)
	if m.Body != nil {
		fmt.Fprintf(out, "        %s._ctor_%s(self, %s)\n", t.Name, namemap.Name(m.Name), args)
	}
	out.WriteString("        return self\n")

	if m.Body != nil {
		fmt.Fprintf(out, "\n    @staticmethod\n    def _ctor_%s(%s):\n", namemap.Name(m.Name), ctorParams)
		p.State.ResetForMethod(m)
		p.State.Indent = 2
		p.Stmt.PrintMethodBody(m.Body)
		out.WriteString(p.State.Out.String())
		p.State.Out.Reset()
	}
}

func renderParams(params []*ast.Param) string {
	names := make([]string, 0, len(params)+1)
	names = append(names, "self")
	for _, prm := range params {
		n := namemap.Name(prm.Name)
		if prm.HasDefault {
			n += "=None"
		}
		names = append(names, n)
	}
	return strings.Join(names, ", ")
}

// renderArgParams renders a parameter list with no leading `self`, for
// static call sites that never receive an instance argument.
func renderArgParams(params []*ast.Param) string {
	names := make([]string, 0, len(params))
	for _, prm := range params {
		n := namemap.Name(prm.Name)
		if prm.HasDefault {
			n += "=None"
		}
		names = append(names, n)
	}
	return strings.Join(names, ", ")
}

func renderArgNames(params []*ast.Param) string {
	names := make([]string, len(params))
	for i, prm := range params {
		names[i] = namemap.Name(prm.Name)
	}
	return strings.Join(names, ", ")
}

// printFieldAccessors emits invariant-2 accessor methods: a getter
// always, and a setter unless the field is readonly (spec.md §3
// invariant 2, §4.5 Field access).
func (p *Printer) printFieldAccessors(out *strings.Builder, t *ast.TypeDef, f *ast.FieldDef) {
	name := namemap.Name(f.Name)
	if f.Flags.Static {
		fmt.Fprintf(out, "    @staticmethod\n    def %s(_val_=None):\n", name)
		out.WriteString("        cls = " + t.Name + "\n")
		for _, sf := range t.Fields {
			if sf.Flags.Static && sf.Initializer != nil {
				out.WriteString("        cls._static_init()\n")
				break
			}
		}
		fmt.Fprintf(out, "        if _val_ is not None:\n            cls._%s = _val_\n            return None\n", name)
		fmt.Fprintf(out, "        return cls._%s\n\n", name)
		return
	}

	if f.Flags.Readonly {
		fmt.Fprintf(out, "    def %s(self):\n", name)
		fmt.Fprintf(out, "        return self._%s\n\n", name)
		return
	}

	fmt.Fprintf(out, "    def %s(self, _val_=None):\n", name)
	out.WriteString("        if _val_ is not None:\n")
	fmt.Fprintf(out, "            self._%s = _val_\n", name)
	out.WriteString("            return None\n")
	fmt.Fprintf(out, "        return self._%s\n\n", name)
}

// printMethod lowers one non-constructor method body. Static methods
// get @staticmethod; private non-static methods are still emitted as
// ordinary instance methods since ExprPrinter rewrites their call
// sites to static-style dispatch on the class (spec.md §4.5 step 8).
func (p *Printer) printMethod(out *strings.Builder, t *ast.TypeDef, m *ast.MethodDef) {
	name := namemap.Name(m.Name)
	params := renderParams(m.Parameters)
	if m.IsStatic() {
		params = strings.TrimPrefix(params, "self, ")
		if params == "self" {
			params = ""
		}
		fmt.Fprintf(out, "    @staticmethod\n    def %s(%s):\n", name, params)
	} else {
		fmt.Fprintf(out, "    def %s(%s):\n", name, params)
	}

	if m.Body == nil {
		out.WriteString("        raise NotImplementedError\n\n")
		return
	}

	p.State.ResetForMethod(m)
	p.State.Indent = 2
	p.Stmt.PrintMethodBody(m.Body)
	out.WriteString(p.State.Out.String())
	p.State.Out.Reset()
	out.WriteString("\n")
}

// printStaticInit emits the reentrancy-guarded static field initializer
// (spec.md §4.7 step 10): static fields with non-trivial initializers
// run once, guarded against re-entry during their own evaluation.
func (p *Printer) printStaticInit(out *strings.Builder, t *ast.TypeDef) {
	var statics []*ast.FieldDef
	for _, f := range t.Fields {
		if f.Flags.Static && f.Initializer != nil {
			statics = append(statics, f)
		}
	}
	if len(statics) == 0 {
		return
	}
	fmt.Fprintf(out, "    _static_init_in_progress = False\n")
	fmt.Fprintf(out, "    _static_init_done = False\n\n")
	fmt.Fprintf(out, "    @staticmethod\n    def _static_init():\n")
	fmt.Fprintf(out, "        if %s._static_init_done or %s._static_init_in_progress:\n            return\n", t.Name, t.Name)
	fmt.Fprintf(out, "        %s._static_init_in_progress = True\n", t.Name)
	for _, f := range statics {
		name := namemap.Name(f.Name)
		fmt.Fprintf(out, "        %s._%s = %s\n", t.Name, name, p.Expr.Print(f.Initializer))
	}
	fmt.Fprintf(out, "        %s._static_init_done = True\n", t.Name)
	fmt.Fprintf(out, "        %s._static_init_in_progress = False\n\n", t.Name)
}

// printReflection emits the registration block (spec.md §4.7 step 11).
// Every type reference is emitted as a string, never a live import, so
// reflection metadata never participates in import-cycle resolution.
func (p *Printer) printReflection(out *strings.Builder, t *ast.TypeDef) {
	fmt.Fprintf(out, "_t = Type.find('%s')\n", t.Qname)
	for _, f := range t.Fields {
		fmt.Fprintf(out, "_t.af_('%s', %d, '%s', {})\n", namemap.Name(f.Name), fieldFlagsMask(f.Flags), f.Type.String())
	}
	for _, m := range t.Methods {
		var params []string
		for _, prm := range m.Parameters {
			def := "False"
			if prm.HasDefault {
				def = "True"
			}
			params = append(params, fmt.Sprintf("Param('%s', '%s', %s)", namemap.Name(prm.Name), prm.Type.String(), def))
		}
		fmt.Fprintf(out, "_t.am_('%s', %d, '%s', [%s], {})\n", namemap.Name(m.Name), methodFlagsMask(m.Flags), m.Returns.String(), strings.Join(params, ", "))
	}
}

func fieldFlagsMask(f ast.FieldFlags) int {
	mask := 0
	if f.Static {
		mask |= 1
	}
	if f.Const {
		mask |= 2
	}
	if f.Private {
		mask |= 4
	}
	if f.Readonly {
		mask |= 8
	}
	return mask
}

func methodFlagsMask(f ast.MethodFlags) int {
	mask := 0
	if f.Static {
		mask |= 1
	}
	if f.Private {
		mask |= 4
	}
	if f.Abstract {
		mask |= 16
	}
	if f.Override {
		mask |= 32
	}
	return mask
}
