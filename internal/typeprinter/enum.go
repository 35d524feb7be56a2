package typeprinter

import (
	"fmt"
	"strings"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/namemap"
)

// printEnum specializes the class body for an enum type (spec.md §4.7):
// a lazily-built `_vals` list of instances constructed via
// `object.__new__` (bypassing __init__, since enum constants are
// built once from their declared static fields), each carrying
// `_ordinal`/`_name`, with `ordinal()`/`name()` accessors and one
// static accessor per declared constant.
func (p *Printer) printEnum(out *strings.Builder, t *ast.TypeDef) {
	bases := p.classBases(t)
	fmt.Fprintf(out, "class %s(%s):\n", t.Name, strings.Join(bases, ", "))
	out.WriteString("    _vals = None\n\n")

	var constants []*ast.FieldDef
	for _, f := range t.Fields {
		if f.Flags.Static && f.Flags.Const {
			constants = append(constants, f)
		}
	}

	out.WriteString("    def __init__(self):\n        pass\n\n")

	out.WriteString("    @staticmethod\n    def _init_vals():\n")
	fmt.Fprintf(out, "        if %s._vals is not None:\n            return\n", t.Name)
	fmt.Fprintf(out, "        %s._vals = []\n", t.Name)
	for i, f := range constants {
		const_ := fmt.Sprintf("_v%d", i)
		fmt.Fprintf(out, "        %s = object.__new__(%s)\n", const_, t.Name)
		fmt.Fprintf(out, "        %s._ordinal = %d\n", const_, i)
		fmt.Fprintf(out, "        %s._name = '%s'\n", const_, f.Name)
		fmt.Fprintf(out, "        %s._%s = %s\n", t.Name, namemap.Name(f.Name), const_)
		fmt.Fprintf(out, "        %s._vals.append(%s)\n", t.Name, const_)
	}
	out.WriteString("\n")

	for _, f := range constants {
		name := namemap.Name(f.Name)
		fmt.Fprintf(out, "    @staticmethod\n    def %s():\n", name)
		fmt.Fprintf(out, "        %s._init_vals()\n", t.Name)
		fmt.Fprintf(out, "        return %s._%s\n\n", t.Name, name)
	}

	out.WriteString("    def ordinal(self):\n        return self._ordinal\n\n")
	out.WriteString("    def name(self):\n        return self._name\n\n")

	for _, m := range t.Methods {
		if m.IsCtor() || m.IsSynthetic() {
			continue
		}
		p.printMethod(out, t, m)
	}

	p.printReflection(out, t)
}
