package poddriver

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// renderInit builds the pod's __init__.py: a name->module table and a
// lazy module-level __getattr__ guarded against re-entrant loads by a
// `_loading` set, so a re-entrant lookup of a name that is still loading
// raises ImportError instead of recursing forever (spec.md §4.8).
func renderInit(pod string, typeNames []string) string {
	sorted := append([]string{}, typeNames...)
	slices.Sort(sorted)

	var b strings.Builder
	b.WriteString("import importlib\n\n")
	fmt.Fprintf(&b, "_MODULES = {\n")
	for _, name := range sorted {
		fmt.Fprintf(&b, "    '%s': '%s.%s',\n", name, pod, name)
	}
	b.WriteString("}\n\n")
	b.WriteString("_loading = set()\n\n")
	b.WriteString("def __getattr__(name):\n")
	b.WriteString("    if name not in _MODULES:\n")
	fmt.Fprintf(&b, "        raise AttributeError(f'module fan.%s has no attribute {name}')\n", pod)
	b.WriteString("    if name in _loading:\n")
	fmt.Fprintf(&b, "        raise ImportError(f'circular import resolving fan.%s.{name}')\n", pod)
	b.WriteString("    _loading.add(name)\n")
	b.WriteString("    try:\n")
	b.WriteString("        mod = importlib.import_module('.' + name, __name__)\n")
	b.WriteString("        value = getattr(mod, name)\n")
	b.WriteString("        globals()[name] = value\n")
	b.WriteString("        return value\n")
	b.WriteString("    finally:\n")
	b.WriteString("        _loading.discard(name)\n")
	return b.String()
}
