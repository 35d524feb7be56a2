// Package poddriver orchestrates emission of whole pods: ordering pods
// by their declared dependencies, deciding per type whether a
// hand-written native file overrides the generated class body, and
// writing the pod's output directory atomically. Grounded on the
// teacher's internal/link.TopoSortFromRoot DFS-with-cycle-detection
// pattern (internal/link/topo.go).
package poddriver

import (
	"fmt"
	"strings"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/fxerrors"
)

// OrderPods returns pods sorted so that every pod appears after all of
// its DependsOn entries (dependencies first), detecting cycles as a
// fatal INV003 report.
func OrderPods(pods []*ast.Pod) ([]*ast.Pod, error) {
	byName := make(map[string]*ast.Pod, len(pods))
	for _, p := range pods {
		byName[p.Name] = p
	}

	visited := make(map[string]bool)
	inPath := make(map[string]bool)
	var sorted []*ast.Pod
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		if visited[name] {
			return nil
		}
		if inPath[name] {
			cycle := append(append([]string{}, path...), name)
			return fxerrors.Wrap(&fxerrors.Report{
				Schema:  fxerrors.Schema,
				Code:    fxerrors.INV003,
				Phase:   "pod-order",
				Message: fmt.Sprintf("pod dependency cycle: %s", strings.Join(cycle, " -> ")),
			})
		}

		pod, ok := byName[name]
		if !ok {
			// A pod depending on one outside this run's pod set is
			// assumed already emitted/available; nothing to order.
			return nil
		}

		inPath[name] = true
		path = append(path, name)
		for _, dep := range pod.DependsOn {
			if dep == "sys" {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		inPath[name] = false
		path = path[:len(path)-1]
		visited[name] = true
		sorted = append(sorted, pod)
		return nil
	}

	for _, p := range pods {
		if err := visit(p.Name); err != nil {
			return nil, err
		}
	}
	return sorted, nil
}
