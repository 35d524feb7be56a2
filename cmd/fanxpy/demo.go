package main

import (
	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/config"
)

// demoPods builds one minimal pod per config.Pods entry: a single type
// deriving from sys::Obj with no fields or methods. It exists so `fanxpy
// emit` is a runnable smoke test of the PodDriver pipeline against a
// real config file without requiring a live front-end process on the
// other end of a pipe (see runEmit's doc comment).
func demoPods(cfg *config.Config) ([]*ast.Pod, error) {
	pods := make([]*ast.Pod, 0, len(cfg.Pods))
	for _, pc := range cfg.Pods {
		pods = append(pods, &ast.Pod{
			Name: pc.Name,
			Types: []*ast.TypeDef{
				{
					Qname: pc.Name + "::Placeholder",
					Pod:   pc.Name,
					Name:  "Placeholder",
					Base:  &ast.TypeRef{PodName: "sys", Name: "Obj", Signature: "sys::Obj"},
				},
			},
		})
	}
	return pods, nil
}
