// Package importresolve chooses, for a given (current pod, target type)
// pair, which of three Python import forms ExprPrinter and TypePrinter
// should use: a direct top-of-file import, a namespace-qualified
// reference, or a per-use dynamic __import__ call that breaks
// module-initialization cycles.
package importresolve

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
)

// Form is the chosen import strategy for one (currentPod, target) pair.
type Form int

const (
	// FormDirect: `from fan.<pod>.<Name> import <Name>` at the top of
	// the file, used for base/mixin classes and catch-clause exception
	// types (Python requires the name in local scope for `except T`).
	FormDirect Form = iota
	// FormSysPrefix: a single `from fan import sys` at top, then
	// `sys.<Name>` at every use.
	FormSysPrefix
	// FormDynamicImport: per-use
	// `__import__('fan.<pod>.<Name>', fromlist=['<Name>']).<Name>`,
	// breaking init cycles within the same non-sys pod at the cost of a
	// per-call lookup (the runtime caches this).
	FormDynamicImport
	// FormNamespace: `from fan import <pod>` at top, `<pod>.<Name>` at
	// every use, for a cross-pod reference to a different non-sys pod.
	FormNamespace
)

// Resolution is the decision for one reference, plus the text fragments
// needed to realize it.
type Resolution struct {
	Form Form
	// TopImport is the statement to place in the file's import region,
	// empty if this resolution contributes no new top-level import
	// (FormDynamicImport never does; FormSysPrefix/FormNamespace only
	// contribute once per pod, which the caller is responsible for
	// deduplicating).
	TopImport string
	// Use is the expression fragment naming the type at a use site, e.g.
	// "Widget", "sys.Int", "acme.Widget", or the __import__(...) call.
	Use string
}

// Role distinguishes the context a target type is referenced from,
// since base/mixin/catch-clause references always resolve direct
// regardless of pod.
type Role int

const (
	RoleOrdinary Role = iota
	RoleBaseOrMixin
	RoleCatchClause
)

// Resolve implements the table in spec.md §4.3.
func Resolve(currentPod string, target *ast.TypeRef, role Role) Resolution {
	if target.IsJavaFFI() {
		sig := ast.SanitizeJavaSig(target.Signature)
		return Resolution{Form: FormDirect, Use: sig}
	}

	if role == RoleBaseOrMixin || role == RoleCatchClause {
		return Resolution{
			Form:      FormDirect,
			TopImport: fmt.Sprintf("from fan.%s.%s import %s", target.PodName, target.Name, target.Name),
			Use:       target.Name,
		}
	}

	if target.InSysPod() && currentPod != "sys" {
		return Resolution{
			Form:      FormSysPrefix,
			TopImport: "from fan import sys",
			Use:       "sys." + target.Name,
		}
	}

	if target.PodName == currentPod {
		return Resolution{
			Form: FormDynamicImport,
			Use: fmt.Sprintf("__import__('fan.%s.%s', fromlist=['%s']).%s",
				target.PodName, target.Name, target.Name, target.Name),
		}
	}

	// Different non-sys pod.
	return Resolution{
		Form:      FormNamespace,
		TopImport: fmt.Sprintf("from fan import %s", target.PodName),
		Use:       target.PodName + "." + target.Name,
	}
}
