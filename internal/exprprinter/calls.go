package exprprinter

import (
	"fmt"
	"strings"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/internal/namemap"
)

// objUtilMethods is the isObjUtilMethod table (spec.md §4.5 step 6):
// Obj identity/hash/type methods on sys::Obj/sys::Map, and Num/Decimal
// conversions, all of which route through ObjUtil rather than an
// instance or static call.
var objUtilMethods = map[string]bool{
	"sys::Obj.hash": true, "sys::Obj.typeof": true, "sys::Obj.toImmutable": true,
	"sys::Obj.isImmutable": true, "sys::Obj.equals": true, "sys::Map.hash": true,
	"sys::Num.toInt": true, "sys::Num.toFloat": true, "sys::Num.toDecimal": true,
	"sys::Decimal.toInt": true, "sys::Decimal.toFloat": true,
}

var primitiveTypes = map[string]bool{
	"Bool": true, "Int": true, "Float": true, "Str": true, "Decimal": true,
}

func isConstValidatorCall(qname string) bool {
	switch qname {
	case "checkInCtor", "enterCtor", "exitCtor":
		return true
	}
	return strings.HasPrefix(qname, "checkFields$")
}

func (p *Printer) call(n *ast.Call) string {
	// Step 1: compiler-injected const-field validators are dropped.
	if isConstValidatorCall(n.MethodQname) || isConstValidatorCall(n.MethodName) {
		return "None"
	}

	// Step 2: safe navigation.
	if n.Kind == ast.CallSafeNav {
		return p.safeNavCall(n)
	}

	// Step 3: this.make(x) cvar wrapper.
	if n.Kind == ast.CallCvarWrap {
		return fmt.Sprintf("ObjUtil.cvar(%s)", p.Print(n.Args[0]))
	}

	// Step 4: dynamic `->` call.
	if n.Kind == ast.CallDynamicTrap {
		argsList := "None"
		if len(n.Args) > 0 {
			argsList = "[" + p.argList(n.Args) + "]"
		}
		return fmt.Sprintf("ObjUtil.trap(%s, '%s', %s)", p.Print(n.Target), n.MethodName, argsList)
	}

	// Step 5: Func.call / Func.callList.
	if n.Kind == ast.CallFuncInvoke {
		if n.MethodName == "callList" {
			return fmt.Sprintf("%s(*%s)", p.Print(n.Target), p.Print(n.Args[0]))
		}
		return fmt.Sprintf("%s(%s)", p.Print(n.Target), p.argList(n.Args))
	}

	snakeName := namemap.Name(n.MethodName)

	// Step 6: isObjUtilMethod table.
	if objUtilMethods[n.MethodQname] {
		target := "None"
		if n.Target != nil {
			target = p.Print(n.Target)
		}
		return joinCall(fmt.Sprintf("ObjUtil.%s", snakeName), target, n.Args, p)
	}

	// Step 7: primitive dispatch — target isn't a static-target expr.
	if _, isStaticTarget := n.Target.(*ast.StaticTarget); !isStaticTarget && n.Target != nil {
		if t := n.TargetStaticType; t != nil && primitiveTypes[t.Name] && t.InSysPod() {
			return joinCall(fmt.Sprintf("%s.%s", t.Name, snakeName), p.Print(n.Target), n.Args, p)
		}
	}

	// Step 8: private non-static non-ctor method -> static dispatch.
	if n.IsPrivate && !n.IsStatic && !n.IsCtor {
		className := p.currentClassName()
		target := "self"
		if n.Target != nil {
			target = p.Print(n.Target)
		}
		return joinCall(fmt.Sprintf("%s.%s", className, snakeName), target, n.Args, p)
	}

	// Step 9: static method.
	if n.IsStatic {
		className := p.currentClassName()
		if st, ok := n.Target.(*ast.StaticTarget); ok {
			className = st.Type.Name
		}
		return fmt.Sprintf("%s.%s(%s)", className, snakeName, p.argList(n.Args))
	}

	// Step 10: default instance dispatch.
	target := "self"
	if n.Target != nil {
		target = p.Print(n.Target)
	} else if p.State.InStaticContext {
		target = p.currentClassName()
	}
	return fmt.Sprintf("%s.%s(%s)", target, snakeName, p.argList(n.Args))
}

// joinCall renders "<prefix>(<target>, <args...>)", used by the
// ObjUtil/primitive/static-dispatch forms that always thread the target
// as the first positional argument.
func joinCall(prefix, target string, args []ast.Expr, p *Printer) string {
	rendered := p.argList(args)
	if rendered == "" {
		return fmt.Sprintf("%s(%s)", prefix, target)
	}
	return fmt.Sprintf("%s(%s, %s)", prefix, target, rendered)
}

func (p *Printer) argList(args []ast.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = p.Print(a)
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) currentClassName() string {
	if p.State.CurrentType == nil {
		return "self"
	}
	return p.State.CurrentType.Name
}

// safeNavCall rewrites the target to a synthetic `_safe_` local so it is
// evaluated exactly once, then lowers the rest of the call normally
// (spec.md §8 property 7: safe-navigation never evaluates the target
// more than once).
func (p *Printer) safeNavCall(n *ast.Call) string {
	inner := *n
	inner.Kind = ast.CallOrdinary
	inner.Target = &ast.LocalVar{Name: "_safe_"}
	body := p.call(&inner)
	return fmt.Sprintf("((lambda _safe_: None if _safe_ is None else %s)(%s))", body, p.Print(n.Target))
}
