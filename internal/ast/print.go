package ast

import (
	"encoding/json"
	"fmt"
)

// Print produces a deterministic JSON representation of an AST node,
// used by golden-snapshot tests over the input fixtures this module's
// printers consume. It is not part of the emission path — ExprPrinter,
// StmtPrinter, and TypePrinter never serialize through JSON; this exists
// purely so a test can assert "the fixture I built is the tree I meant
// to build" independent of the Python text it later produces.
func Print(node interface{}) string {
	if node == nil {
		return "null"
	}
	data, err := json.MarshalIndent(simplify(node), "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

// Compact is Print without indentation, for inline test assertions.
func Compact(node interface{}) string {
	data, err := json.Marshal(simplify(node))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

func simplify(node interface{}) interface{} {
	switch n := node.(type) {
	case nil:
		return nil
	case *TypeDef:
		m := map[string]interface{}{"type": "TypeDef", "qname": n.Qname}
		if n.Base != nil {
			m["base"] = n.Base.Signature
		}
		if len(n.Fields) > 0 {
			fs := make([]interface{}, len(n.Fields))
			for i, f := range n.Fields {
				fs[i] = simplify(f)
			}
			m["fields"] = fs
		}
		if len(n.Methods) > 0 {
			ms := make([]interface{}, len(n.Methods))
			for i, me := range n.Methods {
				ms[i] = simplify(me)
			}
			m["methods"] = ms
		}
		return m
	case *FieldDef:
		return map[string]interface{}{
			"type": "FieldDef",
			"name": n.Name,
			"sig":  n.Type.String(),
		}
	case *MethodDef:
		m := map[string]interface{}{"type": "MethodDef", "name": n.Name}
		if n.Body != nil {
			m["body"] = simplify(n.Body)
		}
		return m
	case *Block:
		stmts := make([]interface{}, len(n.Stmts))
		for i, s := range n.Stmts {
			stmts[i] = simplify(s)
		}
		return map[string]interface{}{"type": "Block", "stmts": stmts}
	case *ExprStmt:
		return map[string]interface{}{"type": "ExprStmt", "expr": simplify(n.Expr)}
	case *LocalDef:
		m := map[string]interface{}{"type": "LocalDef", "name": n.Name}
		if n.Initializer != nil {
			m["init"] = simplify(n.Initializer)
		}
		return m
	case *IfStmt:
		m := map[string]interface{}{"type": "IfStmt", "cond": simplify(n.Cond), "then": simplify(n.Then)}
		if n.Else != nil {
			m["else"] = simplify(n.Else)
		}
		return m
	case *ReturnStmt:
		m := map[string]interface{}{"type": "ReturnStmt"}
		if n.Expr != nil {
			m["expr"] = simplify(n.Expr)
		}
		return m
	case *IntLit:
		return map[string]interface{}{"type": "IntLit", "value": n.Value}
	case *StrLit:
		return map[string]interface{}{"type": "StrLit", "value": n.Value}
	case *BoolLit:
		return map[string]interface{}{"type": "BoolLit", "value": n.Value}
	case *LocalVar:
		return map[string]interface{}{"type": "LocalVar", "name": n.Name}
	case *Call:
		m := map[string]interface{}{"type": "Call", "method": n.MethodName}
		if n.Target != nil {
			m["target"] = simplify(n.Target)
		}
		if len(n.Args) > 0 {
			args := make([]interface{}, len(n.Args))
			for i, a := range n.Args {
				args[i] = simplify(a)
			}
			m["args"] = args
		}
		return m
	default:
		return map[string]interface{}{"type": fmt.Sprintf("%T", node), "_note": "not handled by printer"}
	}
}
