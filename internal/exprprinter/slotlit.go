package exprprinter

import (
	"fmt"

	"github.com/fantom-lang/fanxpy/internal/ast"
)

// slotLiteral lowers `T#slot` to Method.find(...) or Field.find(...)
// depending on which kind of slot the front-end resolved.
func (p *Printer) slotLiteral(n *ast.SlotLiteral) string {
	qname := fmt.Sprintf("%s.%s", n.Of.Signature, n.Slot)
	if n.Kind == ast.SlotField {
		return fmt.Sprintf("Field.find('%s')", qname)
	}
	return fmt.Sprintf("Method.find('%s')", qname)
}
