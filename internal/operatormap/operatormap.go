// Package operatormap holds the two static tables that map SL operator
// method qnames to Python operator tokens. Integer division and modulo
// are deliberately absent: Python floor-divides where SL truncates
// toward zero, so those route through runtime helpers instead
// (see internal/exprprinter).
package operatormap

// unary maps an SL unary-operator method qname to its Python prefix token.
var unary = map[string]string{
	"sys::Bool.not":    "not ",
	"sys::Int.negate":   "-",
	"sys::Float.negate": "-",
}

// binary maps an SL binary-operator method qname to its Python infix token.
var binary = map[string]string{
	"sys::Int.plus":      "+",
	"sys::Int.minus":     "-",
	"sys::Int.mult":      "*",
	"sys::Float.plus":    "+",
	"sys::Float.minus":   "-",
	"sys::Float.mult":    "*",
	"sys::Float.div":     "/",
	"sys::Decimal.plus":  "+",
	"sys::Decimal.minus": "-",
	"sys::Decimal.mult":  "*",
	"sys::Decimal.div":   "/",
	// sys::Str.plus is handled specially by ExprPrinter (it forces an
	// implicit toStr conversion on the non-string operand) rather than
	// by direct token substitution; see exprprinter's additive.
}

// Unary returns the Python prefix token for qname and whether it is
// present in the table.
func Unary(qname string) (string, bool) {
	tok, ok := unary[qname]
	return tok, ok
}

// Binary returns the Python infix token for qname and whether it is
// present in the table. Integer `/` and `%` are absent on purpose.
func Binary(qname string) (string, bool) {
	tok, ok := binary[qname]
	return tok, ok
}

// IsIntegerDivOrMod reports whether qname is sys::Int.div or sys::Int.mod,
// the two operators this table excludes so callers route them to
// ObjUtil.div / ObjUtil.mod (truncated, not floor, semantics).
func IsIntegerDivOrMod(qname string) bool {
	return qname == "sys::Int.div" || qname == "sys::Int.mod"
}
