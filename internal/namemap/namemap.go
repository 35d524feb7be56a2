// Package namemap rewrites SL identifiers into Python-legal, idiomatic
// names: the synthetic-name separator `$` becomes `_`, camelCase becomes
// snake_case, and collisions with Python keywords or a fixed builtins
// set get an escaping trailing underscore. The transform is pure,
// total, and — on names with no remaining collision — idempotent.
package namemap

import "strings"

// pythonKeywords is the full set of 35 Python 3 keywords.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// collidingBuiltins is the fixed enumerated set of builtins whose shadowing
// would be confusing even though Python permits it.
var collidingBuiltins = map[string]bool{
	"type": true, "hash": true, "id": true, "list": true, "map": true,
	"str": true, "int": true, "float": true, "bool": true, "self": true,
	"abs": true, "all": true, "any": true, "min": true, "max": true,
	"pow": true, "round": true, "set": true, "dir": true, "oct": true,
	"open": true, "vars": true, "print": true,
}

// Name rewrites one SL identifier to its Python form.
func Name(x string) string {
	x = replaceSyntheticSeparator(x)
	x = toSnakeCase(x)
	if pythonKeywords[x] || collidingBuiltins[x] {
		x += "_"
	}
	return x
}

// replaceSyntheticSeparator replaces the front-end's synthetic-name
// separator `$` (e.g. "n$3" for a captured-local clone) with `_`.
func replaceSyntheticSeparator(x string) string {
	if strings.IndexByte(x, '$') < 0 {
		return x
	}
	return strings.ReplaceAll(x, "$", "_")
}

// toSnakeCase converts camelCase to snake_case. All-lowercase input is
// returned unchanged (fast path). An underscore is inserted before an
// upper-case letter when the previous character is lowercase or a digit,
// or when the previous character is upper-case but the next is
// lowercase — the acronym-boundary case ("XMLParser" -> "xml_parser",
// "utf16BE" -> "utf16_be").
func toSnakeCase(x string) string {
	if isAllLower(x) {
		return x
	}

	var b strings.Builder
	b.Grow(len(x) + 4)
	runes := []rune(x)
	for i, r := range runes {
		if isUpper(r) {
			prevLowerOrDigit := i > 0 && (isLower(runes[i-1]) || isDigit(runes[i-1]))
			acronymBoundary := i > 0 && isUpper(runes[i-1]) && i+1 < len(runes) && isLower(runes[i+1])
			if i > 0 && (prevLowerOrDigit || acronymBoundary) {
				b.WriteByte('_')
			}
			b.WriteRune(toLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAllLower(x string) bool {
	for _, r := range x {
		if isUpper(r) {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}
