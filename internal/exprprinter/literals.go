package exprprinter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"golang.org/x/text/unicode/norm"
)

func (p *Printer) boolLit(n *ast.BoolLit) string {
	if n.Value {
		return "True"
	}
	return "False"
}

func (p *Printer) floatLit(n *ast.FloatLit) string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (p *Printer) strLit(n *ast.StrLit) string {
	return pyStr(n.Value)
}

// escapeNoNormalize runs NFC normalization before escaping, so that two
// source encodings of the same string (NFC vs NFD) always emit the same
// Python bytes — required for spec.md §8's byte-identical-rerun
// property, and the same normalization the front-end's lexer applies to
// source text (this module's own internal/config and CLI don't see raw
// source, but string literals carry user text through verbatim, so the
// printer re-applies it at the one remaining boundary).
func escapeNoNormalize(s string) string {
	normalized := s
	if !norm.NFC.IsNormal([]byte(s)) {
		normalized = string(norm.NFC.Bytes([]byte(s)))
	}
	return escapeRunes(normalized)
}

// escapeRunes renders every non-ASCII rune via \x, \u, or \U. Surrogate
// pairs are not re-encoded: converting a Go string to []rune never yields
// a surrogate code point (each byte of an encoded surrogate decodes to
// U+FFFD), so the surrogate branch below never matches and such input
// is emitted as U+FFFD escapes.
func escapeRunes(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			b.WriteString(`\\`)
			continue
		case '\'':
			b.WriteString(`\'`)
			continue
		case '\n':
			b.WriteString(`\n`)
			continue
		case '\t':
			b.WriteString(`\t`)
			continue
		case '\r':
			b.WriteString(`\r`)
			continue
		}

		if utf16.IsSurrogate(r) && i+1 < len(runes) {
			combined := utf16.DecodeRune(r, runes[i+1])
			if combined != 0xFFFD {
				fmt.Fprintf(&b, `\U%08x`, combined)
				i++
				continue
			}
		}

		switch {
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x80:
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	return b.String()
}

func (p *Printer) listLit(n *ast.ListLit) string {
	elems := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = p.Print(e)
	}
	return fmt.Sprintf("List.from_literal([%s], '%s')", strings.Join(elems, ", "), n.ElemSig)
}

func (p *Printer) mapLit(n *ast.MapLit) string {
	keys := make([]string, len(n.Keys))
	for i, k := range n.Keys {
		keys[i] = p.Print(k)
	}
	vals := make([]string, len(n.Vals))
	for i, v := range n.Vals {
		vals[i] = p.Print(v)
	}
	return fmt.Sprintf("Map.from_literal([%s], [%s], '%s', '%s')",
		strings.Join(keys, ", "), strings.Join(vals, ", "), n.KeySig, n.ValSig)
}

func (p *Printer) rangeLit(n *ast.RangeLit) string {
	factory := "ObjUtil.range_incl"
	if n.Exclusive {
		factory = "ObjUtil.range_excl"
	}
	return fmt.Sprintf("%s(%s, %s)", factory, p.Print(n.Start), p.Print(n.End))
}
