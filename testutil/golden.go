// Package testutil provides the golden-text diff helper printer tests
// use to compare expected-vs-actual emitted Python source.
package testutil

import (
	"github.com/google/go-cmp/cmp"
)

// DiffPython returns "" if expected and actual are byte-identical,
// otherwise a unified diff produced by go-cmp suitable for t.Errorf.
// Printer tests that assert a type's or method's complete emitted text
// (rather than a handful of assert.Contains substrings) use this so a
// regression shows exactly which line moved.
func DiffPython(expected, actual string) string {
	return cmp.Diff(expected, actual)
}
