package fxerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatalClassification(t *testing.T) {
	assert.True(t, Fatal(IO001))
	assert.True(t, Fatal(INV001))
	assert.False(t, Fatal(EMIT001))
	assert.False(t, Fatal(TYP001))
}

func TestReportOneLine(t *testing.T) {
	r := &Report{Pod: "acme", Type: "Widget", Code: INV001, Message: "closure referenced without being registered"}
	assert.Equal(t, "acme: Widget: INV001: closure referenced without being registered", r.OneLine())
}

func TestWrapRoundTrips(t *testing.T) {
	r := &Report{Pod: "acme", Code: EMIT001, Message: "boom"}
	err := Wrap(r)
	got, ok := AsReport(err)
	assert.True(t, ok)
	assert.Equal(t, "emit", got.Phase)
}
