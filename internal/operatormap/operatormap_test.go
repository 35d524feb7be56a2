package operatormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinary_KnownToken(t *testing.T) {
	tok, ok := Binary("sys::Int.plus")
	assert.True(t, ok)
	assert.Equal(t, "+", tok)
}

func TestBinary_IntegerDivModAbsent(t *testing.T) {
	_, ok := Binary("sys::Int.div")
	assert.False(t, ok, "sys::Int.div must route to ObjUtil.div, not a token")
	_, ok = Binary("sys::Int.mod")
	assert.False(t, ok, "sys::Int.mod must route to ObjUtil.mod, not a token")
}

func TestIsIntegerDivOrMod(t *testing.T) {
	assert.True(t, IsIntegerDivOrMod("sys::Int.div"))
	assert.True(t, IsIntegerDivOrMod("sys::Int.mod"))
	assert.False(t, IsIntegerDivOrMod("sys::Float.div"))
}

func TestUnary(t *testing.T) {
	tok, ok := Unary("sys::Bool.not")
	assert.True(t, ok)
	assert.Equal(t, "not ", tok)
}
