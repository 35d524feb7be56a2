package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint_IntLit(t *testing.T) {
	n := &IntLit{Value: 7}
	got := Compact(n)
	assert.Equal(t, `{"type":"IntLit","value":7}`, got)
}

func TestPrint_TypeDefWithFields(t *testing.T) {
	td := &TypeDef{
		Qname: "acme::Widget",
		Base:  &TypeRef{Signature: "sys::Obj"},
		Fields: []*FieldDef{
			{Name: "count", Type: &TypeRef{Signature: "sys::Int"}},
		},
	}
	got := Print(td)
	assert.True(t, strings.Contains(got, `"qname": "acme::Widget"`))
	assert.True(t, strings.Contains(got, `"name": "count"`))
}

func TestPrint_Nil(t *testing.T) {
	assert.Equal(t, "null", Print(nil))
}
