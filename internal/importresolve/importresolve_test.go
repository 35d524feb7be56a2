package importresolve

import (
	"testing"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestResolve_BaseClass(t *testing.T) {
	r := Resolve("acme", &ast.TypeRef{PodName: "acme", Name: "Base", Signature: "acme::Base"}, RoleBaseOrMixin)
	assert.Equal(t, FormDirect, r.Form)
	assert.Equal(t, "from fan.acme.Base import Base", r.TopImport)
	assert.Equal(t, "Base", r.Use)
}

func TestResolve_SysFromNonSysPod(t *testing.T) {
	r := Resolve("acme", &ast.TypeRef{PodName: "sys", Name: "Int", Signature: "sys::Int"}, RoleOrdinary)
	assert.Equal(t, FormSysPrefix, r.Form)
	assert.Equal(t, "from fan import sys", r.TopImport)
	assert.Equal(t, "sys.Int", r.Use)
}

func TestResolve_SamePod(t *testing.T) {
	r := Resolve("acme", &ast.TypeRef{PodName: "acme", Name: "Widget", Signature: "acme::Widget"}, RoleOrdinary)
	assert.Equal(t, FormDynamicImport, r.Form)
	assert.Equal(t, "__import__('fan.acme.Widget', fromlist=['Widget']).Widget", r.Use)
	assert.Empty(t, r.TopImport)
}

func TestResolve_DifferentPod(t *testing.T) {
	r := Resolve("acme", &ast.TypeRef{PodName: "other", Name: "Gadget", Signature: "other::Gadget"}, RoleOrdinary)
	assert.Equal(t, FormNamespace, r.Form)
	assert.Equal(t, "from fan import other", r.TopImport)
	assert.Equal(t, "other.Gadget", r.Use)
}

func TestResolve_CatchClauseAlwaysDirect(t *testing.T) {
	r := Resolve("acme", &ast.TypeRef{PodName: "sys", Name: "Err", Signature: "sys::Err"}, RoleCatchClause)
	assert.Equal(t, FormDirect, r.Form)
	assert.Equal(t, "Err", r.Use)
}

func TestResolve_JavaFFISanitized(t *testing.T) {
	r := Resolve("acme", &ast.TypeRef{Signature: "[java]java.util::List"}, RoleOrdinary)
	assert.Equal(t, FormDirect, r.Form)
	assert.Contains(t, r.Use, "java_ffi<")
}
