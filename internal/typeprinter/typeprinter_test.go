package typeprinter

import (
	"testing"

	"github.com/fantom-lang/fanxpy/internal/ast"
	"github.com/fantom-lang/fanxpy/testutil"
	"github.com/stretchr/testify/assert"
)

func intType() *ast.TypeRef { return &ast.TypeRef{PodName: "sys", Name: "Int", Signature: "sys::Int"} }

func TestPrintSimpleTypeHasExpectedRegions(t *testing.T) {
	typ := &ast.TypeDef{
		Qname: "acme::Widget",
		Pod:   "acme",
		Name:  "Widget",
		Fields: []*ast.FieldDef{
			{Name: "count", Type: intType(), Initializer: &ast.IntLit{Value: 0}},
		},
		Methods: []*ast.MethodDef{
			{
				Name:    "bump",
				Returns: intType(),
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ReturnStmt{Expr: &ast.LocalVar{Name: "count"}},
				}},
			},
		},
	}

	p := New("acme", nil)
	out := p.Print(typ)

	assert.Contains(t, out, "import sys as sys_module")
	assert.Contains(t, out, "class Widget(Obj):")
	assert.Contains(t, out, "def __init__(self):")
	assert.Contains(t, out, "self._count = 0")
	assert.Contains(t, out, "def count(self, _val_=None):")
	assert.Contains(t, out, "def bump(self):")
	assert.Contains(t, out, "_t = Type.find('acme::Widget')")
	assert.Contains(t, out, "_t.af_('count'")
	assert.Contains(t, out, "_t.am_('bump'")
}

func TestPrintReadonlyFieldHasNoSetter(t *testing.T) {
	typ := &ast.TypeDef{
		Qname: "acme::Widget",
		Pod:   "acme",
		Name:  "Widget",
		Fields: []*ast.FieldDef{
			{Name: "id", Type: intType(), Flags: ast.FieldFlags{Readonly: true}},
		},
	}
	p := New("acme", nil)
	out := p.Print(typ)
	// "id" collides with a Python builtin, so NameMap escapes it to "id_".
	assert.Contains(t, out, "def id_(self):\n        return self._id_")
	assert.NotContains(t, out, "self._id_ = _val_")
}

func TestPrintStaticFieldAccessor(t *testing.T) {
	typ := &ast.TypeDef{
		Qname: "acme::Widget",
		Pod:   "acme",
		Name:  "Widget",
		Fields: []*ast.FieldDef{
			{Name: "instanceCount", Type: intType(), Flags: ast.FieldFlags{Static: true}},
		},
	}
	p := New("acme", nil)
	out := p.Print(typ)
	assert.Contains(t, out, "@staticmethod\n    def instance_count(_val_=None):")
}

func TestPrintEnumSpecialization(t *testing.T) {
	typ := &ast.TypeDef{
		Qname: "acme::Color",
		Pod:   "acme",
		Name:  "Color",
		Flags: ast.TypeFlags{Enum: true},
		Fields: []*ast.FieldDef{
			{Name: "red", Flags: ast.FieldFlags{Static: true, Const: true}},
			{Name: "green", Flags: ast.FieldFlags{Static: true, Const: true}},
		},
	}
	p := New("acme", nil)
	out := p.Print(typ)
	assert.Contains(t, out, "_vals = None")
	assert.Contains(t, out, "object.__new__(Color)")
	assert.Contains(t, out, "def ordinal(self):")
	assert.Contains(t, out, "def name(self):")
	assert.Contains(t, out, "def red():")
	assert.Contains(t, out, "def green():")
}

func TestBaseClassYieldsDirectImport(t *testing.T) {
	typ := &ast.TypeDef{
		Qname: "acme::Sub",
		Pod:   "acme",
		Name:  "Sub",
		Base:  &ast.TypeRef{PodName: "acme", Name: "Base", Signature: "acme::Base"},
	}
	p := New("acme", nil)
	out := p.Print(typ)
	assert.Contains(t, out, "from fan.acme.Base import Base")
	assert.Contains(t, out, "class Sub(Base):")
}

// TestPrintEmptyTypeIsByteIdentical pins down the full emitted text of
// the smallest possible type (no fields, no methods, base sys::Obj) so a
// region-ordering regression anywhere in Print shows up as an exact diff
// rather than a missing substring (spec.md §8 byte-identical-rerun
// property).
func TestPrintEmptyTypeIsByteIdentical(t *testing.T) {
	typ := &ast.TypeDef{Qname: "acme::Empty", Pod: "acme", Name: "Empty"}
	p := New("acme", nil)
	out := p.Print(typ)

	want := "import sys as sys_module\n" +
		"sys_module.path.insert(0, '.')\n\n" +
		"from typing import Optional, Callable, List as TypingList, Dict as TypingDict\n\n" +
		"from fan.sys.Obj import Obj\n" +
		"from fan.sys.ObjUtil import ObjUtil\n\n" +
		"class Empty(Obj):\n\n" +
		"    def __init__(self):\n" +
		"        pass\n\n" +
		"_t = Type.find('acme::Empty')\n"

	if diff := testutil.DiffPython(want, out); diff != "" {
		t.Errorf("emitted text mismatch (-want +got):\n%s", diff)
	}

	out2 := New("acme", nil).Print(typ)
	if diff := testutil.DiffPython(out, out2); diff != "" {
		t.Errorf("re-running Print on the same type is not byte-identical:\n%s", diff)
	}
}

func TestNamedConstructorEmitsStaticFactory(t *testing.T) {
	typ := &ast.TypeDef{
		Qname: "acme::Widget",
		Pod:   "acme",
		Name:  "Widget",
		Methods: []*ast.MethodDef{
			{
				Name:  "fromSize",
				Flags: ast.MethodFlags{Ctor: true},
				Parameters: []*ast.Param{{Name: "size", Type: intType()}},
				Body:  &ast.Block{Stmts: []ast.Stmt{&ast.NopStmt{}}},
			},
		},
	}
	p := New("acme", nil)
	out := p.Print(typ)
	assert.Contains(t, out, "def from_size(size):")
	assert.Contains(t, out, "self = Widget()")
	assert.Contains(t, out, "Widget._ctor_from_size(self, size)")
	assert.Contains(t, out, "def _ctor_from_size(self, size):")
	assert.Contains(t, out, "return self")
}
