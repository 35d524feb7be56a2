// Package ast defines the read-only, semantically-analyzed AST that the
// front-end hands to the transpiler: pods, type definitions, fields,
// methods, and type references. Nodes are pure value data; nothing in
// this package mutates a node once constructed.
package ast

import "fmt"

// Pod is a compilation unit: a named, versioned group of types that may
// depend on other pods.
type Pod struct {
	Name      string
	Version   string
	Types     []*TypeDef
	DependsOn []string
}

// TypeFlags captures the boolean facets the front-end attaches to a
// TypeDef beyond its name and structure.
type TypeFlags struct {
	Abstract bool
	Enum     bool
	Mixin    bool
	Const    bool
	Internal bool
}

// TypeDef is one SL type (class, mixin, or enum).
type TypeDef struct {
	Qname            string // e.g. "acme::Widget"
	Pod              string
	Name             string
	Base             *TypeRef // nil only for sys::Obj itself
	Mixins           []*TypeRef
	Flags            TypeFlags
	Fields           []*FieldDef
	Methods          []*MethodDef
	SyntheticMethods []*MethodDef
	ClosureClasses   []*ClosureExpr
}

func (t *TypeDef) IsAbstract() bool { return t.Flags.Abstract }
func (t *TypeDef) IsEnum() bool     { return t.Flags.Enum }
func (t *TypeDef) IsMixin() bool    { return t.Flags.Mixin }

// FieldFlags captures field-level facets relevant to accessor emission.
type FieldFlags struct {
	Static    bool
	Const     bool
	Private   bool
	Synthetic bool
	Readonly  bool // has a getter but no setter
}

// FieldDef is one SL field.
type FieldDef struct {
	Name           string
	Type           *TypeRef
	Flags          FieldFlags
	Initializer    Expr // may be nil
	HasExplicitSet bool
	SetterFlags    FieldFlags
}

// MethodFlags captures method-level facets relevant to call-site dispatch.
type MethodFlags struct {
	Static    bool
	Private   bool
	Synthetic bool
	Ctor      bool
	Abstract  bool
	Override  bool
}

// Param is one formal parameter of a method or closure.
type Param struct {
	Name       string
	Type       *TypeRef
	HasDefault bool
	Default    Expr // present iff HasDefault
}

// MethodDef is one SL method (instance, static, or constructor).
type MethodDef struct {
	Name       string
	Parent     *TypeDef
	Parameters []*Param
	Returns    *TypeRef
	Flags      MethodFlags
	Body       *Block // nil for abstract/native methods
}

func (m *MethodDef) IsCtor() bool      { return m.Flags.Ctor }
func (m *MethodDef) IsPrivate() bool   { return m.Flags.Private }
func (m *MethodDef) IsStatic() bool    { return m.Flags.Static }
func (m *MethodDef) IsSynthetic() bool { return m.Flags.Synthetic }

// TypeRef is a reference to a type, carrying enough metadata to recover
// the element/key/value types of parameterized sys types and the
// signature of a sys::Func.
type TypeRef struct {
	PodName         string
	Name            string
	Signature       string // e.g. "sys::List", "foo::Bar?"
	IsNullable      bool
	IsGeneric       bool
	IsParameterized bool
	K               *TypeRef // map key type, if IsParameterized and Name == "Map"
	V               *TypeRef // map value / list element type
	FuncParams      []*TypeRef
	FuncReturn      *TypeRef
}

func (r *TypeRef) String() string {
	if r == nil {
		return "sys::Obj"
	}
	return r.Signature
}

// IsJavaFFI reports whether this signature names a Java-FFI type, e.g.
// "[java]java.util::List". These are sanitized before ever reaching
// Python text; any runtime use of the sanitized form fails deterministically.
func (r *TypeRef) IsJavaFFI() bool {
	return r != nil && len(r.Signature) >= 6 && r.Signature[:6] == "[java]"
}

// InSysPod reports whether this ref names a type in the sys pod.
func (r *TypeRef) InSysPod() bool { return r != nil && r.PodName == "sys" }

// SanitizeJavaSig produces the guaranteed-parseable form of a Java-FFI
// signature; any runtime use of the result fails deterministically
// rather than attempting real interop.
func SanitizeJavaSig(sig string) string {
	return fmt.Sprintf("java_ffi<%s>", sig)
}
