package ast

// Expr is the tagged-variant interface every expression kind implements.
// ctype (the static type the front-end resolved for this expression) is
// available on every kind via CType.
type Expr interface {
	CType() *TypeRef
	exprNode()
}

// ExprBase carries the one field every expression kind shares.
type ExprBase struct {
	Ctype *TypeRef
}

func (e ExprBase) CType() *TypeRef { return e.Ctype }
func (ExprBase) exprNode()         {}

// --- Literals ---

type NullLit struct{ ExprBase }
type BoolLit struct {
	ExprBase
	Value bool
}
type IntLit struct {
	ExprBase
	Value int64
}
type FloatLit struct {
	ExprBase
	Value float64
}

// StrLit carries the raw (un-escaped) source text; ExprPrinter owns
// escaping and Unicode normalization.
type StrLit struct {
	ExprBase
	Value string
}

type ListLit struct {
	ExprBase
	ElemSig  string
	Elements []Expr
}

type MapLit struct {
	ExprBase
	KeySig string
	ValSig string
	Keys   []Expr
	Vals   []Expr
}

type RangeLit struct {
	ExprBase
	Start     Expr
	End       Expr
	Exclusive bool
}

type DurationLit struct {
	ExprBase
	Nanos int64
}

type DecimalLit struct {
	ExprBase
	Literal string // decimal digits as written in source
}

type UriLit struct {
	ExprBase
	Value string
}

// --- Identifiers & targets ---

type LocalVar struct {
	ExprBase
	Name string
}

type ThisExpr struct{ ExprBase }
type SuperExpr struct{ ExprBase }
type ItExpr struct{ ExprBase } // implicit it-block parameter

// StaticTarget names a class used as the receiver of a static call,
// e.g. the `ClassName` in `ClassName.method(args)`.
type StaticTarget struct {
	ExprBase
	Type *TypeRef
}

// --- Calls & construction ---

// CallKind disambiguates the call forms ExprPrinter must distinguish
// before falling through to ordinary dispatch (spec.md §4.5 Calls).
type CallKind int

const (
	CallOrdinary        CallKind = iota
	CallConstValidator            // checkInCtor / enterCtor / exitCtor / checkFields$*
	CallSafeNav                   // target?.m(args)
	CallCvarWrap                  // this.make(x) closure-variable wrapper shape
	CallDynamicTrap                // target->name(args)
	CallFuncInvoke                // Func.call / Func.callList
)

type Call struct {
	ExprBase
	Kind       CallKind
	Target     Expr // nil for a call with no explicit receiver
	MethodQname string
	MethodName string
	Args       []Expr
	IsStatic   bool
	IsPrivate  bool
	IsCtor     bool
	// TargetStaticType is the AST's static-type annotation on Target,
	// consulted to rewrite primitive-method calls at emission time.
	TargetStaticType *TypeRef
}

type Construction struct {
	ExprBase
	Type    *TypeRef
	CtorName string // "" (unnamed ctor) emits factory name "make"
	Args    []Expr
}

// --- Field access & assignment ---

// FieldMode distinguishes accessor-mode field access from raw-storage
// (`&field`) access, per spec.md §4.5 Field access.
type FieldMode int

const (
	AccessorMode FieldMode = iota
	RawStorageMode
)

type FieldAccess struct {
	ExprBase
	Target   Expr // nil for an implicit-this / static field
	Field    *FieldDef
	Mode     FieldMode
	SafeNav  bool
}

type Assign struct {
	ExprBase
	LHS      Expr // LocalVar | FieldAccess | index Shortcut(op=="[]")
	RHS      Expr
	IsResultUsed bool
}

// --- Identity / equality ---

type Same struct {
	ExprBase
	A, B Expr
}
type NotSame struct {
	ExprBase
	A, B Expr
}
type CmpNull struct {
	ExprBase
	A Expr
}
type CmpNotNull struct {
	ExprBase
	A Expr
}

// --- Boolean ---

type BoolNot struct {
	ExprBase
	A Expr
}
type BoolOr struct {
	ExprBase
	A, B Expr
}
type BoolAnd struct {
	ExprBase
	A, B Expr
}

// --- Type checks ---

type TypeCheckKind int

const (
	TypeIs TypeCheckKind = iota
	TypeIsNot
	TypeAs
	TypeCoerce
)

type TypeCheck struct {
	ExprBase
	Kind   TypeCheckKind
	Target Expr
	Of     *TypeRef
}

// --- Conditional ---

type Ternary struct {
	ExprBase
	Cond, Then, Else Expr
}

type Elvis struct {
	ExprBase
	LHS, RHS Expr
}

// --- Shortcut (binary/compound/inc-dec) operators ---

type ShortcutOp int

const (
	OpAdd ShortcutOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpCmp // <=>
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpPreInc
	OpPostInc
	OpPreDec
	OpPostDec
	OpIndexGet
	OpIndexSet
)

// Shortcut is the catch-all binary/compound/increment expression node;
// ExprPrinter dispatches on Op to pick the lowering rule.
type Shortcut struct {
	ExprBase
	Op     ShortcutOp
	A      Expr // LHS / target / increment operand
	B      Expr // RHS, nil for unary forms
	Target Expr // compound-assign / inc-dec target when distinct from A (field/index); for a comparison, the `<=>` tie-breaker
}

// --- Closures ---

type Closure struct {
	ExprBase
	Expr *ClosureExpr
}

// --- Type & slot literals ---

type TypeLiteral struct {
	ExprBase
	Of *TypeRef
}

// SlotKind distinguishes a `T#slot` literal resolving to a method vs a field.
type SlotKind int

const (
	SlotMethod SlotKind = iota
	SlotField
)

type SlotLiteral struct {
	ExprBase
	Of   *TypeRef
	Slot string
	Kind SlotKind
}

// --- Throw as expression ---

type ThrowExpr struct {
	ExprBase
	Err Expr
}
