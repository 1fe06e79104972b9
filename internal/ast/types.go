package ast

// TypeKind tags the variant of a Type. Grounded on the teacher's
// typesystem TCon/TFunc concrete-variant split, widened to L's full
// composite-type grammar.
type TypeKind string

const (
	KindVoid   TypeKind = "Void"
	KindNull   TypeKind = "Null"
	KindBool   TypeKind = "Bool"
	KindInt    TypeKind = "Int"
	KindInt8   TypeKind = "Int8"
	KindInt16  TypeKind = "Int16"
	KindInt32  TypeKind = "Int32"
	KindInt64  TypeKind = "Int64"
	KindUint   TypeKind = "Uint"
	KindUint8  TypeKind = "Uint8"
	KindUint16 TypeKind = "Uint16"
	KindUint32 TypeKind = "Uint32"
	KindUint64 TypeKind = "Uint64"
	KindFloat   TypeKind = "Float"
	KindFloat32 TypeKind = "Float32"
	KindFloat64 TypeKind = "Float64"
	KindString TypeKind = "String"
	KindPtr    TypeKind = "Ptr"
	KindVec    TypeKind = "Vec"
	KindArr    TypeKind = "Arr"
	KindMap    TypeKind = "Map"
	KindSet    TypeKind = "Set"
	KindTuple  TypeKind = "Tuple"
	KindChan   TypeKind = "Chan"
	KindStruct TypeKind = "Struct"
	KindFn     TypeKind = "Fn"
	KindUnion  TypeKind = "Union"
	KindAlias  TypeKind = "Alias"
	KindParam  TypeKind = "Param"
	KindUnknown TypeKind = "Unknown"
)

// ReductionStatus tracks whether a later phase has resolved this type.
type ReductionStatus int

const (
	StatusUndone ReductionStatus = iota
	StatusDone
)

// TypeMeta holds the fields every Type variant carries: its source span,
// reduction status, and the annotation slots used for method dispatch and
// error messages.
type TypeMeta struct {
	Start, End     int
	Status         ReductionStatus
	ImplIdent      string
	OriginIdent    string
	OriginTypeKind string
}

func (m TypeMeta) Span() (int, int) { return m.Start, m.End }

// Type is the marker interface for the semantic type descriptor's tagged
// variants.
type Type interface {
	Span() (int, int)
	TypeKind() TypeKind
	typeNode()
}

// BasicType covers Void, Null, Bool, and every integer/float/string
// primitive — the variants that carry no nested Type.
type BasicType struct {
	TypeMeta
	Kind TypeKind
}

func (t *BasicType) TypeKind() TypeKind { return t.Kind }
func (*BasicType) typeNode()            {}

type PtrType struct {
	TypeMeta
	Elem Type
}

func (*PtrType) TypeKind() TypeKind { return KindPtr }
func (*PtrType) typeNode()          {}

type VecType struct {
	TypeMeta
	Elem Type
}

func (*VecType) TypeKind() TypeKind { return KindVec }
func (*VecType) typeNode()          {}

// ArrType is a fixed-length array; Len must be > 0 (invariant, spec §3).
type ArrType struct {
	TypeMeta
	Len  uint64
	Elem Type
}

func (*ArrType) TypeKind() TypeKind { return KindArr }
func (*ArrType) typeNode()          {}

type MapType struct {
	TypeMeta
	Key, Val Type
}

func (*MapType) TypeKind() TypeKind { return KindMap }
func (*MapType) typeNode()          {}

type SetType struct {
	TypeMeta
	Elem Type
}

func (*SetType) TypeKind() TypeKind { return KindSet }
func (*SetType) typeNode()          {}

type TupleType struct {
	TypeMeta
	Elems []Type
}

func (*TupleType) TypeKind() TypeKind { return KindTuple }
func (*TupleType) typeNode()          {}

type ChanType struct {
	TypeMeta
	Elem Type
}

func (*ChanType) TypeKind() TypeKind { return KindChan }
func (*ChanType) typeNode()          {}

// Property is one struct field: a type, a name, and an optional default
// expression (never a function definition — enforced by the parser).
type Property struct {
	Name    string
	Type    Type
	Default *Expr
}

type StructType struct {
	TypeMeta
	Name       string
	Align      int
	Properties []Property
}

func (*StructType) TypeKind() TypeKind { return KindStruct }
func (*StructType) typeNode()          {}

// FnTypeSig is the parameter/return signature carried by a Fn(FnType)
// type value (as distinct from a FnDef AST node, which additionally
// carries a body).
type FnTypeSig struct {
	Params     []Type
	ReturnType Type
}

type FnType struct {
	TypeMeta
	Sig FnTypeSig
}

func (*FnType) TypeKind() TypeKind { return KindFn }
func (*FnType) typeNode()          {}

// UnionType holds IsAny=true with an empty Types list for `any`,
// otherwise the list of member types (invariant, spec §3).
type UnionType struct {
	TypeMeta
	IsAny bool
	Types []Type
}

func (*UnionType) TypeKind() TypeKind { return KindUnion }
func (*UnionType) typeNode()          {}

// TypeAlias names a not-yet-resolved type reference: an identifier, an
// optional import qualifier, and optional generic arguments.
type TypeAlias struct {
	Ident    string
	ImportAs string
	Args     []Type
}

type AliasType struct {
	TypeMeta
	Alias *TypeAlias
}

func (*AliasType) TypeKind() TypeKind { return KindAlias }
func (*AliasType) typeNode()          {}

// ParamType is a reference to a generic type parameter in scope (spec
// §9's "small set of names"), as opposed to an unresolved Alias.
type ParamType struct {
	TypeMeta
	Name string
}

func (*ParamType) TypeKind() TypeKind { return KindParam }
func (*ParamType) typeNode()          {}

type UnknownType struct {
	TypeMeta
}

func (*UnknownType) TypeKind() TypeKind { return KindUnknown }
func (*UnknownType) typeNode()          {}

// Unknown is the zero-value placeholder for Expr.Type / Expr.TargetType
// left for the semantic phase (spec §6).
func Unknown() Type { return &UnknownType{} }
