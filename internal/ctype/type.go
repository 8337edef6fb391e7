package ctype

// Member is a struct/union member: an optional name (empty for an
// anonymous nested aggregate), its type, and its bit offset from the
// start of the *immediately containing* aggregate.
type Member struct {
	Name         string
	Type         QualifiedType
	BitOffset    uint64
	BitFieldSize uint64
}

// Anonymous reports whether the member has no name, i.e. it is an
// unnamed nested struct/union to be flattened by the member cache.
func (m Member) Anonymous() bool {
	return m.Name == ""
}

// MemberValue is the result of resolving a member by name: its type
// and its bit offset from the start of the outermost aggregate that
// was looked up, already adjusted for any anonymous nested aggregates
// it was reached through.
type MemberValue struct {
	Type         QualifiedType
	BitOffset    uint64
	BitFieldSize uint64
}

// Enumerator is one named, valued constant of an enum type.
type Enumerator struct {
	Name  string
	Value int64
}

// Parameter is one parameter of a function type.
type Parameter struct {
	Name string
	Type QualifiedType
}

// Type is the canonical type descriptor. Every Type has a Kind and a
// set of kind-specific attributes; only the fields relevant to the
// Kind are meaningful, mirroring the tagged-union layout of the C
// descriptor this was ported from.
type Type struct {
	kind Kind

	name string // int, bool, float, typedef, struct, union, enum (may be "" for anonymous aggregates)

	// int/bool/float
	size   uint64
	signed bool

	// typedef
	aliased QualifiedType

	// pointer
	wordSize   uint64
	referenced QualifiedType

	// array
	complete bool
	length   uint64
	element  QualifiedType

	// struct/union
	structComplete bool
	members        []Member

	// enum
	underlying  QualifiedType
	enumerators []Enumerator

	// function
	ret        QualifiedType
	parameters []Parameter
	variadic   bool
}

func (t *Type) Kind() Kind { return t.kind }
func (t *Type) Name() string { return t.name }

// --- int / bool / float ---

func NewIntType(name string, size uint64, signed bool) *Type {
	return &Type{kind: Int, name: name, size: size, signed: signed}
}

func NewBoolType(name string, size uint64) *Type {
	return &Type{kind: Bool, name: name, size: size}
}

func NewFloatType(name string, size uint64) *Type {
	return &Type{kind: Float, name: name, size: size}
}

func (t *Type) Size() uint64 { return t.size }
func (t *Type) Signed() bool { return t.signed }

// --- void ---

func NewVoidType() *Type {
	return &Type{kind: Void}
}

// --- typedef ---

func NewTypedefType(name string, aliased QualifiedType) *Type {
	return &Type{kind: Typedef, name: name, aliased: aliased}
}

func (t *Type) Aliased() QualifiedType { return t.aliased }

// --- pointer ---

func NewPointerType(wordSize uint64, referenced QualifiedType) *Type {
	return &Type{kind: Pointer, wordSize: wordSize, referenced: referenced, size: wordSize}
}

func (t *Type) WordSize() uint64           { return t.wordSize }
func (t *Type) Referenced() QualifiedType { return t.referenced }

// --- array ---

// NewArrayType builds a complete array type of the given length.
func NewArrayType(length uint64, element QualifiedType) *Type {
	return &Type{kind: Array, complete: true, length: length, element: element}
}

// NewIncompleteArrayType builds an array type whose length is unknown;
// length is not meaningful and is not part of equality.
func NewIncompleteArrayType(element QualifiedType) *Type {
	return &Type{kind: Array, complete: false, element: element}
}

func (t *Type) Complete() bool         { return t.complete }
func (t *Type) Length() uint64         { return t.length }
func (t *Type) Element() QualifiedType { return t.element }

// --- struct / union ---

func NewStructType(name string, size uint64, complete bool, members []Member) *Type {
	return &Type{kind: Struct, name: name, size: size, structComplete: complete, members: members}
}

func NewUnionType(name string, size uint64, complete bool, members []Member) *Type {
	return &Type{kind: Union, name: name, size: size, structComplete: complete, members: members}
}

func (t *Type) StructComplete() bool { return t.structComplete }
func (t *Type) Members() []Member    { return t.members }

// --- enum ---

func NewEnumType(name string, underlying QualifiedType, enumerators []Enumerator) *Type {
	return &Type{kind: Enum, name: name, underlying: underlying, enumerators: enumerators}
}

func (t *Type) Underlying() QualifiedType { return t.underlying }
func (t *Type) Enumerators() []Enumerator { return t.enumerators }

// --- function ---

func NewFunctionType(ret QualifiedType, parameters []Parameter, variadic bool) *Type {
	return &Type{kind: Function, ret: ret, parameters: parameters, variadic: variadic}
}

func (t *Type) Return() QualifiedType    { return t.ret }
func (t *Type) Parameters() []Parameter  { return t.parameters }
func (t *Type) Variadic() bool           { return t.variadic }

// UnderlyingType follows the chain of typedefs starting at t and
// returns the first non-typedef Type reached. Self-referential typedef
// chains do not occur in valid debug info, so no cycle guard is
// needed; a chain of typedefs is always finite in practice.
func UnderlyingType(t *Type) *Type {
	for t != nil && t.kind == Typedef {
		t = t.aliased.Type
	}
	return t
}
