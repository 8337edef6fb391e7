// Package ctype defines the canonical type descriptors used throughout
// the type index: kinds, qualifiers, the Type descriptor itself, and
// struct/union members.
package ctype

// Kind is the top-level category of a Type.
type Kind int

const (
	Void Kind = iota
	Int
	Bool
	Float
	Struct
	Union
	Enum
	Typedef
	Pointer
	Array
	Function
)

var kindSpellings = map[Kind]string{
	Void:     "void",
	Int:      "int",
	Bool:     "bool",
	Float:    "float",
	Struct:   "struct",
	Union:    "union",
	Enum:     "enum",
	Typedef:  "typedef",
	Pointer:  "pointer",
	Array:    "array",
	Function: "function",
}

// Spelling returns the kind's spelling as used in error messages
// ("struct", "union", "enum", ...).
func (k Kind) Spelling() string {
	if s, ok := kindSpellings[k]; ok {
		return s
	}
	return "unknown"
}

func (k Kind) String() string {
	return k.Spelling()
}

// HasMembers reports whether types of this kind carry a Member list.
func (k Kind) HasMembers() bool {
	return k == Struct || k == Union
}
