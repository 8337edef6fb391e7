// Package fixture provides synthetic "debug info" finders for tests
// and the typeindexdump CLI. Real debug-info parsing is explicitly
// out of scope for the type index (see spec §1); these finders are
// test doubles that let the index be exercised end to end without a
// real DWARF/PDB/CodeView reader.
package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/pkg/typeindex"
)

// TypeDef is one entry of a JSON fixture file: a named type plus
// enough structure to resolve members and typedef aliases by looking
// up other entries in the same fixture by (kind, name).
type TypeDef struct {
	Kind     string     `json:"kind"`
	Name     string     `json:"name"`
	Filename string     `json:"filename,omitempty"`
	Size     uint64     `json:"size,omitempty"`
	Signed   bool       `json:"signed,omitempty"`
	Complete *bool      `json:"complete,omitempty"`
	AliasOf  *TypeRef   `json:"alias_of,omitempty"`
	Members  []MemberDef `json:"members,omitempty"`
}

// TypeRef names another fixture entry by kind and name.
type TypeRef struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// MemberDef is one member of a struct/union TypeDef. An empty Name
// denotes an anonymous nested aggregate, matching ctype.Member.
type MemberDef struct {
	Name         string  `json:"name"`
	Type         TypeRef `json:"type"`
	BitOffset    uint64  `json:"bit_offset"`
	BitFieldSize uint64  `json:"bit_field_size,omitempty"`
}

type defKey struct {
	kind ctype.Kind
	name string
}

var kindByName = map[string]ctype.Kind{
	"void":     ctype.Void,
	"int":      ctype.Int,
	"bool":     ctype.Bool,
	"float":    ctype.Float,
	"struct":   ctype.Struct,
	"union":    ctype.Union,
	"enum":     ctype.Enum,
	"typedef":  ctype.Typedef,
	"pointer":  ctype.Pointer,
	"array":    ctype.Array,
	"function": ctype.Function,
}

// Fixture is a loaded set of synthetic type definitions, keyed by
// (kind, name). Built descriptors are memoized so that repeated
// lookups of the same definition, or lookups reached via different
// paths (e.g. directly vs. as a struct member's type), return the
// identical *ctype.Type — required for the index's pointer/array
// interning and member-cache identity invariants to hold.
type Fixture struct {
	defs  map[defKey]TypeDef
	built map[defKey]*ctype.Type
}

// Load parses a JSON array of TypeDef entries.
func Load(data []byte) (*Fixture, error) {
	var entries []TypeDef
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("fixture: parse: %w", err)
	}

	f := &Fixture{
		defs:  make(map[defKey]TypeDef, len(entries)),
		built: make(map[defKey]*ctype.Type, len(entries)),
	}
	for _, e := range entries {
		kind, ok := kindByName[e.Kind]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown kind %q for %q", e.Kind, e.Name)
		}
		f.defs[defKey{kind: kind, name: e.Name}] = e
	}
	return f, nil
}

// Finder returns a typeindex.FinderFunc backed by this fixture.
func (f *Fixture) Finder() typeindex.FinderFunc {
	return func(kind ctype.Kind, name string, filename string, hasFilename bool, _ any) (ctype.QualifiedType, error) {
		def, ok := f.defs[defKey{kind: kind, name: name}]
		if !ok {
			return ctype.QualifiedType{}, nil
		}
		if hasFilename && def.Filename != "" && def.Filename != filename {
			return ctype.QualifiedType{}, nil
		}
		t, err := f.build(defKey{kind: kind, name: name})
		if err != nil {
			return ctype.QualifiedType{}, err
		}
		return ctype.QualifiedType{Type: t}, nil
	}
}

func (f *Fixture) build(key defKey) (*ctype.Type, error) {
	if t, ok := f.built[key]; ok {
		return t, nil
	}
	def, ok := f.defs[key]
	if !ok {
		return nil, fmt.Errorf("fixture: no definition for %s %s", key.kind.Spelling(), key.name)
	}

	switch key.kind {
	case ctype.Void:
		t := ctype.NewVoidType()
		f.built[key] = t
		return t, nil

	case ctype.Int:
		t := ctype.NewIntType(def.Name, def.Size, def.Signed)
		f.built[key] = t
		return t, nil

	case ctype.Bool:
		t := ctype.NewBoolType(def.Name, def.Size)
		f.built[key] = t
		return t, nil

	case ctype.Float:
		t := ctype.NewFloatType(def.Name, def.Size)
		f.built[key] = t
		return t, nil

	case ctype.Typedef:
		if def.AliasOf == nil {
			return nil, fmt.Errorf("fixture: typedef %q has no alias_of", def.Name)
		}
		aliasKind, ok := kindByName[def.AliasOf.Kind]
		if !ok {
			return nil, fmt.Errorf("fixture: typedef %q: unknown alias kind %q", def.Name, def.AliasOf.Kind)
		}
		aliased, err := f.build(defKey{kind: aliasKind, name: def.AliasOf.Name})
		if err != nil {
			return nil, err
		}
		t := ctype.NewTypedefType(def.Name, ctype.QualifiedType{Type: aliased})
		f.built[key] = t
		return t, nil

	case ctype.Struct, ctype.Union:
		complete := def.Complete == nil || *def.Complete
		// Placeholder inserted before resolving members so that a
		// self-referential member (a linked-list's "next" field,
		// typically behind a pointer) resolving back to this same
		// defKey observes the same identity rather than recursing
		// forever.
		placeholder := &ctype.Type{}
		f.built[key] = placeholder
		members, err := f.buildMembers(def.Members)
		if err != nil {
			return nil, err
		}
		var t *ctype.Type
		if key.kind == ctype.Struct {
			t = ctype.NewStructType(def.Name, def.Size, complete, members)
		} else {
			t = ctype.NewUnionType(def.Name, def.Size, complete, members)
		}
		*placeholder = *t
		return placeholder, nil

	default:
		return nil, fmt.Errorf("fixture: unsupported kind %s for %q", key.kind.Spelling(), def.Name)
	}
}

func (f *Fixture) buildMembers(defs []MemberDef) ([]ctype.Member, error) {
	members := make([]ctype.Member, 0, len(defs))
	for _, m := range defs {
		kind, ok := kindByName[m.Type.Kind]
		if !ok {
			return nil, fmt.Errorf("fixture: member %q: unknown type kind %q", m.Name, m.Type.Kind)
		}
		memberType, err := f.build(defKey{kind: kind, name: m.Type.Name})
		if err != nil {
			return nil, err
		}
		members = append(members, ctype.Member{
			Name:         m.Name,
			Type:         ctype.QualifiedType{Type: memberType},
			BitOffset:    m.BitOffset,
			BitFieldSize: m.BitFieldSize,
		})
	}
	return members, nil
}
