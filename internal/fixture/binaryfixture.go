package fixture

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jtang613/typeindex/internal/ctype"
)

// Binary record kind tags for the tiny wire format parsed below. The
// record-length-prefixed layout and the null-terminated string
// convention are carried over from the teacher codebase's CodeView
// type-record parser (TPI LF_* records), adapted to this index's much
// smaller set of kinds instead of the dozens of CodeView leaf types.
const (
	recInt     = 1
	recBool    = 2
	recFloat   = 3
	recTypedef = 4
	recStruct  = 5
	recUnion   = 6
)

const binaryFixtureMagic = "TIX1"

// LoadBinary parses the compact binary fixture format: a 4-byte magic,
// a uint16 record count, then that many length-prefixed records. Each
// record is [uint16 recLen][uint8 kind][name as NUL-terminated
// string][kind-specific payload], mirroring how the teacher's TPI
// stream reads a uint16 record length before the record's own kind
// tag and body.
func LoadBinary(data []byte) (*Fixture, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, len(binaryFixtureMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("fixture: read magic: %w", err)
	}
	if string(magic) != binaryFixtureMagic {
		return nil, fmt.Errorf("fixture: bad magic %q", magic)
	}

	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("fixture: read count: %w", err)
	}

	f := &Fixture{
		defs:  make(map[defKey]TypeDef, count),
		built: make(map[defKey]*ctype.Type, count),
	}

	for i := uint16(0); i < count; i++ {
		var recLen uint16
		if err := binary.Read(r, binary.LittleEndian, &recLen); err != nil {
			return nil, fmt.Errorf("fixture: record %d: read length: %w", i, err)
		}
		recData := make([]byte, recLen)
		if _, err := io.ReadFull(r, recData); err != nil {
			return nil, fmt.Errorf("fixture: record %d: read body: %w", i, err)
		}

		def, kind, err := parseBinaryRecord(recData)
		if err != nil {
			return nil, fmt.Errorf("fixture: record %d: %w", i, err)
		}
		f.defs[defKey{kind: kind, name: def.Name}] = def
	}

	return f, nil
}

func parseBinaryRecord(data []byte) (TypeDef, ctype.Kind, error) {
	if len(data) < 1 {
		return TypeDef{}, 0, fmt.Errorf("empty record")
	}
	tag := data[0]
	offset := 1

	name, n := parseCString(data[offset:])
	offset += n

	switch tag {
	case recInt:
		if offset+2 > len(data) {
			return TypeDef{}, 0, fmt.Errorf("int record truncated")
		}
		size := data[offset]
		signed := data[offset+1] != 0
		return TypeDef{Kind: "int", Name: name, Size: uint64(size), Signed: signed}, ctype.Int, nil

	case recBool:
		if offset+1 > len(data) {
			return TypeDef{}, 0, fmt.Errorf("bool record truncated")
		}
		return TypeDef{Kind: "bool", Name: name, Size: uint64(data[offset])}, ctype.Bool, nil

	case recFloat:
		if offset+1 > len(data) {
			return TypeDef{}, 0, fmt.Errorf("float record truncated")
		}
		return TypeDef{Kind: "float", Name: name, Size: uint64(data[offset])}, ctype.Float, nil

	case recTypedef:
		if offset+1 > len(data) {
			return TypeDef{}, 0, fmt.Errorf("typedef record truncated")
		}
		aliasKind := binaryKindName(data[offset])
		offset++
		aliasName, _ := parseCString(data[offset:])
		return TypeDef{
			Kind:    "typedef",
			Name:    name,
			AliasOf: &TypeRef{Kind: aliasKind, Name: aliasName},
		}, ctype.Typedef, nil

	case recStruct, recUnion:
		if offset+4 > len(data) {
			return TypeDef{}, 0, fmt.Errorf("aggregate record truncated")
		}
		size := binary.LittleEndian.Uint16(data[offset:])
		offset += 2
		complete := data[offset] != 0
		offset++
		memberCount := int(data[offset])
		offset++

		members := make([]MemberDef, 0, memberCount)
		for m := 0; m < memberCount; m++ {
			memberName, n := parseCString(data[offset:])
			offset += n
			if offset+1 > len(data) {
				return TypeDef{}, 0, fmt.Errorf("member %d truncated", m)
			}
			typeKind := binaryKindName(data[offset])
			offset++
			typeName, n := parseCString(data[offset:])
			offset += n
			if offset+6 > len(data) {
				return TypeDef{}, 0, fmt.Errorf("member %d offset/width truncated", m)
			}
			bitOffset := binary.LittleEndian.Uint32(data[offset:])
			offset += 4
			bitFieldSize := binary.LittleEndian.Uint16(data[offset:])
			offset += 2

			members = append(members, MemberDef{
				Name:         memberName,
				Type:         TypeRef{Kind: typeKind, Name: typeName},
				BitOffset:    uint64(bitOffset),
				BitFieldSize: uint64(bitFieldSize),
			})
		}

		kindStr := "struct"
		kind := ctype.Struct
		if tag == recUnion {
			kindStr = "union"
			kind = ctype.Union
		}
		c := complete
		return TypeDef{Kind: kindStr, Name: name, Size: uint64(size), Complete: &c, Members: members}, kind, nil

	default:
		return TypeDef{}, 0, fmt.Errorf("unknown record tag 0x%02x", tag)
	}
}

// parseCString reads a NUL-terminated string, the same convention the
// teacher's CodeView parser uses for field-list member names.
func parseCString(data []byte) (string, int) {
	idx := bytes.IndexByte(data, 0)
	if idx == -1 {
		return string(data), len(data)
	}
	return string(data[:idx]), idx + 1
}

func binaryKindName(tag byte) string {
	switch tag {
	case recInt:
		return "int"
	case recBool:
		return "bool"
	case recFloat:
		return "float"
	case recTypedef:
		return "typedef"
	case recStruct:
		return "struct"
	case recUnion:
		return "union"
	default:
		return "int"
	}
}
