package fixture_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/internal/fixture"
	"github.com/jtang613/typeindex/pkg/typeindex"
)

// record tags, mirrored from binaryfixture.go's private consts so the
// test can build a blob without depending on unexported identifiers.
const (
	tagInt    = 1
	tagStruct = 5
)

func cstr(s string) []byte {
	return append([]byte(s), 0)
}

func writeRecord(buf *bytes.Buffer, body []byte) {
	binary.Write(buf, binary.LittleEndian, uint16(len(body)))
	buf.Write(body)
}

// buildIntRecord: [tag][name\0][size byte][signed byte]
func buildIntRecord(name string, size byte, signed bool) []byte {
	var b bytes.Buffer
	b.WriteByte(tagInt)
	b.Write(cstr(name))
	b.WriteByte(size)
	if signed {
		b.WriteByte(1)
	} else {
		b.WriteByte(0)
	}
	return b.Bytes()
}

// buildStructRecord: [tag][name\0][size uint16][complete byte][memberCount byte]
// then for each member: [name\0][typeKind tag][typeName\0][bitOffset uint32][bitFieldSize uint16]
func buildStructRecord(name string, size uint16, memberNames []string, memberTypeName string) []byte {
	var b bytes.Buffer
	b.WriteByte(tagStruct)
	b.Write(cstr(name))
	var sizeBuf [2]byte
	binary.LittleEndian.PutUint16(sizeBuf[:], size)
	b.Write(sizeBuf[:])
	b.WriteByte(1) // complete
	b.WriteByte(byte(len(memberNames)))
	for i, m := range memberNames {
		b.Write(cstr(m))
		b.WriteByte(tagInt)
		b.Write(cstr(memberTypeName))
		var offBuf [4]byte
		binary.LittleEndian.PutUint32(offBuf[:], uint32(i*32))
		b.Write(offBuf[:])
		var bfBuf [2]byte
		binary.LittleEndian.PutUint16(bfBuf[:], 0)
		b.Write(bfBuf[:])
	}
	return b.Bytes()
}

func buildBlob(records [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("TIX1")
	binary.Write(&buf, binary.LittleEndian, uint16(len(records)))
	for _, r := range records {
		writeRecord(&buf, r)
	}
	return buf.Bytes()
}

func TestBinaryFixtureParsesIntAndStruct(t *testing.T) {
	blob := buildBlob([][]byte{
		buildIntRecord("int", 4, true),
		buildStructRecord("point", 8, []string{"x", "y"}, "int"),
	})

	fx, err := fixture.LoadBinary(blob)
	require.NoError(t, err)

	ix := typeindex.New()
	require.NoError(t, ix.AddFinder(fx.Finder(), nil))

	result, err := ix.Find(ctype.Struct, "point", "", false)
	require.NoError(t, err)
	assert.EqualValues(t, 8, result.Type.Size())

	y, err := ix.FindMember(result.Type, "y")
	require.NoError(t, err)
	assert.EqualValues(t, 32, y.BitOffset)
}

func TestBinaryFixtureRejectsBadMagic(t *testing.T) {
	_, err := fixture.LoadBinary([]byte("NOPE0000"))
	require.Error(t, err)
}
