package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jtang613/typeindex/internal/primitive"
)

func TestDefaultSizesMatchCommonABI(t *testing.T) {
	cases := []struct {
		kind   primitive.Kind
		size   uint64
		signed bool
	}{
		{primitive.Char, 1, true},
		{primitive.SignedChar, 1, true},
		{primitive.UnsignedChar, 1, false},
		{primitive.Short, 2, true},
		{primitive.UnsignedShort, 2, false},
		{primitive.Int, 4, true},
		{primitive.UnsignedInt, 4, false},
		{primitive.Long, 8, true},
		{primitive.UnsignedLong, 8, false},
		{primitive.LongLong, 8, true},
		{primitive.UnsignedLongLong, 8, false},
		{primitive.Float, 4, false},
		{primitive.Double, 8, false},
		{primitive.LongDouble, 16, false},
	}

	for _, c := range cases {
		got := primitive.Default(c.kind)
		if assert.NotNil(t, got, c.kind.Name()) {
			assert.EqualValues(t, c.size, got.Size(), c.kind.Name())
			if c.kind != primitive.Float && c.kind != primitive.Double && c.kind != primitive.LongDouble {
				assert.Equal(t, c.signed, got.Signed(), c.kind.Name())
			}
		}
	}
}

func TestWordSize4VariantsDifferFromDefaults(t *testing.T) {
	assert.EqualValues(t, 4, primitive.Long32().Size())
	assert.True(t, primitive.Long32().Signed())
	assert.EqualValues(t, 4, primitive.UnsignedLong32().Size())
	assert.False(t, primitive.UnsignedLong32().Signed())
}

func TestSizeIntegerCandidateOrder(t *testing.T) {
	assert.Equal(t, []primitive.Kind{primitive.Long, primitive.LongLong, primitive.Int}, primitive.SizeIntegerCandidates(true))
	assert.Equal(t, []primitive.Kind{primitive.UnsignedLong, primitive.UnsignedLongLong, primitive.UnsignedInt}, primitive.SizeIntegerCandidates(false))
}

func TestBoolIsUnsigned1Byte(t *testing.T) {
	b := primitive.Default(primitive.Bool)
	assert.EqualValues(t, 1, b.Size())
	assert.False(t, b.Signed())
}
