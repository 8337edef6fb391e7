package ctype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jtang613/typeindex/internal/ctype"
)

func TestKindSpellings(t *testing.T) {
	assert.Equal(t, "struct", ctype.Struct.Spelling())
	assert.Equal(t, "union", ctype.Union.Spelling())
	assert.Equal(t, "pointer", ctype.Pointer.Spelling())
}

func TestHasMembers(t *testing.T) {
	assert.True(t, ctype.Struct.HasMembers())
	assert.True(t, ctype.Union.HasMembers())
	assert.False(t, ctype.Enum.HasMembers())
	assert.False(t, ctype.Int.HasMembers())
}

func TestQualifierString(t *testing.T) {
	assert.Equal(t, "", ctype.Qualifier(0).String())
	assert.Equal(t, "const", ctype.Const.String())
	assert.Equal(t, "const volatile", (ctype.Const | ctype.Volatile).String())
}

func TestUnderlyingTypeFollowsTypedefChain(t *testing.T) {
	base := ctype.NewIntType("int", 4, true)
	one := ctype.NewTypedefType("one_t", ctype.QualifiedType{Type: base})
	two := ctype.NewTypedefType("two_t", ctype.QualifiedType{Type: one})

	assert.Same(t, base, ctype.UnderlyingType(two))
	assert.Same(t, base, ctype.UnderlyingType(base))
}

func TestMemberAnonymous(t *testing.T) {
	named := ctype.Member{Name: "x"}
	anon := ctype.Member{Name: ""}
	assert.False(t, named.Anonymous())
	assert.True(t, anon.Anonymous())
}

func TestQualifiedTypeFound(t *testing.T) {
	empty := ctype.QualifiedType{}
	present := ctype.QualifiedType{Type: ctype.NewVoidType()}
	assert.False(t, empty.Found())
	assert.True(t, present.Found())
}
