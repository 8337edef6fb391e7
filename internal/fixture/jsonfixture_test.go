package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/internal/fixture"
	"github.com/jtang613/typeindex/pkg/typeindex"
)

const sampleFixture = `[
	{"kind": "int", "name": "int", "size": 4, "signed": true},
	{"kind": "int", "name": "unsigned int", "size": 4, "signed": false},
	{"kind": "typedef", "name": "uint32_t", "alias_of": {"kind": "int", "name": "unsigned int"}},
	{
		"kind": "struct",
		"name": "point",
		"filename": "geometry.h",
		"size": 8,
		"members": [
			{"name": "x", "type": {"kind": "int", "name": "int"}, "bit_offset": 0},
			{"name": "y", "type": {"kind": "int", "name": "int"}, "bit_offset": 32}
		]
	}
]`

func TestJSONFixtureResolvesByKindAndName(t *testing.T) {
	fx, err := fixture.Load([]byte(sampleFixture))
	require.NoError(t, err)

	ix := typeindex.New()
	require.NoError(t, ix.AddFinder(fx.Finder(), nil))

	result, err := ix.Find(ctype.Int, "int", "", false)
	require.NoError(t, err)
	assert.True(t, result.Found())
	assert.EqualValues(t, 4, result.Type.Size())
}

func TestJSONFixtureTypedefAliasesSharedDescriptor(t *testing.T) {
	fx, err := fixture.Load([]byte(sampleFixture))
	require.NoError(t, err)

	ix := typeindex.New()
	require.NoError(t, ix.AddFinder(fx.Finder(), nil))

	direct, err := ix.Find(ctype.Int, "unsigned int", "", false)
	require.NoError(t, err)
	aliasResult, err := ix.Find(ctype.Typedef, "uint32_t", "", false)
	require.NoError(t, err)

	assert.Same(t, direct.Type, aliasResult.Type.Aliased().Type, "typedef aliases the same descriptor as a direct lookup")
}

func TestJSONFixtureHonorsFilename(t *testing.T) {
	fx, err := fixture.Load([]byte(sampleFixture))
	require.NoError(t, err)

	ix := typeindex.New()
	require.NoError(t, ix.AddFinder(fx.Finder(), nil))

	_, err = ix.Find(ctype.Struct, "point", "wrong.h", true)
	var lookupErr *typeindex.LookupError
	require.ErrorAs(t, err, &lookupErr)

	result, err := ix.Find(ctype.Struct, "point", "geometry.h", true)
	require.NoError(t, err)
	assert.True(t, result.Found())
}

func TestJSONFixtureResolvesMembersAndReportsMissing(t *testing.T) {
	fx, err := fixture.Load([]byte(sampleFixture))
	require.NoError(t, err)

	ix := typeindex.New()
	require.NoError(t, ix.AddFinder(fx.Finder(), nil))

	result, err := ix.Find(ctype.Struct, "point", "", false)
	require.NoError(t, err)

	y, err := ix.FindMember(result.Type, "y")
	require.NoError(t, err)
	assert.EqualValues(t, 32, y.BitOffset)

	_, err = ix.FindMember(result.Type, "z")
	var notFound *typeindex.MemberNotFoundError
	require.ErrorAs(t, err, &notFound)
}
