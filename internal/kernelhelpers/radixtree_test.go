package kernelhelpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/internal/kernelhelpers"
	"github.com/jtang613/typeindex/pkg/typeindex"
)

func intMember(name string, bitOffset uint64) ctype.Member {
	return ctype.Member{
		Name:      name,
		Type:      ctype.QualifiedType{Type: ctype.NewIntType("int", 4, true)},
		BitOffset: bitOffset,
	}
}

func TestRadixTreeRootPrefersModernField(t *testing.T) {
	ix := typeindex.New()
	root := ctype.NewStructType("radix_tree_root", 8, true, []ctype.Member{
		intMember("xa_head", 0),
		intMember("rnode", 0),
	})

	v, field, err := kernelhelpers.RadixTreeRoot(ix, root)
	require.NoError(t, err)
	assert.Equal(t, "xa_head", field)
	assert.EqualValues(t, 0, v.BitOffset)
}

func TestRadixTreeRootFallsBackToLegacyField(t *testing.T) {
	ix := typeindex.New()
	root := ctype.NewStructType("radix_tree_root", 4, true, []ctype.Member{
		intMember("rnode", 0),
	})

	_, field, err := kernelhelpers.RadixTreeRoot(ix, root)
	require.NoError(t, err)
	assert.Equal(t, "rnode", field)
}

func TestRadixTreeRootPropagatesNonLookupError(t *testing.T) {
	ix := typeindex.New()
	notAnAggregate := ctype.NewIntType("int", 4, true)

	_, _, err := kernelhelpers.RadixTreeRoot(ix, notAnAggregate)
	require.Error(t, err)

	var typeErr *typeindex.TypeError
	require.ErrorAs(t, err, &typeErr, "a type mismatch must surface, not be swallowed as a missing field")
}

func TestRadixTreeRootErrorsWhenNeitherFieldExists(t *testing.T) {
	ix := typeindex.New()
	root := ctype.NewStructType("radix_tree_root", 0, true, nil)

	_, _, err := kernelhelpers.RadixTreeRoot(ix, root)
	require.Error(t, err)
}

func TestIDREntriesTriesBothCandidateNames(t *testing.T) {
	ix := typeindex.New()
	node := ctype.NewStructType("idr_layer", 4, true, []ctype.Member{
		intMember("ary", 0),
	})

	v, field, err := kernelhelpers.IDREntries(ix, node)
	require.NoError(t, err)
	assert.Equal(t, "ary", field)
	assert.EqualValues(t, 0, v.BitOffset)
}
