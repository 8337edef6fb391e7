// Package kernelhelpers is an illustrative consumer of the type
// index, in the spirit of drgn's linux_kernel_helpers.c: a small set
// of routines that walk a kernel data structure whose shape has
// changed across kernel versions, using FindMember's
// MemberNotFoundError to decide when to fall back to an older layout. Its algorithms are not
// a re-specification of the kernel internals, only of the
// lookup-then-fallback usage pattern spec.md §6.3 calls out as the
// reason FindMember must distinguish lookup errors from type errors.
package kernelhelpers

import (
	"errors"
	"fmt"

	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/pkg/typeindex"
)

// RadixTreeRoot locates the node-storage field of a radix_tree_root,
// trying the modern field name first and falling back to the legacy
// one only when FindMember reports the field does not exist at all
// (as opposed to the type not being a structure, which is a real bug
// the caller should see).
//
// This mirrors linux_helper_radix_tree_lookup's probe of "xa_head"
// (current kernels) vs. "rnode" (pre-xarray kernels).
func RadixTreeRoot(ix *typeindex.Index, radixTreeRootType *ctype.Type) (ctype.MemberValue, string, error) {
	if v, err := ix.FindMember(radixTreeRootType, "xa_head"); err == nil {
		return v, "xa_head", nil
	} else if !isLookupError(err) {
		return ctype.MemberValue{}, "", fmt.Errorf("radix tree root: %w", err)
	}

	if v, err := ix.FindMember(radixTreeRootType, "rnode"); err == nil {
		return v, "rnode", nil
	} else if !isLookupError(err) {
		return ctype.MemberValue{}, "", fmt.Errorf("radix tree root: %w", err)
	} else {
		return ctype.MemberValue{}, "", fmt.Errorf("radix tree root: neither xa_head nor rnode found: %w", err)
	}
}

// IDREntries locates the array of slots inside an idr/xarray node,
// trying the xarray-era name before the older idr_layer name,
// following the same lookup-error-triggers-fallback contract.
func IDREntries(ix *typeindex.Index, nodeType *ctype.Type) (ctype.MemberValue, string, error) {
	candidates := []string{"slots", "ary"}
	var lastErr error
	for _, name := range candidates {
		v, err := ix.FindMember(nodeType, name)
		if err == nil {
			return v, name, nil
		}
		if !isLookupError(err) {
			return ctype.MemberValue{}, "", fmt.Errorf("idr node: %w", err)
		}
		lastErr = err
	}
	return ctype.MemberValue{}, "", fmt.Errorf("idr node: no known slots field: %w", lastErr)
}

func isLookupError(err error) bool {
	var memberNotFound *typeindex.MemberNotFoundError
	return errors.As(err, &memberNotFound)
}
