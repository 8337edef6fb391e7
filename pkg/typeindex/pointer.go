package typeindex

import "github.com/jtang613/typeindex/internal/ctype"

// PointerType returns the canonical pointer-to-referenced descriptor,
// constructing and interning it on first request. Equality is
// structural over (referenced type identity, referenced qualifiers):
// two calls with the same referenced QualifiedType always return the
// identical *ctype.Type. Requires the word size to be set.
func (ix *Index) PointerType(referenced ctype.QualifiedType) (*ctype.Type, error) {
	if ix.wordSize == 0 {
		return nil, &InvalidArgumentError{Msg: "word size has not been set"}
	}

	key := pointerKey{referenced: referenced.Type, qualifiers: referenced.Qualifiers}
	if existing, ok := ix.pointerTypes[key]; ok {
		return existing, nil
	}

	if ix.simulateOOM {
		return nil, &OutOfMemoryError{}
	}

	t := ctype.NewPointerType(ix.wordSize, referenced)
	ix.pointerTypes[key] = t
	return t, nil
}
