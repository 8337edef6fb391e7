package typeindex

import "github.com/jtang613/typeindex/internal/ctype"

// ArrayType returns the canonical complete array descriptor of the
// given length and element type, constructing and interning it on
// first request. At most one array descriptor exists per (element
// type identity, element qualifiers, complete, length) tuple.
func (ix *Index) ArrayType(length uint64, element ctype.QualifiedType) (*ctype.Type, error) {
	key := arrayKey{
		referenced: element.Type,
		qualifiers: element.Qualifiers,
		complete:   true,
		length:     length,
	}
	return ix.internArrayType(key, element, length, true)
}

// IncompleteArrayType returns the canonical incomplete array
// descriptor for element; length is not part of its identity, so an
// incomplete array compares equal only to other incomplete arrays
// over the same element.
func (ix *Index) IncompleteArrayType(element ctype.QualifiedType) (*ctype.Type, error) {
	key := arrayKey{
		referenced: element.Type,
		qualifiers: element.Qualifiers,
		complete:   false,
	}
	return ix.internArrayType(key, element, 0, false)
}

func (ix *Index) internArrayType(key arrayKey, element ctype.QualifiedType, length uint64, complete bool) (*ctype.Type, error) {
	if existing, ok := ix.arrayTypes[key]; ok {
		return existing, nil
	}

	if ix.simulateOOM {
		return nil, &OutOfMemoryError{}
	}

	var t *ctype.Type
	if complete {
		t = ctype.NewArrayType(length, element)
	} else {
		t = ctype.NewIncompleteArrayType(element)
	}
	ix.arrayTypes[key] = t
	return t, nil
}
