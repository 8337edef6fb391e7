package typeindex

import (
	"fmt"

	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/internal/primitive"
)

// FindPrimitive resolves one of the canonical C primitive kinds,
// consulting the finder chain by every known spelling of kind before
// falling back to the shared default descriptor. Once resolved, the
// same descriptor pointer is returned for the lifetime of the index.
//
// long, unsigned long, size_t and ptrdiff_t require the word size to
// be set; size_t and ptrdiff_t are synthesized as index-owned typedefs
// aliasing whichever integer primitive's size matches the word size.
func (ix *Index) FindPrimitive(kind primitive.Kind) (*ctype.Type, error) {
	if cached, ok := ix.primitiveTypes[kind]; ok {
		return cached, nil
	}

	if kind == primitive.Void {
		ix.primitiveTypes[kind] = primitive.VoidType()
		return ix.primitiveTypes[kind], nil
	}

	base := kind.BaseKind()
	for _, spelling := range kind.Spellings() {
		found, err := ix.queryFinders(base, spelling, "", false)
		if err != nil {
			return nil, err
		}
		if found.Found() && ix.classify(found.Type, kind) {
			ix.logger.Debug().Str("primitive", kind.Name()).Str("spelling", spelling).Msg("primitive resolved by finder")
			ix.primitiveTypes[kind] = found.Type
			return found.Type, nil
		}
	}

	switch kind {
	case primitive.Long, primitive.UnsignedLong:
		if ix.wordSize == 0 {
			return nil, &InvalidArgumentError{Msg: "word size has not been set"}
		}
		if ix.wordSize == 4 {
			var t *ctype.Type
			if kind == primitive.Long {
				t = primitive.Long32()
			} else {
				t = primitive.UnsignedLong32()
			}
			ix.primitiveTypes[kind] = t
			return t, nil
		}
		// word size 8: fall through to the shared 64-bit default below.

	case primitive.SizeT, primitive.PtrdiffT:
		if ix.wordSize == 0 {
			return nil, &InvalidArgumentError{Msg: "word size has not been set"}
		}
		signed := kind == primitive.PtrdiffT
		for _, candidate := range primitive.SizeIntegerCandidates(signed) {
			integerType, err := ix.FindPrimitive(candidate)
			if err != nil {
				return nil, err
			}
			if integerType.Size() == ix.wordSize {
				aliased := ctype.QualifiedType{Type: integerType}
				t := ctype.NewTypedefType(kind.Name(), aliased)
				ix.logger.Debug().Str("primitive", kind.Name()).Str("aliases", candidate.Name()).Msg("synthesized word-size typedef")
				ix.primitiveTypes[kind] = t
				return t, nil
			}
		}
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("no suitable integer type for %s", kind.Name())}
	}

	t := primitive.Default(kind)
	ix.primitiveTypes[kind] = t
	return t, nil
}

// classify reports whether a type descriptor returned by a finder for
// kind's base category actually matches kind's primitive
// classification (signedness and byte size), the way a debugger
// disambiguates "int" from "long" even though both are plain signed
// integers. long and unsigned long classify against the index's own
// word size rather than a fixed size, since that is the whole point
// of distinguishing them from int/long long.
func (ix *Index) classify(t *ctype.Type, kind primitive.Kind) bool {
	switch kind {
	case primitive.Bool, primitive.Void:
		return true
	case primitive.Float:
		return t.Size() == 4
	case primitive.Double:
		return t.Size() == 8
	case primitive.LongDouble:
		return t.Size() >= 10
	case primitive.Long:
		return t.Signed() && t.Size() == ix.effectiveWordSize()
	case primitive.UnsignedLong:
		return !t.Signed() && t.Size() == ix.effectiveWordSize()
	default:
		want := primitive.Default(kind)
		if want == nil {
			return true
		}
		return t.Signed() == want.Signed() && t.Size() == want.Size()
	}
}

// effectiveWordSize returns the configured word size, or 8 (the
// common LP64 convention) if it has not been set yet — classification
// may run before SetWordSize when a finder is queried for plain "int"
// or similar, so it must not itself require the precondition that
// only pointer/long/size_t construction enforces.
func (ix *Index) effectiveWordSize() uint64 {
	if ix.wordSize == 0 {
		return 8
	}
	return ix.wordSize
}
