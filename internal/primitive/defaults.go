package primitive

import "github.com/jtang613/typeindex/internal/ctype"

// defaults is the table of shared, process-wide default primitive
// descriptors, used when no finder in the index's chain resolves a
// given primitive. They are built once at package init and are never
// mutated afterwards, so they may be handed out and compared by
// pointer identity from any number of independent Index instances
// without coordination.
var (
	defaults      [numKinds]*ctype.Type
	voidType      *ctype.Type
	long32        *ctype.Type
	unsignedLong32 *ctype.Type
)

func init() {
	defaults[Char] = ctype.NewIntType(Char.Name(), 1, true)
	defaults[SignedChar] = ctype.NewIntType(SignedChar.Name(), 1, true)
	defaults[UnsignedChar] = ctype.NewIntType(UnsignedChar.Name(), 1, false)
	defaults[Short] = ctype.NewIntType(Short.Name(), 2, true)
	defaults[UnsignedShort] = ctype.NewIntType(UnsignedShort.Name(), 2, false)
	defaults[Int] = ctype.NewIntType(Int.Name(), 4, true)
	defaults[UnsignedInt] = ctype.NewIntType(UnsignedInt.Name(), 4, false)
	// Default long and unsigned long are 64 bits; the word-size-4
	// variants live in long32/unsignedLong32 below and are selected by
	// the primitive resolver, not cached here.
	defaults[Long] = ctype.NewIntType(Long.Name(), 8, true)
	defaults[UnsignedLong] = ctype.NewIntType(UnsignedLong.Name(), 8, false)
	defaults[LongLong] = ctype.NewIntType(LongLong.Name(), 8, true)
	defaults[UnsignedLongLong] = ctype.NewIntType(UnsignedLongLong.Name(), 8, false)
	defaults[Bool] = ctype.NewBoolType(Bool.Name(), 1)
	defaults[Float] = ctype.NewFloatType(Float.Name(), 4)
	defaults[Double] = ctype.NewFloatType(Double.Name(), 8)
	// 16 matches the common x86-64 System V ABI; a platform with a
	// different long double size should override it via a finder
	// rather than change this default (see spec Open Question).
	defaults[LongDouble] = ctype.NewFloatType(LongDouble.Name(), 16)

	voidType = ctype.NewVoidType()

	long32 = ctype.NewIntType(Long.Name(), 4, true)
	unsignedLong32 = ctype.NewIntType(UnsignedLong.Name(), 4, false)
}

// Default returns the shared default descriptor for a word-size
// independent primitive kind. It is nil for Void, SizeT and PtrdiffT,
// which are handled specially by the resolver.
func Default(k Kind) *ctype.Type {
	return defaults[k]
}

// VoidType returns the shared void singleton.
func VoidType() *ctype.Type { return voidType }

// Long32 and UnsignedLong32 are the separate 32-bit statics selected
// when the index's word size is 4.
func Long32() *ctype.Type         { return long32 }
func UnsignedLong32() *ctype.Type { return unsignedLong32 }

// SizeIntegerCandidates returns, in resolution order, the primitive
// kinds tried when synthesizing size_t (unsigned) or ptrdiff_t
// (signed) as a typedef of whatever integer type matches the index's
// word size.
func SizeIntegerCandidates(signed bool) []Kind {
	if signed {
		return []Kind{Long, LongLong, Int}
	}
	return []Kind{UnsignedLong, UnsignedLongLong, UnsignedInt}
}
