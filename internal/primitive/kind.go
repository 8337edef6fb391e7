// Package primitive enumerates the canonical C primitive types the
// index recognises, along with their known spellings and the shared,
// process-wide default descriptors used when no finder resolves a
// given primitive from the target's actual debug information.
package primitive

import "github.com/jtang613/typeindex/internal/ctype"

// Kind enumerates the C primitives the index can resolve.
type Kind int

const (
	Char Kind = iota
	SignedChar
	UnsignedChar
	Short
	UnsignedShort
	Int
	UnsignedInt
	Long
	UnsignedLong
	LongLong
	UnsignedLongLong
	Bool
	Float
	Double
	LongDouble
	SizeT
	PtrdiffT
	Void

	numKinds
)

// BaseKind returns the top-level ctype.Kind that a finder callback
// must match when resolving this primitive (int/bool/float/void).
func (k Kind) BaseKind() ctype.Kind {
	switch k {
	case Bool:
		return ctype.Bool
	case Float, Double, LongDouble:
		return ctype.Float
	case Void:
		return ctype.Void
	default:
		return ctype.Int
	}
}

// spellings lists, per primitive, every known source spelling in the
// order they should be tried against the finder chain. The first
// entry is the canonical spelling used to name synthesized typedefs
// (size_t, ptrdiff_t) and in error and log messages.
var spellings = map[Kind][]string{
	Char:              {"char"},
	SignedChar:        {"signed char"},
	UnsignedChar:      {"unsigned char"},
	Short:             {"short", "signed short", "short int", "signed short int"},
	UnsignedShort:     {"unsigned short", "unsigned short int"},
	Int:               {"int", "signed int", "signed"},
	UnsignedInt:       {"unsigned int", "unsigned"},
	Long:              {"long", "signed long", "long int", "signed long int"},
	UnsignedLong:      {"unsigned long", "unsigned long int"},
	LongLong:          {"long long", "signed long long", "long long int", "signed long long int"},
	UnsignedLongLong:  {"unsigned long long", "unsigned long long int"},
	Bool:              {"_Bool", "bool"},
	Float:             {"float"},
	Double:            {"double"},
	LongDouble:        {"long double"},
	SizeT:             {"size_t"},
	PtrdiffT:          {"ptrdiff_t"},
	Void:              {"void"},
}

// Spellings returns the known spellings for k, in resolution order.
func (k Kind) Spellings() []string {
	return spellings[k]
}

// Name returns the canonical (first) spelling for k.
func (k Kind) Name() string {
	s := spellings[k]
	if len(s) == 0 {
		return "?"
	}
	return s[0]
}

func (k Kind) String() string { return k.Name() }
