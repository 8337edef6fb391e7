// Package typeindex implements a debugger's type index: an in-memory
// registry that resolves named C-family source types to canonical
// type descriptors and builds derived types (pointers, arrays) on
// demand. It is not safe for concurrent use; callers that need
// concurrent access must serialize at a layer above the index.
package typeindex

import (
	"github.com/jtang613/typeindex/internal/ctype"
	"github.com/jtang613/typeindex/internal/primitive"
	"github.com/rs/zerolog"
)

type pointerKey struct {
	referenced *ctype.Type
	qualifiers ctype.Qualifier
}

type arrayKey struct {
	referenced *ctype.Type
	qualifiers ctype.Qualifier
	complete   bool
	length     uint64
}

type memberKey struct {
	outer *ctype.Type
	name  string
}

// Index is the type-index façade: it owns the primitive cache, the
// pointer/array intern tables, the finder chain, and the member
// cache, and mediates every operation exposed to consumers.
//
// An Index is created with SetWordSize unset (0); any operation that
// requires it (pointer construction, and default resolution of long,
// unsigned long, size_t and ptrdiff_t) fails with
// InvalidArgumentError until it is set to 4 or 8.
type Index struct {
	wordSize uint64

	finders []finderEntry

	primitiveTypes map[primitive.Kind]*ctype.Type

	pointerTypes map[pointerKey]*ctype.Type
	arrayTypes   map[arrayKey]*ctype.Type

	members       map[memberKey]ctype.MemberValue
	membersCached map[*ctype.Type]struct{}

	logger zerolog.Logger

	// simulateOOM is a failure-injection seam that makes finder
	// registration, pointer/array interning and member caching return
	// OutOfMemoryError, with any partially built member cache rolled
	// back; nothing in this repository sets it. See DESIGN.md.
	simulateOOM bool
}

// New creates an index with empty tables, no finders, and word size
// unset. Pass Options to customize logging.
func New(opts ...Option) *Index {
	ix := &Index{
		primitiveTypes: make(map[primitive.Kind]*ctype.Type),
		pointerTypes:   make(map[pointerKey]*ctype.Type),
		arrayTypes:     make(map[arrayKey]*ctype.Type),
		members:        make(map[memberKey]ctype.MemberValue),
		membersCached:  make(map[*ctype.Type]struct{}),
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Option configures an Index at construction time.
type Option func(*Index)

// WithLogger attaches a structured logger; events are emitted at
// debug level for finder registration and removal, primitives resolved
// by a finder, size_t/ptrdiff_t synthesis, and member cache
// population (falling back to a default primitive is not logged), matching the volume a production debugger would
// want available behind a verbose flag but not on by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(ix *Index) {
		ix.logger = logger
	}
}

// SetWordSize sets the target machine's word size in bytes. Only 4
// and 8 are valid.
func (ix *Index) SetWordSize(wordSize uint64) error {
	if wordSize != 4 && wordSize != 8 {
		return &InvalidArgumentError{Msg: "word size must be 4 or 8"}
	}
	ix.wordSize = wordSize
	return nil
}

// WordSize returns the configured word size, or 0 if unset.
func (ix *Index) WordSize() uint64 {
	return ix.wordSize
}
