package typeindex

import "github.com/jtang613/typeindex/internal/ctype"

// FinderFunc resolves a named type from an external source (debug
// info, synthetic definitions). It must return a populated result
// only when the descriptor's kind equals kind, must treat
// hasFilename == false as "any translation unit", and may return a
// zero QualifiedType to mean "not mine, try the next finder". It must
// not mutate the owning Index directly beyond re-entrant calls back
// into the same Index.
type FinderFunc func(kind ctype.Kind, name string, filename string, hasFilename bool, arg any) (ctype.QualifiedType, error)

// finderEntry is one link of the finder chain, used as a LIFO stack.
type finderEntry struct {
	fn  FinderFunc
	arg any
}

// AddFinder pushes fn onto the finder chain; it will be consulted
// before any finder added earlier.
func (ix *Index) AddFinder(fn FinderFunc, arg any) error {
	if ix.simulateOOM {
		return &OutOfMemoryError{}
	}
	ix.finders = append(ix.finders, finderEntry{fn: fn, arg: arg})
	ix.logger.Debug().Int("depth", len(ix.finders)).Msg("finder added")
	return nil
}

// RemoveLastFinder pops the most recently added finder. It is
// undefined behavior to call this on an empty chain; callers are
// trusted to match every AddFinder with at most one RemoveLastFinder.
func (ix *Index) RemoveLastFinder() {
	n := len(ix.finders)
	ix.finders = ix.finders[:n-1]
	ix.logger.Debug().Int("depth", len(ix.finders)).Msg("finder removed")
}

// queryFinders walks the chain from most- to least-recently added and
// returns the first populated result or error. It returns a
// not-found (zero) QualifiedType and a nil error if no finder claims
// the lookup.
func (ix *Index) queryFinders(kind ctype.Kind, name string, filename string, hasFilename bool) (ctype.QualifiedType, error) {
	for i := len(ix.finders) - 1; i >= 0; i-- {
		entry := ix.finders[i]
		ret, err := entry.fn(kind, name, filename, hasFilename, entry.arg)
		if err != nil {
			return ctype.QualifiedType{}, err
		}
		if ret.Found() {
			if ret.Type.Kind() != kind {
				return ctype.QualifiedType{}, &TypeError{
					Msg: "type find callback returned wrong kind of type",
				}
			}
			return ret, nil
		}
	}
	return ctype.QualifiedType{}, nil
}
