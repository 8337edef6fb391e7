package typeindex

import (
	"fmt"

	"github.com/jtang613/typeindex/internal/ctype"
)

// FindMember resolves a struct/union member by name, flattening all
// (possibly anonymous) nested aggregates into the member cache on the
// first lookup against a given type. The cache is keyed on the
// underlying type (after following typedefs), so members of struct X
// and of typedef struct X X_t share one cache entry.
//
// Once a type has been fully cached, a subsequent miss for an unknown
// member name on it is authoritative: FindMember returns
// MemberNotFoundError rather than re-scanning.
func (ix *Index) FindMember(t *ctype.Type, name string) (ctype.MemberValue, error) {
	underlying := ctype.UnderlyingType(t)

	key := memberKey{outer: underlying, name: name}
	if v, ok := ix.members[key]; ok {
		return v, nil
	}

	if !underlying.Kind().HasMembers() {
		return ctype.MemberValue{}, &TypeError{
			Msg: fmt.Sprintf("'%s' is not a structure or union", describeType(underlying)),
		}
	}

	if _, cached := ix.membersCached[underlying]; cached {
		return ctype.MemberValue{}, ix.memberNotFound(t, name)
	}

	if err := ix.cacheMembers(underlying, underlying, 0); err != nil {
		// Roll back the entries this partial walk inserted.
		for k := range ix.members {
			if k.outer == underlying {
				delete(ix.members, k)
			}
		}
		return ctype.MemberValue{}, err
	}
	ix.membersCached[underlying] = struct{}{}
	ix.logger.Debug().Str("type", describeType(underlying)).Msg("member cache populated")

	if v, ok := ix.members[key]; ok {
		return v, nil
	}
	return ctype.MemberValue{}, ix.memberNotFound(t, name)
}

// cacheMembers performs the depth-first flattening described in spec
// §4.6: named members are inserted directly; anonymous members are
// resolved to their underlying aggregate and recursed into with an
// accumulated bit offset. The first insertion for a given (outer,
// name) key wins, matching the "anonymous-first DFS order" tie-break
// for members that are reachable via more than one anonymous path.
func (ix *Index) cacheMembers(outer, current *ctype.Type, baseBitOffset uint64) error {
	if !current.Kind().HasMembers() {
		return nil
	}

	for _, member := range current.Members() {
		if !member.Anonymous() {
			key := memberKey{outer: outer, name: member.Name}
			if _, exists := ix.members[key]; exists {
				continue
			}
			if ix.simulateOOM {
				return &OutOfMemoryError{}
			}
			ix.members[key] = ctype.MemberValue{
				Type:         member.Type,
				BitOffset:    baseBitOffset + member.BitOffset,
				BitFieldSize: member.BitFieldSize,
			}
			continue
		}

		memberType := ctype.UnderlyingType(member.Type.Type)
		if memberType == nil {
			continue
		}
		if err := ix.cacheMembers(outer, memberType, baseBitOffset+member.BitOffset); err != nil {
			return err
		}
	}
	return nil
}

func (ix *Index) memberNotFound(t *ctype.Type, name string) error {
	return &MemberNotFoundError{TypeDescription: describeType(t), MemberName: name}
}

func describeType(t *ctype.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		return fmt.Sprintf("%s %s", t.Kind().Spelling(), t.Name())
	}
	return t.Kind().Spelling()
}
