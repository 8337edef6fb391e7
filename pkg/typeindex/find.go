package typeindex

import "github.com/jtang613/typeindex/internal/ctype"

// Find resolves a named type by kind (struct/union/enum/typedef/...),
// name, and optional filename. hasFilename == false means "any
// translation unit". On exhaustion of the finder chain with no hit,
// it returns a LookupError naming the kind, name, and filename (if
// given).
func (ix *Index) Find(kind ctype.Kind, name string, filename string, hasFilename bool) (ctype.QualifiedType, error) {
	found, err := ix.queryFinders(kind, name, filename, hasFilename)
	if err != nil {
		return ctype.QualifiedType{}, err
	}
	if found.Found() {
		return found, nil
	}
	return ctype.QualifiedType{}, &LookupError{
		KindSpelling: kind.Spelling(),
		Name:         name,
		Filename:     filename,
		HasFilename:  hasFilename,
	}
}
