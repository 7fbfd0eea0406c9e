package store

import (
	"iter"

	"github.com/simon-lentz/refschema/schemaobj"
)

// Objects returns an iterator over every object in the schema, in
// unspecified order. [Schema.Children] uses it to find the objects that
// list a given parent among their bases.
func (s *Schema) Objects() iter.Seq[*schemaobj.Object] {
	return func(yield func(*schemaobj.Object) bool) {
		if s == nil {
			return
		}
		for _, obj := range s.byName {
			if !yield(obj) {
				return
			}
		}
	}
}

// Len reports the number of objects in the schema.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byName)
}
