package store

import (
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
)

// Children returns every object that directly lists parent among its
// declared bases, in unspecified order that may differ between calls. The
// engine walks it to propagate ref operations to a referrer's
// descendants.
func (s *Schema) Children(parent objname.Name) []*schemaobj.Object {
	var out []*schemaobj.Object
	for obj := range s.Objects() {
		for _, b := range obj.Bases() {
			if b == parent {
				out = append(out, obj)
				break
			}
		}
	}
	return out
}
