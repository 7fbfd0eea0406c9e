package referencing

import (
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// GetVerbosename formats a human-readable description of obj for error
// messages: "<kind> '<shortname>'", recursively suffixed with "of <parent
// verbosename>" for as many referrer levels as withParent and s together
// can resolve.
func GetVerbosename(s *store.Schema, obj *schemaobj.Object, withParent bool) string {
	vn := string(obj.Kind()) + " '" + objname.ShortNameFromFullName(obj.Name()) + "'"
	if !withParent || obj.Referrer().IsZero() {
		return vn
	}
	referrer, ok := s.Get(obj.Referrer())
	if !ok {
		return vn
	}
	return vn + " of " + GetVerbosename(s, referrer, true)
}
