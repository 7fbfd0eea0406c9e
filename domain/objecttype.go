package domain

import (
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// ObjectType is a thin, read-only view over a *schemaobj.Object of kind
// KindObjectType: an inheriting referrer that is not itself referenced.
// It adds no storage of its own — every accessor reads through to the
// wrapped Object and, where a RefDict slot is involved, the Schema it
// was looked up from.
type ObjectType struct {
	Obj *schemaobj.Object
}

// AsObjectType wraps obj for read access as an ObjectType. It does not
// verify obj.Kind() == KindObjectType; callers that need that guarantee
// should check it themselves (e.g. right after a store.Schema.Get).
func AsObjectType(obj *schemaobj.Object) ObjectType { return ObjectType{Obj: obj} }

// NewObjectType builds a fresh top-level ObjectType command input. The
// returned Object is not yet part of any Schema; add it with
// store.Schema.AddObject, or via a command.CreateObject if it should
// also run through the engine's command machinery.
func NewObjectType(name objname.Name, span location.Span, bases ...objname.Name) *schemaobj.Object {
	return schemaobj.NewObject(KindObjectType, name, span).WithBases(bases)
}

// Property looks up a property by its refname (the short name given to
// CreateRef, not the fully-qualified name).
func (t ObjectType) Property(s *store.Schema, refname string) (*schemaobj.Object, bool) {
	name, ok := t.Obj.Collection(AttrProperties).Get(refname)
	if !ok {
		return nil, false
	}
	return s.Get(name)
}

// Properties returns every property owned or inherited by t, in
// declaration order.
func (t ObjectType) Properties(s *store.Schema) []*schemaobj.Object {
	names := t.Obj.Collection(AttrProperties).Objects()
	out := make([]*schemaobj.Object, 0, len(names))
	for _, n := range names {
		if obj, ok := s.Get(n); ok {
			out = append(out, obj)
		}
	}
	return out
}

// OwnProperties returns only the properties t declares locally
// (is_owned=true), filtering out purely-inherited entries.
func (t ObjectType) OwnProperties(s *store.Schema) []*schemaobj.Object {
	var out []*schemaobj.Object
	for _, p := range t.Properties(s) {
		if p.IsOwned() {
			out = append(out, p)
		}
	}
	return out
}
