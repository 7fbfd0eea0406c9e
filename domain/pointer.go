package domain

import (
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// Field keys Pointer stores on its wrapped Object beyond the common
// referenced-inheriting fields.
const (
	FieldTargetType  = "targetType"
	FieldCardinality = "cardinality"
)

// Cardinality is a Pointer's multiplicity, carried as a plain string
// field value (Object fields are opaque-typed; this is the
// domain-specific meaning given to one such field).
type Cardinality string

const (
	CardinalityOne  Cardinality = "One"
	CardinalityMany Cardinality = "Many"
)

// Pointer is a read-only view over a *schemaobj.Object of kind
// KindPointer: a referenced, inheriting object owned by an ObjectType
// that is itself a referrer of Constraint.
type Pointer struct {
	Obj *schemaobj.Object
}

// AsPointer wraps obj for read access as a Pointer.
func AsPointer(obj *schemaobj.Object) Pointer { return Pointer{Obj: obj} }

// NewGenericPointer builds the "std::Property" root form every
// non-specialized Pointer implicitly extends (the glossary's "generic
// object"), given a target type name and cardinality.
func NewGenericPointer(name objname.Name, span location.Span, target objname.Name, card Cardinality) *schemaobj.Object {
	return schemaobj.NewObject(KindPointer, name, span).
		WithField(FieldTargetType, target).
		WithField(FieldCardinality, string(card))
}

// TargetType returns the name of the type this pointer points to.
func (p Pointer) TargetType() (objname.Name, bool) {
	v, ok := p.Obj.Field(FieldTargetType)
	if !ok {
		return objname.Name{}, false
	}
	name, ok := v.(objname.Name)
	return name, ok
}

// Cardinality returns the pointer's declared multiplicity.
func (p Pointer) Cardinality() Cardinality {
	v, ok := p.Obj.Field(FieldCardinality)
	if !ok {
		return CardinalityOne
	}
	s, _ := v.(string)
	return Cardinality(s)
}

// Constraint looks up a constraint owned or inherited by this pointer
// by its refname.
func (p Pointer) Constraint(s *store.Schema, refname string) (*schemaobj.Object, bool) {
	name, ok := p.Obj.Collection(AttrConstraints).Get(refname)
	if !ok {
		return nil, false
	}
	return s.Get(name)
}

// Constraints returns every constraint owned or inherited by this
// pointer, in declaration order.
func (p Pointer) Constraints(s *store.Schema) []*schemaobj.Object {
	names := p.Obj.Collection(AttrConstraints).Objects()
	out := make([]*schemaobj.Object, 0, len(names))
	for _, n := range names {
		if obj, ok := s.Get(n); ok {
			out = append(out, obj)
		}
	}
	return out
}
