package domain

import (
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
)

// Class kinds for the three concrete schema object classes this package
// instantiates the engine over.
const (
	KindObjectType schemaobj.ClassKind = "ObjectType"
	KindPointer    schemaobj.ClassKind = "Pointer"
	KindConstraint schemaobj.ClassKind = "Constraint"
)

// RefDict attribute names, shared between the registry below and the
// constructors in objecttype.go/pointer.go.
const (
	AttrProperties  = "properties"
	AttrConstraints = "constraints"
)

// Default generic bases: a Pointer or Constraint that is not itself
// specialized to some referrer implicitly extends one of these. They
// are the root forms used to type explicit bases written in an
// `extending` clause.
var (
	DefaultPointerBase    = objname.NewName("std", "Property")
	DefaultConstraintBase = objname.NewName("std", "Constraint")
)

// NewRegistry builds the class registry wiring ObjectType, Pointer, and
// Constraint together: ObjectType owns a "properties" RefDict of
// Pointer, and Pointer owns a "constraints" RefDict of Constraint with
// RequiresExplicitOverloaded set.
func NewRegistry() *schemaobj.ClassRegistry {
	reg := schemaobj.NewClassRegistry()

	reg.Register(schemaobj.ClassDescriptor{
		Kind:            KindConstraint,
		IsReferenced:    true,
		IsInheriting:    true,
		DefaultBaseName: DefaultConstraintBase,
	})

	reg.Register(schemaobj.ClassDescriptor{
		Kind:            KindPointer,
		IsReferenced:    true,
		IsInheriting:    true,
		DefaultBaseName: DefaultPointerBase,
		RefDicts: []schemaobj.RefDict{
			{
				Attr:                       AttrConstraints,
				BackrefAttr:                "subject",
				MemberKind:                 KindConstraint,
				RequiresExplicitOverloaded: true,
			},
		},
	})

	reg.Register(schemaobj.ClassDescriptor{
		Kind:         KindObjectType,
		IsInheriting: true,
		RefDicts: []schemaobj.RefDict{
			{
				Attr:        AttrProperties,
				BackrefAttr: "source",
				MemberKind:  KindPointer,
			},
		},
	})

	return reg
}
