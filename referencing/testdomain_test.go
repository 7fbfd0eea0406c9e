package referencing_test

import (
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
)

const (
	kindObjectType schemaobj.ClassKind = "ObjectType"
	kindPointer    schemaobj.ClassKind = "Pointer"
	kindConstraint schemaobj.ClassKind = "Constraint"
)

func newTestRegistry() *schemaobj.ClassRegistry {
	reg := schemaobj.NewClassRegistry()
	reg.Register(schemaobj.ClassDescriptor{
		Kind:         kindConstraint,
		IsReferenced: true,
		IsInheriting: true,
	})
	reg.Register(schemaobj.ClassDescriptor{
		Kind:         kindPointer,
		IsReferenced: true,
		IsInheriting: true,
		RefDicts: []schemaobj.RefDict{
			{
				Attr:                       "constraints",
				BackrefAttr:                "subject",
				MemberKind:                 kindConstraint,
				RequiresExplicitOverloaded: true,
			},
		},
	})
	reg.Register(schemaobj.ClassDescriptor{
		Kind:         kindObjectType,
		IsInheriting: true,
		RefDicts: []schemaobj.RefDict{
			{
				Attr:        "properties",
				BackrefAttr: "source",
				MemberKind:  kindPointer,
			},
		},
	})
	return reg
}

func n(local string) objname.Name {
	return objname.NewName("mymod", local)
}
