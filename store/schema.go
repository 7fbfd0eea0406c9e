package store

import (
	"maps"

	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
)

// Schema is an immutable snapshot of every object currently defined.
// The zero value is a valid, empty Schema.
type Schema struct {
	byName map[objname.Name]*schemaobj.Object
	byID   map[schemaobj.ObjectID]*schemaobj.Object
}

// New creates an empty Schema.
func New() *Schema {
	return &Schema{}
}

// Get looks up an object by name (get(name) -> Object | null).
func (s *Schema) Get(name objname.Name) (*schemaobj.Object, bool) {
	if s == nil {
		return nil, false
	}
	obj, ok := s.byName[name]
	return obj, ok
}

// GetByID looks up an object by its stable id.
func (s *Schema) GetByID(id schemaobj.ObjectID) (*schemaobj.Object, bool) {
	if s == nil {
		return nil, false
	}
	obj, ok := s.byID[id]
	return obj, ok
}

// GetField fetches a named class-specific field off an object that is
// itself already present in the schema (get_field_value).
func (s *Schema) GetField(obj *schemaobj.Object, field string) (any, bool) {
	return obj.Field(field)
}

// AddObject returns a new Schema with obj added or replaced, indexed
// under both its name and its id.
func (s *Schema) AddObject(obj *schemaobj.Object) *Schema {
	next := s.clone()
	next.byName[obj.Name()] = obj
	next.byID[obj.ID()] = obj
	return next
}

// DeleteObject returns a new Schema with the object named name removed.
func (s *Schema) DeleteObject(name objname.Name) *Schema {
	obj, ok := s.Get(name)
	if !ok {
		return s.clone()
	}
	next := s.clone()
	delete(next.byName, name)
	delete(next.byID, obj.ID())
	return next
}

// RenameObject returns a new Schema with the object at oldName moved to
// newName, preserving its id, and with oldName rewritten to newName
// wherever it appears in another object's Bases list or RefDict
// collections. Without this, a rename would leave every other ref's
// bases (and the referrer's own member slot) pointing at a name no
// longer present in the schema.
func (s *Schema) RenameObject(oldName, newName objname.Name) *Schema {
	obj, ok := s.Get(oldName)
	if !ok {
		return s.clone()
	}
	renamed := obj.WithName(newName)
	next := s.clone()
	delete(next.byName, oldName)
	next.byName[newName] = renamed
	next.byID[renamed.ID()] = renamed

	newRefname := objname.ShortNameFromFullName(newName)
	for name, other := range next.byName {
		if other.ID() == renamed.ID() {
			continue
		}
		updated := other
		if containsName(other.Bases(), oldName) {
			updated = updated.WithBases(replaceName(updated.Bases(), oldName, newName))
		}
		for _, attr := range updated.CollectionAttrs() {
			col := updated.Collection(attr)
			for _, refname := range col.Refnames() {
				if target, _ := col.Get(refname); target == oldName {
					updated = updated.WithCollection(attr, col.Without(refname).With(newRefname, newName))
				}
			}
		}
		if updated != other {
			next.byName[name] = updated
			next.byID[updated.ID()] = updated
		}
	}
	return next
}

func containsName(names []objname.Name, target objname.Name) bool {
	for _, name := range names {
		if name == target {
			return true
		}
	}
	return false
}

func replaceName(names []objname.Name, oldName, newName objname.Name) []objname.Name {
	out := make([]objname.Name, len(names))
	for i, name := range names {
		if name == oldName {
			out[i] = newName
		} else {
			out[i] = name
		}
	}
	return out
}

// AddClassRef returns a new Schema in which referrer's RefDict slot attr
// gains a binding from refname to ref's name (add_classref).
func (s *Schema) AddClassRef(referrer objname.Name, attr, refname string, ref objname.Name) *Schema {
	owner, ok := s.Get(referrer)
	if !ok {
		return s.clone()
	}
	col := owner.Collection(attr).With(refname, ref)
	updated := owner.WithCollection(attr, col)
	return s.AddObject(updated)
}

// DelClassRef returns a new Schema in which referrer's RefDict slot attr
// loses its binding for refname (del_classref).
func (s *Schema) DelClassRef(referrer objname.Name, attr, refname string) *Schema {
	owner, ok := s.Get(referrer)
	if !ok {
		return s.clone()
	}
	col := owner.Collection(attr).Without(refname)
	updated := owner.WithCollection(attr, col)
	return s.AddObject(updated)
}

func (s *Schema) clone() *Schema {
	next := &Schema{
		byName: make(map[objname.Name]*schemaobj.Object),
		byID:   make(map[schemaobj.ObjectID]*schemaobj.Object),
	}
	if s == nil {
		return next
	}
	maps.Copy(next.byName, s.byName)
	maps.Copy(next.byID, s.byID)
	return next
}
