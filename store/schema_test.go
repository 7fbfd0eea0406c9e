package store_test

import (
	"testing"

	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kindObjectType schemaobj.ClassKind = "ObjectType"

func TestSchemaAddGetImmutable(t *testing.T) {
	s0 := store.New()
	name := objname.NewName("mymod", "A")
	obj := schemaobj.NewObject(kindObjectType, name, location.Span{})

	s1 := s0.AddObject(obj)

	_, ok := s0.Get(name)
	assert.False(t, ok, "original snapshot must not see the add")

	got, ok := s1.Get(name)
	require.True(t, ok)
	assert.Equal(t, obj.ID(), got.ID())
}

func TestSchemaDeleteObject(t *testing.T) {
	name := objname.NewName("mymod", "A")
	obj := schemaobj.NewObject(kindObjectType, name, location.Span{})
	s1 := store.New().AddObject(obj)

	s2 := s1.DeleteObject(name)

	_, ok := s2.Get(name)
	assert.False(t, ok)
	_, ok = s1.Get(name)
	assert.True(t, ok, "deleting from s2 must not affect s1")
}

func TestSchemaRenamePreservesID(t *testing.T) {
	oldName := objname.NewName("mymod", "A")
	newName := objname.NewName("mymod", "B")
	obj := schemaobj.NewObject(kindObjectType, oldName, location.Span{})
	s1 := store.New().AddObject(obj)

	s2 := s1.RenameObject(oldName, newName)

	_, ok := s2.Get(oldName)
	assert.False(t, ok)
	renamed, ok := s2.Get(newName)
	require.True(t, ok)
	assert.Equal(t, obj.ID(), renamed.ID())

	byID, ok := s2.GetByID(obj.ID())
	require.True(t, ok)
	assert.Equal(t, newName, byID.Name())
}

func TestSchemaRenameRewritesDependentBases(t *testing.T) {
	oldName := objname.NewName("mymod", "A")
	newName := objname.NewName("mymod", "B")
	a := schemaobj.NewObject(kindObjectType, oldName, location.Span{})
	childName := objname.NewName("mymod", "C")
	child := schemaobj.NewObject(kindObjectType, childName, location.Span{}).WithBases([]objname.Name{oldName})
	s1 := store.New().AddObject(a).AddObject(child)

	s2 := s1.RenameObject(oldName, newName)

	updatedChild, ok := s2.Get(childName)
	require.True(t, ok)
	assert.Equal(t, []objname.Name{newName}, updatedChild.Bases(),
		"a base referencing the renamed object must be rewritten, not left dangling")
}

func TestSchemaRenameRekeysReferrerCollections(t *testing.T) {
	parent := objname.NewName("mymod", "A")
	owner := schemaobj.NewObject(kindObjectType, parent, location.Span{})

	oldRef := objname.Specialized("p", parent)
	newRef := objname.Specialized("q", parent)
	ref := schemaobj.NewObject("Pointer", oldRef, location.Span{})

	s1 := store.New().AddObject(owner).AddObject(ref).AddClassRef(parent, "pointers", "p", oldRef)
	s2 := s1.RenameObject(oldRef, newRef)

	updatedOwner, ok := s2.Get(parent)
	require.True(t, ok)
	_, ok = updatedOwner.Collection("pointers").Get("p")
	assert.False(t, ok, "the stale refname entry must be gone")
	got, ok := updatedOwner.Collection("pointers").Get("q")
	require.True(t, ok, "the member must be re-keyed under its new short name")
	assert.Equal(t, newRef, got)
}

func TestSchemaAddDelClassRef(t *testing.T) {
	parent := objname.NewName("mymod", "A")
	owner := schemaobj.NewObject(kindObjectType, parent, location.Span{})
	s1 := store.New().AddObject(owner)

	ref := objname.Specialized("p", parent)
	s2 := s1.AddClassRef(parent, "pointers", "p", ref)

	updatedOwner, ok := s2.Get(parent)
	require.True(t, ok)
	got, ok := updatedOwner.Collection("pointers").Get("p")
	require.True(t, ok)
	assert.Equal(t, ref, got)

	s3 := s2.DelClassRef(parent, "pointers", "p")
	updatedOwner2, ok := s3.Get(parent)
	require.True(t, ok)
	_, ok = updatedOwner2.Collection("pointers").Get("p")
	assert.False(t, ok)
}

func TestSchemaLenAndObjects(t *testing.T) {
	s := store.New()
	assert.Equal(t, 0, s.Len())

	a := schemaobj.NewObject(kindObjectType, objname.NewName("m", "A"), location.Span{})
	b := schemaobj.NewObject(kindObjectType, objname.NewName("m", "B"), location.Span{})
	s = s.AddObject(a).AddObject(b)

	assert.Equal(t, 2, s.Len())

	seen := make(map[string]bool)
	for obj := range s.Objects() {
		seen[obj.Name().String()] = true
	}
	assert.True(t, seen["m::A"])
	assert.True(t, seen["m::B"])
}
