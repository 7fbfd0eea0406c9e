package referencing_test

import (
	"testing"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/referencing"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An implicit rebase recomputes the target base list from the
// referrer's current inheritance, ignoring whatever edit the request
// carried.
func TestRebaseRefImplicitRecomputesFromReferrer(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)
	s, pOnA, pOnB := twoLevelPropertySchema(t)

	// B.p starts with a stale, empty base list.
	bP, ok := s.Get(pOnB)
	require.True(t, ok)
	s = s.AddObject(bP.WithBases(nil))

	ctx := command.NewCommandContext()
	next, err := eng.RebaseRef(s, ctx, referencing.RebaseRefRequest{Name: pOnB, Implicit: true})
	require.NoError(t, err)

	rebased, ok := next.Get(pOnB)
	require.True(t, ok)
	assert.Equal(t, []objname.Name{pOnA}, rebased.Bases(),
		"implicit rebase must re-root B.p on what B's own bases imply")
}

// An explicit rebase applies the added/removed edit literally.
func TestRebaseRefExplicitEdit(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)
	s, pOnA, pOnB := twoLevelPropertySchema(t)

	extra := objname.NewName("std", "auditable")
	s = s.AddObject(schemaobj.NewObject(kindPointer, extra, location.Span{}))

	ctx := command.NewCommandContext()
	next, err := eng.RebaseRef(s, ctx, referencing.RebaseRefRequest{
		Name:       pOnB,
		AddedBases: []objname.Name{extra},
	})
	require.NoError(t, err)

	rebased, ok := next.Get(pOnB)
	require.True(t, ok)
	assert.Equal(t, []objname.Name{pOnA, extra}, rebased.Bases())

	next, err = eng.RebaseRef(next, ctx, referencing.RebaseRefRequest{
		Name:         pOnB,
		RemovedBases: []objname.Name{extra},
	})
	require.NoError(t, err)
	rebased, _ = next.Get(pOnB)
	assert.Equal(t, []objname.Name{pOnA}, rebased.Bases())
}

// Create-then-delete of a childless ref leaves
// the schema field-equal to its prior state.
func TestCreateThenDeleteRestoresSchema(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)

	a := schemaobj.NewObject(kindObjectType, n("A"), location.Span{})
	s := store.New().AddObject(a)

	ctx := command.NewCommandContext(command.EnableRecursion(true))
	ctx.Push(kindObjectType, n("A"))
	mid, err := eng.CreateRef(s, ctx, referencing.CreateRefRequest{Kind: kindPointer, ShortName: "p"})
	require.NoError(t, err)

	pOnA := objname.Specialized("p", n("A"))
	_, ok := mid.Get(pOnA)
	require.True(t, ok)

	next, err := eng.DeleteRef(mid, ctx, pOnA)
	require.NoError(t, err)
	ctx.Pop()

	assert.Equal(t, s.Len(), next.Len())
	_, ok = next.Get(pOnA)
	assert.False(t, ok)
	owner, ok := next.Get(n("A"))
	require.True(t, ok)
	assert.Equal(t, 0, owner.Collection("properties").Len())
}
