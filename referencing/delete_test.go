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

// A purely inherited ref cannot be deleted on its own.
func TestDeleteRefFailsWhenPurelyInherited(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)
	s, _, pOnB := twoLevelPropertySchema(t)

	ctx := command.NewCommandContext()
	_, err := eng.DeleteRef(s, ctx, pOnB)
	assert.Error(t, err, "deleting an unowned, purely inherited ref in isolation must fail")
}

// Delete with descendant rebase: B.p is owned and inherits only
// from A.p; deleting A.p must leave B.p in place, rebased to lose A.p,
// while A.properties['p'] is gone.
func TestDeleteRefRebasesOwnedDescendant(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)
	s, pOnA, pOnB := twoLevelPropertySchema(t)

	bP, ok := s.Get(pOnB)
	require.True(t, ok)
	s = s.AddObject(bP.WithOwned(true))

	ctx := command.NewCommandContext()
	next, err := eng.DeleteRef(s, ctx, pOnA)
	require.NoError(t, err)

	_, ok = next.Get(pOnA)
	assert.False(t, ok, "A.p must be gone")

	ownerA, ok := next.Get(n("A"))
	require.True(t, ok)
	_, ok = ownerA.Collection("properties").Get("p")
	assert.False(t, ok, "A.properties['p'] must be unlinked")

	remainingB, ok := next.Get(pOnB)
	require.True(t, ok, "B.p must remain, it is owned")
	assert.Empty(t, remainingB.Bases(), "B.p loses its only base when A.p is dropped")
}

// Deleting the parent and the (unowned) child
// together succeeds: dropping A.p, where B.p is purely inherited with
// no local override, must cascade-delete B.p too rather than leaving it
// dangling or erroring, because B.p's own removal here is not a
// standalone "drop an inherited ref" request.
func TestDeleteRefCascadesUnownedDescendantTogether(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)
	s, pOnA, pOnB := twoLevelPropertySchema(t)

	ctx := command.NewCommandContext()
	next, err := eng.DeleteRef(s, ctx, pOnA)
	require.NoError(t, err)

	_, ok := next.Get(pOnA)
	assert.False(t, ok)
	_, ok = next.Get(pOnB)
	assert.False(t, ok, "B.p must be dropped together with A.p since it carries no local override")

	ownerB, ok := next.Get(n("B"))
	require.True(t, ok)
	_, ok = ownerB.Collection("properties").Get("p")
	assert.False(t, ok, "B.properties['p'] must be unlinked")
}

// Deleting a Pointer must
// cascade into its own owned Constraints, and that cascade must not be
// blocked by the "cannot drop inherited" check even when the Constraint
// itself has an implicit base, because the Constraint is being removed
// only as a consequence of its owning Pointer being dropped wholesale.
func TestDeleteRefCascadesOwnedSubRefsAcrossInDeletion(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)

	pa := schemaobj.NewObject(kindPointer, n("PA"), location.Span{})
	pb := schemaobj.NewObject(kindPointer, n("PB"), location.Span{}).WithBases([]objname.Name{n("PA")})
	s := store.New().AddObject(pa).AddObject(pb)

	cOnPA := objname.Specialized("c", n("PA"))
	cOnPB := objname.Specialized("c", n("PB"))
	caObj := schemaobj.NewObject(kindConstraint, cOnPA, location.Span{}).
		WithOwned(true).WithReferrer(n("PA"), kindPointer)
	cbObj := schemaobj.NewObject(kindConstraint, cOnPB, location.Span{}).
		WithBases([]objname.Name{cOnPA}).WithReferrer(n("PB"), kindPointer)
	s = s.AddObject(caObj).AddClassRef(n("PA"), "constraints", "c", cOnPA)
	s = s.AddObject(cbObj).AddClassRef(n("PB"), "constraints", "c", cOnPB)

	ctx := command.NewCommandContext()
	next, err := eng.DeleteRef(s, ctx, n("PB"))
	require.NoError(t, err, "deleting PB must cascade into its owned constraint despite the constraint's implicit base")

	_, ok := next.Get(n("PB"))
	assert.False(t, ok, "PB must be gone")
	_, ok = next.Get(cOnPB)
	assert.False(t, ok, "PB.c must be gone along with its owning Pointer")

	_, ok = next.Get(n("PA"))
	assert.True(t, ok, "PA must be untouched")
	_, ok = next.Get(cOnPA)
	assert.True(t, ok, "PA.c must be untouched")
}
