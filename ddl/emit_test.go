package ddl_test

import (
	"testing"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/ddl"
	"github.com/simon-lentz/refschema/domain"
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/referencing"
	"github.com/simon-lentz/refschema/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func n(local string) objname.Name {
	return objname.NewName("mymod", local)
}

// Emitting the create node for an inherited-and-overloaded ref must
// hide its implicit base: only explicitly written bases survive into
// the Extending clause.
func TestEmitCreateNodeHidesImplicitBases(t *testing.T) {
	reg := domain.NewRegistry()
	eng := referencing.New(reg, nil)

	a := domain.NewObjectType(n("A"), location.Span{})
	b := domain.NewObjectType(n("B"), location.Span{}, n("A"))
	s := store.New().AddObject(a).AddObject(b)

	ctx := command.NewCommandContext(command.EnableRecursion(true))
	ctx.Push(domain.KindObjectType, n("A"))
	s, err := eng.CreateRef(s, ctx, referencing.CreateRefRequest{
		Kind: domain.KindPointer, ShortName: "p",
	})
	require.NoError(t, err)
	ctx.Pop()

	// Overload p on B: its bases become [A.p], all implicit.
	ctx.Push(domain.KindObjectType, n("B"))
	s, err = eng.CreateRef(s, ctx, referencing.CreateRefRequest{
		Kind: domain.KindPointer, ShortName: "p",
	})
	require.NoError(t, err)
	ctx.Pop()

	pOnB, ok := s.Get(objname.Specialized("p", n("B")))
	require.True(t, ok)

	node := ddl.EmitCreateNode(eng, s, pOnB)
	assert.Equal(t, ddl.OpCreate, node.Op)
	assert.Equal(t, "p", node.Name)
	assert.Empty(t, node.Extending, "the implicit base A.p must not be serialized")
}

func TestEmitCreateNodeKeepsExplicitBases(t *testing.T) {
	reg := domain.NewRegistry()
	eng := referencing.New(reg, nil)

	a := domain.NewObjectType(n("A"), location.Span{})
	audit := domain.NewGenericPointer(objname.NewName("std", "auditable"), location.Span{},
		objname.NewName("std", "str"), domain.CardinalityOne)
	s := store.New().AddObject(a).AddObject(audit)

	ctx := command.NewCommandContext(command.EnableRecursion(true))
	ctx.Push(domain.KindObjectType, n("A"))
	s, err := eng.CreateRef(s, ctx, referencing.CreateRefRequest{
		Kind: domain.KindPointer, ShortName: "p",
		ExplicitBases: []objname.Name{audit.Name()},
	})
	require.NoError(t, err)
	ctx.Pop()

	pOnA, ok := s.Get(objname.Specialized("p", n("A")))
	require.True(t, ok)

	node := ddl.EmitCreateNode(eng, s, pOnA)
	assert.Equal(t, []string{"std::auditable"}, node.Extending)
}

// A deletion of a ref that was never locally owned produces no DDL
// output at all.
func TestEmitDeleteNodeSuppressesUnownedRef(t *testing.T) {
	reg := domain.NewRegistry()
	eng := referencing.New(reg, nil)

	a := domain.NewObjectType(n("A"), location.Span{})
	b := domain.NewObjectType(n("B"), location.Span{}, n("A"))
	s := store.New().AddObject(a).AddObject(b)

	ctx := command.NewCommandContext(command.EnableRecursion(true))
	ctx.Push(domain.KindObjectType, n("A"))
	s, err := eng.CreateRef(s, ctx, referencing.CreateRefRequest{
		Kind: domain.KindPointer, ShortName: "p",
	})
	require.NoError(t, err)
	ctx.Pop()

	pOnA, ok := s.Get(objname.Specialized("p", n("A")))
	require.True(t, ok)
	pOnB, ok := s.Get(objname.Specialized("p", n("B")))
	require.True(t, ok)

	assert.Nil(t, ddl.EmitDeleteNode(pOnB), "unowned propagated ref deletes implicitly")

	node := ddl.EmitDeleteNode(pOnA)
	require.NotNil(t, node)
	assert.Equal(t, ddl.OpDelete, node.Op)
	assert.Equal(t, pOnA.Name().String(), node.Name)
}
