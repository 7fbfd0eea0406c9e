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

// Replay applies an already-expanded delta verbatim: no implicit-base
// recomputation and no propagation to descendants, because a replayed
// tree already carries all derived work as explicit commands.
func TestReplayAppliesDeltaVerbatim(t *testing.T) {
	reg := newTestRegistry()
	eng := referencing.New(reg, nil)

	a := schemaobj.NewObject(kindObjectType, n("A"), location.Span{})
	b := schemaobj.NewObject(kindObjectType, n("B"), location.Span{}).WithBases([]objname.Name{n("A")})
	s := store.New().AddObject(a).AddObject(b)

	pOnA := objname.Specialized("p", n("A"))
	root := &command.DeltaRoot{
		Subcommands: []command.Command{
			&command.CreateObject{
				Kind: kindPointer, Name: pOnA, Owned: true,
				Referrer: n("A"), ReferrerKind: kindObjectType,
				RefDictAttr: "properties", Refname: "p",
			},
		},
	}

	next, err := eng.Replay(s, root)
	require.NoError(t, err)

	_, ok := next.Get(pOnA)
	assert.True(t, ok)

	ownerB, ok := next.Get(n("B"))
	require.True(t, ok)
	assert.Equal(t, 0, ownerB.Collection("properties").Len(),
		"replay must not synthesize propagation the delta does not carry")
}
