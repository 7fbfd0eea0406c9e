package ddl_test

import (
	"testing"

	"github.com/simon-lentz/refschema/ddl"
	"github.com/simon-lentz/refschema/domain"
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/referencing"
	"github.com/simon-lentz/refschema/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createObjectTypeFixture = `{
	// create User
	"op": "create",
	"kind": "ObjectType",
	"name": "User",
	"line": 3,
	"column": 8
}`

func TestCompileStampsCreatedRefSpanFromNodePosition(t *testing.T) {
	reg := domain.NewRegistry()
	eng := referencing.New(reg, nil)

	node, err := ddl.LoadString(createObjectTypeFixture)
	require.NoError(t, err)

	source := location.MustNewSourceID("test://fixtures/user")
	s, err := ddl.Compile(eng, store.New(), node, nil, ddl.WithSourceID(source))
	require.NoError(t, err)

	obj, ok := s.Get(objname.ShortName("User"))
	require.True(t, ok)

	want := location.Point(source, 3, 8)
	assert.Equal(t, want, obj.Span())
}

func TestCompileLeavesSpanZeroWithoutNodePosition(t *testing.T) {
	reg := domain.NewRegistry()
	eng := referencing.New(reg, nil)

	node, err := ddl.LoadString(`{"op": "create", "kind": "ObjectType", "name": "User"}`)
	require.NoError(t, err)

	s, err := ddl.Compile(eng, store.New(), node, nil)
	require.NoError(t, err)

	obj, ok := s.Get(objname.ShortName("User"))
	require.True(t, ok)
	assert.True(t, obj.Span().IsZero())
}
