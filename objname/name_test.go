package objname_test

import (
	"testing"

	"github.com/simon-lentz/refschema/objname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecializedRoundTrip(t *testing.T) {
	referrer := objname.NewName("mymod", "B")
	specialized := objname.Specialized("p", referrer)

	assert.Equal(t, "mymod", specialized.Module())
	assert.Equal(t, "p", objname.ShortNameFromFullName(specialized))
	assert.True(t, objname.IsQualified(specialized))
	assert.Nil(t, objname.QualsFromFullName(specialized))
}

func TestSpecializedWithQuals(t *testing.T) {
	referrer := objname.NewName("mymod", "B")
	q := objname.NameQualFromExprs("len(x) > 3")
	specialized := objname.Specialized("min_len", referrer, q)

	assert.Equal(t, "min_len", objname.ShortNameFromFullName(specialized))
	require.Len(t, objname.QualsFromFullName(specialized), 1)
	assert.Equal(t, q, objname.QualsFromFullName(specialized)[0])
}

func TestSpecializedDeterministic(t *testing.T) {
	referrer := objname.NewName("mod", "A")
	a := objname.Specialized("s", referrer, "q1", "q2")
	b := objname.Specialized("s", referrer, "q1", "q2")
	assert.Equal(t, a, b)
}

func TestClassnameFromName(t *testing.T) {
	parent := objname.NewName("mod", "A")
	child := objname.NewName("mod", "B")

	inA := objname.Specialized("p", parent)
	inB := objname.ClassnameFromName(inA, child)

	assert.Equal(t, "p", objname.ShortNameFromFullName(inB))
	assert.Equal(t, child.Module(), inB.Module())
	assert.NotEqual(t, inA, inB)
}

func TestIsQualifiedBareName(t *testing.T) {
	bare := objname.ShortName("Foo")
	assert.False(t, objname.IsQualified(bare))
	assert.Equal(t, "Foo", objname.ShortNameFromFullName(bare))
}
