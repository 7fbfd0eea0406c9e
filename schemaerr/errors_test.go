package schemaerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaErrorFormatting(t *testing.T) {
	err := schemaerr.NewSchemaError("dangling reference to mymod::B")
	assert.Equal(t, "schema error: dangling reference to mymod::B", err.Error())
	assert.Equal(t, "dangling reference to mymod::B", err.Message())
	assert.True(t, err.Span().IsZero())
}

func TestSchemaDefinitionErrorCarriesDetailsAndSpan(t *testing.T) {
	src := location.MustNewSourceID("test://ddl")
	span := location.Point(src, 12, 4)
	err := schemaerr.NewSchemaDefinitionErrorWithDetails(
		"property 'p' cannot be renamed because it is inherited", "p", span)

	assert.Equal(t, "p", err.Details())
	assert.Equal(t, span, err.Span())
	assert.Contains(t, err.Error(), "schema definition error:")
	assert.Contains(t, err.Error(), "(p)")
	assert.Contains(t, err.Error(), "12:4")
}

func TestTaxonomyMembersRecoverableViaErrorsAs(t *testing.T) {
	span := location.Span{}
	wrapped := fmt.Errorf("applying delta: %w",
		schemaerr.NewInvalidDefinitionError("cannot drop owned property 'p'", span))

	var invalid *schemaerr.InvalidDefinitionError
	require.True(t, errors.As(wrapped, &invalid))
	assert.Equal(t, "cannot drop owned property 'p'", invalid.Message())

	var other *schemaerr.SchemaError
	assert.False(t, errors.As(wrapped, &other))
}

func TestInvariantViolation(t *testing.T) {
	err := schemaerr.NewInvariantViolation("no enclosing ObjectType command context on the stack")
	assert.Contains(t, err.Error(), "invariant violation:")

	var inv *schemaerr.InvariantViolation
	assert.True(t, errors.As(err, &inv))
}
