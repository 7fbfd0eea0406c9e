package schemaerr

import (
	"fmt"

	"github.com/simon-lentz/refschema/location"
)

// SchemaError reports a generic structural violation of the schema:
// self-derivation, deletion of an inherited ref, or a dangling reference.
type SchemaError struct {
	message string
	details string
	span    location.Span
}

// NewSchemaError creates a SchemaError with no source context.
func NewSchemaError(message string) *SchemaError {
	return &SchemaError{message: message}
}

// NewSchemaErrorAt creates a SchemaError with a source span and details.
func NewSchemaErrorAt(message, details string, span location.Span) *SchemaError {
	return &SchemaError{message: message, details: details, span: span}
}

// Message returns the human-readable description.
func (e *SchemaError) Message() string { return e.message }

// Details returns additional context, if any.
func (e *SchemaError) Details() string { return e.details }

// Span returns the offending source location, if known.
func (e *SchemaError) Span() location.Span { return e.span }

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return formatError("schema error", e.message, e.details, e.span)
}

// SchemaDefinitionError reports a user-authored DDL violation: renaming
// an inherited ref, or a missing/forbidden `overloaded` declaration.
type SchemaDefinitionError struct {
	message string
	details string
	span    location.Span
}

// NewSchemaDefinitionError creates a SchemaDefinitionError with no details.
func NewSchemaDefinitionError(message string, span location.Span) *SchemaDefinitionError {
	return &SchemaDefinitionError{message: message, span: span}
}

// NewSchemaDefinitionErrorWithDetails creates a SchemaDefinitionError
// carrying additional structured details (e.g. the list of non-renamed
// ancestors).
func NewSchemaDefinitionErrorWithDetails(message, details string, span location.Span) *SchemaDefinitionError {
	return &SchemaDefinitionError{message: message, details: details, span: span}
}

// Message returns the human-readable description.
func (e *SchemaDefinitionError) Message() string { return e.message }

// Details returns additional context, if any.
func (e *SchemaDefinitionError) Details() string { return e.details }

// Span returns the offending source location, if known.
func (e *SchemaDefinitionError) Span() location.Span { return e.span }

// Error implements the error interface.
func (e *SchemaDefinitionError) Error() string {
	return formatError("schema definition error", e.message, e.details, e.span)
}

// InvalidDefinitionError reports `DROP OWNED` applied to a ref that is
// not actually inherited.
type InvalidDefinitionError struct {
	message string
	span    location.Span
}

// NewInvalidDefinitionError creates an InvalidDefinitionError.
func NewInvalidDefinitionError(message string, span location.Span) *InvalidDefinitionError {
	return &InvalidDefinitionError{message: message, span: span}
}

// Message returns the human-readable description.
func (e *InvalidDefinitionError) Message() string { return e.message }

// Span returns the offending source location, if known.
func (e *InvalidDefinitionError) Span() location.Span { return e.span }

// Error implements the error interface.
func (e *InvalidDefinitionError) Error() string {
	return formatError("invalid definition error", e.message, "", e.span)
}

// InvariantViolation reports a bug in the engine or its caller: a
// required referrer context was missing, or an object was of an
// unexpected type. It is never user-visible in a well-formed caller.
type InvariantViolation struct {
	message string
}

// NewInvariantViolation creates an InvariantViolation.
func NewInvariantViolation(message string) *InvariantViolation {
	return &InvariantViolation{message: message}
}

// Message returns the human-readable description.
func (e *InvariantViolation) Message() string { return e.message }

// Error implements the error interface.
func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.message
}

func formatError(kind, message, details string, span location.Span) string {
	s := kind + ": " + message
	if details != "" {
		s += " (" + details + ")"
	}
	if !span.IsZero() {
		s += fmt.Sprintf(" at %s", span.Start)
	}
	return s
}
