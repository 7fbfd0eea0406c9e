// Package schemaerr defines the error taxonomy raised by the schema
// command engine.
//
// Four kinds are distinguished:
//
//   - [SchemaError]: a generic structural violation (self-derivation,
//     deleting an inherited ref, dangling references).
//   - [SchemaDefinitionError]: a user DDL violation (renaming an
//     inherited ref, missing or forbidden `overloaded`).
//   - [InvalidDefinitionError]: `DROP OWNED` on a ref that is not
//     inherited.
//   - [InvariantViolation]: a bug, not a user-visible condition (a
//     required referrer context is missing, an unexpected object type).
//
// All four carry a human-readable message. [SchemaError] and
// [SchemaDefinitionError] also carry optional structured details and an
// optional [location.Span] identifying the offending DDL;
// [InvalidDefinitionError] carries an optional span but no details;
// [InvariantViolation] carries neither details nor a span. None of them
// retry or recover internally; the caller decides what to do.
package schemaerr
