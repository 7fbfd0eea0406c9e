// Package location provides source location tracking for diagnostics.
//
// This package defines the core types the command engine attaches to
// every schema object and error: a source identifier and a half-open
// line/column range within it. It sits at the foundation tier and can
// be imported by all other packages without introducing circular
// dependencies.
//
// # SourceID
//
// SourceID identifies a source uniquely within a build. It is always
// synthetic (e.g. "inline:test", "test://unit/person", "<stdin>") —
// created via NewSourceID or MustNewSourceID. Nothing in this
// repository resolves a SourceID back to a real filesystem path (the
// DDL ingestion path in package ddl loads fixtures as literal,
// already-decoded AST trees), so SourceID carries no file-backed mode.
//
// SourceID is comparable and safe for use as a map key.
//
// # Position and Span
//
// Position is a 1-based line/column pair; the zero value means
// "unknown". Span is a half-open [Start, End) range within a source,
// with End == Start for point spans; the zero value means "no
// location".
//
// ddl.Compile calls Point with each AST node's recorded line/column to
// stamp the span newly created schema objects carry
// (schemaobj.Object.Span); every other command derives its span from
// the existing ref it acts on, and the error types in schemaerr render
// whatever span reaches them.
//
// # Dependencies
//
// This package depends only on the standard library.
package location
