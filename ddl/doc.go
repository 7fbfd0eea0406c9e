// Package ddl stands in for an external AST producer (parser): rather
// than inventing a DDL grammar, it defines a small AST node type
// serialized as JSON-with-comments and a Compile step that feeds a
// decoded tree through the referencing engine one node at a time, in
// declaration order.
//
// Fixture files live alongside their _test.go callers as literal
// serialized AST trees, not source text — the parsing problem itself
// is explicitly out of scope.
package ddl
