// Package domain instantiates the generic referenced-schema-object engine
// over a small, concrete schema vocabulary: ObjectType (a referrer, not
// itself referenced), Pointer (a referenced, inheriting object that is
// itself a referrer — a property or link), and Constraint (a referenced,
// inheriting leaf, e.g. a property's min_len or exclusivity check).
//
// This gives the engine a real two-level referrer chain to walk
// (Constraint -> Pointer -> ObjectType) and exercises both overload
// rules: ObjectType's "properties" slot does not require an explicit
// `overloaded` declaration, while Pointer's "constraints" slot does.
package domain
