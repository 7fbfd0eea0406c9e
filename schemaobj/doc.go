// Package schemaobj defines the schema object model: [Object], the
// class-registry metadata that drives the referencing engine, and the
// ordered [ObjectCollection] each referrer uses to hold one RefDict slot.
//
// The source system's deep CreateReferencedInheritingObject/Alter.../
// Delete... class lattice (diamond-inheriting three orthogonal
// capabilities: being referenced, being inheriting, and being both) is
// flattened here into one concrete [Object] type plus a [ClassKind]
// discriminant: every Object carries the fields both capabilities need,
// and [ClassDescriptor] records, per kind, which capabilities apply and
// which RefDict slots it owns as a referrer. Capability predicates
// ([Object.IsReferenced] and the [ClassDescriptor] IsInheriting flag)
// replace interface-based dispatch without requiring a class hierarchy.
package schemaobj
