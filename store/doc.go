// Package store holds the immutable Schema snapshot: a persistent
// namespace of [schemaobj.Object] values keyed by [objname.Name] and
// [schemaobj.ObjectID], indexed for O(1) lookup both ways.
//
// Every mutating method returns a new *Schema sharing unmodified
// structure with its parent via copy-on-write maps.Clone: wrap, never
// mutate in place. This makes intra-command tentative applies safe
// without rollback machinery.
package store
