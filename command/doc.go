// Package command defines the command-tree vocabulary that the
// referencing engine builds and applies: [DeltaRoot], the concrete
// command kinds (CreateObject, AlterObject, DeleteObject,
// RebaseInheritingObject, RenameObject, AlterOwned), and the
// [CommandContext] frame stack each command executes under.
//
// A command tree is built top-down (an outer referrer's AlterObject
// wraps an inner ref's command) and applied top-down against a
// *store.Schema, producing a new snapshot; nested commands see the
// snapshot produced by everything that already applied ahead of them
// in tree order.
package command
