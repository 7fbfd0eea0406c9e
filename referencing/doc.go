// Package referencing implements the referenced-schema-object command
// engine: deriving a ref's fully-qualified name from its referrer,
// resolving implicit bases, building the command-context stack a ref's
// own command executes inside, and the create / rebase / alter / rename
// / delete / alter-owned engines that keep a referrer's descendants
// consistent under edits.
//
// Every entry point takes a *store.Schema and a *command.CommandContext
// and returns the new snapshot: commands are built internally and
// applied eagerly, so by the time an entry point returns, every
// propagated descendant is already consistent in the returned schema.
package referencing
