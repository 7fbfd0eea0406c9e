package referencing

import (
	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
)

// ClassnameFromAST derives the fully-qualified name of a newly declared
// ref from its short name and quals, using whichever referrer-command
// frame is on top of ctx for ownKind. If no such frame exists, the ref
// is not actually being declared inside a referrer and falls back to
// non-referenced naming: the bare short name.
func (e *Engine) ClassnameFromAST(ctx *command.CommandContext, ownKind schemaobj.ClassKind, shortName string, quals ...string) objname.Name {
	referrerKind, _, ok := e.Registry.ReferrerKindOf(ownKind)
	if !ok {
		return objname.ShortName(shortName)
	}
	frame, ok := ctx.Get(referrerKind)
	if !ok {
		return objname.ShortName(shortName)
	}
	return objname.Specialized(shortName, frame.Object, quals...)
}

// ClassnameFromName reconstructs name's FQN under a different referrer,
// reusing its short name. Callers that need to preserve the existing
// qualifiers pass them explicitly; most propagation call sites do, via
// objname.QualsFromFullName(name).
func ClassnameFromName(name objname.Name, referrer objname.Name, quals ...string) objname.Name {
	return objname.ClassnameFromName(name, referrer, quals...)
}

// RefnameFor derives the key used inside an ObjectCollection for a ref,
// from its fully-qualified name. Every RefDict slot is keyed by the
// ref's short name, which is stable across referrers: propagating a ref
// to a different referrer reuses the same refname even though the FQN
// differs.
func RefnameFor(name objname.Name) string {
	return objname.ShortNameFromFullName(name)
}
