package referencing

import (
	"log/slog"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// AlterOwnedRef flips a ref's is_owned flag. Dropping ownership
// (true->false) requires at least one implicit base to fall back to,
// re-inherits every field value from those bases, and recursively drops
// or re-inherits every sub-ref the ref's own RefDicts own.
func (e *Engine) AlterOwnedRef(s *store.Schema, ctx *command.CommandContext, name objname.Name, owned bool) (result *store.Schema, err error) {
	op := e.trace("referencing.AlterOwnedRef", slog.String("name", name.String()), slog.Bool("owned", owned))
	defer func() { op.End(err) }()

	ref, ok := s.Get(name)
	if !ok {
		return nil, schemaerr.NewInvariantViolation("alter-owned of unknown object " + name.String())
	}
	wasOwned := ref.IsOwned()

	cmd := &command.AlterOwned{Name: name, Owned: owned}
	next, err := cmd.Apply(s, ctx)
	if err != nil {
		return nil, err
	}

	top := ctx.Top()
	canonical := top != nil && top.Flags.Canonical
	if !(wasOwned && !owned) || canonical {
		return next, nil
	}

	_, refdict, hasReferrer := e.Registry.ReferrerKindOf(ref.Kind())
	var implicit []objname.Name
	if hasReferrer {
		if referrerObj, ok := s.Get(ref.Referrer()); ok {
			implicit = e.ImplicitBases(s, referrerObj, refdict, name)
		}
	}
	if len(implicit) == 0 {
		return nil, schemaerr.NewInvalidDefinitionError(
			GetVerbosename(s, ref, true)+" cannot be dropped owned, as it is not inherited, use DROP ... instead",
			ref.Span(),
		)
	}

	// Re-inherit with ignore_local semantics: the resulting field set is
	// exactly what the bases produce, first base winning, with every
	// local override discarded.
	baseFields := make(map[string]any)
	for _, baseName := range implicit {
		baseObj, ok := next.Get(baseName)
		if !ok {
			continue
		}
		for k, v := range baseObj.Fields() {
			if _, set := baseFields[k]; !set {
				baseFields[k] = v
			}
		}
	}
	updated, ok := next.Get(name)
	if !ok {
		return next, nil
	}
	updated = updated.WithFields(baseFields)
	next = next.AddObject(updated)

	return e.dropOwnedRefs(next, ctx, updated)
}

// dropOwnedRefs sheds a newly unowned ref's local members: every
// sub-ref the ref owns via one of its RefDicts is either recursively
// unowned (if it is itself inherited-and-owned) or deleted outright.
func (e *Engine) dropOwnedRefs(s *store.Schema, ctx *command.CommandContext, owner *schemaobj.Object) (*store.Schema, error) {
	descriptor, _ := e.Registry.Descriptor(owner.Kind())

	next := s
	for _, rd := range descriptor.RefDicts {
		for _, subName := range owner.Collection(rd.Attr).Objects() {
			subRef, ok := next.Get(subName)
			if !ok {
				continue
			}
			subImplicit := e.ImplicitBases(next, owner, rd, subName)

			var err error
			if subRef.IsOwned() && len(subImplicit) > 0 {
				next, err = e.AlterOwnedRef(next, ctx, subName, false)
			} else {
				del := &command.DeleteObject{
					Name: subName, Referrer: owner.Name(),
					RefDictAttr: rd.Attr, Refname: RefnameFor(subName),
				}
				next, err = del.Apply(next, ctx)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return next, nil
}
