package referencing

import (
	"log/slog"
	"strings"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/store"
)

// RenameRefRequest is the input to [Engine.RenameRef].
type RenameRefRequest struct {
	Name         objname.Name
	NewShortName string
}

// RenameRef renames a ref to a new short name, refusing to rename a
// purely inherited ref, and otherwise propagating the rename to every
// inheritance descendant of the ref so short names keep matching
// across a referrer's descendants.
func (e *Engine) RenameRef(s *store.Schema, ctx *command.CommandContext, req RenameRefRequest) (result *store.Schema, err error) {
	op := e.trace("referencing.RenameRef", slog.String("name", req.Name.String()), slog.String("to", req.NewShortName))
	defer func() { op.End(err) }()

	ref, ok := s.Get(req.Name)
	if !ok {
		return nil, schemaerr.NewInvariantViolation("rename of unknown object " + req.Name.String())
	}

	var newName objname.Name
	if ref.Referrer().IsZero() {
		newName = objname.NewName(req.Name.Module(), req.NewShortName)
	} else {
		newName = objname.Specialized(req.NewShortName, ref.Referrer(), objname.QualsFromFullName(req.Name)...)
	}

	rename := &command.RenameObject{OldName: req.Name, NewName: newName}
	next, err := rename.Apply(s, ctx)
	if err != nil {
		return nil, err
	}

	top := ctx.Top()
	canonical := top != nil && top.Flags.Canonical
	if canonical {
		return next, nil
	}

	_, _, hasReferrer := e.Registry.ReferrerKindOf(ref.Kind())
	if !hasReferrer {
		return next, nil
	}
	defaultBase, _ := e.Registry.DefaultBaseName(ref.Kind())
	if ref.Generic(defaultBase) {
		return e.propagateRename(next, ctx, newName, req.NewShortName)
	}

	var notRenamed []string
	for _, b := range ref.Bases() {
		baseObj, ok := s.Get(b)
		if !ok || baseObj.Generic(defaultBase) {
			continue
		}
		if !ctx.WasRenamed(b) {
			notRenamed = append(notRenamed, objname.ShortNameFromFullName(b))
		}
	}
	if len(notRenamed) > 0 {
		return nil, schemaerr.NewSchemaDefinitionErrorWithDetails(
			GetVerbosename(s, ref, true)+" cannot be renamed because it is inherited",
			strings.Join(notRenamed, ", "),
			ref.Span(),
		)
	}

	return e.propagateRename(next, ctx, newName, req.NewShortName)
}

// propagateRename renames every inheritance descendant of name (a ref
// that just got renamed, so its descendants' bases already point at its
// post-rename name) to newShortName, pushing a RefOpPropagated frame per
// descendant so recursion halts the instant it re-enters an
// already-propagated frame.
func (e *Engine) propagateRename(s *store.Schema, ctx *command.CommandContext, name objname.Name, newShortName string) (*store.Schema, error) {
	if top := ctx.Top(); top != nil && top.RefOpPropagated {
		return s, nil
	}

	next := s
	for _, child := range s.Children(name) {
		referrerKind, _, hasReferrer := e.Registry.ReferrerKindOf(child.Kind())
		if !hasReferrer {
			continue
		}
		referrerObj, ok := next.Get(child.Referrer())
		if !ok {
			continue
		}

		childNewName := objname.Specialized(newShortName, child.Referrer(), objname.QualsFromFullName(child.Name())...)
		rename := &command.RenameObject{OldName: child.Name(), NewName: childNewName}

		ctx.Push(referrerKind, referrerObj.Name())
		ctx.Push(child.Kind(), child.Name(), command.RefOpPropagated(true))
		var err error
		next, err = rename.Apply(next, ctx)
		ctx.Pop()
		ctx.Pop()
		if err != nil {
			return nil, err
		}

		// Recurse after the synthesized frames are popped: the
		// RefOpPropagated guard must only stop a rename that re-enters
		// propagation from within an already-propagated frame, not the
		// walk down to this child's own descendants.
		next, err = e.propagateRename(next, ctx, childNewName, newShortName)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}
