package referencing

import (
	"log/slog"
	"strings"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// DeleteRef removes a ref, refusing to drop one that is still
// implicitly inherited, and otherwise rebasing or deleting the
// matching ref on every child of the referrer so descendants stay
// consistent with their bases.
//
// Every call pushes a Deleting frame for name onto ctx for its
// duration, which two things read: [command.CommandContext.InDeletion]
// (offset=1 — is my own referrer's delete itself in progress one frame
// up the stack, i.e. am I being removed only as a consequence of my
// whole referrer being dropped) suppresses the inherited-ref check
// below, and [command.CommandContext.BeingDeleted] lets that same
// check subtract any implicit base that is concurrently being deleted
// elsewhere in this delta tree. DeleteRef also cascades into name's
// own RefDict slots (if it is itself a referrer, e.g. a Pointer owns
// Constraints) before removing it, recursing with the Deleting frame
// already in place so each sub-ref's own check sees its referrer
// mid-deletion one frame up.
func (e *Engine) DeleteRef(s *store.Schema, ctx *command.CommandContext, name objname.Name) (result *store.Schema, err error) {
	op := e.trace("referencing.DeleteRef", slog.String("name", name.String()))
	defer func() { op.End(err) }()

	ref, ok := s.Get(name)
	if !ok {
		return nil, schemaerr.NewInvariantViolation("delete of unknown object " + name.String())
	}

	_, refdict, hasReferrer := e.Registry.ReferrerKindOf(ref.Kind())
	var referrerObj *schemaobj.Object
	if hasReferrer {
		referrerObj, _ = s.Get(ref.Referrer())
	}

	ctx.Push(ref.Kind(), name, command.Deleting(true))
	defer ctx.Pop()

	top := ctx.Top()
	canonical := top.Flags.Canonical
	disableDepVerification := top.Flags.DisableDepVerification

	var referrerDescriptor schemaobj.ClassDescriptor
	if referrerObj != nil {
		referrerDescriptor, _ = e.Registry.Descriptor(referrerObj.Kind())
		inDeletion := ctx.InDeletion(1, referrerObj.Kind())
		if !canonical && referrerDescriptor.IsInheriting && !disableDepVerification && !inDeletion {
			implicit := e.ImplicitBases(s, referrerObj, refdict, name)
			var pending []objname.Name
			for _, b := range implicit {
				if !ctx.BeingDeleted(b) {
					pending = append(pending, b)
				}
			}
			if len(pending) > 0 {
				ancestry := make([]string, 0, len(pending))
				for _, b := range pending {
					if obj, ok := s.Get(b); ok && !obj.Referrer().IsZero() {
						ancestry = append(ancestry, obj.Referrer().String())
					}
				}
				return nil, schemaerr.NewSchemaError(
					GetVerbosename(s, ref, true) + " cannot be dropped because it is inherited from " +
						strings.Join(ancestry, ", "))
			}
		}
	}

	next := s
	if referrerObj != nil {
		next = next.DelClassRef(referrerObj.Name(), refdict.Attr, RefnameFor(name))
	}

	if referrerObj != nil && !canonical && referrerDescriptor.IsInheriting {
		for _, child := range s.Children(referrerObj.Name()) {
			childRefFQ := ClassnameFromName(name, child.Name(), objname.QualsFromFullName(name)...)
			childRef, ok := next.Get(childRefFQ)
			if !ok {
				continue
			}
			var err error
			next, err = e.propagateRefDeletion(next, ctx, child, refdict, childRef)
			if err != nil {
				return nil, err
			}
		}
	}

	descriptor, _ := e.Registry.Descriptor(ref.Kind())
	for _, rd := range descriptor.RefDicts {
		for _, subName := range ref.Collection(rd.Attr).Objects() {
			if _, ok := next.Get(subName); !ok {
				continue
			}
			var err error
			next, err = e.DeleteRef(next, ctx, subName)
			if err != nil {
				return nil, err
			}
		}
	}

	return next.DeleteObject(name), nil
}

// propagateRefDeletion either rebases childRef onto its remaining
// implicit bases (if it is locally owned or still has some) or deletes
// it outright.
func (e *Engine) propagateRefDeletion(s *store.Schema, ctx *command.CommandContext, child *schemaobj.Object, refdict schemaobj.RefDict, childRef *schemaobj.Object) (*store.Schema, error) {
	implicit := e.ImplicitBases(s, child, refdict, childRef.Name())

	if childRef.IsOwned() || len(implicit) > 0 {
		defaultBase, _ := e.Registry.DefaultBaseName(childRef.Kind())
		explicit := explicitBases(childRef, defaultBase)
		target := append(append([]objname.Name(nil), implicit...), explicit...)
		removed, added := deltaBases(childRef.Bases(), target)
		rebase := &command.RebaseInheritingObject{
			Name: childRef.Name(), Bases: target,
			AddedBases: added, RemovedBases: removed, Implicit: true,
		}
		return rebase.Apply(s, ctx)
	}

	del := &command.DeleteObject{
		Name: childRef.Name(), Referrer: child.Name(),
		RefDictAttr: refdict.Attr, Refname: RefnameFor(childRef.Name()),
	}
	return del.Apply(s, ctx)
}
