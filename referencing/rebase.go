package referencing

import (
	"log/slog"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/store"
)

// RebaseRefRequest is the input to [Engine.RebaseRef]. When Implicit is
// true, AddedBases/RemovedBases are ignored and recomputed from the
// referrer's current bases; when false, they are applied as a literal
// edit to ref's current bases (an explicit AST `EXTENDING` change).
type RebaseRefRequest struct {
	Name         objname.Name
	AddedBases   []objname.Name
	RemovedBases []objname.Name
	Implicit     bool
}

// RebaseRef recomputes or applies a ref's base list.
func (e *Engine) RebaseRef(s *store.Schema, ctx *command.CommandContext, req RebaseRefRequest) (result *store.Schema, err error) {
	op := e.trace("referencing.RebaseRef", slog.String("name", req.Name.String()), slog.Bool("implicit", req.Implicit))
	defer func() { op.End(err) }()

	ref, ok := s.Get(req.Name)
	if !ok {
		return nil, schemaerr.NewInvariantViolation("rebase of unknown object " + req.Name.String())
	}

	target := applyBaseEdit(ref.Bases(), req.RemovedBases, req.AddedBases)
	added := req.AddedBases
	removed := req.RemovedBases

	top := ctx.Top()
	canonical := top != nil && top.Flags.Canonical

	if !canonical && req.Implicit {
		if _, refdict, ok := e.Registry.ReferrerKindOf(ref.Kind()); ok {
			if referrerObj, ok := s.Get(ref.Referrer()); ok {
				implicit := e.ImplicitBases(s, referrerObj, refdict, req.Name)
				defaultBase, _ := e.Registry.DefaultBaseName(ref.Kind())
				explicit := explicitBases(ref, defaultBase)
				target = append(append([]objname.Name(nil), implicit...), explicit...)
				removed, added = deltaBases(ref.Bases(), target)
			}
		}
	}

	cmd := &command.RebaseInheritingObject{
		Name: req.Name, Bases: target,
		AddedBases: added, RemovedBases: removed, Implicit: req.Implicit,
	}
	return cmd.Apply(s, ctx)
}

// applyBaseEdit applies a removed/added edit script to current,
// preserving current's relative order and appending added entries at
// the end (the edit is always expressed against an already-correctly-
// ordered target by the caller that computed it; this is only the
// generic fallback for explicit AST edits with no precomputed order).
func applyBaseEdit(current, removed, added []objname.Name) []objname.Name {
	removedSet := make(map[objname.Name]bool, len(removed))
	for _, r := range removed {
		removedSet[r] = true
	}
	out := make([]objname.Name, 0, len(current)+len(added))
	for _, b := range current {
		if !removedSet[b] {
			out = append(out, b)
		}
	}
	out = append(out, added...)
	return out
}
