package referencing

import (
	"log/slog"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// DeriveRefRequest is the input to [Engine.DeriveRef].
type DeriveRefRequest struct {
	Name     objname.Name
	Referrer objname.Name
	Quals    []string

	// ExplicitName overrides the computed derived name; the zero Name
	// means "compute from Name/Referrer/Quals".
	ExplicitName objname.Name

	Fields map[string]any

	InheritanceMerge    bool
	MarkDerived         bool
	TransientDerivation bool
	PreservePathID      bool
}

// DeriveRef constructs a derived copy of a ref under a new referrer,
// reconciling with any existing ref at that name instead of blindly
// recreating it.
func (e *Engine) DeriveRef(s *store.Schema, req DeriveRefRequest) (result *store.Schema, derived *schemaobj.Object, err error) {
	op := e.trace("referencing.DeriveRef", slog.String("name", req.Name.String()), slog.String("referrer", req.Referrer.String()))
	defer func() { op.End(err) }()

	ref, ok := s.Get(req.Name)
	if !ok {
		return nil, nil, schemaerr.NewInvariantViolation("derive of unknown object " + req.Name.String())
	}

	derivedName := req.ExplicitName
	if derivedName.IsZero() {
		derivedName = ClassnameFromName(req.Name, req.Referrer, req.Quals...)
	}
	if derivedName == req.Name {
		return nil, nil, schemaerr.NewSchemaError(
			"cannot derive " + GetVerbosename(s, ref, false) + ": derived name equals its own name")
	}

	referrerKind, refdict, hasReferrer := e.Registry.ReferrerKindOf(ref.Kind())

	ctx := command.NewCommandContext(
		command.InheritanceMerge(req.InheritanceMerge),
		command.MarkDerived(req.MarkDerived),
		command.TransientDerivation(req.TransientDerivation),
		command.PreservePathID(req.PreservePathID),
	)

	root, innermost := e.BuildCommandStack(s, ref, req.Referrer)

	var inner command.Command
	if existing, exists := s.Get(derivedName); exists {
		target := []objname.Name{req.Name}
		removed, added := deltaBases(existing.Bases(), target)
		inner = &command.AlterObject{
			Name: derivedName,
			Subcommands: []command.Command{
				&command.RebaseInheritingObject{
					Name: derivedName, Bases: target,
					AddedBases: added, RemovedBases: removed,
				},
			},
		}
	} else {
		create := &command.CreateObject{
			Kind:    ref.Kind(),
			Name:    derivedName,
			Span:    ref.Span(),
			Doc:     ref.Doc(),
			Owned:   true,
			Bases:   []objname.Name{req.Name},
			Derived: true,
			Fields:  req.Fields,
		}
		if hasReferrer {
			create.Referrer = req.Referrer
			create.ReferrerKind = referrerKind
			create.RefDictAttr = refdict.Attr
			create.Refname = RefnameFor(derivedName)
		}
		inner = create
	}

	if innermost != nil {
		innermost.Subcommands = append(innermost.Subcommands, inner)
	} else {
		root.Subcommands = append(root.Subcommands, inner)
	}

	next, err := root.ApplyWithContext(s, ctx)
	if err != nil {
		return nil, nil, err
	}
	derived, _ = next.Get(derivedName)
	return next, derived, nil
}
