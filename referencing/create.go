package referencing

import (
	"log/slog"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// CreateRefRequest is the AST-ingestion input to [Engine.CreateRef]: the
// fields a DDL `CREATE` node for a referenced object carries.
type CreateRefRequest struct {
	Kind      schemaobj.ClassKind
	ShortName string
	Quals     []string
	Span      location.Span

	Doc      string
	Abstract bool
	Final    bool

	// ExplicitBases are the generic bases written directly in the AST
	// (e.g. an explicit `extending` clause on the ref itself), excluding
	// the class's default base.
	ExplicitBases []objname.Name

	DeclaredOverloaded bool
	Fields             map[string]any
}

// CreateRef creates a ref inside whichever referrer context is on top
// of ctx (or at the top level, if req.Kind declares no referrer at
// all), computes its implicit bases, validates overload discipline, and,
// when the ref is not final, the context is not canonical and
// EnableRecursion is set, propagates the creation to every descendant
// of an inheriting referrer.
func (e *Engine) CreateRef(s *store.Schema, ctx *command.CommandContext, req CreateRefRequest) (result *store.Schema, err error) {
	op := e.trace("referencing.CreateRef", slog.String("kind", string(req.Kind)), slog.String("shortname", req.ShortName))
	defer func() { op.End(err) }()

	fqName := e.ClassnameFromAST(ctx, req.Kind, req.ShortName, req.Quals...)
	referrerKind, refdict, hasReferrer := e.Registry.ReferrerKindOf(req.Kind)

	var referrerObj *schemaobj.Object
	if hasReferrer {
		if frame, ok := ctx.Get(referrerKind); ok {
			referrerObj, _ = s.Get(frame.Object)
		}
	}

	top := ctx.Top()
	canonical := top != nil && top.Flags.Canonical

	bases := append([]objname.Name(nil), req.ExplicitBases...)
	var referrerDescriptor schemaobj.ClassDescriptor
	if referrerObj != nil {
		referrerDescriptor, _ = e.Registry.Descriptor(referrerObj.Kind())
		if !canonical && referrerDescriptor.IsInheriting {
			implicit := e.ImplicitBases(s, referrerObj, refdict, fqName)
			if len(implicit) > 0 {
				bases = append(append([]objname.Name(nil), implicit...), subtractNames(req.ExplicitBases, implicit)...)
			}
		}
	}

	create := &command.CreateObject{
		Kind:               req.Kind,
		Name:               fqName,
		Span:               req.Span,
		Doc:                req.Doc,
		Abstract:           req.Abstract,
		Final:              req.Final,
		Owned:              true,
		DeclaredOverloaded: req.DeclaredOverloaded,
		Bases:              bases,
		Fields:             req.Fields,
	}
	if referrerObj != nil {
		create.Referrer = referrerObj.Name()
		create.ReferrerKind = referrerObj.Kind()
		create.RefDictAttr = refdict.Attr
		create.Refname = RefnameFor(fqName)
	}

	next, err := create.Apply(s, ctx)
	if err != nil {
		return nil, err
	}

	ref, ok := next.Get(fqName)
	if !ok {
		return nil, schemaerr.NewInvariantViolation("created object " + fqName.String() + " missing from schema")
	}

	if referrerObj != nil {
		defaultBase, _ := e.Registry.DefaultBaseName(req.Kind)
		if verr := e.ValidateOverload(next, ctx, ref, refdict, defaultBase); verr != nil {
			return nil, verr
		}
	}

	if referrerObj != nil && !ref.IsFinal() && referrerDescriptor.IsInheriting &&
		!canonical && top != nil && top.Flags.EnableRecursion {
		next, err = e.propagateRefCreation(next, ctx, referrerObj, refdict, ref)
		if err != nil {
			return nil, err
		}
	}

	return next, nil
}

// propagateRefCreation pushes a newly created ref down to every child
// of referrer: for each child, synthesize an if_exists/if_not_exists
// commutation pair — a conditional rebase wrapped in
// AlterObject{IfExists:true}, evaluated before a conditional
// CreateObject{IfNotExists:true} — and apply both unconditionally.
// Exactly one of the two ever does anything: if the child already
// carries a same-named ref (e.g. because a sibling parent's propagation
// reached it first in this same delta, as happens under diamond
// inheritance), the rebase re-roots it onto the new parent ref;
// otherwise the rebase no-ops and the create installs an unowned ref
// with bases=[ref]. It then recurses into each child's own descendants
// so a multi-level inheritance tree is propagated transitively in one
// pass. The rebase must run before the conditional create: swapping
// them would let the create win on a child a sibling already populated.
func (e *Engine) propagateRefCreation(s *store.Schema, ctx *command.CommandContext, referrer *schemaobj.Object, refdict schemaobj.RefDict, ref *schemaobj.Object) (*store.Schema, error) {
	next := s
	for _, child := range s.Children(referrer.Name()) {
		if !allowRefPropagation(child) {
			continue
		}

		childFQ := ClassnameFromName(ref.Name(), child.Name(), objname.QualsFromFullName(ref.Name())...)
		refname := RefnameFor(childFQ)

		var rebaseBases, removed, added []objname.Name
		if existing, exists := next.Get(childFQ); exists {
			defaultBase, _ := e.Registry.DefaultBaseName(existing.Kind())
			implicit := e.ImplicitBases(next, child, refdict, childFQ)
			rebaseBases = append(append([]objname.Name(nil), implicit...), explicitBases(existing, defaultBase)...)
			removed, added = deltaBases(existing.Bases(), rebaseBases)
		}

		alterRebase := &command.AlterObject{
			Name:     childFQ,
			IfExists: true,
			Subcommands: []command.Command{
				&command.RebaseInheritingObject{
					Name: childFQ, Bases: rebaseBases,
					AddedBases: added, RemovedBases: removed, Implicit: true,
				},
			},
		}
		create := &command.CreateObject{
			Kind: ref.Kind(), Name: childFQ, Span: ref.Span(),
			Owned: false, Derived: child.IsDerived(),
			Bases:        []objname.Name{ref.Name()},
			Fields:       ref.Fields(),
			Referrer:     child.Name(),
			ReferrerKind: child.Kind(),
			RefDictAttr:  refdict.Attr,
			Refname:      refname,
			IfNotExists:  true,
		}

		var err error
		next, err = alterRebase.Apply(next, ctx)
		if err != nil {
			return nil, err
		}
		next, err = create.Apply(next, ctx)
		if err != nil {
			return nil, err
		}

		childRef, ok := next.Get(childFQ)
		if !ok {
			continue
		}
		next, err = e.propagateRefCreation(next, ctx, child, refdict, childRef)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// allowRefPropagation reports whether child permits ref propagation
// from its parent referrer. Every child permits it unless it carries a
// "disallowRefPropagation" field set to true.
func allowRefPropagation(child *schemaobj.Object) bool {
	v, ok := child.Field("disallowRefPropagation")
	return !(ok && v == true)
}

func subtractNames(names, remove []objname.Name) []objname.Name {
	removeSet := make(map[objname.Name]bool, len(remove))
	for _, r := range remove {
		removeSet[r] = true
	}
	var out []objname.Name
	for _, n := range names {
		if !removeSet[n] {
			out = append(out, n)
		}
	}
	return out
}
