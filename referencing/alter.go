package referencing

import (
	"log/slog"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/store"
)

// AlterRefRequest is the input to [Engine.AlterRef].
type AlterRefRequest struct {
	Name objname.Name

	SetDoc                *string
	SetAbstract           *bool
	SetFinal              *bool
	SetDeclaredOverloaded *bool
	Fields                map[string]any

	// ExplicitOwnership reports whether the AST carried its own
	// AlterOwned subcommand. When false and the ref has a referrer, the
	// alter implicitly re-owns it: mentioning the ref re-owns it.
	ExplicitOwnership bool
}

// AlterRef applies an in-place alter to ref, implicitly re-owning it
// unless the caller already handled ownership explicitly, and
// re-validates overload discipline if ownership flipped false->true.
func (e *Engine) AlterRef(s *store.Schema, ctx *command.CommandContext, req AlterRefRequest) (result *store.Schema, err error) {
	op := e.trace("referencing.AlterRef", slog.String("name", req.Name.String()))
	defer func() { op.End(err) }()

	ref, ok := s.Get(req.Name)
	if !ok {
		return nil, schemaerr.NewInvariantViolation("alter of unknown object " + req.Name.String())
	}
	wasOwned := ref.IsOwned()

	_, refdict, hasReferrer := e.Registry.ReferrerKindOf(ref.Kind())

	cmd := &command.AlterObject{
		Name:                  req.Name,
		SetDoc:                req.SetDoc,
		SetAbstract:           req.SetAbstract,
		SetFinal:              req.SetFinal,
		SetDeclaredOverloaded: req.SetDeclaredOverloaded,
		Fields:                req.Fields,
	}
	if hasReferrer && !req.ExplicitOwnership {
		owned := true
		cmd.SetOwned = &owned
	}

	next, err := cmd.Apply(s, ctx)
	if err != nil {
		return nil, err
	}

	updated, ok := next.Get(req.Name)
	if ok && !wasOwned && updated.IsOwned() && hasReferrer {
		defaultBase, _ := e.Registry.DefaultBaseName(ref.Kind())
		if verr := e.ValidateOverload(next, ctx, updated, refdict, defaultBase); verr != nil {
			return nil, verr
		}
	}

	return next, nil
}
