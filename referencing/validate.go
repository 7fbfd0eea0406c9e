package referencing

import (
	"strings"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// ValidateOverload enforces overload discipline on an owned create or
// re-own: in declarative mode, an owned ref with implicit bases under
// a RequiresExplicitOverloaded RefDict must be declared `overloaded`;
// conversely a ref with no implicit bases must not be.
func (e *Engine) ValidateOverload(s *store.Schema, ctx *command.CommandContext, ref *schemaobj.Object, refdict schemaobj.RefDict, defaultBase objname.Name) error {
	top := ctx.Top()
	if top == nil || !top.Flags.Declarative || !ref.IsOwned() {
		return nil
	}

	var implicit []*schemaobj.Object
	for _, b := range ref.Bases() {
		base, ok := s.Get(b)
		if !ok {
			continue
		}
		if !base.Generic(defaultBase) {
			implicit = append(implicit, base)
		}
	}

	switch {
	case len(implicit) > 0 && refdict.RequiresExplicitOverloaded && !ref.DeclaredOverloaded():
		ancestry := make([]string, 0, len(implicit))
		for _, obj := range implicit {
			if !obj.Referrer().IsZero() {
				ancestry = append(ancestry, obj.Referrer().String())
			}
		}
		return schemaerr.NewSchemaDefinitionErrorWithDetails(
			GetVerbosename(s, ref, true)+" must be declared using the `overloaded` keyword because it is defined in the following ancestor(s)",
			strings.Join(ancestry, ", "),
			ref.Span(),
		)
	case len(implicit) == 0 && ref.DeclaredOverloaded():
		return schemaerr.NewSchemaDefinitionError(
			GetVerbosename(s, ref, true)+": cannot be declared `overloaded` as there are no ancestors defining it",
			ref.Span(),
		)
	}
	return nil
}
