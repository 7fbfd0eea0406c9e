package referencing

import (
	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// BuildCommandStack builds the chain of AlterObject commands wrapping
// ref in every enclosing referrer, outermost first, so that ref's own
// command executes with its full referrer context on the stack.
// referrer overrides ref.Referrer() when given (the zero Name means
// "use ref.Referrer()").
//
// It returns the root of the tree and the innermost AlterObject a
// caller should attach ref's own command to. If ref has no referrer at
// all, the innermost return value is nil and the caller must attach its
// command directly to root.Subcommands.
func (e *Engine) BuildCommandStack(s *store.Schema, ref *schemaobj.Object, referrer objname.Name) (*command.DeltaRoot, *command.AlterObject) {
	if referrer.IsZero() {
		referrer = ref.Referrer()
	}

	chain := outermostFirstChain(s, referrer)

	root := &command.DeltaRoot{}
	var innermost *command.AlterObject
	for _, name := range chain {
		alter := &command.AlterObject{Name: name, IfExists: true}
		if innermost == nil {
			root.Subcommands = append(root.Subcommands, alter)
		} else {
			innermost.Subcommands = append(innermost.Subcommands, alter)
		}
		innermost = alter
	}
	return root, innermost
}

// outermostFirstChain walks referrer, referrer.referrer, ... while each
// is itself a referenced object, returning the chain outermost-first.
// The recursion unwinds in outermost-first order by construction, with
// no separate reverse pass.
func outermostFirstChain(s *store.Schema, referrer objname.Name) []objname.Name {
	if referrer.IsZero() {
		return nil
	}
	obj, ok := s.Get(referrer)
	if !ok || !obj.IsReferenced() {
		return []objname.Name{referrer}
	}
	return append(outermostFirstChain(s, obj.Referrer()), referrer)
}
