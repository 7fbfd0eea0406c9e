package referencing

import (
	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/schemaerr"
	"github.com/simon-lentz/refschema/schemaobj"
)

// GetReferrerContext returns the innermost frame of the given
// referrer-command class, or false if none is on the stack.
func GetReferrerContext(ctx *command.CommandContext, kind schemaobj.ClassKind) (*command.Frame, bool) {
	return ctx.Get(kind)
}

// GetReferrerContextOrDie is GetReferrerContext, returning an
// InvariantViolation instead of ok=false when the frame is missing.
func GetReferrerContextOrDie(ctx *command.CommandContext, kind schemaobj.ClassKind) (*command.Frame, error) {
	frame, ok := ctx.Get(kind)
	if !ok {
		return nil, schemaerr.NewInvariantViolation(
			"no enclosing " + string(kind) + " command context on the stack")
	}
	return frame, nil
}
