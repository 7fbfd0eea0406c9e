package referencing

import (
	"log/slog"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/internal/trace"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// Engine is the referenced-schema-object command engine. It is
// stateless between calls; all mutable state lives in the
// *store.Schema and *command.CommandContext values passed to each
// method. One Engine is shared by every concurrent read of a schema
// snapshot: snapshots are immutable, so no locking is needed.
type Engine struct {
	Registry *schemaobj.ClassRegistry
	Logger   *slog.Logger
}

// New creates an Engine bound to a class registry. A nil logger
// disables tracing.
func New(registry *schemaobj.ClassRegistry, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{Registry: registry, Logger: logger}
}

func (e *Engine) trace(name string, attrs ...slog.Attr) *trace.Op {
	return trace.Begin(e.Logger, name, attrs...)
}

// Replay re-applies an already-fully-expanded command tree (e.g. one
// loaded back from a migration log) under a canonical context: implicit
// bases are not recomputed, validation is not re-run, and nothing is
// propagated, because the delta already contains all derived work.
func (e *Engine) Replay(s *store.Schema, root *command.DeltaRoot) (result *store.Schema, err error) {
	op := e.trace("referencing.Replay")
	defer func() { op.End(err) }()

	ctx := command.NewCommandContext(command.Canonical(true))
	return root.ApplyWithContext(s, ctx)
}
