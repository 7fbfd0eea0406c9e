package ddl

import (
	"log/slog"

	"github.com/simon-lentz/refschema/location"
)

// Option configures Load and Compile.
type Option func(*config)

type config struct {
	logger *slog.Logger
	source location.SourceID
}

func defaultConfig() *config {
	return &config{
		logger: slog.New(slog.DiscardHandler),
		source: location.NewSourceID("inline:ddl"),
	}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithLogger provides a structured logger for Load/Compile tracing. If
// not provided, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithSourceID identifies the DDL document a compiled AST tree came
// from, so every ref created from it carries a span pointing back to
// it. If not provided, Compile uses a generic "inline:ddl" source.
func WithSourceID(sid location.SourceID) Option {
	return func(c *config) { c.source = sid }
}
