// Package trace provides operation-boundary logging for the engine's
// entry points: one Debug record when an operation starts and one when
// it ends, with elapsed time and the error outcome.
//
// The surface is deliberately narrow. Engine operations are synchronous
// library calls with a handful of string/bool attributes (operation
// name, object kind, classname), so there is no context threading, no
// request-ID extraction, and no level-mixing helpers here — a nil *Op
// is the entire disabled path, costing one pointer check per call.
package trace

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Op is a running operation. Create via [Begin]; it is safe to call
// End on a nil *Op, which is what Begin returns whenever logging is
// disabled.
type Op struct {
	logger    *slog.Logger
	name      string
	startTime time.Time
	ended     atomic.Bool
}

// Begin logs the start of a named operation at Debug level and returns
// an Op to close over its outcome. Returns nil — meaning "do nothing
// on End" — when logger is nil or Debug is not enabled, so disabled
// tracing allocates nothing.
//
// Operation names follow "<package>.<operation>", e.g.
// "referencing.CreateRef".
func Begin(logger *slog.Logger, name string, attrs ...slog.Attr) *Op {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}

	op := &Op{
		logger:    logger,
		name:      name,
		startTime: time.Now(),
	}

	logAttrs := make([]slog.Attr, 0, len(attrs)+1)
	logAttrs = append(logAttrs, slog.String("op", name))
	logAttrs = append(logAttrs, attrs...)
	logger.LogAttrs(context.Background(), slog.LevelDebug, "operation started", logAttrs...)

	return op
}

// End logs the operation's completion with its elapsed time and, when
// err is non-nil, the error. Safe to call on a nil *Op and safe to
// call more than once; only the first call logs, so an explicit End
// followed by a deferred one does not double-report.
func (o *Op) End(err error, attrs ...slog.Attr) {
	if o == nil || o.ended.Swap(true) {
		return
	}

	elapsed := time.Since(o.startTime)
	logAttrs := make([]slog.Attr, 0, len(attrs)+3)
	logAttrs = append(logAttrs,
		slog.String("op", o.name),
		slog.Duration("duration", elapsed),
	)
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	logAttrs = append(logAttrs, attrs...)

	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "operation ended", logAttrs...)
}
