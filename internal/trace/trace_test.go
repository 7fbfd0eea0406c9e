package trace

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestBeginEndLogsBothBoundaries(t *testing.T) {
	var buf bytes.Buffer
	op := Begin(debugLogger(&buf), "referencing.CreateRef", slog.String("kind", "Pointer"))
	if op == nil {
		t.Fatal("Begin must return a live Op when Debug is enabled")
	}
	op.End(nil)

	out := buf.String()
	if !strings.Contains(out, "operation started") {
		t.Errorf("missing start record: %q", out)
	}
	if !strings.Contains(out, "operation ended") {
		t.Errorf("missing end record: %q", out)
	}
	if !strings.Contains(out, "op=referencing.CreateRef") {
		t.Errorf("missing op attr: %q", out)
	}
	if !strings.Contains(out, "kind=Pointer") {
		t.Errorf("missing caller attr: %q", out)
	}
	if !strings.Contains(out, "duration=") {
		t.Errorf("missing duration attr: %q", out)
	}
}

func TestEndRecordsError(t *testing.T) {
	var buf bytes.Buffer
	op := Begin(debugLogger(&buf), "referencing.DeleteRef")
	op.End(errors.New("cannot drop inherited"))

	if !strings.Contains(buf.String(), "error=") {
		t.Errorf("end record must carry the error: %q", buf.String())
	}
}

func TestBeginDisabledReturnsNil(t *testing.T) {
	if Begin(nil, "referencing.CreateRef") != nil {
		t.Error("nil logger must disable tracing")
	}

	var buf bytes.Buffer
	info := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if Begin(info, "referencing.CreateRef") != nil {
		t.Error("a logger below Debug must disable tracing")
	}
	if buf.Len() != 0 {
		t.Errorf("disabled tracing must log nothing, got %q", buf.String())
	}
}

func TestEndSafeOnNilAndIdempotent(t *testing.T) {
	var op *Op
	op.End(nil) // must not panic

	var buf bytes.Buffer
	live := Begin(debugLogger(&buf), "referencing.RenameRef")
	live.End(nil)
	live.End(nil)

	if got := strings.Count(buf.String(), "operation ended"); got != 1 {
		t.Errorf("End must log exactly once, got %d records", got)
	}
}
