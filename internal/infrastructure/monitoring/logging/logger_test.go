package logging

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToZapFieldsTypedFastPaths(t *testing.T) {
	fields := toZapFields([]Field{
		String("tenant", "acme"),
		Int("level", 2),
		Int64("count", 42),
		Float64("ratio", 0.5),
		Bool("ok", true),
		Duration("elapsed", time.Second),
		Err(errors.New("boom")),
		Any("misc", struct{ X int }{1}),
	})
	if len(fields) != 8 {
		t.Fatalf("expected 8 zap fields, got %d", len(fields))
	}
}

func TestErrNil(t *testing.T) {
	f := Err(nil)
	if f.Key != "error" || f.Value != "<nil>" {
		t.Errorf("unexpected nil error field: %+v", f)
	}
}

func TestObservedLoggerEmitsFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	log := NewLoggerFromCore(core)

	log.Info("escalation committed", String("finding", "FND-001"), Int("level", 2))
	log.Debug("suppressed at info level")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "escalation committed" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	ctx := entries[0].ContextMap()
	if ctx["finding"] != "FND-001" {
		t.Errorf("expected finding field, got %v", ctx)
	}
}

func TestWithAttachesFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	log := NewLoggerFromCore(core).With(String("run_id", "r-1"))

	log.Warn("no recipients for escalation")

	if got := observed.All()[0].ContextMap()["run_id"]; got != "r-1" {
		t.Errorf("expected run_id from With, got %v", got)
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if parseLevel("nonsense") != zapcore.InfoLevel {
		t.Error("unknown level should default to info")
	}
	if parseLevel("debug") != zapcore.DebugLevel {
		t.Error("debug should parse")
	}
}

func TestDefaultLoggerSwap(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	nop := NewNopLogger()
	SetDefault(nop)
	if Default() != nop {
		t.Error("SetDefault should replace the process-wide logger")
	}
	SetDefault(nil) // ignored
	if Default() != nop {
		t.Error("SetDefault(nil) must be a no-op")
	}
}

//Personal.AI order the ending
