package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  stream  ", Value: "  Engineering  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "stream" || fields[0].String != "Engineering" {
		t.Fatalf("unexpected stream field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestSelectionFields(t *testing.T) {
	fields := SelectionFields(" Engineering ", "CSE", "")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldStream || fields[0].String != "Engineering" {
		t.Fatalf("unexpected stream field: %+v", fields[0])
	}

	if fields[1].Key != FieldDepartment || fields[1].String != "CSE" {
		t.Fatalf("unexpected department field: %+v", fields[1])
	}
}

func TestWithSelection(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithSelection(zap.New(core), "Medical", "MBBS", "Junior Doctor").Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	for key, want := range map[string]string{FieldStream: "Medical", FieldDepartment: "MBBS", FieldRole: "Junior Doctor"} {
		if ctx[key] != want {
			t.Fatalf("expected %s to be %q, got %q", key, want, ctx[key])
		}
	}

	WithSelection(nil, "a", "b", "c").Info("another log")
}
