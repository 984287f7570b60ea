package logger

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %s, got %s", in, want, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Fatalf("expected json")
	}
	if ParseFormat("whatever") != FormatText {
		t.Fatalf("expected text default")
	}
}

func TestZapLogger_WithAndFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"request_id": "abc"})

	l.Error("boom", map[string]any{"err": errors.New("bad"), "status": 500, " ": "skip"})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["request_id"] != "abc" {
		t.Fatalf("expected request_id field, got %#v", ctx)
	}
	if ctx["err"] != "bad" {
		t.Fatalf("expected err field, got %#v", ctx["err"])
	}
	if _, ok := ctx[" "]; ok {
		t.Fatalf("blank keys must be dropped")
	}
}

func TestFromContext_DefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected non-nil logger")
	}

	l := NewNop()
	ctx := WithContext(context.Background(), l)
	if FromContext(ctx) != l {
		t.Fatalf("expected stored logger")
	}
}
