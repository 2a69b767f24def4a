package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestIDFrom(ctx); got != "req-42" {
		t.Errorf("expected req-42, got %q", got)
	}
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"garbage": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_DoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
	l.Infof(WithRequestID(context.Background(), "abc"), "hello %s", "world")

	j := Init(ZapConfig{Level: "info", Mode: "production", Encoding: "json"})
	j.Info(context.Background(), "json entry")
}
