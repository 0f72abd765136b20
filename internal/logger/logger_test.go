package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "info", Output: &buf})

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Errorf("debug line written at info level: %q", out)
	}
	for _, want := range []string{"info message", "warn message", "error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "debug", Format: "json", Output: &buf})
	log.Debug(context.Background(), "listed %d images", 3)

	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"listed 3 images"`) {
		t.Errorf("unexpected json output: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		write       func(l Logger, ctx context.Context)
		written     bool
	}{
		{"debug logs at debug level", "debug", func(l Logger, ctx context.Context) { l.Debug(ctx, "line") }, true},
		{"info logs at debug level", "debug", func(l Logger, ctx context.Context) { l.Info(ctx, "line") }, true},
		{"debug doesn't log at info level", "info", func(l Logger, ctx context.Context) { l.Debug(ctx, "line") }, false},
		{"info logs at info level", "info", func(l Logger, ctx context.Context) { l.Info(ctx, "line") }, true},
		{"warn doesn't log at error level", "error", func(l Logger, ctx context.Context) { l.Warn(ctx, "line") }, false},
		{"error always logs", "error", func(l Logger, ctx context.Context) { l.Error(ctx, "line") }, true},
		{"level is case-insensitive", "WARN", func(l Logger, ctx context.Context) { l.Info(ctx, "line") }, false},
		{"unknown config level defaults to info", "verbose", func(l Logger, ctx context.Context) { l.Debug(ctx, "line") }, false},
		{"empty config level defaults to info", "", func(l Logger, ctx context.Context) { l.Info(ctx, "line") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewWithOptions(Options{Level: tt.configLevel, Output: &buf}), context.Background())
			if got := buf.Len() > 0; got != tt.written {
				t.Errorf("written = %v, want %v (output %q)", got, tt.written, buf.String())
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q", got)
	}
}
