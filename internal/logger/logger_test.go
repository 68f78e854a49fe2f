package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewDefaultsToJSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Environment: "production"})

	log.Info("server started", "port", "8000")

	out := buf.String()
	if !strings.Contains(out, `"msg":"server started"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"port":"8000"`) {
		t.Errorf("expected port attribute, got %q", out)
	}
}

func TestPrettyHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "pretty"})

	log.Warn("slow query", "duration_ms", 250)

	out := buf.String()
	if !strings.Contains(out, "WRN") {
		t.Errorf("expected level marker, got %q", out)
	}
	if !strings.Contains(out, "slow query") {
		t.Errorf("expected message, got %q", out)
	}
	if !strings.Contains(out, "duration_ms=250") {
		t.Errorf("expected attribute, got %q", out)
	}
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "pretty", Level: slog.LevelWarn})

	log.Info("should be dropped")
	log.Error("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info record should have been filtered")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("error record missing")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "pretty"})

	log.WithError(errTest).Error("operation failed")

	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("expected error attribute, got %q", buf.String())
	}
}

type testErr struct{}

func (testErr) Error() string { return "boom" }

var errTest = testErr{}
