package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInit_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "warn", "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Info("hidden message")
	Warn("visible message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info must be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "key=value") {
		t.Errorf("expected warning with key/value, got %q", out)
	}
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "info", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Info("analyzed", "label", "NOT_HATE")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "analyzed" || line["label"] != "NOT_HATE" {
		t.Errorf("unexpected fields: %v", line)
	}
}

func TestInit_Invalid(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "loud", "text"); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := Init(&buf, "info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestError_AndPrefix(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "error", "logfmt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Warn("hidden warning")
	Error("write failed", "path", "out.jsonl")
	WithPrefix("batch").Error("interrupted")

	out := buf.String()
	if strings.Contains(out, "hidden warning") {
		t.Errorf("warn must be filtered at error level, got %q", out)
	}
	if !strings.Contains(out, "msg=\"write failed\"") || !strings.Contains(out, "path=out.jsonl") {
		t.Errorf("expected error line, got %q", out)
	}
	if !strings.Contains(out, "prefix=batch") {
		t.Errorf("expected prefixed line, got %q", out)
	}
}
