package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "WARN", "text")
	defer InitWithWriter(&buf, "INFO", "text")

	Info("should be suppressed")
	Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be suppressed") {
		t.Error("info message logged at WARN level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing at WARN level")
	}
}

func TestSetLevel_InvalidIgnored(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	SetLevel("VERBOSE")
	Info("still info")

	if !strings.Contains(buf.String(), "still info") {
		t.Error("invalid level changed logger behavior")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "json")
	defer InitWithWriter(&buf, "INFO", "text")

	Info("disc reported", "id", 42, "course", "Maple Hill")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "disc reported" {
		t.Errorf("msg = %v, want %q", record["msg"], "disc reported")
	}
	if record["course"] != "Maple Hill" {
		t.Errorf("course = %v, want %q", record["course"], "Maple Hill")
	}
}

func TestTextFormat_Attrs(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	Info("claim recorded", "id", 7)

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("expected level marker in %q", out)
	}
	if !strings.Contains(out, "id=7") {
		t.Errorf("expected id attr in %q", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	l := With("component", "store")
	l.Info("migration complete")

	if !strings.Contains(buf.String(), "component=store") {
		t.Errorf("expected bound attr in %q", buf.String())
	}
}
