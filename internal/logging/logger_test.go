package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"subfix/internal/logging"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "resolver")
	logger.Info("resolved target", logging.Args(
		logging.String(logging.FieldTarget, "/out/movie.srt"),
		logging.Int("attempt", 2),
	)...)

	line := buf.String()
	if !strings.Contains(line, " INFO resolver: resolved target") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "target=/out/movie.srt") || !strings.Contains(line, "attempt=2") {
		t.Fatalf("missing attrs: %q", line)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("problem", logging.Args(logging.String("reason", "already exists"))...)
	if !strings.Contains(buf.String(), `reason="already exists"`) {
		t.Fatalf("expected quoted value: %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("detected encoding", logging.Args(logging.Float64("confidence", 0.91))...)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if payload["msg"] != "detected encoding" {
		t.Fatalf("msg = %v", payload["msg"])
	}
	if payload["level"] != "debug" {
		t.Fatalf("level = %v", payload["level"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
