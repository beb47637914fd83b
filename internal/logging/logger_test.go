package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"telemetry-monitor/internal/logging"
)

func TestLoggerWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New("info", logging.WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("frame dropped", "reason", "malformed_frame")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "frame dropped" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["reason"] != "malformed_frame" {
		t.Fatalf("unexpected reason: %v", record["reason"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New("error", logging.WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below error level, got %q", buf.String())
	}

	logger.Error("visible")
	if buf.Len() == 0 {
		t.Fatal("expected error output")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var logger *logging.Logger
	logger.Info("ignored")
	logger.WithComponent("x").Warn("ignored")

	if err := logger.Validate(); err == nil {
		t.Fatal("expected validation error for nil logger")
	}
}

func TestWithComponentTagsRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.MustNew("info", logging.WithWriter(&buf)).WithComponent("ingest")

	logger.Info("started")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["component"] != "ingest" {
		t.Fatalf("expected component tag, got %v", record)
	}
}

func TestAttachError(t *testing.T) {
	t.Parallel()

	fields := logging.AttachError(errors.New("boom"), "frame", 7)
	if len(fields) != 4 || fields[2] != "error" || fields[3] != "boom" {
		t.Fatalf("unexpected fields: %#v", fields)
	}

	same := logging.AttachError(nil, "frame", 7)
	if len(same) != 2 {
		t.Fatalf("expected fields unchanged for nil error, got %#v", same)
	}
}
