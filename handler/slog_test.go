package handler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/chronolabs/chronolog/core"
)

func TestSlogHandler_Basic(t *testing.T) {
	var buf bytes.Buffer
	ch := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	log := slog.New(NewSlogHandler(ch, core.InfoLevel))

	log.Info("request handled", "status", 200)

	output := buf.String()
	if !strings.Contains(output, "request handled") {
		t.Errorf("Expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "status=200") {
		t.Errorf("Expected 'status=200' in output, got: %s", output)
	}
}

func TestSlogHandler_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	ch := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	log := slog.New(NewSlogHandler(ch, core.InfoLevel))

	log.Debug("hidden")
	if buf.Len() > 0 {
		t.Errorf("Debug record passed an Info gate: %s", buf.String())
	}

	log.Warn("visible")
	if !strings.Contains(buf.String(), " - WARNING - ") {
		t.Errorf("Expected WARNING level, got: %s", buf.String())
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	ch := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	log := slog.New(NewSlogHandler(ch, core.DebugLevel))

	log = log.With("app", "test").WithGroup("req")
	log.Info("done", "id", 7)

	output := buf.String()
	if !strings.Contains(output, "app=test") {
		t.Errorf("Expected 'app=test' in output, got: %s", output)
	}
	if !strings.Contains(output, "req.id=7") {
		t.Errorf("Expected grouped 'req.id=7' in output, got: %s", output)
	}
}
