package handler

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chronolabs/chronolog/core"
)

func TestZapHandler_Forward(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(zap.New(obsCore))

	entry := newEntry(core.InfoLevel, "[svc] through zap")
	entry.Fields = []core.Field{core.Int64("attempt", 3)}

	if err := h.Handle(entry); err != nil {
		t.Fatal(err)
	}

	all := logs.All()
	if len(all) != 1 {
		t.Fatalf("Expected 1 observed record, got %d", len(all))
	}
	got := all[0]
	if got.Message != "[svc] through zap" {
		t.Errorf("message = %q, want %q", got.Message, "[svc] through zap")
	}
	if got.Level != zapcore.InfoLevel {
		t.Errorf("level = %v, want InfoLevel", got.Level)
	}
	if !got.Time.Equal(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("entry time not preserved: %v", got.Time)
	}
	fields := got.ContextMap()
	if fields["attempt"] != int64(3) {
		t.Errorf("attempt field = %v, want 3", fields["attempt"])
	}
}

func TestZapHandler_LevelMapping(t *testing.T) {
	tests := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarningLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.CriticalLevel, zapcore.ErrorLevel}, // zap has no critical
	}

	for _, tt := range tests {
		if got := levelToZap(tt.level); got != tt.want {
			t.Errorf("levelToZap(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestZapHandler_FilteredByZapLevel(t *testing.T) {
	obsCore, logs := observer.New(zapcore.ErrorLevel)
	h := NewZapHandler(zap.New(obsCore))

	if err := h.Handle(newEntry(core.InfoLevel, "[svc] filtered")); err != nil {
		t.Fatal(err)
	}

	if logs.Len() != 0 {
		t.Errorf("Expected zap core to filter the record, got %d records", logs.Len())
	}
}
