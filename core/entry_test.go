package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{Level(100), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevel_ZeroValueIsInfo(t *testing.T) {
	var l Level
	if l != InfoLevel {
		t.Errorf("zero Level = %v, want InfoLevel", l)
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(DebugLevel < InfoLevel && InfoLevel < WarningLevel &&
		WarningLevel < ErrorLevel && ErrorLevel < CriticalLevel) {
		t.Error("levels are not strictly ordered by severity")
	}
}

func TestEntryPool_Reset(t *testing.T) {
	e := GetEntry()
	e.Level = ErrorLevel
	e.Message = "something"
	e.Fields = append(e.Fields, String("key", "value"))
	PutEntry(e)

	e2 := GetEntry()
	if e2.Message != "" {
		t.Errorf("recycled entry has message %q, want empty", e2.Message)
	}
	if len(e2.Fields) != 0 {
		t.Errorf("recycled entry has %d fields, want 0", len(e2.Fields))
	}
	if e2.Level != InfoLevel {
		t.Errorf("recycled entry has level %v, want InfoLevel", e2.Level)
	}
	if e2.Time.IsZero() {
		t.Error("recycled entry has zero time")
	}
	PutEntry(e2)
}

func TestPutEntry_Nil(t *testing.T) {
	PutEntry(nil) // must not panic
}
