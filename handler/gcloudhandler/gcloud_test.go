package gcloudhandler

import (
	"context"
	"testing"

	"cloud.google.com/go/logging"

	"github.com/chronolabs/chronolog/core"
)

func TestSeverityMapping(t *testing.T) {
	tests := []struct {
		level core.Level
		want  logging.Severity
	}{
		{core.DebugLevel, logging.Debug},
		{core.InfoLevel, logging.Info},
		{core.WarningLevel, logging.Warning},
		{core.ErrorLevel, logging.Error},
		{core.CriticalLevel, logging.Critical},
		{core.Level(100), logging.Default},
	}

	for _, tt := range tests {
		if got := severity(tt.level); got != tt.want {
			t.Errorf("severity(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNew_RequiresProject(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	if _, err := New(context.Background(), Config{}); err == nil {
		t.Error("Expected error when no project id is configured")
	}
}
