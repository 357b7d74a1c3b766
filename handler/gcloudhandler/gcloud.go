package gcloudhandler

import (
	"context"
	"os"

	"cloud.google.com/go/logging"
	"github.com/pkg/errors"

	"github.com/chronolabs/chronolog/core"
	"github.com/chronolabs/chronolog/handler"
)

// Config holds configuration for the Cloud Logging handler
type Config struct {
	// ProjectID is the Google Cloud project to log to
	// (default: $GOOGLE_CLOUD_PROJECT)
	ProjectID string
	// LogName is the Cloud Logging log name (default: "chronolog")
	LogName string
}

// GcloudHandler sends log entries to Google Cloud Logging.
// The client batches and flushes on its own schedule; Handle only
// stages the entry and never blocks on the network.
type GcloudHandler struct {
	client *logging.Client
	logger *logging.Logger
}

// New creates a Cloud Logging handler. The client is created once here;
// credential or project problems surface from this call, not from the
// first log record.
func New(ctx context.Context, cfg Config) (*GcloudHandler, error) {
	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if projectID == "" {
		return nil, errors.New("no project id: set Config.ProjectID or GOOGLE_CLOUD_PROJECT")
	}

	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "creating cloud logging client")
	}

	logName := cfg.LogName
	if logName == "" {
		logName = "chronolog"
	}

	return &GcloudHandler{
		client: client,
		logger: client.Logger(logName),
	}, nil
}

// Factory adapts New to the shape the logger registry expects for its
// cloud sink hook. Wiring it in is the composition root's explicit
// decision to link the cloud client library:
//
//	reg := logger.NewRegistry(logger.Config{
//	    CloudFactory: gcloudhandler.Factory,
//	})
func Factory(logName string) (handler.Handler, error) {
	return New(context.Background(), Config{LogName: logName})
}

// Handle stages an entry with the Cloud Logging client
func (h *GcloudHandler) Handle(entry *core.Entry) error {
	payload := map[string]interface{}{
		"message": entry.Message,
	}
	for _, f := range entry.Fields {
		payload[f.Key] = f.StringValue()
	}

	h.logger.Log(logging.Entry{
		Timestamp: entry.Time,
		Severity:  severity(entry.Level),
		Payload:   payload,
	})
	return nil
}

// Close flushes buffered entries and closes the client
func (h *GcloudHandler) Close() error {
	if err := h.logger.Flush(); err != nil {
		h.client.Close()
		return errors.Wrap(err, "flushing cloud logger")
	}
	return h.client.Close()
}

// severity converts a core.Level to a Cloud Logging severity
func severity(level core.Level) logging.Severity {
	switch level {
	case core.DebugLevel:
		return logging.Debug
	case core.InfoLevel:
		return logging.Info
	case core.WarningLevel:
		return logging.Warning
	case core.ErrorLevel:
		return logging.Error
	case core.CriticalLevel:
		return logging.Critical
	default:
		return logging.Default
	}
}
