package handler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chronolabs/chronolog/core"
)

// ZapHandler forwards log entries to a zap.Logger, letting chronolog
// fan records into an existing zap pipeline alongside its own sinks.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler that writes through the given zap.Logger.
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// Handle converts the entry and writes it through the zap core
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(levelToZap(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time
	ce.Write(fieldsToZap(entry.Fields)...)
	return nil
}

// Close flushes the underlying zap logger
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

// levelToZap converts a core.Level to a zapcore.Level.
// zap has no critical level; CRITICAL maps to error severity.
func levelToZap(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// fieldsToZap converts core fields to zap fields
func fieldsToZap(fields []core.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zfields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case core.StringType, core.ErrorType:
			zfields = append(zfields, zap.String(f.Key, f.Str))
		case core.Int64Type:
			zfields = append(zfields, zap.Int64(f.Key, f.Int64))
		case core.Float64Type:
			zfields = append(zfields, zap.Float64(f.Key, f.Float64))
		case core.BoolType:
			zfields = append(zfields, zap.Bool(f.Key, f.Int64 == 1))
		case core.DurationType:
			zfields = append(zfields, zap.Duration(f.Key, time.Duration(f.Int64)))
		default:
			zfields = append(zfields, zap.Any(f.Key, f.Any))
		}
	}
	return zfields
}
