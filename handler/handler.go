package handler

import (
	"github.com/chronolabs/chronolog/core"
)

// Handler defines the interface for log sinks
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}
