package handler

import (
	"io"
	"os"
	"sync"

	"github.com/chronolabs/chronolog/core"
	"github.com/chronolabs/chronolog/formatter"
)

// ConsoleHandler writes log entries synchronously to an io.Writer
// (default: stdout).
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	mu              sync.Mutex
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the handler skips write-level locking. Automatically
	// detected for io.Discard and *os.File; set true for other
	// goroutine-safe writers.
	ConcurrentWriter bool
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
	}

	// Cache WriterFormatter for the zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats and writes an entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.writerFormatter != nil {
		if h.concurrentSafe {
			return h.writerFormatter.FormatTo(entry, h.writer)
		}
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.concurrentSafe {
		_, writeErr := h.writer.Write(data)
		return writeErr
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()
	return writeErr
}

// Close closes the handler. The writer itself is owned by the caller
// and is not closed.
func (h *ConsoleHandler) Close() error {
	return nil
}
