package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/chronolabs/chronolog/core"
	"github.com/chronolabs/chronolog/handler"
)

// PrefixedLogger attaches a mutable bracketed prefix to every record it
// emits and carries the beacon registry for start/end timing.
//
// The prefix and the beacon map are guarded by one mutex, so a single
// instance can be shared across goroutines. Record emission itself is
// serialized by the handlers.
type PrefixedLogger struct {
	name    string
	handler handler.Handler
	level   core.Level

	mu     sync.Mutex
	prefix string
	starts map[string]time.Time

	// timeNow is a variable to allow overriding the clock in tests
	timeNow func() time.Time
}

// NewPrefixedLogger creates a logger that writes through the given
// handler. Most callers should go through a Registry instead so that
// instances are cached by name.
func NewPrefixedLogger(name, prefix string, h handler.Handler, level core.Level) *PrefixedLogger {
	return &PrefixedLogger{
		name:    name,
		handler: h,
		level:   level,
		prefix:  prefix,
		starts:  make(map[string]time.Time),
		timeNow: time.Now,
	}
}

// Name returns the identifier the logger was created under
func (l *PrefixedLogger) Name() string {
	return l.name
}

// Prefix returns the current prefix
func (l *PrefixedLogger) Prefix() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prefix
}

// UpdatePrefix replaces the prefix unconditionally. It takes effect for
// every subsequent log call on this instance; records already emitted
// keep the prefix they were formatted with. Any string is accepted,
// including the empty string, which renders as "[]".
func (l *PrefixedLogger) UpdatePrefix(prefix string) {
	l.mu.Lock()
	l.prefix = prefix
	l.mu.Unlock()
}

// log emits a record at the given level with the current prefix
func (l *PrefixedLogger) log(level core.Level, msg string) {
	if level < l.level || l.handler == nil {
		return
	}

	l.mu.Lock()
	prefix := l.prefix
	l.mu.Unlock()

	entry := core.GetEntry()
	entry.Time = l.timeNow()
	entry.Level = level
	entry.Message = "[" + prefix + "] " + msg

	if err := l.handler.Handle(entry); err != nil {
		return
	}
	core.PutEntry(entry)
}

// Debug logs a debug message with prefix
func (l *PrefixedLogger) Debug(msg string) {
	l.log(core.DebugLevel, msg)
}

// Info logs an info message with prefix
func (l *PrefixedLogger) Info(msg string) {
	l.log(core.InfoLevel, msg)
}

// Warning logs a warning message with prefix
func (l *PrefixedLogger) Warning(msg string) {
	l.log(core.WarningLevel, msg)
}

// Error logs an error message with prefix
func (l *PrefixedLogger) Error(msg string) {
	l.log(core.ErrorLevel, msg)
}

// Critical logs a critical message with prefix
func (l *PrefixedLogger) Critical(msg string) {
	l.log(core.CriticalLevel, msg)
}

// Debugf logs a formatted debug message with prefix
func (l *PrefixedLogger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message with prefix
func (l *PrefixedLogger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warningf logs a formatted warning message with prefix
func (l *PrefixedLogger) Warningf(format string, args ...interface{}) {
	if core.WarningLevel < l.level {
		return
	}
	l.log(core.WarningLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message with prefix
func (l *PrefixedLogger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Criticalf logs a formatted critical message with prefix
func (l *PrefixedLogger) Criticalf(format string, args ...interface{}) {
	if core.CriticalLevel < l.level {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...))
}

// Exception logs an error message with prefix, appending the error and
// its stack trace. A stack is captured here when err does not already
// carry one, so the rendered trace points at the call site.
func (l *PrefixedLogger) Exception(msg string, err error) {
	if err == nil {
		l.log(core.ErrorLevel, msg)
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf("%s: %+v", msg, ensureStack(err)))
}

// stackTracer is the interface pkg/errors attaches to stack-carrying errors
type stackTracer interface {
	StackTrace() errors.StackTrace
}

func ensureStack(err error) error {
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return errors.WithStack(err)
}

// Close closes the logger's handler
func (l *PrefixedLogger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
