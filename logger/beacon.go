package logger

import (
	"fmt"
	"time"
)

// LogStart records a START beacon for a timed operation.
//
// The start instant is recorded under key in the beacon registry. A
// second LogStart for a key whose start has not been consumed yet
// overwrites the first instant (last-write-wins); callers that time
// overlapping operations must choose distinct keys.
func (l *PrefixedLogger) LogStart(key, message string) {
	l.mu.Lock()
	l.starts[key] = l.timeNow()
	l.mu.Unlock()

	l.Info(fmt.Sprintf("(BEACON - [%s] - START) %s", key, message))
}

// LogEnd records an END beacon for a timed operation and reports the
// elapsed time since the matching LogStart.
//
// The elapsed value uses the monotonic clock reading carried by the
// recorded instant, so wall-clock adjustments between start and end do
// not corrupt it. It renders with fixed two-decimal seconds; operations
// faster than 5ms show as "0.00 s".
//
// A LogEnd with no matching start (never started, or already consumed
// by an earlier LogEnd) emits a warning followed by an END record with
// "Elapsed time N/A s" in place of the number. It never panics.
func (l *PrefixedLogger) LogEnd(key, message string) {
	l.mu.Lock()
	start, ok := l.starts[key]
	if ok {
		delete(l.starts, key)
	}
	now := l.timeNow()
	l.mu.Unlock()

	if !ok {
		l.Warning(fmt.Sprintf("LogEnd called for key %q without a corresponding LogStart", key))
		l.Info(fmt.Sprintf("(BEACON - [%s] - END (Elapsed time N/A s)) %s", key, message))
		return
	}

	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	l.Info(fmt.Sprintf("(BEACON - [%s] - END (Elapsed time %.2f s)) %s", key, elapsed.Seconds(), message))
}

// pendingStart reports whether a start is recorded for key and its
// instant. Used by tests; the registry is otherwise write-only from
// the outside.
func (l *PrefixedLogger) pendingStart(key string) (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.starts[key]
	return t, ok
}
