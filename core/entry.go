package core

import (
	"sync"
	"time"
)

// Level represents the severity level of a log entry.
//
// The zero value is InfoLevel, so an unset level on a configuration
// struct selects the default severity.
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota - 1
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for severe errors after which the program may not continue
	CriticalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Entry represents a single log record with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Level = InfoLevel
	e.Fields = e.Fields[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Message = ""
	entryPool.Put(e)
}
