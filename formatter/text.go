package formatter

import (
	"bytes"
	"io"

	"github.com/chronolabs/chronolog/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	<timestamp> - <LEVEL> - <message> [key=value ...]
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level separators to avoid multiple WriteString calls
var levelSeparators = map[core.Level]string{
	core.DebugLevel:    " - DEBUG - ",
	core.InfoLevel:     " - INFO - ",
	core.WarningLevel:  " - WARNING - ",
	core.ErrorLevel:    " - ERROR - ",
	core.CriticalLevel: " - CRITICAL - ",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted separator string
	if sep, ok := levelSeparators[entry.Level]; ok {
		buf.WriteString(sep)
	} else {
		buf.WriteString(" - UNKNOWN - ")
	}

	// Message
	buf.WriteString(entry.Message)

	// Fields
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
