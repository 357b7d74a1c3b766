// Package formatter renders log entries into bytes for the sinks.
//
// TextFormatter produces the canonical chronolog line format:
//
//	2026-01-15 12:00:00,000 - INFO - [svc] message key=value
//
// JSONFormatter produces one JSON object per line, suitable for file
// sinks that feed log collectors.
//
// Both formatters implement WriterFormatter, which lets handlers skip
// the intermediate byte slice and write straight into their writer.
// Buffers are pooled package-wide; very large buffers are not returned
// to the pool.
package formatter
