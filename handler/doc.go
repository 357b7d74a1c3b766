// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to output sinks.
//
// All handlers are synchronous: Handle formats and writes on the
// caller's goroutine and returns the sink's error, if any. Failures
// are the sink's problem; nothing here retries or buffers.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer (default: stdout).
//   - FileHandler writes to a file, rotating by size and pruning old
//     backups down to a configured count.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts a Handler to log/slog.Handler, so chronolog
//     can serve as a backend for the standard library.
//   - ZapHandler forwards entries to a zap.Logger.
//
// The Google Cloud Logging sink lives in the gcloudhandler subpackage;
// importing it is the explicit decision to link the cloud client
// library into a build.
package handler
