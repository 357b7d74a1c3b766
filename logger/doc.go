// Package logger is the public API of chronolog. Most users only need
// to import this package.
//
// A PrefixedLogger prepends a mutable bracketed prefix to every record
// and pairs LogStart/LogEnd calls to time named operations:
//
//	reg := logger.NewRegistry(logger.Config{})
//	log, err := reg.GetLogger("worker", logger.Options{Prefix: "job-42"})
//	if err != nil {
//	    ...
//	}
//	log.Info("picked up")                 // ... - INFO - [job-42] picked up
//	log.LogStart("fetch", "downloading")  // (BEACON - [fetch] - START) ...
//	log.LogEnd("fetch", "done")           // (BEACON - [fetch] - END (Elapsed time 1.73 s)) ...
//	log.UpdatePrefix("job-43")
//
// Loggers are cached by name in a Registry owned by the composition
// root. A repeat GetLogger for a known name returns the cached instance
// and ignores the options — see the GetLogger doc for this trap.
//
// Sinks are fixed at construction: console always, a size-rotated file
// unless disabled, and optionally Google Cloud Logging when the
// registry carries a cloud factory (handler/gcloudhandler.Factory).
//
// Severity filtering is per registry via Config.Level; there is no
// process-global level.
package logger
