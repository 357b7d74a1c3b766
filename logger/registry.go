package logger

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/chronolabs/chronolog/core"
	"github.com/chronolabs/chronolog/formatter"
	"github.com/chronolabs/chronolog/handler"
)

// Factory defaults, matching the published configuration surface.
const (
	// DefaultFilePath is the rotating file sink target when no path is
	// configured and FilePathEnv is unset
	DefaultFilePath = "logs.txt"
	// DefaultFileMaxBytes is the rotation threshold (100 MiB)
	DefaultFileMaxBytes = 100 * 1024 * 1024
	// DefaultFileBackupCount is the number of rotated files retained
	DefaultFileBackupCount = 5
	// FilePathEnv overrides DefaultFilePath when no explicit path is given
	FilePathEnv = "CHRONOLOG_LOG_FILE"
)

// CloudFactory builds a cloud sink for the given log name. A concrete
// implementation lives in handler/gcloudhandler; the composition root
// decides whether to link it.
type CloudFactory func(logName string) (handler.Handler, error)

// Config configures a Registry.
type Config struct {
	// Level is the severity filter applied to every logger the registry
	// creates (default: InfoLevel). There is no process-global level;
	// unrelated registries filter independently.
	Level core.Level
	// ConsoleWriter receives console output (default: os.Stdout)
	ConsoleWriter io.Writer
	// Formatter renders console and file records (default: TextFormatter)
	Formatter formatter.Formatter
	// CloudFactory builds cloud sinks when a logger requests cloud
	// logging. Nil means cloud logging is unavailable in this build.
	CloudFactory CloudFactory
}

// Options configures a single logger on its first GetLogger call.
type Options struct {
	// Prefix is the initial bracketed tag (may be empty)
	Prefix string
	// FilePath selects the rotating file target. Empty selects
	// $CHRONOLOG_LOG_FILE, falling back to "logs.txt".
	FilePath string
	// DisableFile turns the file sink off entirely
	DisableFile bool
	// FileMaxBytes is the rotation threshold (0 = DefaultFileMaxBytes)
	FileMaxBytes int64
	// FileBackupCount is the number of rotated files retained
	// (0 = DefaultFileBackupCount)
	FileBackupCount int
	// EnableCloudLogging attaches a cloud sink built by the registry's
	// CloudFactory. The default (false) guarantees no cloud attempt.
	EnableCloudLogging bool
	// CloudLoggerName labels the cloud sink (default: the logger name)
	CloudLoggerName string
}

// Registry creates and caches PrefixedLogger instances by name. It is
// meant to be owned by the application's composition root and passed to
// the components that log; there is no package-level instance.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*PrefixedLogger
	cfg     Config
}

// NewRegistry creates a registry with the given configuration
func NewRegistry(cfg Config) *Registry {
	if cfg.ConsoleWriter == nil {
		cfg.ConsoleWriter = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &Registry{
		loggers: make(map[string]*PrefixedLogger),
		cfg:     cfg,
	}
}

// GetLogger returns the logger registered under name, creating and
// configuring it on first use.
//
// Caller trap: GetLogger is idempotent by name. A repeat call for an
// existing name returns the cached instance and IGNORES opts entirely —
// sink and prefix arguments are neither applied nor merged. Configure a
// logger on its first retrieval.
func (r *Registry) GetLogger(name string, opts Options) (*PrefixedLogger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l, nil
	}

	h, err := r.buildSinks(name, opts)
	if err != nil {
		return nil, err
	}

	l := NewPrefixedLogger(name, opts.Prefix, h, r.cfg.Level)
	r.loggers[name] = l
	return l, nil
}

// buildSinks assembles the ordered sink set for a new logger
func (r *Registry) buildSinks(name string, opts Options) (handler.Handler, error) {
	sinks := []handler.Handler{
		handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:    r.cfg.ConsoleWriter,
			Formatter: r.cfg.Formatter,
		}),
	}

	if !opts.DisableFile {
		path := opts.FilePath
		if path == "" {
			path = os.Getenv(FilePathEnv)
		}
		if path == "" {
			path = DefaultFilePath
		}
		maxBytes := opts.FileMaxBytes
		if maxBytes <= 0 {
			maxBytes = DefaultFileMaxBytes
		}
		backupCount := opts.FileBackupCount
		if backupCount <= 0 {
			backupCount = DefaultFileBackupCount
		}

		fh, err := handler.NewFileHandler(handler.FileConfig{
			Filename:    path,
			Formatter:   r.cfg.Formatter,
			MaxBytes:    maxBytes,
			BackupCount: backupCount,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "creating file sink %q for logger %q", path, name)
		}
		sinks = append(sinks, fh)
	}

	if opts.EnableCloudLogging {
		if r.cfg.CloudFactory == nil {
			return nil, errors.Errorf("logger %q requests cloud logging but no cloud factory is registered", name)
		}
		logName := opts.CloudLoggerName
		if logName == "" {
			logName = name
		}
		ch, err := r.cfg.CloudFactory(logName)
		if err != nil {
			return nil, errors.Wrapf(err, "creating cloud sink for logger %q", name)
		}
		sinks = append(sinks, ch)
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return handler.NewMultiHandler(sinks...), nil
}

// Close closes every logger the registry created. Meant for process
// shutdown; the registry is not usable afterwards.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lastErr error
	for name, l := range r.loggers {
		if err := l.Close(); err != nil {
			lastErr = err
		}
		delete(r.loggers, name)
	}
	return lastErr
}
