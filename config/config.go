package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/chronolabs/chronolog/logger"
)

// Config is the on-disk (TOML) shape of a chronolog setup: one registry
// section plus per-logger sink options.
type Config struct {
	// Level filters every logger: debug, info, warning, error, critical
	Level string `toml:"level"`

	File  FileConfig  `toml:"file"`
	Cloud CloudConfig `toml:"cloud"`
}

// FileConfig configures the rotating file sink
type FileConfig struct {
	// Path of the log file; empty selects $CHRONOLOG_LOG_FILE, then "logs.txt"
	Path string `toml:"path"`
	// Disabled turns the file sink off entirely
	Disabled bool `toml:"disabled"`
	// MaxBytes is the rotation threshold (0 = 100 MiB)
	MaxBytes int64 `toml:"max_bytes"`
	// BackupCount is the number of rotated files retained (0 = 5)
	BackupCount int `toml:"backup_count"`
}

// CloudConfig configures the optional cloud sink
type CloudConfig struct {
	Enabled bool   `toml:"enabled"`
	LogName string `toml:"log_name"`
}

// Default returns the configuration used when no file exists: INFO
// level, default rotating file sink, no cloud sink.
func Default() *Config {
	return &Config{Level: "info"}
}

// Load reads a TOML configuration file. A missing file is not an
// error; it yields Default().
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if cfg.Level == "" {
		cfg.Level = "info"
	}

	return &cfg, nil
}

// Save writes the configuration as TOML
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// RegistryConfig maps the file onto a registry configuration. The
// cloud factory is wiring, not configuration, so the caller supplies it.
func (c *Config) RegistryConfig(cloudFactory logger.CloudFactory) logger.Config {
	return logger.Config{
		Level:        logger.ParseLevel(c.Level),
		CloudFactory: cloudFactory,
	}
}

// LoggerOptions maps the file onto first-call logger options
func (c *Config) LoggerOptions(prefix string) logger.Options {
	return logger.Options{
		Prefix:             prefix,
		FilePath:           c.File.Path,
		DisableFile:        c.File.Disabled,
		FileMaxBytes:       c.File.MaxBytes,
		FileBackupCount:    c.File.BackupCount,
		EnableCloudLogging: c.Cloud.Enabled,
		CloudLoggerName:    c.Cloud.LogName,
	}
}
