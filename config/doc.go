// Package config loads chronolog sink configuration from a TOML file.
//
// The file maps one-to-one onto logger.Config and logger.Options; the
// cloud sink factory is deliberately not configurable from the file —
// linking a cloud backend is a code-level decision made by the
// composition root.
package config
