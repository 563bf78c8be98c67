// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the lae binary.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrInvalidThreads indicates a worker count < 1.
	ErrInvalidThreads = errors.New("config: thread count must be a positive integer")

	// ErrMissingPath indicates an empty input or output path.
	ErrMissingPath = errors.New("config: path is required")

	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidLogFormat indicates a log format other than text or json.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the complete run configuration.
type Config struct {
	Threads int    // worker pool size
	Input   string // expression document
	Output  string // result artifact

	Seed       int64  // efficiency draw seed; 0 selects the default
	LogLevel   string // debug, info, warn, error
	LogFormat  string // text or json
	MetricsOut string // optional Prometheus text dump; "-" is stdout
	Verify     bool   // recompute sequentially and compare
}

// Default returns a configuration with logging at warn in text form and
// no metrics dump. Threads and paths must still be set.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: FormatText,
	}
}

// Validate checks every field.
// Errors: ErrInvalidThreads, ErrMissingPath, ErrInvalidLogLevel, ErrInvalidLogFormat.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads=%d: %w", c.Threads, ErrInvalidThreads)
	}
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input: %w", ErrMissingPath)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output: %w", ErrMissingPath)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, ErrInvalidLogFormat)
	}

	return nil
}

// Level maps LogLevel to a slog.Level.
// Errors: ErrInvalidLogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidLogLevel)
	}

	return l, nil
}
