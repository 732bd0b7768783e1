package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/flowgraph/internal/export"
	"github.com/specialistvlad/flowgraph/internal/syntax"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	// MaxDepth bounds program nesting; see syntax.WithMaxDepth.
	MaxDepth int
	Output   Output
}

// Output controls how results and diagnostics are printed.
type Output struct {
	// Format is the graph export format name.
	Format string
	// Color enables ANSI colours in diagnostics.
	Color bool
	// Width wraps diagnostic text; zero disables wrapping.
	Width uint
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		MaxDepth:  syntax.DefaultMaxDepth,
		Output: Output{
			Format: export.JSON.String(),
		},
	}
}

var (
	logLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	logFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks that every value is one the application understands.
func (c *Config) Validate() error {
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("%w: log level %q (want debug, info, warn or error)", ErrInvalidConfig, c.LogLevel)
	}
	if !logFormats[c.LogFormat] {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
