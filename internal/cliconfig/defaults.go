package cliconfig

import (
	"fmt"
	"strings"
)

// DefaultPatterns is the catalog path used when none is configured.
const DefaultPatterns = "patterns.yaml"

// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Patterns:  DefaultPatterns,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}
	cfg.Sources[KeyPatterns] = SourceDefault
	cfg.Sources[KeyLogLevel] = SourceDefault
	cfg.Sources[KeyLogFormat] = SourceDefault
	cfg.Sources[KeyJSON] = SourceDefault
	return cfg
}

// Validate checks the configuration for values the CLI cannot use.
func (c *CLIConfig) Validate() error {
	if strings.TrimSpace(c.Patterns) == "" {
		return fmt.Errorf("%s must not be empty", KeyPatterns)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%s %q is not one of debug, info, warn, error", KeyLogLevel, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%s %q is not one of text, json", KeyLogFormat, c.LogFormat)
	}
	return nil
}
