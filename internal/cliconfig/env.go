package cliconfig

import (
	"os"
	"strings"
)

// Environment variable names
const (
	EnvPatterns  = "FMATCH_PATTERNS"
	EnvLogLevel  = "FMATCH_LOG_LEVEL"
	EnvLogFormat = "FMATCH_LOG_FORMAT"
	EnvJSON      = "FMATCH_JSON"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvPatterns); v != "" {
		cfg.Patterns = v
		cfg.Sources[KeyPatterns] = SourceEnv
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources[KeyLogLevel] = SourceEnv
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources[KeyLogFormat] = SourceEnv
	}

	if v := os.Getenv(EnvJSON); v != "" {
		cfg.JSON = parseBool(v)
		cfg.Sources[KeyJSON] = SourceEnv
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
