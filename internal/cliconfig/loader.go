package cliconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// LocalConfigFileName is the name of the local config file
	LocalConfigFileName = ".fmatch.yaml"
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "fmatch"
	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.yaml"
)

// FindLocalConfig searches for .fmatch.yaml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path := filepath.Join(cwd, LocalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", nil // No config dir available
	}
	path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// LoadConfigFile loads a CLIConfig from a YAML file. A relative patterns
// path is resolved against the directory of the config file.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := parseConfig(data)
	if err != nil {
		if ce, ok := err.(*ConfigError); ok {
			ce.Path = path
			return nil, ce
		}
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}

	if cfg.Patterns != "" && !filepath.IsAbs(cfg.Patterns) {
		cfg.Patterns = filepath.Join(filepath.Dir(path), cfg.Patterns)
	}
	return cfg, nil
}

var yamlLine = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

func parseConfig(data []byte) (*CLIConfig, error) {
	cfg := &CLIConfig{
		SetFields: make(map[string]bool),
		Sources:   make(map[string]string),
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			line, _ := strconv.Atoi(m[1])
			return nil, &ConfigError{Line: line, Message: m[2]}
		}
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "expected a mapping of settings")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if !knownKeys[key.Value] {
			return nil, nodeError(key, fmt.Sprintf("unknown setting %q", key.Value))
		}

		var err error
		switch key.Value {
		case KeyPatterns:
			err = value.Decode(&cfg.Patterns)
		case KeyLogLevel:
			err = value.Decode(&cfg.LogLevel)
		case KeyLogFormat:
			err = value.Decode(&cfg.LogFormat)
		case KeyJSON:
			err = value.Decode(&cfg.JSON)
		}
		if err != nil || value.Kind != yaml.ScalarNode {
			return nil, nodeError(value, fmt.Sprintf("invalid value for %s", key.Value))
		}
		cfg.SetFields[key.Value] = true
	}
	return cfg, nil
}

func nodeError(n *yaml.Node, msg string) *ConfigError {
	return &ConfigError{Line: n.Line, Column: n.Column, Message: msg}
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s (line %d, column %d): %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s (line %d): %s", e.Path, e.Line, e.Message)
	}
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: flags > env > local config > global config > defaults.
// Flags are applied by the caller. Unlike a missing file, a config file
// that exists but cannot be read or parsed is an error.
func LoadAll() (*CLIConfig, error) {
	cfg := NewDefault()

	if globalPath, err := FindGlobalConfig(); err == nil && globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, globalCfg, SourceGlobal)
	}

	if localPath, err := FindLocalConfig(); err == nil && localPath != "" {
		localCfg, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, localCfg, SourceLocal)
	}

	LoadEnvConfig(cfg)

	return cfg, nil
}

// SetFlag records a value given on the command line.
func (c *CLIConfig) SetFlag(key, value string) {
	if c.Sources == nil {
		c.Sources = make(map[string]string)
	}
	switch key {
	case KeyPatterns:
		c.Patterns = value
	case KeyLogLevel:
		c.LogLevel = value
	case KeyLogFormat:
		c.LogFormat = value
	case KeyJSON:
		c.JSON = parseBool(value)
	default:
		return
	}
	c.Sources[key] = SourceFlag
}
