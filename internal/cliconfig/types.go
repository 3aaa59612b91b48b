package cliconfig

// CLIConfig represents the complete configuration for the fmatch CLI.
type CLIConfig struct {
	// Patterns is the path of the pattern catalog (YAML or JSON).
	Patterns string `yaml:"patterns" json:"patterns"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Output settings
	JSON bool `yaml:"json" json:"json"`

	// SetFields records which keys were present in a loaded config file,
	// so an explicit false can be told apart from an absent value.
	SetFields map[string]bool `yaml:"-" json:"-"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"sources,omitempty"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Keys of the configuration values, as written in config files and used in Sources.
const (
	KeyPatterns  = "patterns"
	KeyLogLevel  = "logLevel"
	KeyLogFormat = "logFormat"
	KeyJSON      = "json"
)

// knownKeys lists every key a config file may contain.
var knownKeys = map[string]bool{
	KeyPatterns:  true,
	KeyLogLevel:  true,
	KeyLogFormat: true,
	KeyJSON:      true,
}
