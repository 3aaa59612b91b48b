package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Patterns != "" {
		target.Patterns = source.Patterns
		target.Sources[KeyPatterns] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources[KeyLogLevel] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources[KeyLogFormat] = sourceType
	}
	// Without SetFields only true can be told apart from "absent".
	if source.SetFields[KeyJSON] || (source.SetFields == nil && source.JSON) {
		target.JSON = source.JSON
		target.Sources[KeyJSON] = sourceType
	}
}
