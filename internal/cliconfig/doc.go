// Package cliconfig provides configuration types and loading for the fmatch CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (FMATCH_* prefix)
//  3. Local config file (.fmatch.yaml in current directory)
//  4. Global config file (~/.config/fmatch/config.yaml)
//  5. Default values
//
// The package handles configuration discovery, loading, merging, and validation.
// It tracks the source of each configuration value for debugging purposes.
//
// Key types:
//
//   - CLIConfig: Complete configuration structure for the CLI
//   - ConfigError: A config file error with line and column
//
// Key functions:
//
//   - LoadAll: Loads and merges configuration from all sources
//   - FindLocalConfig: Locates .fmatch.yaml in the current directory
//   - FindGlobalConfig: Locates the global config file
//   - LoadEnvConfig: Applies environment variable overrides
package cliconfig
