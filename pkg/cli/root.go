package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/nene/f-matches/internal/cliconfig"
	"github.com/nene/f-matches/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	patternsPath string
	logLevel     string
	logFormat    string
	jsonOutput   bool

	// Effective configuration, resolved before any subcommand runs
	cfg    = cliconfig.NewDefault()
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fmatch",
	Short: "fmatch matches JSON documents against structural patterns",
	Long: `fmatch tests JSON documents against named structural patterns and
prints the values the patterns capture.

Patterns live in a catalog file (YAML or JSON). A pattern lists only the
parts of a document it cares about; object keys it does not mention and
array elements past its end are ignored.

Configuration can be provided via flags, environment variables (FMATCH_*),
a local .fmatch.yaml or a global ~/.config/fmatch/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Main()
	PersistentPreRunE: setup,
}

// Main runs the command line and returns the process exit status.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrNoMatch) {
			return ExitNoMatch
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// Execute runs the command line and exits the process.
// This is called by main.main().
func Execute() {
	os.Exit(Main())
}

// setup resolves the effective configuration and the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := cliconfig.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("patterns") {
		loaded.SetFlag(cliconfig.KeyPatterns, patternsPath)
	}
	if flags.Changed("log-level") {
		loaded.SetFlag(cliconfig.KeyLogLevel, logLevel)
	}
	if flags.Changed("log-format") {
		loaded.SetFlag(cliconfig.KeyLogFormat, logFormat)
	}
	if flags.Changed("json") {
		loaded.SetFlag(cliconfig.KeyJSON, strconv.FormatBool(jsonOutput))
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded
	jsonOutput = cfg.JSON
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.LogLevel)
	lc.Format = logging.ParseFormat(cfg.LogFormat)
	lc.Output = cmd.ErrOrStderr()
	logger = logging.New(lc)
	logger.Debug("configuration resolved",
		slog.String("patterns", cfg.Patterns),
		slog.String("patternsSource", cfg.Sources[cliconfig.KeyPatterns]),
		slog.Bool("json", cfg.JSON),
	)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&patternsPath, "patterns", "p", cliconfig.DefaultPatterns, "Pattern catalog file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cliconfig.DefaultLogFormat, "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
