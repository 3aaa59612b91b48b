package cli

import (
	"fmt"
	"io"

	"github.com/nene/f-matches/internal/cliconfig"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration with source annotations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		return printResult(w, cfg, func() {
			fmt.Fprintln(w, "Effective Configuration:")
			fmt.Fprintln(w)

			printConfigValue(w, cliconfig.KeyPatterns, cfg.Patterns, cfg.Sources[cliconfig.KeyPatterns])
			printConfigValue(w, cliconfig.KeyLogLevel, cfg.LogLevel, cfg.Sources[cliconfig.KeyLogLevel])
			printConfigValue(w, cliconfig.KeyLogFormat, cfg.LogFormat, cfg.Sources[cliconfig.KeyLogFormat])
			printConfigValue(w, cliconfig.KeyJSON, cfg.JSON, cfg.Sources[cliconfig.KeyJSON])

			fmt.Fprintln(w)
			fmt.Fprintln(w, "Sources loaded:")
			if globalPath, err := cliconfig.FindGlobalConfig(); err == nil && globalPath != "" {
				fmt.Fprintf(w, "  • %s (global)\n", globalPath)
			}
			if localPath, err := cliconfig.FindLocalConfig(); err == nil && localPath != "" {
				fmt.Fprintf(w, "  • %s (local)\n", localPath)
			}
		})
	},
}

// printConfigValue prints a config value with source annotation.
func printConfigValue(w io.Writer, name string, value any, source string) {
	if source == "" {
		source = cliconfig.SourceDefault
	}
	fmt.Fprintf(w, "  %-12s %v%s\n", name+":", value, formatSource(source))
}

// formatSource formats a source type for display.
func formatSource(source string) string {
	switch source {
	case cliconfig.SourceDefault:
		return "  (default)"
	case cliconfig.SourceEnv:
		return "  (env)"
	case cliconfig.SourceGlobal:
		return "  (global config)"
	case cliconfig.SourceLocal:
		return "  (local config)"
	case cliconfig.SourceFlag:
		return "  (flag)"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
