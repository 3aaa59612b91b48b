package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type validateOutput struct {
	Path     string `json:"path"`
	Valid    bool   `json:"valid"`
	Patterns int    `json:"patterns"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Load and compile a pattern catalog without matching anything",
	Long: `Load a catalog, check every pattern name and directive, and resolve
every $ref. Errors point at the line and column of the offending node.

Without an argument the configured catalog (--patterns) is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		cat, path, err := loadCatalog(path)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		return printResult(w, validateOutput{Path: path, Valid: true, Patterns: cat.Len()}, func() {
			fmt.Fprintf(w, "%s: %d patterns OK\n", path, cat.Len())
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
