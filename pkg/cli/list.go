package cli

import (
	"fmt"

	"github.com/nene/f-matches/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

type listEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the patterns of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog("")
		if err != nil {
			return err
		}

		entries := make([]listEntry, 0, cat.Len())
		for _, name := range cat.Names() {
			entries = append(entries, listEntry{Name: name, Description: cat.Description(name)})
		}

		w := cmd.OutOrStdout()
		return printResult(w, entries, func() {
			tw := output.Table(w)
			fmt.Fprintln(tw, "NAME\tDESCRIPTION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
			}
			_ = tw.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
