package cli

import (
	"fmt"

	"github.com/nene/f-matches/pkg/pattern"
	"github.com/nene/f-matches/pkg/util"
	"github.com/spf13/cobra"
)

var matchMaxWidth int

// matchOutput is the JSON form of one matched input.
// Captures is null for a non-match and an object (maybe empty) for a match.
type matchOutput struct {
	Input    string           `json:"input"`
	Matched  bool             `json:"matched"`
	Captures pattern.Captures `json:"captures"`
}

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [file|-]...",
	Short: "Match JSON documents against a named pattern",
	Long: `Match each input document against one pattern of the catalog and print
the captured values. Inputs are JSON files; "-" or no file reads stdin.

The exit status is 1 if any input did not match.`,
	Example: `  fmatch match require ast.json
  cat ast.json | fmatch match require --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog("")
		if err != nil {
			return err
		}
		name := args[0]
		if _, ok := cat.Lookup(name); !ok {
			return fmt.Errorf("pattern %q not found in %s", name, cfg.Patterns)
		}

		docs, err := readDocuments(cmd.InOrStdin(), args[1:])
		if err != nil {
			return err
		}

		results := make([]matchOutput, 0, len(docs))
		allMatched := true
		for _, doc := range docs {
			r, err := cat.Match(name, doc.Value)
			if err != nil {
				return err
			}
			allMatched = allMatched && r.OK()
			results = append(results, matchOutput{Input: doc.Name, Matched: r.OK(), Captures: r.Captures()})
		}

		w := cmd.OutOrStdout()
		err = printResult(w, results, func() {
			for _, res := range results {
				prefix := ""
				if len(results) > 1 {
					prefix = res.Input + ": "
				}
				switch {
				case !res.Matched:
					fmt.Fprintf(w, "%sno match\n", prefix)
				case len(res.Captures) == 0:
					fmt.Fprintf(w, "%smatch\n", prefix)
				default:
					for _, c := range captureNames(res.Captures) {
						fmt.Fprintf(w, "%s%s = %s\n", prefix, c, formatValue(res.Captures[c], matchMaxWidth))
					}
				}
			}
		})
		if err != nil {
			return err
		}
		if !allMatched {
			return ErrNoMatch
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().IntVar(&matchMaxWidth, "max-width", util.MaxValueSize, "Truncate printed values to this many bytes")
	rootCmd.AddCommand(matchCmd)
}
