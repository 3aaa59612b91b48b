package cli

import (
	"fmt"

	"github.com/nene/f-matches/pkg/catalog"
	"github.com/nene/f-matches/pkg/cli/internal/output"
	"github.com/nene/f-matches/pkg/util"
	"github.com/spf13/cobra"
)

var scanMaxWidth int

type scanOutput struct {
	Input string        `json:"input"`
	Hits  []catalog.Hit `json:"hits"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [file|-]...",
	Short: "Report every catalog pattern that matches each document",
	Long: `Match each input document against every pattern of the catalog, in
catalog order, and report the patterns that matched with their captures.

Inputs that match no pattern are reported on stderr. The exit status is 1
if no pattern matched any input.`,
	Example: `  fmatch scan ast.json
  fmatch scan --patterns estree.yaml a.json b.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog("")
		if err != nil {
			return err
		}
		docs, err := readDocuments(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		results := make([]scanOutput, 0, len(docs))
		total := 0
		for _, doc := range docs {
			hits := cat.Scan(doc.Value)
			if hits == nil {
				hits = []catalog.Hit{}
			}
			if len(hits) == 0 {
				output.Warn(cmd.ErrOrStderr(), "%s matched no pattern", doc.Name)
			}
			total += len(hits)
			results = append(results, scanOutput{Input: doc.Name, Hits: hits})
		}

		w := cmd.OutOrStdout()
		err = printResult(w, results, func() {
			if total == 0 {
				return
			}
			tw := output.Table(w)
			fmt.Fprintln(tw, "INPUT\tPATTERN\tCAPTURES")
			for _, res := range results {
				for _, hit := range res.Hits {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Input, hit.Pattern, formatCaptures(hit.Captures, scanMaxWidth))
				}
			}
			_ = tw.Flush()
		})
		if err != nil {
			return err
		}
		if total == 0 {
			return ErrNoMatch
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanMaxWidth, "max-width", util.MaxValueSize, "Truncate printed values to this many bytes")
	rootCmd.AddCommand(scanCmd)
}
