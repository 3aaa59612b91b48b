package cli

import (
	"io"
	"sort"
	"strings"

	"github.com/nene/f-matches/pkg/cli/internal/output"
	"github.com/nene/f-matches/pkg/pattern"
	"github.com/nene/f-matches/pkg/util"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// printResult outputs a single command result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to w. textFn is called only in text mode.
func printResult(w io.Writer, data any, textFn func()) error {
	if jsonOutput {
		return output.JSON(w, data)
	}
	textFn()
	return nil
}

// formatValue renders a captured value as compact JSON with sorted keys.
func formatValue(v any, maxWidth int) string {
	return util.Truncate(oj.JSON(v, &ojg.Options{Sort: true}), maxWidth)
}

// captureNames returns the capture names in sorted order.
func captureNames(c pattern.Captures) []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatCaptures renders captures on one line as name=value pairs.
func formatCaptures(c pattern.Captures, maxWidth int) string {
	parts := make([]string, 0, len(c))
	for _, name := range captureNames(c) {
		parts = append(parts, name+"="+formatValue(c[name], maxWidth))
	}
	return strings.Join(parts, " ")
}
