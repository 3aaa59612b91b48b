package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ohler55/ojg/oj"
)

// stdinName is how standard input is named in output.
const stdinName = "<stdin>"

// document is one parsed input.
type document struct {
	Name  string
	Value any
}

// readDocuments parses each named file, or stdin for "-" and for no
// arguments at all, as a JSON document. Arguments containing glob
// metacharacters are expanded; ** matches across directories.
func readDocuments(stdin io.Reader, args []string) ([]document, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	paths, err := expandInputs(args)
	if err != nil {
		return nil, err
	}

	docs := make([]document, 0, len(paths))
	for _, path := range paths {
		var (
			name = path
			data []byte
			err  error
		)
		if path == "-" {
			name = stdinName
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		if len(bytes.TrimSpace(data)) == 0 {
			return nil, fmt.Errorf("%s: empty input", name)
		}
		v, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid JSON: %w", name, err)
		}
		docs = append(docs, document{Name: name, Value: v})
	}
	return docs, nil
}

// expandInputs replaces glob arguments with the files they match, sorted.
// A glob that matches nothing is an error.
func expandInputs(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-" || !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}
