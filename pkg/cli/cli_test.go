package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nene/f-matches/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocuments(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"type": "Identifier", "name": "x"}`), 0o644))

	t.Run("stdin when no args", func(t *testing.T) {
		docs, err := readDocuments(strings.NewReader(`[1, 2]`), nil)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, stdinName, docs[0].Name)
		assert.True(t, pattern.Equal([]any{1, 2}, docs[0].Value))
	})

	t.Run("file and dash", func(t *testing.T) {
		docs, err := readDocuments(strings.NewReader(`"s"`), []string{file, "-"})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, file, docs[0].Name)
		assert.Equal(t, map[string]any{"type": "Identifier", "name": "x"}, docs[0].Value)
		assert.Equal(t, "s", docs[1].Value)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readDocuments(nil, []string{filepath.Join(dir, "nope.json")})
		assert.ErrorContains(t, err, "failed to read")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := readDocuments(strings.NewReader("  \n"), []string{"-"})
		assert.ErrorContains(t, err, "<stdin>: empty input")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := readDocuments(strings.NewReader(`{"a": `), nil)
		assert.ErrorContains(t, err, "invalid JSON")
	})
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		width int
		want  string
	}{
		{"string", "lodash", 0, `"lodash"`},
		{"number", int64(42), 0, "42"},
		{"null", nil, 0, "null"},
		{"sorted keys", map[string]any{"b": true, "a": "x"}, 0, `{"a":"x","b":true}`},
		{"truncated", "abcdefgh", 4, `"abc...(truncated)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value, tt.width))
		})
	}
}

func TestFormatCaptures(t *testing.T) {
	c := pattern.Captures{"source": "lodash", "local": "_"}
	assert.Equal(t, `local="_" source="lodash"`, formatCaptures(c, 0))
	assert.Equal(t, "", formatCaptures(pattern.Captures{}, 0))
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"a.json", "sub/b.json", "sub/deep/c.json", "sub/notes.txt"} {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	}

	t.Run("plain args pass through", func(t *testing.T) {
		got, err := expandInputs([]string{"-", "x.json"})
		require.NoError(t, err)
		assert.Equal(t, []string{"-", "x.json"}, got)
	})

	t.Run("recursive glob", func(t *testing.T) {
		got, err := expandInputs([]string{filepath.Join(dir, "**", "*.json")})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.json"),
			filepath.Join(dir, "sub", "b.json"),
			filepath.Join(dir, "sub", "deep", "c.json"),
		}, got)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := expandInputs([]string{filepath.Join(dir, "*.yaml")})
		assert.ErrorContains(t, err, "no files match")
	})
}
