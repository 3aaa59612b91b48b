package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nene/f-matches/pkg/pattern"
)

func loadJSONValue(t *testing.T, path string) any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var v any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestLoadFromFile_YAML(t *testing.T) {
	cat, err := LoadFromFile(filepath.Join("testdata", "estree.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"stringLiteral", "requireDeclarator", "require", "declaration"}, cat.Names())
	assert.Equal(t, "var <local> = require(<source>)", cat.Description("require"))

	r, err := cat.Match("require", loadJSONValue(t, filepath.Join("testdata", "require.json")))
	require.NoError(t, err)
	require.True(t, r.OK())
	assert.Equal(t, pattern.Captures{
		"local": map[string]any{"type": "Identifier", "name": "foo"},
		"source": map[string]any{
			"type":  "Literal",
			"value": "./foo.js",
			"raw":   `"./foo.js"`,
		},
	}, r.Captures())
}

func TestLoadFromFile_JSON(t *testing.T) {
	cat, err := LoadFromFile(filepath.Join("testdata", "estree.json"))
	require.NoError(t, err)

	assert.Equal(t, []string{"identifier", "firstArgument"}, cat.Names())

	r, err := cat.Match("identifier", map[string]any{"type": "Identifier", "name": "foo"})
	require.NoError(t, err)
	assert.Equal(t, pattern.Captures{"name": "foo"}, r.Captures())

	r, err = cat.Match("firstArgument", map[string]any{
		"type":      "CallExpression",
		"arguments": []any{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, pattern.Captures{"first": 1}, r.Captures())
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()
	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"patterns": [`), 0644))
	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("patterns: [\n  - name: a\n    pattern: {"), 0644))
	noPatterns := filepath.Join(dir, "none.yaml")
	require.NoError(t, os.WriteFile(noPatterns, []byte("patterns: []\n"), 0644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.yaml"), wantErr: ErrFileNotFound},
		{name: "empty file", path: filepath.Join("testdata", "empty.yaml"), wantErr: ErrEmptyFile},
		{name: "invalid JSON", path: badJSON, wantErr: ErrInvalidJSON},
		{name: "invalid YAML", path: badYAML, wantErr: ErrInvalidYAML},
		{name: "no patterns", path: noPatterns, wantErr: ErrNoPatterns},
		{name: "reference cycle", path: filepath.Join("testdata", "cycle.yaml"), wantErr: ErrCyclicReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := LoadFromFile(tt.path)
			assert.Nil(t, cat)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromFile_Directory(t *testing.T) {
	_, err := LoadFromFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestBuild_DefinitionErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name:    "missing name",
			src:     "patterns:\n  - pattern: {a: 1}\n",
			wantErr: ErrMissingName,
		},
		{
			name:    "duplicate name",
			src:     "patterns:\n  - name: a\n    pattern: 1\n  - name: a\n    pattern: 2\n",
			wantErr: ErrDuplicateName,
		},
		{
			name:    "missing pattern",
			src:     "patterns:\n  - name: a\n",
			wantErr: ErrMissingPattern,
		},
		{
			name:    "unknown reference",
			src:     "patterns:\n  - name: a\n    pattern: {$ref: b}\n",
			wantErr: ErrUnknownReference,
		},
		{
			name:    "self reference",
			src:     "patterns:\n  - name: a\n    pattern: {child: {$ref: a}}\n",
			wantErr: ErrCyclicReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.src))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_SharedReferenceIsNotACycle(t *testing.T) {
	cat, err := ParseYAML([]byte(`
patterns:
  - name: id
    pattern: {type: Identifier}
  - name: assignment
    pattern:
      left: {$ref: id}
      right: {$ref: id}
`))
	require.NoError(t, err)

	r, err := cat.Match("assignment", map[string]any{
		"left":  map[string]any{"type": "Identifier"},
		"right": map[string]any{"type": "Identifier"},
	})
	require.NoError(t, err)
	assert.True(t, r.OK())
}
