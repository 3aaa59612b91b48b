package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a catalog from a JSON or YAML file.
// The format is detected from the file extension (.yaml, .yml for YAML, otherwise JSON).
func LoadFromFile(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// ParseYAML parses a catalog from YAML.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return Build(&doc)
}

// ParseJSON parses a catalog from JSON. JSON documents are decoded through
// the YAML decoder, which keeps object key order.
func ParseJSON(data []byte) (*Catalog, error) {
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return Build(&doc)
}

// Build compiles every definition of doc into a catalog.
// References between patterns are resolved here; reference cycles are errors.
func Build(doc *Document) (*Catalog, error) {
	if doc == nil || len(doc.Patterns) == 0 {
		return nil, ErrNoPatterns
	}

	defs := make(map[string]*Definition, len(doc.Patterns))
	for i := range doc.Patterns {
		d := &doc.Patterns[i]
		if d.Name == "" {
			return nil, fmt.Errorf("patterns[%d]: %w", i, ErrMissingName)
		}
		if _, exists := defs[d.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
		}
		if d.Pattern.Kind == 0 {
			return nil, &PatternError{Pattern: d.Name, Err: ErrMissingPattern}
		}
		defs[d.Name] = d
	}

	b := newBuilder(defs)
	cat := New()
	for _, d := range doc.Patterns {
		p, err := b.resolve(d.Name)
		if err != nil {
			return nil, err
		}
		if err := cat.Add(d.Name, d.Description, p); err != nil {
			return nil, err
		}
	}
	return cat, nil
}
