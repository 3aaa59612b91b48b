package catalog

import "gopkg.in/yaml.v3"

// Document is the on-disk form of a catalog.
type Document struct {
	Patterns []Definition `json:"patterns" yaml:"patterns"`
}

// Definition is a single named pattern in a catalog document. Pattern keeps
// the raw YAML node so that mapping order and source positions survive until
// the pattern is compiled.
type Definition struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Pattern     yaml.Node `json:"-" yaml:"pattern"`
}
