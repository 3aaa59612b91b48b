package catalog

import (
	"fmt"
	"log/slog"

	"github.com/nene/f-matches/pkg/logging"
	"github.com/nene/f-matches/pkg/pattern"
)

// Catalog is an ordered set of named patterns. A Catalog is safe for
// concurrent matching once it has been built.
type Catalog struct {
	entries []entry
	byName  map[string]int
	logger  *slog.Logger
}

type entry struct {
	name        string
	description string
	pattern     pattern.Pattern
}

// Hit is a catalog pattern that matched a value during Scan.
type Hit struct {
	Pattern  string           `json:"pattern"`
	Captures pattern.Captures `json:"captures"`
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		byName: make(map[string]int),
		logger: logging.Nop(),
	}
}

// SetLogger sets the logger used for match tracing at debug level.
func (c *Catalog) SetLogger(l *slog.Logger) {
	c.logger = logging.OrNop(l)
}

// Add appends a named pattern to the catalog.
func (c *Catalog) Add(name, description string, p pattern.Pattern) error {
	if name == "" {
		return ErrMissingName
	}
	if _, exists := c.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if p == nil {
		return fmt.Errorf("%w: %s", ErrMissingPattern, name)
	}
	c.byName[name] = len(c.entries)
	c.entries = append(c.entries, entry{name: name, description: description, pattern: p})
	return nil
}

// Len returns the number of patterns in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Names returns the pattern names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.name
	}
	return names
}

// Lookup returns the pattern registered under name.
func (c *Catalog) Lookup(name string) (pattern.Pattern, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.entries[i].pattern, true
}

// Description returns the description of the named pattern, if any.
func (c *Catalog) Description(name string) string {
	i, ok := c.byName[name]
	if !ok {
		return ""
	}
	return c.entries[i].description
}

// Match matches v against the named pattern.
// A missing pattern is an error; a non-match is not.
func (c *Catalog) Match(name string, v any) (pattern.Result, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return pattern.NoMatch, fmt.Errorf("%w: %s", ErrPatternNotFound, name)
	}
	r := pattern.Matches(p, v)
	c.logger.Debug("pattern evaluated", "pattern", name, "matched", r.OK(), "captures", len(r.Captures()))
	return r, nil
}

// Scan matches v against every pattern in declaration order and returns the
// patterns that matched.
func (c *Catalog) Scan(v any) []Hit {
	var hits []Hit
	for _, e := range c.entries {
		r := pattern.Matches(e.pattern, v)
		c.logger.Debug("pattern evaluated", "pattern", e.name, "matched", r.OK(), "captures", len(r.Captures()))
		if r.OK() {
			hits = append(hits, Hit{Pattern: e.name, Captures: r.Captures()})
		}
	}
	return hits
}
