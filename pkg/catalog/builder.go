package catalog

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nene/f-matches/pkg/pattern"
)

type resolveState int

const (
	unresolved resolveState = iota
	resolving
	resolved
)

// builder compiles catalog definitions, resolving $ref directives on demand.
type builder struct {
	defs     map[string]*Definition
	state    map[string]resolveState
	compiled map[string]pattern.Pattern
}

func newBuilder(defs map[string]*Definition) *builder {
	return &builder{
		defs:     defs,
		state:    make(map[string]resolveState, len(defs)),
		compiled: make(map[string]pattern.Pattern, len(defs)),
	}
}

// resolve returns the compiled pattern for name, compiling it first if needed.
func (b *builder) resolve(name string) (pattern.Pattern, error) {
	switch b.state[name] {
	case resolved:
		return b.compiled[name], nil
	case resolving:
		return nil, fmt.Errorf("%w: %s", ErrCyclicReference, name)
	}

	d, ok := b.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReference, name)
	}

	b.state[name] = resolving
	p, err := b.node(name, &d.Pattern)
	if err != nil {
		return nil, err
	}
	b.state[name] = resolved
	b.compiled[name] = p
	return p, nil
}

// node compiles a YAML node of the definition owner into a pattern.
func (b *builder) node(owner string, n *yaml.Node) (pattern.Pattern, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return pattern.Lit(nil), nil
		}
		return b.node(owner, n.Content[0])

	case yaml.AliasNode:
		return b.node(owner, n.Alias)

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, b.errorAt(owner, n, err)
		}
		return pattern.Lit(v), nil

	case yaml.SequenceNode:
		elems := make([]pattern.Pattern, len(n.Content))
		for i, c := range n.Content {
			p, err := b.node(owner, c)
			if err != nil {
				return nil, err
			}
			elems[i] = p
		}
		return pattern.Arr(elems...), nil

	case yaml.MappingNode:
		if isDirective(n) {
			return b.directive(owner, n)
		}
		fields := make([]pattern.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			p, err := b.node(owner, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, pattern.Field{Key: n.Content[i].Value, Pattern: p})
		}
		return pattern.Ordered(fields...), nil

	default:
		return nil, b.errorAt(owner, n, fmt.Errorf("unsupported YAML node kind %d", n.Kind))
	}
}

// isDirective reports whether a mapping node uses any $-prefixed key.
func isDirective(n *yaml.Node) bool {
	for i := 0; i < len(n.Content); i += 2 {
		if strings.HasPrefix(n.Content[i].Value, "$") {
			return true
		}
	}
	return false
}

func (b *builder) errorAt(owner string, n *yaml.Node, err error) error {
	return &PatternError{Pattern: owner, Line: n.Line, Column: n.Column, Err: err}
}

func (b *builder) invalid(owner string, n *yaml.Node, format string, args ...any) error {
	return b.errorAt(owner, n, fmt.Errorf("%w: "+format, append([]any{ErrInvalidDirective}, args...)...))
}

// directive compiles a $-mapping. Each directive stands alone, except that
// $match qualifies $extract and $path.
func (b *builder) directive(owner string, n *yaml.Node) (pattern.Pattern, error) {
	keys := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i].Value
		if !directiveNames[k] {
			return nil, b.errorAt(owner, n.Content[i], fmt.Errorf("%w: %s", ErrUnknownDirective, k))
		}
		keys[k] = n.Content[i+1]
	}

	switch {
	case keys["$extract"] != nil:
		if err := b.onlyKeys(owner, n, keys, "$extract", "$match"); err != nil {
			return nil, err
		}
		return b.extract(owner, keys["$extract"], keys["$match"])

	case keys["$path"] != nil:
		if err := b.onlyKeys(owner, n, keys, "$path", "$match"); err != nil {
			return nil, err
		}
		var sub pattern.Pattern
		if m := keys["$match"]; m != nil {
			p, err := b.node(owner, m)
			if err != nil {
				return nil, err
			}
			sub = p
		}
		return b.path(owner, keys["$path"], sub)

	case keys["$match"] != nil:
		return nil, b.invalid(owner, n, "$match requires $extract or $path")
	}

	if len(keys) != 1 {
		return nil, b.invalid(owner, n, "cannot combine %s", strings.Join(sortedKeys(keys), ", "))
	}

	for k, v := range keys {
		return b.single(owner, k, v)
	}
	return nil, b.invalid(owner, n, "empty directive")
}

func (b *builder) onlyKeys(owner string, n *yaml.Node, keys map[string]*yaml.Node, allowed ...string) error {
	for k := range keys {
		ok := false
		for _, a := range allowed {
			if k == a {
				ok = true
				break
			}
		}
		if !ok {
			return b.invalid(owner, n, "%s cannot be combined with %s", allowed[0], k)
		}
	}
	return nil
}

func sortedKeys(m map[string]*yaml.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// scalarString returns the string value of a scalar node.
func (b *builder) scalarString(owner, directive string, n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", b.invalid(owner, n, "%s expects a non-empty string", directive)
	}
	return n.Value, nil
}
