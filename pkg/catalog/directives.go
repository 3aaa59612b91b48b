package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/ohler55/ojg/jp"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/nene/f-matches/pkg/pattern"
)

// directiveNames lists every key accepted in a directive mapping.
var directiveNames = map[string]bool{
	"$extract": true,
	"$match":   true,
	"$length":  true,
	"$any":     true,
	"$literal": true,
	"$ref":     true,
	"$type":    true,
	"$expr":    true,
	"$path":    true,
	"$schema":  true,
}

// JSON type names accepted by $type.
var jsonTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"boolean": true,
	"null":    true,
	"object":  true,
	"array":   true,
}

// single compiles a directive that stands alone in its mapping.
func (b *builder) single(owner, key string, n *yaml.Node) (pattern.Pattern, error) {
	switch key {
	case "$length":
		return b.length(owner, n)
	case "$any":
		return b.anything(owner, n)
	case "$literal":
		return b.literal(owner, n)
	case "$ref":
		return b.ref(owner, n)
	case "$type":
		return b.jsonType(owner, n)
	case "$expr":
		return b.expression(owner, n)
	case "$schema":
		return b.schema(owner, n)
	default:
		return nil, b.errorAt(owner, n, fmt.Errorf("%w: %s", ErrUnknownDirective, key))
	}
}

func (b *builder) extract(owner string, nameNode, matchNode *yaml.Node) (pattern.Pattern, error) {
	name, err := b.scalarString(owner, "$extract", nameNode)
	if err != nil {
		return nil, err
	}
	if matchNode == nil {
		return pattern.ExtractAny(name), nil
	}
	m, err := b.node(owner, matchNode)
	if err != nil {
		return nil, err
	}
	return pattern.Extract(name, m), nil
}

func (b *builder) length(owner string, n *yaml.Node) (pattern.Pattern, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, b.invalid(owner, n, "$length expects a sequence")
	}
	p, err := b.node(owner, n)
	if err != nil {
		return nil, err
	}
	return pattern.LengthMatcher(p.(*pattern.Array)), nil
}

func (b *builder) anything(owner string, n *yaml.Node) (pattern.Pattern, error) {
	var on bool
	if n.Kind != yaml.ScalarNode || n.Decode(&on) != nil || !on {
		return nil, b.invalid(owner, n, "$any expects true")
	}
	return pattern.Any(), nil
}

func (b *builder) literal(owner string, n *yaml.Node) (pattern.Pattern, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, b.errorAt(owner, n, err)
	}
	return pattern.Lit(v), nil
}

func (b *builder) ref(owner string, n *yaml.Node) (pattern.Pattern, error) {
	name, err := b.scalarString(owner, "$ref", n)
	if err != nil {
		return nil, err
	}
	p, err := b.resolve(name)
	if err != nil {
		return nil, b.errorAt(owner, n, err)
	}
	return p, nil
}

func (b *builder) jsonType(owner string, n *yaml.Node) (pattern.Pattern, error) {
	want, err := b.scalarString(owner, "$type", n)
	if err != nil {
		return nil, err
	}
	if !jsonTypes[want] {
		return nil, b.invalid(owner, n, "unknown $type %q", want)
	}
	return pattern.Test(func(v any) bool {
		return typeOf(v) == want
	}), nil
}

// typeOf returns the JSON type name of a decoded value, or "" for values
// that have no JSON representation.
func typeOf(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := v.(json.Number); ok {
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return "object"
		}
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return "string"
		}
		return "array"
	}
	return ""
}

// expression compiles an expr-lang predicate. The value under test is bound
// to v. A boolean result is the verdict; a map result matches and becomes
// captures. Evaluation errors and other results do not match.
func (b *builder) expression(owner string, n *yaml.Node) (pattern.Pattern, error) {
	src, err := b.scalarString(owner, "$expr", n)
	if err != nil {
		return nil, err
	}
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, b.invalid(owner, n, "compile %q: %v", src, err)
	}

	return pattern.Predicate(func(v any) pattern.Result {
		out, err := expr.Run(program, map[string]any{"v": v})
		if err != nil {
			return pattern.NoMatch
		}
		switch r := out.(type) {
		case bool:
			return pattern.Bool(r)
		case map[string]any:
			return pattern.Matched(pattern.Captures(r))
		default:
			return pattern.NoMatch
		}
	}), nil
}

// path compiles a JSONPath directive. Only the first selected node is
// matched against sub; without sub, any selection matches.
func (b *builder) path(owner string, n *yaml.Node, sub pattern.Pattern) (pattern.Pattern, error) {
	src, err := b.scalarString(owner, "$path", n)
	if err != nil {
		return nil, err
	}
	x, err := jp.ParseString(src)
	if err != nil {
		return nil, b.invalid(owner, n, "invalid JSONPath expression %q: %v", src, err)
	}

	return pattern.Predicate(func(v any) pattern.Result {
		selected := x.Get(v)
		if len(selected) == 0 {
			return pattern.NoMatch
		}
		if sub == nil {
			return pattern.Matched(nil)
		}
		return pattern.Matches(sub, selected[0])
	}), nil
}

func (b *builder) schema(owner string, n *yaml.Node) (pattern.Pattern, error) {
	if n.Kind != yaml.MappingNode {
		return nil, b.invalid(owner, n, "$schema expects a mapping")
	}
	var raw any
	if err := n.Decode(&raw); err != nil {
		return nil, b.errorAt(owner, n, err)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, b.invalid(owner, n, "marshal schema: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(data)); err != nil {
		return nil, b.invalid(owner, n, "add schema resource: %v", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, b.invalid(owner, n, "compile schema: %v", err)
	}

	return pattern.Test(func(v any) bool {
		return schema.Validate(v) == nil
	}), nil
}
