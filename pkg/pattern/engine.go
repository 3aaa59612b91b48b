package pattern

import (
	"fmt"
	"reflect"
)

// matchState is the accumulator of a single top-level Matches call.
// It is never shared between calls.
type matchState struct {
	captures Captures
}

// match reports whether v matches p, recording captures into s as it goes.
// Traversal stops at the first failing node.
func (s *matchState) match(p Pattern, v any) bool {
	switch p := p.(type) {
	case Literal:
		return Equal(p.Value, v)

	case *Object:
		return s.matchObject(p, v)

	case *Array:
		return s.matchArray(p, v)

	case Predicate:
		r := p(v)
		if !r.ok {
			return false
		}
		s.captures.merge(r.captures)
		return true

	default:
		panic(fmt.Sprintf("pattern: unsupported pattern node %T", p))
	}
}

func (s *matchState) matchObject(p *Object, v any) bool {
	if v == nil {
		return false
	}
	if len(p.fields) == 0 {
		return true
	}

	lookup, ok := objectLookup(v)
	if !ok {
		return false
	}
	for _, f := range p.fields {
		fv, found := lookup(f.Key)
		if !found {
			return false
		}
		if !s.match(f.Pattern, fv) {
			return false
		}
	}
	return true
}

func (s *matchState) matchArray(p *Array, v any) bool {
	n, index, ok := arrayAccess(v)
	if !ok || n < len(p.elems) {
		return false
	}
	for i, e := range p.elems {
		if !s.match(e, index(i)) {
			return false
		}
	}
	return true
}

// objectLookup returns a key accessor for map-like values: map[string]any
// directly, and any other map with a string key kind through reflection.
func objectLookup(v any) (func(key string) (any, bool), bool) {
	if m, ok := v.(map[string]any); ok {
		return func(key string) (any, bool) {
			fv, found := m[key]
			return fv, found
		}, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keyType := rv.Type().Key()
	return func(key string) (any, bool) {
		fv := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !fv.IsValid() {
			return nil, false
		}
		return fv.Interface(), true
	}, true
}

// arrayAccess returns the length and an element accessor for slice-like
// values. Strings and byte slices are scalars, not arrays.
func arrayAccess(v any) (int, func(i int) any, bool) {
	if s, ok := v.([]any); ok {
		return len(s), func(i int) any { return s[i] }, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return 0, nil, false
		}
		return rv.Len(), func(i int) any { return rv.Index(i).Interface() }, true
	default:
		return 0, nil, false
	}
}
