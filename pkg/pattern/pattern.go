package pattern

import (
	"sort"
)

// Pattern is a node of a pattern tree. The set of implementations is closed:
// Literal, *Object, *Array and Predicate.
type Pattern interface {
	patternNode()
}

// Literal matches values equal to Value.
type Literal struct {
	Value any
}

// Field is a single key of an Object pattern.
type Field struct {
	Key     string
	Pattern Pattern
}

// Object matches map-like values that contain every field of the pattern.
// Fields are evaluated in order and the first mismatch ends the match.
type Object struct {
	fields []Field
}

// Array matches slice-like values whose leading elements match the pattern
// elements at the same index.
type Array struct {
	elems []Pattern
}

// Predicate decides whether v matches. A predicate that returns a match with
// captures contributes them to the surrounding Matches call.
type Predicate func(v any) Result

func (Literal) patternNode()   {}
func (*Object) patternNode()   {}
func (*Array) patternNode()    {}
func (Predicate) patternNode() {}

// Lit returns a Literal pattern for v.
func Lit(v any) Literal {
	return Literal{Value: v}
}

// Obj returns an Object pattern with the given fields, evaluated in key order.
func Obj(fields map[string]Pattern) *Object {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	o := &Object{fields: make([]Field, 0, len(keys))}
	for _, k := range keys {
		o.fields = append(o.fields, Field{Key: k, Pattern: orNil(fields[k])})
	}
	return o
}

// Ordered returns an Object pattern whose fields are evaluated in the order given.
func Ordered(fields ...Field) *Object {
	o := &Object{fields: make([]Field, len(fields))}
	for i, f := range fields {
		o.fields[i] = Field{Key: f.Key, Pattern: orNil(f.Pattern)}
	}
	return o
}

// Fields returns a copy of the object's fields in evaluation order.
func (o *Object) Fields() []Field {
	if o == nil {
		return []Field{}
	}
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

// Len returns the number of fields in the object pattern.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// Arr returns an Array pattern with the given elements.
func Arr(elems ...Pattern) *Array {
	a := &Array{elems: make([]Pattern, len(elems))}
	for i, e := range elems {
		a.elems[i] = orNil(e)
	}
	return a
}

// Elems returns a copy of the array's element patterns.
func (a *Array) Elems() []Pattern {
	if a == nil {
		return []Pattern{}
	}
	out := make([]Pattern, len(a.elems))
	copy(out, a.elems)
	return out
}

// Len returns the number of elements in the array pattern.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// Test wraps a boolean function as a Predicate.
func Test(fn func(v any) bool) Predicate {
	return func(v any) Result {
		return Bool(fn(v))
	}
}

// Any returns a Predicate that matches every value, including nil.
func Any() Predicate {
	return func(any) Result {
		return Matched(nil)
	}
}

// orNil maps a missing sub-pattern to a literal nil so the engine never sees
// a nil Pattern. Typed nils count as missing.
func orNil(p Pattern) Pattern {
	if isNil(p) {
		return Literal{}
	}
	return p
}

func isNil(p Pattern) bool {
	switch p := p.(type) {
	case nil:
		return true
	case Predicate:
		return p == nil
	case *Object:
		return p == nil
	case *Array:
		return p == nil
	}
	return false
}
