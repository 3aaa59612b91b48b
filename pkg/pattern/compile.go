package pattern

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Errors returned by Compile.
var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrCyclicPattern  = errors.New("cyclic pattern")
)

// Compile builds a Pattern from plain Go values, so patterns can be written
// as ordinary map and slice literals:
//
//   - Pattern values are used as they are
//   - maps with string keys become Object patterns (fields in key order)
//   - slices and arrays (except byte slices) become Array patterns
//   - func(any) bool becomes a Test predicate
//   - func(any) Result becomes a Predicate
//   - func(any) Captures becomes a predicate that always matches with those captures
//   - anything else, including nil, becomes a Literal
//
// Nil funcs and typed-nil patterns compile to Literal{}, like an untyped nil.
//
// Compile fails with ErrCyclicPattern if a map or slice contains itself, and
// with ErrInvalidPattern for maps with non-string keys and unsupported funcs.
func Compile(raw any) (Pattern, error) {
	c := &compiler{active: make(map[visitKey]bool)}
	return c.compile(raw, "$")
}

// MustCompile is like Compile but panics if raw cannot be compiled.
func MustCompile(raw any) Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// visitKey identifies a map or slice by its backing storage.
type visitKey struct {
	ptr uintptr
	len int
}

type compiler struct {
	// containers on the path from the root to the node being compiled
	active map[visitKey]bool
}

func (c *compiler) compile(raw any, path string) (Pattern, error) {
	switch r := raw.(type) {
	case nil:
		return Literal{}, nil
	case Pattern:
		return orNil(r), nil
	case func(any) bool:
		if r == nil {
			return Literal{}, nil
		}
		return Test(r), nil
	case func(any) Result:
		return orNil(Predicate(r)), nil
	case func(any) Captures:
		if r == nil {
			return Literal{}, nil
		}
		return Predicate(func(v any) Result { return Matched(r(v)) }), nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w at %s: map key type %s is not a string", ErrInvalidPattern, path, rv.Type().Key())
		}
		return c.compileMap(rv, path)

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Literal{Value: raw}, nil
		}
		return c.compileSlice(rv, path)

	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Literal{Value: raw}, nil
		}
		elems := make([]Pattern, rv.Len())
		for i := range elems {
			p, err := c.compile(rv.Index(i).Interface(), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			elems[i] = p
		}
		return &Array{elems: elems}, nil

	case reflect.Func:
		return nil, fmt.Errorf("%w at %s: unsupported func type %s", ErrInvalidPattern, path, rv.Type())

	default:
		return Literal{Value: raw}, nil
	}
}

func (c *compiler) compileMap(rv reflect.Value, path string) (Pattern, error) {
	key := visitKey{ptr: rv.Pointer()}
	if rv.Len() > 0 {
		if c.active[key] {
			return nil, fmt.Errorf("%w at %s", ErrCyclicPattern, path)
		}
		c.active[key] = true
		defer delete(c.active, key)
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	keyType := rv.Type().Key()
	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fv := rv.MapIndex(reflect.ValueOf(k).Convert(keyType))
		p, err := c.compile(fv.Interface(), path+"."+k)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: k, Pattern: p})
	}
	return &Object{fields: fields}, nil
}

func (c *compiler) compileSlice(rv reflect.Value, path string) (Pattern, error) {
	key := visitKey{ptr: rv.Pointer(), len: rv.Len()}
	if rv.Len() > 0 {
		if c.active[key] {
			return nil, fmt.Errorf("%w at %s", ErrCyclicPattern, path)
		}
		c.active[key] = true
		defer delete(c.active, key)
	}

	elems := make([]Pattern, rv.Len())
	for i := range elems {
		p, err := c.compile(rv.Index(i).Interface(), path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		elems[i] = p
	}
	return &Array{elems: elems}, nil
}
