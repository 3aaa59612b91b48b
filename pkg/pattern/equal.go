package pattern

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Equal is the equality used for Literal patterns.
//
// Numbers compare by value regardless of their Go type, since JSON decoders
// disagree on whether 42 is an int, int64, float64 or json.Number. There is no
// other coercion: "1" != 1 and true != 1. Maps with string keys and slices
// (literal containers, not Object or Array patterns) are equal when they have
// the same keys or length and equal members.
//
// Two integers compare exactly, whatever their width or signedness. Only a
// pair with a float on one side is compared as float64.
func Equal(literal, actual any) bool {
	if literal == nil || actual == nil {
		return literal == nil && actual == nil
	}

	ln, lok := toNumber(literal)
	an, aok := toNumber(actual)
	if lok || aok {
		return lok && aok && ln.equal(an)
	}

	switch l := literal.(type) {
	case string:
		a, ok := actual.(string)
		return ok && l == a
	case bool:
		a, ok := actual.(bool)
		return ok && l == a
	}

	lv, av := reflect.ValueOf(literal), reflect.ValueOf(actual)
	if lv.Kind() == reflect.Map && av.Kind() == reflect.Map &&
		lv.Type().Key().Kind() == reflect.String && av.Type().Key().Kind() == reflect.String {
		return equalMaps(lv, av)
	}
	if isList(lv) && isList(av) {
		return equalLists(lv, av)
	}

	if lv.Type() != av.Type() {
		return false
	}
	if lv.Type().Comparable() {
		return literal == actual
	}
	return reflect.DeepEqual(literal, actual)
}

func equalMaps(l, a reflect.Value) bool {
	if l.Len() != a.Len() {
		return false
	}
	aKey := a.Type().Key()
	iter := l.MapRange()
	for iter.Next() {
		av := a.MapIndex(reflect.ValueOf(iter.Key().String()).Convert(aKey))
		if !av.IsValid() || !Equal(iter.Value().Interface(), av.Interface()) {
			return false
		}
	}
	return true
}

func equalLists(l, a reflect.Value) bool {
	if l.Len() != a.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !Equal(l.Index(i).Interface(), a.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// isList reports whether v is a slice or array other than a byte string.
func isList(v reflect.Value) bool {
	k := v.Kind()
	return (k == reflect.Slice || k == reflect.Array) && v.Type().Elem().Kind() != reflect.Uint8
}

type numberKind uint8

const (
	signedNumber numberKind = iota
	unsignedNumber
	floatNumber
)

// number holds a decoded numeric value in the widest type of its kind.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func (n number) equal(o number) bool {
	if n.kind > o.kind {
		n, o = o, n
	}
	switch {
	case n.kind == signedNumber && o.kind == signedNumber:
		return n.i == o.i
	case n.kind == unsignedNumber && o.kind == unsignedNumber:
		return n.u == o.u
	case n.kind == signedNumber && o.kind == unsignedNumber:
		return n.i >= 0 && uint64(n.i) == o.u
	case n.kind == signedNumber:
		return o.f >= math.MinInt64 && o.f < math.MaxInt64 && o.f == math.Trunc(o.f) && int64(o.f) == n.i
	case n.kind == unsignedNumber:
		return o.f >= 0 && o.f < math.MaxUint64 && o.f == math.Trunc(o.f) && uint64(o.f) == n.u
	default:
		return n.f == o.f
	}
}

// toNumber attempts to classify a numeric value.
func toNumber(v any) (number, bool) {
	switch n := v.(type) {
	case float64:
		return number{kind: floatNumber, f: n}, true
	case float32:
		return number{kind: floatNumber, f: float64(n)}, true
	case int:
		return number{kind: signedNumber, i: int64(n)}, true
	case int64:
		return number{kind: signedNumber, i: n}, true
	case int32:
		return number{kind: signedNumber, i: int64(n)}, true
	case int16:
		return number{kind: signedNumber, i: int64(n)}, true
	case int8:
		return number{kind: signedNumber, i: int64(n)}, true
	case uint:
		return number{kind: unsignedNumber, u: uint64(n)}, true
	case uint64:
		return number{kind: unsignedNumber, u: n}, true
	case uint32:
		return number{kind: unsignedNumber, u: uint64(n)}, true
	case uint16:
		return number{kind: unsignedNumber, u: uint64(n)}, true
	case uint8:
		return number{kind: unsignedNumber, u: uint64(n)}, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return number{kind: signedNumber, i: i}, true
		}
		if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
			return number{kind: unsignedNumber, u: u}, true
		}
		f, err := n.Float64()
		return number{kind: floatNumber, f: f}, err == nil
	default:
		return number{}, false
	}
}
