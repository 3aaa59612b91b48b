package pattern

// Captures maps capture names to the values extracted during a match.
// Values are the input values themselves, not copies.
type Captures map[string]any

// Result is the outcome of a match: either NoMatch, or a match carrying the
// captured values. A match without captures is still distinct from NoMatch.
type Result struct {
	captures Captures
	ok       bool
}

// NoMatch is the Result of a failed match.
var NoMatch = Result{}

// Matched returns a successful Result carrying c. A nil c yields empty captures.
func Matched(c Captures) Result {
	if c == nil {
		c = Captures{}
	}
	return Result{captures: c, ok: true}
}

// Bool returns an empty match when ok is true, NoMatch otherwise.
func Bool(ok bool) Result {
	if ok {
		return Matched(nil)
	}
	return NoMatch
}

// OK reports whether the match succeeded.
func (r Result) OK() bool {
	return r.ok
}

// Captures returns the captured values, or nil for NoMatch.
func (r Result) Captures() Captures {
	if !r.ok {
		return nil
	}
	return r.captures
}

// Get returns the value captured under name.
func (r Result) Get(name string) (any, bool) {
	if !r.ok {
		return nil, false
	}
	v, ok := r.captures[name]
	return v, ok
}

// merge copies src into c; later writes win.
func (c Captures) merge(src Captures) {
	for k, v := range src {
		c[k] = v
	}
}
