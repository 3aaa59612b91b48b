package pattern

// Extractor builds an Extract predicate for a fixed capture name.
type Extractor func(matcher Pattern) Predicate

// Extract returns a Predicate that captures the value under test as name.
//
// A nil matcher, typed or untyped, accepts every value. A Predicate matcher is invoked directly
// and its captures are merged over the name binding. Any other pattern is
// matched with a nested Matches call whose captures are merged the same way.
// If the matcher fails, nothing is captured and the predicate fails.
//
// A Literal matcher is not ignored: Extract(name, Lit(x)) only captures values
// equal to x.
func Extract(name string, matcher Pattern) Predicate {
	if isNil(matcher) {
		matcher = nil
	}
	return func(v any) Result {
		captures := Captures{name: v}

		var r Result
		switch m := matcher.(type) {
		case nil:
			return Matched(captures)
		case Predicate:
			r = m(v)
		default:
			r = Matches(m, v)
		}

		if !r.ok {
			return NoMatch
		}
		captures.merge(r.captures)
		return Matched(captures)
	}
}

// Named returns an Extractor for name, so that Named(name)(matcher) is
// equivalent to Extract(name, matcher).
func Named(name string) Extractor {
	return func(matcher Pattern) Predicate {
		return Extract(name, matcher)
	}
}

// ExtractAny returns a Predicate that matches every value and captures it as name.
func ExtractAny(name string) Predicate {
	return Extract(name, nil)
}
