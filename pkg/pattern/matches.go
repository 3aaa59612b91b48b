package pattern

// Matches matches v against p. It returns the captures of the match, or
// NoMatch. Panics raised by predicates inside p are not recovered.
func Matches(p Pattern, v any) Result {
	s := &matchState{captures: Captures{}}
	if !s.match(orNil(p), v) {
		return NoMatch
	}
	return Matched(s.captures)
}

// Matcher returns a Predicate that matches its argument against p.
// The predicate can be called directly or used as a node of another pattern.
func Matcher(p Pattern) Predicate {
	p = orNil(p)
	return func(v any) Result {
		return Matches(p, v)
	}
}
