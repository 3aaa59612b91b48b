package pattern

// MatchesLength is Matches for array patterns that also requires v to have
// exactly as many elements as p. The length is checked before any element
// is matched. A nil p is the empty array pattern.
func MatchesLength(p *Array, v any) Result {
	if p == nil {
		p = Arr()
	}
	n, _, ok := arrayAccess(v)
	if !ok || n != p.Len() {
		return NoMatch
	}
	return Matches(p, v)
}

// LengthMatcher returns a Predicate applying MatchesLength with p.
func LengthMatcher(p *Array) Predicate {
	return func(v any) Result {
		return MatchesLength(p, v)
	}
}
