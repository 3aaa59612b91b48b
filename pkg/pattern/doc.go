// Package pattern provides structural matching and extraction for nested,
// tree-shaped data such as decoded JSON documents or syntax-tree nodes.
//
// A pattern describes the subset of structure a value must have. Patterns are
// built from four kinds of nodes:
//
//   - Literal: matches a value equal to the literal (numbers compare by value)
//   - Object: every listed key must exist and match; other keys are ignored
//   - Array: the first N elements must match element-wise; extra elements are ignored
//   - Predicate: a function deciding the match, optionally capturing values
//
// Matching walks the pattern and the value in lockstep, stops at the first
// failing node, and never backtracks. Values captured along the way by Extract
// and ExtractAny nodes, or returned by predicates, are collected into the
// Captures of the Result. Each Matches call owns its own Captures, so a pattern
// may be shared freely between goroutines.
//
// Key types:
//
//   - Pattern: a sealed pattern node (Literal, *Object, *Array, Predicate)
//   - Result: either NoMatch or a match carrying Captures
//   - Captures: named values extracted during one successful match
//
// Key functions:
//
//   - Matches / Matcher: match a value now, or build a reusable Predicate
//   - Extract / Named / ExtractAny: capture the value under test by name
//   - MatchesLength / LengthMatcher: array matching that also requires equal length
//   - Compile: build a Pattern from plain Go maps, slices, funcs and literals
package pattern
