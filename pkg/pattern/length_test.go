package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesLength(t *testing.T) {
	p := Arr(Lit("foo"), Lit("bar"))

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "equal length", value: []any{"foo", "bar"}, want: true},
		{name: "longer array", value: []any{"foo", "bar", "baz"}, want: false},
		{name: "shorter array", value: []any{"foo"}, want: false},
		{name: "equal length wrong element", value: []any{"foo", "baz"}, want: false},
		{name: "typed slice", value: []string{"foo", "bar"}, want: true},
		{name: "not an array", value: map[string]any{"length": 2}, want: false},
		{name: "string of equal length", value: "ab", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesLength(p, tt.value).OK())
		})
	}
}

func TestMatchesLength_LengthCheckedBeforeElements(t *testing.T) {
	called := false
	p := Arr(Test(func(any) bool {
		called = true
		return true
	}))

	assert.False(t, MatchesLength(p, []any{1, 2}).OK())
	assert.False(t, called)
}

func TestLengthMatcher_CapturesElements(t *testing.T) {
	args := LengthMatcher(Arr(ExtractAny("source")))

	r := Matches(Obj(map[string]Pattern{"arguments": args}), map[string]any{
		"arguments": []any{"./foo.js"},
	})
	require.True(t, r.OK())
	assert.Equal(t, Captures{"source": "./foo.js"}, r.Captures())

	r = Matches(Obj(map[string]Pattern{"arguments": args}), map[string]any{
		"arguments": []any{"./foo.js", "extra"},
	})
	assert.False(t, r.OK())
}

func TestMatchesLength_EmptyPattern(t *testing.T) {
	assert.True(t, MatchesLength(Arr(), []any{}).OK())
	assert.False(t, MatchesLength(Arr(), []any{1}).OK())
	assert.True(t, Matches(Arr(), []any{1}).OK())
}

func TestMatchesLength_NilPattern(t *testing.T) {
	assert.True(t, MatchesLength(nil, []any{}).OK())
	assert.False(t, MatchesLength(nil, []any{1}).OK())
	assert.False(t, LengthMatcher(nil)("abc").OK())
	assert.Equal(t, 0, (*Array)(nil).Len())
	assert.Empty(t, (*Array)(nil).Elems())
	assert.Equal(t, 0, (*Object)(nil).Len())
	assert.Empty(t, (*Object)(nil).Fields())
}
