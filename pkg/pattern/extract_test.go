package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		matcher Pattern
		value   any
		want    Captures
	}{
		{
			name:    "nil matcher captures anything",
			matcher: nil,
			value:   5,
			want:    Captures{"x": 5},
		},
		{
			name:    "nil matcher captures nil",
			matcher: nil,
			value:   nil,
			want:    Captures{"x": nil},
		},
		{
			name:    "boolean predicate accepts",
			matcher: Test(isString),
			value:   "foo",
			want:    Captures{"x": "foo"},
		},
		{
			name:    "boolean predicate rejects",
			matcher: Test(isString),
			value:   5,
			want:    nil,
		},
		{
			name: "capturing predicate is merged",
			matcher: Predicate(func(v any) Result {
				return Matched(Captures{"double": v.(int) * 2})
			}),
			value: 4,
			want:  Captures{"x": 4, "double": 8},
		},
		{
			name: "predicate captures override the name binding",
			matcher: Predicate(func(any) Result {
				return Matched(Captures{"x": "replaced"})
			}),
			value: 4,
			want:  Captures{"x": "replaced"},
		},
		{
			name:    "nested object pattern",
			matcher: Obj(map[string]Pattern{"type": Lit("Identifier")}),
			value:   map[string]any{"type": "Identifier", "name": "foo"},
			want:    Captures{"x": map[string]any{"type": "Identifier", "name": "foo"}},
		},
		{
			name:    "nested object pattern fails",
			matcher: Obj(map[string]Pattern{"type": Lit("Identifier")}),
			value:   map[string]any{"type": "Literal"},
			want:    nil,
		},
		{
			name:    "nested captures are merged",
			matcher: Obj(map[string]Pattern{"name": ExtractAny("name")}),
			value:   map[string]any{"name": "foo"},
			want:    Captures{"x": map[string]any{"name": "foo"}, "name": "foo"},
		},
		{
			name:    "literal matcher",
			matcher: Lit("foo"),
			value:   "bar",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Extract("x", tt.matcher)(tt.value)
			if tt.want == nil {
				assert.False(t, r.OK())
				assert.Nil(t, r.Captures())
				return
			}
			require.True(t, r.OK())
			assert.Equal(t, tt.want, r.Captures())
		})
	}
}

func TestExtract_PartialApplication(t *testing.T) {
	local := Named("local")
	isIdentifier := local(Obj(map[string]Pattern{"type": Lit("Identifier")}))

	r := isIdentifier(map[string]any{"type": "Identifier", "name": "foo"})
	require.True(t, r.OK())
	assert.Equal(t, Captures{"local": map[string]any{"type": "Identifier", "name": "foo"}}, r.Captures())

	assert.False(t, isIdentifier(map[string]any{"type": "Literal"}).OK())
}

func TestExtract_NestedCaptureComposition(t *testing.T) {
	p := Obj(map[string]Pattern{
		"id": Extract("local", Obj(map[string]Pattern{"type": Lit("Identifier")})),
	})

	r := Matches(p, map[string]any{
		"id": map[string]any{"type": "Identifier", "name": "foo"},
	})

	require.True(t, r.OK())
	assert.Equal(t, Captures{
		"local": map[string]any{"type": "Identifier", "name": "foo"},
	}, r.Captures())
}

func TestExtract_CapturesAreNotCopied(t *testing.T) {
	node := map[string]any{"type": "Identifier"}

	r := Matches(Obj(map[string]Pattern{"id": ExtractAny("id")}), map[string]any{"id": node})
	require.True(t, r.OK())

	got, ok := r.Get("id")
	require.True(t, ok)
	got.(map[string]any)["seen"] = true
	assert.Equal(t, true, node["seen"])
}

func TestExtract_FailedNestedMatchDiscardsCaptures(t *testing.T) {
	p := Obj(map[string]Pattern{
		"id": Extract("local", Ordered(
			Field{Key: "name", Pattern: ExtractAny("name")},
			Field{Key: "type", Pattern: Lit("Identifier")},
		)),
	})

	r := Matches(p, map[string]any{
		"id": map[string]any{"type": "Literal", "name": "foo"},
	})
	assert.False(t, r.OK())
	assert.Nil(t, r.Captures())
}

func TestExtractAny(t *testing.T) {
	r := ExtractAny("x")(5)
	require.True(t, r.OK())
	assert.Equal(t, Captures{"x": 5}, r.Captures())

	r = ExtractAny("x")(nil)
	require.True(t, r.OK())
	assert.Equal(t, Captures{"x": nil}, r.Captures())
}

func TestExtract_TypedNilMatcherAcceptsEverything(t *testing.T) {
	matchers := map[string]Pattern{
		"predicate": Predicate(nil),
		"object":    (*Object)(nil),
		"array":     (*Array)(nil),
	}

	for name, m := range matchers {
		t.Run(name, func(t *testing.T) {
			r := Extract("x", m)(5)
			require.True(t, r.OK())
			assert.Equal(t, Captures{"x": 5}, r.Captures())
		})
	}
}

func TestExtract_LiteralMatcherMustBeEqual(t *testing.T) {
	r := Extract("kind", Lit("var"))("var")
	require.True(t, r.OK())
	assert.Equal(t, Captures{"kind": "var"}, r.Captures())

	assert.False(t, Extract("kind", Lit("var"))("let").OK())
}
