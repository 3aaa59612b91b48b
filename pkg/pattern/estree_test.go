package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Patterns over ESTree nodes, the syntax tree produced by JavaScript parsers.
var (
	isStringLiteral = Matcher(MustCompile(map[string]any{
		"type":  "Literal",
		"value": isString,
	}))

	// <local> = require(<source>)
	isRequireDeclarator = Matcher(MustCompile(map[string]any{
		"type": "VariableDeclarator",
		"id":   Extract("local", Obj(map[string]Pattern{"type": Lit("Identifier")})),
		"init": map[string]any{
			"type": "CallExpression",
			"callee": map[string]any{
				"type": "Identifier",
				"name": "require",
			},
			"arguments": LengthMatcher(Arr(Extract("source", isStringLiteral))),
		},
	}))

	// var <local> = require(<source>)
	isRequire = Matcher(MustCompile(map[string]any{
		"type":         "VariableDeclaration",
		"declarations": LengthMatcher(Arr(isRequireDeclarator)),
		"kind":         "var",
	}))
)

func requireDeclaration(kind string, declarators ...any) map[string]any {
	return map[string]any{
		"type":         "VariableDeclaration",
		"kind":         kind,
		"declarations": declarators,
	}
}

func requireDeclarator(local, source string) map[string]any {
	return map[string]any{
		"type": "VariableDeclarator",
		"id": map[string]any{
			"type": "Identifier",
			"name": local,
		},
		"init": map[string]any{
			"type": "CallExpression",
			"callee": map[string]any{
				"type": "Identifier",
				"name": "require",
			},
			"arguments": []any{
				map[string]any{
					"type":  "Literal",
					"value": source,
					"raw":   `"` + source + `"`,
				},
			},
		},
	}
}

func TestESTree_StringLiteral(t *testing.T) {
	assert.False(t, isStringLiteral(map[string]any{}).OK())
	assert.False(t, isStringLiteral(map[string]any{"type": "Literal", "value": 10}).OK())

	r := isStringLiteral(map[string]any{"type": "Literal", "value": "Hello, world!"})
	require.True(t, r.OK())
	assert.Equal(t, Captures{}, r.Captures())
}

func TestESTree_RequireDeclaration(t *testing.T) {
	r := isRequire(requireDeclaration("var", requireDeclarator("foo", "./foo.js")))

	require.True(t, r.OK())
	assert.Equal(t, Captures{
		"local": map[string]any{
			"type": "Identifier",
			"name": "foo",
		},
		"source": map[string]any{
			"type":  "Literal",
			"value": "./foo.js",
			"raw":   `"./foo.js"`,
		},
	}, r.Captures())
}

func TestESTree_RequireDeclarationMismatches(t *testing.T) {
	twoArgs := requireDeclarator("foo", "./foo.js")
	args := twoArgs["init"].(map[string]any)["arguments"].([]any)
	twoArgs["init"].(map[string]any)["arguments"] = append(args, map[string]any{"type": "Literal", "value": "x"})

	numericSource := requireDeclarator("foo", "./foo.js")
	numericSource["init"].(map[string]any)["arguments"].([]any)[0].(map[string]any)["value"] = 42

	tests := []struct {
		name  string
		value any
	}{
		{name: "let instead of var", value: requireDeclaration("let", requireDeclarator("foo", "./foo.js"))},
		{name: "two declarators", value: requireDeclaration("var", requireDeclarator("foo", "./foo.js"), requireDeclarator("bar", "./bar.js"))},
		{name: "no declarators", value: requireDeclaration("var")},
		{name: "two require arguments", value: requireDeclaration("var", twoArgs)},
		{name: "non-string source", value: requireDeclaration("var", numericSource)},
		{name: "not a declaration", value: map[string]any{"type": "ExpressionStatement"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := isRequire(tt.value)
			assert.False(t, r.OK())
			assert.Nil(t, r.Captures())
		})
	}
}
