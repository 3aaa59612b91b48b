// Package catalog loads named patterns from YAML or JSON documents.
//
// A catalog document lists patterns by name:
//
//	patterns:
//	  - name: stringLiteral
//	    description: a string literal node
//	    pattern:
//	      type: Literal
//	      value: {$type: string}
//	  - name: require
//	    pattern:
//	      type: VariableDeclaration
//	      kind: var
//	      declarations: {$length: [{$ref: requireDeclarator}]}
//
// Mappings become object patterns (fields are evaluated in document order),
// sequences become array patterns and scalars become literals. A mapping with
// keys starting with "$" is a directive:
//
//   - $extract: name, with optional $match: capture the value
//   - $length: [...]: array pattern that also requires equal length
//   - $any: true: match anything
//   - $literal: value: compare against value as-is, even if it is a mapping
//   - $ref: name: another pattern of the same catalog
//   - $type: string|number|boolean|null|object|array: JSON type check
//   - $expr: expression: expr-lang predicate with the value bound to v
//   - $path: JSONPath, with optional $match: match the first selected node
//   - $schema: {...}: JSON Schema (draft 2020-12) validation
//
// Files are detected by extension: .yaml and .yml are YAML, anything else JSON.
package catalog
