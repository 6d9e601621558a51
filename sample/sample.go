// Package sample implements the Sampler collaborator used by
// Operation.Sample/Parameter.Sample: given a schema, produce a plausible
// example value without performing any I/O or randomness.
package sample

import "github.com/oas2toolkit/oas2/document"

// Value returns schema.Example or schema.Default when present, otherwise a
// type-appropriate placeholder built by recursing into properties/items.
// Returns nil for a nil schema or an unrecognized type.
func Value(schema *document.Schema) any {
	if schema == nil {
		return nil
	}
	if schema.Example != nil {
		return schema.Example
	}
	if schema.Default != nil {
		return schema.Default
	}

	switch typeName(schema) {
	case "string":
		return ""
	case "integer":
		return 0
	case "number":
		return 0.0
	case "boolean":
		return false
	case "array":
		if schema.Items != nil {
			return []any{Value(schema.Items)}
		}
		return []any{}
	case "object":
		obj := make(map[string]any, len(schema.Properties))
		for name, propSchema := range schema.Properties {
			obj[name] = Value(propSchema)
		}
		return obj
	default:
		return nil
	}
}

func typeName(schema *document.Schema) string {
	switch t := schema.Type.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	case []any:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
