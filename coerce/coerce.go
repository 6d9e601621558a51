// Package coerce converts wire string values into typed Go values per a
// Swagger 2.0 parameter or schema's declared type, format, and
// collectionFormat.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/internal/issues"
	"github.com/oas2toolkit/oas2/internal/severity"
)

// invalidType builds the INVALID_TYPE issue used throughout this package.
// The message format matches the one asserted by the path-parameter
// coercion-failure scenario.
func invalidType(path, expected, got string) *issues.Issue {
	return &issues.Issue{
		Code:     "INVALID_TYPE",
		Path:     path,
		Message:  fmt.Sprintf("Expected type %s but found type %s", expected, got),
		Severity: severity.SeverityError,
	}
}

// Value coerces a single raw wire string into a typed value according to
// schema. path is used only to annotate a resulting error. When hasRaw is
// false, schema.Default is returned (nil if the schema has none).
func Value(schema *document.Schema, raw string, hasRaw bool, path string) (any, *issues.Issue) {
	if !hasRaw {
		if schema.Default != nil {
			return schema.Default, nil
		}
		return nil, nil
	}

	switch schemaTypeName(schema) {
	case "integer":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, invalidType(path, "integer", "string")
		}
		return n, nil
	case "number":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, invalidType(path, "number", "string")
		}
		return f, nil
	case "boolean":
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, invalidType(path, "boolean", "string")
		}
	case "string":
		switch schema.Format {
		case "date":
			t, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return nil, invalidType(path, "date", "string")
			}
			return t, nil
		case "date-time":
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, invalidType(path, "date-time", "string")
			}
			return t, nil
		default:
			return raw, nil
		}
	case "array":
		return Array(schema, splitCollection(schema.CollectionFormat, raw), path)
	case "object", "file", "":
		return raw, nil
	default:
		return raw, nil
	}
}

// Array coerces an already-split list of raw wire strings (e.g. from a
// "multi" collectionFormat query parameter, or from Value's own split of a
// csv/ssv/tsv/pipes-delimited string) into a []any of coerced items.
func Array(schema *document.Schema, rawItems []string, path string) (any, *issues.Issue) {
	items := schema.Items
	result := make([]any, 0, len(rawItems))
	for i, raw := range rawItems {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if items == nil {
			result = append(result, raw)
			continue
		}
		v, issue := Value(items, raw, true, itemPath)
		if issue != nil {
			return nil, issue
		}
		result = append(result, v)
	}
	return result, nil
}

// splitCollection splits raw per the delimiter implied by collectionFormat.
// "multi" is handled upstream by the parameter model, which supplies the
// already-split list directly to Array; if it reaches here unsplit we
// treat it as a single-element list.
func splitCollection(collectionFormat, raw string) []string {
	switch collectionFormat {
	case "ssv":
		return strings.Split(raw, " ")
	case "tsv":
		return strings.Split(raw, "\t")
	case "pipes":
		return strings.Split(raw, "|")
	case "multi":
		return []string{raw}
	case "csv", "":
		return strings.Split(raw, ",")
	default:
		return strings.Split(raw, ",")
	}
}

// schemaTypeName extracts the single type name from schema.Type, which may
// be a bare string or (for a schema built programmatically) a []string of
// length 1.
func schemaTypeName(schema *document.Schema) string {
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
