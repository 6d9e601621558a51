// Package schemavalidate implements the default Schema Validator Adapter:
// a JSON-Schema-subset instance validator over document.Schema, with a
// pluggable registry of custom string-format predicates.
//
// The core's JSON Schema engine itself is treated as an external
// collaborator (see the "Schema validator" interface), but this package is
// the *default* adapter: it implements the subset directly rather than
// wrapping a general-purpose JSON Schema library, because validating an
// arbitrary Go value tree against a dynamic *document.Schema is a poor fit
// for the schema-generation-from-struct-tags libraries in the surrounding
// ecosystem.
package schemavalidate

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/internal/issues"
	"github.com/oas2toolkit/oas2/internal/severity"
)

// FormatFunc reports whether s satisfies a named string format.
type FormatFunc func(s string) bool

// Validator validates values against document.Schema trees. The zero value
// is not usable; construct with New.
type Validator struct {
	formats      map[string]FormatFunc
	patternCache sync.Map // pattern string -> *regexp.Regexp
	structVal    *validator.Validate
}

// Option configures a Validator at construction.
type Option func(*Validator)

// WithFormat registers (or overrides) a custom format predicate.
func WithFormat(name string, fn FormatFunc) Option {
	return func(v *Validator) { v.formats[name] = fn }
}

// New builds a Validator with the built-in formats ("email", "uri",
// "uri-reference", "uuid", "date", "date-time") registered, plus any
// additional formats supplied via WithFormat.
func New(opts ...Option) *Validator {
	sv := validator.New()
	v := &Validator{
		formats:   make(map[string]FormatFunc, 8),
		structVal: sv,
	}
	v.formats["email"] = func(s string) bool { return sv.Var(s, "email") == nil }
	v.formats["uri"] = func(s string) bool { return sv.Var(s, "uri") == nil }
	v.formats["uri-reference"] = v.formats["uri"]
	v.formats["uuid"] = func(s string) bool { _, err := uuid.Parse(s); return err == nil }
	v.formats["date"] = isValidDate
	v.formats["date-time"] = isValidDateTime

	for _, opt := range opts {
		opt(v)
	}
	return v
}

// RegisterFormat registers a custom format predicate after construction.
func (v *Validator) RegisterFormat(name string, fn FormatFunc) {
	v.formats[name] = fn
}

// Validate validates value against schema, returning every issue found in
// a deterministic order: required properties in declaration order, then
// property and additional-property issues sorted by property name. A nil
// schema always validates.
func (v *Validator) Validate(schema *document.Schema, value any, path string) []issues.Issue {
	if schema == nil {
		return nil
	}

	var out []issues.Issue

	typeErrs := v.validateType(value, schema, path)
	out = append(out, typeErrs...)
	if len(typeErrs) > 0 {
		return out
	}

	switch d := value.(type) {
	case string:
		out = append(out, v.validateString(d, schema, path)...)
	case int64:
		out = append(out, v.validateNumber(float64(d), schema, path)...)
	case float64:
		out = append(out, v.validateNumber(d, schema, path)...)
	case bool:
		// no additional constraints
	case []any:
		out = append(out, v.validateArray(d, schema, path)...)
	case map[string]any:
		out = append(out, v.validateObject(d, schema, path)...)
	}

	if len(schema.Enum) > 0 {
		out = append(out, v.validateEnum(value, schema, path)...)
	}

	out = append(out, v.validateComposition(value, schema, path)...)

	return out
}

func (v *Validator) validateType(value any, schema *document.Schema, path string) []issues.Issue {
	want := schemaTypes(schema)
	if len(want) == 0 {
		return nil
	}
	got := goType(value)
	for _, t := range want {
		if typeMatches(got, t) {
			return nil
		}
	}
	return []issues.Issue{{
		Code:     "INVALID_TYPE",
		Path:     path,
		Message:  fmt.Sprintf("Expected type %s but found type %s", strings.Join(want, " or "), got),
		Severity: severity.SeverityError,
	}}
}

func (v *Validator) validateString(s string, schema *document.Schema, path string) []issues.Issue {
	var out []issues.Issue

	if schema.MinLength != nil && len(s) < *schema.MinLength {
		out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
			Message: fmt.Sprintf("string length %d is less than minimum %d", len(s), *schema.MinLength), Severity: severity.SeverityError})
	}
	if schema.MaxLength != nil && len(s) > *schema.MaxLength {
		out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
			Message: fmt.Sprintf("string length %d exceeds maximum %d", len(s), *schema.MaxLength), Severity: severity.SeverityError})
	}
	if schema.Pattern != "" {
		matched, err := v.matchPattern(schema.Pattern, s)
		if err != nil {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("invalid pattern %q: %v", schema.Pattern, err), Severity: severity.SeverityError})
		} else if !matched {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("string does not match pattern %q", schema.Pattern), Severity: severity.SeverityError})
		}
	}
	if schema.Format != "" {
		if fn, ok := v.formats[schema.Format]; ok && !fn(s) {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("value does not satisfy format %q", schema.Format), Severity: severity.SeverityWarning})
		}
	}
	return out
}

func (v *Validator) validateNumber(n float64, schema *document.Schema, path string) []issues.Issue {
	var out []issues.Issue

	if schema.Minimum != nil {
		if schema.ExclusiveMinimum && n <= *schema.Minimum {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("value %v must be greater than %v", n, *schema.Minimum), Severity: severity.SeverityError})
		} else if !schema.ExclusiveMinimum && n < *schema.Minimum {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("value %v is less than minimum %v", n, *schema.Minimum), Severity: severity.SeverityError})
		}
	}
	if schema.Maximum != nil {
		if schema.ExclusiveMaximum && n >= *schema.Maximum {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("value %v must be less than %v", n, *schema.Maximum), Severity: severity.SeverityError})
		} else if !schema.ExclusiveMaximum && n > *schema.Maximum {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("value %v exceeds maximum %v", n, *schema.Maximum), Severity: severity.SeverityError})
		}
	}
	if schema.MultipleOf != nil && *schema.MultipleOf != 0 {
		remainder := n / *schema.MultipleOf
		if remainder != float64(int64(remainder)) {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("value %v is not a multiple of %v", n, *schema.MultipleOf), Severity: severity.SeverityError})
		}
	}
	return out
}

func (v *Validator) validateArray(arr []any, schema *document.Schema, path string) []issues.Issue {
	var out []issues.Issue

	if schema.MinItems != nil && len(arr) < *schema.MinItems {
		out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
			Message: fmt.Sprintf("array has %d items, minimum is %d", len(arr), *schema.MinItems), Severity: severity.SeverityError})
	}
	if schema.MaxItems != nil && len(arr) > *schema.MaxItems {
		out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
			Message: fmt.Sprintf("array has %d items, maximum is %d", len(arr), *schema.MaxItems), Severity: severity.SeverityError})
	}
	if schema.UniqueItems && hasDuplicates(arr) {
		out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
			Message: "array items must be unique", Severity: severity.SeverityError})
	}
	if schema.Items != nil {
		for i, item := range arr {
			out = append(out, v.Validate(schema.Items, item, fmt.Sprintf("%s[%d]", path, i))...)
		}
	}
	return out
}

func (v *Validator) validateObject(obj map[string]any, schema *document.Schema, path string) []issues.Issue {
	var out []issues.Issue

	for _, req := range schema.Required {
		if _, ok := obj[req]; !ok {
			out = append(out, issues.Issue{
				Code:     "OBJECT_MISSING_REQUIRED_PROPERTY",
				Path:     joinPath(path, req),
				Message:  fmt.Sprintf("Missing required property: %s", req),
				Severity: severity.SeverityError,
			})
		}
	}
	if schema.MinProperties != nil && len(obj) < *schema.MinProperties {
		out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
			Message: fmt.Sprintf("object has %d properties, minimum is %d", len(obj), *schema.MinProperties), Severity: severity.SeverityError})
	}
	if schema.MaxProperties != nil && len(obj) > *schema.MaxProperties {
		out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
			Message: fmt.Sprintf("object has %d properties, maximum is %d", len(obj), *schema.MaxProperties), Severity: severity.SeverityError})
	}
	propNames := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		propNames = append(propNames, name)
	}
	sort.Strings(propNames)
	for _, name := range propNames {
		value, present := obj[name]
		if !present {
			continue
		}
		out = append(out, v.Validate(schema.Properties[name], value, joinPath(path, name))...)
	}
	if allowed, ok := schema.AdditionalProperties.(bool); ok && !allowed {
		var extra []string
		for name := range obj {
			if _, defined := schema.Properties[name]; !defined {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
		for _, name := range extra {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: joinPath(path, name),
				Message: fmt.Sprintf("additional property %q is not allowed", name), Severity: severity.SeverityError})
		}
	}
	return out
}

func (v *Validator) validateEnum(value any, schema *document.Schema, path string) []issues.Issue {
	for _, allowed := range schema.Enum {
		if reflect.DeepEqual(value, allowed) {
			return nil
		}
	}
	return []issues.Issue{{
		Code:     "INVALID_TYPE",
		Path:     path,
		Message:  fmt.Sprintf("value %v is not one of the allowed values", value),
		Severity: severity.SeverityError,
	}}
}

func (v *Validator) validateComposition(value any, schema *document.Schema, path string) []issues.Issue {
	var out []issues.Issue

	for i, sub := range schema.AllOf {
		if subErrs := v.Validate(sub, value, path); len(subErrs) > 0 {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("allOf[%d] validation failed", i), Severity: severity.SeverityError})
			out = append(out, subErrs...)
		}
	}

	if len(schema.AnyOf) > 0 {
		matched := false
		for _, sub := range schema.AnyOf {
			if len(v.Validate(sub, value, path)) == 0 {
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: "value does not match any of the anyOf schemas", Severity: severity.SeverityError})
		}
	}

	if len(schema.OneOf) > 0 {
		matches := 0
		for _, sub := range schema.OneOf {
			if len(v.Validate(sub, value, path)) == 0 {
				matches++
			}
		}
		if matches == 0 {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: "value does not match any of the oneOf schemas", Severity: severity.SeverityError})
		} else if matches > 1 {
			out = append(out, issues.Issue{Code: "INVALID_TYPE", Path: path,
				Message: fmt.Sprintf("value matches %d oneOf schemas, expected exactly 1", matches), Severity: severity.SeverityError})
		}
	}

	return out
}

const maxPatternCacheSize = 1000

func (v *Validator) matchPattern(pattern, s string) (bool, error) {
	if cached, ok := v.patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp).MatchString(s), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, err
	}
	var count int
	v.patternCache.Range(func(_, _ any) bool { count++; return true })
	if count >= maxPatternCacheSize {
		v.patternCache.Range(func(key, _ any) bool { v.patternCache.Delete(key); return true })
	}
	v.patternCache.Store(pattern, re)
	return re.MatchString(s), nil
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

func schemaTypes(schema *document.Schema) []string {
	switch t := schema.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func goType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case int, int32, int64:
		return "integer"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

func typeMatches(got, want string) bool {
	if got == want {
		return true
	}
	if want == "number" && got == "integer" {
		return true
	}
	if want == "integer" && got == "number" {
		return true
	}
	return false
}

func hasDuplicates(arr []any) bool {
	seen := make(map[string]bool, len(arr))
	for _, item := range arr {
		key := fmt.Sprintf("%T:%v", item, item)
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}

var (
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
)

func isValidDate(s string) bool     { return dateRegex.MatchString(s) }
func isValidDateTime(s string) bool { return dateTimeRegex.MatchString(s) }
