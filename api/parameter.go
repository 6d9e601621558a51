package api

import (
	"fmt"
	"time"

	"github.com/oas2toolkit/oas2/coerce"
	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/internal/issues"
	"github.com/oas2toolkit/oas2/internal/severity"
	"github.com/oas2toolkit/oas2/sample"
)

// Parameter represents one declared operation parameter, merged per the
// path/operation precedence rule (see Operation.Parameters).
type Parameter struct {
	doc       *document.Parameter
	operation *Operation
}

// Name returns the parameter's name.
func (p *Parameter) Name() string { return p.doc.Name }

// In returns the parameter's location: "body", "formData", "query",
// "header", or "path".
func (p *Parameter) In() string { return p.doc.In }

// Required reports whether the parameter is mandatory.
func (p *Parameter) Required() bool { return p.doc.Required }

// Schema returns the effective JSON Schema for this parameter's value.
func (p *Parameter) Schema() *document.Schema { return p.doc.EffectiveSchema() }

// Definition returns the raw, unresolved parameter tree this Parameter was
// built from.
func (p *Parameter) Definition() *document.Parameter { return p.doc }

// Sample returns a plausible example value for this parameter, per its
// schema's example/default or a type-appropriate placeholder.
func (p *Parameter) Sample() any { return sample.Value(p.Schema()) }

// ParameterValue is the per-request outcome of resolving and validating one
// Parameter: its raw wire value, coerced value, and any errors/warnings.
// Never stored; produced fresh for each request.
type ParameterValue struct {
	Parameter *Parameter
	HasRaw    bool
	Raw       any
	Value     any
	Errors    []issues.Issue
	Warnings  []issues.Issue
}

// Valid reports whether this value has no errors.
func (pv ParameterValue) Valid() bool { return len(pv.Errors) == 0 }

// Value resolves this parameter's raw wire value from req, coerces it, and
// (when required or present) validates it against its schema. A formData
// file is passed through as the reader from req.File; only its absence is
// checked against the schema (when required), not its content.
func (p *Parameter) Value(req Request) ParameterValue {
	switch p.doc.In {
	case "path":
		return p.valuePath(req)
	case "query":
		return p.valueQuery(req)
	case "header":
		return p.valueHeader(req)
	case "formData":
		return p.valueFormData(req)
	case "body":
		return p.valueBody(req)
	default:
		return ParameterValue{Parameter: p}
	}
}

func (p *Parameter) valuePath(req Request) ParameterValue {
	names := p.operation.path.matcher.ParamNames()
	idx := -1
	for i, n := range names {
		if n == p.doc.Name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ParameterValue{Parameter: p}
	}
	captures, ok := p.operation.path.matcher.Exec(req.URL())
	if !ok || idx >= len(captures) {
		return ParameterValue{Parameter: p}
	}
	return p.coerceAndValidate(captures[idx], true, p.doc.Name)
}

func (p *Parameter) valueQuery(req Request) ParameterValue {
	q := req.Query()
	if p.doc.CollectionFormat == "multi" && schemaTypeIsArray(p.Schema()) {
		items, ok := q[p.doc.Name]
		if !ok || len(items) == 0 {
			return p.coerceAndValidate("", false, p.doc.Name)
		}
		return p.coerceArrayAndValidate(items, p.doc.Name)
	}
	raw, ok := q[p.doc.Name]
	if !ok || len(raw) == 0 {
		return p.coerceAndValidate("", false, p.doc.Name)
	}
	return p.coerceAndValidate(raw[0], true, p.doc.Name)
}

func (p *Parameter) valueHeader(req Request) ParameterValue {
	raw := req.Header(p.doc.Name)
	return p.coerceAndValidate(raw, raw != "", p.doc.Name)
}

func (p *Parameter) valueFormData(req Request) ParameterValue {
	if p.doc.Type == "file" {
		reader, ok := req.File(p.doc.Name)
		pv := ParameterValue{Parameter: p, Raw: reader, Value: reader, HasRaw: ok}
		if !ok && p.doc.Required {
			classify(&pv, p.operation.api.validator.Validate(p.Schema(), nil, p.doc.Name))
		}
		return pv
	}
	body, _ := req.Body().(map[string]any)
	if body == nil {
		return p.coerceAndValidate("", false, p.doc.Name)
	}
	v, present := body[p.doc.Name]
	if !present {
		return p.coerceAndValidate("", false, p.doc.Name)
	}
	if items, ok := v.([]string); ok {
		return p.coerceArrayAndValidate(items, p.doc.Name)
	}
	raw := fmt.Sprintf("%v", v)
	return p.coerceAndValidate(raw, true, p.doc.Name)
}

func (p *Parameter) valueBody(req Request) ParameterValue {
	raw := req.Body()
	pv := ParameterValue{Parameter: p, Raw: raw, Value: raw, HasRaw: raw != nil}
	if !p.doc.Required && raw == nil {
		return pv
	}
	schemaIssues := p.operation.api.validator.Validate(p.Schema(), raw, "")
	classify(&pv, schemaIssues)
	return pv
}

// coerceAndValidate runs the Value Coercer over a single raw wire string,
// then (when required or present) the Schema Validator Adapter over the
// coerced result.
func (p *Parameter) coerceAndValidate(raw string, hasRaw bool, path string) ParameterValue {
	schema := p.Schema()
	coerced, issue := coerce.Value(schema, raw, hasRaw, path)
	pv := ParameterValue{Parameter: p, Raw: raw, HasRaw: hasRaw, Value: coerced}
	if issue != nil {
		pv.Errors = append(pv.Errors, *issue)
		return pv
	}
	if !p.doc.Required && !hasRaw {
		return pv
	}
	validationValue := coerced
	if t, ok := coerced.(time.Time); ok {
		validationValue = formatTimeForValidation(t, schema.Format)
	}
	schemaIssues := p.operation.api.validator.Validate(schema, validationValue, path)
	classify(&pv, schemaIssues)
	return pv
}

func (p *Parameter) coerceArrayAndValidate(rawItems []string, path string) ParameterValue {
	schema := p.Schema()
	coerced, issue := coerce.Array(schema, rawItems, path)
	pv := ParameterValue{Parameter: p, Raw: rawItems, HasRaw: true, Value: coerced}
	if issue != nil {
		pv.Errors = append(pv.Errors, *issue)
		return pv
	}
	schemaIssues := p.operation.api.validator.Validate(schema, coerced, path)
	classify(&pv, schemaIssues)
	return pv
}

func classify(pv *ParameterValue, schemaIssues []issues.Issue) {
	for _, issue := range schemaIssues {
		if issue.Severity == severity.SeverityWarning {
			pv.Warnings = append(pv.Warnings, issue)
		} else {
			pv.Errors = append(pv.Errors, issue)
		}
	}
}

func formatTimeForValidation(t time.Time, format string) string {
	if format == "date" {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

func schemaTypeIsArray(schema *document.Schema) bool {
	if s, ok := schema.Type.(string); ok {
		return s == "array"
	}
	return false
}
