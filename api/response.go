package api

import (
	"fmt"
	"strings"

	"github.com/oas2toolkit/oas2/coerce"
	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/internal/issues"
	"github.com/oas2toolkit/oas2/internal/severity"
	"github.com/oas2toolkit/oas2/negotiate"
)

// Response represents one declared response of an Operation (keyed by
// status code, or "default").
type Response struct {
	operation  *Operation
	statusCode string
	doc        *document.Response
}

// StatusCode returns the status code this response is keyed under
// ("default" for the fallback entry).
func (r *Response) StatusCode() string { return r.statusCode }

// Schema returns the response body schema, or nil if none is declared.
func (r *Response) Schema() *document.Schema { return r.doc.Schema }

// Definition returns the raw, unresolved response tree this Response was
// built from.
func (r *Response) Definition() *document.Response { return r.doc }

// Validate validates contentType/headers/body against this response's
// declared content-type, header schemas, and body schema, in that order.
// encoding is currently unused by the default coercer (reserved for a
// future content-negotiation-aware body decoder) but threaded through to
// match the documented external interface.
func (r *Response) Validate(contentType string, headers map[string]string, body any, encoding string) Result {
	var result Result

	op := r.operation
	logger := op.api.config.logger
	includeWarnings := op.api.config.includeWarnings

	if !negotiate.SkipResponse(r.doc.Schema != nil, r.statusCode) {
		if issue := negotiate.Check(contentType, op.effectiveProduces); issue != nil {
			logger.Warn("response content-type rejected", "operation", op.ptr, "statusCode", r.statusCode, "message", issue.Message)
			result.Errors = append(result.Errors, fromIssue(*issue))
		}
	}

	for name, schema := range r.doc.Headers {
		raw, has := lookupHeader(headers, name)
		if !has {
			if def, ok := r.doc.HeaderDefaults[name]; ok {
				raw = fmt.Sprintf("%v", def)
				has = true
			}
		}
		coerced, issue := coerce.Value(schema, raw, has, name)
		if issue != nil {
			result.Errors = append(result.Errors, envelopeHeader(name, []issues.Issue{*issue}))
			continue
		}
		if !has {
			continue
		}
		schemaIssues := op.api.validator.Validate(schema, coerced, name)
		if len(schemaIssues) > 0 {
			errs, warns := splitIssues(schemaIssues)
			if len(errs) > 0 {
				result.Errors = append(result.Errors, envelopeHeader(name, errs))
			}
			if includeWarnings {
				result.Warnings = append(result.Warnings, fromIssues(warns)...)
			}
		}
	}

	if r.doc.Schema != nil && r.statusCode != "204" && r.statusCode != "304" {
		schemaIssues := op.api.validator.Validate(r.doc.Schema, body, "")
		errs, warns := splitIssues(schemaIssues)
		if len(errs) > 0 {
			logger.Warn("response body rejected", "operation", op.ptr, "statusCode", r.statusCode)
			result.Errors = append(result.Errors, ValidationError{
				Code:    InvalidResponseBody,
				Message: "Response body does not match the declared schema",
				Errors:  fromIssues(errs),
			})
		}
		if includeWarnings {
			result.Warnings = append(result.Warnings, fromIssues(warns)...)
		}
	}

	return result
}

func envelopeHeader(name string, nested []issues.Issue) ValidationError {
	return ValidationError{
		Code:    InvalidResponseHeader,
		Name:    name,
		Message: fmt.Sprintf("Invalid header %q", name),
		Errors:  fromIssues(nested),
	}
}

func splitIssues(in []issues.Issue) (errs, warns []issues.Issue) {
	for _, i := range in {
		if i.Severity == severity.SeverityWarning {
			warns = append(warns, i)
		} else {
			errs = append(errs, i)
		}
	}
	return
}

// lookupHeader performs case-insensitive, then exact, lookup of name in
// headers.
func lookupHeader(headers map[string]string, name string) (string, bool) {
	lower := strings.ToLower(name)
	for k, v := range headers {
		if strings.ToLower(k) == lower {
			return v, true
		}
	}
	v, ok := headers[name]
	return v, ok
}
