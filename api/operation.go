package api

import (
	"fmt"

	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/negotiate"
	"github.com/oas2toolkit/oas2/sample"
)

// Operation represents a single (path, method) operation: its merged
// parameters, responses, and effective consumes/produces/security.
type Operation struct {
	api    *API
	path   *Path
	method string
	ptr    string
	doc    *document.Operation

	parameters []*Parameter
	responses  map[string]*Response

	effectiveConsumes []string
	effectiveProduces []string
	effectiveSecurity []document.SecurityRequirement
	securityDefs      map[string]*document.SecurityScheme
}

// Method returns the lowercase HTTP method.
func (o *Operation) Method() string { return o.method }

// Ptr returns the JSON Pointer to this operation's document location.
func (o *Operation) Ptr() string { return o.ptr }

// Path returns the owning Path.
func (o *Operation) Path() *Path { return o.path }

// Parameters returns the operation's merged parameter list: path-level
// parameters followed by operation-level parameters, deduplicated on
// (name, in) with operation-level precedence, in declaration order.
func (o *Operation) Parameters() []*Parameter { return o.parameters }

// Consumes returns the operation's effective consumes list.
func (o *Operation) Consumes() []string { return o.effectiveConsumes }

// Produces returns the operation's effective produces list.
func (o *Operation) Produces() []string { return o.effectiveProduces }

// Security returns the operation's effective security requirements.
func (o *Operation) Security() []document.SecurityRequirement { return o.effectiveSecurity }

// SecurityDefinitions returns the subset of document-level security
// definitions referenced by this operation's effective security
// requirements.
func (o *Operation) SecurityDefinitions() map[string]*document.SecurityScheme { return o.securityDefs }

// Response returns the response for code, or the "default" response when
// code is empty or has no exact entry. Returns nil if neither exists.
func (o *Operation) Response(code string) *Response {
	if code != "" {
		if r, ok := o.responses[code]; ok {
			return r
		}
	}
	return o.responses["default"]
}

// Responses returns every declared response, keyed by status code (plus
// "default").
func (o *Operation) Responses() map[string]*Response { return o.responses }

// Definition returns the raw, unresolved operation tree this Operation was
// built from.
func (o *Operation) Definition() *document.Operation { return o.doc }

// Sample returns a plausible example value for this operation's success
// response body (the lowest-numbered 2xx response, falling back to
// "default"). Returns nil if no such response declares a schema.
func (o *Operation) Sample() any {
	resp := o.successResponse()
	if resp == nil || resp.Schema() == nil {
		return nil
	}
	return sample.Value(resp.Schema())
}

func (o *Operation) successResponse() *Response {
	var best string
	for code := range o.responses {
		if len(code) == 3 && code[0] == '2' && (best == "" || code < best) {
			best = code
		}
	}
	if best != "" {
		return o.responses[best]
	}
	return o.responses["default"]
}

func (o *Operation) hasBodyLikeParam() bool {
	for _, p := range o.parameters {
		if p.In() == "body" || p.In() == "formData" {
			return true
		}
	}
	return false
}

// ValidateRequest validates req against this operation's declared
// Content-Type and parameters, per the documented error ordering:
// Content-Type errors first, then parameter errors in declaration order,
// then (within each parameter's envelope) nested schema errors in
// validator order.
func (o *Operation) ValidateRequest(req Request) Result {
	var result Result

	logger := o.api.config.logger

	if !negotiate.SkipRequest(o.effectiveConsumes, o.hasBodyLikeParam()) {
		if issue := negotiate.Check(req.Header("Content-Type"), o.effectiveConsumes); issue != nil {
			logger.Warn("request content-type rejected", "operation", o.ptr, "message", issue.Message)
			result.Errors = append(result.Errors, fromIssue(*issue))
		}
	}

	for _, p := range o.parameters {
		pv := p.Value(req)
		if o.api.config.includeWarnings && len(pv.Warnings) > 0 {
			result.Warnings = append(result.Warnings, fromIssues(pv.Warnings)...)
		}
		if !pv.Valid() {
			logger.Warn("request parameter rejected", "operation", o.ptr, "name", p.Name(), "in", p.In())
			result.Errors = append(result.Errors, ValidationError{
				Code:    InvalidRequestParameter,
				Name:    p.Name(),
				In:      p.In(),
				Message: fmt.Sprintf("Invalid parameter %q", p.Name()),
				Errors:  fromIssues(pv.Errors),
			})
		}
	}

	return result
}

// ValidateResponse resolves the Response for statusCode and delegates to
// its Validate. When no exact or default response is declared, returns a
// single InvalidResponseCode error.
func (o *Operation) ValidateResponse(statusCode string, contentType string, headers map[string]string, body any, encoding string) Result {
	resp := o.Response(statusCode)
	if resp == nil {
		msg := fmt.Sprintf("This operation does not have a defined '%s' or 'default' response code", statusCode)
		if statusCode == "" {
			msg = "This operation does not have a defined 'default' response code"
		}
		return Result{Errors: []ValidationError{{Code: InvalidResponseCode, Message: msg}}}
	}
	return resp.Validate(contentType, headers, body, encoding)
}
