package api

import "github.com/oas2toolkit/oas2/internal/issues"

// Error codes, part of the public contract.
const (
	InvalidContentType              = "INVALID_CONTENT_TYPE"
	InvalidRequestParameter         = "INVALID_REQUEST_PARAMETER"
	InvalidType                     = "INVALID_TYPE"
	ObjectMissingRequiredProperty   = "OBJECT_MISSING_REQUIRED_PROPERTY"
	InvalidResponseCode             = "INVALID_RESPONSE_CODE"
	InvalidResponseHeader           = "INVALID_RESPONSE_HEADER"
	InvalidResponseBody             = "INVALID_RESPONSE_BODY"
)

// ValidationError is the error record shape returned from ValidateRequest
// and ValidateResponse: {code, message, path}, with envelope errors
// additionally carrying Name, In, and nested Errors.
type ValidationError struct {
	Code    string
	Message string
	Path    string

	// Name and In are set on envelope errors (InvalidRequestParameter,
	// InvalidResponseHeader): the parameter/header name, and for request
	// parameters, its location ("body", "query", "header", "path",
	// "formData").
	Name string
	In   string

	// Errors holds the nested, un-enveloped issues for an envelope error.
	Errors []ValidationError
}

// Result is returned by ValidateRequest and ValidateResponse.
type Result struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether the result has no errors (warnings are allowed).
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// fromIssue converts an internal issue into the public ValidationError
// shape, dropping the severity once it has been used to sort into
// Errors/Warnings.
func fromIssue(i issues.Issue) ValidationError {
	return ValidationError{Code: i.Code, Message: i.Message, Path: i.Path}
}

func fromIssues(in []issues.Issue) []ValidationError {
	if len(in) == 0 {
		return nil
	}
	out := make([]ValidationError, len(in))
	for idx, i := range in {
		out[idx] = fromIssue(i)
	}
	return out
}
