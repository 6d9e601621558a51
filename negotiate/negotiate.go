// Package negotiate implements the Content-Type negotiation policy shared
// by request and response validation: an actual media type is checked
// against a declared set, with parameters stripped for comparison unless
// the full string matches exactly.
package negotiate

import (
	"fmt"
	"strings"

	"github.com/oas2toolkit/oas2/internal/httputil"
	"github.com/oas2toolkit/oas2/internal/issues"
	"github.com/oas2toolkit/oas2/internal/severity"
)

// DefaultMediaType is substituted when a request or response has no
// Content-Type header at all.
const DefaultMediaType = "application/octet-stream"

// Check validates actual against the declared list of acceptable media
// types. An empty actual is treated as DefaultMediaType. Matching is on
// the type/subtype portion with parameters (e.g. "; charset=utf-8")
// stripped, but an exact full-string match also counts. There is no
// wildcard matching.
//
// A nil *issues.Issue return means the media type is acceptable.
func Check(actual string, declared []string) *issues.Issue {
	if actual == "" {
		actual = DefaultMediaType
	}

	bareActual, _ := httputil.MediaTypeAndParams(actual)

	for _, d := range declared {
		if d == actual {
			return nil
		}
		bareDeclared, _ := httputil.MediaTypeAndParams(d)
		if bareDeclared == bareActual {
			return nil
		}
	}

	return &issues.Issue{
		Code:     "INVALID_CONTENT_TYPE",
		Path:     "",
		Message:  fmt.Sprintf("Invalid Content-Type (%s). These are supported: %s", actual, strings.Join(declared, ", ")),
		Severity: severity.SeverityError,
	}
}

// SkipRequest reports whether request Content-Type negotiation should be
// skipped: either no media types are declared, or the operation has no
// body-shaped parameter (body or formData) to negotiate against.
func SkipRequest(declared []string, hasBodyLikeParam bool) bool {
	return len(declared) == 0 || !hasBodyLikeParam
}

// SkipResponse reports whether response Content-Type negotiation should be
// skipped: the response declares no schema, or the status code is one
// that never carries a body (204, 304).
func SkipResponse(hasSchema bool, statusCode string) bool {
	return !hasSchema || statusCode == "204" || statusCode == "304"
}
