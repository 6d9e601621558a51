// Package issues provides the neutral error record shared by the schema
// validator, the value coercer, and the operation/response validators.
package issues

import (
	"fmt"

	"github.com/oas2toolkit/oas2/internal/severity"
)

// Issue is a single validation problem, carrying the same {code, message,
// path} shape regardless of which component raised it.
type Issue struct {
	// Code is one of the exported error-code constants in package api.
	Code string
	// Path is a JSON-Pointer-ish location, e.g. "photoUrls" or "[0].id".
	Path string
	// Message is a human-readable description.
	Message string
	// Severity distinguishes hard failures from advisory findings (a string
	// value that fails its registered format check).
	Severity severity.Severity
}

// String renders the issue for logs and test failure output.
func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("[%s] %s", i.Code, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Code, i.Path, i.Message)
}
