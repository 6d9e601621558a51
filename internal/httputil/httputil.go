// Package httputil provides small HTTP-related helpers shared by the
// api and negotiate packages.
package httputil

import (
	"strconv"
	"strings"
)

// Swagger 2.0 response status codes are either the literal "default" or a
// three-digit numeric code; unlike OAS 3.x there is no "2XX" wildcard form.
const (
	statusCodeLength = 3
	minStatusCode    = 100
	maxStatusCode    = 599
)

// ValidateStatusCode reports whether code is "default" or a three-digit
// HTTP status code in [100, 599].
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != statusCodeLength {
		return false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= minStatusCode && n <= maxStatusCode
}

// MediaTypeAndParams splits a Content-Type-style header value into its
// type/subtype portion and the raw parameter suffix (including the leading
// ";"), e.g. "application/json; charset=utf-8" -> ("application/json",
// "; charset=utf-8").
func MediaTypeAndParams(contentType string) (mediaType string, rawParams string) {
	idx := strings.IndexByte(contentType, ';')
	if idx == -1 {
		return strings.TrimSpace(contentType), ""
	}
	return strings.TrimSpace(contentType[:idx]), contentType[idx:]
}
