// Package oaserrors provides the structured error type returned for
// construction-time failures: malformed path templates, duplicate
// parameter declarations, and similarly invalid input to api.New.
//
// Runtime validation failures (a bad request, an unexpected response body)
// are never represented as a Go error — see package api's ValidationError
// and the error-code constants there.
package oaserrors

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel matched by ConfigError.Is, for use with
// errors.Is without a type assertion.
var ErrConfig = errors.New("configuration error")

// ConfigError represents an invalid document or option supplied to
// api.New: a body parameter declared twice on one operation, a path
// template with duplicate "{name}" tokens, and so on.
type ConfigError struct {
	// Option names the field or setting that was invalid, e.g.
	// "paths./pet/{petId}.parameters" or "WithFormatValidator".
	Option string
	// Value is the invalid value, if it's meaningful to report.
	Value any
	// Message describes the problem.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
