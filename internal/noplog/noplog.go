// Package noplog provides the default no-op oaslog.Logger for package api.
package noplog

import "github.com/oas2toolkit/oas2/oaslog"

// Logger discards everything.
type Logger struct{}

// New returns a Logger that discards all output.
func New() *Logger { return &Logger{} }

func (l *Logger) Debug(msg string, attrs ...any) {}
func (l *Logger) Info(msg string, attrs ...any)  {}
func (l *Logger) Warn(msg string, attrs ...any)  {}
func (l *Logger) Error(msg string, attrs ...any) {}
func (l *Logger) With(attrs ...any) oaslog.Logger { return l }
