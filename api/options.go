package api

import (
	"github.com/oas2toolkit/oas2/internal/noplog"
	"github.com/oas2toolkit/oas2/oaslog"
	"github.com/oas2toolkit/oas2/schemavalidate"
)

// Logger is the minimal logging interface the core accepts, modeled on
// log/slog's convention so a caller can adapt slog, zap, or zerolog
// without this package importing any of them directly.
type Logger = oaslog.Logger

// config holds the resolved settings built up by a New call's Options.
type config struct {
	strictMode            bool
	includeWarnings       bool
	trailingSlashTolerant bool
	logger                Logger
	formatOptions         []schemavalidate.Option
}

func newConfig() *config {
	return &config{
		logger: noplog.New(),
	}
}

// Option configures API construction.
type Option func(*config) error

// WithStrictMode causes construction to fail on document inconsistencies
// that would otherwise be silently tolerated (e.g. a response declaring
// headers for a status code that never carries a body).
func WithStrictMode(strict bool) Option {
	return func(c *config) error { c.strictMode = strict; return nil }
}

// WithIncludeWarnings causes Result.Warnings to be populated with
// advisory issues (e.g. a string failing its registered format) rather than
// discarding them.
func WithIncludeWarnings(include bool) Option {
	return func(c *config) error { c.includeWarnings = include; return nil }
}

// WithTrailingSlashTolerant controls whether compiled path matchers accept
// an extra trailing slash. The document-wide default is false.
func WithTrailingSlashTolerant(tolerant bool) Option {
	return func(c *config) error { c.trailingSlashTolerant = tolerant; return nil }
}

// WithLogger supplies a Logger; the default is a no-op logger.
func WithLogger(l Logger) Option {
	return func(c *config) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithFormatValidator registers a custom string-format predicate on the
// schema validator adapter used by this API instance.
func WithFormatValidator(name string, fn schemavalidate.FormatFunc) Option {
	return func(c *config) error {
		c.formatOptions = append(c.formatOptions, schemavalidate.WithFormat(name, fn))
		return nil
	}
}
