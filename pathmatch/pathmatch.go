// Package pathmatch compiles Swagger 2.0 path templates into matchers that
// extract path-parameter captures from a request URL.
package pathmatch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oas2toolkit/oas2/oaserrors"
)

// Matcher matches request paths against a single "basePath + template"
// combination and extracts named path-parameter captures.
type Matcher struct {
	template   string
	regex      *regexp.Regexp
	paramNames []string
}

// Options configures how a Matcher treats trailing slashes. The zero value
// is document-wide default behavior: not trailing-slash tolerant.
type Options struct {
	TrailingSlashTolerant bool
}

// New compiles basePath+template into a Matcher. template must use
// "{name}" segments for path parameters; each name must be unique within
// the template, matching the source's assumption that a capture's ordinal
// position identifies its parameter (see api.Parameter's path handling).
func New(basePath, template string, opts Options) (*Matcher, error) {
	full := normalizeBasePath(basePath) + template
	if full == "" {
		full = "/"
	}

	var regexBuf strings.Builder
	regexBuf.WriteString("^")

	var paramNames []string
	seen := make(map[string]bool)

	i := 0
	for i < len(full) {
		if full[i] == '{' {
			end := strings.IndexByte(full[i:], '}')
			if end == -1 {
				return nil, &oaserrors.ConfigError{
					Option:  "path template",
					Value:   template,
					Message: fmt.Sprintf("unclosed path parameter at position %d", i),
				}
			}
			name := full[i+1 : i+end]
			if name == "" {
				return nil, &oaserrors.ConfigError{
					Option:  "path template",
					Value:   template,
					Message: fmt.Sprintf("empty path parameter at position %d", i),
				}
			}
			if seen[name] {
				return nil, &oaserrors.ConfigError{
					Option:  "path template",
					Value:   template,
					Message: fmt.Sprintf("duplicate path parameter %q", name),
				}
			}
			seen[name] = true
			paramNames = append(paramNames, name)
			regexBuf.WriteString("([^/]+)")
			i += end + 1
		} else {
			c := full[i]
			if strings.ContainsRune(`\.+*?()|[]{}^$`, rune(c)) {
				regexBuf.WriteByte('\\')
			}
			regexBuf.WriteByte(c)
			i++
		}
	}

	if opts.TrailingSlashTolerant {
		regexBuf.WriteString("/?")
	}
	regexBuf.WriteString("$")

	re, err := regexp.Compile(regexBuf.String())
	if err != nil {
		return nil, &oaserrors.ConfigError{
			Option:  "path template",
			Value:   template,
			Message: "failed to compile path pattern",
			Cause:   err,
		}
	}

	return &Matcher{template: template, regex: re, paramNames: paramNames}, nil
}

// normalizeBasePath collapses an absent or "/" base path to the empty
// prefix, per the API model's basePath invariant.
func normalizeBasePath(basePath string) string {
	if basePath == "" || basePath == "/" {
		return ""
	}
	return strings.TrimSuffix(basePath, "/")
}

// Exec matches path and, on success, returns the ordered list of captured
// substrings (one per "{name}" token, in declaration order). Returns nil,
// false when path does not match.
func (m *Matcher) Exec(path string) ([]string, bool) {
	matches := m.regex.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}
	return matches[1:], true
}

// ParamNames returns the path-parameter names in declaration order.
func (m *Matcher) ParamNames() []string {
	return m.paramNames
}

// Template returns the original (non-base-path-prefixed) template this
// Matcher was compiled from.
func (m *Matcher) Template() string {
	return m.template
}
