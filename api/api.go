// Package api implements the Swagger 2.0 validation core: given a fully
// resolved document.Document, New builds a navigable, executable model of
// its paths, operations, parameters, and responses, and offers the two
// runtime services described by the module: request dispatch/validation
// (Operation.ValidateRequest) and response validation
// (Operation.ValidateResponse / Response.Validate).
//
// The model is stateless after construction: validating a request or
// response never mutates the API, so a single instance may be shared
// across unbounded concurrent callers.
package api

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/internal/httputil"
	"github.com/oas2toolkit/oas2/oaserrors"
	"github.com/oas2toolkit/oas2/pathmatch"
	"github.com/oas2toolkit/oas2/schemavalidate"
)

// API is the entry point: it owns the resolved document, the compiled
// paths, and the document-level defaults every operation falls back to.
type API struct {
	doc *document.Document

	basePath string
	consumes []string
	produces []string
	security []document.SecurityRequirement

	paths     []*Path
	pathsByID map[string]*Path

	validator *schemavalidate.Validator
	config    *config
}

// New builds an API from a fully resolved document. Returns an
// *oaserrors.ConfigError for a malformed path template (unclosed or
// duplicate "{name}" tokens) or a body parameter declared twice on the
// same operation.
func New(doc *document.Document, opts ...Option) (*API, error) {
	cfg := newConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	a := &API{
		doc:       doc,
		basePath:  normalizeBasePath(doc.BasePath),
		consumes:  doc.Consumes,
		produces:  doc.Produces,
		security:  doc.Security,
		pathsByID: make(map[string]*Path, len(doc.Paths)),
		validator: schemavalidate.New(cfg.formatOptions...),
		config:    cfg,
	}

	templates := make([]string, 0, len(doc.Paths))
	for t := range doc.Paths {
		templates = append(templates, t)
	}
	sort.Strings(templates)

	for _, template := range templates {
		pathItem := doc.Paths[template]
		path, err := a.buildPath(template, pathItem, cfg.trailingSlashTolerant)
		if err != nil {
			return nil, err
		}
		a.paths = append(a.paths, path)
		a.pathsByID[template] = path
	}

	return a, nil
}

func (a *API) buildPath(template string, item *document.PathItem, trailingSlashTolerant bool) (*Path, error) {
	matcher, err := pathmatch.New(a.basePath, template, pathmatch.Options{TrailingSlashTolerant: trailingSlashTolerant})
	if err != nil {
		return nil, err
	}

	path := &Path{
		api:        a,
		template:   template,
		ptr:        fmt.Sprintf("#/paths/%s", jsonPointerEscape(template)),
		matcher:    matcher,
		parameters: item.Parameters,
		operations: make(map[string]*Operation, 8),
	}

	for method, opDoc := range item.Operations() {
		op, err := a.buildOperation(path, method, opDoc)
		if err != nil {
			return nil, err
		}
		path.operations[method] = op
	}

	return path, nil
}

func (a *API) buildOperation(path *Path, method string, opDoc *document.Operation) (*Operation, error) {
	mergedDocs, err := mergeParameters(path.parameters, opDoc.Parameters)
	if err != nil {
		return nil, &oaserrors.ConfigError{
			Option:  fmt.Sprintf("%s.%s.parameters", path.template, method),
			Message: err.Error(),
		}
	}

	op := &Operation{
		api:               a,
		path:              path,
		method:            method,
		ptr:               fmt.Sprintf("%s/%s", path.ptr, method),
		doc:               opDoc,
		effectiveConsumes: effectiveList(opDoc.Consumes, a.consumes),
		effectiveProduces: effectiveList(opDoc.Produces, a.produces),
		effectiveSecurity: effectiveSecurity(opDoc.Security, a.security),
	}

	op.securityDefs = make(map[string]*document.SecurityScheme, len(op.effectiveSecurity))
	for _, req := range op.effectiveSecurity {
		for name := range req {
			if def, ok := a.doc.SecurityDefinitions[name]; ok {
				op.securityDefs[name] = def
			}
		}
	}

	op.parameters = make([]*Parameter, 0, len(mergedDocs))
	for _, pd := range mergedDocs {
		op.parameters = append(op.parameters, &Parameter{doc: pd, operation: op})
	}

	op.responses = make(map[string]*Response, len(opDoc.Responses))
	for code, rd := range opDoc.Responses {
		if !httputil.ValidateStatusCode(code) {
			return nil, &oaserrors.ConfigError{
				Option:  fmt.Sprintf("%s.%s.responses.%s", path.template, method, code),
				Message: `response status code must be "default" or a three-digit code in [100, 599]`,
			}
		}
		if a.config.strictMode && (code == "204" || code == "304") && len(rd.Headers) > 0 {
			return nil, &oaserrors.ConfigError{
				Option:  fmt.Sprintf("%s.%s.responses.%s.headers", path.template, method, code),
				Message: fmt.Sprintf("status %s never carries a body; declaring headers for it is inconsistent", code),
			}
		}
		op.responses[code] = &Response{operation: op, statusCode: code, doc: rd}
	}

	return op, nil
}

// mergeParameters unions path-level and operation-level parameters on the
// composite key (name, in), preserving path-level declaration order and
// appending any operation-level parameters not already present, with
// operation-level definitions replacing path-level ones for a shared key.
// Returns an error if more than one parameter ends up with in == "body".
func mergeParameters(pathParams, opParams []*document.Parameter) ([]*document.Parameter, error) {
	type key struct{ name, in string }

	merged := make(map[key]*document.Parameter, len(pathParams)+len(opParams))
	var order []key

	for _, p := range pathParams {
		k := key{p.Name, p.In}
		if _, exists := merged[k]; !exists {
			order = append(order, k)
		}
		merged[k] = p
	}
	for _, p := range opParams {
		k := key{p.Name, p.In}
		if _, exists := merged[k]; !exists {
			order = append(order, k)
		}
		merged[k] = p
	}

	out := make([]*document.Parameter, 0, len(order))
	bodyCount := 0
	for _, k := range order {
		p := merged[k]
		if p.In == "body" {
			bodyCount++
		}
		out = append(out, p)
	}
	if bodyCount > 1 {
		return nil, fmt.Errorf("operation declares %d body parameters, at most one is allowed", bodyCount)
	}
	return out, nil
}

// effectiveList returns opLevel when non-empty, else docLevel, matching
// the fallback rule for consumes/produces (an empty operation-level list
// still triggers fallback; an empty document-level list means no media
// type is declared at all).
func effectiveList(opLevel, docLevel []string) []string {
	if len(opLevel) > 0 {
		return opLevel
	}
	return docLevel
}

func effectiveSecurity(opLevel, docLevel []document.SecurityRequirement) []document.SecurityRequirement {
	if len(opLevel) > 0 {
		return opLevel
	}
	return docLevel
}

// normalizeBasePath collapses an absent or "/" base path to the empty
// prefix.
func normalizeBasePath(basePath string) string {
	if basePath == "" || basePath == "/" {
		return ""
	}
	return strings.TrimSuffix(basePath, "/")
}

// jsonPointerEscape escapes a path template for embedding in a JSON
// Pointer per RFC 6901 ("~" -> "~0", "/" -> "~1"), including the leading
// "/" so callers get a full pointer fragment like "~1pet~1{petId}".
func jsonPointerEscape(template string) string {
	escaped := strings.ReplaceAll(template, "~", "~0")
	escaped = strings.ReplaceAll(escaped, "/", "~1")
	return escaped
}

// Operation locates the operation for method at path, applying the same
// dispatch rule as Dispatcher: pathOrURL is matched against every
// compiled path template until one matches. Returns nil if no path
// matches, or if the matching path declares no operation for method.
func (a *API) Operation(pathOrURL, method string) *Operation {
	_, op := a.dispatch(pathOrURL, method)
	return op
}

// OperationFromRequest is the request-shaped counterpart of Operation,
// matching the Dispatcher's "first argument is a request-like object"
// form.
func (a *API) OperationFromRequest(req Request) *Operation {
	_, op := a.dispatch(req.URL(), req.Method())
	return op
}

// Path returns the Path whose declared template equals template exactly
// (not matched against a concrete URL).
func (a *API) Path(template string) *Path {
	return a.pathsByID[template]
}

// PathForURL returns the Path whose compiled matcher matches url, or nil.
func (a *API) PathForURL(url string) *Path {
	p, _ := a.dispatch(url, "")
	return p
}

// Paths returns every declared Path, ordered by template.
func (a *API) Paths() []*Path { return a.paths }

// Operations returns every operation across every path.
func (a *API) Operations() []*Operation {
	var out []*Operation
	for _, p := range a.paths {
		out = append(out, p.Operations()...)
	}
	return out
}

// OperationsByTag returns every operation, across every path, whose Tags
// include tag.
func (a *API) OperationsByTag(tag string) []*Operation {
	var out []*Operation
	for _, p := range a.paths {
		out = append(out, p.OperationsByTag(tag)...)
	}
	return out
}

// Document returns the resolved document this API was built from.
func (a *API) Document() *document.Document { return a.doc }

// BasePath returns the normalized base path (empty when the document had
// none, or only "/").
func (a *API) BasePath() string { return a.basePath }
