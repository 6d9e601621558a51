package document

// Document is a fully-resolved Swagger 2.0 API description: every "$ref"
// has already been inlined by whatever loader produced it. Package api
// never mutates a Document after construction.
type Document struct {
	Info     *Info
	Host     string
	BasePath string
	Schemes  []string
	Consumes []string
	Produces []string

	Paths Paths

	Definitions         map[string]*Schema
	SecurityDefinitions map[string]*SecurityScheme
	Security            []SecurityRequirement

	Tags         []*Tag
	ExternalDocs *ExternalDocs
}

// Paths maps a path template (e.g. "/pet/{petId}") to its PathItem.
type Paths map[string]*PathItem

// PathItem holds the operations declared on a single path template, plus
// parameters shared by all of them.
type PathItem struct {
	Get        *Operation
	Put        *Operation
	Post       *Operation
	Delete     *Operation
	Options    *Operation
	Head       *Operation
	Patch      *Operation
	Parameters []*Parameter
}

// Operations returns the non-nil operations on this path item keyed by
// lowercase HTTP method.
func (pi *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation, 8)
	add := func(method string, op *Operation) {
		if op != nil {
			ops[method] = op
		}
	}
	add("get", pi.Get)
	add("put", pi.Put)
	add("post", pi.Post)
	add("delete", pi.Delete)
	add("options", pi.Options)
	add("head", pi.Head)
	add("patch", pi.Patch)
	return ops
}

// Operation describes a single (path, method) operation.
type Operation struct {
	Tags        []string
	Summary     string
	Description string
	OperationID string
	Parameters  []*Parameter
	// Responses is keyed by status-code string, plus the literal key
	// "default" for the fallback response.
	Responses map[string]*Response
	Deprecated bool
	Security   []SecurityRequirement

	// Consumes/Produces are the operation's own declarations; an absent
	// or empty list falls back to the document-level lists (see
	// api.API's construction-time computation of effective values).
	Consumes []string
	Produces []string
}

// Response describes one entry of an operation's Responses map.
type Response struct {
	Description string
	// Headers maps header name to the schema its value must satisfy.
	// Lookups against this map are case-insensitive.
	Headers map[string]*Schema
	// HeaderDefaults maps header name to a default value substituted
	// when the actual response omits that header.
	HeaderDefaults map[string]any
	Schema         *Schema
	Examples       map[string]any
}
