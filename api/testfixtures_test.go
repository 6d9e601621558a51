package api

import (
	"io"
	"net/url"
	"strings"

	"github.com/oas2toolkit/oas2/document"
)

// petSchema is the body/response schema shared by the fixture's pet
// operations: {name string (required), photoUrls []string (required)}.
func petSchema() *document.Schema {
	return &document.Schema{
		Type:     "object",
		Required: []string{"name", "photoUrls"},
		Properties: map[string]*document.Schema{
			"name":      {Type: "string"},
			"photoUrls": {Type: "array", Items: &document.Schema{Type: "string"}},
		},
	}
}

// newPetstoreDocument builds a small Petstore-shaped document exercising
// path/query/body parameters, response schemas, and security.
func newPetstoreDocument() *document.Document {
	petIDParam := &document.Parameter{
		Name:     "petId",
		In:       "path",
		Required: true,
		Type:     "integer",
	}

	getByID := &document.Operation{
		Tags:        []string{"pets"},
		OperationID: "getPetById",
		Responses: map[string]*document.Response{
			"200": {Description: "ok", Schema: petSchema()},
			"404": {Description: "not found"},
		},
	}

	deleteByID := &document.Operation{
		Tags:        []string{"pets"},
		OperationID: "deletePet",
		Responses: map[string]*document.Response{
			"204": {Description: "deleted"},
		},
	}

	addPet := &document.Operation{
		Tags:        []string{"pets"},
		OperationID: "addPet",
		Consumes:    []string{"application/json"},
		Parameters: []*document.Parameter{
			{Name: "body", In: "body", Required: true, Schema: petSchema()},
		},
		Responses: map[string]*document.Response{
			"201":     {Description: "created", Schema: petSchema()},
			"default": {Description: "error"},
		},
	}

	listPets := &document.Operation{
		Tags:        []string{"pets"},
		OperationID: "listPets",
		Parameters: []*document.Parameter{
			{
				Name: "tags", In: "query", Type: "array", CollectionFormat: "multi",
				Items: &document.Schema{Type: "string"},
			},
			{Name: "limit", In: "query", Type: "integer"},
		},
		Responses: map[string]*document.Response{
			"200": {Description: "ok", Schema: &document.Schema{Type: "array", Items: petSchema()}},
		},
	}

	return &document.Document{
		Info:     &document.Info{Title: "Petstore", Version: "1.0.0"},
		BasePath: "/v2",
		Consumes: []string{"application/json"},
		Produces: []string{"application/json"},
		Paths: document.Paths{
			"/pets/{petId}": &document.PathItem{
				Parameters: []*document.Parameter{petIDParam},
				Get:        getByID,
				Delete:     deleteByID,
			},
			"/pets": &document.PathItem{
				Post: addPet,
				Get:  listPets,
			},
		},
		SecurityDefinitions: map[string]*document.SecurityScheme{
			"api_key": {Type: "apiKey", Name: "api_key", In: "header"},
		},
		Security: []document.SecurityRequirement{{"api_key": nil}},
	}
}

// stubRequest is a minimal Request implementation for exercising
// Operation.ValidateRequest without a real net/http.Request.
type stubRequest struct {
	url     string
	method  string
	headers map[string]string
	query   url.Values
	body    any
	files   map[string]io.Reader
}

func (r *stubRequest) URL() string    { return r.url }
func (r *stubRequest) Method() string { return r.method }
func (r *stubRequest) Header(name string) string {
	for k, v := range r.headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
func (r *stubRequest) Query() url.Values {
	if r.query == nil {
		return url.Values{}
	}
	return r.query
}
func (r *stubRequest) Body() any { return r.body }
func (r *stubRequest) File(name string) (io.Reader, bool) {
	f, ok := r.files[name]
	return f, ok
}
