package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/oaserrors"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	a, err := New(newPetstoreDocument())
	require.NoError(t, err)
	return a
}

func TestNewBuildsEveryPath(t *testing.T) {
	a := newTestAPI(t)
	assert.Len(t, a.Paths(), 2)
	assert.Equal(t, "/v2", a.BasePath())
}

func TestNewRejectsDuplicateBodyParameters(t *testing.T) {
	doc := newPetstoreDocument()
	pathItem := doc.Paths["/pets"]
	pathItem.Post.Parameters = append(pathItem.Post.Parameters,
		&document.Parameter{Name: "extraBody", In: "body", Schema: &document.Schema{Type: "object"}})

	_, err := New(doc)
	require.Error(t, err)
	var cfgErr *oaserrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewRejectsMalformedResponseStatusCode(t *testing.T) {
	doc := newPetstoreDocument()
	doc.Paths["/pets/{petId}"].Get.Responses["2000"] = &document.Response{Description: "bad code"}

	_, err := New(doc)
	require.Error(t, err)
	var cfgErr *oaserrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Option, "responses.2000")
}

func TestNewPropagatesMalformedPathTemplate(t *testing.T) {
	doc := newPetstoreDocument()
	doc.Paths["/bad/{}"] = &document.PathItem{Get: &document.Operation{}}

	_, err := New(doc)
	require.Error(t, err)
}

func TestOperationDispatchesByURLAndMethod(t *testing.T) {
	a := newTestAPI(t)

	op := a.Operation("/v2/pets/123", "GET")
	require.NotNil(t, op)
	assert.Equal(t, "get", op.Method())

	assert.Nil(t, a.Operation("/v2/unknown", "GET"))
	assert.Nil(t, a.Operation("/v2/pets/123", "PATCH"), "path matches but method isn't declared")
}

func TestOperationFromRequest(t *testing.T) {
	a := newTestAPI(t)
	req := &stubRequest{url: "/v2/pets/123", method: "GET"}
	op := a.OperationFromRequest(req)
	require.NotNil(t, op)
	assert.Equal(t, "getPetById", op.doc.OperationID)
}

func TestPathLookup(t *testing.T) {
	a := newTestAPI(t)

	p := a.Path("/pets/{petId}")
	require.NotNil(t, p)
	assert.Equal(t, "#/paths/~1pets~1{petId}", p.Ptr())

	assert.Nil(t, a.Path("/does/not/exist"))

	found := a.PathForURL("/v2/pets/123")
	require.NotNil(t, found)
	assert.Same(t, p, found)
}

func TestOperationsAndOperationsByTag(t *testing.T) {
	a := newTestAPI(t)

	assert.Len(t, a.Operations(), 4)

	byTag := a.OperationsByTag("pets")
	assert.Len(t, byTag, 4)

	assert.Empty(t, a.OperationsByTag("nonexistent"))
}

func TestOperationPtr(t *testing.T) {
	a := newTestAPI(t)
	op := a.Operation("/v2/pets/123", "GET")
	require.NotNil(t, op)
	assert.Equal(t, "#/paths/~1pets~1{petId}/get", op.Ptr())
}

func TestDocumentAccessor(t *testing.T) {
	doc := newPetstoreDocument()
	a, err := New(doc)
	require.NoError(t, err)
	assert.Same(t, doc, a.Document())
}
