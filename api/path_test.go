package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathOperationLookup(t *testing.T) {
	a := newTestAPI(t)
	p := a.Path("/pets/{petId}")
	require.NotNil(t, p)

	get := p.Operation("GET")
	require.NotNil(t, get)
	assert.Equal(t, "getPetById", get.doc.OperationID)

	assert.Nil(t, p.Operation("PUT"), "this path declares no PUT")
}

func TestPathOperationsAndByTag(t *testing.T) {
	a := newTestAPI(t)
	p := a.Path("/pets/{petId}")
	require.NotNil(t, p)

	assert.Len(t, p.Operations(), 2)
	assert.Len(t, p.OperationsByTag("pets"), 2)
	assert.Empty(t, p.OperationsByTag("other"))
}

func TestPathTemplate(t *testing.T) {
	a := newTestAPI(t)
	p := a.Path("/pets")
	require.NotNil(t, p)
	assert.Equal(t, "/pets", p.Template())
}
