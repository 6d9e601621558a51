package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExactMatch(t *testing.T) {
	issue := Check("application/json", []string{"application/json", "application/xml"})
	assert.Nil(t, issue)
}

func TestCheckStripsParameters(t *testing.T) {
	issue := Check("application/json; charset=utf-8", []string{"application/json"})
	assert.Nil(t, issue)
}

func TestCheckDefaultsEmptyActual(t *testing.T) {
	issue := Check("", []string{DefaultMediaType})
	assert.Nil(t, issue)
}

func TestCheckRejectsUnsupported(t *testing.T) {
	issue := Check("text/plain", []string{"application/json"})
	require.NotNil(t, issue)
	assert.Equal(t, "INVALID_CONTENT_TYPE", issue.Code)
	assert.Equal(t, "Invalid Content-Type (text/plain). These are supported: application/json", issue.Message)
}

func TestCheckNoWildcardMatching(t *testing.T) {
	issue := Check("application/vnd.api+json", []string{"application/*"})
	require.NotNil(t, issue, "no wildcard support: a literal '*' declared type must not match anything")
}

func TestSkipRequest(t *testing.T) {
	assert.True(t, SkipRequest(nil, true), "no declared media types")
	assert.True(t, SkipRequest([]string{"application/json"}, false), "no body-like parameter")
	assert.False(t, SkipRequest([]string{"application/json"}, true))
}

func TestSkipResponse(t *testing.T) {
	assert.True(t, SkipResponse(false, "200"), "no schema")
	assert.True(t, SkipResponse(true, "204"))
	assert.True(t, SkipResponse(true, "304"))
	assert.False(t, SkipResponse(true, "200"))
}
