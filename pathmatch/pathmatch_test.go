package pathmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oas2toolkit/oas2/oaserrors"
)

func TestNewAndExec(t *testing.T) {
	m, err := New("/v1", "/pets/{petId}", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"petId"}, m.ParamNames())
	assert.Equal(t, "/pets/{petId}", m.Template())

	captures, ok := m.Exec("/v1/pets/123")
	require.True(t, ok)
	assert.Equal(t, []string{"123"}, captures)

	_, ok = m.Exec("/v1/pets/123/")
	assert.False(t, ok, "trailing slash should not match when not tolerant")

	_, ok = m.Exec("/v2/pets/123")
	assert.False(t, ok, "wrong base path should not match")
}

func TestNewTrailingSlashTolerant(t *testing.T) {
	m, err := New("", "/pets", Options{TrailingSlashTolerant: true})
	require.NoError(t, err)

	_, ok := m.Exec("/pets")
	assert.True(t, ok)
	_, ok = m.Exec("/pets/")
	assert.True(t, ok)
}

func TestNewMultipleCaptures(t *testing.T) {
	m, err := New("", "/pets/{petId}/photos/{photoId}", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"petId", "photoId"}, m.ParamNames())

	captures, ok := m.Exec("/pets/1/photos/9")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "9"}, captures)
}

func TestNewBasePathNormalization(t *testing.T) {
	tests := []struct {
		basePath string
		prefix   string
	}{
		{"", ""},
		{"/", ""},
		{"/v1/", "/v1"},
		{"/v1", "/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.basePath, func(t *testing.T) {
			m, err := New(tt.basePath, "/pets", Options{})
			require.NoError(t, err)
			_, ok := m.Exec(tt.prefix + "/pets")
			assert.True(t, ok)
		})
	}
}

func TestNewRejectsMalformedTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"unclosed", "/pets/{petId"},
		{"empty name", "/pets/{}"},
		{"duplicate name", "/pets/{id}/owners/{id}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("", tt.template, Options{})
			require.Error(t, err)
			var cfgErr *oaserrors.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestExecEscapesRegexMetacharacters(t *testing.T) {
	m, err := New("", "/pets.info/{id}", Options{})
	require.NoError(t, err)

	_, ok := m.Exec("/petsXinfo/1")
	assert.False(t, ok, "literal '.' in the template must not act as a regex wildcard")

	_, ok = m.Exec("/pets.info/1")
	assert.True(t, ok)
}
