package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oas2toolkit/oas2/document"
)

func TestValueUsesExampleThenDefault(t *testing.T) {
	assert.Equal(t, "ex", Value(&document.Schema{Type: "string", Example: "ex", Default: "def"}))
	assert.Equal(t, "def", Value(&document.Schema{Type: "string", Default: "def"}))
}

func TestValuePlaceholdersByType(t *testing.T) {
	tests := []struct {
		typ  string
		want any
	}{
		{"string", ""},
		{"integer", 0},
		{"number", 0.0},
		{"boolean", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Value(&document.Schema{Type: tt.typ}))
	}
}

func TestValueArrayRecursesIntoItems(t *testing.T) {
	schema := &document.Schema{Type: "array", Items: &document.Schema{Type: "integer"}}
	assert.Equal(t, []any{0}, Value(schema))
}

func TestValueArrayWithoutItems(t *testing.T) {
	schema := &document.Schema{Type: "array"}
	assert.Equal(t, []any{}, Value(schema))
}

func TestValueObjectRecursesIntoProperties(t *testing.T) {
	schema := &document.Schema{
		Type: "object",
		Properties: map[string]*document.Schema{
			"name": {Type: "string"},
			"age":  {Type: "integer"},
		},
	}
	got := Value(schema).(map[string]any)
	assert.Equal(t, "", got["name"])
	assert.Equal(t, 0, got["age"])
}

func TestValueNilSchema(t *testing.T) {
	assert.Nil(t, Value(nil))
}
