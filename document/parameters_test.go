package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterEffectiveSchemaBody(t *testing.T) {
	schema := &Schema{Type: "object"}
	p := &Parameter{Name: "pet", In: "body", Schema: schema}
	assert.Same(t, schema, p.EffectiveSchema())
}

func TestParameterEffectiveSchemaNonBody(t *testing.T) {
	p := &Parameter{
		Name:             "limit",
		In:               "query",
		Type:             "integer",
		Format:           "int32",
		CollectionFormat: "csv",
		Minimum:          floatPtr(1),
	}
	schema := p.EffectiveSchema()
	assert.Equal(t, "integer", schema.Type)
	assert.Equal(t, "int32", schema.Format)
	assert.Equal(t, "csv", schema.CollectionFormat)
	assert.Equal(t, 1.0, *schema.Minimum)
}

func floatPtr(f float64) *float64 { return &f }
