package document

// Parameter describes a single Swagger 2.0 operation or path parameter.
//
// Non-body parameters carry their JSON-Schema-like constraints inline
// (Type, Format, Items, CollectionFormat, ...); body parameters carry a
// full Schema instead. EffectiveSchema reconciles the two views so callers
// never need to branch on In themselves.
type Parameter struct {
	Name        string
	In          string // "body", "formData", "query", "header", "path"
	Description string
	Required    bool

	// Body parameters only.
	Schema *Schema

	// Non-body parameters: inline constraints, same shape as Schema's
	// primitive/array subset.
	Type             string
	Format           string
	AllowEmptyValue  bool
	Items            *Schema
	CollectionFormat string
	Default          any
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool
	MaxLength        *int
	MinLength        *int
	Pattern          string
	MaxItems         *int
	MinItems         *int
	UniqueItems      bool
	Enum             []any
	MultipleOf       *float64
}

// EffectiveSchema returns the schema to validate this parameter's coerced
// value against: the declared Schema for body parameters, or a schema
// synthesized from the parameter's own inline constraints otherwise.
func (p *Parameter) EffectiveSchema() *Schema {
	if p.In == "body" {
		return p.Schema
	}
	return &Schema{
		Type:             p.Type,
		Format:           p.Format,
		Items:            p.Items,
		CollectionFormat: p.CollectionFormat,
		Default:          p.Default,
		Maximum:          p.Maximum,
		ExclusiveMaximum: p.ExclusiveMaximum,
		Minimum:          p.Minimum,
		ExclusiveMinimum: p.ExclusiveMinimum,
		MaxLength:        p.MaxLength,
		MinLength:        p.MinLength,
		Pattern:          p.Pattern,
		MaxItems:         p.MaxItems,
		MinItems:         p.MinItems,
		UniqueItems:      p.UniqueItems,
		Enum:             p.Enum,
		MultipleOf:       p.MultipleOf,
	}
}
