package oas2_test

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/oas2toolkit/oas2/api"
	"github.com/oas2toolkit/oas2/document"
)

// rawPet is a minimal stand-in for whatever shape a caller's own Swagger
// 2.0 loader produces; unmarshaling a full document and resolving its
// $ref entries is outside this module's scope (see SPEC_FULL.md §6), so
// this example hand-builds the handful of fields it needs.
type rawPet struct {
	BasePath string `yaml:"basePath"`
	Paths    map[string]struct {
		Get struct {
			Parameters []struct {
				Name     string `yaml:"name"`
				In       string `yaml:"in"`
				Required bool   `yaml:"required"`
				Type     string `yaml:"type"`
			} `yaml:"parameters"`
		} `yaml:"get"`
	} `yaml:"paths"`
}

// Example demonstrates handing an already-loaded Swagger 2.0 document to
// api.New and dispatching a request against it. A real caller would get
// its *document.Document from a fuller loader; this example unmarshals a
// small YAML fragment directly to keep the illustration self-contained.
func Example() {
	const spec = `
basePath: /v1
paths:
  /pets/{petId}:
    get:
      parameters:
        - name: petId
          in: path
          required: true
          type: integer
`
	var raw rawPet
	if err := yaml.Unmarshal([]byte(spec), &raw); err != nil {
		panic(err)
	}

	doc := &document.Document{
		BasePath: raw.BasePath,
		Paths:    document.Paths{},
	}
	for template, item := range raw.Paths {
		op := &document.Operation{}
		for _, p := range item.Get.Parameters {
			op.Parameters = append(op.Parameters, &document.Parameter{
				Name:     p.Name,
				In:       p.In,
				Required: p.Required,
				Type:     p.Type,
			})
		}
		doc.Paths[template] = &document.PathItem{Get: op}
	}

	a, err := api.New(doc)
	if err != nil {
		panic(err)
	}

	op := a.Operation("/v1/pets/123", "GET")
	fmt.Println(op != nil)
	// Output: true
}
