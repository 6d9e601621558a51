// Package oas2 implements the validation core for a fully-resolved
// Swagger 2.0 (OpenAPI 2.0) document: a navigable model of its paths,
// operations, and parameters, plus the two runtime services built on
// top of it — request validation and response validation.
//
// # Overview
//
// The module is split into a document model and a runtime model:
//
//   - document: the resolved Swagger 2.0 tree (Info, Paths, Definitions,
//     SecurityDefinitions, ...). Callers build or unmarshal a
//     *document.Document however they like; loading files, resolving
//     $ref, and dialect detection are all out of scope here.
//   - api: the executable model over a document.Document (API, Path,
//     Operation, Parameter, Response) plus ValidateRequest and
//     ValidateResponse.
//
// Supporting packages implement the pieces api composes: pathmatch
// (path-template compilation and capture extraction), coerce (wire
// string -> typed value conversion), negotiate (Content-Type matching),
// and schemavalidate (the default JSON-Schema-subset instance
// validator, with a pluggable string-format registry).
//
// # Quick start
//
//	doc := &document.Document{ /* ... */ }
//	a, err := api.New(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	op := a.Operation("/pets/123", "GET")
//	result := op.ValidateRequest(req)
//	if !result.Valid() {
//		for _, e := range result.Errors {
//			fmt.Printf("%s: %s\n", e.Code, e.Message)
//		}
//	}
//
// # Concurrency
//
// An *api.API is stateless after construction: validating requests and
// responses never mutates it, so a single instance is safe for
// unbounded concurrent use.
//
// # Limitations
//
//   - No document loading, YAML/JSON unmarshaling, or $ref resolution.
//   - No OAS 3.x support; this module is Swagger 2.0 only.
//   - No stub/client code generation and no document mutation.
package oas2
