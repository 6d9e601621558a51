// Package api builds an executable model over a document.Document and
// validates HTTP requests and responses against it.
//
// Construction:
//
//	a, err := api.New(doc, api.WithTrailingSlashTolerant(true))
//
// Dispatch and validation:
//
//	op := a.Operation("/pets/123", "GET")
//	if op == nil {
//		// no matching path/method
//	}
//	result := op.ValidateRequest(req)
//	if !result.Valid() {
//		// result.Errors, result.Warnings
//	}
//
//	result = op.ValidateResponse("200", resp.ContentType, resp.Headers, resp.Body, "")
//
// req implements the Request interface; FromHTTPRequest adapts a
// *net/http.Request plus an already-decoded body.
package api
