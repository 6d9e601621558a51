package api

import "strings"

// dispatch implements the Dispatcher: it tests each Path's matcher against
// url in template order (sorted at construction) until one matches, then returns the Operation
// keyed by the lowercased method. Returns nil, nil when no Path matches;
// nil, path when the Path matches but declares no operation for method.
func (a *API) dispatch(url, method string) (*Path, *Operation) {
	for _, p := range a.paths {
		if _, ok := p.matcher.Exec(url); ok {
			return p, p.Operation(method)
		}
	}
	return nil, nil
}

func lowerASCII(s string) string {
	return strings.ToLower(s)
}
