package api

import (
	"github.com/oas2toolkit/oas2/document"
	"github.com/oas2toolkit/oas2/pathmatch"
)

// Path groups the operations declared on a single URL template.
type Path struct {
	api        *API
	template   string
	ptr        string
	matcher    *pathmatch.Matcher
	parameters []*document.Parameter
	operations map[string]*Operation // lowercase method -> Operation
}

// Template returns the path's declared template, e.g. "/pet/{petId}".
func (p *Path) Template() string { return p.template }

// Ptr returns the JSON Pointer to this path's document location.
func (p *Path) Ptr() string { return p.ptr }

// Operation returns the operation declared for method (case-insensitive),
// or nil if this path has none.
func (p *Path) Operation(method string) *Operation {
	return p.operations[lowerASCII(method)]
}

// Operations returns every operation declared on this path.
func (p *Path) Operations() []*Operation {
	out := make([]*Operation, 0, len(p.operations))
	for _, op := range p.operations {
		out = append(out, op)
	}
	return out
}

// OperationsByTag returns the operations on this path whose Tags include
// tag.
func (p *Path) OperationsByTag(tag string) []*Operation {
	var out []*Operation
	for _, op := range p.operations {
		for _, t := range op.doc.Tags {
			if t == tag {
				out = append(out, op)
				break
			}
		}
	}
	return out
}
