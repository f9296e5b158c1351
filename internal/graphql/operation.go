package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// uploadScalar is the conventional name of the multipart upload scalar.
const uploadScalar = "Upload"

var jsonNull = []byte("null")

// Operation is a parsed, immutable GraphQL operation bound to its variables
// type V and result type R. It is safe for concurrent use.
type Operation[V, R any] struct {
	name      string
	kind      ast.Operation
	document  string
	variables []Variable
	parsed    *ast.QueryDocument
	uploads   bool
}

var _ Descriptor = (*Operation[struct{}, struct{}])(nil)

// NewOperation parses document and returns an Operation for the operation
// named name. It panics if the document does not parse or does not define an
// operation of the given kind and name; it is meant for package-level
// initialisation of generated code.
func NewOperation[V, R any](kind ast.Operation, name, document string, variables ...Variable) *Operation[V, R] {
	op, err := ParseOperation[V, R](kind, name, document, variables...)
	if err != nil {
		panic(err)
	}
	return op
}

// ParseOperation is like NewOperation but returns an error instead of
// panicking.
func ParseOperation[V, R any](kind ast.Operation, name, document string, variables ...Variable) (*Operation[V, R], error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: document})
	if err != nil {
		return nil, fmt.Errorf("graphql: parse %s: %w", name, err)
	}

	def := doc.Operations.ForName(name)
	if def == nil {
		return nil, fmt.Errorf("graphql: document does not define operation %q", name)
	}
	if def.Operation != kind {
		return nil, fmt.Errorf("graphql: operation %q is a %s, not a %s", name, def.Operation, kind)
	}

	vars := make([]Variable, len(variables))
	copy(vars, variables)

	op := &Operation[V, R]{
		name:      name,
		kind:      kind,
		document:  document,
		variables: vars,
		parsed:    doc,
	}
	for _, v := range vars {
		if strings.Trim(v.Type, "[]!") == uploadScalar {
			op.uploads = true
		}
	}
	return op, nil
}

// Name returns the operation name.
func (o *Operation[V, R]) Name() string { return o.name }

// Kind returns query or mutation.
func (o *Operation[V, R]) Kind() ast.Operation { return o.kind }

// Document returns the operation text including every referenced fragment.
func (o *Operation[V, R]) Document() string { return o.document }

// Variables returns a copy of the ordered variable table.
func (o *Operation[V, R]) Variables() []Variable {
	out := make([]Variable, len(o.variables))
	copy(out, o.variables)
	return out
}

// Parsed returns the parsed document. Callers must not modify it.
func (o *Operation[V, R]) Parsed() *ast.QueryDocument { return o.parsed }

// Request builds the transport request for vars.
func (o *Operation[V, R]) Request(vars V) *Request {
	return &Request{
		OperationName: o.name,
		Kind:          o.kind,
		Query:         o.document,
		Variables:     vars,
		Uploads:       o.uploads,
	}
}

// Execute sends the operation once through c and decodes the result.
//
// When the server reports errors alongside data, both the decoded result and
// the gqlerror.List are returned. When data is null, only the errors are
// returned. Transport failures are returned as reported by c.
func (o *Operation[V, R]) Execute(ctx context.Context, c Client, vars V) (*R, error) {
	resp, err := c.Execute(ctx, o.Request(vars))
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrNoData
	}

	if len(resp.Data) == 0 || bytes.Equal(bytes.TrimSpace(resp.Data), jsonNull) {
		if len(resp.Errors) > 0 {
			return nil, resp.Errors
		}
		return nil, ErrNoData
	}

	var data R
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("graphql: %s: decode data: %w", o.name, err)
	}
	if len(resp.Errors) > 0 {
		return &data, resp.Errors
	}
	return &data, nil
}

// Start runs Execute in a new goroutine and returns a handle to observe it.
func (o *Operation[V, R]) Start(ctx context.Context, c Client, vars V) *Call[R] {
	call := newCall[R]()
	go func() {
		call.finish(o.Execute(ctx, c, vars))
	}()
	return call
}
