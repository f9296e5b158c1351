// Package graphql provides the execution runtime for the generated Jianshu
// bindings: an HTTP GraphQL client and a typed, reusable operation handle.
package graphql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Operation kinds supported by the bindings.
const (
	Query    = ast.Query
	Mutation = ast.Mutation
)

var (
	// ErrUploadUnsupported is returned by HTTPClient for requests that carry
	// Upload variables. Multipart transport is left to custom Client
	// implementations.
	ErrUploadUnsupported = errors.New("graphql: file upload transport is not supported")

	// ErrNoData is returned when a response carries neither data nor errors.
	ErrNoData = errors.New("graphql: response contained no data")
)

// Request is a single GraphQL operation ready to be sent.
type Request struct {
	OperationName string
	Kind          ast.Operation
	Query         string
	// Variables is marshaled as the JSON "variables" object. It may be a
	// generated variables struct, a map, or nil.
	Variables any
	// Uploads is set when the operation declares at least one Upload variable.
	Uploads bool
}

// Response is the decoded body of a GraphQL response. Errors may be non-empty
// alongside Data when the server reports a partial failure.
type Response struct {
	Data       json.RawMessage `json:"data"`
	Errors     gqlerror.List   `json:"errors,omitempty"`
	Extensions map[string]any  `json:"extensions,omitempty"`
}

// Client executes GraphQL requests. A Client does not interpret GraphQL
// errors; it returns an error only when no response could be obtained.
type Client interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Variable is one row of an operation's variable table.
type Variable struct {
	Name string
	Type string
}

// Descriptor exposes the wire shape of an operation independently of its Go
// variable and result types.
type Descriptor interface {
	Name() string
	Kind() ast.Operation
	Document() string
	Variables() []Variable
}
