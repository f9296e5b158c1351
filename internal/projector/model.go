package projector

import "github.com/vektah/gqlparser/v2/ast"

// Package is the projection of a schema and its operation documents into Go
// declarations, ready to render.
type Package struct {
	Name    string
	Imports []Import

	// RuntimeAlias is the identifier the runtime package is imported under.
	RuntimeAlias string

	Enums      []*Enum
	Types      []*Struct
	Fragments  []*Fragment
	Operations []*Operation
}

// Import is one import of the generated file.
type Import struct {
	Alias string
	Path  string
}

// Enum is a schema enum projected to a Go string type.
type Enum struct {
	Name        string
	GoName      string
	Description string
	Values      []EnumValue
}

// EnumValue is one member of an Enum.
type EnumValue struct {
	Name        string
	GoName      string
	Description string
}

// Struct is a generated Go struct type.
type Struct struct {
	GoName      string
	Description string
	Fields      []*Field
}

// Field is a struct field. Embedded fields carry only Type.
type Field struct {
	GoName      string
	Type        string
	JSONName    string
	Omitempty   bool
	Embedded    bool
	Description string
}

// Tag returns the struct tag literal of f, or "" for embedded fields.
func (f *Field) Tag() string {
	if f.Embedded {
		return ""
	}
	if f.Omitempty {
		return "`json:\"" + f.JSONName + ",omitempty\"`"
	}
	return "`json:\"" + f.JSONName + "\"`"
}

// Fragment is a named fragment projected to a reusable struct and a text
// constant.
type Fragment struct {
	Name          string
	TypeCondition string
	Text          string
	TextConst     string

	// Fragments lists the fragments this fragment spreads, directly or
	// transitively, in order of first reference.
	Fragments []*Fragment

	Struct *Struct
	Nested []*Struct
}

// Operation is a named query or mutation.
type Operation struct {
	Name   string
	Kind   ast.Operation
	GoName string

	Text      string
	TextConst string

	// DocumentVar is the package-level variable holding the runtime
	// operation handle.
	DocumentVar string

	// Fragments lists every fragment the operation references, directly or
	// transitively, in order of first reference. Each is appended once to
	// the operation text.
	Fragments []*Fragment

	Variables     []*Variable
	VariablesType *Struct
	Result        *Struct
	Nested        []*Struct
}

// KindConst returns the runtime constant naming the operation kind.
func (o *Operation) KindConst() string {
	if o.Kind == ast.Mutation {
		return "Mutation"
	}
	return "Query"
}

// Variable is one declared operation variable.
type Variable struct {
	Name     string
	Type     string
	Required bool
}
