// Package schema embeds the Jianshu GraphQL schema.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// FileName is the name the embedded SDL is reported under in errors.
const FileName = "schema.graphqls"

//go:embed schema.graphqls
var sdl string

var (
	loadOnce sync.Once
	loaded   *ast.Schema
	loadErr  error
)

// Source returns the embedded SDL as a gqlparser source.
func Source() *ast.Source {
	return &ast.Source{Name: FileName, Input: sdl}
}

// Load parses the embedded SDL. The schema is built once per process and
// shared; callers must not modify it.
func Load() (*ast.Schema, error) {
	loadOnce.Do(func() {
		loaded, loadErr = gqlparser.LoadSchema(Source())
		if loadErr != nil {
			loadErr = fmt.Errorf("schema: load %s: %w", FileName, loadErr)
		}
	})
	return loaded, loadErr
}

// MustLoad is Load for package initialisation; it panics on error.
func MustLoad() *ast.Schema {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}
