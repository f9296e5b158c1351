// Package operations embeds the Jianshu operation documents: named
// fragments, queries and mutations, one definition per file.
package operations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// Dirs lists the document directories in the order their sources are
// returned.
var Dirs = []string{"fragments", "queries", "mutations"}

//go:embed fragments/*.graphql queries/*.graphql mutations/*.graphql
var FS embed.FS

// Sources returns every embedded document as a gqlparser source named by its
// path, fragments first, then queries, then mutations, each group sorted by
// file name.
func Sources() ([]*ast.Source, error) {
	return SourcesFrom(FS)
}

// SourcesFrom is Sources over an arbitrary file system laid out like FS.
// Missing directories are skipped.
func SourcesFrom(fsys fs.FS) ([]*ast.Source, error) {
	var out []*ast.Source
	for _, dir := range Dirs {
		matches, err := fs.Glob(fsys, dir+"/*.graphql")
		if err != nil {
			return nil, fmt.Errorf("operations: glob %s: %w", dir, err)
		}
		sort.Strings(matches)
		for _, name := range matches {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("operations: read %s: %w", name, err)
			}
			out = append(out, &ast.Source{Name: name, Input: string(data)})
		}
	}
	return out, nil
}
