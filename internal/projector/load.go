package projector

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/jamesprial/jianshu-mcp/internal/operations"
	"github.com/jamesprial/jianshu-mcp/internal/schema"
)

// Load reads the schema files and the operation documents named by cfg.
// Operation files are returned sorted by path within each pattern; a file
// matched by several patterns is read once. With no schema files configured
// the embedded Jianshu schema is used, and with no operation patterns the
// embedded Jianshu documents are.
func Load(cfg *Config) (*ast.Schema, []*ast.Source, error) {
	schemaSources := []*ast.Source{schema.Source()}
	if len(cfg.Schema) > 0 {
		schemaSources = make([]*ast.Source, 0, len(cfg.Schema))
		for _, path := range cfg.Schema {
			src, err := readSource(path)
			if err != nil {
				return nil, nil, err
			}
			schemaSources = append(schemaSources, src)
		}
	}
	s, err := gqlparser.LoadSchema(schemaSources...)
	if err != nil {
		return nil, nil, fmt.Errorf("projector: load schema: %w", err)
	}

	if len(cfg.Operations) == 0 {
		sources, err := operations.Sources()
		if err != nil {
			return nil, nil, fmt.Errorf("projector: %w", err)
		}
		return s, sources, nil
	}

	var (
		sources []*ast.Source
		seen    = make(map[string]bool)
	)
	for _, pattern := range cfg.Operations {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("projector: operations pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, nil, fmt.Errorf("projector: operations pattern %q matched no files", pattern)
		}
		sort.Strings(matches)
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true
			src, err := readSource(path)
			if err != nil {
				return nil, nil, err
			}
			sources = append(sources, src)
		}
	}
	return s, sources, nil
}

func readSource(path string) (*ast.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("projector: read %s: %w", path, err)
	}
	return &ast.Source{Name: filepath.ToSlash(path), Input: string(data)}, nil
}
