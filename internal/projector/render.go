package projector

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed bindings.go.tmpl
var bindingsTemplate string

var tmpl = template.Must(template.New("bindings").Funcs(template.FuncMap{
	"literal": literal,
	"oneline": oneline,
}).Parse(bindingsTemplate))

// Render produces the formatted Go source of pkg. filename is only used in
// error messages.
func Render(pkg *Package, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pkg); err != nil {
		return nil, fmt.Errorf("projector: render: %w", err)
	}
	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("projector: format %s: %w", filename, err)
	}
	return out, nil
}

// Generate loads the schema and operations named by cfg, projects them and
// renders the bindings. It does not write cfg.Output.
func Generate(cfg *Config) ([]byte, *Package, error) {
	schema, sources, err := Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	scalars, err := cfg.ScalarTypes()
	if err != nil {
		return nil, nil, err
	}
	pkg, err := Project(schema, sources, Options{
		Package: cfg.Package,
		Runtime: cfg.Runtime,
		Scalars: scalars,
	})
	if err != nil {
		return nil, nil, err
	}
	name := cfg.Output
	if name == "" {
		name = "generated.go"
	}
	src, err := Render(pkg, name)
	if err != nil {
		return nil, nil, err
	}
	return src, pkg, nil
}

// literal quotes s as a Go string, preferring a raw string.
func literal(s string) string {
	if strings.ContainsAny(s, "`\r") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

// oneline collapses whitespace so text fits a line comment.
func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
