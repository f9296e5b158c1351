package projector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultRuntime is the import path of the execution runtime the generated
// code builds on.
const DefaultRuntime = "github.com/jamesprial/jianshu-mcp/internal/graphql"

// DefaultScalars maps GraphQL scalars to Go types. Entries from Config.Scalars
// are layered on top.
var DefaultScalars = map[string]string{
	"Int":     "int",
	"Float":   "float64",
	"String":  "string",
	"Boolean": "bool",
	"ID":      "string",
}

// Config is the bindgen configuration file.
type Config struct {
	// Schema lists SDL files, merged in order. Empty selects the embedded
	// Jianshu schema.
	Schema []string `yaml:"schema"`
	// Operations lists glob patterns of operation documents. Each file holds
	// exactly one operation or fragment definition. Empty selects the
	// embedded Jianshu documents.
	Operations []string `yaml:"operations"`
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`
	// Output is the path of the generated file.
	Output string `yaml:"output"`
	// Runtime is the import path of the execution runtime.
	Runtime string `yaml:"runtime"`
	// Scalars maps custom scalars to Go types, either a predeclared type
	// ("int64") or a qualified one ("time.Time",
	// "github.com/99designs/gqlgen/graphql.Upload").
	Scalars map[string]string `yaml:"scalars"`
}

// LoadConfig reads a YAML config file and resolves relative schema,
// operation and output paths against the directory holding it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("projector: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("projector: unmarshal config: %w", err)
	}
	if cfg.Runtime == "" {
		cfg.Runtime = DefaultRuntime
	}

	dir := filepath.Dir(path)
	for i, p := range cfg.Schema {
		cfg.Schema[i] = resolvePath(dir, p)
	}
	for i, p := range cfg.Operations {
		cfg.Operations[i] = resolvePath(dir, p)
	}
	if cfg.Output != "" {
		cfg.Output = resolvePath(dir, cfg.Output)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate reports missing required settings and malformed scalar bindings.
func (c *Config) Validate() error {
	var errs []error
	if c.Package == "" {
		errs = append(errs, errors.New("package: required"))
	}
	for name, goType := range c.Scalars {
		if _, err := ParseGoType(goType); err != nil {
			errs = append(errs, fmt.Errorf("scalars.%s: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("projector: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ScalarTypes returns DefaultScalars overlaid with the configured bindings.
func (c *Config) ScalarTypes() (map[string]GoType, error) {
	out := make(map[string]GoType, len(DefaultScalars)+len(c.Scalars))
	for name, spec := range DefaultScalars {
		t, err := ParseGoType(spec)
		if err != nil {
			return nil, err
		}
		out[name] = t
	}
	for name, spec := range c.Scalars {
		t, err := ParseGoType(spec)
		if err != nil {
			return nil, fmt.Errorf("projector: scalar %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// GoType is a Go type named by an optional import path and a type name.
type GoType struct {
	ImportPath string
	Name       string
}

// ParseGoType parses "name" or "import/path.Name".
func ParseGoType(s string) (GoType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GoType{}, errors.New("empty Go type")
	}
	slash := strings.LastIndex(s, "/")
	dot := strings.LastIndex(s, ".")
	if dot < slash {
		return GoType{}, fmt.Errorf("Go type %q has no type name after the import path", s)
	}
	if dot < 0 {
		return GoType{Name: s}, nil
	}
	if dot == 0 || dot == len(s)-1 {
		return GoType{}, fmt.Errorf("malformed Go type %q", s)
	}
	return GoType{ImportPath: s[:dot], Name: s[dot+1:]}, nil
}

func (t GoType) String() string {
	if t.ImportPath == "" {
		return t.Name
	}
	return t.ImportPath + "." + t.Name
}
