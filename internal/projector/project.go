// Package projector turns the Jianshu GraphQL schema and its operation
// documents into Go bindings: one variables type and one result type per
// operation, one struct per fragment, one string type per enum, one struct
// per schema object, and a parsed operation handle per operation.
package projector

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

const typenameField = "__typename"

// Options controls a projection.
type Options struct {
	// Package is the Go package name of the output.
	Package string
	// Runtime is the import path of the execution runtime.
	Runtime string
	// Scalars maps every scalar the schema uses to its Go type.
	Scalars map[string]GoType
}

// Project validates sources against schema and projects them. Each source
// must hold exactly one named operation or fragment definition; its trimmed
// text becomes the wire text of that definition.
func Project(schema *ast.Schema, sources []*ast.Source, opts Options) (*Package, error) {
	if opts.Package == "" {
		return nil, errors.New("projector: package name is required")
	}
	if opts.Runtime == "" {
		opts.Runtime = DefaultRuntime
	}

	doc, texts, err := parseSources(sources)
	if err != nil {
		return nil, err
	}
	if errs := validator.Validate(schema, doc); len(errs) > 0 {
		return nil, fmt.Errorf("projector: validate operations: %w", errs)
	}

	p := &projector{
		schema:    schema,
		scalars:   opts.Scalars,
		imports:   newImportSet(),
		fragDefs:  make(map[string]*ast.FragmentDefinition, len(doc.Fragments)),
		fragments: make(map[string]*Fragment, len(doc.Fragments)),
		texts:     texts,
		decls:     make(map[string]string),
	}
	for _, f := range doc.Fragments {
		p.fragDefs[f.Name] = f
	}

	pkg := &Package{
		Name:         opts.Package,
		RuntimeAlias: p.imports.reserve(opts.Runtime),
	}
	p.declare("Operations", "operation list")

	pkg.Enums = p.enums()
	pkg.Types = p.types()

	names := make([]string, 0, len(doc.Fragments))
	for _, f := range doc.Fragments {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	for _, name := range names {
		if frag := p.fragment(name); frag != nil {
			pkg.Fragments = append(pkg.Fragments, frag)
		}
	}

	for _, op := range doc.Operations {
		if o := p.operation(op); o != nil {
			pkg.Operations = append(pkg.Operations, o)
		}
	}

	if len(p.errs) > 0 {
		return nil, fmt.Errorf("projector: %w", errors.Join(p.errs...))
	}
	pkg.Imports = p.imports.list()
	return pkg, nil
}

// parseSources parses every source and merges the definitions into one
// document. It returns the trimmed text of each definition by name.
func parseSources(sources []*ast.Source) (*ast.QueryDocument, map[string]string, error) {
	doc := &ast.QueryDocument{}
	texts := make(map[string]string, len(sources))
	for _, src := range sources {
		d, err := parser.ParseQuery(src)
		if err != nil {
			return nil, nil, fmt.Errorf("projector: parse %s: %w", src.Name, err)
		}
		if n := len(d.Operations) + len(d.Fragments); n != 1 {
			return nil, nil, fmt.Errorf("projector: %s: want exactly one definition, found %d", src.Name, n)
		}
		text := strings.TrimSpace(src.Input)
		if len(d.Operations) == 1 {
			op := d.Operations[0]
			if op.Name == "" {
				return nil, nil, fmt.Errorf("projector: %s: operation must be named", src.Name)
			}
			if op.Operation == ast.Subscription {
				return nil, nil, fmt.Errorf("projector: %s: subscriptions are not supported", src.Name)
			}
			texts[op.Name] = text
			doc.Operations = append(doc.Operations, op)
			continue
		}
		frag := d.Fragments[0]
		texts["fragment "+frag.Name] = text
		doc.Fragments = append(doc.Fragments, frag)
	}
	return doc, texts, nil
}

type projector struct {
	schema    *ast.Schema
	scalars   map[string]GoType
	imports   *importSet
	fragDefs  map[string]*ast.FragmentDefinition
	fragments map[string]*Fragment
	texts     map[string]string

	// decls maps every generated package-level identifier to what declared it.
	decls map[string]string
	errs  []error
}

func (p *projector) errorf(format string, args ...any) {
	p.errs = append(p.errs, fmt.Errorf(format, args...))
}

func (p *projector) declare(ident, origin string) {
	if prev, ok := p.decls[ident]; ok {
		p.errorf("identifier %s declared by both %s and %s", ident, prev, origin)
		return
	}
	p.decls[ident] = origin
}

func (p *projector) declareStruct(s *Struct, origin string) {
	p.declare(s.GoName, origin)
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		name := f.GoName
		if f.Embedded {
			name = f.Type
		}
		if seen[name] {
			p.errorf("%s: field %s declared twice in %s", origin, name, s.GoName)
		}
		seen[name] = true
	}
}

func builtinType(name string) bool {
	return strings.HasPrefix(name, "__")
}

func (p *projector) isRoot(def *ast.Definition) bool {
	return def == p.schema.Query || def == p.schema.Mutation || def == p.schema.Subscription
}

func (p *projector) sortedDefinitions(kinds ...ast.DefinitionKind) []*ast.Definition {
	var out []*ast.Definition
	for _, def := range p.schema.Types {
		if builtinType(def.Name) || def.BuiltIn || p.isRoot(def) {
			continue
		}
		for _, k := range kinds {
			if def.Kind == k {
				out = append(out, def)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (p *projector) enums() []*Enum {
	var out []*Enum
	for _, def := range p.sortedDefinitions(ast.Enum) {
		e := &Enum{Name: def.Name, GoName: GoName(def.Name), Description: def.Description}
		origin := "enum " + def.Name
		p.declare(e.GoName, origin)
		p.declare("All"+e.GoName, origin)
		for _, v := range def.EnumValues {
			ev := EnumValue{Name: v.Name, GoName: e.GoName + GoName(v.Name), Description: v.Description}
			p.declare(ev.GoName, origin+" value "+v.Name)
			e.Values = append(e.Values, ev)
		}
		out = append(out, e)
	}
	return out
}

// types projects every non-root object and input object of the schema.
func (p *projector) types() []*Struct {
	var out []*Struct
	for _, def := range p.sortedDefinitions(ast.Object, ast.InputObject) {
		s := &Struct{GoName: GoName(def.Name), Description: def.Description}
		if s.Description == "" {
			s.Description = fmt.Sprintf("%s is the %s schema type.", s.GoName, def.Name)
		}
		input := def.Kind == ast.InputObject
		for _, fd := range def.Fields {
			if builtinType(fd.Name) {
				continue
			}
			var (
				typ string
				err error
			)
			if input {
				typ, err = p.inputType(fd.Type, fd.Type.NonNull && fd.DefaultValue == nil)
			} else {
				typ, err = p.goType(fd.Type, p.namedEntity)
			}
			if err != nil {
				p.errorf("type %s field %s: %v", def.Name, fd.Name, err)
				continue
			}
			s.Fields = append(s.Fields, &Field{
				GoName:      GoName(fd.Name),
				Type:        typ,
				JSONName:    fd.Name,
				Omitempty:   input && !fd.Type.NonNull,
				Description: fd.Description,
			})
		}
		p.declareStruct(s, "type "+def.Name)
		out = append(out, s)
	}
	return out
}

// goType renders t with output nullability: lists are slices, nullable
// named types are pointers.
func (p *projector) goType(t *ast.Type, named func(string) (string, error)) (string, error) {
	if t.Elem != nil {
		inner, err := p.goType(t.Elem, named)
		if err != nil {
			return "", err
		}
		return "[]" + inner, nil
	}
	base, err := named(t.NamedType)
	if err != nil {
		return "", err
	}
	if !t.NonNull {
		return "*" + base, nil
	}
	return base, nil
}

// inputType renders a variable or input field type. Required values are
// plain; optional named values are pointers so absence is distinguishable.
func (p *projector) inputType(t *ast.Type, required bool) (string, error) {
	nonNull := *t
	nonNull.NonNull = true
	base, err := p.goType(&nonNull, p.namedEntity)
	if err != nil {
		return "", err
	}
	if !required && t.Elem == nil {
		return "*" + base, nil
	}
	return base, nil
}

// namedEntity resolves a named type to a scalar, enum or entity struct.
func (p *projector) namedEntity(name string) (string, error) {
	def := p.schema.Types[name]
	if def == nil {
		return "", fmt.Errorf("unknown type %s", name)
	}
	switch def.Kind {
	case ast.Object, ast.InputObject:
		return GoName(name), nil
	}
	return p.leaf(def)
}

func (p *projector) leaf(def *ast.Definition) (string, error) {
	switch def.Kind {
	case ast.Scalar:
		t, ok := p.scalars[def.Name]
		if !ok {
			return "", fmt.Errorf("no Go type configured for scalar %s", def.Name)
		}
		return p.imports.qualify(t), nil
	case ast.Enum:
		return GoName(def.Name), nil
	default:
		return "", fmt.Errorf("%s %s is not supported", strings.ToLower(string(def.Kind)), def.Name)
	}
}

func (p *projector) fragment(name string) *Fragment {
	if f, ok := p.fragments[name]; ok {
		return f
	}
	def := p.fragDefs[name]
	if def == nil {
		p.errorf("unknown fragment %s", name)
		return nil
	}
	parent := p.schema.Types[def.TypeCondition]
	if parent == nil {
		p.errorf("fragment %s: unknown type %s", name, def.TypeCondition)
		return nil
	}

	goName := GoName(name)
	f := &Fragment{
		Name:          name,
		TypeCondition: def.TypeCondition,
		Text:          p.texts["fragment "+name],
		TextConst:     lowerFirst(goName) + "FragmentText",
	}
	p.fragments[name] = f
	origin := "fragment " + name
	p.declare(f.TextConst, origin)

	f.Fragments = p.referencedFragments(def.SelectionSet)
	f.Struct = p.selectionStruct(origin, goName, parent, def.SelectionSet, &f.Nested)
	if f.Struct != nil {
		f.Struct.Description = fmt.Sprintf("%s is the %s fragment on %s.", goName, name, def.TypeCondition)
	}
	return f
}

func (p *projector) operation(def *ast.OperationDefinition) *Operation {
	suffix := "Query"
	root := p.schema.Query
	if def.Operation == ast.Mutation {
		suffix = "Mutation"
		root = p.schema.Mutation
	}
	if root == nil {
		p.errorf("operation %s: schema has no %s root", def.Name, def.Operation)
		return nil
	}

	goName := GoName(def.Name) + suffix
	o := &Operation{
		Name:        def.Name,
		Kind:        def.Operation,
		GoName:      goName,
		Text:        p.texts[def.Name],
		TextConst:   lowerFirst(goName) + "Text",
		DocumentVar: GoName(def.Name) + "Document",
	}
	origin := string(def.Operation) + " " + def.Name
	p.declare(o.TextConst, origin)
	p.declare(o.DocumentVar, origin)

	o.Fragments = p.referencedFragments(def.SelectionSet)

	vars := &Struct{
		GoName:      goName + "Variables",
		Description: fmt.Sprintf("%s holds the variables of the %s %s.", goName+"Variables", def.Name, def.Operation),
	}
	for _, v := range def.VariableDefinitions {
		required := v.Type.NonNull && v.DefaultValue == nil
		typ, err := p.inputType(v.Type, required)
		if err != nil {
			p.errorf("%s variable $%s: %v", origin, v.Variable, err)
			continue
		}
		o.Variables = append(o.Variables, &Variable{Name: v.Variable, Type: v.Type.String(), Required: required})
		vars.Fields = append(vars.Fields, &Field{
			GoName:    GoName(v.Variable),
			Type:      typ,
			JSONName:  v.Variable,
			Omitempty: !required,
		})
	}
	p.declareStruct(vars, origin)
	o.VariablesType = vars

	o.Result = p.selectionStruct(origin, goName, root, def.SelectionSet, &o.Nested)
	if o.Result != nil {
		o.Result.Description = fmt.Sprintf("%s is the result of the %s %s.", goName, def.Name, def.Operation)
	}
	return o
}

// referencedFragments returns the fragments set spreads, directly or
// transitively, in order of first reference.
func (p *projector) referencedFragments(set ast.SelectionSet) []*Fragment {
	var (
		out  []*Fragment
		seen = make(map[string]bool)
		walk func(ast.SelectionSet)
	)
	walk = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch sel := sel.(type) {
			case *ast.Field:
				walk(sel.SelectionSet)
			case *ast.InlineFragment:
				walk(sel.SelectionSet)
			case *ast.FragmentSpread:
				if seen[sel.Name] {
					continue
				}
				seen[sel.Name] = true
				if f := p.fragment(sel.Name); f != nil {
					out = append(out, f)
				}
				if def := p.fragDefs[sel.Name]; def != nil {
					walk(def.SelectionSet)
				}
			}
		}
	}
	walk(set)
	return out
}

// selected is one entry of a flattened selection set: a response key with
// its merged sub-selections, or a fragment spread.
type selected struct {
	key      string
	field    *ast.Field
	children ast.SelectionSet
	spread   string
}

// collect flattens set against parent, merging inline fragments on parent
// and repeated response keys.
func (p *projector) collect(origin string, parent *ast.Definition, set ast.SelectionSet, out *[]*selected, index map[string]*selected) {
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			key := sel.Alias
			if key == "" {
				key = sel.Name
			}
			if s, ok := index[key]; ok {
				s.children = append(s.children, sel.SelectionSet...)
				continue
			}
			s := &selected{key: key, field: sel, children: append(ast.SelectionSet(nil), sel.SelectionSet...)}
			index[key] = s
			*out = append(*out, s)
		case *ast.InlineFragment:
			if sel.TypeCondition != "" && sel.TypeCondition != parent.Name {
				p.errorf("%s: inline fragment on %s inside %s is not supported", origin, sel.TypeCondition, parent.Name)
				continue
			}
			p.collect(origin, parent, sel.SelectionSet, out, index)
		case *ast.FragmentSpread:
			def := p.fragDefs[sel.Name]
			if def == nil {
				p.errorf("%s: unknown fragment %s", origin, sel.Name)
				continue
			}
			if def.TypeCondition != parent.Name {
				p.errorf("%s: fragment %s on %s spread inside %s is not supported", origin, sel.Name, def.TypeCondition, parent.Name)
				continue
			}
			key := "..." + sel.Name
			if _, ok := index[key]; ok {
				continue
			}
			s := &selected{key: key, spread: sel.Name}
			index[key] = s
			*out = append(*out, s)
		}
	}
}

// selectionStruct projects set on parent into a struct named goName. Object
// sub-selections become nested structs prefixed with goName.
func (p *projector) selectionStruct(origin, goName string, parent *ast.Definition, set ast.SelectionSet, nested *[]*Struct) *Struct {
	var entries []*selected
	p.collect(origin, parent, set, &entries, make(map[string]*selected))

	s := &Struct{GoName: goName}
	owner := make(map[string]string)
	claim := func(key, by string) {
		if prev, ok := owner[key]; ok && prev != by {
			p.errorf("%s: response key %q of %s selected by both %s and %s", origin, key, goName, prev, by)
			return
		}
		owner[key] = by
	}

	for _, e := range entries {
		if e.spread != "" {
			frag := p.fragment(e.spread)
			if frag == nil || frag.Struct == nil {
				continue
			}
			for _, key := range responseKeys(frag.Struct, p.fragments) {
				claim(key, "fragment "+e.spread)
			}
			s.Fields = append(s.Fields, &Field{Embedded: true, Type: frag.Struct.GoName})
			continue
		}

		claim(e.key, "the selection")
		field, err := p.selectedField(origin, goName, parent, e, nested)
		if err != nil {
			p.errorf("%s: %v", origin, err)
			continue
		}
		s.Fields = append(s.Fields, field)
	}

	p.declareStruct(s, origin)
	return s
}

func (p *projector) selectedField(origin, prefix string, parent *ast.Definition, e *selected, nested *[]*Struct) (*Field, error) {
	name := e.field.Name
	f := &Field{GoName: GoName(e.key), JSONName: e.key}
	if name == typenameField {
		f.Type = "string"
		return f, nil
	}

	def := parent.Fields.ForName(name)
	if def == nil {
		return nil, fmt.Errorf("%s has no field %s", parent.Name, name)
	}
	f.Description = def.Description

	typ, err := p.goType(def.Type, func(named string) (string, error) {
		child := p.schema.Types[named]
		if child == nil {
			return "", fmt.Errorf("field %s: unknown type %s", name, named)
		}
		switch child.Kind {
		case ast.Object, ast.Interface:
			if len(e.children) == 0 {
				return "", fmt.Errorf("field %s of type %s needs a selection", name, named)
			}
			idx := len(*nested)
			*nested = append(*nested, nil)
			s := p.selectionStruct(origin, prefix+f.GoName, child, e.children, nested)
			s.Description = fmt.Sprintf("%s is the %s selection of %s.", s.GoName, e.key, prefix)
			(*nested)[idx] = s
			return s.GoName, nil
		case ast.Union:
			return "", fmt.Errorf("field %s: union %s is not supported", name, named)
		}
		if len(e.children) > 0 {
			return "", fmt.Errorf("field %s of type %s cannot have a selection", name, named)
		}
		return p.leaf(child)
	})
	if err != nil {
		return nil, err
	}
	f.Type = typ
	return f, nil
}

// responseKeys lists the JSON keys a struct decodes, descending into
// embedded fragment structs.
func responseKeys(s *Struct, fragments map[string]*Fragment) []string {
	byGoName := make(map[string]*Struct, len(fragments))
	for _, f := range fragments {
		if f.Struct != nil {
			byGoName[f.Struct.GoName] = f.Struct
		}
	}
	var (
		keys []string
		walk func(*Struct)
	)
	walk = func(s *Struct) {
		for _, f := range s.Fields {
			if !f.Embedded {
				keys = append(keys, f.JSONName)
				continue
			}
			if inner := byGoName[f.Type]; inner != nil {
				walk(inner)
			}
		}
	}
	walk(s)
	return keys
}

// importSet assigns unique package identifiers to imported paths.
type importSet struct {
	byPath  map[string]string
	byAlias map[string]string
}

func newImportSet() *importSet {
	return &importSet{byPath: make(map[string]string), byAlias: make(map[string]string)}
}

// reserve registers importPath and returns its identifier.
func (s *importSet) reserve(importPath string) string {
	if alias, ok := s.byPath[importPath]; ok {
		return alias
	}
	elems := strings.Split(importPath, "/")
	base := packageIdent(elems[len(elems)-1])
	if isVersion(base) && len(elems) > 1 {
		elems = elems[:len(elems)-1]
		base = packageIdent(elems[len(elems)-1])
	}
	alias := base
	if _, taken := s.byAlias[alias]; taken && len(elems) > 1 {
		alias = packageIdent(elems[len(elems)-2]) + base
	}
	for i := 2; ; i++ {
		if _, taken := s.byAlias[alias]; !taken {
			break
		}
		alias = fmt.Sprintf("%s%d", base, i)
	}
	s.byPath[importPath] = alias
	s.byAlias[alias] = importPath
	return alias
}

// qualify returns the Go expression naming t.
func (s *importSet) qualify(t GoType) string {
	if t.ImportPath == "" {
		return t.Name
	}
	return s.reserve(t.ImportPath) + "." + t.Name
}

// list returns the imports sorted by path. Aliases equal to the last path
// element are left empty.
func (s *importSet) list() []Import {
	out := make([]Import, 0, len(s.byPath))
	for p, alias := range s.byPath {
		imp := Import{Path: p}
		if alias != path.Base(p) {
			imp.Alias = alias
		}
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func packageIdent(elem string) string {
	elem = strings.TrimPrefix(elem, "go-")
	var b strings.Builder
	for _, r := range elem {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9' && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "pkg"
	}
	return strings.ToLower(b.String())
}

func isVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}
	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
