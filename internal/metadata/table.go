package metadata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"type-closure/internal/analyze"
)

const arraySuffix = "[]"

// Table is an Introspector over a precomputed metadata document.
type Table struct {
	primitives map[string]bool
	types      map[string]*TypeEntry
	order      []string
}

var (
	_ analyze.Introspector = (*Table)(nil)
	_ analyze.Lister       = (*Table)(nil)
)

// LoadFile loads and parses a YAML metadata table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata YAML: %w", err)
	}

	return New(&doc)
}

// New builds a Table from a document, applying defaults and validating names.
func New(doc *Document) (*Table, error) {
	applyDefaults(doc)

	t := &Table{
		primitives: make(map[string]bool, len(doc.Primitives)),
		types:      make(map[string]*TypeEntry, len(doc.Types)),
	}

	for _, p := range doc.Primitives {
		t.primitives[p] = true
	}

	var errs []error
	for i := range doc.Types {
		entry := &doc.Types[i]

		switch {
		case entry.Name == "":
			errs = append(errs, fmt.Errorf("types[%d]: missing name", i))
		case t.primitives[entry.Name]:
			errs = append(errs, fmt.Errorf("types[%d]: %s is declared as a primitive", i, entry.Name))
		case t.types[entry.Name] != nil:
			errs = append(errs, fmt.Errorf("types[%d]: duplicate type %s", i, entry.Name))
		default:
			t.types[entry.Name] = entry
			t.order = append(t.order, entry.Name)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid metadata table: %w", errors.Join(errs...))
	}

	return t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if len(doc.Primitives) == 0 {
		doc.Primitives = append([]string(nil), DefaultPrimitives...)
	}
}

// Names returns the declared type names in document order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Resolve returns the facets of a declared type.
func (t *Table) Resolve(name string) (*analyze.Facets, error) {
	entry, ok := t.types[name]
	if !ok {
		return nil, analyze.NotFound(name)
	}

	f := &analyze.Facets{Name: name}

	if entry.Supertype != "" {
		super := t.Expr(entry.Supertype)
		f.Supertype = &super
	}

	for _, iface := range entry.Interfaces {
		f.Interfaces = append(f.Interfaces, t.Expr(iface))
	}

	for _, field := range entry.Fields {
		f.Fields = append(f.Fields, analyze.Field{Name: field.Name, Type: t.Expr(field.Type)})
	}

	for _, c := range entry.Constructors {
		f.Constructors = append(f.Constructors, analyze.Signature{Name: name, Params: t.exprs(c.Params)})
	}

	f.Methods = t.methods(entry)

	return f, nil
}

// methods returns the declared methods of entry followed by the methods it
// inherits from its supertype chain and interfaces.
func (t *Table) methods(entry *TypeEntry) []analyze.Method {
	var out []analyze.Method

	seen := make(map[string]bool)
	visited := map[string]bool{entry.Name: true}

	for _, m := range entry.Methods {
		seen[methodKey(m)] = true
		out = append(out, t.method(m, false))
	}

	queue := t.parents(entry)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if visited[name] {
			continue
		}
		visited[name] = true

		parent, ok := t.types[name]
		if !ok {
			// Parent outside the table: its methods are unknown
			continue
		}

		for _, m := range parent.Methods {
			key := methodKey(m)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, t.method(m, true))
		}

		queue = append(queue, t.parents(parent)...)
	}

	return out
}

func (t *Table) parents(entry *TypeEntry) []string {
	var out []string
	if entry.Supertype != "" {
		out = append(out, entry.Supertype)
	}

	return append(out, entry.Interfaces...)
}

func (t *Table) method(m MethodEntry, inherited bool) analyze.Method {
	out := analyze.Method{
		Name:      m.Name,
		Params:    t.exprs(m.Params),
		Inherited: inherited,
	}

	if m.Returns != "" {
		out.Results = []analyze.TypeRef{t.Expr(m.Returns)}
	}

	return out
}

func methodKey(m MethodEntry) string {
	return m.Name + "(" + strings.Join(m.Params, ",") + ")"
}

func (t *Table) exprs(in []string) []analyze.TypeRef {
	out := make([]analyze.TypeRef, 0, len(in))
	for _, s := range in {
		out = append(out, t.Expr(s))
	}

	return out
}

// Expr parses a type expression like "int", "Point" or "Point[][]".
func (t *Table) Expr(s string) analyze.TypeRef {
	s = strings.TrimSpace(s)

	if base, ok := strings.CutSuffix(s, arraySuffix); ok {
		return analyze.ArrayOf(t.Expr(base))
	}

	if t.primitives[s] {
		return analyze.Primitive(s)
	}

	return analyze.Reference(s)
}
