package analyze

import (
	"type-closure/internal/common"
)

// TypeKind represents the kind of a type expression found in a facet.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindPrimitive          // int, string, bool, error, etc.
	TypeKindArray              // array or slice of another type
	TypeKindReference          // named type, a candidate closure node
	TypeKindComposite          // pointer, map, chan, func, anonymous struct/interface, generic instance
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindArray:
		return "array"
	case TypeKindReference:
		return "reference"
	case TypeKindComposite:
		return "composite"
	default:
		return common.UnknownStr
	}
}

// TypeRef is a type expression as it appears in a field, parameter or result.
type TypeRef struct {
	Name  string    // Fully-qualified name for references and primitives
	Kind  TypeKind  // Kind of the expression
	Elem  *TypeRef  // For arrays, the component type
	Parts []TypeRef // For composites, the component types in declaration order
}

// Primitive returns a primitive TypeRef.
func Primitive(name string) TypeRef {
	return TypeRef{Name: name, Kind: TypeKindPrimitive}
}

// Reference returns a reference TypeRef to a named type.
func Reference(name string) TypeRef {
	return TypeRef{Name: name, Kind: TypeKindReference}
}

// ArrayOf returns an array TypeRef with the given component.
func ArrayOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: TypeKindArray, Elem: &elem}
}

// CompositeOf returns a composite TypeRef over the given parts.
func CompositeOf(parts ...TypeRef) TypeRef {
	return TypeRef{Kind: TypeKindComposite, Parts: parts}
}

// Component unwraps arrays until a non-array expression is reached.
// Multi-dimensional arrays unwrap to their innermost component.
func (r TypeRef) Component() TypeRef {
	for r.Kind == TypeKindArray && r.Elem != nil {
		r = *r.Elem
	}

	return r
}

// Field describes a declared field.
type Field struct {
	Name string
	Type TypeRef
}

// Signature describes a constructor parameter list.
type Signature struct {
	Name   string
	Params []TypeRef
}

// Method describes a method visible on a type.
type Method struct {
	Name      string
	Params    []TypeRef
	Results   []TypeRef
	Inherited bool // True if the method is promoted from an embedded or super type
}

// Facets holds the structural metadata of one named type.
type Facets struct {
	Name         string     // Fully-qualified name
	Supertype    *TypeRef   // Nil when the type has no supertype
	Interfaces   []TypeRef  // Implemented (or embedded) interfaces
	Fields       []Field    // Declared fields
	Constructors []Signature
	Methods      []Method // Declared and inherited methods
}

// DeclaredMethods returns the methods declared directly on the type.
func (f *Facets) DeclaredMethods() []Method {
	var out []Method

	for _, m := range f.Methods {
		if !m.Inherited {
			out = append(out, m)
		}
	}

	return out
}

// Edges returns every type expression the type refers to, in traversal order:
// supertype, interfaces, field types, constructor parameter types, then for
// each method its result types followed by its parameter types.
func (f *Facets) Edges() []TypeRef {
	var edges []TypeRef

	if f.Supertype != nil {
		edges = append(edges, *f.Supertype)
	}

	edges = append(edges, f.Interfaces...)

	for _, field := range f.Fields {
		edges = append(edges, field.Type)
	}

	for _, c := range f.Constructors {
		edges = append(edges, c.Params...)
	}

	for _, m := range f.Methods {
		edges = append(edges, m.Results...)
		edges = append(edges, m.Params...)
	}

	return edges
}

// TypeDescriptor is a node of a closure.
type TypeDescriptor struct {
	Name      string
	Kind      TypeKind
	Component *TypeDescriptor // For array kind, the component descriptor
	Facets    *Facets         // Resolved facets; set for every closure member
}

// Introspector resolves type names into their structural facets.
type Introspector interface {
	// Resolve returns the facets of the named type, or a *TypeNotFoundError.
	Resolve(name string) (*Facets, error)
}

// Lister is implemented by introspectors that can enumerate the type names
// they know without loading anything further.
type Lister interface {
	Names() []string
}
