package analyze

import (
	"strings"

	"type-closure/internal/common"
)

// TypeStringer provides methods for creating readable type strings.
type TypeStringer struct {
	// Short renders references with the package alias instead of the full
	// import path ("geometry.Point" instead of "example.com/x/geometry.Point").
	Short bool
}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer(short bool) *TypeStringer {
	return &TypeStringer{Short: short}
}

// TypeString returns a human-readable string representation of a TypeRef.
// Arrays render with a "[]" suffix, composites as their parts in braces.
func (s *TypeStringer) TypeString(r TypeRef) string {
	switch r.Kind {
	case TypeKindPrimitive:
		return r.Name

	case TypeKindReference:
		return s.Name(r.Name)

	case TypeKindArray:
		if r.Elem != nil {
			return s.TypeString(*r.Elem) + "[]"
		}
		return "<unknown>[]"

	case TypeKindComposite:
		parts := make([]string, 0, len(r.Parts))
		for _, p := range r.Parts {
			parts = append(parts, s.TypeString(p))
		}
		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return "<" + common.UnknownStr + ">"
	}
}

// Name renders a qualified type name.
func (s *TypeStringer) Name(name string) string {
	if !s.Short {
		return name
	}

	pkgPath, typeName := common.SplitQualified(name)
	if pkgPath == "" || !strings.Contains(pkgPath, "/") {
		return name
	}

	return common.PkgAlias(pkgPath) + "." + typeName
}

// MethodString renders a method as "Name(params) results".
func (s *TypeStringer) MethodString(m Method) string {
	var b strings.Builder

	b.WriteString(m.Name)
	b.WriteString("(")
	b.WriteString(s.list(m.Params))
	b.WriteString(")")

	switch len(m.Results) {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(s.TypeString(m.Results[0]))
	default:
		b.WriteString(" (")
		b.WriteString(s.list(m.Results))
		b.WriteString(")")
	}

	return b.String()
}

func (s *TypeStringer) list(refs []TypeRef) string {
	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		parts = append(parts, s.TypeString(r))
	}

	return strings.Join(parts, ", ")
}
