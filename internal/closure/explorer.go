package closure

import (
	"fmt"

	"type-closure/internal/analyze"
)

// DefectError reports a type discovered through valid metadata that the
// introspector then failed to resolve. It is not recoverable.
type DefectError struct {
	Root string // Root whose closure was being computed
	Name string // Discovered type that failed to resolve
	Err  error
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("introspector defect: %s (reached from %s) does not resolve: %v", e.Name, e.Root, e.Err)
}

func (e *DefectError) Unwrap() error {
	return e.Err
}

// Explorer computes type closures over an Introspector.
type Explorer struct {
	introspector analyze.Introspector
	framework    Namespaces
}

// NewExplorer creates an Explorer. framework lists the reserved namespaces
// skipped when TraversalConfig.IgnoreFramework is set.
func NewExplorer(introspector analyze.Introspector, framework Namespaces) *Explorer {
	return &Explorer{
		introspector: introspector,
		framework:    framework,
	}
}

// frame is one type whose discovered references are being processed.
type frame struct {
	refs  []string
	next  int
	depth int
}

// Compute returns the closure of root. It fails with a
// *analyze.TypeNotFoundError when root does not resolve, and with a
// *DefectError when a discovered type does not.
//
// The explicit frame stack visits types in the same order as a depth-first
// recursion: a newly added type is expanded before the remaining references
// of the type that discovered it.
func (e *Explorer) Compute(root string, cfg TraversalConfig) (*VisitedSet, error) {
	facets, err := e.introspector.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	visited := NewVisitedSet()
	visited.Add(descriptor(root, facets))

	stack := []frame{{refs: References(facets.Edges())}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.refs) {
			stack = stack[:len(stack)-1]
			continue
		}

		name := top.refs[top.next]
		top.next++
		depth := top.depth + 1

		if visited.Contains(name) {
			continue
		}

		if cfg.Recursive && cfg.IgnoreFramework && e.IsFramework(name) {
			continue
		}

		f, err := e.introspector.Resolve(name)
		if err != nil {
			return nil, &DefectError{Root: root, Name: name, Err: err}
		}

		visited.Add(descriptor(name, f))

		if cfg.expands(depth) {
			stack = append(stack, frame{refs: References(f.Edges()), depth: depth})
		}
	}

	return visited, nil
}

// Candidates returns the type names the introspector can enumerate, or nil
// when it cannot.
func (e *Explorer) Candidates() []string {
	if l, ok := e.introspector.(analyze.Lister); ok {
		return l.Names()
	}

	return nil
}

// IsFramework reports whether name lies in a framework namespace.
func (e *Explorer) IsFramework(name string) bool {
	return e.framework.Match(name)
}

// References flattens type expressions into the names of the reference types
// they contain, in order. Arrays unwrap to their component, primitives are
// dropped and composites contribute their parts. Duplicates are kept.
func References(refs []analyze.TypeRef) []string {
	var out []string

	var walk func(r analyze.TypeRef)
	walk = func(r analyze.TypeRef) {
		r = r.Component()

		switch r.Kind {
		case analyze.TypeKindReference:
			out = append(out, r.Name)
		case analyze.TypeKindComposite:
			for _, p := range r.Parts {
				walk(p)
			}
		case analyze.TypeKindPrimitive, analyze.TypeKindArray, analyze.TypeKindUnknown:
			// Not a node
		}
	}

	for _, r := range refs {
		walk(r)
	}

	return out
}

func descriptor(name string, f *analyze.Facets) *analyze.TypeDescriptor {
	return &analyze.TypeDescriptor{
		Name:   name,
		Kind:   analyze.TypeKindReference,
		Facets: f,
	}
}
