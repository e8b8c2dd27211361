package closure

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-closure/internal/analyze"
	"type-closure/internal/metadata"
)

var javaNamespaces = Namespaces{"java", "sun"}

const javaYAML = `
types:
  - name: java.lang.Object
    methods:
      - name: toString
        returns: java.lang.String
      - name: equals
        returns: boolean
        params: [java.lang.Object]
      - name: getClass
        returns: java.lang.Class
  - name: java.lang.String
    supertype: java.lang.Object
    methods:
      - name: length
        returns: int
  - name: java.lang.Class
    supertype: java.lang.Object
  - name: Point
    supertype: java.lang.Object
    fields:
      - name: x
        type: int
    constructors:
      - params: [int]
    methods:
      - name: getX
        returns: int
  - name: Node
    fields:
      - name: children
        type: Node[]
    methods:
      - name: next
        returns: Node
  - name: Grid
    fields:
      - name: cells
        type: Point[][]
      - name: weights
        type: double[][]
  - name: A
    fields:
      - name: b
        type: B
  - name: B
    methods:
      - name: c
        returns: C
  - name: C
    constructors:
      - params: [D, int]
  - name: D
  - name: Broken
    fields:
      - name: ghost
        type: Missing
`

func newJavaExplorer(t *testing.T) *Explorer {
	t.Helper()

	table, err := metadata.Parse([]byte(javaYAML))
	require.NoError(t, err)

	return NewExplorer(table, javaNamespaces)
}

func allConfigs() []TraversalConfig {
	return []TraversalConfig{
		{IgnoreFramework: false, Recursive: false},
		{IgnoreFramework: false, Recursive: true},
		{IgnoreFramework: true, Recursive: false},
		{IgnoreFramework: true, Recursive: true},
	}
}

func TestCompute_PointIgnoringFramework(t *testing.T) {
	e := newJavaExplorer(t)

	set, err := e.Compute("Point", TraversalConfig{IgnoreFramework: true, Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Point"}, set.Names(), spew.Sdump(set.Names()))
}

func TestCompute_PointWithFramework(t *testing.T) {
	e := newJavaExplorer(t)

	set, err := e.Compute("Point", DefaultTraversalConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"Point", "java.lang.Object", "java.lang.String", "java.lang.Class"}, set.Names())
}

func TestCompute_NonRecursiveSkipsFrameworkFilter(t *testing.T) {
	e := newJavaExplorer(t)

	set, err := e.Compute("Point", TraversalConfig{IgnoreFramework: true, Recursive: false})
	require.NoError(t, err)

	// Directly referenced framework types stay in non-recursive mode.
	assert.Equal(t, []string{"Point", "java.lang.Object", "java.lang.String", "java.lang.Class"}, set.Names())
}

func TestCompute_RootAlwaysMember(t *testing.T) {
	e := newJavaExplorer(t)

	for _, root := range []string{"Point", "Node", "Grid", "A", "D", "java.lang.Object"} {
		for _, cfg := range allConfigs() {
			set, err := e.Compute(root, cfg)
			require.NoError(t, err, "%s %+v", root, cfg)
			assert.True(t, set.Contains(root), "%s %+v", root, cfg)
			assert.Equal(t, root, set.Names()[0])
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	e := newJavaExplorer(t)

	for _, cfg := range allConfigs() {
		first, err := e.Compute("Point", cfg)
		require.NoError(t, err)

		second, err := e.Compute("Point", cfg)
		require.NoError(t, err)

		assert.ElementsMatch(t, first.Names(), second.Names(), "%+v", cfg)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	e := newJavaExplorer(t)

	for _, root := range []string{"Point", "A", "Grid", "Node"} {
		shallow, err := e.Compute(root, TraversalConfig{Recursive: false})
		require.NoError(t, err)

		deep, err := e.Compute(root, TraversalConfig{Recursive: true})
		require.NoError(t, err)

		assert.Subset(t, deep.Names(), shallow.Names(), root)
	}
}

func TestCompute_Chain(t *testing.T) {
	e := newJavaExplorer(t)

	shallow, err := e.Compute("A", TraversalConfig{Recursive: false})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, shallow.Names())

	deep, err := e.Compute("A", TraversalConfig{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, deep.Names())
}

func TestCompute_MaxDepth(t *testing.T) {
	e := newJavaExplorer(t)

	tests := []struct {
		depth int
		want  []string
	}{
		{depth: 1, want: []string{"A", "B"}},
		{depth: 2, want: []string{"A", "B", "C"}},
		{depth: 3, want: []string{"A", "B", "C", "D"}},
		{depth: 0, want: []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		set, err := e.Compute("A", TraversalConfig{Recursive: true, MaxDepth: tt.depth})
		require.NoError(t, err)
		assert.Equal(t, tt.want, set.Names(), "depth %d", tt.depth)
	}
}

func TestCompute_CycleTerminates(t *testing.T) {
	e := newJavaExplorer(t)

	first, err := e.Compute("Node", DefaultTraversalConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"Node"}, first.Names())

	second, err := e.Compute("Node", DefaultTraversalConfig())
	require.NoError(t, err)
	assert.Equal(t, first.Len(), second.Len())
}

func TestCompute_ArrayUnwrapping(t *testing.T) {
	e := newJavaExplorer(t)

	set, err := e.Compute("Grid", TraversalConfig{IgnoreFramework: true, Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Grid", "Point"}, set.Names())
	for _, d := range set.Descriptors() {
		assert.Equal(t, analyze.TypeKindReference, d.Kind, d.Name)
		assert.NotContains(t, d.Name, "[]")
		assert.NotNil(t, d.Facets, d.Name)
	}
}

func TestCompute_RootNotFound(t *testing.T) {
	e := newJavaExplorer(t)

	_, err := e.Compute("Unresolvable.Name", DefaultTraversalConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, analyze.ErrTypeNotFound)

	var notFound *analyze.TypeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Unresolvable.Name", notFound.Name)

	var defect *DefectError
	assert.False(t, errors.As(err, &defect))
}

func TestCompute_DiscoveredTypeUnresolvedIsDefect(t *testing.T) {
	e := newJavaExplorer(t)

	for _, cfg := range []TraversalConfig{{Recursive: true}, {Recursive: false}} {
		_, err := e.Compute("Broken", cfg)
		require.Error(t, err)

		var defect *DefectError
		require.ErrorAs(t, err, &defect)
		assert.Equal(t, "Broken", defect.Root)
		assert.Equal(t, "Missing", defect.Name)
		assert.ErrorIs(t, err, analyze.ErrTypeNotFound)
	}
}

func TestReferences(t *testing.T) {
	refs := []analyze.TypeRef{
		analyze.Primitive("int"),
		analyze.ArrayOf(analyze.ArrayOf(analyze.Reference("X"))),
		analyze.CompositeOf(analyze.Primitive("string"), analyze.Reference("Y")),
		analyze.CompositeOf(),
		analyze.Reference("X"),
	}

	assert.Equal(t, []string{"X", "Y", "X"}, References(refs))
}

func TestNamespaces_Match(t *testing.T) {
	tests := []struct {
		ns   Namespaces
		name string
		want bool
	}{
		{javaNamespaces, "java.lang.Object", true},
		{javaNamespaces, "sun.misc.Unsafe", true},
		{javaNamespaces, "javax.swing.JFrame", false},
		{javaNamespaces, "Point", false},
		{Namespaces{"java."}, "java.util.List", true},
		{Namespaces{"net"}, "net/http.Client", true},
		{Namespaces{"net"}, "net.IP", true},
		{Namespaces{"net"}, "netx.Conn", false},
		{Namespaces{"time"}, "time", true},
		{Namespaces{""}, "anything", false},
		{nil, "java.lang.Object", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ns.Match(tt.name), "%v %s", tt.ns, tt.name)
	}
}

func TestVisitedSet(t *testing.T) {
	v := NewVisitedSet()

	assert.True(t, v.Add(&analyze.TypeDescriptor{Name: "B"}))
	assert.True(t, v.Add(&analyze.TypeDescriptor{Name: "A"}))
	assert.False(t, v.Add(&analyze.TypeDescriptor{Name: "B"}))

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []string{"B", "A"}, v.Names())
	assert.True(t, v.Contains("A"))
	assert.Nil(t, v.Get("C"))
}
