package metadata

// Document is the root of a metadata table file.
type Document struct {
	Primitives []string    `yaml:"primitives,omitempty"`
	Types      []TypeEntry `yaml:"types"`
}

// TypeEntry describes one named type.
type TypeEntry struct {
	Name         string             `yaml:"name"`
	Supertype    string             `yaml:"supertype,omitempty"`
	Interfaces   []string           `yaml:"interfaces,omitempty"`
	Fields       []FieldEntry       `yaml:"fields,omitempty"`
	Constructors []ConstructorEntry `yaml:"constructors,omitempty"`
	Methods      []MethodEntry      `yaml:"methods,omitempty"`
}

// FieldEntry describes a declared field.
type FieldEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ConstructorEntry describes a constructor parameter list.
type ConstructorEntry struct {
	Params []string `yaml:"params,omitempty"`
}

// MethodEntry describes a declared method. An empty Returns means no result.
type MethodEntry struct {
	Name    string   `yaml:"name"`
	Returns string   `yaml:"returns,omitempty"`
	Params  []string `yaml:"params,omitempty"`
}

// DefaultPrimitives is used when a document lists no primitives.
var DefaultPrimitives = []string{
	"boolean", "byte", "char", "short", "int", "long", "float", "double", "void",
}
