package analyze

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/tools/go/packages"

	"type-closure/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// DefaultPackageCacheSize bounds the number of loaded packages kept in memory.
const DefaultPackageCacheSize = 64

// constructorPrefix marks package-level functions treated as constructors.
const constructorPrefix = "New"

// GoOptions configures a GoIntrospector.
type GoOptions struct {
	Dir       string // Directory packages are loaded from (empty = current directory)
	Tests     bool   // Include test packages
	CacheSize int    // Loaded package cache size (0 = DefaultPackageCacheSize)
}

// GoIntrospector resolves Go type names ("importpath.Name") using go/packages.
type GoIntrospector struct {
	cfg      *packages.Config
	packages *lru.Cache[string, *types.Package]
	names    map[string]*types.TypeName // Every named type seen so far
}

var (
	_ Introspector = (*GoIntrospector)(nil)
	_ Lister       = (*GoIntrospector)(nil)
)

// NewGoIntrospector creates a new GoIntrospector.
func NewGoIntrospector(opts GoOptions) (*GoIntrospector, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultPackageCacheSize
	}

	cache, err := lru.New[string, *types.Package](size)
	if err != nil {
		return nil, fmt.Errorf("creating package cache: %w", err)
	}

	return &GoIntrospector{
		cfg: &packages.Config{
			Mode:  LoadMode,
			Dir:   opts.Dir,
			Tests: opts.Tests,
		},
		packages: cache,
		names:    make(map[string]*types.TypeName),
	}, nil
}

// LoadPackages loads the specified packages up front so their types resolve
// without a further load. Patterns are standard Go package patterns
// (e.g., "./...", "type-closure/testfixtures/geometry").
func (g *GoIntrospector) LoadPackages(patterns ...string) error {
	pkgs, err := g.load(patterns...)
	if err != nil {
		return err
	}

	for _, pkg := range pkgs {
		g.processPackage(pkg.Types)
	}

	return nil
}

func (g *GoIntrospector) load(patterns ...string) ([]*packages.Package, error) {
	pkgs, err := packages.Load(g.cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	return pkgs, nil
}

// processPackage indexes the named types declared in a package.
func (g *GoIntrospector) processPackage(pkg *types.Package) {
	if pkg == nil {
		return
	}

	g.packages.Add(pkg.Path(), pkg)

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		if typeName, ok := scope.Lookup(name).(*types.TypeName); ok {
			g.names[common.Qualify(pkg.Path(), name)] = typeName
		}
	}
}

// Names returns the qualified names indexed so far, sorted.
func (g *GoIntrospector) Names() []string {
	names := make([]string, 0, len(g.names))
	for name := range g.names {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Resolve returns the facets of a named Go type.
func (g *GoIntrospector) Resolve(name string) (*Facets, error) {
	obj, err := g.lookup(name)
	if err != nil {
		return nil, err
	}

	return g.facets(name, obj), nil
}

// lookup finds the type name object, loading its package if needed.
func (g *GoIntrospector) lookup(name string) (*types.TypeName, error) {
	if obj, ok := g.names[name]; ok {
		return obj, nil
	}

	pkgPath, typeName := common.SplitQualified(name)
	if pkgPath == "" || typeName == "" {
		return nil, NotFound(name)
	}

	pkg, ok := g.packages.Get(pkgPath)
	if !ok {
		pkgs, err := g.load(pkgPath)
		if err != nil {
			return nil, &TypeNotFoundError{Name: name, Cause: err}
		}

		if len(pkgs) == 0 || pkgs[0].Types == nil {
			return nil, NotFound(name)
		}

		pkg = pkgs[0].Types
		g.processPackage(pkg)
	}

	obj, ok := pkg.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, NotFound(name)
	}

	return obj, nil
}

// facets builds the structural facets of a type name.
func (g *GoIntrospector) facets(name string, obj *types.TypeName) *Facets {
	f := &Facets{Name: name}

	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		// Alias of an unnamed type: nothing to expand
		return f
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < ut.NumFields(); i++ {
			field := ut.Field(i)
			f.Fields = append(f.Fields, Field{
				Name: field.Name(),
				Type: g.ref(field.Type()),
			})
		}

	case *types.Interface:
		g.interfaceFacets(ut, f)

		return f

	default:
		// Defined over a slice, map, func or basic type: the underlying
		// type stands in for the supertype
		super := g.ref(ut)
		f.Supertype = &super
	}

	f.Constructors = g.constructors(named)

	ms := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < ms.Len(); i++ {
		sel := ms.At(i)

		fn, ok := sel.Obj().(*types.Func)
		if !ok {
			continue
		}

		f.Methods = append(f.Methods, g.method(fn, len(sel.Index()) > 1))
	}

	return f
}

// interfaceFacets fills embedded interfaces and the method set of an interface.
func (g *GoIntrospector) interfaceFacets(iface *types.Interface, f *Facets) {
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		f.Interfaces = append(f.Interfaces, g.ref(iface.EmbeddedType(i)))
	}

	explicit := make(map[*types.Func]bool, iface.NumExplicitMethods())
	for i := 0; i < iface.NumExplicitMethods(); i++ {
		explicit[iface.ExplicitMethod(i)] = true
	}

	for i := 0; i < iface.NumMethods(); i++ {
		fn := iface.Method(i)
		f.Methods = append(f.Methods, g.method(fn, !explicit[fn]))
	}
}

// constructors returns the package-level New... functions whose first result
// is the type or a pointer to it.
func (g *GoIntrospector) constructors(named *types.Named) []Signature {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return nil
	}

	var out []Signature

	scope := obj.Pkg().Scope()
	for _, name := range scope.Names() {
		if !strings.HasPrefix(name, constructorPrefix) {
			continue
		}

		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Recv() != nil || sig.Results().Len() == 0 {
			continue
		}

		if !constructs(sig.Results().At(0).Type(), obj) {
			continue
		}

		out = append(out, Signature{Name: name, Params: g.tuple(sig.Params())})
	}

	return out
}

// constructs reports whether t is obj's type or a pointer to it.
func constructs(t types.Type, obj *types.TypeName) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	return named.Origin().Obj() == obj
}

func (g *GoIntrospector) method(fn *types.Func, inherited bool) Method {
	m := Method{Name: fn.Name(), Inherited: inherited}

	if sig, ok := fn.Type().(*types.Signature); ok {
		m.Params = g.tuple(sig.Params())
		m.Results = g.tuple(sig.Results())
	}

	return m
}

// tuple converts a parameter or result list. A variadic last parameter is
// already a slice type in go/types.
func (g *GoIntrospector) tuple(t *types.Tuple) []TypeRef {
	if t == nil {
		return nil
	}

	out := make([]TypeRef, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, g.ref(t.At(i).Type()))
	}

	return out
}

// ref converts a go/types.Type into a TypeRef. Named types are indexed so a
// later Resolve of the same name does not reload the package.
func (g *GoIntrospector) ref(t types.Type) TypeRef {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Primitive(tt.Name())

	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			// Predeclared: error, comparable
			return Primitive(obj.Name())
		}

		name := common.Qualify(obj.Pkg().Path(), obj.Name())
		if _, ok := g.names[name]; !ok {
			g.names[name] = tt.Origin().Obj()
		}

		args := tt.TypeArgs()
		if args.Len() == 0 {
			return Reference(name)
		}

		parts := []TypeRef{Reference(name)}
		for i := 0; i < args.Len(); i++ {
			parts = append(parts, g.ref(args.At(i)))
		}

		return CompositeOf(parts...)

	case *types.Array:
		return ArrayOf(g.ref(tt.Elem()))

	case *types.Slice:
		return ArrayOf(g.ref(tt.Elem()))

	case *types.Pointer:
		return CompositeOf(g.ref(tt.Elem()))

	case *types.Map:
		return CompositeOf(g.ref(tt.Key()), g.ref(tt.Elem()))

	case *types.Chan:
		return CompositeOf(g.ref(tt.Elem()))

	case *types.Signature:
		parts := g.tuple(tt.Params())
		parts = append(parts, g.tuple(tt.Results())...)

		return CompositeOf(parts...)

	case *types.Struct:
		var parts []TypeRef
		for i := 0; i < tt.NumFields(); i++ {
			parts = append(parts, g.ref(tt.Field(i).Type()))
		}

		return CompositeOf(parts...)

	case *types.Interface:
		var parts []TypeRef
		for i := 0; i < tt.NumEmbeddeds(); i++ {
			parts = append(parts, g.ref(tt.EmbeddedType(i)))
		}
		for i := 0; i < tt.NumExplicitMethods(); i++ {
			if sig, ok := tt.ExplicitMethod(i).Type().(*types.Signature); ok {
				parts = append(parts, g.ref(sig))
			}
		}

		return CompositeOf(parts...)

	default:
		// Type parameters, unions and tuples contribute no nodes
		return CompositeOf()
	}
}
