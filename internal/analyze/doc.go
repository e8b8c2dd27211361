// Package analyze provides type introspection for the closure engine.
//
// An Introspector resolves a fully-qualified type name into the structural
// facets the traversal follows. GoIntrospector backs it with
// golang.org/x/tools/go/packages and go/types.
//
// Key types:
//   - TypeRef: a type expression as it appears in a facet (primitive, array, reference, composite)
//   - Facets: supertype, interfaces, fields, constructors and methods of one named type
//   - TypeDescriptor: a node of a closure, carrying its resolved facets
package analyze
