// Package closure computes the set of types transitively reachable from a
// root type through its structural facets.
//
// Traversal rules, applied to every type expression a facet yields:
//   - arrays unwrap to their innermost component
//   - primitives are discarded
//   - composites contribute each of their parts
//   - in recursive mode an unseen reference is added and expanded, unless it
//     lies in a framework namespace and framework types are ignored
//   - in non-recursive mode an unseen reference is added without expansion and
//     without the framework filter
//
// The root is always expanded. A VisitedSet owned by one Compute call bounds
// revisits, so cyclic type graphs terminate.
package closure
