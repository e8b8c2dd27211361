// Package metadata provides a precomputed metadata table introspector.
//
// A table is a YAML document describing named types and their facets. It
// stands in for runtime reflection on hosts that have none, and gives tests a
// deterministic type universe.
//
// # Schema Overview
//
//	primitives: [boolean, int, long, double, void]
//	types:
//	  - name: java.lang.Object
//	    methods:
//	      - name: toString
//	        returns: java.lang.String
//	  - name: Point
//	    supertype: java.lang.Object
//	    fields:
//	      - name: x
//	        type: int
//	    constructors:
//	      - params: [int]
//	    methods:
//	      - name: getX
//	        returns: int
//
// # Type Expressions
//
//   - Primitive names listed under "primitives": "int"
//   - Any other name is a reference: "java.lang.String"
//   - A "[]" suffix is an array of the prefix: "int[][]", "Point[]"
//
// Methods of the supertype chain and of implemented interfaces are added to a
// type's facets as inherited, unless the type declares a method with the same
// name and parameter list.
package metadata
