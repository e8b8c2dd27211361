// Package main provides the CLI entrypoint for type-closure.
//
// type-closure computes the set of types transitively referenced by one or
// more root types and writes per-root statistics to a CSV report:
//   - analyze: run a batch of roots given as arguments or in a names file
//   - menu: the interactive menu with framework and recursion toggles
//   - inspect: dump the facets of a single type
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
