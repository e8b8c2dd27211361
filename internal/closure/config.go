package closure

import "strings"

// TraversalConfig selects the traversal policies of one Compute call.
type TraversalConfig struct {
	IgnoreFramework bool // Skip framework-namespace types in recursive mode
	Recursive       bool // Expand discovered types, not just the root
	MaxDepth        int  // Recursive expansion depth limit; 0 means unlimited
}

// DefaultTraversalConfig returns the default policies: framework types
// included, recursion on, no depth limit.
func DefaultTraversalConfig() TraversalConfig {
	return TraversalConfig{Recursive: true}
}

// expands reports whether a type discovered at depth is expanded further.
func (c TraversalConfig) expands(depth int) bool {
	return c.Recursive && (c.MaxDepth <= 0 || depth < c.MaxDepth)
}

// Namespaces is a set of reserved name prefixes identifying framework types.
//
// A prefix matches a name equal to it, or a name continuing it past a
// namespace boundary: "java" matches "java.lang.Object", "net" matches
// "net/http.Client" and "net.IP" but not "netx.Conn". A prefix that already
// ends in "." or "/" matches plainly.
type Namespaces []string

// Match reports whether name lies in one of the namespaces.
func (n Namespaces) Match(name string) bool {
	for _, prefix := range n {
		if prefix == "" || !strings.HasPrefix(name, prefix) {
			continue
		}

		if len(name) == len(prefix) || strings.HasSuffix(prefix, ".") || strings.HasSuffix(prefix, "/") {
			return true
		}

		if next := name[len(prefix)]; next == '.' || next == '/' {
			return true
		}
	}

	return false
}
