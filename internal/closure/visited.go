package closure

import "type-closure/internal/analyze"

// VisitedSet maps type names to descriptors, keeping insertion order.
type VisitedSet struct {
	order  []string
	byName map[string]*analyze.TypeDescriptor
}

// NewVisitedSet creates an empty VisitedSet.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{byName: make(map[string]*analyze.TypeDescriptor)}
}

// Add inserts d unless its name is present. It reports whether d was added.
func (v *VisitedSet) Add(d *analyze.TypeDescriptor) bool {
	if _, ok := v.byName[d.Name]; ok {
		return false
	}

	v.byName[d.Name] = d
	v.order = append(v.order, d.Name)

	return true
}

// Contains reports whether name is in the set.
func (v *VisitedSet) Contains(name string) bool {
	_, ok := v.byName[name]
	return ok
}

// Get returns the descriptor for name, or nil.
func (v *VisitedSet) Get(name string) *analyze.TypeDescriptor {
	return v.byName[name]
}

// Len returns the number of types in the set.
func (v *VisitedSet) Len() int {
	return len(v.order)
}

// Names returns the type names in insertion order.
func (v *VisitedSet) Names() []string {
	return append([]string(nil), v.order...)
}

// Descriptors returns the descriptors in insertion order.
func (v *VisitedSet) Descriptors() []*analyze.TypeDescriptor {
	out := make([]*analyze.TypeDescriptor, 0, len(v.order))
	for _, name := range v.order {
		out = append(out, v.byName[name])
	}

	return out
}
