// Package stats computes shape statistics over type closures.
package stats

import (
	"type-closure/internal/analyze"
)

// ClassStats holds the shape counts of one type.
type ClassStats struct {
	Name                 string
	Fields               int
	Methods              int // Declared methods only
	Constructors         int
	TotalParams          int     // Parameters summed over declared methods
	AvgConstructorParams float64 // 0 when there are no constructors
}

// RootSummary aggregates ClassStats over the closure of one root.
type RootSummary struct {
	Root                     string
	AverageFields            float64
	ReferredClasses          int // Closure size, root included
	TotalMethods             int
	AverageMethods           float64
	AverageParameters        float64 // 0 when TotalMethods is 0
	AverageConstructors      float64
	AverageConstructorParams float64
}

// For computes the statistics of one closure member.
func For(t *analyze.TypeDescriptor) ClassStats {
	s := ClassStats{Name: t.Name}
	if t.Facets == nil {
		return s
	}

	f := t.Facets
	s.Fields = len(f.Fields)
	s.Constructors = len(f.Constructors)

	for _, m := range f.DeclaredMethods() {
		s.Methods++
		s.TotalParams += len(m.Params)
	}

	if s.Constructors > 0 {
		var params int
		for _, c := range f.Constructors {
			params += len(c.Params)
		}
		s.AvgConstructorParams = float64(params) / float64(s.Constructors)
	}

	return s
}

// Summarize aggregates the statistics of a closure. An empty closure yields
// a summary with only Root set.
func Summarize(root string, closure []*analyze.TypeDescriptor) RootSummary {
	sum := RootSummary{Root: root, ReferredClasses: len(closure)}
	if len(closure) == 0 {
		return sum
	}

	var (
		fields, params, constructors int
		constructorParams            float64
	)

	for _, t := range closure {
		s := For(t)
		fields += s.Fields
		sum.TotalMethods += s.Methods
		params += s.TotalParams
		constructors += s.Constructors
		constructorParams += s.AvgConstructorParams
	}

	n := float64(len(closure))

	sum.AverageMethods = float64(sum.TotalMethods) / n
	sum.AverageConstructors = float64(constructors) / n
	sum.AverageConstructorParams = constructorParams / n

	if sum.TotalMethods > 0 {
		sum.AverageParameters = float64(params) / float64(sum.TotalMethods)
	}

	if fields != 0 {
		sum.AverageFields = float64(fields) / n
	}

	return sum
}
