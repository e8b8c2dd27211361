package report

import (
	"fmt"
	"io"

	"type-closure/internal/stats"
)

// Breakdown writes the per-type statistics of one root's closure to w:
// a heading line, then one indented line per type in discovery order.
func Breakdown(w io.Writer, root string, classes []stats.ClassStats) error {
	if _, err := fmt.Fprintf(w, "%s refers to %d types\n", root, len(classes)); err != nil {
		return err
	}

	for _, c := range classes {
		_, err := fmt.Fprintf(w, "  %s has %d fields, %d methods with %d parameters, %d constructors with %s parameters on average\n",
			c.Name, c.Fields, c.Methods, c.TotalParams, c.Constructors, FormatNumber(c.AvgConstructorParams))
		if err != nil {
			return err
		}
	}

	return nil
}
