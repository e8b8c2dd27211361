package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"type-closure/internal/closure"
	"type-closure/internal/stats"
)

// Header is the column row of every report.
var Header = []string{
	"Class Name",
	"Average Fields",
	"Referred Classes",
	"Total Methods",
	"Average Methods",
	"Average Parameters",
	"Average Constructors",
	"Average Parameters per Constructor",
}

// Row renders one summary in Header column order.
func Row(s stats.RootSummary) []string {
	return []string{
		s.Root,
		FormatNumber(s.AverageFields),
		strconv.Itoa(s.ReferredClasses),
		strconv.Itoa(s.TotalMethods),
		FormatNumber(s.AverageMethods),
		FormatNumber(s.AverageParameters),
		FormatNumber(s.AverageConstructors),
		FormatNumber(s.AverageConstructorParams),
	}
}

// FormatNumber renders v with the fewest digits that represent it exactly.
// Negative zero renders as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render writes the header and one row per summary to w.
func Render(w io.Writer, summaries []stats.RootSummary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range summaries {
		if err := cw.Write(Row(s)); err != nil {
			return fmt.Errorf("writing row %s: %w", s.Root, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Bytes renders the report into memory.
func Bytes(summaries []stats.RootSummary) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, summaries); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FileName returns the default report file name for a traversal config.
func FileName(cfg closure.TraversalConfig) string {
	return fmt.Sprintf("data API %t R %t.csv", cfg.IgnoreFramework, cfg.Recursive)
}
