// Package batch runs the closure analysis over a list of root types.
package batch

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"type-closure/internal/analyze"
	"type-closure/internal/closure"
	"type-closure/internal/diagnostic"
	"type-closure/internal/match"
	"type-closure/internal/report"
	"type-closure/internal/stats"
)

// maxSuggestions bounds the names offered for an unresolved root.
const maxSuggestions = 3

// Entry is the analysis of one resolved root.
type Entry struct {
	Summary stats.RootSummary
	Classes []stats.ClassStats // One per closure member, in discovery order
}

// Result is the outcome of a batch.
type Result struct {
	Entries     []Entry
	Unresolved  []string
	Diagnostics diagnostic.Diagnostics
}

// Summaries returns the root summaries in input order.
func (r *Result) Summaries() []stats.RootSummary {
	out := make([]stats.RootSummary, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Summary)
	}

	return out
}

// Runner analyzes batches of roots with one Explorer.
type Runner struct {
	explorer *closure.Explorer
	logger   *log.Logger
}

// NewRunner creates a Runner. A nil logger discards log output.
func NewRunner(explorer *closure.Explorer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Runner{explorer: explorer, logger: logger}
}

// Run computes the closure and statistics of each root. Roots that do not
// resolve are recorded as warnings and skipped. An introspector defect
// aborts the batch; the partial result is returned with the error.
func (r *Runner) Run(roots []string, cfg closure.TraversalConfig) (*Result, error) {
	res := &Result{}

	if len(roots) == 0 {
		res.Diagnostics.AddInfo(diagnostic.CodeNoRoots, "no root types to analyze", "")
		r.logger.Printf("no root types to analyze")

		return res, nil
	}

	for _, root := range roots {
		set, err := r.explorer.Compute(root, cfg)
		if err != nil {
			var defect *closure.DefectError
			if !errors.As(err, &defect) && errors.Is(err, analyze.ErrTypeNotFound) {
				res.Unresolved = append(res.Unresolved, root)
				res.Diagnostics.AddWarning(diagnostic.CodeRootNotFound, "class not found: "+root, root)
				r.logger.Printf("class not found: %s: %v", root, err)

				if near := match.Suggest(root, r.explorer.Candidates(), maxSuggestions); len(near) > 0 {
					res.Diagnostics.AddInfo(diagnostic.CodeSuggestion, "did you mean "+strings.Join(near, ", ")+"?", root)
				}

				continue
			}

			res.Diagnostics.AddFailure(diagnostic.CodeDefect, err, root)

			return res, fmt.Errorf("analyzing %s: %w", root, err)
		}

		descriptors := set.Descriptors()

		entry := Entry{
			Summary: stats.Summarize(root, descriptors),
			Classes: make([]stats.ClassStats, 0, len(descriptors)),
		}
		for _, d := range descriptors {
			entry.Classes = append(entry.Classes, stats.For(d))
		}

		r.logger.Printf("analyzed %s: %d referred classes", root, entry.Summary.ReferredClasses)
		res.Entries = append(res.Entries, entry)
	}

	return res, nil
}

// Analyze runs the batch and writes the report to path. A report write
// failure is returned as a *report.ReportWriteError.
func (r *Runner) Analyze(roots []string, cfg closure.TraversalConfig, path string) (*Result, error) {
	res, err := r.Run(roots, cfg)
	if err != nil {
		return res, err
	}

	if err := report.Write(path, res.Summaries()); err != nil {
		return res, err
	}

	r.logger.Printf("wrote %d rows to %s", len(res.Entries), path)

	return res, nil
}
