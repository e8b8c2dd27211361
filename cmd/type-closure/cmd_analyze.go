package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"type-closure/internal/console"
	"type-closure/internal/report"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		namesFile string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [type...]",
		Short: "Analyze root types and write the CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && namesFile == "" {
				return errors.New("no root types given: pass type names or --file")
			}

			roots := args
			if namesFile != "" {
				// A names file without names still produces a header-only report
				names, err := report.ReadNames(namesFile)
				if err != nil {
					return err
				}
				roots = append(roots, names...)
			}

			runner, err := a.runner()
			if err != nil {
				return err
			}

			path := a.cfg.ReportPath()

			res, err := runner.Analyze(roots, a.cfg.Traversal(), path)
			if res != nil {
				console.Notices(cmd.ErrOrStderr(), res.Diagnostics)
			}
			if err != nil {
				return console.Failure(res, err)
			}

			out := cmd.OutOrStdout()
			if verbose {
				for _, e := range res.Entries {
					if err := report.Breakdown(out, e.Summary.Root, e.Classes); err != nil {
						return err
					}
				}
			}

			fmt.Fprintf(out, "Statistics for %d of %d types written to: %s\n", len(res.Entries), len(roots), path)

			return nil
		},
	}
	cmd.Flags().StringVarP(&namesFile, "file", "f", "", "File whose first line lists comma-separated root types")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the statistics of every type in each closure")

	return cmd
}
