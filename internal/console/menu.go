// Package console implements the interactive analysis menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"type-closure/internal/batch"
	"type-closure/internal/config"
	"type-closure/internal/diagnostic"
	"type-closure/internal/report"
)

// Menu reads single-letter commands from a line-oriented input.
//
//	C  analyze one type
//	F  analyze the types listed on the first line of a file
//	T  toggle ignoring framework types
//	R  toggle recursion
//	Q  quit
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	cfg    *config.Config
	runner *batch.Runner
	styles styles
}

type styles struct {
	title lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	ok    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		title: r.NewStyle().Bold(true),
		value: r.NewStyle().Foreground(lipgloss.Color("6")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		err:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// NewMenu creates a Menu. The toggles mutate cfg for the rest of the
// process; every analysis reads them afresh.
func NewMenu(in io.Reader, out io.Writer, cfg *config.Config, runner *batch.Runner) *Menu {
	return &Menu{
		in:     bufio.NewScanner(in),
		out:    out,
		cfg:    cfg,
		runner: runner,
		styles: newStyles(out),
	}
}

// Run loops until Q or the end of input. Only an introspector defect ends
// it with an error.
func (m *Menu) Run() error {
	for {
		m.printOptions()

		line, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line[:1]) {
		case "c":
			m.println("Please enter the name of the type")
			name, ok := m.readLine()
			if !ok {
				return m.in.Err()
			}
			name = strings.TrimSpace(name)
			if name == "" {
				m.println(m.styles.warn.Render("no type name given"))
				continue
			}
			if err := m.analyze([]string{name}); err != nil {
				return err
			}

		case "f":
			m.println("Please enter the name of the file")
			path, ok := m.readLine()
			if !ok {
				return m.in.Err()
			}
			roots, err := report.ReadNames(strings.TrimSpace(path))
			if err != nil {
				m.println(m.styles.err.Render("cannot read names file: " + err.Error()))
				continue
			}
			if err := m.analyze(roots); err != nil {
				return err
			}

		case "t":
			m.cfg.IgnoreFramework = !m.cfg.IgnoreFramework

		case "r":
			m.cfg.Recursive = !m.cfg.Recursive

		case "q":
			return nil

		default:
			m.println(m.styles.warn.Render("unknown option: " + line))
		}
	}
}

func (m *Menu) printOptions() {
	m.println("")
	m.println(m.styles.title.Render("Please enter one of the following options:"))
	m.println("C: find stats for types recursively referred to by a type")
	m.println("F: find stats for types recursively referred to by types named in a file")
	m.println("T: Toggle ignore framework types. Current: " + m.styles.value.Render(fmt.Sprint(m.cfg.IgnoreFramework)))
	m.println("R: Toggle recursion. Current: " + m.styles.value.Render(fmt.Sprint(m.cfg.Recursive)))
	m.println("Q: quit")
}

// analyze runs one batch and reports the outcome. A report write failure
// is shown and the menu continues.
func (m *Menu) analyze(roots []string) error {
	path := m.cfg.ReportPath()

	res, err := m.runner.Analyze(roots, m.cfg.Traversal(), path)
	if res != nil {
		printDiagnostics(m.out, m.styles, res.Diagnostics)
	}

	var writeErr *report.ReportWriteError
	switch {
	case errors.As(err, &writeErr):
		m.println(m.styles.err.Render("Error writing to file: " + writeErr.Error()))
		return nil
	case err != nil:
		return Failure(res, err)
	}

	m.println("")
	m.println(m.styles.ok.Render("Statistics for the following types written to: " + path))
	for _, e := range res.Entries {
		m.println(e.Summary.Root)
	}

	return nil
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}

	return m.in.Text(), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

// printDiagnostics writes warnings and name suggestions to w, one per line.
// Errors are not printed: they come back from Failure.
func printDiagnostics(w io.Writer, st styles, d diagnostic.Diagnostics) {
	for _, n := range d.All() {
		switch {
		case n.Severity == diagnostic.DiagnosticWarning:
			fmt.Fprintln(w, st.warn.Render(n.Message))
		case n.Code == diagnostic.CodeSuggestion:
			fmt.Fprintln(w, st.value.Render("  "+n.Message))
		}
	}
}

// Failure returns the error to surface for a failed batch: the recorded
// error diagnostics when there are any, err otherwise.
func Failure(res *batch.Result, err error) error {
	if res != nil {
		if derr := res.Diagnostics.Error(); derr != nil {
			return derr
		}
	}

	return err
}

// Notices writes batch diagnostics to w with the menu's styling.
func Notices(w io.Writer, d diagnostic.Diagnostics) {
	printDiagnostics(w, newStyles(w), d)
}
