package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"type-closure/internal/common"
)

// Diagnostic codes.
const (
	CodeRootNotFound = "root_not_found"
	CodeDefect       = "introspector_defect"
	CodeNoRoots      = "no_roots"
	CodeSuggestion   = "suggestion"
)

// Diagnostics holds all diagnostic information from a batch.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Root identifies the analyzed root this relates to (if any).
	Root string
	// Err is the underlying failure of an error diagnostic (if any).
	Err error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddFailure adds an error diagnostic carrying err, so Error keeps it in
// its chain.
func (d *Diagnostics) AddFailure(code string, err error, root string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  err.Error(),
		Root:     root,
		Err:      err,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, root string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Root:     root,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, root string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Root:     root,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// Underlying failures stay reachable through errors.Is and errors.As.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		if e.Err == nil {
			parts = append(parts, errors.New(e.String()))
			continue
		}

		prefix := strings.TrimSuffix(Diagnostic{Code: e.Code, Root: e.Root}.String(), " ")
		if prefix == "" {
			parts = append(parts, e.Err)
			continue
		}
		parts = append(parts, fmt.Errorf("%s %w", prefix, e.Err))
	}

	return errors.Join(parts...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Root != "" {
		return "[" + d.Root + "] " + msg
	}

	return msg
}
