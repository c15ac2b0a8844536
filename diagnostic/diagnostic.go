package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/go-lower/ast"
)

// Severity represents the severity level of a diagnostic message
type Severity int

const (
	Error Severity = iota
	Warning
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is one problem found while transforming a program.
type Diagnostic struct {
	Severity Severity
	Message  string
	Idx      ast.Idx
	Hint     string // optional suggestion
}

// Error implements error so that a diagnostic can be joined with others.
func (d Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]: %s", d.Severity, d.Idx, d.Message)
	if d.Hint != "" {
		fmt.Fprintf(&b, " (hint: %s)", d.Hint)
	}
	return b.String()
}

// Diagnostics collects the problems of one program, in report order.
type Diagnostics struct {
	items []Diagnostic
}

func New() *Diagnostics {
	return &Diagnostics{}
}

// Errorf adds an error diagnostic with formatted message
func (d *Diagnostics) Errorf(idx ast.Idx, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Idx:      idx,
	})
}

// Warningf adds a warning diagnostic with formatted message
func (d *Diagnostics) Warningf(idx ast.Idx, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Idx:      idx,
	})
}

// ErrorWithHint adds an error diagnostic with a suggestion
func (d *Diagnostics) ErrorWithHint(idx ast.Idx, msg, hint string) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  msg,
		Idx:      idx,
		Hint:     hint,
	})
}

// HasErrors returns true if there are any error-level diagnostics
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the error-level diagnostics
func (d *Diagnostics) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, item := range d.items {
		if item.Severity == Error {
			errs = append(errs, item)
		}
	}
	return errs
}

// All returns all diagnostics regardless of severity
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Err joins the error-level diagnostics, or returns nil when there are none.
func (d *Diagnostics) Err() error {
	var errs []error
	for _, item := range d.Errors() {
		errs = append(errs, item)
	}
	return errors.Join(errs...)
}

// Format renders every diagnostic on its own line:
//
//	error[12]: Private field '#x' must be declared in an enclosing class
//	  hint: declared names are #y
func (d *Diagnostics) Format() string {
	var b strings.Builder
	for i, item := range d.items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s[%d]: %s", item.Severity, item.Idx, item.Message)
		if item.Hint != "" {
			fmt.Fprintf(&b, "\n  hint: %s", item.Hint)
		}
	}
	return b.String()
}
