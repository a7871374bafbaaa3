// Package diag collects semantic validation findings as hcl.Diagnostics and
// folds them into a three-way verdict: valid, valid with warnings, or
// invalid. Validators never stop at the first finding; callers decide whether
// warnings are tolerable.
package diag

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Status is the verdict of a validation pass.
type Status int

const (
	Valid Status = iota
	ValidWithWarnings
	Invalid
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case ValidWithWarnings:
		return "valid with warnings"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Errorf builds an error-severity diagnostic.
func Errorf(summary, format string, args ...any) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
	}
}

// Warnf builds a warning-severity diagnostic.
func Warnf(summary, format string, args ...any) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
	}
}

// Within prefixes the detail of every diagnostic with the owning subject,
// e.g. `stock "population": ...`. The input is not modified.
func Within(subject string, diags hcl.Diagnostics) hcl.Diagnostics {
	if len(diags) == 0 {
		return nil
	}
	out := make(hcl.Diagnostics, len(diags))
	for i, d := range diags {
		cp := *d
		cp.Detail = subject + ": " + d.Detail
		out[i] = &cp
	}
	return out
}

// Result is the outcome of a validation pass.
type Result struct {
	Subject     string
	Diagnostics hcl.Diagnostics
}

// Status folds the diagnostics into a verdict.
func (r Result) Status() Status {
	switch {
	case r.Diagnostics.HasErrors():
		return Invalid
	case len(r.Diagnostics) > 0:
		return ValidWithWarnings
	default:
		return Valid
	}
}

// Errors returns the human-readable error messages.
func (r Result) Errors() []string { return messages(r.Diagnostics, hcl.DiagError) }

// Warnings returns the human-readable warning messages.
func (r Result) Warnings() []string { return messages(r.Diagnostics, hcl.DiagWarning) }

// Err returns an *InvalidError when the verdict is Invalid, nil otherwise.
func (r Result) Err() error {
	if r.Status() != Invalid {
		return nil
	}
	return &InvalidError{Subject: r.Subject, Problems: r.Errors()}
}

func messages(diags hcl.Diagnostics, severity hcl.DiagnosticSeverity) []string {
	var out []string
	for _, d := range diags {
		if d.Severity != severity {
			continue
		}
		if d.Detail == "" {
			out = append(out, d.Summary)
			continue
		}
		out = append(out, d.Summary+": "+d.Detail)
	}
	return out
}

// InvalidError reports every semantic problem found in one subject.
type InvalidError struct {
	Subject  string
	Problems []string
}

func (e *InvalidError) Error() string {
	var sb strings.Builder
	if e.Subject != "" {
		sb.WriteString(e.Subject)
		sb.WriteString(" is invalid:")
	} else {
		sb.WriteString("invalid:")
	}
	for _, p := range e.Problems {
		sb.WriteString("\n  - ")
		sb.WriteString(p)
	}
	return sb.String()
}
