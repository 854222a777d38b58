package diagnostic

import (
	"fmt"
	"slices"
	"strings"

	"beanpath/errors"
	"beanpath/internal/common"
)

// Diagnostic codes.
const (
	CodeAmbiguousGetter = "ambiguous-getter"
	CodeAmbiguousSetter = "ambiguous-setter"
	CodeAccessorShape   = "accessor-shape"
	CodeWriteOnly       = "write-only"
	CodeLoad            = "load"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type is the qualified name of the inspected type, if any.
	Type string
	// Property is the property the finding is about, if any.
	Property string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) AddError(code, message, typ, prop string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Type: typ, Property: prop})
}

func (d *Diagnostics) AddWarning(code, message, typ, prop string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Type: typ, Property: prop})
}

func (d *Diagnostics) AddInfo(code, message, typ, prop string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Type: typ, Property: prop})
}

// AddErr records err as an error diagnostic. The error message becomes the
// message and its hints become the suggestions.
func (d *Diagnostics) AddErr(code string, err error, typ, prop string) {
	d.Add(Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     err.Error(),
		Type:        typ,
		Property:    prop,
		Suggestions: errors.GetAllHints(err),
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first, in insertion order within a severity.
func (d *Diagnostics) All() []Diagnostic {
	return slices.Concat(d.Errors, d.Warnings, d.Infos)
}

// Codes returns the distinct codes present, sorted.
func (d *Diagnostics) Codes() []string {
	var codes []string

	for _, diag := range d.All() {
		codes = append(codes, diag.Code)
	}

	slices.Sort(codes)

	return slices.Compact(codes)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Property != "" {
		prefix = append(prefix, d.Property)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (" + strings.Join(d.Suggestions, "; ") + ")"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
