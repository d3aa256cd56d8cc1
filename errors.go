package cff

import (
	"fmt"
	"strings"
)

// UnknownFieldError is returned when a field name outside a model type's
// allow-list is read or written. It is never swallowed: dynamic field access
// on this library's types either succeeds or reports this error.
type UnknownFieldError struct {
	Model string // model type name, e.g. "person"
	Field string // the offending field name, in canonical kebab-case
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q for %s", e.Field, e.Model)
}

// InvalidDateError is returned when a date-valued field is assigned a string
// that cannot be parsed as an ISO 8601 date. Reads of previously stored bad
// data do not return this error; only writes do.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q for field %q", e.Value, e.Field)
}

// ValidationFailure describes a single schema-validation failure.
type ValidationFailure struct {
	Path    string // JSON-pointer-ish location within the document
	Message string
}

func (f ValidationFailure) String() string {
	if f.Path == "" {
		return f.Message
	}
	return f.Path + ": " + f.Message
}

// ValidationError aggregates every schema-validation failure detected for a
// document. It is only returned by the error-returning validation entry
// points; Validate itself reports failures as a result value.
type ValidationError struct {
	Failures []ValidationFailure

	// InvalidFilename is set for file-backed documents whose filename is not
	// the canonical CITATION.cff.
	InvalidFilename bool
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.String()
	}
	return "validation error: " + strings.Join(msgs, " ")
}
