package cff

import (
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValidateOptions controls schema validation.
type ValidateOptions struct {
	// FailFast stops after the first detected failure.
	FailFast bool

	// ValidateAs names the schema version to validate against. When empty,
	// or when it names an unknown version, the document's own cff-version
	// is used, falling back to the library default version.
	ValidateAs string
}

// ValidationResult is the outcome of a non-throwing validation.
type ValidationResult struct {
	OK       bool
	Failures []ValidationFailure
}

// Validate checks the document against its schema and reports the result.
// It never returns an error value; failures are carried in the result.
func (i *Index) Validate(set *SchemaSet, opts ValidateOptions) ValidationResult {
	version := schemaVersionFor(set, opts.ValidateAs, i.CFFVersion())
	schema := set.schema(version)
	if schema == nil {
		return ValidationResult{
			OK: false,
			Failures: []ValidationFailure{{
				Message: fmt.Sprintf("no schema available for version %q", version),
			}},
		}
	}

	err := schema.Validate(jsonInstance(i.Fields()))
	if err == nil {
		return ValidationResult{OK: true}
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return ValidationResult{
			OK:       false,
			Failures: []ValidationFailure{{Message: err.Error()}},
		}
	}

	failures := collectFailures(ve, nil)
	if opts.FailFast && len(failures) > 1 {
		failures = failures[:1]
	}
	return ValidationResult{OK: false, Failures: failures}
}

// CheckValid is the error-returning variant of Validate: it returns a
// *ValidationError carrying every detected failure when the document is
// invalid, and nil when it is valid.
func (i *Index) CheckValid(set *SchemaSet, opts ValidateOptions) error {
	result := i.Validate(set, opts)
	if result.OK {
		return nil
	}
	return &ValidationError{Failures: result.Failures}
}

// schemaVersionFor picks the schema version to validate against: the
// requested version if registered, else the document's own version if
// registered, else the library default.
func schemaVersionFor(set *SchemaSet, requested, own string) string {
	if requested != "" && set.Has(requested) {
		return requested
	}
	if own != "" && set.Has(own) {
		return own
	}
	return DefaultVersion
}

var failurePrinter = message.NewPrinter(language.English)

func collectFailures(ve *jsonschema.ValidationError, failures []ValidationFailure) []ValidationFailure {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		return append(failures, ValidationFailure{
			Path:    path,
			Message: ve.ErrorKind.LocalizedString(failurePrinter),
		})
	}
	for _, cause := range ve.Causes {
		failures = collectFailures(cause, failures)
	}
	return failures
}

// jsonInstance converts a flattened field mapping into the JSON-typed form
// the schema validator expects: all maps as map[string]any and all slices
// as []any.
func jsonInstance(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = jsonInstance(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonInstance(e)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonInstance(e)
		}
		return out
	default:
		return v
	}
}
