package cff

import (
	"sort"
	"strings"
)

// CitationOptions controls how a formatter treats a document.
type CitationOptions struct {
	// PreferredCitation formats the document's preferred citation, when one
	// is present, instead of the document itself.
	PreferredCitation bool
}

// Formatter is a citation-style formatter. Implementations project a model
// (*Index or *Reference) into a citation string.
//
// Format reports false when the model cannot be cited in this style — for
// example when it has no authors or no title. Callers must treat that as
// "not citable", not as an error.
type Formatter interface {
	// Label is the formatter's registration key, matched
	// case-insensitively.
	Label() string

	Format(model any, opts CitationOptions) (string, bool)
}

// Registry holds the available citation formatters, keyed by
// case-insensitive label. A Registry is constructed explicitly and passed
// to the document API; there is no hidden process-wide registry.
//
// Registration is expected to happen at startup. A Registry is safe for
// concurrent lookups once registration is complete, but Register itself is
// not synchronized.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry. A nil formatter or one with
// an empty label is ignored. Registering a formatter whose label collides
// with an existing one, in any casing, replaces the previous entry.
func (r *Registry) Register(f Formatter) {
	if f == nil {
		return
	}
	label := strings.ToLower(f.Label())
	if label == "" {
		return
	}
	r.formatters[label] = f
}

// FormatterFor looks up a formatter by label, case-insensitively.
// It returns nil for unregistered labels.
func (r *Registry) FormatterFor(label string) Formatter {
	return r.formatters[strings.ToLower(label)]
}

// Formatters returns the registered labels, in their original casing, in
// sorted order.
func (r *Registry) Formatters() []string {
	labels := make([]string, 0, len(r.formatters))
	for _, f := range r.formatters {
		labels = append(labels, f.Label())
	}
	sort.Strings(labels)
	return labels
}
