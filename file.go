package cff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CanonicalFilename is the filename the CITATION file format mandates.
const CanonicalFilename = "CITATION.cff"

const yamlHeader = "---\n"

// File couples a document with the file it was read from or will be
// written to. It adds filename bookkeeping and comment preservation on top
// of Index; the document itself is reachable through the Index field.
type File struct {
	Index *Index
	Path  string

	comment []string
}

// NewFile creates a File for a fresh document with the supplied title.
func NewFile(path, title string) *File {
	return &File{Index: NewIndex(title), Path: path}
}

// ReadIndex parses serialized CITATION metadata into a document.
func ReadIndex(data []byte) (*Index, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing CITATION metadata: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("parsing CITATION metadata: empty document")
	}
	return NewIndexFromFields(m), nil
}

// ReadFile reads and parses a CITATION file. A leading comment block is
// preserved and written back on Write.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	index, err := ReadIndex(data)
	if err != nil {
		return nil, err
	}
	return &File{
		Index:   index,
		Path:    path,
		comment: leadingComment(data),
	}, nil
}

// leadingComment collects the comment lines at the top of a file, before
// any YAML content.
func leadingComment(data []byte) []string {
	var comment []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			comment = append(comment, line)
			continue
		}
		break
	}
	return comment
}

// Comment returns the preserved leading comment lines, if any.
func (f *File) Comment() []string { return f.comment }

// SetComment replaces the leading comment lines. Lines are written as
// given, so they should already carry their "#" prefix.
func (f *File) SetComment(lines []string) { f.comment = lines }

// ValidFilename reports whether the file's basename is the canonical
// CITATION.cff.
func (f *File) ValidFilename() bool {
	return filepath.Base(f.Path) == CanonicalFilename
}

// Write serializes the document to the file's path.
func (f *File) Write() error { return f.WriteTo(f.Path) }

// WriteTo serializes the document to the given path, preserving any
// leading comment block.
func (f *File) WriteTo(path string) error {
	data, err := yaml.Marshal(f.Index.Fields())
	if err != nil {
		return fmt.Errorf("encoding CITATION metadata: %w", err)
	}

	var b strings.Builder
	for _, line := range f.comment {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(yamlHeader)
	b.Write(data)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Validate validates the underlying document. See Index.Validate.
func (f *File) Validate(set *SchemaSet, opts ValidateOptions) ValidationResult {
	return f.Index.Validate(set, opts)
}

// CheckValid is the error-returning variant of Validate. The returned
// *ValidationError additionally flags a non-canonical filename.
func (f *File) CheckValid(set *SchemaSet, opts ValidateOptions) error {
	result := f.Index.Validate(set, opts)
	if result.OK && f.ValidFilename() {
		return nil
	}
	return &ValidationError{
		Failures:        result.Failures,
		InvalidFilename: !f.ValidFilename(),
	}
}
