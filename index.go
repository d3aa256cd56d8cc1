package cff

import (
	"strings"
	"time"
)

// IndexTypes is the defined set of document types.
var IndexTypes = []string{"dataset", "software"}

// DefaultMessage is the citation-request message used when none is set.
const DefaultMessage = "If you use this software in your work, please cite " +
	"it using the following metadata"

var indexFields = []string{
	"abstract", "authors", "cff-version", "commit", "contact",
	"date-released", "doi", "identifiers", "keywords", "license",
	"license-url", "message", "preferred-citation", "references",
	"repository", "repository-artifact", "repository-code", "title",
	"type", "url", "version",
}

var indexListFields = []string{"keywords"}

var indexDateFields = []string{"date-released"}

// Index is the top-level citation-metadata document for a piece of
// software or a dataset: the in-memory form of a CITATION file.
//
// Complex fields (authors, contact, identifiers, references,
// preferred-citation) are typed; everything else is reachable through
// Get/Set and the named accessors. Unset fields read as the empty string,
// unset collections as empty slices.
type Index struct {
	fields *container

	authors           []Actor
	contact           []Actor
	identifiers       []*Identifier
	references        []*Reference
	preferredCitation *Reference
}

func newIndexContainer() *container {
	return newContainer("index", indexFields, indexListFields, indexDateFields)
}

// NewIndex creates a fresh document with the supplied title, the default
// cff-version, the standard citation-request message, and empty
// collections.
func NewIndex(title string) *Index {
	i := &Index{fields: newIndexContainer()}
	i.fields.fields["cff-version"] = DefaultVersion
	i.fields.fields["message"] = DefaultMessage
	i.fields.fields["title"] = title
	i.fields.fields["keywords"] = []string{}
	i.ensureCollections()
	return i
}

// NewIndexFromFields materializes a document from an already-parsed raw
// field mapping (for example, a deserialized CITATION.cff). Nested actor
// collections, identifiers, references and the preferred citation are
// promoted to their typed forms at construction, and an out-of-date
// cff-version is upgraded to the minimum validatable version.
func NewIndexFromFields(m map[string]any) *Index {
	i := &Index{fields: newIndexContainer()}

	i.authors = buildActorCollection(m["authors"])
	i.contact = buildActorCollection(m["contact"])

	if raw, ok := m["identifiers"].([]any); ok {
		for _, entry := range raw {
			if im, ok := entry.(map[string]any); ok {
				i.identifiers = append(i.identifiers, identifierFromFields(im))
			}
		}
	}
	if raw, ok := m["references"].([]any); ok {
		for _, entry := range raw {
			if rm, ok := entry.(map[string]any); ok {
				i.references = append(i.references, referenceFromFields(rm))
			}
		}
	}
	if rm, ok := m["preferred-citation"].(map[string]any); ok {
		i.preferredCitation = referenceFromFields(rm)
	}

	skip := map[string]struct{}{
		"authors": {}, "contact": {}, "identifiers": {},
		"references": {}, "preferred-citation": {},
	}
	for k, v := range m {
		if _, ok := skip[k]; ok {
			continue
		}
		if _, ok := i.fields.allowed[k]; !ok {
			continue
		}
		i.fields.fields[k] = v
	}

	if v := i.fields.str("cff-version"); v != "" {
		i.fields.fields["cff-version"] = updateCFFVersion(v)
	}
	if kw, ok := i.fields.fields["keywords"]; ok {
		i.fields.fields["keywords"] = toStringSlice(kw)
	} else {
		i.fields.fields["keywords"] = []string{}
	}
	i.ensureCollections()
	return i
}

// ensureCollections guarantees collections are present (possibly empty) so
// consumers can always iterate safely.
func (i *Index) ensureCollections() {
	if i.authors == nil {
		i.authors = []Actor{}
	}
	if i.contact == nil {
		i.contact = []Actor{}
	}
	if i.identifiers == nil {
		i.identifiers = []*Identifier{}
	}
	if i.references == nil {
		i.references = []*Reference{}
	}
}

func toStringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// Get reads an allow-listed field. Typed collections are returned as their
// slices; unknown fields return an UnknownFieldError.
func (i *Index) Get(field string) (any, error) {
	switch canonicalField(field) {
	case "authors":
		return i.Authors(), nil
	case "contact":
		return i.Contact(), nil
	case "identifiers":
		return i.Identifiers(), nil
	case "references":
		return i.References(), nil
	case "preferred-citation":
		return i.PreferredCitation(), nil
	case "license":
		return i.License(), nil
	default:
		return i.fields.get(field)
	}
}

// Set writes an allow-listed field. The type and license fields route
// through their checked setters; date-released parses string input
// strictly.
func (i *Index) Set(field string, value any) error {
	f := canonicalField(field)
	switch f {
	case "type":
		if s, ok := value.(string); ok {
			i.SetType(s)
		}
		return nil
	case "license":
		i.SetLicense(value)
		return nil
	case "keywords":
		i.fields.fields["keywords"] = toStringSlice(value)
		return nil
	case "authors":
		if list, ok := value.([]Actor); ok {
			i.authors = list
		}
		return nil
	case "contact":
		if list, ok := value.([]Actor); ok {
			i.contact = list
		}
		return nil
	case "identifiers":
		if list, ok := value.([]*Identifier); ok {
			i.identifiers = list
		}
		return nil
	case "references":
		if list, ok := value.([]*Reference); ok {
			i.references = list
		}
		return nil
	case "preferred-citation":
		if r, ok := value.(*Reference); ok {
			i.preferredCitation = r
		}
		return nil
	default:
		return i.fields.set(field, value)
	}
}

// SetType sets the document type. Input is lower-cased and restricted to
// "software" or "dataset"; anything else is ignored.
func (i *Index) SetType(docType string) {
	docType = strings.ToLower(docType)
	for _, t := range IndexTypes {
		if t == docType {
			i.fields.fields["type"] = docType
			return
		}
	}
}

// SetLicense sets the license (a single SPDX identifier or a list),
// filtering out anything not on the SPDX license list. If nothing survives
// the filter the previous value is kept.
func (i *Index) SetLicense(value any) { setLicense(i.fields, value) }

// SetDateReleased sets the release date from a time.Time or an ISO 8601
// string, returning an InvalidDateError for unparsable input.
func (i *Index) SetDateReleased(value any) error {
	return i.fields.setDate("date-released", value)
}

// Authors returns the document's authors, never nil.
func (i *Index) Authors() []Actor { return i.authors }

// AddAuthor appends an author.
func (i *Index) AddAuthor(a Actor) { i.authors = append(i.authors, a) }

// Contact returns the document's contacts, never nil.
func (i *Index) Contact() []Actor { return i.contact }

// AddContact appends a contact.
func (i *Index) AddContact(a Actor) { i.contact = append(i.contact, a) }

// Identifiers returns the document's identifiers, never nil.
func (i *Index) Identifiers() []*Identifier { return i.identifiers }

// AddIdentifier appends an identifier.
func (i *Index) AddIdentifier(id *Identifier) { i.identifiers = append(i.identifiers, id) }

// References returns the document's references, never nil.
func (i *Index) References() []*Reference { return i.references }

// AddReference appends a reference.
func (i *Index) AddReference(r *Reference) { i.references = append(i.references, r) }

// PreferredCitation returns the preferred citation, or nil.
func (i *Index) PreferredCitation() *Reference { return i.preferredCitation }

// SetPreferredCitation sets the preferred citation.
func (i *Index) SetPreferredCitation(r *Reference) { i.preferredCitation = r }

// Keywords returns the document's keywords, never nil.
func (i *Index) Keywords() []string { return i.fields.strs("keywords") }

// AddKeyword appends a keyword.
func (i *Index) AddKeyword(k string) {
	i.fields.fields["keywords"] = append(i.fields.strs("keywords"), k)
}

// Title returns the document title, or "".
func (i *Index) Title() string { return i.fields.str("title") }

// Version returns the software or dataset version, or "".
func (i *Index) Version() string { return i.fields.str("version") }

// CFFVersion returns the document's cff-version, or "".
func (i *Index) CFFVersion() string { return i.fields.str("cff-version") }

// Message returns the citation-request message, or "".
func (i *Index) Message() string { return i.fields.str("message") }

// Type returns the document type ("software", "dataset" or "").
func (i *Index) Type() string { return i.fields.str("type") }

// DOI returns the document DOI, or "".
func (i *Index) DOI() string { return i.fields.str("doi") }

// URL returns the document URL, or "".
func (i *Index) URL() string { return i.fields.str("url") }

// Abstract returns the abstract, or "".
func (i *Index) Abstract() string { return i.fields.str("abstract") }

// Commit returns the commit reference, or "".
func (i *Index) Commit() string { return i.fields.str("commit") }

// Repository returns the repository URL, or "".
func (i *Index) Repository() string { return i.fields.str("repository") }

// RepositoryArtifact returns the artifact repository URL, or "".
func (i *Index) RepositoryArtifact() string { return i.fields.str("repository-artifact") }

// RepositoryCode returns the source repository URL, or "".
func (i *Index) RepositoryCode() string { return i.fields.str("repository-code") }

// LicenseURL returns the license URL, or "".
func (i *Index) LicenseURL() string { return i.fields.str("license-url") }

// License returns the license: a string, a string list, or "" when unset.
func (i *Index) License() any { return licenseValue(i.fields) }

// DateReleased returns the release date, or the zero time.
func (i *Index) DateReleased() time.Time { return i.fields.date("date-released") }

// Fields flattens the document back to a raw field mapping ready for
// serialization. Dates emit as ISO 8601 strings and empty collections are
// omitted, since the file format forbids empty arrays. Collection entries
// that are not model objects are excluded.
func (i *Index) Fields() map[string]any {
	out := i.fields.rawFields()

	if kw, ok := out["keywords"].([]string); ok && len(kw) == 0 {
		delete(out, "keywords")
	}
	if len(i.authors) > 0 {
		out["authors"] = flattenActors(i.authors)
	}
	if len(i.contact) > 0 {
		out["contact"] = flattenActors(i.contact)
	}

	ids := make([]map[string]any, 0, len(i.identifiers))
	for _, id := range i.identifiers {
		if id != nil {
			ids = append(ids, id.Fields())
		}
	}
	if len(ids) > 0 {
		out["identifiers"] = ids
	}

	refs := make([]map[string]any, 0, len(i.references))
	for _, r := range i.references {
		if r != nil {
			refs = append(refs, r.Fields())
		}
	}
	if len(refs) > 0 {
		out["references"] = refs
	}

	if i.preferredCitation != nil {
		out["preferred-citation"] = i.preferredCitation.Fields()
	}
	return out
}

// Citation renders the document in the named citation style using the
// supplied formatter registry. Unknown formats yield "". A nil opts uses
// the defaults (honour the preferred citation).
func (i *Index) Citation(reg *Registry, format string, opts *CitationOptions) string {
	if reg == nil {
		return ""
	}
	f := reg.FormatterFor(format)
	if f == nil {
		return ""
	}
	if opts == nil {
		opts = &CitationOptions{PreferredCitation: true}
	}
	s, ok := f.Format(i, *opts)
	if !ok {
		return ""
	}
	return s
}
