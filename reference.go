package cff

import (
	"strings"
	"time"
)

// ReferenceTypes is the defined set of reference type strings.
var ReferenceTypes = []string{
	"art", "article", "audiovisual", "bill", "blog", "book", "catalogue",
	"conference", "conference-paper", "data", "database", "dictionary",
	"edited-work", "encyclopedia", "film-broadcast", "generic",
	"government-document", "grant", "hearing", "historical-work",
	"legal-case", "legal-rule", "magazine-article", "manual", "map",
	"multimedia", "music", "newspaper-article", "pamphlet", "patent",
	"personal-communication", "proceedings", "report", "serial", "slides",
	"software", "software-code", "software-container", "software-executable",
	"software-virtual-machine", "sound-recording", "standard", "statute",
	"thesis", "unpublished", "video", "website",
}

// ReferenceStatusTypes is the defined set of reference status strings.
var ReferenceStatusTypes = []string{
	"abstract", "advance-online", "in-preparation", "in-press",
	"pre-print", "submitted",
}

var referenceFields = []string{
	"abbreviation", "abstract", "collection-doi", "collection-title",
	"collection-type", "commit", "conference", "copyright", "data-type",
	"database", "database-provider", "date-accessed", "date-downloaded",
	"date-published", "date-released", "department", "doi", "edition",
	"end", "entry", "filename", "format", "institution", "isbn", "issn",
	"issue", "issue-date", "issue-title", "journal", "keywords",
	"languages", "license", "license-url", "loc-end", "loc-start",
	"location", "medium", "month", "nihmsid", "notes", "number",
	"number-volumes", "pages", "patent-states", "pmcid", "publisher",
	"repository", "repository-artifact", "repository-code", "scope",
	"section", "start", "status", "term", "thesis-type", "title", "type",
	"url", "version", "volume", "volume-title", "year", "year-original",
}

var referenceListFields = []string{"keywords", "languages", "patent-states"}

var referenceDateFields = []string{
	"date-accessed", "date-downloaded", "date-published", "date-released",
}

// referenceEntityFields are the fields holding a nested Entity.
var referenceEntityFields = map[string]struct{}{
	"conference": {}, "institution": {}, "publisher": {},
}

// referenceActorFields are the fields holding actor collections, kept
// outside the plain field mapping as typed slices.
var referenceActorFields = []string{
	"authors", "contact", "editors", "editors-series", "recipients",
	"senders", "translators",
}

// Reference is a bibliographic reference to other work: a paper, a book, a
// dataset, another piece of software. A Reference is also usable as a
// document's preferred citation.
//
// The type and status fields are enum-restricted and assignments outside
// their enumerations are silent no-ops, consistent with the rest of the
// model. Date fields reject unparsable input on write with an
// InvalidDateError.
type Reference struct {
	fields *container

	authors       []Actor
	contact       []Actor
	editors       []Actor
	editorsSeries []Actor
	recipients    []Actor
	senders       []Actor
	translators   []Actor

	identifiers []*Identifier
}

func newReferenceContainer() *container {
	return newContainer("reference", referenceFields, referenceListFields, referenceDateFields)
}

// NewReference creates a generic-typed Reference with the supplied title.
func NewReference(title string) *Reference {
	return NewReferenceWithType(title, "generic")
}

// NewReferenceWithType creates a Reference with the supplied title and
// type. The type is lower-cased; anything outside the defined set of
// reference types falls back to "generic".
func NewReferenceWithType(title, refType string) *Reference {
	r := &Reference{fields: newReferenceContainer()}
	refType = strings.ToLower(refType)
	if !isReferenceType(refType) {
		refType = "generic"
	}
	r.fields.fields["type"] = refType
	r.fields.fields["title"] = title
	return r
}

// referenceFromFields materializes a Reference from an already-parsed raw
// mapping, promoting nested actor collections, identifiers and entities
// into their typed forms.
func referenceFromFields(m map[string]any) *Reference {
	r := &Reference{fields: newReferenceContainer()}

	r.authors = buildActorCollection(m["authors"])
	r.contact = buildActorCollection(m["contact"])
	r.editors = buildActorCollection(m["editors"])
	r.editorsSeries = buildActorCollection(m["editors-series"])
	r.recipients = buildActorCollection(m["recipients"])
	r.senders = buildActorCollection(m["senders"])
	r.translators = buildActorCollection(m["translators"])

	if raw, ok := m["identifiers"].([]any); ok {
		for _, entry := range raw {
			if im, ok := entry.(map[string]any); ok {
				r.identifiers = append(r.identifiers, identifierFromFields(im))
			}
		}
	}

	skip := map[string]struct{}{"identifiers": {}}
	for _, f := range referenceActorFields {
		skip[f] = struct{}{}
	}
	for k, v := range m {
		if _, ok := skip[k]; ok {
			continue
		}
		if _, ok := r.fields.allowed[k]; !ok {
			continue
		}
		if _, ok := referenceEntityFields[k]; ok {
			if em, ok := v.(map[string]any); ok {
				r.fields.fields[k] = entityFromFields(em)
			}
			continue
		}
		r.fields.fields[k] = v
	}
	return r
}

// NewReferenceFromIndex creates a Reference of the given type (defaulting
// to "software" when empty) from a document, copying the fixed set of
// fields the two share. It lets a document be cited as a reference without
// copying fields by hand.
func NewReferenceFromIndex(index *Index, refType string) *Reference {
	if refType == "" {
		refType = "software"
	}
	r := NewReferenceWithType(index.Title(), refType)

	r.authors = append(r.authors, index.Authors()...)
	r.contact = append(r.contact, index.Contact()...)
	r.identifiers = append(r.identifiers, index.Identifiers()...)

	for _, f := range []string{
		"abstract", "commit", "doi", "license", "license-url",
		"repository", "repository-artifact", "repository-code", "url",
		"version",
	} {
		if v, ok := index.fields.fields[f]; ok {
			r.fields.fields[f] = v
		}
	}
	if kw := index.Keywords(); len(kw) > 0 {
		r.fields.fields["keywords"] = kw
	}
	if v, ok := index.fields.fields["date-released"]; ok {
		r.fields.fields["date-released"] = v
	}
	return r
}

func isReferenceType(t string) bool {
	for _, rt := range ReferenceTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Get reads an allow-listed field. Actor collections and identifiers are
// returned as their typed slices.
func (r *Reference) Get(field string) (any, error) {
	switch canonicalField(field) {
	case "authors":
		return r.Authors(), nil
	case "contact":
		return r.Contact(), nil
	case "editors":
		return r.Editors(), nil
	case "editors-series":
		return r.EditorsSeries(), nil
	case "recipients":
		return r.Recipients(), nil
	case "senders":
		return r.Senders(), nil
	case "translators":
		return r.Translators(), nil
	case "identifiers":
		return r.Identifiers(), nil
	case "license":
		return r.License(), nil
	default:
		return r.fields.get(field)
	}
}

// Set writes an allow-listed field. Enum-restricted fields route through
// their silent-on-invalid setters and date fields through strict parsing.
func (r *Reference) Set(field string, value any) error {
	f := canonicalField(field)
	switch f {
	case "type":
		if s, ok := value.(string); ok {
			r.SetType(s)
		}
		return nil
	case "status":
		if s, ok := value.(string); ok {
			r.SetStatus(s)
		}
		return nil
	case "license":
		r.SetLicense(value)
		return nil
	case "authors":
		if list, ok := value.([]Actor); ok {
			r.authors = list
		}
		return nil
	case "contact":
		if list, ok := value.([]Actor); ok {
			r.contact = list
		}
		return nil
	case "editors":
		if list, ok := value.([]Actor); ok {
			r.editors = list
		}
		return nil
	case "editors-series":
		if list, ok := value.([]Actor); ok {
			r.editorsSeries = list
		}
		return nil
	case "recipients":
		if list, ok := value.([]Actor); ok {
			r.recipients = list
		}
		return nil
	case "senders":
		if list, ok := value.([]Actor); ok {
			r.senders = list
		}
		return nil
	case "translators":
		if list, ok := value.([]Actor); ok {
			r.translators = list
		}
		return nil
	case "identifiers":
		if list, ok := value.([]*Identifier); ok {
			r.identifiers = list
		}
		return nil
	case "conference", "institution", "publisher":
		if e, ok := value.(*Entity); ok {
			r.fields.fields[f] = e
		}
		return nil
	default:
		return r.fields.set(field, value)
	}
}

// SetType sets the reference type. Input is lower-cased; values outside
// the defined set of reference types are ignored.
func (r *Reference) SetType(refType string) {
	refType = strings.ToLower(refType)
	if isReferenceType(refType) {
		r.fields.fields["type"] = refType
	}
}

// SetStatus sets the reference status. Input is lower-cased; values
// outside the defined set of status strings are ignored.
func (r *Reference) SetStatus(status string) {
	status = strings.ToLower(status)
	for _, s := range ReferenceStatusTypes {
		if s == status {
			r.fields.fields["status"] = status
			return
		}
	}
}

// SetLicense sets the license (a single SPDX identifier or a list),
// filtering out anything not on the SPDX license list. If nothing survives
// the filter the previous value is kept.
func (r *Reference) SetLicense(value any) { setLicense(r.fields, value) }

// AddLanguage resolves a free-form language name or code to its ISO 639-3
// code and adds it to the reference's language list, so "GER" becomes
// "deu" and "french" becomes "fra". Unresolvable input is ignored;
// duplicates are not added twice.
func (r *Reference) AddLanguage(language string) {
	code, ok := languageLookup(language)
	if !ok {
		return
	}
	langs := r.fields.strs("languages")
	for _, l := range langs {
		if l == code {
			return
		}
	}
	r.fields.fields["languages"] = append(langs, code)
}

// ResetLanguages empties the language list by removing the field entirely.
func (r *Reference) ResetLanguages() { r.fields.delete("languages") }

// Languages returns the reference's ISO 639-3 language codes, never nil.
func (r *Reference) Languages() []string { return r.fields.strs("languages") }

// Authors returns the reference's authors.
func (r *Reference) Authors() []Actor { return r.authors }

// AddAuthor appends an author.
func (r *Reference) AddAuthor(a Actor) { r.authors = append(r.authors, a) }

// Contact returns the reference's contacts.
func (r *Reference) Contact() []Actor { return r.contact }

// AddContact appends a contact.
func (r *Reference) AddContact(a Actor) { r.contact = append(r.contact, a) }

// Editors returns the reference's editors.
func (r *Reference) Editors() []Actor { return r.editors }

// AddEditor appends an editor.
func (r *Reference) AddEditor(a Actor) { r.editors = append(r.editors, a) }

// EditorsSeries returns the reference's series editors.
func (r *Reference) EditorsSeries() []Actor { return r.editorsSeries }

// AddEditorSeries appends a series editor.
func (r *Reference) AddEditorSeries(a Actor) { r.editorsSeries = append(r.editorsSeries, a) }

// Recipients returns the reference's recipients.
func (r *Reference) Recipients() []Actor { return r.recipients }

// AddRecipient appends a recipient.
func (r *Reference) AddRecipient(a Actor) { r.recipients = append(r.recipients, a) }

// Senders returns the reference's senders.
func (r *Reference) Senders() []Actor { return r.senders }

// AddSender appends a sender.
func (r *Reference) AddSender(a Actor) { r.senders = append(r.senders, a) }

// Translators returns the reference's translators.
func (r *Reference) Translators() []Actor { return r.translators }

// AddTranslator appends a translator.
func (r *Reference) AddTranslator(a Actor) { r.translators = append(r.translators, a) }

// Identifiers returns the reference's identifiers.
func (r *Reference) Identifiers() []*Identifier { return r.identifiers }

// AddIdentifier appends an identifier.
func (r *Reference) AddIdentifier(i *Identifier) { r.identifiers = append(r.identifiers, i) }

// Title returns the reference title, or "".
func (r *Reference) Title() string { return r.fields.str("title") }

// Type returns the reference type.
func (r *Reference) Type() string { return r.fields.str("type") }

// Status returns the reference status, or "".
func (r *Reference) Status() string { return r.fields.str("status") }

// Version returns the reference version, or "".
func (r *Reference) Version() string { return r.fields.str("version") }

// DOI returns the reference DOI, or "".
func (r *Reference) DOI() string { return r.fields.str("doi") }

// URL returns the reference URL, or "".
func (r *Reference) URL() string { return r.fields.str("url") }

// RepositoryCode returns the source repository URL, or "".
func (r *Reference) RepositoryCode() string { return r.fields.str("repository-code") }

// Journal returns the journal name, or "".
func (r *Reference) Journal() string { return r.fields.str("journal") }

// Volume returns the volume, or "".
func (r *Reference) Volume() string { return r.fields.str("volume") }

// Issue returns the issue, or "".
func (r *Reference) Issue() string { return r.fields.str("issue") }

// ISBN returns the ISBN, or "".
func (r *Reference) ISBN() string { return r.fields.str("isbn") }

// CollectionTitle returns the collection title, or "".
func (r *Reference) CollectionTitle() string { return r.fields.str("collection-title") }

// ThesisType returns the thesis type, or "".
func (r *Reference) ThesisType() string { return r.fields.str("thesis-type") }

// Notes returns the notes, or "".
func (r *Reference) Notes() string { return r.fields.str("notes") }

// Month returns the publication month, or "".
func (r *Reference) Month() string { return r.fields.str("month") }

// Year returns the publication year, or "".
func (r *Reference) Year() string { return r.fields.str("year") }

// Start returns the start page, or "".
func (r *Reference) Start() string { return r.fields.str("start") }

// End returns the end page, or "".
func (r *Reference) End() string { return r.fields.str("end") }

// Abstract returns the abstract, or "".
func (r *Reference) Abstract() string { return r.fields.str("abstract") }

// LicenseURL returns the license URL, or "".
func (r *Reference) LicenseURL() string { return r.fields.str("license-url") }

// License returns the license: a string, a string list, or "" when unset.
func (r *Reference) License() any { return licenseValue(r.fields) }

// Keywords returns the reference keywords, never nil.
func (r *Reference) Keywords() []string { return r.fields.strs("keywords") }

// PatentStates returns the patent states, never nil.
func (r *Reference) PatentStates() []string { return r.fields.strs("patent-states") }

// DateReleased returns the release date, or the zero time.
func (r *Reference) DateReleased() time.Time { return r.fields.date("date-released") }

// DatePublished returns the publication date, or the zero time.
func (r *Reference) DatePublished() time.Time { return r.fields.date("date-published") }

// DateAccessed returns the accessed date, or the zero time.
func (r *Reference) DateAccessed() time.Time { return r.fields.date("date-accessed") }

// DateDownloaded returns the downloaded date, or the zero time.
func (r *Reference) DateDownloaded() time.Time { return r.fields.date("date-downloaded") }

// Conference returns the conference entity, or nil.
func (r *Reference) Conference() *Entity { return r.entity("conference") }

// Publisher returns the publisher entity, or nil.
func (r *Reference) Publisher() *Entity { return r.entity("publisher") }

// Institution returns the institution entity, or nil.
func (r *Reference) Institution() *Entity { return r.entity("institution") }

func (r *Reference) entity(field string) *Entity {
	if e, ok := r.fields.fields[field].(*Entity); ok {
		return e
	}
	return nil
}

// Fields flattens the Reference back to a raw field mapping. Actor
// collections are only emitted when non-empty, and entries that are not
// model objects are excluded.
func (r *Reference) Fields() map[string]any {
	out := r.fields.rawFields()

	collections := []struct {
		name   string
		actors []Actor
	}{
		{"authors", r.authors},
		{"contact", r.contact},
		{"editors", r.editors},
		{"editors-series", r.editorsSeries},
		{"recipients", r.recipients},
		{"senders", r.senders},
		{"translators", r.translators},
	}
	for _, c := range collections {
		if len(c.actors) > 0 {
			out[c.name] = flattenActors(c.actors)
		}
	}

	if len(r.identifiers) > 0 {
		ids := make([]map[string]any, 0, len(r.identifiers))
		for _, id := range r.identifiers {
			if id != nil {
				ids = append(ids, id.Fields())
			}
		}
		out["identifiers"] = ids
	}
	return out
}
