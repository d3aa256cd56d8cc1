package formatters

import (
	"sort"
	"strconv"
	"strings"

	"github.com/citekit/cff"
)

// entryTypeFields declares, per BibTeX entry type, the fields to emit.
// Names suffixed with "!" are computed by a derivation function instead of
// copied from the model field of the same name.
var entryTypeFields = map[string][]string{
	"article":       {"doi", "journal", "note!", "number!", "pages!", "volume"},
	"book":          {"address!", "doi", "editor!", "isbn", "number!", "pages!", "publisher!", "volume"},
	"booklet":       {"address!", "doi"},
	"inproceedings": {"address!", "booktitle!", "doi", "editor!", "pages!", "publisher!", "series!"},
	"manual":        {"address!", "doi"},
	"mastersthesis": {"address!", "doi", "school!", "type!"},
	"misc":          {"doi", "pages!"},
	"phdthesis":     {"address!", "doi", "school!", "type!"},
	"proceedings":   {"address!", "booktitle!", "doi", "editor!", "pages!", "publisher!", "series!"},
	"software":      {"doi", "license", "version"},
	"techreport":    {"address!", "doi", "institution!", "number!"},
	"unpublished":   {"doi", "note!"},
}

// monthAbbreviations holds the three-letter month names BibTeX expects,
// indexed by month number minus one.
var monthAbbreviations = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// latexEscaper escapes the characters that would break a LaTeX document.
var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
)

// BibTeX renders a model as a BibTeX entry.
type BibTeX struct{}

// Label returns the formatter's registration key.
func (BibTeX) Label() string { return "BibTeX" }

// Format renders the model as a BibTeX entry block. It reports false when
// the model is not citable.
func (BibTeX) Format(model any, opts cff.CitationOptions) (string, bool) {
	model = selectModel(model, opts)
	if model == nil {
		return "", false
	}

	values := map[string]string{}
	values["author"] = bibtexActorList(modelAuthors(model))
	values["title"] = "{" + escape(modelTitle(model)) + "}"

	entryType := bibtexType(model)
	bibtexPublicationData(model, entryType, values)

	month, year := bibtexMonthAndYear(model)
	if abbr := monthAbbreviation(month); abbr != "" {
		values["month"] = abbr
	}
	values["year"] = year
	values["url"] = modelURL(model)

	if r := asReference(model); r != nil && values["note"] == "" {
		values["note"] = r.Notes()
	}

	for k, v := range values {
		if v == "" {
			delete(values, k)
		}
	}

	lines := []string{generateCitekey(values)}
	for _, key := range sortedValueKeys(values) {
		value := values[key]
		if key != "month" {
			value = "{" + value + "}"
		}
		lines = append(lines, key+" = "+value)
	}

	return "@" + entryType + "{" + strings.Join(lines, ",\n") + "\n}", true
}

// bibtexType maps a model's type onto a BibTeX entry type. Anything
// software-flavoured, including an empty type, cites as @software.
func bibtexType(model any) string {
	t := modelType(model)
	if t == "" || strings.Contains(t, "software") {
		return "software"
	}
	switch t {
	case "article", "book", "manual", "unpublished", "phdthesis", "mastersthesis":
		return t
	case "conference", "proceedings":
		return "proceedings"
	case "conference-paper":
		return "inproceedings"
	case "magazine-article", "newspaper-article":
		return "article"
	case "pamphlet":
		return "booklet"
	case "report":
		return "techreport"
	default:
		return "misc"
	}
}

// bibtexPublicationData fills in the entry-type-specific fields, either by
// direct copy or via a derivation function for "!"-marked names.
func bibtexPublicationData(model any, entryType string, values map[string]string) {
	for _, field := range entryTypeFields[entryType] {
		if !strings.HasSuffix(field, "!") {
			values[field] = escape(plainFieldValue(model, field))
			continue
		}
		field = strings.TrimSuffix(field, "!")
		values[field] = derivedFieldValue(model, field)
	}
}

func plainFieldValue(model any, field string) string {
	r := asReference(model)
	switch field {
	case "doi":
		return modelDOI(model)
	case "version":
		return modelVersion(model)
	case "license":
		return licenseString(model)
	case "journal":
		if r != nil {
			return r.Journal()
		}
	case "volume":
		if r != nil {
			return r.Volume()
		}
	case "isbn":
		if r != nil {
			return r.ISBN()
		}
	}
	return ""
}

func derivedFieldValue(model any, field string) string {
	r := asReference(model)
	switch field {
	case "note":
		return note(model)
	case "number":
		// BibTeX 'number' is CFF 'issue'.
		if r != nil {
			return r.Issue()
		}
	case "pages":
		return pages(model, "--")
	case "address":
		return addressFrom(r)
	case "booktitle":
		// BibTeX 'booktitle' is CFF 'collection-title'.
		if r != nil {
			return escape(r.CollectionTitle())
		}
	case "editor":
		return editorsFrom(r)
	case "institution", "school":
		return institutionFrom(model)
	case "publisher":
		if r != nil && r.Publisher() != nil {
			return escape(r.Publisher().Name())
		}
	case "series":
		if r != nil && r.Conference() != nil {
			return escape(r.Conference().Name())
		}
	case "type":
		// BibTeX 'type' for theses is CFF 'thesis-type'.
		if r != nil {
			return r.ThesisType()
		}
	}
	return ""
}

// addressFrom derives the address from the publisher, or the conference
// for conference papers.
func addressFrom(r *cff.Reference) string {
	if r == nil {
		return ""
	}
	entity := r.Publisher()
	if r.Type() == "conference-paper" {
		entity = r.Conference()
	}
	if entity == nil {
		return ""
	}
	var parts []string
	for _, p := range []string{entity.City(), entity.Region(), entity.Country()} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func editorsFrom(r *cff.Reference) string {
	if r == nil {
		return ""
	}
	if len(r.Editors()) > 0 {
		return bibtexActorList(r.Editors())
	}
	if len(r.EditorsSeries()) > 0 {
		return bibtexActorList(r.EditorsSeries())
	}
	return ""
}

// institutionFrom derives the institution (or thesis school) from the
// explicit institution entity, falling back to the first author's
// affiliation.
func institutionFrom(model any) string {
	r := asReference(model)
	if r != nil && r.Institution() != nil {
		return escape(r.Institution().Name())
	}
	authors := modelAuthors(model)
	if len(authors) > 0 {
		if p, ok := authors[0].(*cff.Person); ok {
			return escape(p.Affiliation())
		}
	}
	return ""
}

func licenseString(model any) string {
	var v any
	switch m := model.(type) {
	case *cff.Index:
		v = m.License()
	case *cff.Reference:
		v = m.License()
	}
	switch l := v.(type) {
	case string:
		return l
	case []string:
		return strings.Join(l, ", ")
	default:
		return ""
	}
}

// bibtexMonthAndYear prefers the conference date for conference papers.
func bibtexMonthAndYear(model any) (string, string) {
	if r := asReference(model); r != nil && r.Type() == "conference-paper" && r.Conference() != nil {
		if start := r.Conference().DateStart(); !start.IsZero() {
			return monthAndYearFromDate(start)
		}
	}
	return monthAndYear(model)
}

func monthAbbreviation(month string) string {
	n, err := strconv.Atoi(month)
	if err != nil || n < 1 || n > 12 {
		return ""
	}
	return monthAbbreviations[n-1]
}

// bibtexActorList renders an actor list joined with the literal " and ".
func bibtexActorList(actors []cff.Actor) string {
	rendered := make([]string, 0, len(actors))
	for _, a := range actors {
		rendered = append(rendered, bibtexActor(a))
	}
	return strings.Join(rendered, " and ")
}

// bibtexActor renders one actor: entities are braced verbatim, people
// render as "particle family-names, suffix, given-names" with empty parts
// omitted, falling back to a braced alias when no names are present.
func bibtexActor(actor cff.Actor) string {
	switch a := actor.(type) {
	case *cff.Entity:
		return "{" + escape(a.Name()) + "}"
	case *cff.Person:
		if a.FamilyNames() == "" && a.GivenNames() == "" {
			return escape(a.Alias())
		}
		family := a.FamilyNames()
		if a.NameParticle() != "" {
			family = a.NameParticle() + " " + family
		}
		var parts []string
		for _, p := range []string{family, a.NameSuffix(), a.GivenNames()} {
			if p != "" {
				parts = append(parts, escape(p))
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// generateCitekey builds the entry key from the first author's surname,
// the first three title words and the year, parameterized to a safe
// identifier.
func generateCitekey(values map[string]string) string {
	var parts []string
	if author := values["author"]; author != "" {
		parts = append(parts, strings.SplitN(author, ",", 2)[0])
	}
	if title := values["title"]; title != "" {
		words := strings.Fields(title)
		if len(words) > 3 {
			words = words[:3]
		}
		parts = append(parts, words...)
	}
	if year := values["year"]; year != "" {
		parts = append(parts, year)
	}
	return parameterize(strings.Join(parts, "_"), "_")
}

func sortedValueKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escape backslash-escapes LaTeX special characters in titles and names.
func escape(s string) string {
	return latexEscaper.Replace(s)
}
