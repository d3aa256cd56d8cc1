// Package formatters provides the citation-style formatters bundled with
// this library: BibTeX, an APA-like plain-text style, and a CSL adapter.
//
// Formatters are registered with a cff.Registry; DefaultRegistry returns
// one with the built-in styles already registered.
package formatters

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/citekit/cff"
)

// statusText maps reference status values to the note text some styles
// print for them.
var statusText = map[string]string{
	"advance-online": "Advance online publication",
	"in-preparation": "Manuscript in preparation.",
	"submitted":      "Manuscript submitted for publication.",
}

// DefaultRegistry returns a registry with the BibTeX and APA-like
// formatters registered. The CSL formatter needs a renderer, so hosts
// register it themselves once they have one.
func DefaultRegistry() *cff.Registry {
	reg := cff.NewRegistry()
	reg.Register(BibTeX{})
	reg.Register(APALike{})
	return reg
}

// selectModel applies the preferred-citation redirection and the shared
// eligibility check: a model with no authors or no title is not citable
// and selects to nil.
func selectModel(model any, opts cff.CitationOptions) any {
	if index, ok := model.(*cff.Index); ok && opts.PreferredCitation {
		if pc := index.PreferredCitation(); pc != nil {
			model = pc
		}
	}
	if len(modelAuthors(model)) == 0 || modelTitle(model) == "" {
		return nil
	}
	return model
}

func asReference(model any) *cff.Reference {
	r, _ := model.(*cff.Reference)
	return r
}

func modelAuthors(model any) []cff.Actor {
	switch m := model.(type) {
	case *cff.Index:
		return m.Authors()
	case *cff.Reference:
		return m.Authors()
	default:
		return nil
	}
}

func modelTitle(model any) string {
	switch m := model.(type) {
	case *cff.Index:
		return m.Title()
	case *cff.Reference:
		return m.Title()
	default:
		return ""
	}
}

func modelVersion(model any) string {
	switch m := model.(type) {
	case *cff.Index:
		return m.Version()
	case *cff.Reference:
		return m.Version()
	default:
		return ""
	}
}

func modelDOI(model any) string {
	switch m := model.(type) {
	case *cff.Index:
		return m.DOI()
	case *cff.Reference:
		return m.DOI()
	default:
		return ""
	}
}

func modelType(model any) string {
	switch m := model.(type) {
	case *cff.Index:
		return m.Type()
	case *cff.Reference:
		return m.Type()
	default:
		return ""
	}
}

func modelDateReleased(model any) time.Time {
	switch m := model.(type) {
	case *cff.Index:
		return m.DateReleased()
	case *cff.Reference:
		return m.DateReleased()
	default:
		return time.Time{}
	}
}

// modelURL prefers repository-code over the plain url field.
func modelURL(model any) string {
	switch m := model.(type) {
	case *cff.Index:
		if m.RepositoryCode() != "" {
			return m.RepositoryCode()
		}
		return m.URL()
	case *cff.Reference:
		if m.RepositoryCode() != "" {
			return m.RepositoryCode()
		}
		return m.URL()
	default:
		return ""
	}
}

// initials abbreviates given names: "Jamie Robert" becomes "J. R". The
// first letter may be multi-byte, so take the first rune, not the first
// byte.
func initials(name string) string {
	parts := strings.Fields(name)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		r, _ := utf8.DecodeRuneInString(p)
		out = append(out, string(unicode.ToUpper(r)))
	}
	return strings.Join(out, ". ")
}

// note returns the status-derived note text for a reference, or "".
func note(model any) string {
	if r := asReference(model); r != nil {
		return statusText[r.Status()]
	}
	return ""
}

// monthAndYear resolves the month and year to cite. An in-press reference
// cites "in press"; explicit month/year fields win over date-released,
// and date-published is the fallback after date-released.
func monthAndYear(model any) (month, year string) {
	r := asReference(model)
	if r != nil {
		if r.Status() == "in-press" {
			return "", "in press"
		}
		if y := r.Year(); y != "" {
			return r.Month(), y
		}
	}
	month, year = monthAndYearFromDate(modelDateReleased(model))
	if month == "" && year == "" && r != nil {
		month, year = monthAndYearFromDate(r.DatePublished())
	}
	return month, year
}

func monthAndYearFromDate(t time.Time) (string, string) {
	if t.IsZero() {
		return "", ""
	}
	return strconv.Itoa(int(t.Month())), strconv.Itoa(t.Year())
}

// pages renders a page range from the start and end fields. The CFF
// `pages` field is a page count, which neither BibTeX nor APA has a slot
// for, so it is not used here.
func pages(model any, dash string) string {
	r := asReference(model)
	if r == nil {
		return ""
	}
	start := r.Start()
	if start == "" {
		return ""
	}
	end := r.End()
	if end == "" || end == start {
		return start
	}
	return start + dash + end
}
