package formatters

import (
	"github.com/citekit/cff"
)

// Renderer turns a CSL-JSON item into a formatted citation. Implementations
// wrap a citation processor; Render reports false when the item cannot be
// processed.
type Renderer interface {
	Render(item map[string]any, style, locale string) (string, bool)
}

// CSL adapts a model to CSL-JSON and hands it to a Renderer. The zero
// value is not usable: a Renderer must be supplied.
type CSL struct {
	Renderer Renderer

	// Style is the CSL style name, "apa" when empty.
	Style string
	// Locale is the CSL locale, "en-US" when empty.
	Locale string
}

// Label returns the formatter's registration key.
func (CSL) Label() string { return "CSL" }

// Format renders the model through the configured renderer. On top of the
// shared eligibility rules, a model without a version is not citable here.
func (f CSL) Format(model any, opts cff.CitationOptions) (string, bool) {
	if f.Renderer == nil {
		return "", false
	}
	model = selectModel(model, opts)
	if model == nil || modelVersion(model) == "" {
		return "", false
	}

	style := f.Style
	if style == "" {
		style = "apa"
	}
	locale := f.Locale
	if locale == "" {
		locale = "en-US"
	}
	return f.Renderer.Render(cslItem(model), style, locale)
}

// cslItem builds the CSL-JSON item for a model. Empty values are omitted.
func cslItem(model any) map[string]any {
	item := map[string]any{
		// Most CSL styles have no software item type yet; book renders best.
		"type":     "book",
		"language": "eng",
		"author":   cslAuthors(modelAuthors(model)),
		"title":    modelTitle(model),
		"version":  modelVersion(model),
	}

	if doi := modelDOI(model); doi != "" {
		item["id"] = "https://doi.org/" + doi
		item["DOI"] = doi
	}
	if url := modelURL(model); url != "" {
		item["URL"] = url
	}
	if parts := cslIssued(model); parts != nil {
		item["issued"] = map[string]any{"date-parts": [][]int{parts}}
	}

	switch m := model.(type) {
	case *cff.Index:
		setNonEmpty(item, "abstract", m.Abstract())
		if kw := m.Keywords(); len(kw) > 0 {
			item["categories"] = kw
		}
	case *cff.Reference:
		setNonEmpty(item, "abstract", m.Abstract())
		if kw := m.Keywords(); len(kw) > 0 {
			item["categories"] = kw
		}
	}

	return item
}

// cslAuthors renders actors as CSL name objects. Entities use the
// "literal" form.
func cslAuthors(actors []cff.Actor) []map[string]any {
	names := make([]map[string]any, 0, len(actors))
	for _, actor := range actors {
		name := map[string]any{}
		switch a := actor.(type) {
		case *cff.Entity:
			setNonEmpty(name, "literal", a.Name())
		case *cff.Person:
			setNonEmpty(name, "given", a.GivenNames())
			setNonEmpty(name, "non-dropping-particle", a.NameParticle())
			setNonEmpty(name, "family", a.FamilyNames())
			setNonEmpty(name, "suffix", a.NameSuffix())
		}
		if len(name) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// cslIssued derives the issued date-parts, most significant first, with
// unset trailing components dropped.
func cslIssued(model any) []int {
	t := modelDateReleased(model)
	if t.IsZero() {
		if r := asReference(model); r != nil {
			t = r.DatePublished()
		}
	}
	if t.IsZero() {
		return nil
	}
	return []int{t.Year(), int(t.Month()), t.Day()}
}

func setNonEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
