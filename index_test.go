package cff

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewIndex(t *testing.T) {
	i := NewIndex("My Research Software")

	if got := i.Title(); got != "My Research Software" {
		t.Errorf("Title() = %q", got)
	}
	if got := i.CFFVersion(); got != DefaultVersion {
		t.Errorf("CFFVersion() = %q, want %q", got, DefaultVersion)
	}
	if got := i.Message(); got != DefaultMessage {
		t.Errorf("Message() = %q", got)
	}
	if got := i.Keywords(); got == nil || len(got) != 0 {
		t.Errorf("Keywords() = %v, want empty non-nil slice", got)
	}
	if i.Authors() == nil || i.Contact() == nil || i.Identifiers() == nil || i.References() == nil {
		t.Error("collections not initialized")
	}
}

func TestIndexSetType(t *testing.T) {
	i := NewIndex("Test")

	i.SetType("Dataset")
	if got := i.Type(); got != "dataset" {
		t.Errorf("Type() = %q, want %q", got, "dataset")
	}

	i.SetType("poem")
	if got := i.Type(); got != "dataset" {
		t.Errorf("Type() = %q, want unchanged %q", got, "dataset")
	}
}

func TestNewIndexFromFields(t *testing.T) {
	i := NewIndexFromFields(map[string]any{
		"cff-version": "1.2.0",
		"title":       "My Research Software",
		"message":     "Please cite this.",
		"authors": []any{
			map[string]any{"family-names": "Haines", "given-names": "Robert"},
			map[string]any{"name": "The Project Team"},
		},
		"keywords": []any{"ruby", "credit"},
		"references": []any{
			map[string]any{"type": "book", "title": "A Book"},
		},
		"preferred-citation": map[string]any{
			"type":  "article",
			"title": "An Article",
		},
	})

	if len(i.Authors()) != 2 {
		t.Fatalf("got %d authors, want 2", len(i.Authors()))
	}
	if _, ok := i.Authors()[0].(*Person); !ok {
		t.Errorf("authors[0] is %T, want *Person", i.Authors()[0])
	}
	if _, ok := i.Authors()[1].(*Entity); !ok {
		t.Errorf("authors[1] is %T, want *Entity", i.Authors()[1])
	}
	if got := i.Keywords(); !reflect.DeepEqual(got, []string{"ruby", "credit"}) {
		t.Errorf("Keywords() = %v", got)
	}
	if len(i.References()) != 1 || i.References()[0].Type() != "book" {
		t.Error("references not promoted")
	}
	pc := i.PreferredCitation()
	if pc == nil || pc.Title() != "An Article" {
		t.Errorf("PreferredCitation() = %v", pc)
	}
}

func TestNewIndexFromFieldsUpgradesVersion(t *testing.T) {
	i := NewIndexFromFields(map[string]any{
		"cff-version": "1.1.0",
		"title":       "Test",
	})
	if got := i.CFFVersion(); got != MinValidatableVersion {
		t.Errorf("CFFVersion() = %q, want %q", got, MinValidatableVersion)
	}
}

func TestIndexFieldsOmitsEmptyCollections(t *testing.T) {
	i := NewIndex("Test")
	fields := i.Fields()

	// The file format puts minItems: 1 on these arrays, so a minimal
	// document must not serialize them at all.
	for _, key := range []string{"authors", "contact", "identifiers", "keywords", "references"} {
		if _, ok := fields[key]; ok {
			t.Errorf("Fields() contains empty %q", key)
		}
	}
	if _, ok := fields["preferred-citation"]; ok {
		t.Error("unset preferred-citation present in Fields()")
	}

	i.AddAuthor(NewPerson("Robert", "Haines"))
	i.AddKeyword("citation")
	fields = i.Fields()
	if _, ok := fields["authors"]; !ok {
		t.Error("Fields() missing populated authors")
	}
	if _, ok := fields["keywords"]; !ok {
		t.Error("Fields() missing populated keywords")
	}
	if _, ok := fields["contact"]; ok {
		t.Error("Fields() contains empty contact")
	}
}

func TestIndexFieldsFlattensNested(t *testing.T) {
	i := NewIndex("Test")
	i.AddAuthor(NewPerson("Robert", "Haines"))
	if err := i.SetDateReleased("2021-12-18"); err != nil {
		t.Fatal(err)
	}
	i.SetPreferredCitation(NewReferenceWithType("An Article", "article"))

	fields := i.Fields()

	authors, ok := fields["authors"].([]map[string]any)
	if !ok || len(authors) != 1 {
		t.Fatalf("fields[authors] = %v", fields["authors"])
	}
	if authors[0]["family-names"] != "Haines" {
		t.Errorf("flattened author = %v", authors[0])
	}
	if fields["date-released"] != "2021-12-18" {
		t.Errorf("fields[date-released] = %v", fields["date-released"])
	}
	pc, ok := fields["preferred-citation"].(map[string]any)
	if !ok || pc["title"] != "An Article" {
		t.Errorf("fields[preferred-citation] = %v", fields["preferred-citation"])
	}
}

// stubFormatter renders a fixed string and records the options it saw.
type stubFormatter struct {
	label  string
	output string
	ok     bool
	seen   *CitationOptions
}

func (s *stubFormatter) Label() string { return s.label }

func (s *stubFormatter) Format(model any, opts CitationOptions) (string, bool) {
	if s.seen != nil {
		*s.seen = opts
	}
	return s.output, s.ok
}

func TestIndexCitation(t *testing.T) {
	i := NewIndex("Test")
	reg := NewRegistry()
	reg.Register(&stubFormatter{label: "stub", output: "CITE ME", ok: true})

	if got := i.Citation(reg, "STUB", nil); got != "CITE ME" {
		t.Errorf("Citation() = %q, want %q", got, "CITE ME")
	}
	if got := i.Citation(reg, "unknown", nil); got != "" {
		t.Errorf("Citation(unknown format) = %q, want empty", got)
	}
	if got := i.Citation(nil, "stub", nil); got != "" {
		t.Errorf("Citation(nil registry) = %q, want empty", got)
	}
}

func TestIndexCitationDefaultOptions(t *testing.T) {
	var seen CitationOptions
	reg := NewRegistry()
	reg.Register(&stubFormatter{label: "stub", output: "x", ok: true, seen: &seen})

	NewIndex("Test").Citation(reg, "stub", nil)
	if !seen.PreferredCitation {
		t.Error("nil options did not default to PreferredCitation=true")
	}

	NewIndex("Test").Citation(reg, "stub", &CitationOptions{PreferredCitation: false})
	if seen.PreferredCitation {
		t.Error("explicit options not passed through")
	}
}

func TestIndexCitationNotCitable(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubFormatter{label: "stub", output: "ignored", ok: false})

	if got := NewIndex("Test").Citation(reg, "stub", nil); got != "" {
		t.Errorf("Citation() = %q, want empty for not-citable", got)
	}
}

func TestIndexUnknownField(t *testing.T) {
	i := NewIndex("Test")
	err := i.Set("page-count", 42)
	if err == nil || !strings.Contains(err.Error(), "unknown field") {
		t.Errorf("Set of unknown field returned %v", err)
	}
}
