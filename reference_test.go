package cff

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewReference(t *testing.T) {
	r := NewReference("A Paper")

	if got := r.Type(); got != "generic" {
		t.Errorf("Type() = %q, want %q", got, "generic")
	}
	if got := r.Title(); got != "A Paper" {
		t.Errorf("Title() = %q", got)
	}
}

func TestNewReferenceWithType(t *testing.T) {
	tests := []struct {
		name    string
		refType string
		want    string
	}{
		{"known type", "book", "book"},
		{"mixed case", "Conference-Paper", "conference-paper"},
		{"unknown type falls back", "lolcat", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReferenceWithType("A Work", tt.refType)
			if got := r.Type(); got != tt.want {
				t.Errorf("Type() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReferenceSetTypeIgnoresInvalid(t *testing.T) {
	r := NewReferenceWithType("A Paper", "article")
	r.SetType("lolcat")
	if got := r.Type(); got != "article" {
		t.Errorf("Type() = %q, want unchanged %q", got, "article")
	}
}

func TestReferenceSetStatus(t *testing.T) {
	r := NewReference("A Paper")

	r.SetStatus("In-Press")
	if got := r.Status(); got != "in-press" {
		t.Errorf("Status() = %q, want %q", got, "in-press")
	}

	r.SetStatus("published-twice")
	if got := r.Status(); got != "in-press" {
		t.Errorf("Status() = %q, want unchanged %q", got, "in-press")
	}
}

func TestReferenceInvalidDate(t *testing.T) {
	r := NewReference("A Paper")

	err := r.Set("date-published", "sometime soon")
	var ide *InvalidDateError
	if !errors.As(err, &ide) {
		t.Fatalf("Set of bad date returned %v, want *InvalidDateError", err)
	}
}

func TestReferenceLanguages(t *testing.T) {
	r := NewReference("A Paper")

	r.AddLanguage("en")
	r.AddLanguage("GER")
	r.AddLanguage("french")
	r.AddLanguage("not a language")
	r.AddLanguage("eng") // already present as "eng"

	want := []string{"eng", "deu", "fra"}
	if got := r.Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}

	r.ResetLanguages()
	if got := r.Languages(); len(got) != 0 {
		t.Errorf("Languages() after reset = %v, want empty", got)
	}
	if _, ok := r.Fields()["languages"]; ok {
		t.Error("languages field present after ResetLanguages")
	}
}

func TestReferenceLanguageLookupInjection(t *testing.T) {
	defer SetLanguageLookup(nil)

	SetLanguageLookup(func(input string) (string, bool) {
		if input == "pirate" {
			return "arr", true
		}
		return "", false
	})

	r := NewReference("A Paper")
	r.AddLanguage("pirate")
	r.AddLanguage("english")

	if got := r.Languages(); !reflect.DeepEqual(got, []string{"arr"}) {
		t.Errorf("Languages() = %v, want [arr]", got)
	}
}

func TestNewReferenceFromIndex(t *testing.T) {
	i := NewIndex("My Research Software")
	i.AddAuthor(NewPerson("Robert", "Haines"))
	i.AddContact(NewEntity("The Support Team"))
	i.AddIdentifier(NewIdentifier("doi", "10.5281/zenodo.1184077"))
	if err := i.Set("version", "1.2.3"); err != nil {
		t.Fatal(err)
	}
	if err := i.Set("repository-code", "https://github.com/citation-file-format/ruby-cff"); err != nil {
		t.Fatal(err)
	}
	if err := i.SetDateReleased("2021-12-18"); err != nil {
		t.Fatal(err)
	}
	i.AddKeyword("citation")

	r := NewReferenceFromIndex(i, "")

	if got := r.Type(); got != "software" {
		t.Errorf("Type() = %q, want %q", got, "software")
	}
	if got := r.Title(); got != "My Research Software" {
		t.Errorf("Title() = %q", got)
	}
	if len(r.Authors()) != 1 || len(r.Contact()) != 1 || len(r.Identifiers()) != 1 {
		t.Error("collections not copied from document")
	}
	if got := r.Version(); got != "1.2.3" {
		t.Errorf("Version() = %q", got)
	}
	if got := r.RepositoryCode(); got == "" {
		t.Error("repository-code not copied")
	}
	if r.DateReleased().IsZero() {
		t.Error("date-released not copied")
	}
	if got := r.Keywords(); !reflect.DeepEqual(got, []string{"citation"}) {
		t.Errorf("Keywords() = %v", got)
	}
}

func TestReferenceFieldsOmitsEmptyCollections(t *testing.T) {
	r := NewReference("A Paper")
	fields := r.Fields()

	for _, key := range []string{"authors", "editors", "identifiers"} {
		if _, ok := fields[key]; ok {
			t.Errorf("empty collection %q present in Fields()", key)
		}
	}
}

func TestReferenceEntityFields(t *testing.T) {
	r := NewReferenceWithType("A Paper", "conference-paper")
	if err := r.Set("conference", NewEntity("Open Conf")); err != nil {
		t.Fatal(err)
	}
	if err := r.Set("publisher", NewEntity("Open Press")); err != nil {
		t.Fatal(err)
	}

	if got := r.Conference().Name(); got != "Open Conf" {
		t.Errorf("Conference().Name() = %q", got)
	}
	if got := r.Publisher().Name(); got != "Open Press" {
		t.Errorf("Publisher().Name() = %q", got)
	}
	if r.Institution() != nil {
		t.Error("Institution() non-nil for unset field")
	}

	fields := r.Fields()
	conf, ok := fields["conference"].(map[string]any)
	if !ok {
		t.Fatalf("fields[conference] is %T, want map", fields["conference"])
	}
	if conf["name"] != "Open Conf" {
		t.Errorf("flattened conference name = %v", conf["name"])
	}
}

func TestReferenceFromFieldsPromotesNested(t *testing.T) {
	r := referenceFromFields(map[string]any{
		"type":  "book",
		"title": "A Book",
		"authors": []any{
			map[string]any{"family-names": "Haines", "given-names": "Robert"},
		},
		"publisher": map[string]any{"name": "Open Press"},
		"identifiers": []any{
			map[string]any{"type": "doi", "value": "10.5281/zenodo.1184077"},
		},
	})

	if len(r.Authors()) != 1 {
		t.Fatalf("got %d authors, want 1", len(r.Authors()))
	}
	if got := r.Publisher().Name(); got != "Open Press" {
		t.Errorf("Publisher().Name() = %q", got)
	}
	if len(r.Identifiers()) != 1 || r.Identifiers()[0].Value() != "10.5281/zenodo.1184077" {
		t.Error("identifiers not promoted")
	}
}
