package cff

import (
	"reflect"
	"testing"
	"time"
)

func TestCanonicalField(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"given_names", "given-names"},
		{"given-names", "given-names"},
		{"date_released", "date-released"},
		{"title", "title"},
	}

	for _, tt := range tests {
		if got := canonicalField(tt.input); got != tt.want {
			t.Errorf("canonicalField(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2021-12-18")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Year() != 2021 || got.Month() != time.December || got.Day() != 18 {
		t.Errorf("parseDate() = %v", got)
	}

	if _, err := parseDate("2021-12-18T12:34:56Z"); err != nil {
		t.Errorf("full timestamp rejected: %v", err)
	}
	if _, err := parseDate("18/12/2021"); err == nil {
		t.Error("non-ISO date accepted")
	}
}

func TestContainerStrTolerance(t *testing.T) {
	// Raw-loaded documents can carry scalars of the wrong type; reads
	// stringify scalars and treat structured values as unset.
	i := NewIndexFromFields(map[string]any{
		"title":   "Test",
		"version": 1.1,
		"commit":  map[string]any{"oops": true},
	})

	if got := i.Version(); got != "1.1" {
		t.Errorf("Version() = %q, want stringified scalar", got)
	}
	if got := i.Commit(); got != "" {
		t.Errorf("Commit() = %q, want empty for structured value", got)
	}
}

func TestContainerStrsTolerance(t *testing.T) {
	i := NewIndexFromFields(map[string]any{
		"title":    "Test",
		"keywords": []any{"one", 2},
	})

	if got := i.Keywords(); !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("Keywords() = %v", got)
	}
}

func TestKeywordsCopyIsolated(t *testing.T) {
	i := NewIndex("Test")
	i.AddKeyword("citation")

	kw := i.Keywords()
	kw[0] = "mutated"

	if got := i.Keywords()[0]; got != "citation" {
		t.Errorf("Keywords() shares backing storage: %q", got)
	}
}
