package cff

import (
	"reflect"
	"testing"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	f := &stubFormatter{label: "BibTeX", output: "x", ok: true}
	reg.Register(f)

	for _, label := range []string{"BibTeX", "bibtex", "BIBTEX"} {
		if got := reg.FormatterFor(label); got != Formatter(f) {
			t.Errorf("FormatterFor(%q) = %v, want registered formatter", label, got)
		}
	}
	if got := reg.FormatterFor("apalike"); got != nil {
		t.Errorf("FormatterFor(unregistered) = %v, want nil", got)
	}
}

func TestRegistryReplaceOnCollision(t *testing.T) {
	reg := NewRegistry()
	first := &stubFormatter{label: "BibTeX", output: "first", ok: true}
	second := &stubFormatter{label: "bibtex", output: "second", ok: true}

	reg.Register(first)
	reg.Register(second)

	got, _ := reg.FormatterFor("BibTeX").Format(nil, CitationOptions{})
	if got != "second" {
		t.Errorf("lookup after collision = %q, want %q", got, "second")
	}
	if labels := reg.Formatters(); len(labels) != 1 {
		t.Errorf("Formatters() = %v, want one label", labels)
	}
}

func TestRegistryIgnoresNilAndUnlabelled(t *testing.T) {
	reg := NewRegistry()
	reg.Register(nil)
	reg.Register(&stubFormatter{label: ""})

	if labels := reg.Formatters(); len(labels) != 0 {
		t.Errorf("Formatters() = %v, want empty", labels)
	}
}

func TestRegistryFormattersSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubFormatter{label: "Zed"})
	reg.Register(&stubFormatter{label: "Alpha"})

	// Labels come back in their registered casing, not the folded map key.
	if got := reg.Formatters(); !reflect.DeepEqual(got, []string{"Alpha", "Zed"}) {
		t.Errorf("Formatters() = %v", got)
	}
}
