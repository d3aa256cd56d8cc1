package lang

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"part1 code", "en", "eng", true},
		{"part3 code", "eng", "eng", true},
		{"bibliographic code", "GER", "deu", true},
		{"lowercase name", "french", "fra", true},
		{"capitalized name", "Spanish", "spa", true},
		{"unknown input", "not a language", "", false},
		{"empty input", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
