package cff

import "testing"

func TestUpdateCFFVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"older version upgrades", "1.0.3", MinValidatableVersion},
		{"minimum passes through", "1.2.0", "1.2.0"},
		{"newer passes through", "1.3.0", "1.3.0"},
		{"empty passes through", "", ""},
		{"unparsable passes through", "one point two", "one point two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := updateCFFVersion(tt.version); got != tt.want {
				t.Errorf("updateCFFVersion(%q) = %q, want %q", tt.version, got, tt.want)
			}
		})
	}
}
