// Package lang resolves free-form language names and codes to ISO 639-3.
package lang

import (
	"strings"

	iso6393 "github.com/barbashov/iso639-3"
)

// Resolve returns the ISO 639-3 code for a language name or code, so "GER"
// resolves to "deu", "french" to "fra" and "en" to "eng". It reports false
// when the input cannot be resolved.
func Resolve(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	if l := iso6393.FromAnyCode(strings.ToLower(input)); l != nil {
		return l.Part3, true
	}

	// Names in the registry are capitalized, e.g. "French".
	if l := iso6393.FromName(capitalize(input)); l != nil {
		return l.Part3, true
	}
	if l := iso6393.FromName(input); l != nil {
		return l.Part3, true
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
