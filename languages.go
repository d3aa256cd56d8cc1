package cff

import "github.com/citekit/cff/internal/lang"

// languageLookup resolves a free-form language name or code to an ISO
// 639-3 code. It is a package-level collaborator so hosts can swap in
// their own resolver.
var languageLookup = lang.Resolve

// SetLanguageLookup replaces the language lookup collaborator used by
// Reference.AddLanguage. The function receives a free-form language name
// or code and reports its ISO 639-3 code, or false if it cannot resolve
// the input. Passing nil restores the default resolver.
func SetLanguageLookup(fn func(string) (string, bool)) {
	if fn == nil {
		languageLookup = lang.Resolve
		return
	}
	languageLookup = fn
}
