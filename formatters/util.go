package formatters

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// translitSpecial maps Latin letters with no ASCII decomposition to their
// conventional ASCII spellings.
var translitSpecial = map[rune]string{
	'Æ': "AE", 'æ': "ae",
	'Œ': "OE", 'œ': "oe",
	'ß': "ss", 'ẞ': "SS",
	'Ø': "O", 'ø': "o",
	'Đ': "D", 'đ': "d",
	'Ð': "D", 'ð': "d",
	'Þ': "Th", 'þ': "th",
	'Ħ': "H", 'ħ': "h",
	'Ł': "L", 'ł': "l",
	'Ŋ': "NG", 'ŋ': "ng",
	'Ŧ': "T", 'ŧ': "t",
	'Ĳ': "IJ", 'ĳ': "ij",
	'ı': "i", 'ĸ': "k", 'ſ': "s",
	'×': "x",
}

// transliterate maps accented Latin letters to their plain ASCII
// equivalents. ASCII input passes through untouched; anything that cannot
// be reduced to ASCII is replaced by fallback (empty by default, so
// unmappable characters simply disappear).
func transliterate(s, fallback string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		if mapped, ok := translitSpecial[r]; ok {
			b.WriteString(mapped)
			continue
		}
		b.WriteString(stripMarks(r, fallback))
	}
	return b.String()
}

// stripMarks decomposes a rune and drops its combining marks. If nothing
// ASCII remains, fallback is used instead.
func stripMarks(r rune, fallback string) string {
	var kept []rune
	for _, d := range norm.NFD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		kept = append(kept, d)
	}
	if len(kept) == 0 {
		return fallback
	}
	for _, k := range kept {
		if k > unicode.MaxASCII {
			return fallback
		}
	}
	return string(kept)
}

var nonParamChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// parameterize reduces a string to a safe identifier: accented letters are
// transliterated, runs of anything outside [a-zA-Z0-9-_] collapse to the
// separator, and leading/trailing separators are trimmed.
func parameterize(s, separator string) string {
	out := nonParamChars.ReplaceAllString(transliterate(s, ""), separator)
	if separator == "" {
		return out
	}
	sep := regexp.QuoteMeta(separator)
	out = regexp.MustCompile(sep+`{2,}`).ReplaceAllString(out, separator)
	out = regexp.MustCompile(`^`+sep+`|`+sep+`$`).ReplaceAllString(out, "")
	return out
}
