// Package slug turns free-form titles into filesystem-safe directory names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that carry no combining mark under NFD and need an explicit
// ASCII spelling.
var transliterations = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'þ': "th",
	'ı': "i",
}

// Slugify converts title into a lowercase slug made of [a-z0-9] runs
// separated by single hyphens. Diacritics are stripped, any other
// non-alphanumeric run becomes a hyphen, and leading or trailing hyphens
// are dropped. A title with nothing sluggable yields "".
func Slugify(title string) string {
	folded := foldDiacritics(strings.ToLower(title))

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		var word string
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			word = string(r)
		default:
			word = transliterations[r]
		}
		if word == "" {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteString(word)
	}
	return b.String()
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
