// Package normalizer converts raw Turkish chat text into the canonical
// ASCII-folded lowercase form every other engine package operates on.
//
// Normalize is a pure string transform: no I/O, no state, never fails, and
// running it on its own output is a no-op.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// turkishLower applies Turkish casing rules (İ→i, I→ı) before folding.
// A plain ToLower would turn "I" into "i" and lose the dotless-ı path.
var turkishLower = cases.Lower(language.Turkish)

// foldMap folds Turkish letters to their ASCII counterparts. Other Latin
// diacritics fall back to unidecode.
var foldMap = map[rune]string{
	'ç': "c", 'ğ': "g", 'ı': "i", 'ö': "o", 'ş': "s", 'ü': "u",
	'â': "a", 'î': "i", 'û': "u",
}

// arrowForms are the arrow spellings users type between origin and
// destination. All collapse to a single ">" so the route extractor deals
// with one canonical separator.
var arrowForms = []string{
	"➡️", "➡", "→", "⇒", "⟶", "👉", "»", "->", "=>",
}

var (
	reApostrophe = regexp.MustCompile("[’`´‘]")

	// reAposSuffix reattaches a case suffix split off by an apostrophe,
	// with or without surrounding spaces: "istanbul 'dan" -> "istanbuldan".
	reAposSuffix = regexp.MustCompile(`\s*'\s*(ndan|nden|dan|den|tan|ten|ya|ye|na|ne|da|de|ta|te|a|e)\b`)

	// reSpaceSuffix reattaches a bare suffix word that users space off the
	// stem: "istanbul dan" -> "istanbuldan". Restricted to suffix forms
	// that do not collide with standalone words ("ya da" is glued first).
	reSpaceSuffix = regexp.MustCompile(`\b([a-z]{3,}) (ndan|nden|dan|den|tan|ten|ya|ye)\b`)

	// Newlines survive normalization: multi-line fan-out messages are
	// parsed per line further down the pipeline.
	reSpaces   = regexp.MustCompile(`[^\S\n]+`)
	reNewlines = regexp.MustCompile(`\s*\n\s*`)
)

// compoundGlue rewrites multiword phrases into single tokens so later
// per-token passes see them as one unit. "ya da" must be glued before the
// spaced-suffix join or "istanbul ya da ankara" would read as a dative.
var compoundGlue = [][2]string{
	{"ya da", "yada"},
	{"panel van", "panelvan"},
	{"ne zaman", "nezaman"},
	{"ne kadar", "nekadar"},
	{"sal kasa", "salkasa"},
}

// Normalize converts raw message text to canonical form: Turkish-aware
// lowercasing, ASCII folding, arrow canonicalization, apostrophe
// unification, suffix re-join, compound gluing and whitespace collapse.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := turkishLower.String(raw)

	for _, arrow := range arrowForms {
		s = strings.ReplaceAll(s, arrow, " > ")
	}
	s = strings.ReplaceAll(s, "️", "")

	s = fold(s)
	s = reApostrophe.ReplaceAllString(s, "'")

	for _, g := range compoundGlue {
		s = strings.ReplaceAll(s, g[0], g[1])
	}

	s = reAposSuffix.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "'", "")
	s = reSpaceSuffix.ReplaceAllString(s, "$1$2")

	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// fold maps every rune to ASCII. Turkish letters use the explicit table,
// other Latin diacritics go through unidecode, and anything unidecode
// cannot express (emoji, symbols) becomes a space.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 128:
			b.WriteRune(r)
		default:
			if m, ok := foldMap[r]; ok {
				b.WriteString(m)
				continue
			}
			u := unidecode.Unidecode(string(r))
			if isPlainASCII(u) && u != "" {
				b.WriteString(strings.ToLower(u))
			} else {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == ' ' || c == '\'' || c == '-'
		if !ok {
			return false
		}
	}
	return true
}
