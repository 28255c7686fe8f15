package extract

import "strings"

// profanityList holds the folded forms of the words that flag a message
// for moderation. Matching is exact whole-word over the tokenized text;
// substring matching would flag legitimate words ("sik" lives inside
// "siklik"), so it is deliberately avoided.
var profanityList = map[string]bool{
	"amk":        true,
	"aq":         true,
	"mk":         true,
	"sik":        true,
	"sikerim":    true,
	"sktir":      true,
	"siktir":     true,
	"orospu":     true,
	"pic":        true,
	"yavsak":     true,
	"serefsiz":   true,
	"pezevenk":   true,
	"gavat":      true,
	"ibne":       true,
	"salak":      true,
	"gerizekali": true,
}

// HasFoulLanguage reports whether the normalized text contains a
// profanity token. Tokens are compared whole, never as substrings.
func HasFoulLanguage(text string) bool {
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	}) {
		if profanityList[tok] {
			return true
		}
	}
	return false
}
