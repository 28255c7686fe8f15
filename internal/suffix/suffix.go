// Package suffix performs Turkish case-suffix analysis on single tokens.
//
// Only the two directional cases matter for freight chat: the ablative
// ("from": -dan/-den/-tan/-ten/-ndan/-nden) and the dative ("to":
// -a/-e/-ya/-ye/-na/-ne). Within each class the longest suffix is tried
// first so "-ndan" is never read as stem+"-dan"+n.
//
// Stripping is mechanical: "sivas" happily loses "-as" if asked. The
// resolver contract therefore is to try the un-stripped token first and
// fall back to the stem only when direct resolution fails. That ordering
// lives in the callers and is load-bearing.
package suffix

import "strings"

// ablative suffixes, longest first. Checked before dative: when both could
// match, "from" wins.
var ablative = []string{"ndan", "nden", "dan", "den", "tan", "ten"}

// dative suffixes, longest first.
var dative = []string{"na", "ne", "ya", "ye", "a", "e"}

// minStem is the shortest stem worth keeping. Anything shorter is almost
// never a location ("van" is the floor at 3).
const minStem = 3

// Result of analyzing one token.
type Result struct {
	Stem          string
	IsOrigin      bool // carried an ablative suffix
	IsDestination bool // carried a dative suffix
}

// Strip analyzes a single token. Tokens with no recognized suffix come
// back with both direction flags false and Stem equal to the lowercased
// token.
func Strip(token string) Result {
	if cands := Candidates(token); len(cands) > 0 {
		return cands[0]
	}
	return Result{Stem: strings.ToLower(strings.TrimSpace(token))}
}

// Candidates returns every admissible suffix split of the token: ablative
// before dative, longest suffix first within each class. Resolvers walk
// this list so that "mersine" can land on "mersin"+"-e" after the longer
// "-ne" split fails to resolve. Empty when no suffix matches.
func Candidates(token string) []Result {
	token = strings.ToLower(strings.TrimSpace(token))
	var out []Result
	for _, suf := range ablative {
		if stem, ok := cut(token, suf); ok {
			out = append(out, Result{Stem: stem, IsOrigin: true})
		}
	}
	for _, suf := range dative {
		if stem, ok := cut(token, suf); ok {
			out = append(out, Result{Stem: stem, IsDestination: true})
		}
	}
	return out
}

func cut(token, suf string) (string, bool) {
	if !strings.HasSuffix(token, suf) {
		return "", false
	}
	stem := token[:len(token)-len(suf)]
	if len(stem) < minStem {
		return "", false
	}
	return stem, true
}
