package extract

import (
	"regexp"

	"github.com/freight-parser/app/models"
)

// urgencyRule weights one indicator phrase. The final score is the
// maximum weight among all matched phrases, not a sum, so piling on
// synonyms does not inflate urgency.
type urgencyRule struct {
	pattern *regexp.Regexp
	phrase  string
	weight  float64
}

var urgencyRules = []urgencyRule{
	{regexp.MustCompile(`\bcok acil\b`), "cok acil", 1.0},
	{regexp.MustCompile(`\bacil\w*`), "acil", 0.9},
	{regexp.MustCompile(`\bhemen\b`), "hemen", 0.9},
	{regexp.MustCompile(`\bsimdi\b|\bsuan\b`), "simdi", 0.8},
	{regexp.MustCompile(`\bbugun\b`), "bugun", 0.7},
	{regexp.MustCompile(`\bbu aksam\b|\baksama\b`), "bu aksam", 0.6},
	{regexp.MustCompile(`\bsabaha\b|\bsabah erken\b`), "sabaha", 0.6},
	{regexp.MustCompile(`\byarin\b`), "yarin", 0.4},
	{regexp.MustCompile(`\bbekliyor\w*|\bhazir\b`), "hazir bekliyor", 0.5},
}

// UrgencyScore scans the normalized text for urgency cues and returns the
// continuous score plus the matched indicator phrases. Zero score with no
// indicators means no cue was found.
func UrgencyScore(text string) models.Urgency {
	var u models.Urgency
	for _, r := range urgencyRules {
		if r.pattern.MatchString(text) {
			u.Indicators = append(u.Indicators, r.phrase)
			if r.weight > u.Score {
				u.Score = r.weight
			}
		}
	}
	return u
}
