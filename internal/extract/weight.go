package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/freight-parser/app/models"
)

// reWeight captures a Turkish-locale number followed by a weight unit.
// Dot is the thousands separator, comma the decimal mark: "15.000 kg" is
// fifteen thousand kilograms, "3,5 ton" is three and a half tons.
var reWeight = regexp.MustCompile(`\b(\d{1,3}(?:\.\d{3})+|\d+(?:,\d+)?)\s*(tonluk|ton|kg|kilo)\b`)

// Weight extracts tonnage from normalized text. Kilogram values at or
// above 1000 are converted to tons; smaller kilogram values stay in kg.
// Returns nil when no weight phrase is present or the number is garbage.
func Weight(text string) *models.Weight {
	m := reWeight.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	value, err := parseTurkishNumber(m[1])
	if err != nil || value <= 0 {
		return nil
	}
	unit := m[2]
	switch unit {
	case "kg", "kilo":
		if value >= 1000 {
			return &models.Weight{Value: value / 1000, Unit: "ton"}
		}
		return &models.Weight{Value: value, Unit: "kg"}
	default:
		return &models.Weight{Value: value, Unit: "ton"}
	}
}

// parseTurkishNumber handles "15.000" (thousands dot) and "3,5" (decimal
// comma). A dot is only ever a thousands separator in this domain.
func parseTurkishNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
