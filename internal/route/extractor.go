// Package route finds explicit origin→destination notation in a whole
// normalized message, independent of per-token scanning.
//
// The extractor runs a fixed, ordered regex cascade: dash ("ankara -
// izmir"), chevron/arrow ("ankara > izmir" — all arrow spellings are
// canonicalized to ">" by the normalizer), and suffix pair ("ankaradan
// izmire"). The order is part of the contract: earlier patterns claim
// overlapping text, and duplicate pairs found by later patterns are
// suppressed.
package route

import (
	"regexp"
	"strings"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/extract"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/suffix"
)

var (
	// dash-separated pair: "istanbul - ankara", "istanbul-ankara"
	reDash = regexp.MustCompile(`\b([a-z]{2,})\s*-\s*([a-z]{2,})\b`)

	// chevron/arrow pair: "istanbul > ankara", "istanbul >> ankara"
	reChevron = regexp.MustCompile(`\b([a-z]{2,})\s*>{1,2}\s*([a-z]{2,})\b`)

	// ablative/dative pair in one breath: "istanbuldan ankaraya",
	// "istanbul dan ankara ya" (the normalizer re-joins spaced suffixes).
	// Whole words are captured; the suffix split happens at resolution.
	rePair = regexp.MustCompile(`\b([a-z]{3,}(?:ndan|nden|dan|den|tan|ten))\s+([a-z]{3,}(?:na|ne|ya|ye|a|e))\b`)
)

// cascade is evaluated top to bottom. Reordering it changes which pattern
// claims overlapping text, so treat the order as load-bearing.
var cascade = []*regexp.Regexp{reDash, reChevron, rePair}

// trailerWindow is how far past a match the extractor looks for a
// vehicle/body annotation ("istanbul - ankara tenteli tir").
const trailerWindow = 40

// Extractor resolves route-notation matches against the gazetteer.
type Extractor struct {
	gaz *gazetteer.Gazetteer
}

// New creates an Extractor backed by the shared gazetteer.
func New(g *gazetteer.Gazetteer) *Extractor {
	return &Extractor{gaz: g}
}

// Extract returns every distinct route the cascade finds in the text.
// A match becomes a route only when both spans resolve to different
// provinces; everything else is silently skipped.
func (e *Extractor) Extract(text string) []models.ExtractedRoute {
	var routes []models.ExtractedRoute
	seen := make(map[string]bool)

	for _, re := range cascade {
		matches := re.FindAllStringSubmatchIndex(text, -1)
		for _, m := range matches {
			left := text[m[2]:m[3]]
			right := text[m[4]:m[5]]

			origin, ok := e.resolveSpan(left)
			if !ok {
				continue
			}
			dest, ok := e.resolveSpan(right)
			if !ok || origin.Name == dest.Name {
				continue
			}

			key := origin.Name + "|" + dest.Name
			if seen[key] {
				continue
			}
			seen[key] = true

			r := models.ExtractedRoute{
				Origin:          origin.Name,
				Destination:     dest.Name,
				OriginCode:      origin.PlateCode,
				DestinationCode: dest.PlateCode,
			}
			e.annotate(&r, text, m[1])
			routes = append(routes, r)
		}
	}
	return routes
}

// resolveSpan maps one captured span to a province. The un-stripped form
// is tried first so province names that merely end like a suffix
// ("sivas") resolve directly; the stripped stem is the fallback.
func (e *Extractor) resolveSpan(span string) (gazetteer.Province, bool) {
	if m := e.gaz.Resolve(span); m.Kind != gazetteer.MatchNone {
		return m.Province, true
	}
	for _, cand := range suffix.Candidates(span) {
		if m := e.gaz.Resolve(cand.Stem); m.Kind != gazetteer.MatchNone {
			return m.Province, true
		}
	}
	return gazetteer.Province{}, false
}

// annotate attaches a vehicle/body keyword that trails the match on the
// same line, if any.
func (e *Extractor) annotate(r *models.ExtractedRoute, text string, end int) {
	tail := text[end:]
	if nl := strings.IndexByte(tail, '\n'); nl >= 0 {
		tail = tail[:nl]
	}
	if len(tail) > trailerWindow {
		tail = tail[:trailerWindow]
	}
	r.Vehicle = extract.VehicleType(tail)
	r.BodyType = extract.BodyType(tail)
}
