// Package gazetteer holds the static lookup tables for Turkish provinces,
// districts, regions and freight-chat vocabulary, plus the resolver that
// maps a normalized token to a location.
//
// A Gazetteer is built once at startup and never mutated afterwards, so a
// single instance is safe to share across goroutines.
package gazetteer

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// Confidence levels. The ordering is a contract: exact province > unique
// district > ambiguous district, and a suffix-stripped variant of any of
// them ranks below its exact counterpart (callers apply SuffixPenalty).
const (
	ConfidenceProvince  = 1.0
	ConfidenceDistrict  = 0.9
	ConfidencePlate     = 0.9
	ConfidenceAmbiguous = 0.6
	SuffixPenalty       = 0.95
)

// MatchKind tags the resolver outcome.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchProvince
	MatchDistrict
)

// Match is the resolver result. Kind==MatchNone means the token is not a
// location (unknown, excluded vocabulary, or ambiguous beyond repair).
type Match struct {
	Kind       MatchKind
	Province   Province // primary province; for ambiguous districts the first candidate
	District   string   // set only for MatchDistrict
	Ambiguous  bool     // district name shared by 2+ provinces
	Candidates []string // all owning provinces when Ambiguous
	Confidence float64
}

// Suggestion is a fuzzy candidate returned by Suggest. Score orders
// candidates within one response only: the in-process matcher fills it
// with a string-similarity blend, while Meilisearch-backed results carry
// a rank-derived stand-in. Scores from different backends are not
// comparable with each other.
type Suggestion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Gazetteer is the immutable lookup structure.
type Gazetteer struct {
	provinces       map[string]Province
	provincesByCode map[int]Province
	districts       map[string][]string // district name -> owning provinces, table order
	names           []string            // all province and district names, for Suggest
}

// New builds the gazetteer from the static tables.
func New() *Gazetteer {
	g := &Gazetteer{
		provinces:       make(map[string]Province, len(provinceTable)),
		provincesByCode: make(map[int]Province, len(provinceTable)),
		districts:       make(map[string][]string),
		names:           make([]string, 0, len(provinceTable)),
	}
	for _, p := range provinceTable {
		g.provinces[p.Name] = p
		g.provincesByCode[p.PlateCode] = p
		g.names = append(g.names, p.Name)
	}
	for _, d := range districtTable {
		if _, seen := g.districts[d.Name]; !seen {
			g.names = append(g.names, d.Name)
		}
		g.districts[d.Name] = append(g.districts[d.Name], d.Province)
	}
	return g
}

// Resolve maps a normalized token to a location, in priority order:
// exclusion lists, abbreviations, exact province, exact district. Numeric
// plate codes are handled separately by ResolvePlate because they need
// context the token alone does not carry. Never fails; unknown input
// yields Kind==MatchNone.
func (g *Gazetteer) Resolve(token string) Match {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return Match{Kind: MatchNone}
	}
	if vehicleJargon[token] || commonWords[token] {
		return Match{Kind: MatchNone}
	}
	if full, ok := abbreviationTable[token]; ok {
		token = full
	}
	if p, ok := g.provinces[token]; ok {
		return Match{Kind: MatchProvince, Province: p, Confidence: ConfidenceProvince}
	}
	if owners, ok := g.districts[token]; ok {
		m := Match{
			Kind:       MatchDistrict,
			Province:   g.provinces[owners[0]],
			District:   token,
			Confidence: ConfidenceDistrict,
		}
		if len(owners) > 1 {
			m.Ambiguous = true
			m.Candidates = append([]string(nil), owners...)
			m.Confidence = ConfidenceAmbiguous
		}
		return m
	}
	return Match{Kind: MatchNone}
}

// ResolvePlate maps a numeric plate code 1..81 to its province. The caller
// is responsible for the surrounding-text context check that keeps times,
// measurements and ranges from being read as provinces.
func (g *Gazetteer) ResolvePlate(code int) (Province, bool) {
	p, ok := g.provincesByCode[code]
	return p, ok
}

// Province returns the province record for a canonical name.
func (g *Gazetteer) Province(name string) (Province, bool) {
	p, ok := g.provinces[name]
	return p, ok
}

// Region returns the province list of a canonical region key.
func (g *Gazetteer) Region(key string) ([]string, bool) {
	ps, ok := regionTable[key]
	return ps, ok
}

// RegionAlias resolves an alternate region spelling to its canonical key.
func (g *Gazetteer) RegionAlias(token string) (string, bool) {
	key, ok := regionAliases[token]
	return key, ok
}

// RegionAliases returns the full alias table (alias -> canonical key).
// Used by the aggregator to build its whole-text region scan.
func (g *Gazetteer) RegionAliases() map[string]string {
	return regionAliases
}

// InternationalDestinations returns the cross-border destination vocabulary.
func (g *Gazetteer) InternationalDestinations() []string {
	return internationalDestinations
}

// ProvinceNames returns every canonical province name, table order.
func (g *Gazetteer) ProvinceNames() []string {
	names := make([]string, 0, len(provinceTable))
	for _, p := range provinceTable {
		names = append(names, p.Name)
	}
	return names
}

// DistrictNames returns every distinct district name, table order.
func (g *Gazetteer) DistrictNames() []string {
	names := make([]string, 0, len(g.districts))
	seen := make(map[string]bool, len(g.districts))
	for _, d := range districtTable {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	return names
}

// DistrictOwners returns the provinces that share a district name.
func (g *Gazetteer) DistrictOwners(name string) ([]string, bool) {
	owners, ok := g.districts[name]
	return owners, ok
}

// ProvinceCount reports the number of provinces (always 81).
func (g *Gazetteer) ProvinceCount() int { return len(g.provinces) }

// DistrictCount reports the number of distinct district names.
func (g *Gazetteer) DistrictCount() int { return len(g.districts) }

// Suggest returns up to max fuzzy location-name candidates for a token that
// failed strict resolution, ranked by the better of Jaro-Winkler and
// normalized Levenshtein similarity. Suggestions below 0.75 are dropped.
// This is a service-layer convenience; Resolve itself stays strict.
func (g *Gazetteer) Suggest(token string, max int) []Suggestion {
	token = strings.TrimSpace(token)
	if len(token) < 3 || max <= 0 {
		return nil
	}
	const minScore = 0.75
	out := make([]Suggestion, 0, max)
	for _, name := range g.names {
		jw := smetrics.JaroWinkler(token, name, 0.7, 4)
		dist := levenshtein.ComputeDistance(token, name)
		maxLen := math.Max(float64(len(token)), float64(len(name)))
		lev := 1.0 - float64(dist)/maxLen
		score := math.Max(jw, lev)
		if score >= minScore && name != token {
			out = append(out, Suggestion{Name: name, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > max {
		out = out[:max]
	}
	return out
}
