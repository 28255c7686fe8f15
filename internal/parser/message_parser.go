// Package parser turns one normalized chat message into the structured
// search parameters the conversational layer consumes. It merges the
// whole-message route cascade with per-token suffix scanning, then runs
// the auxiliary extractors.
//
// The parser is a pure function of (message, gazetteer): no I/O, no
// mutation of shared state, safe for concurrent use.
package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/internal/extract"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/normalizer"
	"github.com/freight-parser/internal/route"
	"github.com/freight-parser/internal/suffix"
)

var (
	reToken = regexp.MustCompile(`[a-z]+|[0-9]+`)

	// disjunction: "istanbul veya kocaeli", "izmir yada manisa"
	// ("ya da" is glued to "yada" by the normalizer).
	reDisjunction = regexp.MustCompile(`\b([a-z]{3,}) (?:veya|yada) ([a-z]{3,})\b`)

	// intra-city: "istanbul ici", "ankara icinde", "sehir ici"
	reIntraCity = regexp.MustCompile(`\b([a-z]{2,}) ici(?:nde)?\b`)

	// Bosphorus side filter, any case-suffixed form of "yakasi".
	reIstanbulSide = regexp.MustCompile(`\b(avrupa|anadolu) yakas[a-z]*`)

	// unit words that disqualify a neighbouring number from being a plate
	// code.
	plateUnitWords = map[string]bool{
		"ton": true, "tonluk": true, "kg": true, "kilo": true,
		"km": true, "tl": true, "lira": true, "euro": true, "usd": true,
		"saat": true, "metre": true, "adet": true, "palet": true,
		"kusur": true, "bucuk": true,
	}
)

// regionScan is one precompiled region-alias matcher.
type regionScan struct {
	key string
	re  *regexp.Regexp
}

// Parser aggregates everything the engine extracts from one message.
type Parser struct {
	gaz     *gazetteer.Gazetteer
	routes  *route.Extractor
	regions []regionScan // longest alias first
}

// New builds a Parser on a shared gazetteer.
func New(g *gazetteer.Gazetteer) *Parser {
	aliasMap := g.RegionAliases()
	aliases := make([]string, 0, len(aliasMap))
	for a := range aliasMap {
		aliases = append(aliases, a)
	}
	sort.Slice(aliases, func(i, j int) bool { return len(aliases[i]) > len(aliases[j]) })

	regions := make([]regionScan, 0, len(aliases))
	for _, a := range aliases {
		regions = append(regions, regionScan{
			key: aliasMap[a],
			re:  regexp.MustCompile(`\b` + regexp.QuoteMeta(a) + `([a-z]*)`),
		})
	}
	return &Parser{
		gaz:     g,
		routes:  route.New(g),
		regions: regions,
	}
}

// token is one scanned location candidate.
type token struct {
	text       string
	start, end int
	match      gazetteer.Match
	isOrigin   bool
	isDest     bool
	stripped   bool
}

// Parse runs the full pipeline on a raw message. Malformed or nonsensical
// input yields a partial or empty result, never an error.
func (p *Parser) Parse(raw string) *models.ParseResult {
	text := normalizer.Normalize(raw)
	res := &models.ParseResult{
		Raw:        raw,
		Normalized: text,
		ParsedAt:   time.Now(),
	}
	if text == "" {
		return res
	}

	loc := &res.Locations

	// 1. Whole-message route cascade. Route matches are authoritative
	// over loose token scanning.
	loc.Routes = p.routes.Extract(text)
	p.applyRoutes(loc)

	// 2. Per-token scan: strip suffixes, resolve, classify.
	tokens := p.scanTokens(text)

	// 3. Intra-city marker short-circuits origin/destination assignment.
	p.detectIntraCity(text, loc)

	// 4. Explicit suffix-tagged evidence outranks positional inference.
	consumed := p.applyTagged(tokens, loc)

	// 5. Disjunction groups ("X veya Y").
	p.applyDisjunction(text, tokens, loc, consumed)

	// 6. Region mentions with direction cues.
	p.detectRegions(text, loc)

	// 7. Remaining untagged tokens, positional heuristics.
	p.applyUntagged(tokens, loc, consumed)

	// 8. Same-province flag.
	if loc.Origin != nil && loc.Destination != nil &&
		loc.Origin.ProvinceName == loc.Destination.ProvinceName {
		loc.SameProvince = true
	}

	// 9. Independent flags.
	p.detectInternational(text, loc)
	p.detectIstanbulSide(text, loc)

	// 10. Auxiliary extractors.
	res.CargoType = extract.CargoType(text)
	res.VehicleType = extract.VehicleType(text)
	res.BodyType = extract.BodyType(text)
	res.Weight = extract.Weight(text)
	res.LoadType = extract.LoadType(text)
	res.Urgency = extract.UrgencyScore(text)
	res.FoulLanguage = extract.HasFoulLanguage(text)

	return res
}

// applyRoutes folds the route list into the aggregate slots. A single
// shared origin with several destinations is the classic fan-out message.
func (p *Parser) applyRoutes(loc *models.ParsedLocations) {
	if len(loc.Routes) == 0 {
		return
	}
	first := loc.Routes[0]
	loc.Origin = p.provinceLocation(first.Origin, first.Origin)

	origins := map[string]bool{}
	for _, r := range loc.Routes {
		origins[r.Origin] = true
	}
	if len(origins) == 1 && len(loc.Routes) > 1 {
		for _, r := range loc.Routes {
			p.addDestination(loc, p.provinceLocation(r.Destination, r.Destination))
		}
		return
	}
	loc.Destination = p.provinceLocation(first.Destination, first.Destination)
}

// scanTokens resolves every token in the message. The un-stripped form is
// always tried first: "sivas" ends like an ablative remnant but is a
// province and must never be stripped.
func (p *Parser) scanTokens(text string) []token {
	idx := reToken.FindAllStringIndex(text, -1)
	tokens := make([]token, 0, len(idx))
	for _, pos := range idx {
		word := text[pos[0]:pos[1]]
		t := token{text: word, start: pos[0], end: pos[1]}

		if word[0] >= '0' && word[0] <= '9' {
			if m, ok := p.resolvePlate(text, word, pos[0], pos[1]); ok {
				t.match = m
				tokens = append(tokens, t)
			}
			continue
		}

		if m := p.gaz.Resolve(word); m.Kind != gazetteer.MatchNone {
			t.match = m
			tokens = append(tokens, t)
			continue
		}
		for _, cand := range suffix.Candidates(word) {
			if m := p.gaz.Resolve(cand.Stem); m.Kind != gazetteer.MatchNone {
				t.match = m
				t.isOrigin = cand.IsOrigin
				t.isDest = cand.IsDestination
				t.stripped = true
				tokens = append(tokens, t)
				break
			}
		}
	}
	return tokens
}

// resolvePlate accepts a bare number as a plate code only when the
// surrounding characters rule out a time, measurement, price or range.
func (p *Parser) resolvePlate(text, word string, start, end int) (gazetteer.Match, bool) {
	code, err := strconv.Atoi(word)
	if err != nil || code < 1 || code > 81 {
		return gazetteer.Match{}, false
	}
	if start > 0 {
		prev := text[start-1]
		if prev == ':' || prev == '.' || prev == ',' || prev == '-' || prev == '/' {
			return gazetteer.Match{}, false
		}
	}
	if end < len(text) {
		next := text[end]
		if next == ':' || next == '.' || next == ',' || next == '-' || next == '/' {
			return gazetteer.Match{}, false
		}
	}
	if w := nextWord(text, end); plateUnitWords[w] {
		return gazetteer.Match{}, false
	}
	if w := prevWord(text, start); w == "saat" || plateUnitWords[w] {
		return gazetteer.Match{}, false
	}
	prov, ok := p.gaz.ResolvePlate(code)
	if !ok {
		return gazetteer.Match{}, false
	}
	return gazetteer.Match{
		Kind:       gazetteer.MatchProvince,
		Province:   prov,
		Confidence: gazetteer.ConfidencePlate,
	}, true
}

// detectIntraCity handles "X ici": origin and destination collapse to the
// same province and the intra-city flag is raised.
func (p *Parser) detectIntraCity(text string, loc *models.ParsedLocations) {
	m := reIntraCity.FindStringSubmatch(text)
	if m == nil {
		return
	}
	word := m[1]
	if word == "sehir" || word == "il" {
		loc.SameProvince = true
		return
	}
	if g := p.gaz.Resolve(word); g.Kind == gazetteer.MatchProvince {
		l := p.matchLocation(g, word, false)
		loc.Origin = l
		loc.Destination = cloneLocation(l)
		loc.SameProvince = true
	}
}

// applyTagged assigns suffix-tagged tokens to the origin/destination
// slots. Returns the set of province names already consumed so later
// positional steps do not reuse them.
func (p *Parser) applyTagged(tokens []token, loc *models.ParsedLocations) map[string]bool {
	consumed := make(map[string]bool)
	for _, r := range loc.Routes {
		consumed[r.Origin] = true
		consumed[r.Destination] = true
	}

	var destTagged []*models.ParsedLocation
	for i := range tokens {
		t := &tokens[i]
		name := t.match.Province.Name
		switch {
		case t.isOrigin:
			l := p.tokenLocation(t)
			if loc.Origin == nil {
				loc.Origin = l
			} else if loc.Origin.ProvinceName == name {
				// A route match carries only the province; the token may
				// know the district.
				if l.IsDistrict && !loc.Origin.IsDistrict {
					loc.Origin = l
				}
			} else {
				p.addOrigin(loc, l)
			}
			consumed[name] = true
		case t.isDest:
			destTagged = append(destTagged, p.tokenLocation(t))
			consumed[name] = true
		}
	}

	for _, d := range destTagged {
		if loc.Destination == nil {
			loc.Destination = d
		} else if loc.Destination.ProvinceName == d.ProvinceName {
			if d.IsDistrict && !loc.Destination.IsDistrict {
				loc.Destination = d
			}
		} else {
			p.addDestination(loc, d)
		}
	}
	// Two or more explicit dative targets are a destination set, not a
	// single slot.
	if len(destTagged) >= 2 {
		for _, d := range destTagged {
			p.addDestination(loc, d)
		}
	}
	return consumed
}

// applyDisjunction handles "X veya Y" groups. Direction comes from
// suffixes inside the group when present, otherwise from which slot is
// already established; destination is the default.
func (p *Parser) applyDisjunction(text string, tokens []token, loc *models.ParsedLocations, consumed map[string]bool) {
	for _, m := range reDisjunction.FindAllStringSubmatch(text, -1) {
		left, leftDir := p.resolveLoose(m[1])
		right, rightDir := p.resolveLoose(m[2])
		if left == nil || right == nil {
			continue
		}

		asOrigin := leftDir.IsOrigin || rightDir.IsOrigin
		asDest := leftDir.IsDestination || rightDir.IsDestination
		if !asOrigin && !asDest {
			// No suffix evidence: an established origin pushes the group
			// to the destination side, an established destination to the
			// origin side. Destination otherwise.
			if loc.Origin != nil && loc.Destination == nil {
				asDest = true
			} else if loc.Destination != nil && loc.Origin == nil {
				asOrigin = true
			} else {
				asDest = true
			}
		}

		if asOrigin && !asDest {
			p.addOrigin(loc, left)
			p.addOrigin(loc, right)
		} else {
			p.addDestination(loc, left)
			p.addDestination(loc, right)
		}
		consumed[left.ProvinceName] = true
		consumed[right.ProvinceName] = true
	}
}

// detectRegions scans for region names and aliases, optionally followed
// by "bolgesi", with case-suffix tolerance. Direction falls back to
// destination when no suffix cue is present — a policy default, not a
// grammatical fact.
func (p *Parser) detectRegions(text string, loc *models.ParsedLocations) {
	for _, scan := range p.regions {
		m := scan.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		trailing := m[1]
		key := scan.key

		switch {
		case strings.HasPrefix(trailing, "den"), strings.HasPrefix(trailing, "dan"),
			strings.HasPrefix(trailing, "nden"), strings.HasPrefix(trailing, "ndan"):
			if loc.OriginRegion == "" {
				loc.OriginRegion = key
			}
		case trailing == "", trailing == "si", trailing == "ye", trailing == "ya",
			trailing == "ne", trailing == "na", trailing == "e", trailing == "a":
			if loc.DestinationRegion == "" {
				loc.DestinationRegion = key
			}
		default:
			// Trailing letters that are not a case suffix mean this was
			// part of another word ("egemen"), not a region mention.
			continue
		}
	}
}

// applyUntagged distributes the suffix-less locations. Explicit evidence
// processed earlier always wins; these are positional heuristics only.
func (p *Parser) applyUntagged(tokens []token, loc *models.ParsedLocations, consumed map[string]bool) {
	var untagged []*models.ParsedLocation
	seen := map[string]bool{}
	for i := range tokens {
		t := &tokens[i]
		if t.isOrigin || t.isDest {
			continue
		}
		name := t.match.Province.Name
		if consumed[name] || seen[name] {
			continue
		}
		seen[name] = true
		untagged = append(untagged, p.tokenLocation(t))
	}
	if len(untagged) == 0 {
		return
	}

	switch {
	case loc.Origin != nil && len(untagged) >= 2:
		// Fan-out: one known origin, a list of targets.
		for _, u := range untagged {
			if u.ProvinceName == loc.Origin.ProvinceName {
				continue
			}
			p.addDestination(loc, u)
		}
	case loc.Origin == nil && loc.Destination == nil && len(untagged) >= 3:
		// Bare province list: first is the origin, the rest are targets.
		loc.Origin = untagged[0]
		for _, u := range untagged[1:] {
			p.addDestination(loc, u)
		}
	default:
		for _, u := range untagged {
			if loc.Origin == nil {
				loc.Origin = u
			} else if loc.Destination == nil && u.ProvinceName != loc.Origin.ProvinceName {
				loc.Destination = u
			}
		}
	}
}

// detectInternational flags cross-border destinations. "avrupa" followed
// by "yakas..." is the Istanbul side filter, not a country.
func (p *Parser) detectInternational(text string, loc *models.ParsedLocations) {
	for _, term := range p.gaz.InternationalDestinations() {
		i := strings.Index(text, term)
		if i < 0 {
			continue
		}
		if i > 0 && isWordByte(text[i-1]) {
			continue
		}
		rest := text[i+len(term):]
		if term == "avrupa" && strings.HasPrefix(strings.TrimLeft(rest, " "), "yakas") {
			continue
		}
		loc.International = true
		if loc.InternationalDest == "" {
			loc.InternationalDest = term
		}
	}
}

func (p *Parser) detectIstanbulSide(text string, loc *models.ParsedLocations) {
	m := reIstanbulSide.FindStringSubmatch(text)
	if m == nil {
		return
	}
	if m[1] == "avrupa" {
		loc.IstanbulSide = models.SideEuropean
	} else {
		loc.IstanbulSide = models.SideAsian
	}
}

// resolveLoose resolves a word the way the route extractor does: raw
// first, then each suffix split. Returns the location and the direction
// evidence the winning split carried.
func (p *Parser) resolveLoose(word string) (*models.ParsedLocation, suffix.Result) {
	if m := p.gaz.Resolve(word); m.Kind != gazetteer.MatchNone {
		return p.matchLocation(m, word, false), suffix.Result{Stem: word}
	}
	for _, cand := range suffix.Candidates(word) {
		if m := p.gaz.Resolve(cand.Stem); m.Kind != gazetteer.MatchNone {
			return p.matchLocation(m, word, true), cand
		}
	}
	return nil, suffix.Result{}
}

func (p *Parser) tokenLocation(t *token) *models.ParsedLocation {
	return p.matchLocation(t.match, t.text, t.stripped)
}

func (p *Parser) matchLocation(m gazetteer.Match, original string, stripped bool) *models.ParsedLocation {
	conf := m.Confidence
	if stripped {
		conf *= gazetteer.SuffixPenalty
	}
	l := &models.ParsedLocation{
		OriginalText: original,
		ProvinceName: m.Province.Name,
		ProvinceCode: m.Province.PlateCode,
		Confidence:   conf,
	}
	if m.Kind == gazetteer.MatchDistrict {
		l.DistrictName = m.District
		l.IsDistrict = true
		l.IsAmbiguous = m.Ambiguous
		l.PossibleProvinces = m.Candidates
	}
	return l
}

func (p *Parser) provinceLocation(name, original string) *models.ParsedLocation {
	prov, ok := p.gaz.Province(name)
	if !ok {
		return nil
	}
	return &models.ParsedLocation{
		OriginalText: original,
		ProvinceName: prov.Name,
		ProvinceCode: prov.PlateCode,
		Confidence:   gazetteer.ConfidenceProvince,
	}
}

// addDestination appends to the multi-destination set, deduplicating by
// province name.
func (p *Parser) addDestination(loc *models.ParsedLocations, l *models.ParsedLocation) {
	if l == nil {
		return
	}
	for _, d := range loc.MultipleDests {
		if d.ProvinceName == l.ProvinceName {
			return
		}
	}
	loc.MultipleDests = append(loc.MultipleDests, *l)
	if loc.Destination == nil {
		loc.Destination = l
	}
}

// addOrigin appends to the multi-origin set, deduplicating by province
// name.
func (p *Parser) addOrigin(loc *models.ParsedLocations, l *models.ParsedLocation) {
	if l == nil {
		return
	}
	for _, o := range loc.MultipleOrigins {
		if o.ProvinceName == l.ProvinceName {
			return
		}
	}
	loc.MultipleOrigins = append(loc.MultipleOrigins, *l)
	if loc.Origin == nil {
		loc.Origin = l
	}
}

func cloneLocation(l *models.ParsedLocation) *models.ParsedLocation {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

func nextWord(text string, from int) string {
	rest := strings.TrimLeft(text[from:], " ")
	if i := strings.IndexAny(rest, " \n"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func prevWord(text string, to int) string {
	head := strings.TrimRight(text[:to], " ")
	if i := strings.LastIndexAny(head, " \n"); i >= 0 {
		head = head[i+1:]
	}
	return head
}

// isWordByte reports whether b can be part of a normalized token.
// Normalized text is ASCII lowercase, so two classes suffice.
func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
