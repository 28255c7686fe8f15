// Package extract holds the auxiliary extractors: vehicle, body and cargo
// type, load type, tonnage, urgency and foul-language detection. Each
// extractor is an ordered pattern list evaluated first-match-wins against
// the normalized text; the order encodes precedence and is a correctness
// invariant, not a style choice ("kamyonet" must run before "kamyon" or
// the substring would always win).
package extract

import "regexp"

// Rule pairs a compiled pattern with the label it yields.
type Rule struct {
	Pattern *regexp.Regexp
	Label   string
}

// vehicleRules, most specific first.
var vehicleRules = []Rule{
	{regexp.MustCompile(`\bkamyonet\w*`), "kamyonet"},
	{regexp.MustCompile(`\bkamyon\w*`), "kamyon"},
	{regexp.MustCompile(`\btir\b|\btir\w*lik\b`), "tir"},
	{regexp.MustCompile(`\bpanelvan\w*`), "panelvan"},
	{regexp.MustCompile(`\bpikap\w*`), "pikap"},
	{regexp.MustCompile(`\bcekici\w*`), "cekici"},
	{regexp.MustCompile(`\bdorse\w*`), "dorse"},
}

// bodyRules, most specific first so "acik kasa" is not eaten by the bare
// "kasa" fallback.
var bodyRules = []Rule{
	{regexp.MustCompile(`\btenteli\b|\btente\b`), "tenteli"},
	{regexp.MustCompile(`\bfrigorifik\b|\bfrigo\b|\bsogutucu\w*`), "frigorifik"},
	{regexp.MustCompile(`\bdamperli\b|\bdamper\b`), "damperli"},
	{regexp.MustCompile(`\blowbed\b|\bloved\b`), "lowbed"},
	{regexp.MustCompile(`\bacik kasa\b|\bacik\b`), "acik"},
	{regexp.MustCompile(`\bkapali kasa\b|\bkapali\b`), "kapali"},
	{regexp.MustCompile(`\bsalkasa\b|\bsal\b`), "sal"},
}

// cargoRules cover the cargo categories that recur in freight chats.
var cargoRules = []Rule{
	{regexp.MustCompile(`\bbeyaz esya\b`), "beyaz_esya"},
	{regexp.MustCompile(`\bpalet\w*`), "palet"},
	{regexp.MustCompile(`\brulo\b|\bbobin\w*`), "bobin"},
	{regexp.MustCompile(`\bdemir\w*|\bcelik\w*|\bprofil\b`), "demir_celik"},
	{regexp.MustCompile(`\bmermer\w*|\bgranit\w*`), "mermer"},
	{regexp.MustCompile(`\bcimento\b|\binsaat malzeme\w*`), "insaat"},
	{regexp.MustCompile(`\bgida\b|\bbakliyat\b|\bun\b|\bseker\b`), "gida"},
	{regexp.MustCompile(`\bsebze\w*|\bmeyve\w*|\bnarenciye\b`), "sebze_meyve"},
	{regexp.MustCompile(`\btekstil\b|\bkumas\b|\bkonfeksiyon\b`), "tekstil"},
	{regexp.MustCompile(`\bmobilya\w*`), "mobilya"},
	{regexp.MustCompile(`\bhurda\w*`), "hurda"},
	{regexp.MustCompile(`\bkereste\b|\btomruk\b|\bsunta\b`), "kereste"},
	{regexp.MustCompile(`\bkum\b|\bcakil\b|\bmicir\b`), "kum_cakil"},
	{regexp.MustCompile(`\bkomur\w*`), "komur"},
	{regexp.MustCompile(`\byem\b|\bgubre\w*|\bsaman\b`), "tarim"},
	{regexp.MustCompile(`\bmakina\w*|\bmakine\w*|\bis makinesi\b`), "makine"},
}

// loadTypeRules: partial load cues before full load cues, since "parsiyel
// yuk" messages often also say "komple arac istemiyorum".
var loadTypeRules = []Rule{
	{regexp.MustCompile(`\bparsiyel\w*|\bgrupaj\b|\bkismi\b`), "ltl"},
	{regexp.MustCompile(`\bkomple\b|\bful\b|\bfull\b|\btam yuk\b`), "ftl"},
}

// firstMatch runs the rules in order and returns the first label that
// matches, or "".
func firstMatch(rules []Rule, text string) string {
	for _, r := range rules {
		if r.Pattern.MatchString(text) {
			return r.Label
		}
	}
	return ""
}

// VehicleType extracts the requested vehicle type from normalized text.
func VehicleType(text string) string { return firstMatch(vehicleRules, text) }

// BodyType extracts the cargo body type from normalized text.
func BodyType(text string) string { return firstMatch(bodyRules, text) }

// CargoType extracts the cargo category from normalized text.
func CargoType(text string) string { return firstMatch(cargoRules, text) }

// LoadType returns "ftl", "ltl" or "".
func LoadType(text string) string { return firstMatch(loadTypeRules, text) }
