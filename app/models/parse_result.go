package models

import "time"

// ParsedLocation is one resolved location mention. ProvinceName is always
// a valid gazetteer province; Confidence strictly orders exact-name >
// exact-district > ambiguous-district, with suffix-stripped variants below
// their exact counterparts.
type ParsedLocation struct {
	OriginalText      string   `bson:"original_text" json:"original_text"`
	ProvinceName      string   `bson:"province_name" json:"province_name"`
	ProvinceCode      int      `bson:"province_code" json:"province_code"`
	DistrictName      string   `bson:"district_name,omitempty" json:"district_name,omitempty"`
	IsDistrict        bool     `bson:"is_district" json:"is_district"`
	Confidence        float64  `bson:"confidence" json:"confidence"`
	IsAmbiguous       bool     `bson:"is_ambiguous" json:"is_ambiguous"`
	PossibleProvinces []string `bson:"possible_provinces,omitempty" json:"possible_provinces,omitempty"`
}

// ExtractedRoute is one directed origin→destination edge found by the
// route-pattern cascade. Origin and destination are always different
// provinces.
type ExtractedRoute struct {
	Origin          string `bson:"origin" json:"origin"`
	Destination     string `bson:"destination" json:"destination"`
	OriginCode      int    `bson:"origin_code,omitempty" json:"origin_code,omitempty"`
	DestinationCode int    `bson:"destination_code,omitempty" json:"destination_code,omitempty"`
	Vehicle         string `bson:"vehicle,omitempty" json:"vehicle,omitempty"`
	BodyType        string `bson:"body_type,omitempty" json:"body_type,omitempty"`
}

// IstanbulSide filters searches to one side of the Bosphorus.
type IstanbulSide string

const (
	SideEuropean IstanbulSide = "european"
	SideAsian    IstanbulSide = "asian"
)

// ParsedLocations is the aggregate location result for one message.
// Multi-sets are deduplicated by normalized province name; insertion order
// carries no meaning.
type ParsedLocations struct {
	Origin            *ParsedLocation  `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination       *ParsedLocation  `bson:"destination,omitempty" json:"destination,omitempty"`
	MultipleOrigins   []ParsedLocation `bson:"multiple_origins,omitempty" json:"multiple_origins,omitempty"`
	MultipleDests     []ParsedLocation `bson:"multiple_destinations,omitempty" json:"multiple_destinations,omitempty"`
	Routes            []ExtractedRoute `bson:"routes,omitempty" json:"routes,omitempty"`
	OriginRegion      string           `bson:"origin_region,omitempty" json:"origin_region,omitempty"`
	DestinationRegion string           `bson:"destination_region,omitempty" json:"destination_region,omitempty"`
	International     bool             `bson:"international" json:"international"`
	InternationalDest string           `bson:"international_dest,omitempty" json:"international_dest,omitempty"`
	IstanbulSide      IstanbulSide     `bson:"istanbul_side,omitempty" json:"istanbul_side,omitempty"`
	SameProvince      bool             `bson:"same_province_search" json:"same_province_search"`
}

// Weight is tonnage in normalized units. Kilogram inputs at or above 1000
// are converted to tons by the extractor.
type Weight struct {
	Value float64 `bson:"value" json:"value"`
	Unit  string  `bson:"unit" json:"unit"`
}

// Urgency is the continuous urgency score plus the indicator phrases that
// produced it. Score 0 means no urgency cue was found.
type Urgency struct {
	Score      float64  `bson:"score" json:"score"`
	Indicators []string `bson:"indicators,omitempty" json:"indicators,omitempty"`
}

// ParseResult is the full engine output for one message: the location
// aggregate plus the independently attached auxiliary fields. All fields
// are optional; an empty result is a valid non-error outcome.
type ParseResult struct {
	Raw          string          `bson:"raw" json:"raw"`
	Normalized   string          `bson:"normalized" json:"normalized"`
	Locations    ParsedLocations `bson:"locations" json:"locations"`
	CargoType    string          `bson:"cargo_type,omitempty" json:"cargo_type,omitempty"`
	VehicleType  string          `bson:"vehicle_type,omitempty" json:"vehicle_type,omitempty"`
	BodyType     string          `bson:"body_type,omitempty" json:"body_type,omitempty"`
	Weight       *Weight         `bson:"weight,omitempty" json:"weight,omitempty"`
	LoadType     string          `bson:"load_type,omitempty" json:"load_type,omitempty"`
	Urgency      Urgency         `bson:"urgency" json:"urgency"`
	FoulLanguage bool            `bson:"foul_language" json:"foul_language"`
	ParsedAt     time.Time       `bson:"parsed_at" json:"parsed_at"`
}

// HasLocation reports whether the message produced any geographic signal.
func (r *ParseResult) HasLocation() bool {
	l := r.Locations
	return l.Origin != nil || l.Destination != nil ||
		len(l.MultipleOrigins) > 0 || len(l.MultipleDests) > 0 ||
		len(l.Routes) > 0 || l.OriginRegion != "" ||
		l.DestinationRegion != "" || l.International
}
