package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// goldenCase is one recorded message with its expected extraction.
type goldenCase struct {
	Name string `yaml:"name"`
	Raw  string `yaml:"raw"`

	Expect struct {
		Origin        string   `yaml:"origin,omitempty"`
		Destination   string   `yaml:"destination,omitempty"`
		MultipleDests []string `yaml:"multiple_destinations,omitempty"`
		RouteCount    int      `yaml:"route_count,omitempty"`
		SameProvince  bool     `yaml:"same_province,omitempty"`
		International bool     `yaml:"international,omitempty"`
		VehicleType   string   `yaml:"vehicle_type,omitempty"`
		BodyType      string   `yaml:"body_type,omitempty"`
		CargoType     string   `yaml:"cargo_type,omitempty"`
		LoadType      string   `yaml:"load_type,omitempty"`
		WeightTons    float64  `yaml:"weight_tons,omitempty"`
		UrgencyMin    float64  `yaml:"urgency_min,omitempty"`
		FoulLanguage  bool     `yaml:"foul_language,omitempty"`
		NoLocation    bool     `yaml:"no_location,omitempty"`
	} `yaml:"expect"`
}

func TestParse_GoldenMessages(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "golden.yaml"))
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	p := newParser()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			res := p.Parse(tc.Raw)
			loc := res.Locations

			if tc.Expect.NoLocation {
				assert.False(t, res.HasLocation())
				return
			}
			if tc.Expect.Origin != "" {
				require.NotNil(t, loc.Origin, "origin missing")
				assert.Equal(t, tc.Expect.Origin, loc.Origin.ProvinceName)
			}
			if tc.Expect.Destination != "" {
				require.NotNil(t, loc.Destination, "destination missing")
				assert.Equal(t, tc.Expect.Destination, loc.Destination.ProvinceName)
			}
			if len(tc.Expect.MultipleDests) > 0 {
				var names []string
				for _, d := range loc.MultipleDests {
					names = append(names, d.ProvinceName)
				}
				assert.ElementsMatch(t, tc.Expect.MultipleDests, names)
			}
			if tc.Expect.RouteCount > 0 {
				assert.Len(t, loc.Routes, tc.Expect.RouteCount)
			}
			assert.Equal(t, tc.Expect.SameProvince, loc.SameProvince)
			assert.Equal(t, tc.Expect.International, loc.International)

			if tc.Expect.VehicleType != "" {
				assert.Equal(t, tc.Expect.VehicleType, res.VehicleType)
			}
			if tc.Expect.BodyType != "" {
				assert.Equal(t, tc.Expect.BodyType, res.BodyType)
			}
			if tc.Expect.CargoType != "" {
				assert.Equal(t, tc.Expect.CargoType, res.CargoType)
			}
			if tc.Expect.LoadType != "" {
				assert.Equal(t, tc.Expect.LoadType, res.LoadType)
			}
			if tc.Expect.WeightTons > 0 {
				require.NotNil(t, res.Weight, "weight missing")
				assert.Equal(t, "ton", res.Weight.Unit)
				assert.InDelta(t, tc.Expect.WeightTons, res.Weight.Value, 1e-9)
			}
			if tc.Expect.UrgencyMin > 0 {
				assert.GreaterOrEqual(t, res.Urgency.Score, tc.Expect.UrgencyMin)
			}
			assert.Equal(t, tc.Expect.FoulLanguage, res.FoulLanguage)
		})
	}
}
