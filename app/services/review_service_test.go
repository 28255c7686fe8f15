package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freight-parser/app/models"
)

func TestShouldReview(t *testing.T) {
	rs := &ReviewService{}

	tests := []struct {
		name   string
		result models.ParseResult
		want   bool
	}{
		{
			name: "confident origin passes",
			result: models.ParseResult{Locations: models.ParsedLocations{
				Origin: &models.ParsedLocation{ProvinceName: "istanbul", Confidence: 1.0},
			}},
			want: false,
		},
		{
			name: "ambiguous origin is queued",
			result: models.ParseResult{Locations: models.ParsedLocations{
				Origin: &models.ParsedLocation{
					ProvinceName:      "konya",
					Confidence:        0.6,
					IsAmbiguous:       true,
					PossibleProvinces: []string{"konya", "zonguldak", "tekirdag"},
				},
			}},
			want: true,
		},
		{
			name: "low confidence origin is queued",
			result: models.ParseResult{Locations: models.ParsedLocations{
				Origin: &models.ParsedLocation{ProvinceName: "ankara", Confidence: 0.6},
			}},
			want: true,
		},
		{
			name: "suffix-stripped district stays above the threshold",
			result: models.ParseResult{Locations: models.ParsedLocations{
				Origin: &models.ParsedLocation{ProvinceName: "mugla", Confidence: 0.9 * 0.95},
			}},
			want: false,
		},
		{
			name:   "foul language is queued even without locations",
			result: models.ParseResult{FoulLanguage: true},
			want:   true,
		},
		{
			name:   "no origin, nothing to review",
			result: models.ParseResult{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rs.ShouldReview(&tt.result))
		})
	}
}
