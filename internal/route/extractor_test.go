package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freight-parser/internal/gazetteer"
)

func newExtractor() *Extractor {
	return New(gazetteer.New())
}

func TestExtract_DashPattern(t *testing.T) {
	e := newExtractor()

	testCases := []struct {
		name   string
		text   string
		origin string
		dest   string
	}{
		{"Spaced_dash", "istanbul - ankara yuk var", "istanbul", "ankara"},
		{"Tight_dash", "istanbul-ankara", "istanbul", "ankara"},
		{"Abbreviated", "ist - ank tir lazim", "istanbul", "ankara"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			routes := e.Extract(tc.text)
			require.Len(t, routes, 1)
			assert.Equal(t, tc.origin, routes[0].Origin)
			assert.Equal(t, tc.dest, routes[0].Destination)
		})
	}
}

func TestExtract_ChevronPattern(t *testing.T) {
	e := newExtractor()

	routes := e.Extract("istanbul > izmir parsiyel")
	require.Len(t, routes, 1)
	assert.Equal(t, "istanbul", routes[0].Origin)
	assert.Equal(t, "izmir", routes[0].Destination)
	assert.Equal(t, 34, routes[0].OriginCode)
	assert.Equal(t, 35, routes[0].DestinationCode)

	routes = e.Extract("bursa >> kocaeli")
	require.Len(t, routes, 1)
	assert.Equal(t, "bursa", routes[0].Origin)
}

func TestExtract_SuffixPair(t *testing.T) {
	e := newExtractor()

	testCases := []struct {
		name   string
		text   string
		origin string
		dest   string
	}{
		{"Dan_ya", "istanbuldan ankaraya yuk var", "istanbul", "ankara"},
		{"Den_e", "izmirden mersine parsiyel", "izmir", "mersin"},
		{"Tan_a", "tokattan adanaya", "tokat", "adana"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			routes := e.Extract(tc.text)
			require.Len(t, routes, 1)
			assert.Equal(t, tc.origin, routes[0].Origin)
			assert.Equal(t, tc.dest, routes[0].Destination)
		})
	}
}

func TestExtract_NoSelfLoop(t *testing.T) {
	e := newExtractor()
	// Both sides resolving to the same province is not a route.
	assert.Empty(t, e.Extract("istanbul - istanbul"))
	assert.Empty(t, e.Extract("istanbuldan istanbula"))
}

func TestExtract_UnresolvableSides(t *testing.T) {
	e := newExtractor()
	assert.Empty(t, e.Extract("yukleme - bosaltma"))
	assert.Empty(t, e.Extract("hemen - acil is var"))
}

func TestExtract_Deduplication(t *testing.T) {
	e := newExtractor()
	// The same pair found by two patterns is reported once.
	routes := e.Extract("istanbul - ankara istanbuldan ankaraya")
	require.Len(t, routes, 1)
	assert.Equal(t, "istanbul", routes[0].Origin)
	assert.Equal(t, "ankara", routes[0].Destination)
}

func TestExtract_MultiLine(t *testing.T) {
	e := newExtractor()
	routes := e.Extract("istanbul > ankara\nistanbul > izmir\nistanbul > bursa")
	require.Len(t, routes, 3)
	for _, r := range routes {
		assert.Equal(t, "istanbul", r.Origin)
	}
	assert.Equal(t, "ankara", routes[0].Destination)
	assert.Equal(t, "izmir", routes[1].Destination)
	assert.Equal(t, "bursa", routes[2].Destination)
}

func TestExtract_TrailerAnnotation(t *testing.T) {
	e := newExtractor()

	routes := e.Extract("istanbul - ankara tenteli tir lazim")
	require.Len(t, routes, 1)
	assert.Equal(t, "tir", routes[0].Vehicle)
	assert.Equal(t, "tenteli", routes[0].BodyType)

	// Annotation does not cross line boundaries.
	routes = e.Extract("istanbul - ankara\ntenteli tir lazim")
	require.Len(t, routes, 1)
	assert.Empty(t, routes[0].Vehicle)
	assert.Empty(t, routes[0].BodyType)
}

func TestExtract_DistrictSideResolvesToProvince(t *testing.T) {
	e := newExtractor()
	routes := e.Extract("bodrum - ankara")
	require.Len(t, routes, 1)
	assert.Equal(t, "mugla", routes[0].Origin)
	assert.Equal(t, "ankara", routes[0].Destination)
}

func TestExtract_Empty(t *testing.T) {
	e := newExtractor()
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("yuk var acil"))
}
