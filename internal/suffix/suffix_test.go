package suffix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip_Ablative(t *testing.T) {
	testCases := []struct {
		token string
		stem  string
	}{
		{"istanbuldan", "istanbul"},
		{"izmirden", "izmir"},
		{"tokattan", "tokat"},
		{"eskisehirden", "eskisehir"},
		{"adanadan", "adana"},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			r := Strip(tc.token)
			assert.Equal(t, tc.stem, r.Stem)
			assert.True(t, r.IsOrigin)
			assert.False(t, r.IsDestination)
		})
	}
}

func TestStrip_Dative(t *testing.T) {
	testCases := []struct {
		token string
		stem  string
	}{
		{"ankaraya", "ankara"},
		{"izmire", "izmir"},
		{"bursaya", "bursa"},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			r := Strip(tc.token)
			assert.Equal(t, tc.stem, r.Stem)
			assert.True(t, r.IsDestination)
			assert.False(t, r.IsOrigin)
		})
	}
}

func TestStrip_LongestFirst(t *testing.T) {
	// "-ndan" wins over "-dan": "samsunundan" style possessive chains.
	r := Strip("adanasindan")
	assert.Equal(t, "adanasi", r.Stem)
	assert.True(t, r.IsOrigin)
}

func TestStrip_AblativeBeatsDative(t *testing.T) {
	// "adanadan" ends in "-dan" (ablative) and "-n"+... the ablative class
	// is checked first and wins.
	r := Strip("adanadan")
	assert.True(t, r.IsOrigin)
	assert.False(t, r.IsDestination)
}

func TestStrip_NoSuffix(t *testing.T) {
	for _, token := range []string{"kamyon", "istanbul", "acil"} {
		t.Run(token, func(t *testing.T) {
			r := Strip(token)
			assert.Equal(t, token, r.Stem)
			assert.False(t, r.IsOrigin)
			assert.False(t, r.IsDestination)
		})
	}
}

func TestStrip_MinStem(t *testing.T) {
	// Stems shorter than three runes are rejected: "vana" must not become
	// "v"+"ana" nor "van"+"a"... the latter is exactly three and allowed.
	r := Strip("vana")
	assert.Equal(t, "van", r.Stem)
	assert.True(t, r.IsDestination)

	r = Strip("ada")
	assert.Equal(t, "ada", r.Stem)
	assert.False(t, r.IsOrigin)
	assert.False(t, r.IsDestination)
}

func TestCandidates_WalksAllSplits(t *testing.T) {
	// "mersine": "-ne" gives the dead-end stem "mersi", "-e" gives
	// "mersin". Both must be offered, longest suffix first.
	cands := Candidates("mersine")
	require.Len(t, cands, 2)
	assert.Equal(t, "mersi", cands[0].Stem)
	assert.Equal(t, "mersin", cands[1].Stem)
	for _, c := range cands {
		assert.True(t, c.IsDestination)
	}
}

func TestCandidates_Empty(t *testing.T) {
	assert.Empty(t, Candidates("kamyon"))
	assert.Empty(t, Candidates(""))
}

func TestStrip_Normalizes(t *testing.T) {
	r := Strip("  ISTANBULDAN ")
	assert.Equal(t, "istanbul", r.Stem)
	assert.True(t, r.IsOrigin)
}
