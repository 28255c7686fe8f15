package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteer_Counts(t *testing.T) {
	g := New()
	assert.Equal(t, 81, g.ProvinceCount())
	assert.Greater(t, g.DistrictCount(), 100)
}

func TestGazetteer_ResolveProvince(t *testing.T) {
	g := New()

	testCases := []struct {
		name  string
		token string
		prov  string
		code  int
	}{
		{"Istanbul", "istanbul", "istanbul", 34},
		{"Ankara", "ankara", "ankara", 6},
		{"Mersin", "mersin", "mersin", 33},
		{"Sivas_ends_like_ablative", "sivas", "sivas", 58},
		{"Adana_first_plate", "adana", "adana", 1},
		{"Duzce_last_plate", "duzce", "duzce", 81},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := g.Resolve(tc.token)
			require.Equal(t, MatchProvince, m.Kind)
			assert.Equal(t, tc.prov, m.Province.Name)
			assert.Equal(t, tc.code, m.Province.PlateCode)
			assert.Equal(t, ConfidenceProvince, m.Confidence)
		})
	}
}

func TestGazetteer_ResolveAbbreviations(t *testing.T) {
	g := New()

	testCases := []struct {
		token string
		prov  string
	}{
		{"ist", "istanbul"},
		{"izm", "izmir"},
		{"ank", "ankara"},
		{"antep", "gaziantep"},
		{"urfa", "sanliurfa"},
		{"maras", "kahramanmaras"},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			m := g.Resolve(tc.token)
			require.Equal(t, MatchProvince, m.Kind)
			assert.Equal(t, tc.prov, m.Province.Name)
		})
	}
}

func TestGazetteer_ResolveDistrict(t *testing.T) {
	g := New()

	m := g.Resolve("bodrum")
	require.Equal(t, MatchDistrict, m.Kind)
	assert.Equal(t, "mugla", m.Province.Name)
	assert.Equal(t, "bodrum", m.District)
	assert.False(t, m.Ambiguous)
	assert.Equal(t, ConfidenceDistrict, m.Confidence)
}

func TestGazetteer_AmbiguousDistricts(t *testing.T) {
	g := New()

	testCases := []struct {
		district string
		owners   []string
	}{
		{"eregli", []string{"konya", "zonguldak"}},
		{"kemer", []string{"antalya", "burdur"}},
		{"golbasi", []string{"ankara", "adiyaman"}},
		{"edremit", []string{"balikesir", "van"}},
		{"yenice", []string{"canakkale", "karabuk"}},
	}

	for _, tc := range testCases {
		t.Run(tc.district, func(t *testing.T) {
			m := g.Resolve(tc.district)
			require.Equal(t, MatchDistrict, m.Kind)
			assert.True(t, m.Ambiguous)
			assert.Equal(t, ConfidenceAmbiguous, m.Confidence)
			assert.ElementsMatch(t, tc.owners, m.Candidates)
			// Primary owner is the first registered one.
			assert.Equal(t, tc.owners[0], m.Province.Name)
		})
	}
}

func TestGazetteer_Exclusions(t *testing.T) {
	g := New()

	// Vehicle jargon and chat noise must never resolve, even when a token
	// happens to collide with a district name.
	for _, token := range []string{"dorse", "tir", "var", "yok", "bey", "of", "kale", "merkez", "saray", "bor"} {
		t.Run(token, func(t *testing.T) {
			m := g.Resolve(token)
			assert.Equal(t, MatchNone, m.Kind, "token %q must be excluded", token)
		})
	}
}

func TestGazetteer_ShortTokens(t *testing.T) {
	g := New()
	assert.Equal(t, MatchNone, g.Resolve("").Kind)
	assert.Equal(t, MatchNone, g.Resolve("a").Kind)
}

func TestGazetteer_ResolvePlate(t *testing.T) {
	g := New()

	p, ok := g.ResolvePlate(34)
	require.True(t, ok)
	assert.Equal(t, "istanbul", p.Name)

	p, ok = g.ResolvePlate(6)
	require.True(t, ok)
	assert.Equal(t, "ankara", p.Name)

	_, ok = g.ResolvePlate(0)
	assert.False(t, ok)
	_, ok = g.ResolvePlate(82)
	assert.False(t, ok)
}

func TestGazetteer_Regions(t *testing.T) {
	g := New()

	provs, ok := g.Region("marmara")
	require.True(t, ok)
	assert.Len(t, provs, 11)
	assert.Contains(t, provs, "istanbul")

	// Every province belongs to exactly one region.
	seen := map[string]int{}
	for _, key := range []string{"marmara", "ege", "akdeniz", "karadeniz", "icanadolu", "doguanadolu", "guneydogu"} {
		ps, ok := g.Region(key)
		require.True(t, ok, "region %s", key)
		for _, p := range ps {
			seen[p]++
		}
	}
	assert.Len(t, seen, 81)
	for p, n := range seen {
		assert.Equal(t, 1, n, "province %s in %d regions", p, n)
	}
}

func TestGazetteer_RegionAliases(t *testing.T) {
	g := New()
	aliases := g.RegionAliases()
	assert.Equal(t, "marmara", aliases["trakya"])
	assert.Equal(t, "icanadolu", aliases["ic anadolu"])
	assert.Equal(t, "guneydogu", aliases["guneydogu anadolu"])
}

func TestGazetteer_Suggest(t *testing.T) {
	g := New()

	testCases := []struct {
		name  string
		token string
		want  string
	}{
		{"Missing_letter", "istanbl", "istanbul"},
		{"Swapped_letters", "ankraa", "ankara"},
		{"District_typo", "bodurm", "bodrum"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sugs := g.Suggest(tc.token, 5)
			require.NotEmpty(t, sugs)
			assert.Equal(t, tc.want, sugs[0].Name)
			assert.GreaterOrEqual(t, sugs[0].Score, 0.75)
			// Scores are sorted descending.
			for i := 1; i < len(sugs); i++ {
				assert.LessOrEqual(t, sugs[i].Score, sugs[i-1].Score)
			}
		})
	}
}

func TestGazetteer_SuggestNoMatch(t *testing.T) {
	g := New()
	assert.Empty(t, g.Suggest("xyzqw", 5))
}
