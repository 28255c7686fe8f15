package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_TurkishLowercase(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Dotted_capital_I", "İstanbul", "istanbul"},
		{"Dotless_I", "IĞDIR", "igdir"},
		{"Mixed", "İZMİR'den ANKARA'ya", "izmirden ankaraya"},
		{"Plain_ascii", "kamyon lazim", "kamyon lazim"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_FoldsTurkishLetters(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"çekici", "cekici"},
		{"şöför", "sofor"},
		{"yükü", "yuku"},
		{"Ağrı", "agri"},
		{"Çanakkale", "canakkale"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_Arrows(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Emoji_arrow", "istanbul ➡️ ankara", "istanbul > ankara"},
		{"Plain_arrow", "istanbul → ankara", "istanbul > ankara"},
		{"Ascii_arrow", "istanbul -> ankara", "istanbul > ankara"},
		{"Fat_arrow", "istanbul => ankara", "istanbul > ankara"},
		{"Pointing_finger", "bursa 👉 izmir", "bursa > izmir"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_ApostropheSuffixes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Apostrophe_ablative", "İstanbul'dan", "istanbuldan"},
		{"Apostrophe_dative", "Ankara'ya", "ankaraya"},
		{"Curly_apostrophe", "İzmir’den", "izmirden"},
		{"Spaced_apostrophe", "istanbul 'dan", "istanbuldan"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_SpacedSuffixJoin(t *testing.T) {
	// A detached case suffix re-joins its stem.
	assert.Equal(t, "istanbuldan yuk var", Normalize("istanbul dan yük var"))
	assert.Equal(t, "ankaraya gidecek", Normalize("ankara ya gidecek"))
}

func TestNormalize_CompoundGlue(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Disjunction", "izmir ya da manisa", "izmir yada manisa"},
		{"Panel_van", "panel van lazim", "panelvan lazim"},
		{"Ne_zaman", "ne zaman gelir", "nezaman gelir"},
		{"Sal_kasa", "sal kasa kamyon", "salkasa kamyon"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_GluePrecedesSuffixJoin(t *testing.T) {
	// "ya da" must glue before the spaced-suffix join can read the bare
	// "ya" as a dative suffix of the previous word.
	assert.Equal(t, "bursa yada kocaeli", Normalize("bursa ya da kocaeli"))
}

func TestNormalize_Whitespace(t *testing.T) {
	// Runs of spaces and tabs collapse, newlines survive for the
	// line-oriented route annotation scan.
	assert.Equal(t, "istanbul ankara", Normalize("istanbul \t  ankara"))
	assert.Equal(t, "istanbul > ankara\nistanbul > izmir",
		Normalize("istanbul -> ankara \n  istanbul -> izmir"))
	assert.Equal(t, "tek satir", Normalize("  tek satir  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"İstanbul'dan Ankara'ya 20 ton yük ➡️ acil",
		"izmir ya da manisa panel van",
		"BURSA -> KOCAELİ\nBURSA -> SAKARYA",
		"şöför çekici arıyor",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "not idempotent for %q", in)
	}
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n  "))
}
