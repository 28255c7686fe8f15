package gazetteer

// vehicleJargon lists logistics vocabulary that must never be read as a
// location even when a token coincidentally survives suffix stripping.
// Checked before any gazetteer lookup.
var vehicleJargon = map[string]bool{
	"tir":        true,
	"kamyon":     true,
	"kamyonet":   true,
	"panelvan":   true,
	"pikap":      true,
	"dorse":      true,
	"romork":     true,
	"cekici":     true,
	"lowbed":     true,
	"tenteli":    true,
	"tente":      true,
	"acik":       true,
	"kapali":     true,
	"damperli":   true,
	"damper":     true,
	"frigo":      true,
	"frigorifik": true,
	"sal":        true,
	"kasa":       true,
	"kasali":     true,
	"parsiyel":   true,
	"komple":     true,
	"yuk":        true,
	"yukleme":    true,
	"nakliye":    true,
	"nakliyat":   true,
	"lojistik":   true,
	"kargo":      true,
	"palet":      true,
	"paletli":    true,
	"ton":        true,
	"tonluk":     true,
	"arac":       true,
	"sofor":      true,
	"evrak":      true,
	"irsaliye":   true,
}

// commonWords are everyday Turkish words that coincide with district names
// or survive the suffix stripper looking like a stem. They are rejected
// outright so that "var", "yok" or "of" never resolve to a location.
var commonWords = map[string]bool{
	"var":      true,
	"yok":      true,
	"bey":      true,
	"abi":      true,
	"usta":     true,
	"of":       true, // Trabzon district, but almost always the interjection
	"kale":     true,
	"merkez":   true,
	"saray":    true,
	"bor":      true,
	"yarin":    true,
	"bugun":    true,
	"simdi":    true,
	"hemen":    true,
	"acil":     true,
	"fiyat":    true,
	"ucret":    true,
	"para":     true,
	"lira":     true,
	"ydk":      true,
	"mal":      true,
	"bos":      true,
	"dolu":     true,
	"gidis":    true,
	"donus":    true,
	"tek":      true,
	"cift":     true,
	"uygun":    true,
	"lazim":    true,
	"aranan":   true,
	"araniyor": true,
	"mevcut":   true,
	"tel":      true,
	"no":       true,
	"nolu":     true,
	"adet":     true,
	"kdv":      true,
	"dahil":    true,
	"haric":    true,
	"nezaman":  true,
}

// abbreviationTable maps chat shorthand to canonical province names.
var abbreviationTable = map[string]string{
	"ist":        "istanbul",
	"istb":       "istanbul",
	"izm":        "izmir",
	"ank":        "ankara",
	"antep":      "gaziantep",
	"urfa":       "sanliurfa",
	"maras":      "kahramanmaras",
	"afyon":      "afyonkarahisar",
	"icel":       "mersin",
	"gantep":     "gaziantep",
	"diyarbekir": "diyarbakir",
}
