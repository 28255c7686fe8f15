package gazetteer

// regionTable groups the 81 provinces into the seven geographic regions.
// Keys are the canonical normalized region names.
var regionTable = map[string][]string{
	"marmara": {
		"istanbul", "bursa", "kocaeli", "sakarya", "tekirdag", "edirne",
		"kirklareli", "canakkale", "balikesir", "bilecik", "yalova",
	},
	"ege": {
		"izmir", "aydin", "mugla", "manisa", "denizli", "usak",
		"kutahya", "afyonkarahisar",
	},
	"akdeniz": {
		"antalya", "mersin", "adana", "hatay", "isparta", "burdur",
		"osmaniye", "kahramanmaras",
	},
	"karadeniz": {
		"samsun", "trabzon", "ordu", "giresun", "rize", "artvin",
		"gumushane", "bayburt", "zonguldak", "bartin", "karabuk",
		"kastamonu", "sinop", "corum", "amasya", "tokat", "bolu", "duzce",
	},
	"icanadolu": {
		"ankara", "konya", "kayseri", "eskisehir", "sivas", "yozgat",
		"aksaray", "nigde", "nevsehir", "kirsehir", "kirikkale",
		"karaman", "cankiri",
	},
	"doguanadolu": {
		"erzurum", "erzincan", "agri", "kars", "igdir", "ardahan", "van",
		"mus", "bitlis", "bingol", "tunceli", "elazig", "malatya", "hakkari",
	},
	"guneydogu": {
		"gaziantep", "sanliurfa", "diyarbakir", "mardin", "batman",
		"siirt", "sirnak", "adiyaman", "kilis",
	},
}

// regionAliases maps alternate spellings and compounds to the canonical
// region key. Spaced variants are glued by the normalizer before lookup,
// but the raw spaced forms are kept here for whole-text scans.
var regionAliases = map[string]string{
	"marmara":           "marmara",
	"trakya":            "marmara",
	"ege":               "ege",
	"akdeniz":           "akdeniz",
	"karadeniz":         "karadeniz",
	"icanadolu":         "icanadolu",
	"ic anadolu":        "icanadolu",
	"orta anadolu":      "icanadolu",
	"ortaanadolu":       "icanadolu",
	"doguanadolu":       "doguanadolu",
	"dogu anadolu":      "doguanadolu",
	"dogu":              "doguanadolu",
	"guneydogu":         "guneydogu",
	"guneydogu anadolu": "guneydogu",
	"guneydoguanadolu":  "guneydogu",
}

// internationalDestinations is the fixed vocabulary of cross-border
// destinations seen in freight chats. Detected independently of the
// province pipeline and reported as a flag.
var internationalDestinations = []string{
	"azerbaycan", "gurcistan", "nahcivan", "iran", "irak", "suriye",
	"bulgaristan", "yunanistan", "romanya", "rusya", "ukrayna",
	"almanya", "fransa", "italya", "hollanda", "belcika", "avusturya",
	"polonya", "macaristan", "sirbistan", "kosova", "makedonya",
	"arnavutluk", "bosna", "hirvatistan", "slovenya", "cekya",
	"slovakya", "ingiltere", "ispanya", "turkmenistan", "kazakistan",
	"ozbekistan", "kirgizistan", "dubai", "katar", "suudi arabistan",
	"libya", "avrupa", "ortadogu",
}
