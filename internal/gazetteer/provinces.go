package gazetteer

// Province is one of Turkey's 81 first-level administrative divisions.
// Name is the canonical ASCII-folded lowercase form; PlateCode is the
// historical 1..81 vehicle-registration prefix.
type Province struct {
	Name      string `json:"name"`
	PlateCode int    `json:"plate_code"`
}

// provinceTable lists all 81 provinces ordered by plate code.
// Names are already in normalized form (lowercase, no diacritics) because
// every lookup happens after the normalizer has run.
var provinceTable = []Province{
	{"adana", 1},
	{"adiyaman", 2},
	{"afyonkarahisar", 3},
	{"agri", 4},
	{"amasya", 5},
	{"ankara", 6},
	{"antalya", 7},
	{"artvin", 8},
	{"aydin", 9},
	{"balikesir", 10},
	{"bilecik", 11},
	{"bingol", 12},
	{"bitlis", 13},
	{"bolu", 14},
	{"burdur", 15},
	{"bursa", 16},
	{"canakkale", 17},
	{"cankiri", 18},
	{"corum", 19},
	{"denizli", 20},
	{"diyarbakir", 21},
	{"edirne", 22},
	{"elazig", 23},
	{"erzincan", 24},
	{"erzurum", 25},
	{"eskisehir", 26},
	{"gaziantep", 27},
	{"giresun", 28},
	{"gumushane", 29},
	{"hakkari", 30},
	{"hatay", 31},
	{"isparta", 32},
	{"mersin", 33},
	{"istanbul", 34},
	{"izmir", 35},
	{"kars", 36},
	{"kastamonu", 37},
	{"kayseri", 38},
	{"kirklareli", 39},
	{"kirsehir", 40},
	{"kocaeli", 41},
	{"konya", 42},
	{"kutahya", 43},
	{"malatya", 44},
	{"manisa", 45},
	{"kahramanmaras", 46},
	{"mardin", 47},
	{"mugla", 48},
	{"mus", 49},
	{"nevsehir", 50},
	{"nigde", 51},
	{"ordu", 52},
	{"rize", 53},
	{"sakarya", 54},
	{"samsun", 55},
	{"siirt", 56},
	{"sinop", 57},
	{"sivas", 58},
	{"tekirdag", 59},
	{"tokat", 60},
	{"trabzon", 61},
	{"tunceli", 62},
	{"sanliurfa", 63},
	{"usak", 64},
	{"van", 65},
	{"yozgat", 66},
	{"zonguldak", 67},
	{"aksaray", 68},
	{"bayburt", 69},
	{"karaman", 70},
	{"kirikkale", 71},
	{"batman", 72},
	{"sirnak", 73},
	{"bartin", 74},
	{"ardahan", 75},
	{"igdir", 76},
	{"yalova", 77},
	{"karabuk", 78},
	{"kilis", 79},
	{"osmaniye", 80},
	{"duzce", 81},
}
