package gazetteer

// District is a second-level administrative division. The same district
// name can exist under more than one province (e.g. "eregli" in both Konya
// and Zonguldak), which is why Resolve returns a candidate list for
// ambiguous names.
type District struct {
	Name     string `json:"name"`
	Province string `json:"province"`
}

// districtTable covers the districts that show up in freight chats: the
// full Istanbul list, the industrial corridors (Gebze, Çorlu, İnegöl,
// Aliağa, İskenderun, ...) and every name that is shared across provinces.
// Names that equal everyday Turkish words (merkez, of, kale, ...) are
// still listed here but are shadowed by the common-word exclusion list.
var districtTable = []District{
	// istanbul
	{"adalar", "istanbul"},
	{"arnavutkoy", "istanbul"},
	{"atasehir", "istanbul"},
	{"avcilar", "istanbul"},
	{"bagcilar", "istanbul"},
	{"bahcelievler", "istanbul"},
	{"bakirkoy", "istanbul"},
	{"basaksehir", "istanbul"},
	{"bayrampasa", "istanbul"},
	{"besiktas", "istanbul"},
	{"beykoz", "istanbul"},
	{"beylikduzu", "istanbul"},
	{"beyoglu", "istanbul"},
	{"buyukcekmece", "istanbul"},
	{"catalca", "istanbul"},
	{"cekmekoy", "istanbul"},
	{"esenler", "istanbul"},
	{"esenyurt", "istanbul"},
	{"eyupsultan", "istanbul"},
	{"fatih", "istanbul"},
	{"gaziosmanpasa", "istanbul"},
	{"gungoren", "istanbul"},
	{"hadimkoy", "istanbul"},
	{"ikitelli", "istanbul"},
	{"kadikoy", "istanbul"},
	{"kagithane", "istanbul"},
	{"kartal", "istanbul"},
	{"kucukcekmece", "istanbul"},
	{"maltepe", "istanbul"},
	{"pendik", "istanbul"},
	{"sancaktepe", "istanbul"},
	{"sariyer", "istanbul"},
	{"silivri", "istanbul"},
	{"sultanbeyli", "istanbul"},
	{"sultangazi", "istanbul"},
	{"sile", "istanbul"},
	{"sisli", "istanbul"},
	{"tuzla", "istanbul"},
	{"umraniye", "istanbul"},
	{"uskudar", "istanbul"},
	{"zeytinburnu", "istanbul"},

	// kocaeli
	{"gebze", "kocaeli"},
	{"izmit", "kocaeli"},
	{"golcuk", "kocaeli"},
	{"darica", "kocaeli"},
	{"dilovasi", "kocaeli"},
	{"korfez", "kocaeli"},
	{"kartepe", "kocaeli"},
	{"cayirova", "kocaeli"},

	// ankara
	{"sincan", "ankara"},
	{"polatli", "ankara"},
	{"cankaya", "ankara"},
	{"kecioren", "ankara"},
	{"mamak", "ankara"},
	{"etimesgut", "ankara"},
	{"yenimahalle", "ankara"},
	{"kazan", "ankara"},
	{"golbasi", "ankara"},
	{"golbasi", "adiyaman"},

	// izmir
	{"aliaga", "izmir"},
	{"bornova", "izmir"},
	{"buca", "izmir"},
	{"cigli", "izmir"},
	{"gaziemir", "izmir"},
	{"karsiyaka", "izmir"},
	{"kemalpasa", "izmir"},
	{"konak", "izmir"},
	{"menemen", "izmir"},
	{"odemis", "izmir"},
	{"tire", "izmir"},
	{"torbali", "izmir"},
	{"cesme", "izmir"},
	{"bergama", "izmir"},

	// bursa
	{"inegol", "bursa"},
	{"gemlik", "bursa"},
	{"mudanya", "bursa"},
	{"nilufer", "bursa"},
	{"osmangazi", "bursa"},
	{"yildirim", "bursa"},
	{"karacabey", "bursa"},
	{"mustafakemalpasa", "bursa"},
	{"orhangazi", "bursa"},

	// tekirdag
	{"corlu", "tekirdag"},
	{"cerkezkoy", "tekirdag"},
	{"kapakli", "tekirdag"},
	{"malkara", "tekirdag"},
	{"saray", "tekirdag"},
	{"saray", "van"},

	// antalya
	{"alanya", "antalya"},
	{"manavgat", "antalya"},
	{"serik", "antalya"},
	{"kumluca", "antalya"},
	{"korkuteli", "antalya"},
	{"kemer", "antalya"},
	{"kemer", "burdur"},

	// adana / mersin / hatay
	{"ceyhan", "adana"},
	{"seyhan", "adana"},
	{"yuregir", "adana"},
	{"kozan", "adana"},
	{"tarsus", "mersin"},
	{"erdemli", "mersin"},
	{"silifke", "mersin"},
	{"anamur", "mersin"},
	{"iskenderun", "hatay"},
	{"dortyol", "hatay"},
	{"antakya", "hatay"},
	{"reyhanli", "hatay"},

	// konya / karaman
	{"eregli", "konya"},
	{"eregli", "zonguldak"},
	{"aksehir", "konya"},
	{"beysehir", "konya"},
	{"cumra", "konya"},
	{"ilgin", "konya"},
	{"seydisehir", "konya"},
	{"selcuklu", "konya"},
	{"meram", "konya"},
	{"karatay", "konya"},

	// kayseri / sivas / malatya
	{"develi", "kayseri"},
	{"talas", "kayseri"},
	{"melikgazi", "kayseri"},
	{"kocasinan", "kayseri"},
	{"pinarbasi", "kayseri"},
	{"pinarbasi", "kastamonu"},
	{"sarkisla", "sivas"},
	{"susehri", "sivas"},
	{"battalgazi", "malatya"},
	{"dogansehir", "malatya"},

	// gaziantep / sanliurfa / diyarbakir
	{"nizip", "gaziantep"},
	{"sahinbey", "gaziantep"},
	{"sehitkamil", "gaziantep"},
	{"islahiye", "gaziantep"},
	{"siverek", "sanliurfa"},
	{"viransehir", "sanliurfa"},
	{"birecik", "sanliurfa"},
	{"ergani", "diyarbakir"},
	{"bismil", "diyarbakir"},
	{"silvan", "diyarbakir"},

	// ege
	{"nazilli", "aydin"},
	{"soke", "aydin"},
	{"kusadasi", "aydin"},
	{"didim", "aydin"},
	{"bodrum", "mugla"},
	{"fethiye", "mugla"},
	{"marmaris", "mugla"},
	{"milas", "mugla"},
	{"akhisar", "manisa"},
	{"salihli", "manisa"},
	{"turgutlu", "manisa"},
	{"soma", "manisa"},
	{"alasehir", "manisa"},
	{"saraykoy", "denizli"},
	{"civril", "denizli"},
	{"tavas", "denizli"},
	{"kale", "denizli"},
	{"kale", "malatya"},
	{"banaz", "usak"},
	{"simav", "kutahya"},
	{"tavsanli", "kutahya"},
	{"gediz", "kutahya"},
	{"sandikli", "afyonkarahisar"},
	{"dinar", "afyonkarahisar"},
	{"bolvadin", "afyonkarahisar"},
	{"emirdag", "afyonkarahisar"},

	// marmara (rest)
	{"bandirma", "balikesir"},
	{"edremit", "balikesir"},
	{"edremit", "van"},
	{"ayvalik", "balikesir"},
	{"gonen", "balikesir"},
	{"gonen", "isparta"},
	{"susurluk", "balikesir"},
	{"biga", "canakkale"},
	{"gelibolu", "canakkale"},
	{"yenice", "canakkale"},
	{"yenice", "karabuk"},
	{"kesan", "edirne"},
	{"uzunkopru", "edirne"},
	{"luleburgaz", "kirklareli"},
	{"babaeski", "kirklareli"},
	{"adapazari", "sakarya"},
	{"akyazi", "sakarya"},
	{"hendek", "sakarya"},
	{"karasu", "sakarya"},
	{"bozuyuk", "bilecik"},
	{"cinarcik", "yalova"},

	// karadeniz
	{"bafra", "samsun"},
	{"carsamba", "samsun"},
	{"terme", "samsun"},
	{"havza", "samsun"},
	{"unye", "ordu"},
	{"fatsa", "ordu"},
	{"bulancak", "giresun"},
	{"espiye", "giresun"},
	{"of", "trabzon"},
	{"akcaabat", "trabzon"},
	{"vakfikebir", "trabzon"},
	{"ardesen", "rize"},
	{"cayeli", "rize"},
	{"hopa", "artvin"},
	{"arhavi", "artvin"},
	{"devrek", "zonguldak"},
	{"caycuma", "zonguldak"},
	{"merzifon", "amasya"},
	{"suluova", "amasya"},
	{"erbaa", "tokat"},
	{"niksar", "tokat"},
	{"turhal", "tokat"},
	{"zile", "tokat"},
	{"tosya", "kastamonu"},
	{"boyabat", "sinop"},
	{"gerede", "bolu"},
	{"akcakoca", "duzce"},
	{"safranbolu", "karabuk"},
	{"amasra", "bartin"},
	{"osmancik", "corum"},
	{"sungurlu", "corum"},
	{"ortakoy", "corum"},
	{"ortakoy", "aksaray"},

	// ic anadolu (rest)
	{"bor", "nigde"},
	{"urgup", "nevsehir"},
	{"avanos", "nevsehir"},
	{"kaman", "kirsehir"},
	{"mucur", "kirsehir"},
	{"keskin", "kirikkale"},
	{"yahsihan", "kirikkale"},
	{"sorgun", "yozgat"},
	{"bogazliyan", "yozgat"},
	{"ermenek", "karaman"},
	{"sereflikochisar", "ankara"},
	{"cihanbeyli", "konya"},
	{"kulu", "konya"},
	{"sivrihisar", "eskisehir"},
	{"cifteler", "eskisehir"},
	{"tepebasi", "eskisehir"},
	{"odunpazari", "eskisehir"},
	{"ilgaz", "cankiri"},

	// dogu / guneydogu (rest)
	{"horasan", "erzurum"},
	{"oltu", "erzurum"},
	{"askale", "erzurum"},
	{"dogubayazit", "agri"},
	{"patnos", "agri"},
	{"ercis", "van"},
	{"tatvan", "bitlis"},
	{"ahlat", "bitlis"},
	{"genc", "bingol"},
	{"kovancilar", "elazig"},
	{"karakocan", "elazig"},
	{"kiziltepe", "mardin"},
	{"nusaybin", "mardin"},
	{"midyat", "mardin"},
	{"cizre", "sirnak"},
	{"silopi", "sirnak"},
	{"kurtalan", "siirt"},
	{"kahta", "adiyaman"},
	{"besni", "adiyaman"},
	{"elbistan", "kahramanmaras"},
	{"afsin", "kahramanmaras"},
	{"pazarcik", "kahramanmaras"},
	{"kadirli", "osmaniye"},
	{"duzici", "osmaniye"},
	{"sarikamis", "kars"},
	{"kagizman", "kars"},
	{"tuzluca", "igdir"},
	{"yuksekova", "hakkari"},
	{"semdinli", "hakkari"},
	{"varto", "mus"},
	{"bulanik", "mus"},
	{"refahiye", "erzincan"},
	{"tercan", "erzincan"},
	{"kelkit", "gumushane"},
	{"siran", "gumushane"},
	{"kozluk", "batman"},
	{"yalvac", "isparta"},
	{"egirdir", "isparta"},
	{"bucak", "burdur"},
	{"golhisar", "burdur"},
	{"musabeyli", "kilis"},
	{"demirozu", "bayburt"},
	{"posof", "ardahan"},
	{"pertek", "tunceli"},
}
