package translation

// NewLandRecordGlossary returns the glossary of Urdu, Hindi and Kashmiri
// land-record terminology used across Jammu & Kashmir revenue records.
func NewLandRecordGlossary() *Glossary {
	return NewGlossary(landRecordTerms, landRecordCategories)
}

var landRecordTerms = []Term{
	// Urdu document types
	{"جمع بندی", "Jamabandi (Land Revenue Record)"},
	{"فرد", "Fard (Land Extract Document)"},
	{"انتقال", "Intiqal (Mutation/Transfer Record)"},
	{"گردوری", "Girdawari (Crop Inspection Record)"},
	{"سجرہ", "Shajra (Village Map)"},
	{"خطونی", "Khatoni (Ownership Record)"},
	{"لال کتاب", "Lal Kitab (Red Book/Village Register)"},

	// Land identification
	{"خسرہ نمبر", "Khasra Number (Plot ID)"},
	{"خسرہ", "Khasra (Plot)"},
	{"کھاتہ نمبر", "Khata Number (Account Number)"},
	{"موضع", "Mauza (Village)"},
	{"پٹواری حلقہ", "Patwari Halqa (Revenue Circle)"},
	{"تحصیل", "Tehsil (Sub-district)"},
	{"ضلع", "District"},
	{"صوبہ", "Province/State"},

	// Ownership and possession
	{"مالک", "Owner (Malik)"},
	{"قابض", "Possessor (Qabiz)"},
	{"مالکان", "Owners (Plural)"},
	{"حقدار", "Rightful Claimant"},
	{"وارث", "Heir/Inheritor"},
	{"وراثت", "Inheritance"},
	{"ہبہ", "Gift (Hiba)"},
	{"بیع", "Sale (Bai)"},
	{"رہن", "Mortgage (Rahn)"},
	{"پٹہ", "Lease (Patta)"},
	{"کرایہ دار", "Tenant"},
	{"مستاجر", "Lessee"},
	{"مجرا", "Lessor"},

	// Measurement units
	{"کنال", "Kanal (505.857 sq meters)"},
	{"مرلہ", "Marla (25.29 sq meters)"},
	{"رقبہ", "Area (Raqba)"},
	{"بیگھہ", "Bigha (Land Unit)"},
	{"بسوانسی", "Biswansi (1/20 Biswa)"},
	{"بسوا", "Biswa (1/20 Bigha)"},
	{"ایکڑ", "Acre"},
	{"ہیکٹر", "Hectare"},
	{"گز", "Gaz/Yard"},
	{"فٹ", "Foot/Feet"},

	// Land types
	{"زرعی زمین", "Agricultural Land"},
	{"بنجر", "Barren Land"},
	{"آباد", "Cultivated/Inhabited"},
	{"غیر آباد", "Uncultivated"},
	{"چراگاہ", "Grazing Land"},
	{"باغ", "Orchard"},
	{"کھلیان", "Threshing Floor"},
	{"گھر", "House/Dwelling"},
	{"رہائشی", "Residential"},
	{"تجارتی", "Commercial"},
	{"صنعتی", "Industrial"},
	{"شاملات", "Common Land"},
	{"سرکاری زمین", "Government Land"},

	// Administration
	{"مہاجرین", "Muhajir (Refugee) Land"},
	{"پناہ گزین", "Refugee"},
	{"کسٹوڈین", "Custodian Property"},
	{"منتقلی", "Transfer"},
	{"تقسیم", "Partition"},
	{"اکتشا", "Consolidation"},
	{"آباد کار", "Settler/Cultivator"},
	{"نمبردار", "Numberdar (Village Head)"},
	{"لمبردار", "Lambardar (Revenue Collector)"},
	{"پٹواری", "Patwari (Village Record Keeper)"},
	{"تحصیلدار", "Tehsildar (Revenue Officer)"},
	{"ڈی سی", "DC (Deputy Commissioner)"},

	// Revenue
	{"مالیہ", "Land Revenue"},
	{"لگان", "Rent/Tax"},
	{"واجب الارض", "Land Dues"},
	{"بقایا", "Arrears"},
	{"چھوٹ", "Exemption"},
	{"معافی", "Remission"},

	// Legal
	{"دعویٰ", "Claim/Case"},
	{"اعتراض", "Objection"},
	{"فیصلہ", "Decision/Order"},
	{"حکم نامہ", "Decree"},
	{"عدالت", "Court"},
	{"ریونیو کورٹ", "Revenue Court"},
	{"اپیل", "Appeal"},

	// Dates and seasons
	{"سنہ", "Year"},
	{"ماہ", "Month"},
	{"تاریخ", "Date"},
	{"فصل خریف", "Kharif Season (Autumn Harvest)"},
	{"فصل ربیع", "Rabi Season (Spring Harvest)"},

	// Hindi
	{"जमाबंदी", "Jamabandi (Land Revenue Record)"},
	{"खसरा", "Khasra Number (Plot ID)"},
	{"मालिक", "Owner (Malik)"},
	{"खाता", "Account/Khata"},
	{"मौजा", "Mauza (Village)"},
	{"तहसील", "Tehsil"},
	{"जिला", "District"},
	{"रकबा", "Area"},
	{"कनाल", "Kanal"},
	{"मरला", "Marla"},
	{"बीघा", "Bigha"},
	{"एकड़", "Acre"},
	{"वारिस", "Heir"},
	{"विरासत", "Inheritance"},
	{"बिक्री", "Sale"},
	{"गिरवी", "Mortgage"},
	{"पट्टा", "Lease"},
	{"किराएदार", "Tenant"},
	{"कृषि भूमि", "Agricultural Land"},
	{"बंजर", "Barren"},
	{"आबाद", "Cultivated"},
	{"चरागाह", "Grazing Land"},
	{"सरकारी जमीन", "Government Land"},
	{"पटवारी", "Patwari"},
	{"तहसीलदार", "Tehsildar"},
	{"नंबरदार", "Numberdar"},
	{"मालगुजारी", "Land Revenue"},
	{"लगान", "Rent"},
	{"दावा", "Claim"},
	{"आपत्ति", "Objection"},
	{"फैसला", "Decision"},
	{"अदालत", "Court"},

	// Kashmiri place names
	{"کشمیر", "Kashmir"},
	{"جموں", "Jammu"},
	{"سرینگر", "Srinagar"},
	{"وادی", "Valley"},
	{"پہاڑی", "Hilly/Mountain"},
}

var landRecordCategories = []Category{
	{Name: "Document Types", Terms: []string{"Jamabandi", "Fard", "Intiqal", "Girdawari", "Shajra"}},
	{Name: "Land Units", Terms: []string{"Kanal", "Marla", "Bigha", "Acre", "Hectare"}},
	{Name: "Ownership", Terms: []string{"Malik", "Qabiz", "Waris", "Tenant", "Lessee"}},
	{Name: "Administration", Terms: []string{"Patwari", "Tehsildar", "Numberdar", "DC"}},
	{Name: "Land Types", Terms: []string{"Agricultural", "Residential", "Commercial", "Barren"}},
}
