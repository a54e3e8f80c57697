// internal/domain/catalog/data.go
package catalog

var defaultCategories = []Category{
	{
		ID:   "electronics",
		Name: "Electronics",
		Icon: IconSmartphone,
		Subcategories: []string{
			"Phones & Tablets",
			"Computers & Laptops",
			"TVs & Audio",
			"Cameras & Photography",
			"Gaming Consoles",
			"Smart Watches",
			"Headphones & Earbuds",
			"Accessories & Cables",
			"Home Appliances",
			"Security Systems",
		},
	},
	{
		ID:   "gaming",
		Name: "Video Games",
		Icon: IconGamepad,
		Subcategories: []string{
			"PlayStation Games",
			"Xbox Games",
			"Nintendo Games",
			"PC Games",
			"Mobile Games",
			"Gaming Accessories",
			"Controllers & Joysticks",
			"Gaming Chairs",
			"VR Headsets",
			"Retro Games & Consoles",
		},
	},
	{
		ID:   "vehicles",
		Name: "Vehicles",
		Icon: IconCar,
		Subcategories: []string{
			"Cars",
			"Motorcycles & Scooters",
			"Trucks & Commercial",
			"Buses & Minibuses",
			"Bicycles",
			"Auto Parts & Accessories",
			"Tires & Wheels",
			"Car Audio & Electronics",
			"Boats & Marine",
			"Heavy Equipment",
		},
	},
	{
		ID:   "property",
		Name: "Real Estate",
		Icon: IconHome,
		Subcategories: []string{
			"Houses for Sale",
			"Apartments for Sale",
			"Houses for Rent",
			"Apartments for Rent",
			"Land & Plots",
			"Commercial Property",
			"Short Lets",
			"Office Spaces",
			"Warehouses",
			"Event Centers",
		},
	},
	{
		ID:   "fashion",
		Name: "Fashion",
		Icon: IconShirt,
		Subcategories: []string{
			"Men's Clothing",
			"Women's Clothing",
			"Children's Clothing",
			"Shoes & Footwear",
			"Bags & Luggage",
			"Jewelry & Accessories",
			"Watches",
			"Sunglasses",
			"Traditional Wear",
			"Vintage & Thrift",
		},
	},
	{
		ID:   "jobs",
		Name: "Jobs",
		Icon: IconBriefcase,
		Subcategories: []string{
			"Full-time Jobs",
			"Part-time Jobs",
			"Contract & Temporary",
			"Internships",
			"Remote Work",
			"Sales & Marketing",
			"IT & Technology",
			"Healthcare",
			"Education & Training",
			"Customer Service",
		},
	},
	{
		ID:   "services",
		Name: "Services",
		Icon: IconWrench,
		Subcategories: []string{
			"Home Repair & Maintenance",
			"Cleaning Services",
			"Private Lessons & Tutoring",
			"Health & Beauty Services",
			"Building & Construction",
			"Event Planning",
			"Photography & Videography",
			"Transportation Services",
			"Legal Services",
			"Business Services",
		},
	},
	{
		ID:   "furniture",
		Name: "Home & Garden",
		Icon: IconSofa,
		Subcategories: []string{
			"Living Room Furniture",
			"Bedroom Furniture",
			"Kitchen & Dining",
			"Office Furniture",
			"Home Appliances",
			"Garden & Outdoor",
			"Home Decor",
			"Lighting",
			"Storage & Organization",
			"Tools & Hardware",
		},
	},
	{
		ID:   "babies",
		Name: "Babies & Kids",
		Icon: IconBaby,
		Subcategories: []string{
			"Baby Clothes (0-2 years)",
			"Children Clothes (3-12 years)",
			"Toys & Games",
			"Baby Gear & Strollers",
			"Car Seats & Safety",
			"Feeding & Nursing",
			"Baby Furniture",
			"Educational Toys",
			"Sports & Outdoor Play",
			"Books & Learning Materials",
		},
	},
	{
		ID:   "sports",
		Name: "Sports & Fitness",
		Icon: IconDumbbell,
		Subcategories: []string{
			"Gym Equipment",
			"Football & Soccer",
			"Basketball",
			"Tennis & Racquet Sports",
			"Swimming & Water Sports",
			"Cycling",
			"Running & Athletics",
			"Boxing & Martial Arts",
			"Outdoor & Camping",
			"Sports Apparel",
		},
	},
	{
		ID:   "books",
		Name: "Books & Media",
		Icon: IconBook,
		Subcategories: []string{
			"Textbooks & Education",
			"Fiction & Literature",
			"Business & Finance",
			"Health & Wellness",
			"Children's Books",
			"Religious & Spiritual",
			"DVDs & Movies",
			"Music & CDs",
			"Magazines",
			"E-books & Digital",
		},
	},
	{
		ID:   "pets",
		Name: "Pets & Animals",
		Icon: IconHeart,
		Subcategories: []string{
			"Dogs",
			"Cats",
			"Birds",
			"Fish & Aquarium",
			"Small Pets (Rabbits, etc.)",
			"Pet Food & Supplies",
			"Pet Accessories",
			"Pet Services",
			"Livestock",
			"Pet Health & Veterinary",
		},
	},
}

var defaultLocations = []Location{
	// Abia
	{ID: "aba", Name: "Aba", State: "Abia"},
	{ID: "umuahia", Name: "Umuahia", State: "Abia"},
	{ID: "ohafia", Name: "Ohafia", State: "Abia"},
	{ID: "arochukwu", Name: "Arochukwu", State: "Abia"},

	// Adamawa
	{ID: "yola", Name: "Yola", State: "Adamawa"},
	{ID: "jimeta", Name: "Jimeta", State: "Adamawa"},
	{ID: "mubi", Name: "Mubi", State: "Adamawa"},
	{ID: "numan", Name: "Numan", State: "Adamawa"},

	// Akwa Ibom
	{ID: "uyo", Name: "Uyo", State: "Akwa Ibom"},
	{ID: "eket", Name: "Eket", State: "Akwa Ibom"},
	{ID: "ikot-ekpene", Name: "Ikot Ekpene", State: "Akwa Ibom"},
	{ID: "oron", Name: "Oron", State: "Akwa Ibom"},

	// Anambra
	{ID: "onitsha", Name: "Onitsha", State: "Anambra"},
	{ID: "awka", Name: "Awka", State: "Anambra"},
	{ID: "nnewi", Name: "Nnewi", State: "Anambra"},
	{ID: "ekwulobia", Name: "Ekwulobia", State: "Anambra"},

	// Bauchi
	{ID: "bauchi", Name: "Bauchi", State: "Bauchi"},
	{ID: "azare", Name: "Azare", State: "Bauchi"},
	{ID: "misau", Name: "Misau", State: "Bauchi"},
	{ID: "katagum", Name: "Katagum", State: "Bauchi"},

	// Bayelsa
	{ID: "yenagoa", Name: "Yenagoa", State: "Bayelsa"},
	{ID: "brass", Name: "Brass", State: "Bayelsa"},
	{ID: "nembe", Name: "Nembe", State: "Bayelsa"},
	{ID: "ogbia", Name: "Ogbia", State: "Bayelsa"},

	// Benue
	{ID: "makurdi", Name: "Makurdi", State: "Benue"},
	{ID: "otukpo", Name: "Otukpo", State: "Benue"},
	{ID: "gboko", Name: "Gboko", State: "Benue"},
	{ID: "katsina-ala", Name: "Katsina-Ala", State: "Benue"},

	// Borno
	{ID: "maiduguri", Name: "Maiduguri", State: "Borno"},
	{ID: "bama", Name: "Bama", State: "Borno"},
	{ID: "biu", Name: "Biu", State: "Borno"},
	{ID: "gwoza", Name: "Gwoza", State: "Borno"},

	// Cross River
	{ID: "calabar", Name: "Calabar", State: "Cross River"},
	{ID: "ikom", Name: "Ikom", State: "Cross River"},
	{ID: "ogoja", Name: "Ogoja", State: "Cross River"},
	{ID: "obudu", Name: "Obudu", State: "Cross River"},

	// Delta
	{ID: "warri", Name: "Warri", State: "Delta"},
	{ID: "asaba", Name: "Asaba", State: "Delta"},
	{ID: "sapele", Name: "Sapele", State: "Delta"},
	{ID: "ughelli", Name: "Ughelli", State: "Delta"},

	// Ebonyi
	{ID: "abakaliki", Name: "Abakaliki", State: "Ebonyi"},
	{ID: "afikpo", Name: "Afikpo", State: "Ebonyi"},
	{ID: "onueke", Name: "Onueke", State: "Ebonyi"},
	{ID: "unwana", Name: "Unwana", State: "Ebonyi"},

	// Edo
	{ID: "benin-city", Name: "Benin City", State: "Edo"},
	{ID: "auchi", Name: "Auchi", State: "Edo"},
	{ID: "ekpoma", Name: "Ekpoma", State: "Edo"},
	{ID: "uromi", Name: "Uromi", State: "Edo"},

	// Ekiti
	{ID: "ado-ekiti", Name: "Ado Ekiti", State: "Ekiti"},
	{ID: "ikere", Name: "Ikere", State: "Ekiti"},
	{ID: "ijero", Name: "Ijero", State: "Ekiti"},
	{ID: "oye", Name: "Oye", State: "Ekiti"},

	// Enugu
	{ID: "enugu", Name: "Enugu", State: "Enugu"},
	{ID: "nsukka", Name: "Nsukka", State: "Enugu"},
	{ID: "oji-river", Name: "Oji River", State: "Enugu"},
	{ID: "agbani", Name: "Agbani", State: "Enugu"},

	// FCT
	{ID: "abuja", Name: "Abuja", State: "FCT"},
	{ID: "gwagwalada", Name: "Gwagwalada", State: "FCT"},
	{ID: "kuje", Name: "Kuje", State: "FCT"},
	{ID: "bwari", Name: "Bwari", State: "FCT"},

	// Gombe
	{ID: "gombe", Name: "Gombe", State: "Gombe"},
	{ID: "billiri", Name: "Billiri", State: "Gombe"},
	{ID: "kaltungo", Name: "Kaltungo", State: "Gombe"},
	{ID: "kumo", Name: "Kumo", State: "Gombe"},

	// Imo
	{ID: "owerri", Name: "Owerri", State: "Imo"},
	{ID: "orlu", Name: "Orlu", State: "Imo"},
	{ID: "okigwe", Name: "Okigwe", State: "Imo"},
	{ID: "mbaise", Name: "Mbaise", State: "Imo"},

	// Jigawa
	{ID: "dutse", Name: "Dutse", State: "Jigawa"},
	{ID: "hadejia", Name: "Hadejia", State: "Jigawa"},
	{ID: "gumel", Name: "Gumel", State: "Jigawa"},
	{ID: "kazaure", Name: "Kazaure", State: "Jigawa"},

	// Kaduna
	{ID: "kaduna", Name: "Kaduna", State: "Kaduna"},
	{ID: "zaria", Name: "Zaria", State: "Kaduna"},
	{ID: "kafanchan", Name: "Kafanchan", State: "Kaduna"},
	{ID: "sabo-gari", Name: "Sabo Gari", State: "Kaduna"},

	// Kano
	{ID: "kano", Name: "Kano", State: "Kano"},
	{ID: "wudil", Name: "Wudil", State: "Kano"},
	{ID: "bichi", Name: "Bichi", State: "Kano"},
	{ID: "gwarzo", Name: "Gwarzo", State: "Kano"},

	// Katsina
	{ID: "katsina", Name: "Katsina", State: "Katsina"},
	{ID: "funtua", Name: "Funtua", State: "Katsina"},
	{ID: "daura", Name: "Daura", State: "Katsina"},
	{ID: "malumfashi", Name: "Malumfashi", State: "Katsina"},

	// Kebbi
	{ID: "birnin-kebbi", Name: "Birnin Kebbi", State: "Kebbi"},
	{ID: "argungu", Name: "Argungu", State: "Kebbi"},
	{ID: "yauri", Name: "Yauri", State: "Kebbi"},
	{ID: "zuru", Name: "Zuru", State: "Kebbi"},

	// Kogi
	{ID: "lokoja", Name: "Lokoja", State: "Kogi"},
	{ID: "okene", Name: "Okene", State: "Kogi"},
	{ID: "kabba", Name: "Kabba", State: "Kogi"},
	{ID: "idah", Name: "Idah", State: "Kogi"},

	// Kwara
	{ID: "ilorin", Name: "Ilorin", State: "Kwara"},
	{ID: "offa", Name: "Offa", State: "Kwara"},
	{ID: "omu-aran", Name: "Omu Aran", State: "Kwara"},
	{ID: "patigi", Name: "Patigi", State: "Kwara"},

	// Lagos
	{ID: "ikeja", Name: "Ikeja", State: "Lagos"},
	{ID: "lekki", Name: "Lekki", State: "Lagos"},
	{ID: "victoria-island", Name: "Victoria Island", State: "Lagos"},
	{ID: "surulere", Name: "Surulere", State: "Lagos"},

	// Nasarawa
	{ID: "lafia", Name: "Lafia", State: "Nasarawa"},
	{ID: "keffi", Name: "Keffi", State: "Nasarawa"},
	{ID: "akwanga", Name: "Akwanga", State: "Nasarawa"},
	{ID: "nasarawa", Name: "Nasarawa", State: "Nasarawa"},

	// Niger
	{ID: "minna", Name: "Minna", State: "Niger"},
	{ID: "bida", Name: "Bida", State: "Niger"},
	{ID: "suleja", Name: "Suleja", State: "Niger"},
	{ID: "kontagora", Name: "Kontagora", State: "Niger"},

	// Ogun
	{ID: "abeokuta", Name: "Abeokuta", State: "Ogun"},
	{ID: "ijebu-ode", Name: "Ijebu Ode", State: "Ogun"},
	{ID: "sagamu", Name: "Sagamu", State: "Ogun"},
	{ID: "ota", Name: "Ota", State: "Ogun"},

	// Ondo
	{ID: "akure", Name: "Akure", State: "Ondo"},
	{ID: "ondo", Name: "Ondo", State: "Ondo"},
	{ID: "owo", Name: "Owo", State: "Ondo"},
	{ID: "ikare", Name: "Ikare", State: "Ondo"},

	// Osun
	{ID: "osogbo", Name: "Osogbo", State: "Osun"},
	{ID: "ile-ife", Name: "Ile-Ife", State: "Osun"},
	{ID: "ilesa", Name: "Ilesa", State: "Osun"},
	{ID: "ede", Name: "Ede", State: "Osun"},

	// Oyo
	{ID: "ibadan", Name: "Ibadan", State: "Oyo"},
	{ID: "ogbomosho", Name: "Ogbomosho", State: "Oyo"},
	{ID: "oyo", Name: "Oyo", State: "Oyo"},
	{ID: "iseyin", Name: "Iseyin", State: "Oyo"},

	// Plateau
	{ID: "jos", Name: "Jos", State: "Plateau"},
	{ID: "bukuru", Name: "Bukuru", State: "Plateau"},
	{ID: "pankshin", Name: "Pankshin", State: "Plateau"},
	{ID: "shendam", Name: "Shendam", State: "Plateau"},

	// Rivers
	{ID: "port-harcourt", Name: "Port Harcourt", State: "Rivers"},
	{ID: "bonny", Name: "Bonny", State: "Rivers"},
	{ID: "obio-akpor", Name: "Obio-Akpor", State: "Rivers"},
	{ID: "eleme", Name: "Eleme", State: "Rivers"},

	// Sokoto
	{ID: "sokoto", Name: "Sokoto", State: "Sokoto"},
	{ID: "tambuwal", Name: "Tambuwal", State: "Sokoto"},
	{ID: "gwadabawa", Name: "Gwadabawa", State: "Sokoto"},
	{ID: "illela", Name: "Illela", State: "Sokoto"},

	// Taraba
	{ID: "jalingo", Name: "Jalingo", State: "Taraba"},
	{ID: "wukari", Name: "Wukari", State: "Taraba"},
	{ID: "bali", Name: "Bali", State: "Taraba"},
	{ID: "takum", Name: "Takum", State: "Taraba"},

	// Yobe
	{ID: "damaturu", Name: "Damaturu", State: "Yobe"},
	{ID: "potiskum", Name: "Potiskum", State: "Yobe"},
	{ID: "nguru", Name: "Nguru", State: "Yobe"},
	{ID: "gashua", Name: "Gashua", State: "Yobe"},

	// Zamfara
	{ID: "gusau", Name: "Gusau", State: "Zamfara"},
	{ID: "kaura-namoda", Name: "Kaura Namoda", State: "Zamfara"},
	{ID: "anka", Name: "Anka", State: "Zamfara"},
	{ID: "talata-mafara", Name: "Talata Mafara", State: "Zamfara"},
}
