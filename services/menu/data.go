package menu

import "tablebot/models"

// menuPacks is the fixed catalog of per-person menu bundles, in display order.
var menuPacks = []models.MenuPack{
	{
		Key:            "veg",
		NameEN:         "Vegetarian Pack",
		NameTA:         "சைவ பேக்",
		PricePerPerson: 399,
		DescriptionEN:  "Pure veg feast with variety",
		DescriptionTA:  "சுவையான சைவ விருந்து",
		ItemsEN: []string{
			"Paneer Butter Masala", "Dal Makhani", "Veg Biryani",
			"Naan & Tandoori Roti", "Raita & Papad", "Gulab Jamun", "Welcome Drink",
		},
		ItemsTA: []string{
			"பன்னீர் பட்டர் மசாலா", "டால் மக்கனி", "வெஜ் பிரியாணி",
			"நான் & தந்தூரி ரொட்டி", "ரைதா & பாப்பாடு", "குலாப் ஜாமூன்", "வெல்கம் டிரிங்க்",
		},
		RecommendedFor: []string{"casual", "corporate", "kitty"},
		MinPeople:      1,
		Available:      true,
	},
	{
		Key:            "nonveg",
		NameEN:         "Non-Veg Pack",
		NameTA:         "அசைவ பேக்",
		PricePerPerson: 499,
		DescriptionEN:  "Delicious chicken & mutton spread",
		DescriptionTA:  "சுவையான சிக்கன் & மட்டன்",
		ItemsEN: []string{
			"Chicken Tikka", "Mutton Curry", "Chicken Biryani",
			"Butter Naan", "Raita & Salad", "Ice Cream", "Welcome Drink",
		},
		ItemsTA: []string{
			"சிக்கன் டிக்கா", "மட்டன் கறி", "சிக்கன் பிரியாணி",
			"பட்டர் நான்", "ரைதா & சாலட்", "ஐஸ் கிரீம்", "வெல்கம் டிரிங்க்",
		},
		RecommendedFor: []string{"party", "casual", "farewell"},
		MinPeople:      1,
		Available:      true,
	},
	{
		Key:            "premium",
		NameEN:         "Premium Pack",
		NameTA:         "பிரீமியம் பேக்",
		PricePerPerson: 749,
		DescriptionEN:  "Premium selection with live counters",
		DescriptionTA:  "லைவ் கவுண்டர்களுடன் பிரீமியம்",
		ItemsEN: []string{
			"Live Tandoor Counter", "Paneer & Chicken Starters", "Hyderabadi Dum Biryani",
			"Butter Chicken / Paneer", "Dal Tadka & Raita", "Assorted Breads",
			"Dessert Counter", "Mocktails",
		},
		ItemsTA: []string{
			"லைவ் தந்தூர் கவுண்டர்", "பன்னீர் & சிக்கன் ஸ்டார்டர்ஸ்", "ஹைதராபாதி டம் பிரியாணி",
			"பட்டர் சிக்கன் / பன்னீர்", "டால் தட்கா & ரைதா", "அசார்ட்டட் பிரெட்ஸ்",
			"டெசர்ட் கவுண்டர்", "மாக்டெய்ல்ஸ்",
		},
		RecommendedFor: []string{"birthday", "anniversary", "corporate"},
		MinPeople:      1,
		Available:      true,
	},
	{
		Key:            "deluxe",
		NameEN:         "Deluxe Party Pack",
		NameTA:         "டீலக்ஸ் பார்ட்டி பேக்",
		PricePerPerson: 999,
		DescriptionEN:  "Grand celebration feast - all inclusive",
		DescriptionTA:  "பெரிய கொண்டாட்ட விருந்து - அனைத்தும் உள்ளடக்கியது",
		ItemsEN: []string{
			"Welcome Mocktail Counter", "Live Chaat & Tandoor", "10+ Starter Varieties",
			"Veg & Non-Veg Main Course", "Multiple Biryani Options", "Live Pasta Counter",
			"Dessert Buffet", "Special Paan Counter",
		},
		ItemsTA: []string{
			"வெல்கம் மாக்டெய்ல் கவுண்டர்", "லைவ் சாட் & தந்தூர்", "10+ ஸ்டார்டர் வகைகள்",
			"வெஜ் & நான்-வெஜ் மெயின் கோர்ஸ்", "பல பிரியாணி ஆப்ஷன்ஸ்", "லைவ் பாஸ்தா கவுண்டர்",
			"டெசர்ட் பஃபே", "ஸ்பெஷல் பான் கவுண்டர்",
		},
		RecommendedFor: []string{"wedding", "anniversary", "birthday"},
		MinPeople:      1,
		Available:      true,
	},
}

// addons is the fixed catalog of bookable extras, in display order.
var addons = []models.Addon{
	{
		Key: "decoration", NameEN: "Table Decoration", NameTA: "டேபிள் டெகரேஷன்", Price: 1500,
		DescriptionEN: "Beautiful theme-based decoration", DescriptionTA: "அழகான தீம் டெகரேஷன்",
		RecommendedFor: []string{"birthday", "anniversary", "date"}, Available: true,
	},
	{
		Key: "cake", NameEN: "Birthday Cake (1kg)", NameTA: "பிறந்தநாள் கேக் (1kg)", Price: 800,
		DescriptionEN: "Fresh cream cake with custom message", DescriptionTA: "கஸ்டம் மெசேஜ் கேக்",
		RecommendedFor: []string{"birthday"}, Available: true,
	},
	{
		Key: "photography", NameEN: "Photography", NameTA: "போட்டோகிராபி", Price: 2500,
		DescriptionEN: "Professional photographer (2 hours)", DescriptionTA: "புரொபஷனல் போட்டோகிராபர் (2 மணி நேரம்)",
		RecommendedFor: []string{"wedding", "anniversary", "birthday", "corporate"}, Available: true,
	},
	{
		Key: "music_system", NameEN: "Music System", NameTA: "மியூசிக் சிஸ்டம்", Price: 1000,
		DescriptionEN: "Bluetooth speaker with mic", DescriptionTA: "மைக் உடன் ஸ்பீக்கர்",
		RecommendedFor: []string{"party", "birthday", "farewell"}, Available: true,
	},
	{
		Key: "dj", NameEN: "DJ Setup", NameTA: "DJ செட்அப்", Price: 5000,
		DescriptionEN: "Professional DJ with lights", DescriptionTA: "லைட்ஸ் உடன் புரொபஷனல் DJ",
		RecommendedFor: []string{"wedding", "party", "birthday"}, Available: true,
	},
	{
		Key: "flowers", NameEN: "Flower Arrangement", NameTA: "பூ அலங்காரம்", Price: 1200,
		DescriptionEN: "Fresh flower bouquet & table pieces", DescriptionTA: "ஃப்ரெஷ் பூ புக்கே & டேபிள் பீஸ்",
		RecommendedFor: []string{"anniversary", "date", "wedding"}, Available: true,
	},
	{
		Key: "balloons", NameEN: "Balloon Decoration", NameTA: "பலூன் டெகரேஷன்", Price: 800,
		DescriptionEN: "Colorful balloon arch & bunches", DescriptionTA: "கலர்ஃபுல் பலூன் ஆர்ச்",
		RecommendedFor: []string{"birthday"}, Available: true,
	},
	{
		Key: "projector", NameEN: "Projector & Screen", NameTA: "புரொஜெக்டர் & ஸ்கிரீன்", Price: 500,
		DescriptionEN: "For presentations & slideshows", DescriptionTA: "பிரசன்டேஷன்ஸ் & ஸ்லைட்ஷோஸுக்கு",
		RecommendedFor: []string{"corporate"}, Available: true,
	},
}

// eventRecommendations maps an event type to the menu and addons a waiter
// would suggest for it.
var eventRecommendations = map[string]models.EventRecommendation{
	"birthday": {
		Menu: "premium", Addons: []string{"decoration", "cake", "balloons", "music_system"},
		MessageEN: "For birthday, I suggest Premium Pack with cake & decoration. Your guests will love it!",
		MessageTA: "Birthday-க்கு Premium Pack with cake & decoration suggest பண்றேன். உங்க guest-ஸ் love பண்ணுவாங்க!",
	},
	"anniversary": {
		Menu: "premium", Addons: []string{"decoration", "flowers", "photography"},
		MessageEN: "Anniversary special! Premium Pack with flowers & romantic decoration creates magic!",
		MessageTA: "Anniversary special! Premium Pack with flowers & romantic decoration magic create பண்ணும்!",
	},
	"corporate": {
		Menu: "premium", Addons: []string{"projector"},
		MessageEN: "For corporate events, Premium Pack is perfect. Need projector for presentations?",
		MessageTA: "Corporate events-க்கு Premium Pack perfect. Presentations-க்கு projector வேண்டுமா?",
	},
	"wedding": {
		Menu: "deluxe", Addons: []string{"decoration", "flowers", "photography", "music_system"},
		MessageEN: "Wedding calls for Deluxe Pack! Grand celebration deserves the best!",
		MessageTA: "Wedding-க்கு Deluxe Pack! Grand celebration-க்கு best வேண்டும்!",
	},
	"party": {
		Menu: "nonveg", Addons: []string{"music_system", "decoration"},
		MessageEN: "Party time! Non-Veg Pack with music will get everyone grooving!",
		MessageTA: "Party time! Non-Veg Pack with music-ல எல்லாரும் enjoy பண்ணுவாங்க!",
	},
	"casual": {
		Menu: "veg", Addons: nil,
		MessageEN: "Simple and tasty - our Veg Pack is perfect for casual dining!",
		MessageTA: "Simple & tasty - Veg Pack casual dining-க்கு perfect!",
	},
	"date": {
		Menu: "premium", Addons: []string{"decoration", "flowers"},
		MessageEN: "Romantic date! Premium Pack with candle-light setup. We'll make it special!",
		MessageTA: "Romantic date! Premium Pack with candle-light setup. Special-ஆ arrange பண்றோம்!",
	},
	"farewell": {
		Menu: "nonveg", Addons: []string{"cake", "music_system"},
		MessageEN: "Send-off in style! Non-Veg Pack with cake & music for memories!",
		MessageTA: "Style-ல send-off! Non-Veg Pack with cake & music - நல்ல memories-க்கு!",
	},
	"kitty": {
		Menu: "veg", Addons: []string{"decoration"},
		MessageEN: "Ladies special! Our Veg Pack is a crowd favorite at kitty parties!",
		MessageTA: "Ladies special! Veg Pack kitty parties-ல crowd favorite!",
	},
}
