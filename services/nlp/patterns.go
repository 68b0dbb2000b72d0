package nlp

import "regexp"

// Intent pattern groups, checked in the priority order wired in engine.go.
// English, Tamil script, and Tanglish transliterations all match.

var greetingPatterns = compile(
	`\b(hi|hello|hey|hii+|hai|helo|hola|yo)\b`,
	`\b(good\s*(morning|afternoon|evening|night))\b`,
	`\b(vanakkam|vannakam|வணக்கம்)\b`,
	`\b(bro|macha|machaa|dei|da|di|anna|bhai)\b`,
	`\b(namaste|namaskar)\b`,
)

var bookingPatterns = compile(
	`\b(book|booking|reserve|reservation|table)\b`,
	`\b(need|want|looking\s+for)\s+(a\s+)?(table|seat|place)\b`,
	`\b(arrange|plan|setup)\b.*\b(table|party|event)\b`,
	`\bbook\s*pann[ua]?\b`,
	`\b(table|seat)\s+(for|வேணும்|venum)\b`,
)

var menuPatterns = compile(
	`\b(menu|food|dish|item|eat|cuisine)\b`,
	`\b(what|show|see)\s+(do\s+you\s+)?(have|serve|offer)\b`,
	`\b(price|cost|rate|charge)\b`,
	`\b(veg|nonveg|non-veg|vegetarian)\b`,
	`\b(biryani|biriyani|chicken|mutton|fish|paneer)\b`,
	`\b(sapadu|சாப்பாடு|saapad|உணவு)\b`,
)

var offerPatterns = compile(
	`\b(offer|discount|deal|promo|coupon)\b`,
	`\b(offer\s+iruk|discount\s+iruk)\b`,
	`\b(special|combo)\s+(offer|price)\b`,
)

var locationPatterns = compile(
	`\b(where|location|address|place|area|direction)\b`,
	`\b(enga|எங்க|enge)\b`,
	`\b(how\s+to\s+(reach|come|get))\b`,
)

var timingPatterns = compile(
	`\b(timing|time|hour|open|close|when)\b`,
	`\b(eppo|எப்போ|eppudi)\b`,
	`\b(working\s+hours?|business\s+hours?)\b`,
)

var parkingPatterns = compile(
	`\b(parking|park|car|vehicle|bike)\b`,
	`\b(free\s+parking|valet)\b`,
)

var facilityPatterns = compile(
	`\b(ac|air\s*condition|cool)\b`,
	`\b(wifi|wi-fi|internet)\b`,
	`\b(kids?|child|children|play\s*area)\b`,
	`\b(outdoor|garden|terrace)\b`,
	`\b(projector|screen|presentation)\b`,
	`\b(private|separate)\s+(room|hall|area)\b`,
)

var helpPatterns = compile(
	`\b(help|assist|support|guide)\b`,
	`\b(what\s+can\s+you\s+do)\b`,
	`\b(options?|features?)\b`,
)

var cancelPatterns = compile(
	`\b(cancel|stop|quit|exit|abort)\b`,
	`\b(don'?t\s+want|no\s+need|forget\s+it)\b`,
	`\b(venda|வேண்டாம்)\b`,
)

var restartPatterns = compile(
	`\b(restart|reset|start\s*over|begin\s*again|fresh\s*start)\b`,
	`\b(from\s+beginning|pudhusu)\b`,
)

var confirmPatterns = compile(
	`\b(yes|yeah|yep|yup|sure|ok|okay|fine|correct|right)\b`,
	`\b(confirm|proceed|go\s*ahead|done)\b`,
	`\b(sari|சரி|ama|ஆமா|aama)\b`,
)

var denyPatterns = compile(
	`\b(no|nope|nah|never|wrong|incorrect)\b`,
	`\b(illa|இல்ல|illai|வேண்டாம்)\b`,
	`\b(change|modify|edit|different)\b`,
)

var languageSwitchPatterns = map[string][]*regexp.Regexp{
	"ta": compile(`\b(tamil|தமிழ்|tamizh)\b`),
	"en": compile(`\b(english|eng|inglish)\b`),
}

// numberWords maps spelled-out counts to digits.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "fifteen": 15, "twenty": 20,
	"twenty-five": 25, "thirty": 30, "forty": 40, "fifty": 50,
	"hundred": 100,
}

// dateWords maps relative date phrases to day offsets from today. Longer
// phrases are checked before their prefixes.
var dateWords = []struct {
	word   string
	offset int
}{
	{"day after tomorrow", 2},
	{"day after", 2},
	{"tomorrow", 1},
	{"today", 0},
	{"naalai", 1},
	{"naale", 1},
	{"நாளை", 1},
	{"indru", 0},
	{"inniku", 0},
	{"இன்று", 0},
}

var dayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// timeWords maps fuzzy time-of-day words to a concrete slot time.
var timeWords = []struct {
	word  string
	value string
}{
	{"morning", "10:00 AM"},
	{"noon", "12:00 PM"},
	{"afternoon", "2:00 PM"},
	{"evening", "7:00 PM"},
	{"night", "8:00 PM"},
	{"dinner", "8:00 PM"},
	{"lunch", "1:00 PM"},
	{"breakfast", "9:00 AM"},
	{"kaalai", "10:00 AM"},
	{"மாலை", "7:00 PM"},
	{"malai", "7:00 PM"},
	{"iravu", "8:00 PM"},
	{"இரவு", "8:00 PM"},
}

var eventKeywords = []struct {
	event    string
	keywords []string
}{
	{"birthday", []string{"birthday", "bday", "b'day", "pirandha", "பிறந்தநாள்"}},
	{"anniversary", []string{"anniversary", "anni", "wedding anniversary"}},
	{"corporate", []string{"corporate", "office", "meeting", "business", "conference", "team"}},
	{"wedding", []string{"wedding", "marriage", "reception", "engagement", "kalyanam", "திருமணம்"}},
	{"party", []string{"party", "celebration", "get-together", "get together", "gathering"}},
	{"date", []string{"date night", "romantic", "couple", "candle light"}},
	{"casual", []string{"casual", "family", "friends", "outing", "dinner", "lunch"}},
	{"farewell", []string{"farewell", "send-off", "goodbye"}},
	{"kitty", []string{"kitty", "kitty party", "ladies"}},
}

var menuKeywords = []struct {
	pack     string
	keywords []string
}{
	{"veg", []string{"veg", "vegetarian", "pure veg", "saiva", "சைவம்"}},
	{"nonveg", []string{"nonveg", "non-veg", "non veg", "chicken", "mutton", "fish", "asaiva"}},
	{"premium", []string{"premium", "special", "best", "top"}},
	{"deluxe", []string{"deluxe", "grand", "full", "complete", "party pack"}},
}

var addonKeywords = []struct {
	addon    string
	keywords []string
}{
	{"decoration", []string{"decoration", "decor", "decorate", "decorations"}},
	{"cake", []string{"cake", "birthday cake", "pastry"}},
	{"photography", []string{"photography", "photo", "photographer", "camera"}},
	{"music_system", []string{"music", "songs", "music system"}},
	{"dj", []string{"dj"}},
	{"flowers", []string{"flowers", "flower", "bouquet", "garland"}},
	{"balloons", []string{"balloons", "balloon", "balloon decoration"}},
	{"projector", []string{"projector"}},
}

// tanglishWords are transliterated Tamil words that flag Tamil input even
// without Tamil script.
var tanglishWords = []string{
	"iruku", "panna", "venum", "illa", "sari", "romba",
	"nalla", "enna", "eppo", "enga", "yen", "appa",
}

var (
	tamilScriptRe = regexp.MustCompile(`[\x{0B80}-\x{0BFF}]`)

	peopleRes = compile(
		`(?:for|table\s+for)\s+(\d+)`,
		`(\d+)\s*(?:people|guests|persons|pax|பேர்|per)`,
		`(?:party\s+of|group\s+of)\s+(\d+)`,
		`(\d+)\s*(?:of\s+us|members)`,
	)
	standaloneNumRe = regexp.MustCompile(`^(\d+)\b|\b(\d+)$`)

	explicitDateRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

	explicitTimeRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)`)
	// Bare numbers count as times only after "at" or as the whole message,
	// so "table for 4 tomorrow" never reads 4 as a clock time.
	atTimeRe   = regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?::(\d{2}))?\b`)
	loneNumRe  = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*$`)
	dateLikeRe = regexp.MustCompile(`\d{1,2}[/-]\d`)

	nameRes = compile(
		`(?:my\s+name\s+is|name\s+is|i\s+am|i'm|this\s+is|naan|en\s+peru)\s+([a-zA-Z]{2,}(?:\s+[a-zA-Z]{2,})?)`,
	)
)

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}
