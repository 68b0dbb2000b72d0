package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tablebot/models"
)

// Engine turns a raw chat message into an intent plus extracted entities
// using lexical pattern matching. The clock is injected so relative dates
// ("tomorrow", "next saturday") are testable.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an Engine on the real clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt returns an Engine with a custom clock for tests.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Detect classifies a message and extracts every entity it can find.
// Intent checks run in priority order so that "cancel" beats "booking"
// even when both words appear.
func (e *Engine) Detect(text, currentLang string) models.IntentResult {
	lower := strings.ToLower(strings.TrimSpace(text))

	if lang := detectLanguageSwitch(lower); lang != "" {
		return models.IntentResult{
			PrimaryIntent:    models.IntentLanguageSwitch,
			Confidence:       1.0,
			RawText:          text,
			LanguageDetected: lang,
			SwitchTo:         lang,
		}
	}

	result := models.IntentResult{
		PrimaryIntent:    models.IntentUnknown,
		RawText:          text,
		LanguageDetected: detectLanguage(lower),
	}

	checks := []struct {
		intent   models.Intent
		patterns []*regexp.Regexp
	}{
		{models.IntentCancel, cancelPatterns},
		{models.IntentRestart, restartPatterns},
		{models.IntentConfirm, confirmPatterns},
		{models.IntentDeny, denyPatterns},
		{models.IntentGreeting, greetingPatterns},
		{models.IntentHelp, helpPatterns},
		{models.IntentMenuQuery, menuPatterns},
		{models.IntentOffersQuery, offerPatterns},
		{models.IntentParkingQuery, parkingPatterns},
		{models.IntentTimingQuery, timingPatterns},
		{models.IntentLocationQuery, locationPatterns},
		{models.IntentFacilityQuery, facilityPatterns},
		{models.IntentBooking, bookingPatterns},
	}

	for _, check := range checks {
		if matchesAny(lower, check.patterns) {
			if result.PrimaryIntent == models.IntentUnknown {
				result.PrimaryIntent = check.intent
				result.Confidence = 0.8
			} else {
				result.SecondaryIntents = append(result.SecondaryIntents, check.intent)
			}
		}
	}

	result.Entities = e.extractEntities(lower)

	if result.PrimaryIntent == models.IntentUnknown && result.Entities.HasBookingData() {
		result.PrimaryIntent = models.IntentBookingInfo
		result.Confidence = 0.7
	}
	if result.PrimaryIntent == models.IntentUnknown {
		result.Confidence = 0.3
	}

	result.CrossTopic = CrossTopic(lower)
	return result
}

func (e *Engine) extractEntities(lower string) models.ExtractedEntities {
	var ent models.ExtractedEntities

	ent.People = extractPeople(lower)
	ent.DateText, ent.ParsedDate = e.extractDate(lower)
	ent.TimeText, ent.ParsedTime = extractTime(lower)
	ent.EventType = extractByKeywords(lower, eventKeywords)
	ent.MenuChoice = extractMenu(lower)
	ent.Addons = extractAddons(lower)
	ent.Name = extractName(lower)

	found := 0
	if ent.People > 0 {
		found++
	}
	if ent.ParsedDate != "" {
		found++
	}
	if ent.ParsedTime != "" {
		found++
	}
	if ent.EventType != "" {
		found++
	}
	ent.Confidence = float64(found) * 0.25
	if ent.Confidence > 1.0 {
		ent.Confidence = 1.0
	}
	return ent
}

// extractPeople pulls a party size out of phrases like "table for 4",
// "6 guests", "party of ten", or a standalone number. Values above 999 are
// ignored as noise; the dialogue engine enforces the real capacity limit.
func extractPeople(lower string) int {
	for _, re := range peopleRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 999 {
				return n
			}
		}
	}
	for word, n := range numberWords {
		if regexp.MustCompile(`\b` + word + `\b`).MatchString(lower) {
			return n
		}
	}
	if m := standaloneNumRe.FindStringSubmatch(lower); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 999 {
			return n
		}
	}
	return 0
}

// extractDate handles relative words, weekday names, and explicit
// D-M-Y / D/M/Y dates. Returns (raw text, DD-MM-YYYY).
func (e *Engine) extractDate(lower string) (string, string) {
	today := e.now()

	for _, dw := range dateWords {
		if strings.Contains(lower, dw.word) {
			target := today.AddDate(0, 0, dw.offset)
			return dw.word, target.Format("02-01-2006")
		}
	}

	// Monday = 0 to line up with dayNames.
	currentDay := (int(today.Weekday()) + 6) % 7
	for i, day := range dayNames {
		if regexp.MustCompile(`\bnext\s+` + day + `\b`).MatchString(lower) {
			ahead := i - currentDay
			if ahead <= 0 {
				ahead += 7
			}
			target := today.AddDate(0, 0, ahead+7)
			return "next " + day, target.Format("02-01-2006")
		}
		if regexp.MustCompile(`\b(this\s+)?`+day+`\b`).MatchString(lower) {
			ahead := i - currentDay
			if ahead <= 0 {
				ahead += 7
			}
			target := today.AddDate(0, 0, ahead)
			return day, target.Format("02-01-2006")
		}
	}

	if m := explicitDateRe.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		yearStr := m[3]
		if len(yearStr) == 2 {
			yearStr = "20" + yearStr
		}
		year, _ := strconv.Atoi(yearStr)
		if validCalendarDate(year, month, day) {
			return m[0], fmt.Sprintf("%02d-%02d-%04d", day, month, year)
		}
	}

	return "", ""
}

func validCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// extractTime checks explicit clock times first so "evening 5pm" keeps the
// 5pm, then bare numbers (PM assumed for 1-10, AM for 11-12), then fuzzy
// time-of-day words. Returns (raw text, "H:MM AM/PM").
func extractTime(lower string) (string, string) {
	if m := explicitTimeRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := m[2]
		if minute == "" {
			minute = "00"
		}
		period := strings.ReplaceAll(strings.ToLower(m[3]), ".", "")
		if hour > 12 {
			hour -= 12
			period = "pm"
		}
		return m[0], fmt.Sprintf("%d:%s %s", hour, minute, strings.ToUpper(period))
	}

	if !dateLikeRe.MatchString(lower) {
		m := atTimeRe.FindStringSubmatch(lower)
		if m == nil {
			m = loneNumRe.FindStringSubmatch(lower)
		}
		if m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute := m[2]
			if minute == "" {
				minute = "00"
			}
			if hour >= 1 && hour <= 12 {
				period := "PM"
				if hour >= 11 {
					period = "AM"
				}
				return m[0], fmt.Sprintf("%d:%s %s", hour, minute, period)
			}
		}
	}

	for _, tw := range timeWords {
		if strings.Contains(lower, tw.word) {
			return tw.word, tw.value
		}
	}
	return "", ""
}

func extractByKeywords(lower string, table []struct {
	event    string
	keywords []string
}) string {
	for _, entry := range table {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.event
			}
		}
	}
	return ""
}

func extractMenu(lower string) string {
	for _, entry := range menuKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.pack
			}
		}
	}
	return ""
}

func extractAddons(lower string) []string {
	var out []string
	for _, entry := range addonKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, entry.addon)
				break
			}
		}
	}
	return out
}

func extractName(lower string) string {
	for _, re := range nameRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			return strings.Title(strings.TrimSpace(m[1]))
		}
	}
	return ""
}

func matchesAny(lower string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// detectLanguageSwitch reports a requested language when the whole message
// is a short switch command like "tamil please".
func detectLanguageSwitch(lower string) string {
	if len(strings.Fields(lower)) > 3 {
		return ""
	}
	for lang, patterns := range languageSwitchPatterns {
		if matchesAny(lower, patterns) {
			return lang
		}
	}
	return ""
}

// detectLanguage picks Tamil on any Tamil script character or known
// transliteration word, English otherwise.
func detectLanguage(lower string) string {
	if tamilScriptRe.MatchString(lower) {
		return models.LangTamil
	}
	for _, word := range tanglishWords {
		if strings.Contains(lower, word) {
			return models.LangTamil
		}
	}
	return models.LangEnglish
}

// CrossTopic detects a side question asked mid-booking (parking, timings,
// specific dishes, facilities) and names the answer topic.
func CrossTopic(text string) string {
	lower := strings.ToLower(text)

	for _, item := range []string{"biryani", "biriyani"} {
		if strings.Contains(lower, item) {
			return "biryani"
		}
	}

	if matchesAny(lower, facilityPatterns) {
		switch {
		case strings.Contains(lower, "ac") || strings.Contains(lower, "air"):
			return "ac"
		case strings.Contains(lower, "kid") || strings.Contains(lower, "child") || strings.Contains(lower, "play"):
			return "kids_area"
		case strings.Contains(lower, "wifi"):
			return "wifi"
		case strings.Contains(lower, "outdoor") || strings.Contains(lower, "garden"):
			return "outdoor"
		case strings.Contains(lower, "projector"):
			return "projector"
		}
	}

	topics := []struct {
		topic    string
		patterns []*regexp.Regexp
	}{
		{"parking", parkingPatterns},
		{"timing", timingPatterns},
		{"location", locationPatterns},
		{"offers", offerPatterns},
	}
	for _, t := range topics {
		if matchesAny(lower, t.patterns) {
			return t.topic
		}
	}
	return ""
}
