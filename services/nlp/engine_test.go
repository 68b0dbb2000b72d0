package nlp

import (
	"testing"
	"time"

	"tablebot/models"
)

// Saturday, 20 Dec 2025.
var testNow = func() time.Time {
	return time.Date(2025, 12, 20, 10, 0, 0, 0, time.Local)
}

func TestDetectBookingWithEntities(t *testing.T) {
	e := NewEngineAt(testNow)

	result := e.Detect("book a table for 4 tomorrow at 7pm", models.LangEnglish)
	if result.PrimaryIntent != models.IntentBooking {
		t.Fatalf("intent = %s, want %s", result.PrimaryIntent, models.IntentBooking)
	}
	if result.Entities.People != 4 {
		t.Fatalf("people = %d, want 4", result.Entities.People)
	}
	if result.Entities.ParsedDate != "21-12-2025" {
		t.Fatalf("date = %q, want 21-12-2025", result.Entities.ParsedDate)
	}
	if result.Entities.ParsedTime != "7:00 PM" {
		t.Fatalf("time = %q, want 7:00 PM", result.Entities.ParsedTime)
	}
}

func TestEntitiesAloneBecomeBookingInfo(t *testing.T) {
	e := NewEngineAt(testNow)

	result := e.Detect("4 people tomorrow", models.LangEnglish)
	if result.PrimaryIntent != models.IntentBookingInfo {
		t.Fatalf("intent = %s, want %s", result.PrimaryIntent, models.IntentBookingInfo)
	}
}

func TestCancelBeatsBooking(t *testing.T) {
	e := NewEngineAt(testNow)

	result := e.Detect("cancel my booking", models.LangEnglish)
	if result.PrimaryIntent != models.IntentCancel {
		t.Fatalf("intent = %s, want %s", result.PrimaryIntent, models.IntentCancel)
	}
}

func TestExtractDate(t *testing.T) {
	e := NewEngineAt(testNow)

	cases := []struct {
		in   string
		want string
	}{
		{"tomorrow", "21-12-2025"},
		{"day after tomorrow", "22-12-2025"},
		{"today", "20-12-2025"},
		{"monday", "22-12-2025"},
		{"next monday", "29-12-2025"},
		{"25-12-25", "25-12-2025"},
		{"25/12/2025", "25-12-2025"},
		{"32-13-2025", ""},
		{"no date here", ""},
	}
	for _, c := range cases {
		_, got := e.extractDate(c.in)
		if got != c.want {
			t.Errorf("extractDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"7pm", "7:00 PM"},
		{"7:30 pm", "7:30 PM"},
		{"at 7", "7:00 PM"},
		{"11", "11:00 AM"},
		{"evening 5pm", "5:00 PM"},
		{"evening", "7:00 PM"},
		{"dinner time", "8:00 PM"},
		{"no time here", ""},
	}
	for _, c := range cases {
		_, got := extractTime(c.in)
		if got != c.want {
			t.Errorf("extractTime(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBareNumberNotTimeWhenDateLike(t *testing.T) {
	if _, got := extractTime("25-12-2025"); got != "" {
		t.Fatalf("date-like input must not parse as a time, got %q", got)
	}
}

func TestExtractPeople(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"table for 4", 4},
		{"6 guests", 6},
		{"party of ten", 10},
		{"300", 300},
		{"we are five", 5},
		{"no count", 0},
	}
	for _, c := range cases {
		if got := extractPeople(c.in); got != c.want {
			t.Errorf("extractPeople(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestExtractName(t *testing.T) {
	if got := extractName("my name is kumar"); got != "Kumar" {
		t.Fatalf("extractName = %q, want Kumar", got)
	}
	if got := extractName("i am ravi shankar"); got != "Ravi Shankar" {
		t.Fatalf("extractName = %q, want Ravi Shankar", got)
	}
}

func TestLanguageSwitchDetection(t *testing.T) {
	e := NewEngineAt(testNow)

	result := e.Detect("tamil please", models.LangEnglish)
	if result.PrimaryIntent != models.IntentLanguageSwitch || result.SwitchTo != models.LangTamil {
		t.Fatalf("got (%s, %q), want language switch to ta", result.PrimaryIntent, result.SwitchTo)
	}

	// Longer sentences mentioning the language are not switch commands.
	result = e.Detect("my friend speaks tamil at home every day", models.LangEnglish)
	if result.PrimaryIntent == models.IntentLanguageSwitch {
		t.Fatal("long sentence must not trigger a language switch")
	}
}

func TestDetectLanguage(t *testing.T) {
	e := NewEngineAt(testNow)

	if r := e.Detect("வணக்கம்", models.LangEnglish); r.LanguageDetected != models.LangTamil {
		t.Fatalf("tamil script detected as %q", r.LanguageDetected)
	}
	if r := e.Detect("table venum bro", models.LangEnglish); r.LanguageDetected != models.LangTamil {
		t.Fatalf("tanglish detected as %q", r.LanguageDetected)
	}
	if r := e.Detect("hello there", models.LangEnglish); r.LanguageDetected != models.LangEnglish {
		t.Fatalf("english detected as %q", r.LanguageDetected)
	}
}

func TestCrossTopic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"do you have parking", "parking"},
		{"is there wifi", "wifi"},
		{"do you serve biryani", "biryani"},
		{"any play area for kids", "kids_area"},
		{"book a table", ""},
	}
	for _, c := range cases {
		if got := CrossTopic(c.in); got != c.want {
			t.Errorf("CrossTopic(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractAddons(t *testing.T) {
	got := extractAddons("cake and decoration with dj")
	want := map[string]bool{"cake": true, "decoration": true, "dj": true}
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 addons", got)
	}
	for _, a := range got {
		if !want[a] {
			t.Errorf("unexpected addon %q", a)
		}
	}
}
