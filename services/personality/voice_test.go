package personality

import (
	"math/rand"
	"strings"
	"testing"

	"tablebot/config"
	"tablebot/models"
)

func newTestVoice() *Voice {
	return NewVoice(config.Config{
		BotName:            "Server Sundharam",
		RestaurantName:     "Royal Chef's Restaurant",
		RestaurantLocation: "T Nagar, Chennai",
		RestaurantPhone:    "+91-9876543210",
		RestaurantTimings:  "11 AM - 11 PM",
		ParkingInfo:        "Free valet parking available, sir!",
	}, rand.New(rand.NewSource(1)))
}

func TestGreetingFillsIdentity(t *testing.T) {
	v := newTestVoice()

	got := v.Greeting(models.LangEnglish)
	if !strings.Contains(got, "Server Sundharam") {
		t.Fatalf("greeting should name the bot, got %q", got)
	}
	if strings.Contains(got, "{") {
		t.Fatalf("unfilled placeholder left in %q", got)
	}
}

func TestPickFallsBackToEnglish(t *testing.T) {
	v := newTestVoice()

	got := v.AskName("fr")
	if got == "" {
		t.Fatal("unknown language should fall back to english, not empty")
	}
}

func TestCrossAnswerParking(t *testing.T) {
	v := newTestVoice()

	got, ok := v.CrossAnswer(models.LangEnglish, "parking")
	if !ok {
		t.Fatal("parking topic should have an answer")
	}
	if !strings.Contains(got, "Free valet parking") {
		t.Fatalf("parking answer should quote the parking info, got %q", got)
	}

	if _, ok := v.CrossAnswer(models.LangEnglish, "swimming_pool"); ok {
		t.Fatal("unknown topic must report no answer")
	}
}

func TestTooManyGuestsQuotesPhone(t *testing.T) {
	v := newTestVoice()

	got := v.TooManyGuests(models.LangEnglish, 200)
	if !strings.Contains(got, "200") || !strings.Contains(got, "+91-9876543210") {
		t.Fatalf("capacity message should include limit and phone, got %q", got)
	}
}

func TestSeededVoiceIsDeterministic(t *testing.T) {
	a := newTestVoice()
	b := newTestVoice()

	for i := 0; i < 10; i++ {
		if a.Greeting(models.LangEnglish) != b.Greeting(models.LangEnglish) {
			t.Fatal("same seed must produce the same phrase sequence")
		}
	}
}

func TestTamilVariantsExist(t *testing.T) {
	v := newTestVoice()

	en := v.AskPeople(models.LangEnglish)
	ta := v.AskPeople(models.LangTamil)
	if en == "" || ta == "" {
		t.Fatal("both languages should have ask-people copy")
	}
}
