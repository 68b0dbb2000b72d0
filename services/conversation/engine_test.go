package conversation

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"tablebot/config"
	reservationRepo "tablebot/database/repository/reservation"
	"tablebot/models"
	"tablebot/services/menu"
	"tablebot/services/nlp"
	"tablebot/services/personality"
	"tablebot/services/reservation"
	"tablebot/services/session"
	"tablebot/services/slotlock"
)

// Saturday, 20 Dec 2025.
var testNow = func() time.Time {
	return time.Date(2025, 12, 20, 10, 0, 0, 0, time.Local)
}

type testBot struct {
	engine   *Engine
	locker   *slotlock.Locker
	sessions *session.Store
	memory   *session.InMemoryMemoryStore
	service  reservation.ReservationService
}

func newTestBot(t *testing.T) *testBot {
	t.Helper()

	locker := slotlock.NewLockerAt(3*time.Minute, testNow)
	memory := session.NewInMemoryMemoryStore()
	sessions := session.NewStoreAt(15*time.Minute, models.LangEnglish, locker, memory, testNow)
	catalog := menu.NewCatalog()
	voice := personality.NewVoice(config.Config{
		BotName:            "Server Sundharam",
		RestaurantName:     "Royal Chef's Restaurant",
		RestaurantLocation: "T Nagar, Chennai",
		RestaurantPhone:    "+91-9876543210",
		RestaurantTimings:  "11 AM - 11 PM",
		ParkingInfo:        "Free valet parking available, sir!",
	}, rand.New(rand.NewSource(1)))

	service := &reservation.DefaultReservationService{
		Repo:            reservationRepo.NewInMemoryReservationRepo(),
		Catalog:         catalog,
		Locker:          locker,
		RestaurantName:  "Royal Chef's Restaurant",
		RestaurantPhone: "+91-9876543210",
	}

	engine := NewEngine(sessions, locker, nlp.NewEngineAt(testNow), catalog, voice, service, Config{
		MinPeople: 1,
		MaxPeople: 200,
	})
	engine.now = testNow

	return &testBot{engine: engine, locker: locker, sessions: sessions, memory: memory, service: service}
}

// seed puts a session into a given mid-conversation state.
func (b *testBot) seed(userID string, fn func(*models.Session)) {
	sess := b.sessions.GetOrCreate(userID)
	fn(sess)
	b.sessions.Put(sess)
}

func TestGreetingStartsConversation(t *testing.T) {
	bot := newTestBot(t)

	reply := bot.engine.Handle("u1", "hi")
	if !strings.Contains(reply, "Server Sundharam") {
		t.Fatalf("greeting should introduce the bot, got %q", reply)
	}
	if got := bot.sessions.GetOrCreate("u1").Step; got != models.StepGreeting {
		t.Fatalf("step = %s, want %s", got, models.StepGreeting)
	}
}

func TestEmptyMessageShortCircuits(t *testing.T) {
	bot := newTestBot(t)

	reply := bot.engine.Handle("u1", "   ")
	if !strings.Contains(reply, "Please send a message") {
		t.Fatalf("got %q", reply)
	}
}

func TestFullBookingFlow(t *testing.T) {
	bot := newTestBot(t)
	user := "whatsapp:+911234"

	steps := []struct {
		message  string
		wantStep models.Step
	}{
		{"hi", models.StepGreeting},
		{"i want to book a table", models.StepName},
		{"Kumar", models.StepPeople},
		{"4 people", models.StepDate},
		{"tomorrow", models.StepTime},
		{"7pm", models.StepEvent},
		{"birthday", models.StepMenu},
		{"veg", models.StepAddons},
		{"cake", models.StepConfirmation},
	}
	for _, s := range steps {
		reply := bot.engine.Handle(user, s.message)
		if reply == "" {
			t.Fatalf("empty reply for %q", s.message)
		}
		if got := bot.sessions.GetOrCreate(user).Step; got != s.wantStep {
			t.Fatalf("after %q: step = %s, want %s", s.message, got, s.wantStep)
		}
	}

	// The time step must have taken a slot hold.
	if _, ok := bot.locker.UserLock(user); !ok {
		t.Fatal("time step should hold a slot lock before confirmation")
	}

	sess := bot.sessions.GetOrCreate(user)
	if sess.Name != "Kumar" || sess.People != 4 || sess.Date != "21-12-2025" ||
		sess.Time != "7:00 PM" || sess.Event != "birthday" || sess.MenuPack != "veg" {
		t.Fatalf("session fields wrong: %+v", sess)
	}

	reply := bot.engine.Handle(user, "yes")
	if !strings.Contains(reply, "BOOKING CONFIRMED") {
		t.Fatalf("confirmation reply = %q", reply)
	}

	// Session is torn down; the slot stays permanently booked.
	if got := bot.sessions.GetOrCreate(user).Step; got != models.StepInit {
		t.Fatalf("post-booking step = %s, want %s", got, models.StepInit)
	}
	_, status := bot.locker.CheckAvailability("21-12-2025", "7:00 PM", "someone-else")
	if status != models.SlotConfirmedByOther {
		t.Fatalf("slot status after booking = %s, want %s", status, models.SlotConfirmedByOther)
	}

	list, err := bot.service.UserReservations(context.Background(), user)
	if err != nil || len(list) != 1 {
		t.Fatalf("want exactly one stored reservation, got %d (%v)", len(list), err)
	}
	if list[0].TotalCost != 4*399+800 {
		t.Fatalf("total cost = %d, want %d", list[0].TotalCost, 4*399+800)
	}
}

func TestSingleMessageFillsManySteps(t *testing.T) {
	bot := newTestBot(t)

	bot.engine.Handle("u2", "book a table for 4 tomorrow for a birthday")
	sess := bot.sessions.GetOrCreate("u2")
	if sess.People != 4 || sess.Date != "21-12-2025" || sess.Event != "birthday" {
		t.Fatalf("entities not merged: %+v", sess)
	}
	// Name is still missing, so that is where the flow lands.
	if sess.Step != models.StepName {
		t.Fatalf("step = %s, want %s", sess.Step, models.StepName)
	}
}

func TestTooManyGuestsKeepsStep(t *testing.T) {
	bot := newTestBot(t)
	bot.seed("u3", func(sess *models.Session) {
		sess.Name = "Kumar"
		sess.Step = models.StepPeople
	})

	reply := bot.engine.Handle("u3", "300")
	if !strings.Contains(reply, "+91-9876543210") {
		t.Fatalf("oversized party should route to the phone, got %q", reply)
	}
	sess := bot.sessions.GetOrCreate("u3")
	if sess.People != 0 {
		t.Fatalf("people must stay unset, got %d", sess.People)
	}
	if sess.Step != models.StepPeople {
		t.Fatalf("step = %s, want %s", sess.Step, models.StepPeople)
	}
}

func TestPastDateRejected(t *testing.T) {
	bot := newTestBot(t)
	bot.seed("u4", func(sess *models.Session) {
		sess.Name = "Kumar"
		sess.People = 2
		sess.Step = models.StepDate
	})

	reply := bot.engine.Handle("u4", "15-12-2025")
	if reply == "" {
		t.Fatal("past date needs a correction reply")
	}
	sess := bot.sessions.GetOrCreate("u4")
	if sess.Date != "" || sess.Step != models.StepDate {
		t.Fatalf("past date must not advance the flow: date=%q step=%s", sess.Date, sess.Step)
	}
}

func TestContestedSlotOffersAlternatives(t *testing.T) {
	bot := newTestBot(t)
	bot.locker.LockSlot("25-12-2025", "7:00 PM", "other-user", 2)

	bot.seed("u5", func(sess *models.Session) {
		sess.Name = "Kumar"
		sess.People = 2
		sess.Date = "25-12-2025"
		sess.Step = models.StepTime
	})

	reply := bot.engine.Handle("u5", "7pm")
	if !strings.Contains(reply, "Available times:") {
		t.Fatalf("contested slot should list alternatives, got %q", reply)
	}
	if strings.Contains(reply, "7:00 PM,") {
		t.Fatal("requested time must not appear among alternatives")
	}
	sess := bot.sessions.GetOrCreate("u5")
	if sess.Time != "" || sess.Step != models.StepTime {
		t.Fatalf("contested lock must not set the time: time=%q step=%s", sess.Time, sess.Step)
	}
}

func TestCrossQuestionKeepsPlace(t *testing.T) {
	bot := newTestBot(t)
	bot.seed("u6", func(sess *models.Session) {
		sess.Name = "Kumar"
		sess.People = 2
		sess.Step = models.StepDate
	})

	reply := bot.engine.Handle("u6", "do you have parking?")
	if !strings.Contains(reply, "Free valet parking") {
		t.Fatalf("parking question should quote parking info, got %q", reply)
	}
	if !strings.Contains(reply, "continue") {
		t.Fatalf("answer should nudge back to the booking, got %q", reply)
	}
	sess := bot.sessions.GetOrCreate("u6")
	if sess.Step != models.StepDate || sess.Name != "Kumar" {
		t.Fatalf("side question must not disturb the flow: %+v", sess)
	}
}

func TestCancelReleasesSlotAndSession(t *testing.T) {
	bot := newTestBot(t)
	bot.seed("u7", func(sess *models.Session) {
		sess.Name = "Kumar"
		sess.People = 2
		sess.Date = "25-12-2025"
		sess.Step = models.StepTime
	})

	bot.engine.Handle("u7", "7pm")
	if _, ok := bot.locker.UserLock("u7"); !ok {
		t.Fatal("setup: expected a live slot hold")
	}

	bot.engine.Handle("u7", "cancel")
	if _, ok := bot.locker.UserLock("u7"); ok {
		t.Fatal("cancel must release the slot hold")
	}
	if got := bot.sessions.GetOrCreate("u7").Step; got != models.StepInit {
		t.Fatalf("post-cancel step = %s, want %s", got, models.StepInit)
	}
}

func TestLanguageSwitchSticks(t *testing.T) {
	bot := newTestBot(t)

	bot.engine.Handle("u8", "hi")
	bot.engine.Handle("u8", "tamil")
	if got := bot.sessions.GetOrCreate("u8").Language; got != models.LangTamil {
		t.Fatalf("language = %q, want %q", got, models.LangTamil)
	}

	bot.engine.Handle("u8", "english")
	if got := bot.sessions.GetOrCreate("u8").Language; got != models.LangEnglish {
		t.Fatalf("language = %q, want %q", got, models.LangEnglish)
	}
}

func TestRestartKeepsLanguage(t *testing.T) {
	bot := newTestBot(t)

	bot.engine.Handle("u9", "tamil")
	bot.seed("u9", func(sess *models.Session) {
		sess.Name = "Kumar"
		sess.People = 4
		sess.Step = models.StepDate
	})

	bot.engine.Handle("u9", "restart")
	sess := bot.sessions.GetOrCreate("u9")
	if sess.Name != "" || sess.People != 0 {
		t.Fatalf("restart must clear booking fields: %+v", sess)
	}
	if sess.Language != models.LangTamil {
		t.Fatalf("restart must keep language, got %q", sess.Language)
	}
}

func TestReturningUserSkipsNameStep(t *testing.T) {
	bot := newTestBot(t)
	if err := bot.memory.Save(context.Background(), "u10", "Kumar", 4, "veg"); err != nil {
		t.Fatal(err)
	}

	reply := bot.engine.Handle("u10", "hi")
	if !strings.Contains(reply, "Kumar") {
		t.Fatalf("returning greeting should use the saved name, got %q", reply)
	}
	sess := bot.sessions.GetOrCreate("u10")
	if sess.Name != "Kumar" || sess.Step != models.StepPeople {
		t.Fatalf("returning user should land on the people step: %+v", sess)
	}
}

func TestBookingSavesUserMemory(t *testing.T) {
	bot := newTestBot(t)
	user := "u11"

	bot.seed(user, func(sess *models.Session) {
		sess.Name = "Kumar"
		sess.People = 4
		sess.Date = "25-12-2025"
		sess.Event = "birthday"
		sess.MenuPack = "veg"
		sess.AddonsSet = true
		sess.Step = models.StepTime
	})

	bot.engine.Handle(user, "7pm")
	bot.engine.Handle(user, "yes")

	mem, err := bot.memory.Get(context.Background(), user)
	if err != nil || mem == nil {
		t.Fatalf("booking should save user memory, got %v (%v)", mem, err)
	}
	if mem.Name != "Kumar" || mem.LastGuests != 4 || mem.LastMenuPack != "veg" {
		t.Fatalf("memory content wrong: %+v", mem)
	}
}

func TestNameAcceptsTamilScript(t *testing.T) {
	bot := newTestBot(t)
	bot.seed("u12", func(sess *models.Session) {
		sess.Step = models.StepName
	})

	// Well over 50 bytes in UTF-8, well under 50 characters.
	bot.engine.Handle("u12", "கார்த்திகேயன் சுப்பிரமணியன்")
	sess := bot.sessions.GetOrCreate("u12")
	if sess.Name == "" {
		t.Fatal("a Tamil-script name must be accepted")
	}
	if sess.Step != models.StepPeople {
		t.Fatalf("step = %s, want %s", sess.Step, models.StepPeople)
	}
}

// Exercises webhook messages against the admin surface; meaningful under the
// race detector, which flags any unsynchronized session access.
func TestSnapshotSafeDuringConversation(t *testing.T) {
	bot := newTestBot(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			bot.engine.Handle("u13", "book a table for 4 tomorrow for a birthday")
			bot.engine.Handle("u13", "restart")
		}
	}()

	for i := 0; i < 100; i++ {
		for _, snap := range bot.sessions.Snapshot() {
			_ = snap.Step
		}
		bot.sessions.ActiveCount()
	}
	<-done
}
