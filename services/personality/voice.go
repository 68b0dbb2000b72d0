package personality

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"tablebot/config"
	"tablebot/models"
)

// Voice picks phrase variants so the bot never sounds scripted twice in a
// row. The rand source is injected so tests can pin the choice.
type Voice struct {
	mu  sync.Mutex
	rng *rand.Rand

	botName    string
	restaurant string
	location   string
	phone      string
	timings    string
	parking    string
}

// NewVoice builds a Voice from the restaurant identity config.
func NewVoice(cfg config.Config, rng *rand.Rand) *Voice {
	return &Voice{
		rng:        rng,
		botName:    cfg.BotName,
		restaurant: cfg.RestaurantName,
		location:   cfg.RestaurantLocation,
		phone:      cfg.RestaurantPhone,
		timings:    cfg.RestaurantTimings,
		parking:    cfg.ParkingInfo,
	}
}

func (v *Voice) pick(table map[string][]string, lang string) string {
	variants, ok := table[lang]
	if !ok || len(variants) == 0 {
		variants = table[models.LangEnglish]
	}
	if len(variants) == 0 {
		return ""
	}
	v.mu.Lock()
	i := v.rng.Intn(len(variants))
	v.mu.Unlock()
	return variants[i]
}

func (v *Voice) fill(template string, pairs ...string) string {
	args := append([]string{
		"{bot}", v.botName,
		"{restaurant}", v.restaurant,
		"{location}", v.location,
		"{phone}", v.phone,
		"{timings}", v.timings,
		"{parking}", v.parking,
	}, pairs...)
	return strings.NewReplacer(args...).Replace(template)
}

// Greeting returns a first-contact welcome.
func (v *Voice) Greeting(lang string) string {
	return v.fill(v.pick(greetings, lang))
}

// ReturningGreeting welcomes back a known user by name and last party size.
func (v *Voice) ReturningGreeting(lang, name string, guests int) string {
	return v.fill(v.pick(returningGreetings, lang),
		"{name}", name, "{guests}", strconv.Itoa(guests))
}

func (v *Voice) AskName(lang string) string {
	return v.pick(askName, lang)
}

func (v *Voice) NameConfirmed(lang, name string) string {
	return v.fill(v.pick(nameConfirmed, lang), "{name}", name)
}

func (v *Voice) AskPeople(lang string) string {
	return v.pick(askPeople, lang)
}

func (v *Voice) PeopleConfirmed(lang string, count int) string {
	return v.fill(v.pick(peopleConfirmed, lang), "{count}", strconv.Itoa(count))
}

func (v *Voice) AskDate(lang string) string {
	return v.pick(askDate, lang)
}

func (v *Voice) DateConfirmed(lang, date string) string {
	return v.fill(v.pick(dateConfirmed, lang), "{date}", date)
}

func (v *Voice) AskTime(lang string) string {
	return v.pick(askTime, lang)
}

func (v *Voice) TimeConfirmed(lang, slotTime string) string {
	return v.fill(v.pick(timeConfirmed, lang), "{time}", slotTime)
}

func (v *Voice) AskEvent(lang string) string {
	return v.pick(askEvent, lang)
}

// EventConfirmed acknowledges the occasion, falling back to a generic line
// for event types without dedicated copy.
func (v *Voice) EventConfirmed(lang, eventType string) string {
	table, ok := eventConfirmed[lang]
	if !ok {
		table = eventConfirmed[models.LangEnglish]
	}
	if msg, ok := table[eventType]; ok {
		return msg
	}
	return table["default"]
}

func (v *Voice) MenuIntro(lang string) string {
	return v.pick(menuIntro, lang)
}

func (v *Voice) AddonIntro(lang string) string {
	return v.pick(addonIntro, lang)
}

func (v *Voice) SlotAvailable(lang string) string {
	return v.pick(slotAvailable, lang)
}

func (v *Voice) SlotLockedByOther(lang string) string {
	return v.pick(slotLockedByOther, lang)
}

func (v *Voice) SlotAlreadyBooked(lang string) string {
	return v.pick(slotAlreadyBooked, lang)
}

func (v *Voice) SummaryIntro(lang, name string) string {
	return v.fill(v.pick(summaryIntro, lang), "{name}", name)
}

func (v *Voice) AskConfirmation(lang string) string {
	return v.pick(askConfirmation, lang)
}

func (v *Voice) BookingConfirmed(lang, name, date, slotTime, reservationID string) string {
	return v.fill(v.pick(bookingConfirmed, lang),
		"{name}", name, "{date}", date, "{time}", slotTime, "{id}", reservationID)
}

func (v *Voice) Cancelled(lang, name string) string {
	return v.fill(v.pick(cancelled, lang), "{name}", name)
}

// CrossAnswer returns the canned answer for a mid-booking question topic,
// or false when the topic has no answer.
func (v *Voice) CrossAnswer(lang, topic string) (string, bool) {
	answers, ok := crossAnswers[topic]
	if !ok {
		return "", false
	}
	msg, ok := answers[lang]
	if !ok {
		msg = answers[models.LangEnglish]
	}
	return v.fill(msg), true
}

func (v *Voice) Fallback(lang string) string {
	return v.pick(fallback, lang)
}

func (v *Voice) Help(lang string) string {
	msg, ok := helpMessage[lang]
	if !ok {
		msg = helpMessage[models.LangEnglish]
	}
	return v.fill(msg)
}

func (v *Voice) Apology(lang string) string {
	return v.pick(apology, lang)
}

func (v *Voice) Ack(lang string) string {
	return v.pick(acknowledgments, lang)
}

func (v *Voice) correction(key, lang string, pairs ...string) string {
	table, ok := softCorrections[key]
	if !ok {
		return ""
	}
	msg, found := table[lang]
	if !found {
		msg = table[models.LangEnglish]
	}
	return v.fill(msg, pairs...)
}

func (v *Voice) PastDate(lang, date string) string {
	return v.correction("past_date", lang, "{date}", date)
}

func (v *Voice) InvalidDate(lang string) string {
	return v.correction("invalid_date", lang)
}

func (v *Voice) InvalidTime(lang string) string {
	return v.correction("invalid_time", lang)
}

func (v *Voice) TooManyGuests(lang string, max int) string {
	return v.correction("too_many_guests", lang, "{count}", strconv.Itoa(max))
}
