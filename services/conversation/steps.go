package conversation

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"tablebot/models"

	"go.uber.org/zap"
)

var digitsRe = regexp.MustCompile(`\d+`)
var allDigitsRe = regexp.MustCompile(`^[\d\s+\-]+$`)

// eventSynonyms maps casual phrasings to the canonical event keys.
var eventSynonyms = map[string]string{
	"bday":         "birthday",
	"b'day":        "birthday",
	"birth day":    "birthday",
	"anniv":        "anniversary",
	"office":       "corporate",
	"team":         "corporate",
	"meeting":      "corporate",
	"get together": "party",
	"gettogether":  "party",
	"function":     "party",
	"nothing":      "casual",
	"normal":       "casual",
	"just dinner":  "casual",
	"dinner":       "casual",
	"lunch":        "casual",
	"romantic":     "date",
	"send off":     "farewell",
	"sendoff":      "farewell",
}

var noAddonWords = []string{
	"none", "no addons", "no addon", "nothing", "skip", "no thanks",
	"illa", "vendam", "வேண்டாம்", "எதுவும் இல்ல",
}

// handleInit greets, short-circuits menu-only queries, and fast-forwards
// bookings that arrive with data already in the first message.
func (e *Engine) handleInit(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language

	// A known user opening with a greeting or booking intent skips the name
	// question entirely.
	if sess.IsReturningUser && sess.Memory != nil && sess.Name == "" &&
		(result.PrimaryIntent == models.IntentGreeting || result.PrimaryIntent == models.IntentBooking) {
		sess.Name = sess.Memory.Name
		sess.Step = models.StepPeople
		return e.Voice.ReturningGreeting(lang, sess.Memory.Name, sess.Memory.LastGuests)
	}

	switch result.PrimaryIntent {
	case models.IntentBooking, models.IntentBookingInfo:
		step, prompt := e.nextMissingStep(sess)
		sess.Step = step
		if understood := e.buildUnderstood(sess, result.Entities); understood != "" {
			return e.Voice.Ack(lang) + "\n\n" + understood + "\n\n" + prompt
		}
		return e.Voice.Ack(lang) + " " + prompt

	case models.IntentMenuQuery:
		// Browsing the menu does not start a booking.
		reply := e.Voice.MenuIntro(lang) + "\n" + e.Catalog.FormatMenuList(lang)
		if lang == models.LangTamil {
			return reply + "\n\nTable book பண்ணணும்னா சொல்லுங்க!"
		}
		return reply + "\n\nTell me when you want to book a table!"

	case models.IntentOffersQuery, models.IntentLocationQuery, models.IntentTimingQuery,
		models.IntentParkingQuery, models.IntentFacilityQuery:
		if answer, ok := e.Voice.CrossAnswer(lang, result.CrossTopic); ok {
			return answer
		}
		return e.Voice.Fallback(lang)

	case models.IntentGreeting:
		sess.Step = models.StepGreeting
		return e.Voice.Greeting(lang)
	}

	if sess.Step == models.StepInit {
		sess.Step = models.StepGreeting
		return e.Voice.Greeting(lang)
	}
	return e.Voice.Fallback(lang)
}

// handleNameStep validates and stores the guest's name.
func (e *Engine) handleNameStep(sess *models.Session, msg string) string {
	lang := sess.Language

	if sess.Name == "" {
		name := strings.TrimSpace(msg)
		// Length limits count characters, not bytes; Tamil script is multibyte.
		runes := utf8.RuneCountInString(name)
		if runes < 2 || runes > 50 || allDigitsRe.MatchString(name) {
			if lang == models.LangTamil {
				return "அது பேரா தெரியலையே சார்! உங்க பேரு சொல்லுங்க."
			}
			return "That doesn't look like a name! Could you tell me your name please?"
		}
		sess.Name = strings.Title(strings.ToLower(name))
	}

	step, prompt := e.nextMissingStep(sess)
	sess.Step = step
	return e.Voice.NameConfirmed(lang, sess.Name) + "\n\n" + prompt
}

// handlePeopleStep resolves the party size and rejects parties beyond
// capacity without losing the user's place in the flow.
func (e *Engine) handlePeopleStep(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language

	if sess.People == 0 {
		n := result.Entities.People
		if n == 0 {
			if m := digitsRe.FindString(msg); m != "" {
				n, _ = strconv.Atoi(m)
			}
		}

		if n > e.MaxPeople {
			// People stays unset and the step unchanged; large events go
			// through the front desk.
			return e.Voice.TooManyGuests(lang, e.MaxPeople)
		}
		if n < e.MinPeople {
			if lang == models.LangTamil {
				return "எத்தனை பேர்னு சொல்லுங்க சார்! (1-" + strconv.Itoa(e.MaxPeople) + ")"
			}
			return "Please tell me how many guests! (1-" + strconv.Itoa(e.MaxPeople) + ")"
		}
		sess.People = n
	}

	seating := e.Catalog.SeatingFor(sess.People)
	step, prompt := e.nextMissingStep(sess)
	sess.Step = step
	return e.Voice.PeopleConfirmed(lang, sess.People) + "\n" +
		seating.Message(lang) + "\n\n" + prompt
}

// handleDateStep resolves the date, pushing back on past or unparseable
// input with a correction instead of an error.
func (e *Engine) handleDateStep(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language

	if sess.Date == "" {
		parsed := result.Entities.ParsedDate
		if parsed == "" {
			return e.Voice.InvalidDate(lang)
		}
		if e.isPastDate(parsed) {
			return e.Voice.PastDate(lang, parsed)
		}
		sess.Date = parsed
	}

	step, prompt := e.nextMissingStep(sess)
	sess.Step = step
	return e.Voice.DateConfirmed(lang, sess.Date) + "\n\n" + prompt
}

// handleTimeStep resolves the time and takes the slot hold. The session's
// time field is only ever written after a successful lock; a contested slot
// answers with up to three alternatives.
func (e *Engine) handleTimeStep(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language

	if sess.Time == "" {
		parsed := result.Entities.ParsedTime
		if parsed == "" {
			return e.Voice.InvalidTime(lang)
		}

		ok, status := e.Locker.LockSlot(sess.Date, parsed, sess.UserID, sess.People)
		if !ok {
			e.logger.Info("slot lock contested",
				zap.String("userId", sess.UserID),
				zap.String("date", sess.Date),
				zap.String("time", parsed),
				zap.String("status", string(status)))

			if status == models.SlotAlreadyBooked {
				return e.Voice.SlotAlreadyBooked(lang)
			}

			reply := e.Voice.SlotLockedByOther(lang)
			if alts := e.Locker.AlternativeTimes(sess.Date, parsed); len(alts) > 0 {
				if len(alts) > 3 {
					alts = alts[:3]
				}
				if lang == models.LangTamil {
					reply += "\n\nFree-ஆ இருக்கற நேரங்கள்: " + strings.Join(alts, ", ")
				} else {
					reply += "\n\nAvailable times: " + strings.Join(alts, ", ")
				}
			}
			return reply
		}
		sess.Time = parsed
	}

	step, prompt := e.nextMissingStep(sess)
	sess.Step = step
	return e.Voice.TimeConfirmed(lang, sess.Time) + "\n" +
		e.Voice.SlotAvailable(lang) + "\n\n" + prompt
}

// handleEventStep records the occasion and pitches the matching menu.
// Unrecognized occasions are kept verbatim rather than rejected.
func (e *Engine) handleEventStep(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language

	if sess.Event == "" {
		raw := strings.ToLower(strings.TrimSpace(msg))
		if mapped, ok := eventSynonyms[raw]; ok {
			sess.Event = mapped
		} else if len(raw) >= 2 {
			sess.Event = raw
		} else {
			sess.Event = "casual"
		}
	}

	reply := e.Voice.EventConfirmed(lang, sess.Event)

	// When a menu pack was already chosen earlier, skip the pitch.
	if sess.MenuPack != "" {
		step, prompt := e.nextMissingStep(sess)
		sess.Step = step
		return reply + "\n\n" + prompt
	}

	rec := e.Catalog.EventRecommendation(sess.Event)
	sess.Step = models.StepMenu
	return reply + "\n\n" + rec.Message(lang) + "\n\n" +
		e.Voice.MenuIntro(lang) + "\n" + e.Catalog.FormatMenuList(lang)
}

// handleMenuStep stores the chosen pack; an unrecognized reply lists the
// valid choices again.
func (e *Engine) handleMenuStep(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language

	if sess.MenuPack == "" {
		if lang == models.LangTamil {
			return "எந்த menu-னு புரியலை சார்! Veg, Non-Veg, Premium அல்லது Deluxe-ல ஒண்ணு சொல்லுங்க."
		}
		return "I didn't catch which menu! Please pick one: Veg, Non-Veg, Premium or Deluxe."
	}

	step, prompt := e.nextMissingStep(sess)
	sess.Step = step
	return e.Voice.Ack(lang) + "\n\n" + prompt
}

// handleAddonsStep records chosen addons, treating a clear "no" as an
// explicit empty choice so the flow does not re-ask.
func (e *Engine) handleAddonsStep(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language
	lower := strings.ToLower(strings.TrimSpace(msg))

	declined := result.PrimaryIntent == models.IntentDeny
	for _, w := range noAddonWords {
		if strings.Contains(lower, w) {
			declined = true
			break
		}
	}

	switch {
	case declined:
		sess.Addons = nil
		sess.AddonsSet = true
	case len(result.Entities.Addons) > 0:
		sess.Addons = dedupe(result.Entities.Addons)
		sess.AddonsSet = true
	default:
		if lang == models.LangTamil {
			return "Addon புரியலை சார்! பேரு சொல்லுங்க, அல்லது வேண்டாம்னா 'none'-னு சொல்லுங்க."
		}
		return "I didn't catch that! Name the addons you want, or reply 'none' to skip."
	}

	step, prompt := e.nextMissingStep(sess)
	sess.Step = step
	return prompt
}

// handleConfirmationStep creates the reservation on a clear yes, tears down
// on a clear no, and otherwise re-asks without moving.
func (e *Engine) handleConfirmationStep(sess *models.Session, msg string, result models.IntentResult) string {
	lang := sess.Language

	switch result.PrimaryIntent {
	case models.IntentConfirm:
		res, err := e.createReservation(sess)
		if err != nil {
			e.logger.Error("reservation create failed",
				zap.String("userId", sess.UserID), zap.Error(err))
			// Step unchanged: the user can simply say yes again.
			return e.Voice.Apology(lang)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		e.Sessions.SaveUserMemory(ctx, sess.UserID, sess.Name, sess.People, sess.MenuPack)
		cancel()
		e.Sessions.Clear(sess.UserID)
		return res.ConfirmationText

	case models.IntentDeny:
		return e.cancel(sess)
	}

	if lang == models.LangTamil {
		return "Confirm பண்ணலாமா சார்? 'Yes' அல்லது 'No'-னு சொல்லுங்க."
	}
	return "Shall I confirm the booking? Please reply 'Yes' or 'No'."
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
