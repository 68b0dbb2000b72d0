package conversation

import (
	"context"
	"strings"
	"time"

	"tablebot/models"
	"tablebot/services/menu"
	"tablebot/services/nlp"
	"tablebot/services/personality"
	"tablebot/services/reservation"
	"tablebot/services/session"
	"tablebot/services/slotlock"
	"tablebot/utils"

	"go.uber.org/zap"
)

// Engine is the dialogue state machine: given the user's session and a raw
// message, it decides the next step, the side effects (slot lock attempts,
// session mutation, reservation creation), and the reply.
type Engine struct {
	Sessions     *session.Store
	Locker       *slotlock.Locker
	NLP          *nlp.Engine
	Catalog      *menu.Catalog
	Voice        *personality.Voice
	Reservations reservation.ReservationService

	MinPeople int
	MaxPeople int

	now    func() time.Time
	logger *zap.Logger
}

// Config carries the dialogue limits into the engine. Restaurant identity
// lives in the Voice, which fills it into every phrase that needs it.
type Config struct {
	MinPeople int
	MaxPeople int
}

// NewEngine wires the dialogue engine with its collaborators.
func NewEngine(
	sessions *session.Store,
	locker *slotlock.Locker,
	nlpEngine *nlp.Engine,
	catalog *menu.Catalog,
	voice *personality.Voice,
	reservations reservation.ReservationService,
	cfg Config,
) *Engine {
	return &Engine{
		Sessions:     sessions,
		Locker:       locker,
		NLP:          nlpEngine,
		Catalog:      catalog,
		Voice:        voice,
		Reservations: reservations,
		MinPeople:    cfg.MinPeople,
		MaxPeople:    cfg.MaxPeople,
		now:          time.Now,
		logger:       utils.GetLogger().With(zap.String("component", "conversation")),
	}
}

// Handle processes one incoming message to completion and returns the
// reply. Any panic below is converted into a localized apology so the user
// can simply retry; the session is left as it was.
func (e *Engine) Handle(userID, text string) (reply string) {
	lang := models.LangEnglish

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("message handling panicked",
				zap.String("userId", userID), zap.Any("panic", r))
			reply = e.Voice.Apology(lang)
		}
	}()

	msg := strings.TrimSpace(text)
	if msg == "" {
		return "Please send a message so I can help you!"
	}

	sess := e.Sessions.GetOrCreate(userID)
	lang = sess.Language

	e.logger.Info("incoming message",
		zap.String("userId", userID),
		zap.String("step", string(sess.Step)),
		zap.Int("length", len(msg)))

	result := e.NLP.Detect(msg, lang)

	// Language switch wins over everything, including mid-booking state.
	if result.PrimaryIntent == models.IntentLanguageSwitch {
		return e.switchLanguage(sess, result.SwitchTo)
	}

	// A side question mid-booking is answered in place: the step is left
	// untouched so the user resumes exactly where they were.
	if result.CrossTopic != "" && sess.Step != models.StepInit && sess.Step != models.StepGreeting {
		if answer, ok := e.Voice.CrossAnswer(lang, result.CrossTopic); ok {
			if lang == models.LangTamil {
				return answer + "\n\nசரி, booking continue பண்ணலாமா?"
			}
			return answer + "\n\nOkay, shall we continue with the booking?"
		}
	}

	switch result.PrimaryIntent {
	case models.IntentRestart:
		return e.restart(sess)
	case models.IntentCancel:
		// At confirmation, "no" and "cancel" share the cancel path; before
		// that a cancel always tears the session down.
		return e.cancel(sess)
	case models.IntentHelp:
		return e.Voice.Help(lang)
	}

	e.mergeEntities(sess, result.Entities)

	// sess is a detached copy; the store only sees it again here. A session
	// torn down during dispatch (cancel, booking completion) stays gone.
	reply = e.dispatch(sess, msg, result)
	e.Sessions.Put(sess)
	return reply
}

func (e *Engine) switchLanguage(sess *models.Session, lang string) string {
	sess.Language = lang
	e.Sessions.SetLanguage(sess.UserID, lang)
	if lang == models.LangTamil {
		return "சரி சார்! இனி தமிழ்ல பேசலாம். என்ன help வேணும்?"
	}
	return "Sure! Let's continue in English. How can I help?"
}

func (e *Engine) restart(sess *models.Session) string {
	lang := sess.Language
	e.Sessions.Reset(sess.UserID)
	if lang == models.LangTamil {
		return "சரி சார்! Fresh start! என்ன help பண்ணலாம்?"
	}
	return "Sure sir! Fresh start! How can I help you?"
}

func (e *Engine) cancel(sess *models.Session) string {
	name := sess.Name
	if name == "" {
		name = "sir"
	}
	lang := sess.Language
	e.Sessions.Clear(sess.UserID)
	return e.Voice.Cancelled(lang, name)
}

// mergeEntities copies extracted fields into the session, first-write-wins:
// a field set by an earlier message is never overwritten by a later parse.
// Time is special: it only lands in the session through a successful slot
// lock, so here it is attempted only when the date is already known.
func (e *Engine) mergeEntities(sess *models.Session, ent models.ExtractedEntities) {
	if ent.Name != "" && sess.Name == "" {
		sess.Name = ent.Name
	}
	if ent.People > 0 && ent.People <= e.MaxPeople && sess.People == 0 {
		sess.People = ent.People
	}
	if ent.ParsedDate != "" && sess.Date == "" && !e.isPastDate(ent.ParsedDate) {
		sess.Date = ent.ParsedDate
	}
	if ent.ParsedTime != "" && sess.Time == "" && sess.Date != "" {
		if ok, _ := e.Locker.LockSlot(sess.Date, ent.ParsedTime, sess.UserID, sess.People); ok {
			sess.Time = ent.ParsedTime
		}
	}
	if ent.EventType != "" && sess.Event == "" {
		sess.Event = ent.EventType
	}
	if ent.MenuChoice != "" && sess.MenuPack == "" {
		sess.MenuPack = ent.MenuChoice
	}
}

// dispatch routes to the handler for the session's current step.
func (e *Engine) dispatch(sess *models.Session, msg string, result models.IntentResult) string {
	switch sess.Step {
	case models.StepInit, models.StepGreeting:
		return e.handleInit(sess, msg, result)
	case models.StepName:
		return e.handleNameStep(sess, msg)
	case models.StepPeople:
		return e.handlePeopleStep(sess, msg, result)
	case models.StepDate:
		return e.handleDateStep(sess, msg, result)
	case models.StepTime:
		return e.handleTimeStep(sess, msg, result)
	case models.StepEvent:
		return e.handleEventStep(sess, msg, result)
	case models.StepMenu:
		return e.handleMenuStep(sess, msg, result)
	case models.StepAddons:
		return e.handleAddonsStep(sess, msg, result)
	case models.StepConfirmation:
		return e.handleConfirmationStep(sess, msg, result)
	case models.StepCompleted, models.StepCancelled:
		sess.Step = models.StepGreeting
		return e.handleInit(sess, msg, result)
	default:
		sess.Step = models.StepGreeting
		return e.handleInit(sess, msg, result)
	}
}

// nextMissingStep inspects the session fields in fixed order and returns
// the first unfilled step plus its prompt. This is the smart-routing core:
// a single message can fill several fields and skip their steps entirely.
func (e *Engine) nextMissingStep(sess *models.Session) (models.Step, string) {
	lang := sess.Language

	if sess.Name == "" {
		return models.StepName, e.Voice.AskName(lang)
	}
	if sess.People == 0 {
		return models.StepPeople, e.Voice.AskPeople(lang)
	}
	if sess.Date == "" {
		return models.StepDate, e.Voice.AskDate(lang)
	}
	if sess.Time == "" {
		return models.StepTime, e.Voice.AskTime(lang)
	}
	if sess.Event == "" {
		return models.StepEvent, e.Voice.AskEvent(lang)
	}
	if sess.MenuPack == "" {
		return models.StepMenu, e.Voice.MenuIntro(lang) + "\n" + e.Catalog.FormatMenuList(lang)
	}
	if !sess.AddonsSet {
		return models.StepAddons, e.Voice.AddonIntro(lang) + "\n" + e.Catalog.FormatAddonList(lang)
	}

	summary := e.buildSummary(sess)
	return models.StepConfirmation, summary + "\n\n" + e.Voice.AskConfirmation(lang)
}

func (e *Engine) isPastDate(date string) bool {
	parsed, err := time.ParseInLocation("02-01-2006", date, time.Local)
	if err != nil {
		return false
	}
	today := e.now()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	return parsed.Before(startOfToday)
}

// createReservation hands the frozen session to the booking collaborator.
func (e *Engine) createReservation(sess *models.Session) (*reservation.CreateResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return e.Reservations.Create(ctx, reservation.CreateInput{
		UserID:   sess.UserID,
		Name:     sess.Name,
		People:   sess.People,
		Date:     sess.Date,
		Time:     sess.Time,
		Event:    sess.Event,
		MenuPack: sess.MenuPack,
		Addons:   sess.Addons,
		Language: sess.Language,
	})
}
