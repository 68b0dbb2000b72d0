package models

import "time"

// Step identifies where a user currently is in the booking conversation.
type Step string

const (
	StepInit         Step = "init"
	StepGreeting     Step = "greeting"
	StepName         Step = "awaiting_name"
	StepPeople       Step = "awaiting_people"
	StepDate         Step = "awaiting_date"
	StepTime         Step = "awaiting_time"
	StepEvent        Step = "awaiting_event"
	StepMenu         Step = "awaiting_menu"
	StepAddons       Step = "awaiting_addons"
	StepConfirmation Step = "awaiting_confirmation"
	StepCompleted    Step = "completed"
	StepCancelled    Step = "cancelled"
)

// AllSteps lists every valid conversation step.
var AllSteps = []Step{
	StepInit, StepGreeting, StepName, StepPeople, StepDate, StepTime,
	StepEvent, StepMenu, StepAddons, StepConfirmation, StepCompleted, StepCancelled,
}

// Valid reports whether s is one of the defined steps.
func (s Step) Valid() bool {
	for _, v := range AllSteps {
		if s == v {
			return true
		}
	}
	return false
}

// Language codes supported by the bot.
const (
	LangEnglish = "en"
	LangTamil   = "ta"
)

// Session tracks one user's conversation state and the booking fields
// collected so far. Fields fill monotonically: once set they are only
// cleared by an explicit restart or cancel.
type Session struct {
	UserID   string `json:"userId"`
	Step     Step   `json:"step"`
	Language string `json:"language"`

	// Booking data.
	Name     string   `json:"name,omitempty"`
	People   int      `json:"people,omitempty"`
	Date     string   `json:"date,omitempty"`
	Time     string   `json:"time,omitempty"`
	Event    string   `json:"event,omitempty"`
	MenuPack string   `json:"menuPack,omitempty"`
	Addons   []string `json:"addons,omitempty"`
	// AddonsSet distinguishes "no addons chosen yet" from "explicitly none".
	AddonsSet      bool   `json:"addonsSet,omitempty"`
	SpecialRequest string `json:"specialRequest,omitempty"`

	// Metadata.
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
	MessageCount int       `json:"messageCount"`

	// Cross-question support: the step to resume after an interruption.
	ReturnToStep Step `json:"returnToStep,omitempty"`

	// Returning-user memory, if any.
	IsReturningUser bool        `json:"isReturningUser,omitempty"`
	Memory          *UserMemory `json:"memory,omitempty"`
}

// Expired reports whether the session has been idle longer than timeout.
func (s *Session) Expired(timeout time.Duration, now time.Time) bool {
	return now.Sub(s.LastActivity) > timeout
}

// Touch records activity on the session.
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
	s.MessageCount++
}

// HasBookingData reports whether any booking field has been collected.
func (s *Session) HasBookingData() bool {
	return s.Name != "" || s.People > 0 || s.Date != "" || s.Time != "" ||
		s.Event != "" || s.MenuPack != "" || s.AddonsSet
}
