package models

// Intent classifies what the user is trying to do with a message.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentBooking        Intent = "booking"
	IntentBookingInfo    Intent = "booking_info"
	IntentMenuQuery      Intent = "menu_query"
	IntentOffersQuery    Intent = "offers_query"
	IntentLocationQuery  Intent = "location_query"
	IntentTimingQuery    Intent = "timing_query"
	IntentParkingQuery   Intent = "parking_query"
	IntentFacilityQuery  Intent = "facilities_query"
	IntentHelp           Intent = "help"
	IntentCancel         Intent = "cancel"
	IntentRestart        Intent = "restart"
	IntentConfirm        Intent = "confirm"
	IntentDeny           Intent = "deny"
	IntentLanguageSwitch Intent = "language_switch"
	IntentUnknown        Intent = "unknown"
)

// ExtractedEntities is the typed bag of optional fields pulled out of a
// free-form message. Normalized date/time values are already concrete
// calendar values; business validation happens in the dialogue engine.
type ExtractedEntities struct {
	People     int      `json:"people,omitempty"`
	DateText   string   `json:"dateText,omitempty"`
	ParsedDate string   `json:"parsedDate,omitempty"` // DD-MM-YYYY
	TimeText   string   `json:"timeText,omitempty"`
	ParsedTime string   `json:"parsedTime,omitempty"` // H:MM AM/PM
	EventType  string   `json:"eventType,omitempty"`
	MenuChoice string   `json:"menuChoice,omitempty"`
	Addons     []string `json:"addons,omitempty"`
	Name       string   `json:"name,omitempty"`
	Confidence float64  `json:"confidence"`
}

// HasBookingData reports whether any booking-relevant entity was found.
func (e ExtractedEntities) HasBookingData() bool {
	return e.People > 0 || e.ParsedDate != "" || e.ParsedTime != "" || e.EventType != ""
}

// IntentResult is the full output of the entity extractor for one message.
type IntentResult struct {
	PrimaryIntent    Intent            `json:"primaryIntent"`
	Confidence       float64           `json:"confidence"`
	Entities         ExtractedEntities `json:"entities"`
	SecondaryIntents []Intent          `json:"secondaryIntents,omitempty"`
	RawText          string            `json:"rawText"`
	LanguageDetected string            `json:"languageDetected"`
	// CrossTopic names the tangential topic (parking, timing, ...) when the
	// message looks like a side question rather than booking input.
	CrossTopic string `json:"crossTopic,omitempty"`
	// SwitchTo is set when the user asks to change language.
	SwitchTo string `json:"switchTo,omitempty"`
}
