package models

// MenuPack is one of the fixed per-person menu bundles.
type MenuPack struct {
	Key            string   `json:"key"`
	NameEN         string   `json:"nameEn"`
	NameTA         string   `json:"nameTa"`
	PricePerPerson int      `json:"pricePerPerson"`
	DescriptionEN  string   `json:"descriptionEn"`
	DescriptionTA  string   `json:"descriptionTa"`
	ItemsEN        []string `json:"itemsEn"`
	ItemsTA        []string `json:"itemsTa"`
	RecommendedFor []string `json:"recommendedFor,omitempty"`
	MinPeople      int      `json:"minPeople,omitempty"`
	Available      bool     `json:"available"`
}

// Name returns the pack name in the requested language.
func (p MenuPack) Name(lang string) string {
	if lang == LangTamil {
		return p.NameTA
	}
	return p.NameEN
}

// Description returns the pack description in the requested language.
func (p MenuPack) Description(lang string) string {
	if lang == LangTamil {
		return p.DescriptionTA
	}
	return p.DescriptionEN
}

// Addon is an optional extra attached to a booking for a flat price.
type Addon struct {
	Key            string   `json:"key"`
	NameEN         string   `json:"nameEn"`
	NameTA         string   `json:"nameTa"`
	Price          int      `json:"price"`
	DescriptionEN  string   `json:"descriptionEn"`
	DescriptionTA  string   `json:"descriptionTa"`
	RecommendedFor []string `json:"recommendedFor,omitempty"`
	Available      bool     `json:"available"`
}

// Name returns the addon name in the requested language.
func (a Addon) Name(lang string) string {
	if lang == LangTamil {
		return a.NameTA
	}
	return a.NameEN
}

// EventRecommendation pairs an event type with the menu and addons a waiter
// would suggest for it.
type EventRecommendation struct {
	Menu      string   `json:"menu"`
	Addons    []string `json:"addons"`
	MessageEN string   `json:"messageEn"`
	MessageTA string   `json:"messageTa"`
}

// Message returns the recommendation copy in the requested language.
func (r EventRecommendation) Message(lang string) string {
	if lang == LangTamil {
		return r.MessageTA
	}
	return r.MessageEN
}

// SeatingType names the seating arrangement classes.
type SeatingType string

const (
	SeatingTable       SeatingType = "table"
	SeatingMiniHall    SeatingType = "mini_hall"
	SeatingBanquetHall SeatingType = "banquet_hall"
)

// SeatingRecommendation describes the arrangement suggested for a party size.
type SeatingRecommendation struct {
	Type         SeatingType `json:"type"`
	TablesNeeded int         `json:"tablesNeeded"`
	HallName     string      `json:"hallName,omitempty"`
	Capacity     int         `json:"capacity"`
	MessageEN    string      `json:"messageEn"`
	MessageTA    string      `json:"messageTa"`
	LayoutVisual string      `json:"layoutVisual"`
}

// Message returns the seating copy in the requested language.
func (s SeatingRecommendation) Message(lang string) string {
	if lang == LangTamil {
		return s.MessageTA
	}
	return s.MessageEN
}
