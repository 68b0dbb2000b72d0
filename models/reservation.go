package models

import "time"

// Reservation statuses.
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation is the terminal artifact of a completed booking flow: a frozen
// snapshot of the session's booking fields plus computed cost and seating.
type Reservation struct {
	ReservationID string                `bson:"reservationId" json:"reservationId"`
	UserID        string                `bson:"userId" json:"userId"`
	Name          string                `bson:"name" json:"name"`
	People        int                   `bson:"people" json:"people"`
	Date          string                `bson:"date" json:"date"`
	Time          string                `bson:"time" json:"time"`
	Event         string                `bson:"event" json:"event"`
	MenuPack      string                `bson:"menuPack" json:"menuPack"`
	Addons        []string              `bson:"addons" json:"addons"`
	Seating       SeatingRecommendation `bson:"seating" json:"seating"`
	BaseCost      int                   `bson:"baseCost" json:"baseCost"`
	AddonCost     int                   `bson:"addonCost" json:"addonCost"`
	TotalCost     int                   `bson:"totalCost" json:"totalCost"`
	Status        string                `bson:"status" json:"status"`
	Language      string                `bson:"language" json:"language"`
	CreatedAt     time.Time             `bson:"createdAt" json:"createdAt"`
}

// ReservationStats summarizes bookings for the admin surface.
type ReservationStats struct {
	TotalBookings int    `json:"totalBookings"`
	TodayBookings int    `json:"todayBookings"`
	TotalRevenue  int    `json:"totalRevenue"`
	PopularMenu   string `json:"popularMenu"`
	PopularEvent  string `json:"popularEvent"`
}

// ReservationSearch filters reservation queries from the admin surface.
type ReservationSearch struct {
	Name   string `json:"name,omitempty"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}
