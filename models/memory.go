package models

import "time"

// UserMemory is the long-term record kept for returning users so the bot can
// greet them by name and suggest their usual order.
type UserMemory struct {
	UserID        string    `json:"userId"`
	Name          string    `json:"name,omitempty"`
	LastGuests    int       `json:"lastGuests,omitempty"`
	LastMenuPack  string    `json:"lastMenuPack,omitempty"`
	TotalBookings int       `json:"totalBookings"`
	FirstVisit    time.Time `json:"firstVisit"`
	LastVisit     time.Time `json:"lastVisit"`
}
