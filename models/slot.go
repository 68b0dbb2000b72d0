package models

import "time"

// SlotStatus classifies the availability of a (date, time) slot for a
// particular user.
type SlotStatus string

const (
	SlotAvailable        SlotStatus = "available"
	SlotLockedByYou      SlotStatus = "locked_by_you"
	SlotLockedByOther    SlotStatus = "locked_by_other"
	SlotLockExtended     SlotStatus = "lock_extended"
	SlotLocked           SlotStatus = "slot_locked"
	SlotConfirmedByYou   SlotStatus = "confirmed_by_you"
	SlotConfirmedByOther SlotStatus = "confirmed"
	SlotAlreadyBooked    SlotStatus = "slot_already_booked"
)

// SlotLock is a temporary exclusive hold on a (date, time) slot while one
// user finishes a booking. It auto-expires unless confirmed.
type SlotLock struct {
	Key       string    `json:"key"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	People    int       `json:"people"`
	LockedAt  time.Time `json:"lockedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Confirmed bool      `json:"confirmed"`
}

// ExpiredAt reports whether the lock has lapsed at the given instant.
func (l *SlotLock) ExpiredAt(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
