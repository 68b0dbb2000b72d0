package handlers

import (
	"tablebot/services/conversation"
	"tablebot/services/menu"
	"tablebot/services/reservation"
	"tablebot/services/session"
	"tablebot/services/slotlock"
)

// HandlerBundle carries every wired dependency the HTTP surface needs.
type HandlerBundle struct {
	Conversation *conversation.Engine
	Sessions     *session.Store
	Locker       *slotlock.Locker
	Catalog      *menu.Catalog
	Reservations reservation.ReservationService
}
