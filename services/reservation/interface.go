package reservation

import (
	"context"

	reservationRepo "tablebot/database/repository/reservation"
	"tablebot/models"
	"tablebot/services/menu"
)

// CreateInput is the frozen session payload handed over at confirmation.
type CreateInput struct {
	UserID   string
	Name     string
	People   int
	Date     string
	Time     string
	Event    string
	MenuPack string
	Addons   []string
	Language string
}

// CreateResult is what the dialogue engine sends back to the user.
type CreateResult struct {
	ReservationID    string
	ConfirmationText string
}

// SlotConfirmer converts a temporary slot hold into a permanent booking.
// Satisfied by the slot locker.
type SlotConfirmer interface {
	ConfirmSlot(date, slotTime, userID string) bool
	LockedCount() int
}

// ReminderScheduler queues a pre-visit reminder for a confirmed booking.
// Nil-able: reminders are optional.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, reservation models.Reservation) error
}

// ReservationService creates and manages confirmed bookings.
type ReservationService interface {
	Create(ctx context.Context, in CreateInput) (*CreateResult, error)
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	UserReservations(ctx context.Context, userID string) ([]models.Reservation, error)
	ByDate(ctx context.Context, date string) ([]models.Reservation, error)
	Search(ctx context.Context, filter models.ReservationSearch) ([]models.Reservation, error)
	Cancel(ctx context.Context, reservationID, userID string) (bool, error)
	Stats(ctx context.Context) (*models.ReservationStats, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo      reservationRepo.ReservationRepository
	Catalog   *menu.Catalog
	Locker    SlotConfirmer
	Reminders ReminderScheduler

	RestaurantName  string
	RestaurantPhone string
}
