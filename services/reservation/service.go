package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tablebot/models"
	"tablebot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create freezes the booking into a Reservation: computes cost and seating,
// confirms the slot lock, persists, and schedules the pre-visit reminder.
// Called exactly once per confirmed session.
func (s *DefaultReservationService) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	logger := utils.GetLogger()

	pack, ok := s.Catalog.Pack(in.MenuPack)
	if !ok {
		pack, _ = s.Catalog.Pack("veg")
	}

	base, addonCost, total := s.Catalog.CalculateCost(in.People, pack.Key, in.Addons)
	seating := s.Catalog.SeatingFor(in.People)

	res := models.Reservation{
		ReservationID: newReservationID(),
		UserID:        in.UserID,
		Name:          in.Name,
		People:        in.People,
		Date:          in.Date,
		Time:          in.Time,
		Event:         in.Event,
		MenuPack:      pack.Key,
		Addons:        in.Addons,
		Seating:       seating,
		BaseCost:      base,
		AddonCost:     addonCost,
		TotalCost:     total,
		Status:        models.ReservationConfirmed,
		Language:      in.Language,
		CreatedAt:     time.Now(),
	}

	// Best-effort: the user held the lock moments ago in the same flow. A
	// false here means the hold expired in between; the booking still goes
	// through, we just log it.
	if !s.Locker.ConfirmSlot(in.Date, in.Time, in.UserID) {
		logger.Warn("slot confirm failed at reservation time",
			zap.String("userId", in.UserID),
			zap.String("date", in.Date),
			zap.String("time", in.Time))
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("persisting reservation: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, res); err != nil {
			logger.Warn("scheduling reminder failed",
				zap.String("reservationId", res.ReservationID), zap.Error(err))
		}
	}

	logger.Info("reservation created",
		zap.String("reservationId", res.ReservationID),
		zap.String("userId", in.UserID),
		zap.Int("people", in.People),
		zap.Int("totalCost", total))

	return &CreateResult{
		ReservationID:    res.ReservationID,
		ConfirmationText: s.confirmationMessage(res, pack, in.Language),
	}, nil
}

// newReservationID generates ids like RC20251225A3F9B1.
func newReservationID() string {
	datePart := time.Now().Format("20060102")
	uniq := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return "RC" + datePart + uniq
}

func (s *DefaultReservationService) confirmationMessage(res models.Reservation, pack models.MenuPack, lang string) string {
	var b strings.Builder
	divider := strings.Repeat("-", 25) + "\n"

	if lang == models.LangTamil {
		b.WriteString("*BOOKING CONFIRMED!*\n\n")
		b.WriteString(fmt.Sprintf("நன்றி %s! உங்க table ready!\n\n", res.Name))
		b.WriteString(divider)
		b.WriteString("*Booking Details*\n")
		b.WriteString(divider)
		b.WriteString(fmt.Sprintf("Reservation ID: *%s*\n", res.ReservationID))
		b.WriteString(fmt.Sprintf("Date: *%s*\n", res.Date))
		b.WriteString(fmt.Sprintf("Time: *%s*\n", res.Time))
		b.WriteString(fmt.Sprintf("Guests: *%d பேர்*\n", res.People))
		b.WriteString(fmt.Sprintf("Event: *%s*\n", strings.Title(res.Event)))
		b.WriteString(fmt.Sprintf("Menu: *%s*\n\n", pack.Name(lang)))
	} else {
		b.WriteString("*BOOKING CONFIRMED!*\n\n")
		b.WriteString(fmt.Sprintf("Thank you %s! Your table is ready!\n\n", res.Name))
		b.WriteString(divider)
		b.WriteString("*Booking Details*\n")
		b.WriteString(divider)
		b.WriteString(fmt.Sprintf("Reservation ID: *%s*\n", res.ReservationID))
		b.WriteString(fmt.Sprintf("Date: *%s*\n", res.Date))
		b.WriteString(fmt.Sprintf("Time: *%s*\n", res.Time))
		b.WriteString(fmt.Sprintf("Guests: *%d people*\n", res.People))
		b.WriteString(fmt.Sprintf("Event: *%s*\n", strings.Title(res.Event)))
		b.WriteString(fmt.Sprintf("Menu: *%s*\n\n", pack.Name(lang)))
	}

	b.WriteString(divider)
	b.WriteString("*Bill Summary*\n")
	b.WriteString(divider)
	b.WriteString(fmt.Sprintf("Menu Cost: Rs.%d\n", res.BaseCost))
	b.WriteString(fmt.Sprintf("Addons: Rs.%d\n", res.AddonCost))
	b.WriteString(fmt.Sprintf("*Total: Rs.%d*\n\n", res.TotalCost))
	b.WriteString(divider)
	b.WriteString(s.RestaurantName + "\n")
	b.WriteString(s.RestaurantPhone + "\n")
	b.WriteString(divider)

	if lang == models.LangTamil {
		b.WriteString("\nஉங்களை serve பண்ண excited-ஆ இருக்கோம்! See you soon!")
	} else {
		b.WriteString("\nWe're excited to serve you! See you soon!")
	}
	return b.String()
}

// GetByID returns one reservation, nil when unknown.
func (s *DefaultReservationService) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	return s.Repo.GetByID(ctx, reservationID)
}

// UserReservations lists a user's bookings, newest first.
func (s *DefaultReservationService) UserReservations(ctx context.Context, userID string) ([]models.Reservation, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// ByDate lists bookings for a DD-MM-YYYY date.
func (s *DefaultReservationService) ByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return s.Repo.GetByDate(ctx, date)
}

// Search filters bookings for the admin surface.
func (s *DefaultReservationService) Search(ctx context.Context, filter models.ReservationSearch) ([]models.Reservation, error) {
	return s.Repo.Search(ctx, filter)
}

// Cancel marks a reservation cancelled when it belongs to the user.
func (s *DefaultReservationService) Cancel(ctx context.Context, reservationID, userID string) (bool, error) {
	return s.Repo.UpdateStatus(ctx, reservationID, userID, models.ReservationCancelled)
}

// Stats summarizes bookings for the admin dashboard.
func (s *DefaultReservationService) Stats(ctx context.Context) (*models.ReservationStats, error) {
	all, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("02-01-2006")
	stats := &models.ReservationStats{TotalBookings: len(all)}

	menuCounts := make(map[string]int)
	eventCounts := make(map[string]int)
	for _, r := range all {
		if r.Date == today {
			stats.TodayBookings++
		}
		stats.TotalRevenue += r.TotalCost
		menuCounts[r.MenuPack]++
		eventCounts[r.Event]++
	}
	stats.PopularMenu = mostCommon(menuCounts)
	stats.PopularEvent = mostCommon(eventCounts)
	return stats, nil
}

func mostCommon(counts map[string]int) string {
	best, bestCount := "N/A", 0
	for k, c := range counts {
		if c > bestCount {
			best, bestCount = k, c
		}
	}
	return best
}
