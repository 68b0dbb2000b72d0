package reservationRepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tablebot/models"
)

// inMemoryReservationRepo is a map-backed repository for tests and for
// running without MongoDB.
type inMemoryReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]models.Reservation
}

// NewInMemoryReservationRepo returns a ReservationRepository held in memory.
func NewInMemoryReservationRepo() ReservationRepository {
	return &inMemoryReservationRepo{
		reservations: make(map[string]models.Reservation),
	}
}

func (r *inMemoryReservationRepo) Create(_ context.Context, reservation models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations[reservation.ReservationID] = reservation
	return nil
}

func (r *inMemoryReservationRepo) GetByID(_ context.Context, reservationID string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.reservations[reservationID]; ok {
		return &res, nil
	}
	return nil, nil
}

func (r *inMemoryReservationRepo) GetByUserID(ctx context.Context, userID string) ([]models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool {
		return res.UserID == userID
	}), nil
}

func (r *inMemoryReservationRepo) GetByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool {
		return res.Date == date
	}), nil
}

func (r *inMemoryReservationRepo) Search(_ context.Context, f models.ReservationSearch) ([]models.Reservation, error) {
	return r.filter(func(res models.Reservation) bool {
		if f.Name != "" && !strings.Contains(strings.ToLower(res.Name), strings.ToLower(f.Name)) {
			return false
		}
		if f.Date != "" && res.Date != f.Date {
			return false
		}
		if f.Status != "" && res.Status != f.Status {
			return false
		}
		return true
	}), nil
}

func (r *inMemoryReservationRepo) UpdateStatus(_ context.Context, reservationID, userID, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[reservationID]
	if !ok || res.UserID != userID {
		return false, nil
	}
	res.Status = status
	r.reservations[reservationID] = res
	return true, nil
}

func (r *inMemoryReservationRepo) All(ctx context.Context) ([]models.Reservation, error) {
	return r.filter(func(models.Reservation) bool { return true }), nil
}

func (r *inMemoryReservationRepo) filter(keep func(models.Reservation) bool) []models.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Reservation
	for _, res := range r.reservations {
		if keep(res) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
