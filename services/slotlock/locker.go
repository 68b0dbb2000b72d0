package slotlock

import (
	"context"
	"strings"
	"sync"
	"time"

	"tablebot/models"
	"tablebot/utils"

	"go.uber.org/zap"
)

// timeGrid is the fixed set of bookable slot times per day.
var timeGrid = []string{
	"11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM",
	"4:00 PM", "5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM",
	"9:00 PM", "10:00 PM",
}

// Locker hands out exclusive, time-boxed holds on (date, time) slots so two
// users cannot book the same slot concurrently. Holds auto-expire unless
// confirmed; confirmed slots are permanently booked.
//
// All read-modify-write sequences run under one coarse mutex, which is what
// guarantees that two LockSlot calls for the same key never both succeed.
type Locker struct {
	mu        sync.Mutex
	locks     map[string]*models.SlotLock
	confirmed map[string]string // key -> owning user id

	duration time.Duration
	now      func() time.Time
}

// NewLocker builds a Locker with the given hold duration.
func NewLocker(duration time.Duration) *Locker {
	return NewLockerAt(duration, time.Now)
}

// NewLockerAt injects the clock for expiry tests.
func NewLockerAt(duration time.Duration, now func() time.Time) *Locker {
	return &Locker{
		locks:     make(map[string]*models.SlotLock),
		confirmed: make(map[string]string),
		duration:  duration,
		now:       now,
	}
}

// LockKey is the canonical map key for a slot: date joined with the time
// stripped of spaces and colons, e.g. "25-12-2025_700PM".
func LockKey(date, slotTime string) string {
	t := strings.NewReplacer(" ", "", ":", "").Replace(slotTime)
	return date + "_" + t
}

// CheckAvailability reports whether a slot is free for the given user. An
// expired lock found on the way is evicted. Unknown keys are available.
func (l *Locker) CheckAvailability(date, slotTime, userID string) (bool, models.SlotStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkLocked(date, slotTime, userID)
}

// checkLocked is CheckAvailability without the mutex; callers must hold it.
func (l *Locker) checkLocked(date, slotTime, userID string) (bool, models.SlotStatus) {
	key := LockKey(date, slotTime)

	if owner, ok := l.confirmed[key]; ok {
		if owner == userID {
			return false, models.SlotConfirmedByYou
		}
		return false, models.SlotConfirmedByOther
	}

	if lock, ok := l.locks[key]; ok {
		if lock.ExpiredAt(l.now()) {
			delete(l.locks, key)
			return true, models.SlotAvailable
		}
		if lock.UserID == userID {
			return true, models.SlotLockedByYou
		}
		return false, models.SlotLockedByOther
	}

	return true, models.SlotAvailable
}

// LockSlot attempts to hold a slot for a user. A fresh hold expires after
// the configured duration; re-locking your own slot extends it.
func (l *Locker) LockSlot(date, slotTime, userID string, people int) (bool, models.SlotStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, status := l.checkLocked(date, slotTime, userID)
	key := LockKey(date, slotTime)

	switch status {
	case models.SlotConfirmedByOther, models.SlotConfirmedByYou:
		return false, models.SlotAlreadyBooked
	case models.SlotLockedByOther:
		return false, models.SlotLockedByOther
	case models.SlotLockedByYou:
		l.locks[key].ExpiresAt = l.now().Add(l.duration)
		return true, models.SlotLockExtended
	}

	now := l.now()
	l.locks[key] = &models.SlotLock{
		Key:       key,
		UserID:    userID,
		Date:      date,
		Time:      slotTime,
		People:    people,
		LockedAt:  now,
		ExpiresAt: now.Add(l.duration),
	}
	return true, models.SlotLocked
}

// ReleaseLock drops every unconfirmed hold owned by a user. Idempotent;
// reports whether anything was removed. Called on cancel, restart, and
// session expiry.
func (l *Locker) ReleaseLock(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := false
	for key, lock := range l.locks {
		if lock.UserID == userID && !lock.Confirmed {
			delete(l.locks, key)
			removed = true
		}
	}
	return removed
}

// ConfirmSlot converts a hold into a permanent booking. It only succeeds
// when the caller still owns an unconfirmed lock on the key; otherwise it
// returns false and the caller decides how hard to react.
func (l *Locker) ConfirmSlot(date, slotTime, userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := LockKey(date, slotTime)
	lock, ok := l.locks[key]
	if !ok || lock.UserID != userID {
		return false
	}
	lock.Confirmed = true
	l.confirmed[key] = userID
	return true
}

// UserLock returns the user's live unconfirmed hold, if any.
func (l *Locker) UserLock(userID string) (models.SlotLock, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for _, lock := range l.locks {
		if lock.UserID == userID && !lock.Confirmed && !lock.ExpiredAt(now) {
			return *lock, true
		}
	}
	return models.SlotLock{}, false
}

// AlternativeTimes lists up to 5 free times on the same date from the daily
// grid, in grid order, excluding the requested time.
func (l *Locker) AlternativeTimes(date, requestedTime string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var available []string
	for _, t := range timeGrid {
		if t == requestedTime {
			continue
		}
		key := LockKey(date, t)
		if _, locked := l.locks[key]; locked {
			continue
		}
		if _, booked := l.confirmed[key]; booked {
			continue
		}
		available = append(available, t)
		if len(available) == 5 {
			break
		}
	}
	return available
}

// LockedCount returns the number of live holds after evicting expired ones.
func (l *Locker) LockedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.evictExpired()
	return len(l.locks)
}

// ConfirmedCount returns the number of permanently booked slots.
func (l *Locker) ConfirmedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.confirmed)
}

func (l *Locker) evictExpired() {
	now := l.now()
	for key, lock := range l.locks {
		if !lock.Confirmed && lock.ExpiredAt(now) {
			delete(l.locks, key)
		}
	}
}

// StartSweeper runs the periodic expiry sweep until ctx is cancelled.
func (l *Locker) StartSweeper(ctx context.Context, interval time.Duration) {
	logger := utils.GetLogger().With(zap.String("component", "slotlock"))
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("slot lock sweeper stopped")
				return
			case <-ticker.C:
				l.mu.Lock()
				before := len(l.locks)
				l.evictExpired()
				evicted := before - len(l.locks)
				l.mu.Unlock()
				if evicted > 0 {
					logger.Debug("evicted expired slot locks", zap.Int("count", evicted))
				}
			}
		}
	}()
}
