package session

import (
	"context"
	"sync"
	"time"

	"tablebot/models"
	"tablebot/utils"

	"go.uber.org/zap"
)

// LockReleaser frees any slot hold a user owns. Satisfied by the slot
// locker; kept narrow so the session store never reaches deeper into it.
type LockReleaser interface {
	ReleaseLock(userID string) bool
}

// Store holds every live conversation session, keyed by user id. Sessions
// idle past the timeout are treated as absent on lookup and removed by the
// periodic sweep; both paths release the user's slot lock first, so a dead
// session can never strand a hold.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*models.Session

	timeout     time.Duration
	defaultLang string
	locker      LockReleaser
	memory      MemoryStore
	now         func() time.Time
	logger      *zap.Logger
}

// NewStore builds a session store. memory may be nil when returning-user
// memory is disabled.
func NewStore(timeout time.Duration, defaultLang string, locker LockReleaser, memory MemoryStore) *Store {
	return NewStoreAt(timeout, defaultLang, locker, memory, time.Now)
}

// NewStoreAt injects the clock for expiry tests.
func NewStoreAt(timeout time.Duration, defaultLang string, locker LockReleaser, memory MemoryStore, now func() time.Time) *Store {
	return &Store{
		sessions:    make(map[string]*models.Session),
		timeout:     timeout,
		defaultLang: defaultLang,
		locker:      locker,
		memory:      memory,
		now:         now,
		logger:      utils.GetLogger().With(zap.String("component", "session")),
	}
}

func (s *Store) newSession(userID, lang string) *models.Session {
	now := s.now()
	sess := &models.Session{
		UserID:       userID,
		Step:         models.StepInit,
		Language:     lang,
		CreatedAt:    now,
		LastActivity: now,
		// The message that created the session is message one.
		MessageCount: 1,
	}
	s.attachMemory(sess)
	return sess
}

// detach hands out a copy so callers never share a pointer with the store.
func detach(sess *models.Session) *models.Session {
	c := *sess
	return &c
}

func (s *Store) attachMemory(sess *models.Session) {
	if s.memory == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	mem, err := s.memory.Get(ctx, sess.UserID)
	if err != nil {
		s.logger.Warn("user memory lookup failed", zap.String("userId", sess.UserID), zap.Error(err))
		return
	}
	if mem != nil {
		sess.IsReturningUser = true
		sess.Memory = mem
	}
}

// GetOrCreate returns the user's live session, replacing it with a fresh one
// when expired. A replacement keeps the old session's language and releases
// any slot lock the dead session still owned.
//
// The result is a detached copy: mutate it freely and persist with Put.
// Only the store ever touches the stored structs, so Snapshot, ActiveCount,
// and the sweeper never race with a conversation in flight.
func (s *Store) GetOrCreate(userID string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		if !sess.Expired(s.timeout, s.now()) {
			sess.Touch(s.now())
			return detach(sess)
		}
		s.logger.Info("session expired, starting fresh", zap.String("userId", userID))
		s.locker.ReleaseLock(userID)
		fresh := s.newSession(userID, sess.Language)
		s.sessions[userID] = fresh
		return detach(fresh)
	}

	sess := s.newSession(userID, s.defaultLang)
	s.sessions[userID] = sess
	s.logger.Info("session created", zap.String("userId", userID))
	return detach(sess)
}

// Put writes a copy from GetOrCreate back into the store. A session cleared
// or expired in the meantime stays gone; Put never resurrects one.
func (s *Store) Put(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.sessions[sess.UserID]; ok {
		*cur = *sess
	}
}

// Update applies fn to the user's session under the store mutex.
func (s *Store) Update(userID string, fn func(*models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		fn(sess)
		sess.LastActivity = s.now()
	}
}

// Reset clears the booking fields but keeps language and memory, and
// releases any slot lock the user held.
func (s *Store) Reset(userID string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locker.ReleaseLock(userID)

	lang := s.defaultLang
	var mem *models.UserMemory
	returning := false
	if old, ok := s.sessions[userID]; ok {
		lang = old.Language
		mem = old.Memory
		returning = old.IsReturningUser
	}

	now := s.now()
	fresh := &models.Session{
		UserID:          userID,
		Step:            models.StepInit,
		Language:        lang,
		CreatedAt:       now,
		LastActivity:    now,
		IsReturningUser: returning,
		Memory:          mem,
	}
	s.sessions[userID] = fresh
	return detach(fresh)
}

// Clear deletes the session entirely, releasing any slot lock first.
// Reports whether a session existed.
func (s *Store) Clear(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locker.ReleaseLock(userID)
	if _, ok := s.sessions[userID]; ok {
		delete(s.sessions, userID)
		s.logger.Info("session cleared", zap.String("userId", userID))
		return true
	}
	return false
}

// SetLanguage switches the session language in place.
func (s *Store) SetLanguage(userID, lang string) {
	s.Update(userID, func(sess *models.Session) {
		sess.Language = lang
	})
}

// SaveUserMemory records the user's name and preferences for next time.
func (s *Store) SaveUserMemory(ctx context.Context, userID, name string, guests int, menuPack string) {
	if s.memory == nil {
		return
	}
	if err := s.memory.Save(ctx, userID, name, guests, menuPack); err != nil {
		s.logger.Warn("saving user memory failed", zap.String("userId", userID), zap.Error(err))
	}
}

// ActiveCount returns the number of non-expired sessions.
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	count := 0
	for _, sess := range s.sessions {
		if !sess.Expired(s.timeout, now) {
			count++
		}
	}
	return count
}

// Snapshot returns copies of all live sessions for the admin surface.
func (s *Store) Snapshot() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]models.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if !sess.Expired(s.timeout, now) {
			out = append(out, *sess)
		}
	}
	return out
}

func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for userID, sess := range s.sessions {
		if sess.Expired(s.timeout, now) {
			s.locker.ReleaseLock(userID)
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}

// StartSweeper runs the periodic idle-expiry sweep until ctx is cancelled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("session sweeper stopped")
				return
			case <-ticker.C:
				if removed := s.sweep(); removed > 0 {
					s.logger.Info("swept expired sessions", zap.Int("count", removed))
				}
			}
		}
	}()
}
