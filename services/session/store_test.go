package session

import (
	"context"
	"testing"
	"time"

	"tablebot/models"
)

// fakeReleaser records every lock release the store requests.
type fakeReleaser struct {
	released []string
}

func (f *fakeReleaser) ReleaseLock(userID string) bool {
	f.released = append(f.released, userID)
	return true
}

func newTestStore(releaser *fakeReleaser, memory MemoryStore, current *time.Time) *Store {
	return NewStoreAt(15*time.Minute, models.LangEnglish, releaser, memory,
		func() time.Time { return *current })
}

func TestGetOrCreateReturnsDetachedCopy(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	store := newTestStore(&fakeReleaser{}, nil, &current)

	s1 := store.GetOrCreate("u1")
	s1.Name = "Kumar"

	// Mutating the copy must not leak into the stored session.
	if got := store.GetOrCreate("u1").Name; got != "" {
		t.Fatalf("stored session changed without Put, name = %q", got)
	}

	store.Put(s1)
	if got := store.GetOrCreate("u1").Name; got != "Kumar" {
		t.Fatalf("Put should persist the copy, name = %q", got)
	}
}

func TestPutNeverResurrectsClearedSession(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	store := newTestStore(&fakeReleaser{}, nil, &current)

	s1 := store.GetOrCreate("u1")
	s1.Name = "Kumar"
	store.Clear("u1")
	store.Put(s1)

	if got := store.GetOrCreate("u1").Name; got != "" {
		t.Fatalf("Put after Clear must be a no-op, name = %q", got)
	}
}

func TestMessageCountCountsFirstMessage(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	store := newTestStore(&fakeReleaser{}, nil, &current)

	if got := store.GetOrCreate("u1").MessageCount; got != 1 {
		t.Fatalf("first message count = %d, want 1", got)
	}
	if got := store.GetOrCreate("u1").MessageCount; got != 2 {
		t.Fatalf("second message count = %d, want 2", got)
	}
}

func TestExpiredSessionStartsFreshAndReleasesLock(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	releaser := &fakeReleaser{}
	store := newTestStore(releaser, nil, &current)

	s1 := store.GetOrCreate("u1")
	s1.Language = models.LangTamil
	s1.Name = "Kumar"
	s1.Date = "25-12-2025"
	store.Put(s1)

	current = current.Add(16 * time.Minute)

	s2 := store.GetOrCreate("u1")
	if s2.Name != "" || s2.Date != "" {
		t.Fatal("expired session must not carry booking data forward")
	}
	if s2.Language != models.LangTamil {
		t.Fatalf("language should survive expiry, got %q", s2.Language)
	}
	if s2.Step != models.StepInit {
		t.Fatalf("fresh session step = %s, want %s", s2.Step, models.StepInit)
	}
	if len(releaser.released) != 1 || releaser.released[0] != "u1" {
		t.Fatalf("expiry must release the user's slot lock, got %v", releaser.released)
	}
}

func TestClearReleasesLock(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	releaser := &fakeReleaser{}
	store := newTestStore(releaser, nil, &current)

	store.GetOrCreate("u1")

	if !store.Clear("u1") {
		t.Fatal("clearing an existing session should report true")
	}
	if store.Clear("u1") {
		t.Fatal("clearing a missing session should report false")
	}
	if len(releaser.released) != 2 {
		t.Fatalf("every clear releases locks, got %d calls", len(releaser.released))
	}
}

func TestResetKeepsLanguageAndMemory(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	releaser := &fakeReleaser{}
	memory := NewInMemoryMemoryStore()
	if err := memory.Save(context.Background(), "u1", "Kumar", 4, "veg"); err != nil {
		t.Fatal(err)
	}
	store := newTestStore(releaser, memory, &current)

	s1 := store.GetOrCreate("u1")
	if !s1.IsReturningUser || s1.Memory == nil {
		t.Fatal("store should attach saved user memory on session creation")
	}
	s1.Language = models.LangTamil
	s1.Name = "Kumar"
	s1.People = 4
	store.Put(s1)

	s2 := store.Reset("u1")
	if s2.Name != "" || s2.People != 0 {
		t.Fatal("reset must clear booking fields")
	}
	if s2.Language != models.LangTamil {
		t.Fatalf("reset must keep language, got %q", s2.Language)
	}
	if s2.Memory == nil || s2.Memory.Name != "Kumar" {
		t.Fatal("reset must keep user memory")
	}
	if len(releaser.released) == 0 {
		t.Fatal("reset must release the user's slot lock")
	}
}

func TestSweepRemovesExpiredAndReleasesLocks(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	releaser := &fakeReleaser{}
	store := newTestStore(releaser, nil, &current)

	store.GetOrCreate("u1")
	store.GetOrCreate("u2")
	if got := store.ActiveCount(); got != 2 {
		t.Fatalf("ActiveCount = %d, want 2", got)
	}

	current = current.Add(20 * time.Minute)

	if removed := store.sweep(); removed != 2 {
		t.Fatalf("sweep removed %d, want 2", removed)
	}
	if got := store.ActiveCount(); got != 0 {
		t.Fatalf("ActiveCount after sweep = %d, want 0", got)
	}
	if len(releaser.released) != 2 {
		t.Fatalf("sweep must release locks for every expired session, got %v", releaser.released)
	}
}

func TestMemoryStoreTracksVisits(t *testing.T) {
	memory := NewInMemoryMemoryStore()
	ctx := context.Background()

	memory.Save(ctx, "u1", "Kumar", 4, "veg")
	memory.Save(ctx, "u1", "Kumar", 6, "deluxe")

	mem, err := memory.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if mem.TotalBookings != 2 {
		t.Fatalf("TotalBookings = %d, want 2", mem.TotalBookings)
	}
	if mem.LastGuests != 6 || mem.LastMenuPack != "deluxe" {
		t.Fatalf("latest preferences not kept: %+v", mem)
	}

	if missing, _ := memory.Get(ctx, "nobody"); missing != nil {
		t.Fatal("unknown user should have no memory")
	}
}
