package slotlock

import (
	"testing"
	"time"

	"tablebot/models"
)

const (
	testDate = "25-12-2025"
	testTime = "7:00 PM"
)

func TestLockKeyStripsSpacesAndColons(t *testing.T) {
	got := LockKey(testDate, testTime)
	want := "25-12-2025_700PM"
	if got != want {
		t.Fatalf("LockKey = %q, want %q", got, want)
	}
}

func TestLockSlotIsExclusive(t *testing.T) {
	l := NewLocker(3 * time.Minute)

	ok, status := l.LockSlot(testDate, testTime, "userA", 4)
	if !ok || status != models.SlotLocked {
		t.Fatalf("first lock: got (%v, %s), want (true, %s)", ok, status, models.SlotLocked)
	}

	ok, status = l.LockSlot(testDate, testTime, "userB", 2)
	if ok || status != models.SlotLockedByOther {
		t.Fatalf("second lock: got (%v, %s), want (false, %s)", ok, status, models.SlotLockedByOther)
	}
}

func TestRelockingOwnSlotExtends(t *testing.T) {
	l := NewLocker(3 * time.Minute)
	l.LockSlot(testDate, testTime, "userA", 4)

	ok, status := l.LockSlot(testDate, testTime, "userA", 4)
	if !ok || status != models.SlotLockExtended {
		t.Fatalf("relock: got (%v, %s), want (true, %s)", ok, status, models.SlotLockExtended)
	}
}

func TestExpiredLockFreesSlot(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	l := NewLockerAt(3*time.Minute, func() time.Time { return current })

	l.LockSlot(testDate, testTime, "userA", 4)

	current = current.Add(4 * time.Minute)

	available, status := l.CheckAvailability(testDate, testTime, "userB")
	if !available || status != models.SlotAvailable {
		t.Fatalf("after expiry: got (%v, %s), want (true, %s)", available, status, models.SlotAvailable)
	}

	ok, status := l.LockSlot(testDate, testTime, "userB", 2)
	if !ok || status != models.SlotLocked {
		t.Fatalf("lock after expiry: got (%v, %s), want (true, %s)", ok, status, models.SlotLocked)
	}
}

func TestReleaseLockIsIdempotent(t *testing.T) {
	l := NewLocker(3 * time.Minute)
	l.LockSlot(testDate, testTime, "userA", 4)

	if !l.ReleaseLock("userA") {
		t.Fatal("first release should report a removed lock")
	}
	if l.ReleaseLock("userA") {
		t.Fatal("second release should be a no-op")
	}
}

func TestConfirmSlotOwnerOnly(t *testing.T) {
	l := NewLocker(3 * time.Minute)
	l.LockSlot(testDate, testTime, "userA", 4)

	if l.ConfirmSlot(testDate, testTime, "userB") {
		t.Fatal("non-owner must not confirm the slot")
	}
	if !l.ConfirmSlot(testDate, testTime, "userA") {
		t.Fatal("owner confirm should succeed")
	}

	ok, status := l.LockSlot(testDate, testTime, "userB", 2)
	if ok || status != models.SlotAlreadyBooked {
		t.Fatalf("lock on booked slot: got (%v, %s), want (false, %s)", ok, status, models.SlotAlreadyBooked)
	}

	_, status = l.CheckAvailability(testDate, testTime, "userA")
	if status != models.SlotConfirmedByYou {
		t.Fatalf("owner availability: got %s, want %s", status, models.SlotConfirmedByYou)
	}
	_, status = l.CheckAvailability(testDate, testTime, "userB")
	if status != models.SlotConfirmedByOther {
		t.Fatalf("other availability: got %s, want %s", status, models.SlotConfirmedByOther)
	}
}

func TestReleaseLockSkipsConfirmed(t *testing.T) {
	l := NewLocker(3 * time.Minute)
	l.LockSlot(testDate, testTime, "userA", 4)
	l.ConfirmSlot(testDate, testTime, "userA")

	if l.ReleaseLock("userA") {
		t.Fatal("confirmed slot must survive a release")
	}
	_, status := l.CheckAvailability(testDate, testTime, "userB")
	if status != models.SlotConfirmedByOther {
		t.Fatalf("after release: got %s, want %s", status, models.SlotConfirmedByOther)
	}
}

func TestAlternativeTimes(t *testing.T) {
	l := NewLocker(3 * time.Minute)
	l.LockSlot(testDate, "8:00 PM", "userA", 4)

	alts := l.AlternativeTimes(testDate, testTime)
	if len(alts) != 5 {
		t.Fatalf("got %d alternatives, want 5", len(alts))
	}
	if alts[0] != "11:00 AM" {
		t.Fatalf("alternatives should follow grid order, first = %q", alts[0])
	}
	for _, a := range alts {
		if a == testTime {
			t.Fatal("requested time must be excluded from alternatives")
		}
		if a == "8:00 PM" {
			t.Fatal("locked time must be excluded from alternatives")
		}
	}
}

func TestLockedCountEvictsExpired(t *testing.T) {
	current := time.Date(2025, 12, 20, 18, 0, 0, 0, time.Local)
	l := NewLockerAt(3*time.Minute, func() time.Time { return current })

	l.LockSlot(testDate, "7:00 PM", "userA", 4)
	l.LockSlot(testDate, "8:00 PM", "userB", 2)
	if got := l.LockedCount(); got != 2 {
		t.Fatalf("LockedCount = %d, want 2", got)
	}

	current = current.Add(10 * time.Minute)
	if got := l.LockedCount(); got != 0 {
		t.Fatalf("LockedCount after expiry = %d, want 0", got)
	}
}
