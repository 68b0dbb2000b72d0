package reservation

import (
	"context"
	"strings"
	"testing"

	reservationRepo "tablebot/database/repository/reservation"
	"tablebot/models"
	"tablebot/services/menu"
)

// fakeConfirmer records slot confirmations without a real locker.
type fakeConfirmer struct {
	confirmed []string
	fail      bool
}

func (f *fakeConfirmer) ConfirmSlot(date, slotTime, userID string) bool {
	f.confirmed = append(f.confirmed, date+"_"+slotTime)
	return !f.fail
}

func (f *fakeConfirmer) LockedCount() int { return len(f.confirmed) }

func newTestService(confirmer *fakeConfirmer) *DefaultReservationService {
	return &DefaultReservationService{
		Repo:            reservationRepo.NewInMemoryReservationRepo(),
		Catalog:         menu.NewCatalog(),
		Locker:          confirmer,
		RestaurantName:  "Royal Chef's Restaurant",
		RestaurantPhone: "+91-9876543210",
	}
}

func testInput() CreateInput {
	return CreateInput{
		UserID:   "u1",
		Name:     "Kumar",
		People:   4,
		Date:     "25-12-2025",
		Time:     "7:00 PM",
		Event:    "birthday",
		MenuPack: "veg",
		Addons:   []string{"cake"},
		Language: models.LangEnglish,
	}
}

func TestCreateComputesCostAndConfirmsSlot(t *testing.T) {
	confirmer := &fakeConfirmer{}
	svc := newTestService(confirmer)

	result, err := svc.Create(context.Background(), testInput())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(result.ReservationID, "RC") {
		t.Fatalf("reservation id = %q, want RC prefix", result.ReservationID)
	}
	if !strings.Contains(result.ConfirmationText, "BOOKING CONFIRMED") {
		t.Fatalf("confirmation text = %q", result.ConfirmationText)
	}
	if len(confirmer.confirmed) != 1 {
		t.Fatal("create must confirm the slot hold")
	}

	stored, err := svc.GetByID(context.Background(), result.ReservationID)
	if err != nil || stored == nil {
		t.Fatalf("stored reservation missing: %v", err)
	}
	if stored.BaseCost != 4*399 || stored.AddonCost != 800 || stored.TotalCost != 4*399+800 {
		t.Fatalf("cost wrong: %+v", stored)
	}
	if stored.Status != models.ReservationConfirmed {
		t.Fatalf("status = %q, want %q", stored.Status, models.ReservationConfirmed)
	}
}

func TestCreateSurvivesLostSlotHold(t *testing.T) {
	svc := newTestService(&fakeConfirmer{fail: true})

	// An expired hold is logged, not fatal: the booking still goes through.
	result, err := svc.Create(context.Background(), testInput())
	if err != nil || result == nil {
		t.Fatalf("create should succeed despite lost hold: %v", err)
	}
}

func TestCreateFallsBackToVegForUnknownPack(t *testing.T) {
	svc := newTestService(&fakeConfirmer{})

	in := testInput()
	in.MenuPack = "mystery"
	result, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	stored, _ := svc.GetByID(context.Background(), result.ReservationID)
	if stored.MenuPack != "veg" {
		t.Fatalf("pack = %q, want veg fallback", stored.MenuPack)
	}
}

func TestCancelIsOwnerScoped(t *testing.T) {
	svc := newTestService(&fakeConfirmer{})
	result, _ := svc.Create(context.Background(), testInput())

	ok, err := svc.Cancel(context.Background(), result.ReservationID, "someone-else")
	if err != nil || ok {
		t.Fatal("cancel by a stranger must not succeed")
	}
	ok, err = svc.Cancel(context.Background(), result.ReservationID, "u1")
	if err != nil || !ok {
		t.Fatalf("owner cancel failed: %v", err)
	}

	stored, _ := svc.GetByID(context.Background(), result.ReservationID)
	if stored.Status != models.ReservationCancelled {
		t.Fatalf("status = %q, want %q", stored.Status, models.ReservationCancelled)
	}
}

func TestStats(t *testing.T) {
	svc := newTestService(&fakeConfirmer{})
	svc.Create(context.Background(), testInput())

	in := testInput()
	in.UserID = "u2"
	in.MenuPack = "deluxe"
	svc.Create(context.Background(), in)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalBookings != 2 {
		t.Fatalf("TotalBookings = %d, want 2", stats.TotalBookings)
	}
	if stats.TotalRevenue == 0 {
		t.Fatal("revenue should be summed")
	}
	if stats.PopularEvent != "birthday" {
		t.Fatalf("PopularEvent = %q, want birthday", stats.PopularEvent)
	}
}
