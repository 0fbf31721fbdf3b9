package usecase

import (
	"context"
	"testing"
	"time"

	"main/test/testutils"
)

func TestCheckInOncePerDay(t *testing.T) {
	store := testutils.NewMemCheckInStore()
	svc := NewCheckInService(store)

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }

	ctx := context.Background()

	checkIn, err := svc.CheckInToday(ctx, "user-1")
	if err != nil {
		t.Fatalf("CheckInToday failed: %v", err)
	}
	if checkIn.CheckInCount != 1 || checkIn.LastCheckIn != "2025-03-10" {
		t.Fatalf("unexpected first check-in %+v", checkIn)
	}

	// Later the same day: no second increment.
	svc.now = func() time.Time { return day1.Add(8 * time.Hour) }
	checkIn, err = svc.CheckInToday(ctx, "user-1")
	if err != nil {
		t.Fatalf("CheckInToday failed: %v", err)
	}
	if checkIn.CheckInCount != 1 {
		t.Errorf("same-day check-in must not increment, got %d", checkIn.CheckInCount)
	}

	// The next day increments again.
	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	checkIn, err = svc.CheckInToday(ctx, "user-1")
	if err != nil {
		t.Fatalf("CheckInToday failed: %v", err)
	}
	if checkIn.CheckInCount != 2 || checkIn.LastCheckIn != "2025-03-11" {
		t.Errorf("unexpected next-day check-in %+v", checkIn)
	}
}

func TestGetCheckInBeforeFirstUse(t *testing.T) {
	store := testutils.NewMemCheckInStore()
	svc := NewCheckInService(store)

	checkIn, err := svc.GetCheckIn(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCheckIn failed: %v", err)
	}
	if checkIn.CheckInCount != 0 || checkIn.LastCheckIn != "" {
		t.Errorf("expected zero-valued check-in, got %+v", checkIn)
	}
}
