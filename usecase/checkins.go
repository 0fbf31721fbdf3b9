package usecase

import (
	"context"
	"time"

	"main/model"
)

type CheckInStore interface {
	GetCheckIn(ctx context.Context, userID string) (*model.CheckIn, error)
	UpsertCheckIn(ctx context.Context, checkIn *model.CheckIn) error
}

type CheckInService struct {
	store CheckInStore
	now   func() time.Time
}

func NewCheckInService(store CheckInStore) *CheckInService {
	return &CheckInService{store: store, now: time.Now}
}

const checkInDayFormat = "2006-01-02"

// GetCheckIn returns the user's check-in state, zero-valued when the user
// has never checked in.
func (svc *CheckInService) GetCheckIn(ctx context.Context, userID string) (*model.CheckIn, error) {
	checkIn, err := svc.store.GetCheckIn(ctx, userID)
	if err != nil {
		return nil, err
	}
	if checkIn == nil {
		return &model.CheckIn{UserID: userID}, nil
	}
	return checkIn, nil
}

// CheckInToday increments the counter at most once per calendar day. A
// repeat check-in on the same day returns the current state unchanged.
func (svc *CheckInService) CheckInToday(ctx context.Context, userID string) (*model.CheckIn, error) {
	today := svc.now().Format(checkInDayFormat)

	checkIn, err := svc.store.GetCheckIn(ctx, userID)
	if err != nil {
		return nil, err
	}
	if checkIn == nil {
		checkIn = &model.CheckIn{UserID: userID}
	}

	if checkIn.LastCheckIn == today {
		return checkIn, nil
	}

	checkIn.CheckInCount++
	checkIn.LastCheckIn = today

	if err := svc.store.UpsertCheckIn(ctx, checkIn); err != nil {
		return nil, err
	}
	return checkIn, nil
}
