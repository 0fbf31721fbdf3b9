package usecase

import (
	"context"
	"time"

	"main/model"
	"main/utils"
)

type EventStore interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	GetUserEvents(ctx context.Context, userID string) ([]*model.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*model.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type EventService struct {
	store EventStore
}

func NewEventService(store EventStore) *EventService {
	return &EventService{store: store}
}

func (svc *EventService) CreateEvent(ctx context.Context, userID string, event *model.Event) (*model.Event, error) {
	if event.Title == "" || event.Time == "" {
		return nil, ErrMissingEventData
	}

	event.UserID = userID
	event.CreatedAt = time.Now()

	if err := svc.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (svc *EventService) GetUserEvents(ctx context.Context, userID string) ([]*model.Event, error) {
	return svc.store.GetUserEvents(ctx, userID)
}

func (svc *EventService) DeleteEvent(ctx context.Context, eventID string, userID string) error {
	event, err := svc.store.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.UserID != userID {
		utils.TrackError("auth", "event_ownership_mismatch")
		return ErrPermissionDenied
	}

	return svc.store.DeleteEvent(ctx, eventID)
}
