package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
	"main/test/testutils"
)

func TestEventLifecycle(t *testing.T) {
	svc := NewEventService(testutils.NewMemEventStore())
	ctx := context.Background()

	if _, err := svc.CreateEvent(ctx, "user-1", &model.Event{Title: "standup"}); !errors.Is(err, ErrMissingEventData) {
		t.Fatalf("expected ErrMissingEventData, got %v", err)
	}

	later, err := svc.CreateEvent(ctx, "user-1", &model.Event{Title: "dinner", Time: "2025-03-10T19:00"})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	earlier, err := svc.CreateEvent(ctx, "user-1", &model.Event{Title: "standup", Time: "2025-03-10T09:30"})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	events, err := svc.GetUserEvents(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetUserEvents failed: %v", err)
	}
	if len(events) != 2 || events[0].ID != earlier.ID || events[1].ID != later.ID {
		t.Errorf("expected events ordered by time, got %+v", events)
	}

	if err := svc.DeleteEvent(ctx, later.ID, "intruder"); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
	if err := svc.DeleteEvent(ctx, later.ID, "user-1"); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}

	events, _ = svc.GetUserEvents(ctx, "user-1")
	if len(events) != 1 {
		t.Errorf("expected one event after delete, got %d", len(events))
	}
}
