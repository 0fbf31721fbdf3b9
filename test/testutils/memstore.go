// Package testutils provides in-memory store implementations so usecase and
// handler tests run without a live MongoDB instance. The fakes mirror the
// Mongo repositories' contracts, including the not-found sentinels and the
// unguarded last-write-wins rewrite of a goal's todos array.
package testutils

import (
	"context"
	"sort"
	"sync"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

type MemGoalStore struct {
	mu    sync.Mutex
	goals map[string]*model.Goal
}

func NewMemGoalStore() *MemGoalStore {
	return &MemGoalStore{goals: make(map[string]*model.Goal)}
}

func cloneGoal(goal *model.Goal) *model.Goal {
	clone := *goal
	clone.Todos = append([]model.Todo(nil), goal.Todos...)
	return &clone
}

func (s *MemGoalStore) CreateGoal(_ context.Context, goal *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	s.goals[goal.ID] = cloneGoal(goal)
	return nil
}

func (s *MemGoalStore) GetUserGoals(_ context.Context, userID string) ([]*model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []*model.Goal
	for _, goal := range s.goals {
		if goal.UserID == userID {
			goals = append(goals, cloneGoal(goal))
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Timestamp.Before(goals[j].Timestamp)
	})
	return goals, nil
}

func (s *MemGoalStore) GetGoalByID(_ context.Context, goalID string) (*model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[goalID]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	return cloneGoal(goal), nil
}

func (s *MemGoalStore) UpdateGoalText(_ context.Context, goalID string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[goalID]
	if !ok {
		return repository.ErrGoalNotFound
	}
	goal.Goal = text
	return nil
}

func (s *MemGoalStore) SetGoalCompletion(_ context.Context, goalID string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[goalID]
	if !ok {
		return repository.ErrGoalNotFound
	}
	goal.Completed = completed
	return nil
}

func (s *MemGoalStore) ReplaceTodos(_ context.Context, goalID string, todos []model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[goalID]
	if !ok {
		return repository.ErrGoalNotFound
	}
	goal.Todos = append([]model.Todo(nil), todos...)
	return nil
}

func (s *MemGoalStore) DeleteGoal(_ context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[goalID]; !ok {
		return repository.ErrGoalNotFound
	}
	delete(s.goals, goalID)
	return nil
}

type MemMessageStore struct {
	mu       sync.Mutex
	messages map[string]*model.Message
}

func NewMemMessageStore() *MemMessageStore {
	return &MemMessageStore{messages: make(map[string]*model.Message)}
}

func (s *MemMessageStore) CreateMessage(_ context.Context, message *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	clone := *message
	s.messages[message.ID] = &clone
	return nil
}

func (s *MemMessageStore) GetUserMessages(_ context.Context, userID string) ([]*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []*model.Message
	for _, message := range s.messages {
		if message.UserID == userID {
			clone := *message
			messages = append(messages, &clone)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (s *MemMessageStore) GetMessageByID(_ context.Context, messageID string) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.messages[messageID]
	if !ok {
		return nil, repository.ErrMessageNotFound
	}
	clone := *message
	return &clone, nil
}

func (s *MemMessageStore) UpdateMessageText(_ context.Context, messageID string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.messages[messageID]
	if !ok {
		return repository.ErrMessageNotFound
	}
	message.Message = text
	return nil
}

func (s *MemMessageStore) DeleteMessage(_ context.Context, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[messageID]; !ok {
		return repository.ErrMessageNotFound
	}
	delete(s.messages, messageID)
	return nil
}

type MemEventStore struct {
	mu     sync.Mutex
	events map[string]*model.Event
}

func NewMemEventStore() *MemEventStore {
	return &MemEventStore{events: make(map[string]*model.Event)}
}

func (s *MemEventStore) CreateEvent(_ context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	clone := *event
	s.events[event.ID] = &clone
	return nil
}

func (s *MemEventStore) GetUserEvents(_ context.Context, userID string) ([]*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []*model.Event
	for _, event := range s.events {
		if event.UserID == userID {
			clone := *event
			events = append(events, &clone)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	return events, nil
}

func (s *MemEventStore) GetEventByID(_ context.Context, eventID string) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	clone := *event
	return &clone, nil
}

func (s *MemEventStore) DeleteEvent(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[eventID]; !ok {
		return repository.ErrEventNotFound
	}
	delete(s.events, eventID)
	return nil
}

type MemCheckInStore struct {
	mu       sync.Mutex
	checkIns map[string]*model.CheckIn
}

func NewMemCheckInStore() *MemCheckInStore {
	return &MemCheckInStore{checkIns: make(map[string]*model.CheckIn)}
}

func (s *MemCheckInStore) GetCheckIn(_ context.Context, userID string) (*model.CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checkIn, ok := s.checkIns[userID]
	if !ok {
		return nil, nil
	}
	clone := *checkIn
	return &clone, nil
}

func (s *MemCheckInStore) UpsertCheckIn(_ context.Context, checkIn *model.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *checkIn
	s.checkIns[checkIn.UserID] = &clone
	return nil
}
