package usecase

import (
	"context"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// GoalStore is the document-store surface the goal service needs. The
// Mongo-backed repository implements it; tests substitute an in-memory one.
type GoalStore interface {
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error)
	GetGoalByID(ctx context.Context, goalID string) (*model.Goal, error)
	UpdateGoalText(ctx context.Context, goalID string, text string) error
	SetGoalCompletion(ctx context.Context, goalID string, completed bool) error
	ReplaceTodos(ctx context.Context, goalID string, todos []model.Todo) error
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalService owns every read and mutation of a goal and its embedded
// to-do list. To-do mutations are read-modify-write: the parent document is
// loaded, the todos slice is rewritten with one element changed, and the
// whole slice is written back as a single field update. There is no version
// token guarding the write, so two concurrent mutations of the same goal
// are last-write-wins.
type GoalService struct {
	store GoalStore
}

func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store}
}

// ownedGoal loads the goal and checks ownership, in that order. A missing
// goal reports repository.ErrGoalNotFound before ownership is ever
// considered.
func (svc *GoalService) ownedGoal(ctx context.Context, goalID string, userID string) (*model.Goal, error) {
	goal, err := svc.store.GetGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		utils.TrackError("auth", "goal_ownership_mismatch")
		return nil, ErrPermissionDenied
	}
	return goal, nil
}

// CreateGoal stores a new goal owned by the caller. The initial to-do list
// is the caller-supplied one, each entry receiving a fresh identifier.
func (svc *GoalService) CreateGoal(ctx context.Context, userID string, text string, todos []model.Todo) (*model.Goal, error) {
	if text == "" {
		return nil, ErrEmptyGoalText
	}

	if todos == nil {
		todos = []model.Todo{}
	}
	for i := range todos {
		if todos[i].ID == "" {
			todos[i].ID = uuid.New().String()
		}
	}

	goal := &model.Goal{
		UserID:    userID,
		Goal:      text,
		Completed: false,
		Timestamp: time.Now(),
		Todos:     todos,
	}

	if err := svc.store.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	utils.TrackGoalOperation("create")
	return goal, nil
}

// GetUserGoals returns the caller's goals ordered by creation time
// ascending. A store failure fails the whole call; there are no partial
// results.
func (svc *GoalService) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return svc.store.GetUserGoals(ctx, userID)
}

// UpdateGoalText rewrites only the goal text field.
func (svc *GoalService) UpdateGoalText(ctx context.Context, goalID string, userID string, text string) error {
	if text == "" {
		return ErrEmptyGoalText
	}

	if _, err := svc.ownedGoal(ctx, goalID, userID); err != nil {
		return err
	}

	if err := svc.store.UpdateGoalText(ctx, goalID, text); err != nil {
		return err
	}

	utils.TrackGoalOperation("update")
	return nil
}

// SetGoalCompletion sets the completion flag and returns the post-update
// document.
func (svc *GoalService) SetGoalCompletion(ctx context.Context, goalID string, userID string, completed bool) (*model.Goal, error) {
	goal, err := svc.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	if err := svc.store.SetGoalCompletion(ctx, goalID, completed); err != nil {
		return nil, err
	}

	goal.Completed = completed
	utils.TrackGoalOperation("update")
	return goal, nil
}

// DeleteGoal removes the goal document; the embedded to-dos are destroyed
// with it in the same single-document delete.
func (svc *GoalService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	if _, err := svc.ownedGoal(ctx, goalID, userID); err != nil {
		return err
	}

	if err := svc.store.DeleteGoal(ctx, goalID); err != nil {
		return err
	}

	utils.TrackGoalOperation("delete")
	return nil
}

// AddTodo appends a to-do with a freshly generated identifier to the
// parent's list and writes the whole list back.
func (svc *GoalService) AddTodo(ctx context.Context, goalID string, userID string, text string, completed bool) (*model.Todo, error) {
	if text == "" {
		return nil, ErrEmptyTodoText
	}

	goal, err := svc.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	todo := model.Todo{
		ID:        uuid.New().String(),
		Text:      text,
		Completed: completed,
	}
	todos := append(goal.Todos, todo)

	if err := svc.store.ReplaceTodos(ctx, goalID, todos); err != nil {
		return nil, err
	}

	utils.TrackGoalOperation("todo_add")
	return &todo, nil
}

// UpdateTodoText replaces the text of the matching entry. An identifier
// with no match is a silent no-op: the list is written back unchanged and
// the call still succeeds.
func (svc *GoalService) UpdateTodoText(ctx context.Context, goalID string, userID string, todoID string, text string) error {
	if text == "" {
		return ErrEmptyTodoText
	}

	goal, err := svc.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}

	todos := goal.Todos
	for i := range todos {
		if todos[i].ID == todoID {
			todos[i].Text = text
		}
	}

	if err := svc.store.ReplaceTodos(ctx, goalID, todos); err != nil {
		return err
	}

	utils.TrackGoalOperation("todo_update")
	return nil
}

// SetTodoCompletion sets the completion flag of the matching entry, with
// the same silent no-op rule as UpdateTodoText.
func (svc *GoalService) SetTodoCompletion(ctx context.Context, goalID string, userID string, todoID string, completed bool) error {
	goal, err := svc.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}

	todos := goal.Todos
	for i := range todos {
		if todos[i].ID == todoID {
			todos[i].Completed = completed
		}
	}

	if err := svc.store.ReplaceTodos(ctx, goalID, todos); err != nil {
		return err
	}

	utils.TrackGoalOperation("todo_update")
	return nil
}

// RemoveTodo filters the matching entry out of the list. Removing an absent
// identifier leaves the list unchanged and still succeeds.
func (svc *GoalService) RemoveTodo(ctx context.Context, goalID string, userID string, todoID string) error {
	goal, err := svc.ownedGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}

	todos := make([]model.Todo, 0, len(goal.Todos))
	for _, todo := range goal.Todos {
		if todo.ID != todoID {
			todos = append(todos, todo)
		}
	}

	if err := svc.store.ReplaceTodos(ctx, goalID, todos); err != nil {
		return err
	}

	utils.TrackGoalOperation("todo_remove")
	return nil
}
