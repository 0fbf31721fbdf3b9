package dto

import (
	"time"

	"main/model"
)

// GoalResponse mirrors the stored document. Todos always serializes as an
// array, never null, so list-rendering clients need no guards.
type GoalResponse struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Goal      string       `json:"goal"`
	Completed bool         `json:"completed"`
	Timestamp time.Time    `json:"timestamp"`
	Todos     []model.Todo `json:"todos"`
}

func ToGoalResponse(goal *model.Goal) GoalResponse {
	todos := goal.Todos
	if todos == nil {
		todos = []model.Todo{}
	}
	return GoalResponse{
		ID:        goal.ID,
		UserID:    goal.UserID,
		Goal:      goal.Goal,
		Completed: goal.Completed,
		Timestamp: goal.Timestamp,
		Todos:     todos,
	}
}

func ToGoalResponses(goals []*model.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return responses
}
