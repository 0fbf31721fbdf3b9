package repository

import "errors"

// Sentinel errors for absent documents. Handlers map these to 404 with
// errors.Is; ownership failures are a separate usecase-level error so a
// missing resource is never reported as a permission problem.
var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrEventNotFound   = errors.New("event not found")
)
