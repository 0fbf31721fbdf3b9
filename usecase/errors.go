package usecase

import "errors"

// ErrPermissionDenied means the caller is authenticated but does not own
// the target resource. Services only return it after the existence check
// has passed, so handlers can map absence to 404 and this to 403.
var ErrPermissionDenied = errors.New("permission denied")

// Validation errors, mapped to 400 at the handler boundary.
var (
	ErrEmptyGoalText    = errors.New("goal text is required")
	ErrEmptyTodoText    = errors.New("to-do text is required")
	ErrEmptyMessageText = errors.New("message text is required")
	ErrMissingEventData = errors.New("event title and time are required")
)
