package handler

import (
	"errors"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates service failures into status codes:
// validation 400, ownership 403, absence 404, anything else 500 with the
// operation-specific fallback message. Step ordering in the services
// guarantees absence is detected before ownership, so the 404/403 split
// here is faithful.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrEmptyGoalText),
		errors.Is(err, usecase.ErrEmptyTodoText),
		errors.Is(err, usecase.ErrEmptyMessageText),
		errors.Is(err, usecase.ErrMissingEventData):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrPermissionDenied):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrMessageNotFound),
		errors.Is(err, repository.ErrEventNotFound):
		utils.NotFound(c, err.Error())
	default:
		utils.InternalError(c, fallback)
	}
}
