package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	service *usecase.CheckInService
}

func NewCheckInHandler(service *usecase.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

// The :uid path segment must name the caller; check-in state is never
// visible to other users.
func (h *CheckInHandler) authorizedUID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return "", false
	}

	uid := c.Param("uid")
	if uid != userID.(string) {
		utils.Forbidden(c, "permission denied")
		return "", false
	}
	return uid, true
}

// GetCheckIn handles GET /check-in/:uid.
func (h *CheckInHandler) GetCheckIn(c *gin.Context) {
	uid, ok := h.authorizedUID(c)
	if !ok {
		return
	}

	checkIn, err := h.service.GetCheckIn(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve check-in data")
		return
	}

	utils.Success(c, checkIn)
}

// CheckIn handles POST /check-in/:uid; at most one increment per day.
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	uid, ok := h.authorizedUID(c)
	if !ok {
		return
	}

	checkIn, err := h.service.CheckInToday(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err, "Failed to check in")
		return
	}

	utils.Success(c, checkIn)
}
