package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service *usecase.EventService
}

func NewEventHandler(service *usecase.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// GetUserEvents handles GET /events, ordered by event time.
func (h *EventHandler) GetUserEvents(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	events, err := h.service.GetUserEvents(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve events")
		return
	}

	utils.Success(c, dto.ToEventResponses(events))
}

// CreateEvent handles POST /events.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title       string `json:"title" binding:"required"`
		Time        string `json:"time" binding:"required,eventtime"`
		Location    string `json:"location"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Title and time are required")
		return
	}

	event := &model.Event{
		Title:       req.Title,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
	}

	created, err := h.service.CreateEvent(c.Request.Context(), userID.(string), event)
	if err != nil {
		respondServiceError(c, err, "Failed to save event")
		return
	}

	utils.Created(c, created)
}

// DeleteEvent handles DELETE /events/:id.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	eventID := c.Param("id")

	if err := h.service.DeleteEvent(c.Request.Context(), eventID, userID.(string)); err != nil {
		respondServiceError(c, err, "Failed to delete event")
		return
	}

	utils.Success(c, gin.H{"success": true})
}
