package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *usecase.MessageService
}

func NewMessageHandler(service *usecase.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// GetUserMessages handles GET /messages.
func (h *MessageHandler) GetUserMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	messages, err := h.service.GetUserMessages(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve messages")
		return
	}

	utils.Success(c, dto.ToMessageResponses(messages))
}

// CreateMessage handles POST /messages.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Message is required")
		return
	}

	message, err := h.service.CreateMessage(c.Request.Context(), userID.(string), req.Message)
	if err != nil {
		respondServiceError(c, err, "Failed to save message")
		return
	}

	utils.Created(c, message)
}

// UpdateMessage handles PUT /messages/:id.
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	messageID := c.Param("id")

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Message content is required")
		return
	}

	if err := h.service.UpdateMessageText(c.Request.Context(), messageID, userID.(string), req.Message); err != nil {
		respondServiceError(c, err, "Failed to update message")
		return
	}

	utils.Success(c, gin.H{"success": true})
}

// DeleteMessage handles DELETE /messages/:id.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	messageID := c.Param("id")

	if err := h.service.DeleteMessage(c.Request.Context(), messageID, userID.(string)); err != nil {
		respondServiceError(c, err, "Failed to delete message")
		return
	}

	utils.Success(c, gin.H{"success": true})
}
