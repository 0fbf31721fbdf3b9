package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// TodoHandler serves the to-do operations nested under a goal. Every
// mutation goes through the goal service's read-modify-write of the parent
// document's todos array.
type TodoHandler struct {
	service *usecase.GoalService
}

func NewTodoHandler(service *usecase.GoalService) *TodoHandler {
	return &TodoHandler{service: service}
}

// AddTodo handles POST /goals/:goalId/todos.
func (h *TodoHandler) AddTodo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("goalId")

	var req struct {
		Text      string `json:"text" binding:"required"`
		Completed bool   `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "To-do text is required")
		return
	}

	todo, err := h.service.AddTodo(c.Request.Context(), goalID, userID.(string), req.Text, req.Completed)
	if err != nil {
		respondServiceError(c, err, "Failed to add to-do")
		return
	}

	utils.Created(c, todo)
}

// UpdateTodo handles PUT /goals/:goalId/todos/:todoId. A to-do ID with no
// match succeeds without changing anything.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("goalId")
	todoID := c.Param("todoId")

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "To-do text is required")
		return
	}

	if err := h.service.UpdateTodoText(c.Request.Context(), goalID, userID.(string), todoID, req.Text); err != nil {
		respondServiceError(c, err, "Failed to update to-do")
		return
	}

	utils.Success(c, gin.H{"success": true})
}

// UpdateTodoCompletion handles PUT /goals/:goalId/todos/:todoId/completion.
func (h *TodoHandler) UpdateTodoCompletion(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("goalId")
	todoID := c.Param("todoId")

	var req struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Completed flag is required")
		return
	}

	if err := h.service.SetTodoCompletion(c.Request.Context(), goalID, userID.(string), todoID, *req.Completed); err != nil {
		respondServiceError(c, err, "Failed to update to-do completion")
		return
	}

	utils.Success(c, gin.H{"id": todoID, "completed": *req.Completed})
}

// DeleteTodo handles DELETE /goals/:goalId/todos/:todoId. Removing an
// absent to-do ID is a no-op that still reports success.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("goalId")
	todoID := c.Param("todoId")

	if err := h.service.RemoveTodo(c.Request.Context(), goalID, userID.(string), todoID); err != nil {
		respondServiceError(c, err, "Failed to delete to-do")
		return
	}

	utils.Success(c, gin.H{"success": true})
}
