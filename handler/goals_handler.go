package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	service *usecase.GoalService
}

func NewGoalHandler(service *usecase.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

// CreateGoal handles POST /goals.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Goal  string       `json:"goal" binding:"required"`
		Todos []model.Todo `json:"todos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Goal is required")
		return
	}

	goal, err := h.service.CreateGoal(c.Request.Context(), userID.(string), req.Goal, req.Todos)
	if err != nil {
		respondServiceError(c, err, "Failed to save goal")
		return
	}

	utils.Created(c, dto.ToGoalResponse(goal))
}

// GetUserGoals handles GET /goals.
func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goals, err := h.service.GetUserGoals(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve goals")
		return
	}

	utils.Success(c, dto.ToGoalResponses(goals))
}

// UpdateGoal handles PUT /goals/:id; only the goal text changes.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("goalId")

	var req struct {
		Goal string `json:"goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Goal content is required")
		return
	}

	if err := h.service.UpdateGoalText(c.Request.Context(), goalID, userID.(string), req.Goal); err != nil {
		respondServiceError(c, err, "Failed to update goal")
		return
	}

	utils.Success(c, gin.H{"success": true})
}

// UpdateGoalCompletion handles PUT /goals/:id/completion and returns the
// post-update document.
func (h *GoalHandler) UpdateGoalCompletion(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("goalId")

	var req struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Completed flag is required")
		return
	}

	goal, err := h.service.SetGoalCompletion(c.Request.Context(), goalID, userID.(string), *req.Completed)
	if err != nil {
		respondServiceError(c, err, "Failed to update goal completion")
		return
	}

	utils.Success(c, dto.ToGoalResponse(goal))
}

// DeleteGoal handles DELETE /goals/:id.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("goalId")

	if err := h.service.DeleteGoal(c.Request.Context(), goalID, userID.(string)); err != nil {
		respondServiceError(c, err, "Failed to delete goal")
		return
	}

	utils.Success(c, gin.H{"success": true})
}
