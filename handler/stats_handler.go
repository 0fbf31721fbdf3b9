package handler

import (
	"log"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	goalService    *usecase.GoalService
	messageService *usecase.MessageService
	eventService   *usecase.EventService
	checkInService *usecase.CheckInService
}

func NewStatsHandler(
	goalService *usecase.GoalService,
	messageService *usecase.MessageService,
	eventService *usecase.EventService,
	checkInService *usecase.CheckInService,
) *StatsHandler {
	return &StatsHandler{
		goalService:    goalService,
		messageService: messageService,
		eventService:   eventService,
		checkInService: checkInService,
	}
}

// GetUserStats handles GET /stats with per-user aggregate counts.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var stats model.UserStats

	goals, err := h.goalService.GetUserGoals(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching goals for stats: %v", err)
		utils.InternalError(c, "Failed to count goals")
		return
	}

	stats.GoalStats.Total = len(goals)
	for _, goal := range goals {
		if goal.Completed {
			stats.GoalStats.Completed++
		} else {
			stats.GoalStats.Pending++
		}
		for _, todo := range goal.Todos {
			stats.TodoStats.Total++
			if todo.Completed {
				stats.TodoStats.Completed++
			} else {
				stats.TodoStats.Pending++
			}
		}
	}

	messages, err := h.messageService.GetUserMessages(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching messages for stats: %v", err)
		utils.InternalError(c, "Failed to count messages")
		return
	}
	stats.MessageCount = len(messages)

	events, err := h.eventService.GetUserEvents(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching events for stats: %v", err)
		utils.InternalError(c, "Failed to count events")
		return
	}
	stats.EventCount = len(events)

	checkIn, err := h.checkInService.GetCheckIn(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching check-in for stats: %v", err)
		utils.InternalError(c, "Failed to fetch check-in data")
		return
	}
	stats.CheckInStats.Count = checkIn.CheckInCount
	stats.CheckInStats.LastCheckIn = checkIn.LastCheckIn

	utils.Success(c, gin.H{"stats": stats})
}
