package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process liveness plus host CPU and memory usage.
// Unauthenticated; mounted outside the protected route group.
func HealthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "ok",
		"time":           time.Now().UTC(),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
