package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
)

// RequestTracingMiddleware tags every request with an ID and writes an
// access-log line including the parsed client user agent.
func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		ua := useragent.Parse(c.Request.UserAgent())
		log.Printf("[%s] %s %s %d %s client=%s/%s %s",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			ua.Name,
			ua.Version,
			ua.OS,
		)
	}
}
