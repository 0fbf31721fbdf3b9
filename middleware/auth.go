package middleware

import (
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer credential and
// attaches the authenticated user ID to the context. Per-resource ownership
// checks happen later, in the services, after the resource is loaded.
func AuthMiddleware(verifier *services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
