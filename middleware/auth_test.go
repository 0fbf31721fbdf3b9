package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/config"
	"main/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "auth-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	verifier := services.NewTokenVerifier(config.JWTConfig{
		SecretKey: testSecret,
		Issuer:    "toGoals",
	}, nil)

	router := gin.New()
	router.Use(AuthMiddleware(verifier))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := setupAuthRouter()

	validToken := signToken(t, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iss":     "toGoals",
	})

	tests := []struct {
		name          string
		authHeader    string
		expectedCode  int
		expectedError string
	}{
		{
			name:          "NoHeader",
			authHeader:    "",
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Missing or invalid token",
		},
		{
			name:          "WrongScheme",
			authHeader:    "Basic dXNlcjpwYXNz",
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Missing or invalid token",
		},
		{
			name:          "GarbageToken",
			authHeader:    "Bearer not-a-jwt",
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid token",
		},
		{
			name: "ExpiredToken",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id": "user-123",
				"exp":     time.Now().Add(-time.Hour).Unix(),
				"iss":     "toGoals",
			}),
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid token",
		},
		{
			name: "RefreshTokenRejected",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id": "user-123",
				"exp":     time.Now().Add(time.Hour).Unix(),
				"iss":     "toGoals",
				"type":    "refresh",
			}),
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid token",
		},
		{
			name: "WrongIssuer",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id": "user-123",
				"exp":     time.Now().Add(time.Hour).Unix(),
				"iss":     "someone-else",
			}),
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid token",
		},
		{
			name:         "ValidToken",
			authHeader:   "Bearer " + validToken,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if tt.expectedError != "" && resp["error"] != tt.expectedError {
				t.Errorf("expected error %q, got %v", tt.expectedError, resp["error"])
			}
			if tt.expectedCode == http.StatusOK && resp["user_id"] != "user-123" {
				t.Errorf("expected user_id to flow through, got %v", resp["user_id"])
			}
		})
	}
}
