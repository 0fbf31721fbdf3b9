package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"main/test/testutils"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func setupCheckInRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := usecase.NewCheckInService(testutils.NewMemCheckInStore())
	h := NewCheckInHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.GET("/check-in/:uid", h.GetCheckIn)
	router.POST("/check-in/:uid", h.CheckIn)
	return router
}

func TestCheckInHandler(t *testing.T) {
	router := setupCheckInRouter("user-123")

	t.Run("ForeignUIDForbidden", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/check-in/someone-else", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		w = doJSON(t, router, http.MethodPost, "/check-in/someone-else", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("FirstReadIsZeroValued", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/check-in/user-123", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp["checkInCount"] != float64(0) {
			t.Errorf("expected checkInCount=0, got %v", resp["checkInCount"])
		}
	})

	t.Run("CheckInOncePerDay", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/check-in/user-123", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var first map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if first["checkInCount"] != float64(1) {
			t.Errorf("expected checkInCount=1, got %v", first["checkInCount"])
		}

		// Same day again, the count must not move.
		w = doJSON(t, router, http.MethodPost, "/check-in/user-123", "")
		var second map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if second["checkInCount"] != float64(1) {
			t.Errorf("expected checkInCount to stay at 1, got %v", second["checkInCount"])
		}
	})
}
