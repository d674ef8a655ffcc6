package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < rateLimitMax; i++ {
		if code := do("203.0.113.7:1234"); code != http.StatusOK {
			t.Fatalf("request %d rejected with %d", i+1, code)
		}
	}
	if code := do("203.0.113.7:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("request over the budget got %d, want 429", code)
	}

	// A different client has its own budget.
	if code := do("198.51.100.9:4321"); code != http.StatusOK {
		t.Fatalf("fresh client rejected with %d", code)
	}
}
