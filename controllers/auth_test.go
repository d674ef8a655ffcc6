package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestChangePasswordTooShort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Password strength is checked before the user lookup, so a nil db is
	// fine here.
	ac := NewAuthController(nil)
	router := gin.New()
	router.PUT("/api/admin/change-password", ac.ChangePassword)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/change-password",
		strings.NewReader(`{"current_password":"old-secret","new_password":"short"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["message"] != "Password must be at least 8 characters" {
		t.Fatalf("message = %v", body["message"])
	}
}
