package controllers

import (
	"database/sql/driver"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"srif-api/config"
	"srif-api/middleware"
	"srif-api/services"

	"github.com/gin-gonic/gin"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// Invalid-track and invalid-status requests are rejected before any
	// database access.
	asc := NewAdminSubmissionController(nil, nil)
	router := gin.New()
	router.PATCH("/api/admin/submission/:type/:id", asc.UpdateSubmission)
	return router
}

func TestUpdateSubmissionUnknownTrack(t *testing.T) {
	router := newAdminRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/submission/poster/1",
		strings.NewReader(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["message"] != "Unknown track" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestUpdateSubmissionInvalidStatus(t *testing.T) {
	router := newAdminRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/submission/research/1",
		strings.NewReader(`{"status":"accepted"}`))
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
	if body["message"] != "Invalid status" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestUpdateSubmissionMissingStatus(t *testing.T) {
	router := newAdminRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/submission/research/1",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateSubmissionUnconfiguredSMTPStillUpdates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("FROM `research_submissions` WHERE id = "),
			args:    []driver.Value{int64(7)},
			columns: []string{"id", "submission_id", "author_name", "email", "title", "status"},
			rows: [][]driver.Value{
				{int64(7), "R2026-0042", "Amina Hassan", "amina@example.edu", "Toward Better Irrigation", "pending"},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("^UPDATE `research_submissions` SET .*`status`=.* WHERE `id` = "),
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("^INSERT INTO `activity_logs` "),
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	asc := NewAdminSubmissionController(db, services.NewNotifier(&config.Mailer{}))
	router := gin.New()
	router.PATCH("/api/admin/submission/:type/:id", func(c *gin.Context) {
		c.Set(middleware.CtxUserID, 3)
	}, asc.UpdateSubmission)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/submission/research/7",
		strings.NewReader(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	// Without SMTP credentials the update commits and the response just
	// reports that no mail went out.
	if body["success"] != true || body["emailSent"] != false {
		t.Fatalf("unexpected response: %v", body)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestExportCSVDumpsEveryColumn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("FROM `research_submissions` ORDER BY created_at DESC"),
			columns: []string{
				"id", "submission_id", "author_name", "supervisor_name", "email",
				"affiliation_id", "title", "background", "methods", "results",
				"conclusion", "status", "created_at", "updated_at",
			},
			rows: [][]driver.Value{
				{
					int64(1), "R2026-0042", "Amina Hassan", "Dr. Rania Saleh",
					"amina@example.edu", int64(2), "Toward Better Irrigation",
					"Water scarcity...", "Field trials...", "Yield up 12%...",
					"Drip wins...", "approved", created, created,
				},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("FROM `affiliations` WHERE "),
			columns: []string{"id", "name_en"},
			rows: [][]driver.Value{
				{int64(2), "AlMaarefa University, College of Pharmacy"},
			},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	asc := NewAdminSubmissionController(db, nil)
	router := gin.New()
	router.GET("/api/admin/export/:type", asc.Export)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export/research?format=csv", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q", ct)
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	header, row := records[0], records[1]
	if len(header) != 21 || len(row) != 21 {
		t.Fatalf("got %d/%d columns, want 21", len(header), len(row))
	}
	if header[9] != "background" || row[9] != "Water scarcity..." {
		t.Fatalf("abstract body columns missing: %q=%q", header[9], row[9])
	}
	if row[1] != "R2026-0042" || row[6] != "AlMaarefa University, College of Pharmacy" {
		t.Fatalf("unexpected row: %v", row)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query                   string
		page, limit, wantOffset int
	}{
		{"", 1, 50, 0},
		{"page=3&limit=20", 3, 20, 40},
		{"page=0&limit=0", 1, 50, 0},
		{"page=2&limit=500", 2, 50, 50},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)

		page, limit, offset := pageParams(c)
		if page != tc.page || limit != tc.limit || offset != tc.wantOffset {
			t.Errorf("pageParams(%q) = %d, %d, %d; want %d, %d, %d",
				tc.query, page, limit, offset, tc.page, tc.limit, tc.wantOffset)
		}
	}
}
