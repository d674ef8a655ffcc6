package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"srif-api/middleware"
	"srif-api/models"
	"srif-api/repository"
	"srif-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminSubmissionController serves the review workflow: listings, detail,
// status updates with notification, dashboard and export.
type AdminSubmissionController struct {
	db       *gorm.DB
	notifier *services.Notifier
}

func NewAdminSubmissionController(db *gorm.DB, notifier *services.Notifier) *AdminSubmissionController {
	return &AdminSubmissionController{db: db, notifier: notifier}
}

func pageParams(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return page, limit, (page - 1) * limit
}

func paginationMeta(total int64, page, limit int) gin.H {
	pages := (total + int64(limit) - 1) / int64(limit)
	return gin.H{"total": total, "page": page, "limit": limit, "pages": pages}
}

// ListResearch handles GET /api/admin/research with status and
// affiliation-code filters.
func (asc *AdminSubmissionController) ListResearch(c *gin.Context) {
	page, limit, offset := pageParams(c)

	q := asc.db.Model(&models.ResearchSubmission{}).Preload("Affiliation")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if code := c.Query("affiliation"); code != "" {
		q = q.Where("affiliation_id IN (?)",
			asc.db.Model(&models.Affiliation{}).Select("id").Where("code = ?", code))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		respondServerError(c, "Failed to load submissions", err)
		return
	}

	var rows []models.ResearchSubmission
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load submissions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       rows,
		"pagination": paginationMeta(total, page, limit),
	})
}

// ListInnovation handles GET /api/admin/innovation with a status filter.
func (asc *AdminSubmissionController) ListInnovation(c *gin.Context) {
	page, limit, offset := pageParams(c)

	q := asc.db.Model(&models.InnovationSubmission{}).Preload("Affiliation")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		respondServerError(c, "Failed to load submissions", err)
		return
	}

	var rows []models.InnovationSubmission
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load submissions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       rows,
		"pagination": paginationMeta(total, page, limit),
	})
}

// GetSubmission handles GET /api/admin/submission/:type/:id.
func (asc *AdminSubmissionController) GetSubmission(c *gin.Context) {
	track, err := models.ParseTrack(c.Param("type"))
	if err != nil {
		respondNotFound(c, "Unknown track")
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	switch track {
	case models.TrackResearch:
		var s models.ResearchSubmission
		if err := asc.db.Preload("Affiliation").First(&s, "id = ?", id).Error; err != nil {
			respondNotFound(c, "Submission not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
	case models.TrackInnovation:
		var s models.InnovationSubmission
		if err := asc.db.Preload("Affiliation").First(&s, "id = ?", id).Error; err != nil {
			respondNotFound(c, "Submission not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
	}
}

type ReviewRequest struct {
	Status           string  `json:"status" binding:"required"`
	ReviewerNotes    *string `json:"reviewerNotes"`
	PresentationType *string `json:"presentationType"`
}

// UpdateSubmission handles PATCH /api/admin/submission/:type/:id. The status
// update and its audit row commit together; the notification email is
// best-effort and its outcome is reported in the response only.
func (asc *AdminSubmissionController) UpdateSubmission(c *gin.Context) {
	track, err := models.ParseTrack(c.Param("type"))
	if err != nil {
		respondNotFound(c, "Unknown track")
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if !models.ValidStatus(req.Status) {
		respondBadRequest(c, "Invalid status")
		return
	}

	reviewerID, _ := c.Get(middleware.CtxUserID)
	repo := repository.ForTrack(asc.db, track)

	// Snapshot before the update; the email describes the submission, not the
	// mutation.
	snap, err := repo.Snapshot(id)
	if err != nil {
		if err == repository.ErrNotFound {
			respondNotFound(c, "Submission not found")
			return
		}
		respondServerError(c, "Failed to load submission", err)
		return
	}

	upd := repository.ReviewUpdate{
		Status:           req.Status,
		ReviewerNotes:    req.ReviewerNotes,
		PresentationType: req.PresentationType,
		ReviewerID:       reviewerID.(int),
		ReviewerIP:       clientIP(c),
	}
	if err := repo.ApplyReview(id, upd); err != nil {
		if err == repository.ErrNotFound {
			respondNotFound(c, "Submission not found")
			return
		}
		respondServerError(c, "Failed to update submission", err)
		return
	}

	emailResult := services.EmailResult{Sent: false}
	if req.Status != models.StatusPending {
		notes := ""
		if req.ReviewerNotes != nil {
			notes = *req.ReviewerNotes
		}
		emailResult = asc.notifier.SendStatusEmail(*snap, track, req.Status, notes)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Submission updated successfully",
		"emailSent": emailResult.Sent,
	})
}

type recentSubmission struct {
	SubmissionID string    `json:"submission_id"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Type         string    `json:"type"`
}

// Dashboard handles GET /api/admin/dashboard.
func (asc *AdminSubmissionController) Dashboard(c *gin.Context) {
	research := repository.ForTrack(asc.db, models.TrackResearch)
	innovation := repository.ForTrack(asc.db, models.TrackInnovation)

	counts := gin.H{}
	var researchTotal, innovationTotal int64
	var err error

	if researchTotal, err = research.Count(""); err != nil {
		respondServerError(c, "Failed to load dashboard", err)
		return
	}
	if innovationTotal, err = innovation.Count(""); err != nil {
		respondServerError(c, "Failed to load dashboard", err)
		return
	}
	counts["totalSubmissions"] = researchTotal + innovationTotal
	counts["researchCount"] = researchTotal
	counts["innovationCount"] = innovationTotal

	for _, status := range []string{models.StatusApproved, models.StatusPending} {
		r, err := research.Count(status)
		if err != nil {
			respondServerError(c, "Failed to load dashboard", err)
			return
		}
		i, err := innovation.Count(status)
		if err != nil {
			respondServerError(c, "Failed to load dashboard", err)
			return
		}
		counts[status+"Count"] = r + i
	}

	var recentResearch []models.ResearchSubmission
	if err := asc.db.Order("created_at DESC").Limit(5).Find(&recentResearch).Error; err != nil {
		respondServerError(c, "Failed to load dashboard", err)
		return
	}
	var recentInnovation []models.InnovationSubmission
	if err := asc.db.Order("created_at DESC").Limit(5).Find(&recentInnovation).Error; err != nil {
		respondServerError(c, "Failed to load dashboard", err)
		return
	}

	recent := make([]recentSubmission, 0, len(recentResearch)+len(recentInnovation))
	for _, s := range recentResearch {
		recent = append(recent, recentSubmission{
			SubmissionID: s.SubmissionID,
			Author:       s.AuthorName,
			Title:        s.Title,
			Status:       s.Status,
			CreatedAt:    s.CreatedAt,
			Type:         string(models.TrackResearch),
		})
	}
	for _, s := range recentInnovation {
		recent = append(recent, recentSubmission{
			SubmissionID: s.SubmissionID,
			Author:       s.InnovatorName,
			Title:        s.Title,
			Status:       s.Status,
			CreatedAt:    s.CreatedAt,
			Type:         string(models.TrackInnovation),
		})
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	counts["recentSubmissions"] = recent

	c.JSON(http.StatusOK, gin.H{"success": true, "data": counts})
}

// Export handles GET /api/admin/export/:type?format=csv|json.
func (asc *AdminSubmissionController) Export(c *gin.Context) {
	track, err := models.ParseTrack(c.Param("type"))
	if err != nil {
		respondNotFound(c, "Unknown track")
		return
	}

	if c.DefaultQuery("format", "json") != "csv" {
		switch track {
		case models.TrackResearch:
			var rows []models.ResearchSubmission
			if err := asc.db.Preload("Affiliation").Order("created_at DESC").Find(&rows).Error; err != nil {
				respondServerError(c, "Export failed", err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
		case models.TrackInnovation:
			var rows []models.InnovationSubmission
			if err := asc.db.Preload("Affiliation").Order("created_at DESC").Find(&rows).Error; err != nil {
				respondServerError(c, "Export failed", err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
		}
		return
	}

	records, err := asc.exportCSVRecords(track)
	if err != nil {
		respondServerError(c, "Export failed", err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_submissions.csv", track))
	w := csv.NewWriter(c.Writer)
	_ = w.WriteAll(records)
}

// exportCSVRecords dumps every column of the track's table, one record per
// submission.
func (asc *AdminSubmissionController) exportCSVRecords(track models.Track) ([][]string, error) {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	derefInt := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}
	derefTime := func(p *time.Time) string {
		if p == nil {
			return ""
		}
		return p.Format(time.RFC3339)
	}

	if track == models.TrackResearch {
		records := [][]string{{
			"id", "submission_id", "author_name", "supervisor_name", "team_members",
			"email", "affiliation", "external_institution", "title", "background",
			"methods", "results", "conclusion", "file_name", "status",
			"presentation_type", "reviewer_notes", "reviewed_by", "reviewed_at",
			"created_at", "updated_at",
		}}
		var rows []models.ResearchSubmission
		if err := asc.db.Preload("Affiliation").Order("created_at DESC").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, s := range rows {
			records = append(records, []string{
				strconv.Itoa(s.ID), s.SubmissionID, s.AuthorName, s.SupervisorName,
				deref(s.TeamMembers), s.Email, s.Affiliation.NameEn,
				deref(s.ExternalInstitution), s.Title, s.Background, s.Methods,
				s.Results, s.Conclusion, deref(s.FileName), s.Status,
				deref(s.PresentationType), deref(s.ReviewerNotes),
				derefInt(s.ReviewedBy), derefTime(s.ReviewedAt),
				s.CreatedAt.Format(time.RFC3339), s.UpdatedAt.Format(time.RFC3339),
			})
		}
		return records, nil
	}

	records := [][]string{{
		"id", "submission_id", "innovator_name", "mentor_name", "team_members",
		"email", "affiliation", "external_institution", "title",
		"problem_statement", "innovation_description", "key_features",
		"implementation", "file_name", "status", "presentation_type",
		"reviewer_notes", "reviewed_by", "reviewed_at", "created_at", "updated_at",
	}}
	var rows []models.InnovationSubmission
	if err := asc.db.Preload("Affiliation").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, s := range rows {
		records = append(records, []string{
			strconv.Itoa(s.ID), s.SubmissionID, s.InnovatorName, s.MentorName,
			deref(s.TeamMembers), s.Email, s.Affiliation.NameEn,
			deref(s.ExternalInstitution), s.Title, s.ProblemStatement,
			s.InnovationDescription, s.KeyFeatures, s.Implementation,
			deref(s.FileName), s.Status, deref(s.PresentationType),
			deref(s.ReviewerNotes), derefInt(s.ReviewedBy), derefTime(s.ReviewedAt),
			s.CreatedAt.Format(time.RFC3339), s.UpdatedAt.Format(time.RFC3339),
		})
	}
	return records, nil
}
