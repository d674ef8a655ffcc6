package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"srif-api/models"
	"srif-api/repository"
	"srif-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmissionController accepts public abstract submissions and answers status
// checks.
type SubmissionController struct {
	db *gorm.DB
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{db: db}
}

// GenerateSubmissionID builds a public id like R2026-0481. The 4-digit suffix
// is random with no uniqueness retry; the column's UNIQUE constraint turns a
// collision into an insert error.
func GenerateSubmissionID(track models.Track) string {
	return fmt.Sprintf("%s%d-%04d", track.Prefix(), time.Now().Year(), rand.Intn(10000))
}

// resolveAffiliation maps a form affiliation code to its row id.
func (sc *SubmissionController) resolveAffiliation(code string) (int, error) {
	var aff models.Affiliation
	if err := sc.db.First(&aff, "code = ?", code).Error; err != nil {
		return 0, err
	}
	return aff.ID, nil
}

func (sc *SubmissionController) saveAbstractFile(c *gin.Context) (*utils.SavedFile, bool) {
	saved, err := utils.SaveFormFile(c, "file", utils.UploadOptions{
		Extensions: utils.DocumentExtensions,
		MaxSize:    utils.MaxDocumentSize,
	})
	if err != nil {
		respondBadRequest(c, err.Error())
		return nil, false
	}
	return saved, true
}

// SubmitResearch handles POST /api/submissions/research (multipart).
func (sc *SubmissionController) SubmitResearch(c *gin.Context) {
	required := map[string]string{
		"authorName":       c.PostForm("authorName"),
		"supervisorName":   c.PostForm("supervisorName"),
		"email":            c.PostForm("email"),
		"affiliation":      c.PostForm("affiliation"),
		"title":            c.PostForm("title"),
		"background":       c.PostForm("background"),
		"methods":          c.PostForm("methods"),
		"results":          c.PostForm("results"),
		"conclusion":       c.PostForm("conclusion"),
		"presentationType": c.PostForm("presentationType"),
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			respondBadRequest(c, "All required fields must be filled")
			return
		}
	}

	affiliationID, err := sc.resolveAffiliation(required["affiliation"])
	if err != nil {
		respondBadRequest(c, "Invalid affiliation")
		return
	}

	saved, ok := sc.saveAbstractFile(c)
	if !ok {
		return
	}

	submission := models.ResearchSubmission{
		SubmissionID:        GenerateSubmissionID(models.TrackResearch),
		AuthorName:          required["authorName"],
		SupervisorName:      required["supervisorName"],
		TeamMembers:         optional(c.PostForm("teamMembers")),
		Email:               required["email"],
		AffiliationID:       affiliationID,
		ExternalInstitution: optional(c.PostForm("externalInstitution")),
		Title:               required["title"],
		Background:          required["background"],
		Methods:             required["methods"],
		Results:             required["results"],
		Conclusion:          required["conclusion"],
		Status:              models.StatusPending,
		PresentationType:    optional(required["presentationType"]),
	}
	if saved != nil {
		submission.FilePath = &saved.Path
		submission.FileName = &saved.OriginalName
	}

	if err := sc.db.Create(&submission).Error; err != nil {
		respondServerError(c, "Failed to submit abstract. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Research abstract submitted successfully",
		"data": gin.H{
			"submissionId": submission.SubmissionID,
			"message":      "You will receive a confirmation email shortly",
		},
	})
}

// SubmitInnovation handles POST /api/submissions/innovation (multipart).
func (sc *SubmissionController) SubmitInnovation(c *gin.Context) {
	required := map[string]string{
		"innovatorName":         c.PostForm("innovatorName"),
		"mentorName":            c.PostForm("mentorName"),
		"email":                 c.PostForm("email"),
		"affiliation":           c.PostForm("affiliation"),
		"title":                 c.PostForm("title"),
		"problemStatement":      c.PostForm("problemStatement"),
		"innovationDescription": c.PostForm("innovationDescription"),
		"keyFeatures":           c.PostForm("keyFeatures"),
		"implementation":        c.PostForm("implementation"),
		"presentationType":      c.PostForm("presentationType"),
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			respondBadRequest(c, "All required fields must be filled")
			return
		}
	}

	affiliationID, err := sc.resolveAffiliation(required["affiliation"])
	if err != nil {
		respondBadRequest(c, "Invalid affiliation")
		return
	}

	saved, ok := sc.saveAbstractFile(c)
	if !ok {
		return
	}

	submission := models.InnovationSubmission{
		SubmissionID:          GenerateSubmissionID(models.TrackInnovation),
		InnovatorName:         required["innovatorName"],
		MentorName:            required["mentorName"],
		TeamMembers:           optional(c.PostForm("teamMembers")),
		Email:                 required["email"],
		AffiliationID:         affiliationID,
		ExternalInstitution:   optional(c.PostForm("externalInstitution")),
		Title:                 required["title"],
		ProblemStatement:      required["problemStatement"],
		InnovationDescription: required["innovationDescription"],
		KeyFeatures:           required["keyFeatures"],
		Implementation:        required["implementation"],
		Status:                models.StatusPending,
		PresentationType:      optional(required["presentationType"]),
	}
	if saved != nil {
		submission.FilePath = &saved.Path
		submission.FileName = &saved.OriginalName
	}

	if err := sc.db.Create(&submission).Error; err != nil {
		respondServerError(c, "Failed to submit abstract. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Innovation abstract submitted successfully",
		"data": gin.H{
			"submissionId": submission.SubmissionID,
			"message":      "You will receive a confirmation email shortly",
		},
	})
}

// GetStatus handles GET /api/submissions/status/:id. The track is inferred
// from the id prefix.
func (sc *SubmissionController) GetStatus(c *gin.Context) {
	id := c.Param("id")
	repo := repository.ForTrack(sc.db, models.TrackForSubmissionID(id))

	status, err := repo.StatusByCode(id)
	if err != nil {
		if err == repository.ErrNotFound {
			respondNotFound(c, "Submission not found")
			return
		}
		respondServerError(c, "Failed to load submission", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": status})
}
