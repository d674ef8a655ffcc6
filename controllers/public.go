package controllers

import (
	"net/http"
	"time"

	"srif-api/models"
	"srif-api/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicController serves the unauthenticated read API consumed by the
// conference site.
type PublicController struct {
	db *gorm.DB
}

func NewPublicController(db *gorm.DB) *PublicController {
	return &PublicController{db: db}
}

// Health handles GET /api/health.
func (pc *PublicController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "SRIF 2026 API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Affiliations handles GET /api/affiliations.
func (pc *PublicController) Affiliations(c *gin.Context) {
	var rows []models.Affiliation
	if err := pc.db.Order("id").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load affiliations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// Settings handles GET /api/settings, returning a key→value object.
func (pc *PublicController) Settings(c *gin.Context) {
	var rows []models.Setting
	if err := pc.db.Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load settings", err)
		return
	}

	settings := make(map[string]string, len(rows))
	for _, s := range rows {
		settings[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// Announcements handles GET /api/announcements: the latest 10 published items.
func (pc *PublicController) Announcements(c *gin.Context) {
	var rows []models.Announcement
	if err := pc.db.Where("is_published = ?", true).
		Order("published_at DESC").Limit(10).Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load announcements", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// News handles GET /api/news: the latest 20 published items.
func (pc *PublicController) News(c *gin.Context) {
	var rows []models.Announcement
	if err := pc.db.Where("is_published = ?", true).
		Order("published_at DESC").Limit(20).Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load news", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// NewsItem handles GET /api/news/:id.
func (pc *PublicController) NewsItem(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var row models.Announcement
	if err := pc.db.Where("id = ? AND is_published = ?", id, true).First(&row).Error; err != nil {
		respondNotFound(c, "News not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

// Gallery handles GET /api/gallery: visible images, optionally by category.
func (pc *PublicController) Gallery(c *gin.Context) {
	q := pc.db.Where("is_visible = ?", true)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []models.GalleryImage
	if err := q.Order("sort_order ASC, created_at DESC").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load gallery", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// Stats handles GET /api/stats: public submission counters.
func (pc *PublicController) Stats(c *gin.Context) {
	research := repository.ForTrack(pc.db, models.TrackResearch)
	innovation := repository.ForTrack(pc.db, models.TrackInnovation)

	researchCount, err := research.Count("")
	if err != nil {
		respondServerError(c, "Failed to load stats", err)
		return
	}
	innovationCount, err := innovation.Count("")
	if err != nil {
		respondServerError(c, "Failed to load stats", err)
		return
	}
	researchApproved, err := research.Count(models.StatusApproved)
	if err != nil {
		respondServerError(c, "Failed to load stats", err)
		return
	}
	innovationApproved, err := innovation.Count(models.StatusApproved)
	if err != nil {
		respondServerError(c, "Failed to load stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalSubmissions": researchCount + innovationCount,
			"researchCount":    researchCount,
			"innovationCount":  innovationCount,
			"approvedCount":    researchApproved + innovationApproved,
		},
	})
}
