package controllers

import (
	"net/http"
	"time"

	"srif-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsController handles the admin side of event settings.
type SettingsController struct {
	db *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{db: db}
}

// List handles GET /api/admin/settings.
func (stc *SettingsController) List(c *gin.Context) {
	var rows []models.Setting
	if err := stc.db.Order("`key`").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// Update handles PATCH /api/admin/settings with a key→value object. Unknown
// keys are ignored; only seeded settings exist.
func (stc *SettingsController) Update(c *gin.Context) {
	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondBadRequest(c, "Invalid settings payload")
		return
	}

	now := time.Now()
	for key, value := range updates {
		if err := stc.db.Model(&models.Setting{}).
			Where("`key` = ?", key).
			Updates(map[string]any{"value": value, "updated_at": now}).Error; err != nil {
			respondServerError(c, "Failed to update settings", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings updated"})
}
