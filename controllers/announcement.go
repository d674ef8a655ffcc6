package controllers

import (
	"net/http"
	"strings"
	"time"

	"srif-api/middleware"
	"srif-api/models"
	"srif-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnnouncementController handles admin CRUD for news/announcements.
type AnnouncementController struct {
	db *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{db: db}
}

// List handles GET /api/admin/announcements.
func (nc *AnnouncementController) List(c *gin.Context) {
	var rows []models.Announcement
	if err := nc.db.Preload("Creator").Order("created_at DESC").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load announcements", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// Create handles POST /api/admin/announcements (multipart, optional image).
func (nc *AnnouncementController) Create(c *gin.Context) {
	titleEn := strings.TrimSpace(c.PostForm("titleEn"))
	contentEn := strings.TrimSpace(c.PostForm("contentEn"))
	if titleEn == "" || contentEn == "" {
		respondBadRequest(c, "Title and content are required")
		return
	}

	saved, err := utils.SaveFormFile(c, "image", utils.UploadOptions{
		Subdir:     "news",
		Prefix:     "news",
		Extensions: utils.ImageExtensions,
		MaxSize:    utils.MaxImageSize,
	})
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	userID, _ := c.Get(middleware.CtxUserID)

	announcementType := c.PostForm("type")
	if announcementType == "" {
		announcementType = "news"
	}
	isPublished := c.DefaultPostForm("isPublished", "true") != "false"

	row := models.Announcement{
		TitleEn:     titleEn,
		TitleAr:     optional(c.PostForm("titleAr")),
		ContentEn:   contentEn,
		ContentAr:   optional(c.PostForm("contentAr")),
		Type:        announcementType,
		IsPublished: isPublished,
		PublishedAt: time.Now(),
		CreatedBy:   userID.(int),
	}
	if saved != nil {
		row.ImagePath = &saved.Path
	}

	if err := nc.db.Create(&row).Error; err != nil {
		respondServerError(c, "Failed to create announcement", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Announcement created",
		"data":    gin.H{"id": row.ID},
	})
}

// Delete handles DELETE /api/admin/announcements/:id.
func (nc *AnnouncementController) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := nc.db.Delete(&models.Announcement{}, id).Error; err != nil {
		respondServerError(c, "Failed to delete announcement", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Announcement deleted"})
}
