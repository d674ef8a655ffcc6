package controllers

import (
	"net/http"

	"srif-api/middleware"
	"srif-api/models"
	"srif-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GalleryController handles admin CRUD for gallery images.
type GalleryController struct {
	db *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{db: db}
}

// List handles GET /api/admin/gallery.
func (gc *GalleryController) List(c *gin.Context) {
	var rows []models.GalleryImage
	if err := gc.db.Preload("Uploader").
		Order("sort_order ASC, created_at DESC").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load gallery", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// Upload handles POST /api/admin/gallery. The image is required; new uploads
// go to the end of the sort order.
func (gc *GalleryController) Upload(c *gin.Context) {
	saved, err := utils.SaveFormFile(c, "image", utils.UploadOptions{
		Subdir:     "gallery",
		Prefix:     "gallery",
		Extensions: utils.ImageExtensions,
		MaxSize:    utils.MaxImageSize,
	})
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if saved == nil {
		respondBadRequest(c, "Image file is required")
		return
	}

	var maxOrder int
	if err := gc.db.Model(&models.GalleryImage{}).
		Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error; err != nil {
		respondServerError(c, "Failed to upload image", err)
		return
	}

	userID, _ := c.Get(middleware.CtxUserID)

	category := c.PostForm("category")
	if category == "" {
		category = "general"
	}

	row := models.GalleryImage{
		ImagePath:  saved.Path,
		CaptionEn:  optional(c.PostForm("captionEn")),
		CaptionAr:  optional(c.PostForm("captionAr")),
		Category:   category,
		SortOrder:  maxOrder + 1,
		IsVisible:  true,
		UploadedBy: userID.(int),
	}

	if err := gc.db.Create(&row).Error; err != nil {
		respondServerError(c, "Failed to upload image", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    gin.H{"id": row.ID, "path": row.ImagePath},
	})
}

type GalleryUpdateRequest struct {
	CaptionEn *string `json:"captionEn"`
	CaptionAr *string `json:"captionAr"`
	Category  *string `json:"category"`
	SortOrder *int    `json:"sortOrder"`
	IsVisible *bool   `json:"isVisible"`
}

// Update handles PATCH /api/admin/gallery/:id; only the provided fields
// change.
func (gc *GalleryController) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req GalleryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.CaptionEn != nil {
		updates["caption_en"] = *req.CaptionEn
	}
	if req.CaptionAr != nil {
		updates["caption_ar"] = *req.CaptionAr
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Nothing to update"})
		return
	}

	if err := gc.db.Model(&models.GalleryImage{ID: id}).Updates(updates).Error; err != nil {
		respondServerError(c, "Failed to update image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image updated"})
}

// Delete handles DELETE /api/admin/gallery/:id.
func (gc *GalleryController) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := gc.db.Delete(&models.GalleryImage{}, id).Error; err != nil {
		respondServerError(c, "Failed to delete image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted"})
}
