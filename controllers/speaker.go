package controllers

import (
	"log"
	"net/http"
	"strings"

	"srif-api/models"
	"srif-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SpeakerController handles speaker CRUD. Listing is public; mutation is
// admin-only.
type SpeakerController struct {
	db *gorm.DB
}

func NewSpeakerController(db *gorm.DB) *SpeakerController {
	return &SpeakerController{db: db}
}

// List handles GET /api/speakers.
func (spc *SpeakerController) List(c *gin.Context) {
	var rows []models.Speaker
	if err := spc.db.Order("id").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load speakers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// Create handles POST /api/admin/speakers (multipart, optional image).
func (spc *SpeakerController) Create(c *gin.Context) {
	nameEn := strings.TrimSpace(c.PostForm("name_en"))
	nameAr := strings.TrimSpace(c.PostForm("name_ar"))
	if nameEn == "" || nameAr == "" {
		respondBadRequest(c, "Names are required")
		return
	}

	saved, err := utils.SaveFormFile(c, "image", utils.UploadOptions{
		Subdir:     "speakers",
		Extensions: utils.ImageExtensions,
		MaxSize:    utils.MaxImageSize,
	})
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	speakerType := c.PostForm("speaker_type")
	if speakerType == "" {
		speakerType = "Keynote"
	}

	row := models.Speaker{
		NameEn:      nameEn,
		NameAr:      nameAr,
		RoleEn:      optional(c.PostForm("role_en")),
		RoleAr:      optional(c.PostForm("role_ar")),
		BioEn:       optional(c.PostForm("bio_en")),
		BioAr:       optional(c.PostForm("bio_ar")),
		SpeakerType: speakerType,
	}
	if saved != nil {
		row.ImagePath = &saved.Path
	}

	if err := spc.db.Create(&row).Error; err != nil {
		respondServerError(c, "Failed to create speaker", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": row})
}

// Delete handles DELETE /api/admin/speakers/:id. The backing image file is
// removed best-effort; a missing file never fails the delete.
func (spc *SpeakerController) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var speaker models.Speaker
	if err := spc.db.First(&speaker, "id = ?", id).Error; err == nil {
		if speaker.ImagePath != nil {
			if err := utils.RemoveStoredFile(*speaker.ImagePath); err != nil {
				log.Printf("Failed to remove speaker image %s: %v", *speaker.ImagePath, err)
			}
		}
	}

	if err := spc.db.Delete(&models.Speaker{}, id).Error; err != nil {
		respondServerError(c, "Failed to delete speaker", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Speaker deleted"})
}
