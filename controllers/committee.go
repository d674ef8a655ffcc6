package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"srif-api/models"
	"srif-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CommitteeController handles committee and member CRUD. Listing is public;
// mutation is admin-only.
type CommitteeController struct {
	db *gorm.DB
}

func NewCommitteeController(db *gorm.DB) *CommitteeController {
	return &CommitteeController{db: db}
}

// List handles GET /api/committees, members included.
func (cc *CommitteeController) List(c *gin.Context) {
	var rows []models.Committee
	if err := cc.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Order("id").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load committees", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

type CommitteeCreateRequest struct {
	NameEn string `json:"name_en" binding:"required"`
	NameAr string `json:"name_ar" binding:"required"`
}

// Create handles POST /api/admin/committees.
func (cc *CommitteeController) Create(c *gin.Context) {
	var req CommitteeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Names are required")
		return
	}

	row := models.Committee{NameEn: req.NameEn, NameAr: req.NameAr}
	if err := cc.db.Create(&row).Error; err != nil {
		respondServerError(c, "Failed to create committee", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": row})
}

// AddMember handles POST /api/admin/committees/members (multipart, optional
// image).
func (cc *CommitteeController) AddMember(c *gin.Context) {
	committeeID, err := strconv.Atoi(c.PostForm("committee_id"))
	nameEn := strings.TrimSpace(c.PostForm("name_en"))
	nameAr := strings.TrimSpace(c.PostForm("name_ar"))
	if err != nil || committeeID <= 0 || nameEn == "" || nameAr == "" {
		respondBadRequest(c, "Required fields missing")
		return
	}

	var committee models.Committee
	if err := cc.db.First(&committee, "id = ?", committeeID).Error; err != nil {
		respondNotFound(c, "Committee not found")
		return
	}

	saved, err := utils.SaveFormFile(c, "image", utils.UploadOptions{
		Subdir:     "committees",
		Extensions: utils.ImageExtensions,
		MaxSize:    utils.MaxImageSize,
	})
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	row := models.CommitteeMember{
		CommitteeID: committeeID,
		NameEn:      nameEn,
		NameAr:      nameAr,
		RoleEn:      optional(c.PostForm("role_en")),
		RoleAr:      optional(c.PostForm("role_ar")),
	}
	if saved != nil {
		row.ImagePath = &saved.Path
	}

	if err := cc.db.Create(&row).Error; err != nil {
		respondServerError(c, "Failed to add member", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": row})
}

// Delete handles DELETE /api/admin/committees/:id; members cascade.
func (cc *CommitteeController) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := cc.db.Select("Members").Delete(&models.Committee{ID: id}).Error; err != nil {
		respondServerError(c, "Failed to delete committee", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Committee deleted"})
}

// DeleteMember handles DELETE /api/admin/committees/members/:id.
func (cc *CommitteeController) DeleteMember(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := cc.db.Delete(&models.CommitteeMember{}, id).Error; err != nil {
		respondServerError(c, "Failed to delete member", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member deleted"})
}
