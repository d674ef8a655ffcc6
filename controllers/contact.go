package controllers

import (
	"log"
	"net/http"

	"srif-api/models"
	"srif-api/services"
	"srif-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContactController handles the public contact form and the admin inbox.
type ContactController struct {
	db       *gorm.DB
	notifier *services.Notifier
}

func NewContactController(db *gorm.DB, notifier *services.Notifier) *ContactController {
	return &ContactController{db: db, notifier: notifier}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact. The message is stored first; forwarding
// it by mail is best-effort.
func (ctc *ContactController) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Name, email, and message are required")
		return
	}

	req.Name = utils.SanitizeInput(req.Name)
	req.Email = utils.SanitizeInput(req.Email)
	req.Subject = utils.SanitizeInput(req.Subject)
	req.Message = utils.SanitizeInput(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		respondBadRequest(c, "Name, email, and message are required")
		return
	}
	if !utils.ValidateEmail(req.Email) {
		respondBadRequest(c, "Invalid email address")
		return
	}

	row := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: optional(req.Subject),
		Message: req.Message,
	}
	if err := ctc.db.Create(&row).Error; err != nil {
		respondServerError(c, "Failed to send message. Please try again.", err)
		return
	}

	inbox := ctc.contactInbox()
	if inbox != "" {
		result := ctc.notifier.SendContactEmail(inbox, req.Name, req.Email, req.Subject, req.Message)
		if !result.Sent {
			log.Printf("Contact email not sent (%s), message stored in DB", result.Reason)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Message sent successfully"})
}

// contactInbox reads the forum inbox address from settings.
func (ctc *ContactController) contactInbox() string {
	var setting models.Setting
	if err := ctc.db.First(&setting, "`key` = ?", "contact_email").Error; err != nil {
		return ""
	}
	return setting.Value
}

// List handles GET /api/admin/contact.
func (ctc *ContactController) List(c *gin.Context) {
	var rows []models.ContactMessage
	if err := ctc.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		respondServerError(c, "Failed to load messages", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// MarkRead handles PATCH /api/admin/contact/:id/read.
func (ctc *ContactController) MarkRead(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := ctc.db.Model(&models.ContactMessage{ID: id}).Update("is_read", true).Error; err != nil {
		respondServerError(c, "Failed to update message", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Marked as read"})
}

// Delete handles DELETE /api/admin/contact/:id.
func (ctc *ContactController) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := ctc.db.Delete(&models.ContactMessage{}, id).Error; err != nil {
		respondServerError(c, "Failed to delete message", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted"})
}
