package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"srif-api/middleware"
	"srif-api/models"
	"srif-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthController serves the admin login and account endpoints.
type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles admin authentication. Invalid email and invalid password get
// the same answer.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and password are required")
		return
	}

	var user models.User
	if err := ac.db.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		respondServerError(c, "Login failed", err)
		return
	}

	logRow := models.ActivityLog{
		UserID:    user.ID,
		Action:    "login",
		Details:   models.MarshalDetails(map[string]string{"email": user.Email}),
		IPAddress: clientIP(c),
		CreatedAt: time.Now(),
	}
	if err := ac.db.Create(&logRow).Error; err != nil {
		respondServerError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
				"name":  user.Name,
				"role":  user.Role,
			},
		},
	})
}

// GetProfile returns the authenticated admin.
func (ac *AuthController) GetProfile(c *gin.Context) {
	user, _ := c.Get(middleware.CtxUser)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword handles password change for the current admin.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		respondBadRequest(c, msg)
		return
	}

	userID, _ := c.Get(middleware.CtxUserID)

	var user models.User
	if err := ac.db.First(&user, "id = ?", userID).Error; err != nil {
		respondNotFound(c, "User not found")
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Current password is incorrect"})
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword, 0) // 0 selects bcrypt.DefaultCost
	if err != nil {
		respondServerError(c, "Failed to update password", err)
		return
	}

	if err := ac.db.Model(&user).Update("password", hashed).Error; err != nil {
		respondServerError(c, "Failed to update password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}

// generateToken creates the signed 24h admin token.
func generateToken(user models.User) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || expireHours <= 0 {
		expireHours = 24
	}

	claims := middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
