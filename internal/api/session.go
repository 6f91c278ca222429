package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"soulid/internal/domain"     // Importing domain models
	"soulid/internal/middleware" // Context keys
	"soulid/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// LoginRequest identifies a profile by its email and wallet address
type LoginRequest struct {
	Email         string `json:"email" binding:"required"`         // Registered email
	WalletAddress string `json:"walletAddress" binding:"required"` // Registered wallet
}

// AuthResponse carries a session token
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// LoginHandler godoc
// @Summary      Open a session
// @Description  Exchanges a registered email and wallet address pair for a session token
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  AuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		// Both identifiers must belong to the same profile
		var profile domain.Profile
		err := db.WithContext(c.Request.Context()).
			Where("email = ? AND wallet_address = ?", utils.NormalizeEmail(req.Email), utils.NormalizeWalletAddress(req.WalletAddress)).
			First(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			abortInternal(c, err, "Login lookup failed", nil)
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(profile.ID, jwtSecret)
		if err != nil {
			abortInternal(c, err, "Failed to generate token", logrus.Fields{"profile_id": profile.ID})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// SessionHandler godoc
// @Summary      Current session profile
// @Tags         Session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/session [get]
func SessionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := c.GetString(middleware.ProfileIDKey) // Set by JWTAuthMiddleware
		var profile domain.Profile
		if err := db.WithContext(c.Request.Context()).Where("id = ?", profileID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
				return
			}
			abortInternal(c, err, "Session profile lookup failed", logrus.Fields{"profile_id": profileID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": newProfileResponse(&profile)})
	}
}
