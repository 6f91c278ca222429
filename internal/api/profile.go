package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Time durations

	"soulid/internal/domain"  // Importing domain models
	"soulid/internal/storage" // Image uploads
	"soulid/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

const (
	profileCacheTTL   = 60 * time.Second
	duplicateProfile  = "User with this email or wallet address already exists"
	imageFormField    = "profileImage"
	imageFormFallback = "file"
)

// ProfileWithTokens is the get-profile response body
type ProfileWithTokens struct {
	Profile ProfileResponse `json:"profile"`
	Tokens  []TokenResponse `json:"tokens"`
}

// CreateProfileHandler godoc
// @Summary      Register a profile
// @Description  Creates a profile from multipart form fields, with an optional profile image
// @Tags         Profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        name           formData  string  true   "Display name"
// @Param        email          formData  string  true   "Email"
// @Param        walletAddress  formData  string  true   "0x-prefixed 40 hex character address"
// @Param        profileImage   formData  file    false  "Profile image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/create-profile [post]
func CreateProfileHandler(db *gorm.DB, uploader storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		name := utils.NormalizeName(c.PostForm("name"))    // Display name
		rawEmail := strings.TrimSpace(c.PostForm("email")) // Email as submitted
		rawWallet := c.PostForm("walletAddress")           // Wallet address as submitted
		// All three text fields are required
		if name == "" || rawEmail == "" || rawWallet == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		// Validate email format
		if !utils.IsValidEmail(rawEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
			return
		}
		// Validate wallet address format, echoing what failed
		if !utils.IsValidWalletAddress(rawWallet) {
			logrus.WithField("address", rawWallet).Warn("Wallet address validation failed")
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid Ethereum address format",
				"details": utils.DescribeWalletAddress(rawWallet),
			})
			return
		}
		email := utils.NormalizeEmail(rawEmail)           // Stored form
		wallet := utils.NormalizeWalletAddress(rawWallet) // Stored form

		// Duplicate check runs against the normalized values
		var existing domain.Profile
		err := db.WithContext(ctx).Where("email = ? OR wallet_address = ?", email, wallet).First(&existing).Error
		switch {
		case err == nil:
			c.JSON(http.StatusBadRequest, gin.H{"message": duplicateProfile})
			return
		case !errors.Is(err, gorm.ErrRecordNotFound):
			abortInternal(c, err, "Duplicate profile lookup failed", logrus.Fields{"email": email})
			return
		}

		// Store the optional image before the insert; it is not removed if the insert fails
		var imageRef *string
		fileHeader, err := c.FormFile(imageFormField)
		if errors.Is(err, http.ErrMissingFile) {
			fileHeader, err = c.FormFile(imageFormFallback)
		}
		switch {
		case err == nil:
			src, openErr := fileHeader.Open()
			if openErr != nil {
				abortInternal(c, openErr, "Failed to open uploaded image", nil)
				return
			}
			ref, saveErr := uploader.Save(ctx, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), src)
			src.Close()
			if saveErr != nil {
				abortInternal(c, saveErr, "Failed to store uploaded image", logrus.Fields{"filename": fileHeader.Filename})
				return
			}
			imageRef = &ref
		case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file upload"})
			return
		}

		profile := domain.Profile{
			Name:          name,
			Email:         email,
			WalletAddress: wallet,
			ProfileImage:  imageRef,
		}
		if err := db.WithContext(ctx).Create(&profile).Error; err != nil {
			// A concurrent registration can pass the lookup and still hit the unique index
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": duplicateProfile})
				return
			}
			abortInternal(c, err, "Failed to create profile", logrus.Fields{"email": email})
			return
		}

		logrus.WithFields(logrus.Fields{
			"profile_id":     profile.ID,
			"wallet_address": profile.WalletAddress,
			"has_image":      imageRef != nil,
		}).Info("Profile created")

		c.JSON(http.StatusCreated, gin.H{
			"message": "Profile created successfully",
			"profile": newProfileResponse(&profile),
		})
	}
}

// GetProfileHandler godoc
// @Summary      Get a profile with its tokens
// @Description  Looks a profile up by id, or by email when no id is given
// @Tags         Profile
// @Produce      json
// @Param        id     query  string  false  "Profile ID"
// @Param        email  query  string  false  "Email"
// @Success      200  {object}  ProfileWithTokens
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/get-profile [get]
func GetProfileHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := strings.TrimSpace(c.Query("id"))       // Takes precedence
		email := strings.TrimSpace(c.Query("email")) // Fallback lookup
		if id == "" && email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User ID or email is required"})
			return
		}

		// Only lookups by id are served from cache
		if id != "" {
			var cached ProfileWithTokens
			found, err := utils.GetCache(ctx, rdb, utils.ProfileCachePrefix+id, &cached)
			if err != nil {
				logrus.WithError(err).Warn("Profile cache read failed")
			}
			if found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		query := db.WithContext(ctx).Preload("Tokens", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		})
		if id != "" {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("email = ?", utils.NormalizeEmail(email))
		}
		var profile domain.Profile
		if err := query.First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
				return
			}
			abortInternal(c, err, "Failed to fetch profile", logrus.Fields{"profile_id": id})
			return
		}

		resp := ProfileWithTokens{
			Profile: newProfileResponse(&profile),
			Tokens:  make([]TokenResponse, len(profile.Tokens)),
		}
		for i := range profile.Tokens {
			resp.Tokens[i] = newTokenResponse(&profile.Tokens[i])
		}

		if err := utils.SetCache(ctx, rdb, utils.ProfileCachePrefix+profile.ID, resp, profileCacheTTL); err != nil {
			logrus.WithError(err).Warn("Profile cache write failed")
		}
		c.JSON(http.StatusOK, resp)
	}
}
