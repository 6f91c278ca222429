package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"net/url"  // Query escaping
	"strings"  // String manipulation
	"time"     // Time durations

	"soulid/internal/domain" // Importing domain models
	"soulid/internal/events" // Token events
	"soulid/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Binding validation errors
	"github.com/redis/go-redis/v9"           // Redis client
	"github.com/sirupsen/logrus"             // Logging library
	"github.com/skip2/go-qrcode"             // QR code rendering
	"gorm.io/gorm"                           // GORM ORM library
)

const (
	verifyCacheTTL = 5 * time.Minute
	qrCodeSize     = 256
	uuidExample    = "123e4567-e89b-12d3-a456-426614174000"
)

// MintTokenRequest represents a mint request. Category attributes are optional for every category.
type MintTokenRequest struct {
	ProfileID string `json:"profileId" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Issuer    string `json:"issuer" binding:"required"`
	Date      string `json:"date" binding:"required"`

	DegreeName        *string `json:"degreeName"`
	FieldOfStudy      *string `json:"fieldOfStudy"`
	Grade             *string `json:"grade"`
	CertificationName *string `json:"certificationName"`
	IssuingBody       *string `json:"issuingBody"`
	ValidityPeriod    *string `json:"validityPeriod"`
	SkillName         *string `json:"skillName"`
	ProficiencyLevel  *string `json:"proficiencyLevel"`
	Description       *string `json:"description"`
}

// VerifyResponse is what a third party learns about a token
type VerifyResponse struct {
	Title           string `json:"title"`
	Issuer          string `json:"issuer"`
	Date            string `json:"date"`
	Owner           string `json:"owner"`
	WalletAddress   string `json:"walletAddress"`
	ChecksumAddress string `json:"checksumAddress"`
}

// optional maps blank strings to null
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// bindError answers a failed JSON bind: missing fields and malformed bodies get different messages
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}

// MintTokenHandler godoc
// @Summary      Mint a token
// @Description  Issues a credential to an existing profile. No duplicate detection is performed.
// @Tags         Token
// @Accept       json
// @Produce      json
// @Param        body  body      MintTokenRequest  true  "Token"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/mint-token [post]
func MintTokenHandler(db *gorm.DB, rdb *redis.Client, publisher events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var req MintTokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		// Check the owning profile exists
		var profile domain.Profile
		if err := db.WithContext(ctx).Where("id = ?", req.ProfileID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
				return
			}
			abortInternal(c, err, "Profile lookup failed", logrus.Fields{"profile_id": req.ProfileID})
			return
		}

		// Parse the issue date
		date, err := utils.ParseIssueDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format"})
			return
		}

		token := domain.Token{
			ProfileID:         profile.ID,
			Type:              req.Type,
			Title:             req.Title,
			Issuer:            req.Issuer,
			Date:              date,
			DegreeName:        optional(req.DegreeName),
			FieldOfStudy:      optional(req.FieldOfStudy),
			Grade:             optional(req.Grade),
			CertificationName: optional(req.CertificationName),
			IssuingBody:       optional(req.IssuingBody),
			ValidityPeriod:    optional(req.ValidityPeriod),
			SkillName:         optional(req.SkillName),
			ProficiencyLevel:  optional(req.ProficiencyLevel),
			Description:       optional(req.Description),
		}
		if err := db.WithContext(ctx).Create(&token).Error; err != nil {
			abortInternal(c, err, "Failed to mint token", logrus.Fields{"profile_id": profile.ID, "type": req.Type})
			return
		}

		logrus.WithFields(logrus.Fields{
			"token_id":   token.ID,
			"profile_id": profile.ID,
			"type":       token.Type,
		}).Info("Token minted")

		// The profile view now has one more token
		if err := utils.DeleteCache(ctx, rdb, utils.ProfileCachePrefix+profile.ID); err != nil {
			logrus.WithError(err).Warn("Profile cache invalidation failed")
		}
		// Event delivery is best effort; the token is already committed
		if err := publisher.PublishTokenMinted(ctx, events.TokenMinted{
			TokenID:   token.ID,
			ProfileID: token.ProfileID,
			Type:      token.Type,
			Title:     token.Title,
			Issuer:    token.Issuer,
			Date:      token.Date,
			MintedAt:  token.CreatedAt,
		}); err != nil {
			logrus.WithError(err).WithField("token_id", token.ID).Warn("Failed to publish token event")
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Token minted successfully",
			"token":   newTokenResponse(&token),
		})
	}
}

// lookupVerification validates the tokenId query parameter and loads the
// verification view. It writes the error response itself and reports false
// when the caller should stop.
func lookupVerification(c *gin.Context, db *gorm.DB, rdb *redis.Client) (string, *VerifyResponse, bool) {
	ctx := c.Request.Context()
	tokenID := strings.TrimSpace(c.Query("tokenId"))
	if tokenID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token ID is required"})
		return "", nil, false
	}
	// Identifiers that are not UUID-shaped are rejected before any lookup
	if !utils.IsUUIDShaped(tokenID) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid token ID format. Token IDs should be in UUID format.",
			"details": "Example format: " + uuidExample,
		})
		return "", nil, false
	}
	tokenID = strings.ToLower(tokenID) // Generated IDs are lowercase

	var cached VerifyResponse
	found, err := utils.GetCache(ctx, rdb, utils.VerifyCachePrefix+tokenID, &cached)
	if err != nil {
		logrus.WithError(err).Warn("Verification cache read failed")
	}
	if found {
		return tokenID, &cached, true
	}

	var row struct {
		Title         string
		Issuer        string
		Date          time.Time
		Owner         string
		WalletAddress string
	}
	res := db.WithContext(ctx).
		Table("tokens").
		Select("tokens.title, tokens.issuer, tokens.date, profiles.name AS owner, profiles.wallet_address").
		Joins("JOIN profiles ON profiles.id = tokens.profile_id").
		Where("tokens.id = ?", tokenID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		abortInternal(c, res.Error, "Token verification query failed", logrus.Fields{"token_id": tokenID})
		return "", nil, false
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Token not found",
			"details": "This token ID does not exist in our database. Please check the ID and try again.",
		})
		return "", nil, false
	}

	wallet := utils.NormalizeWalletAddress(row.WalletAddress)
	resp := &VerifyResponse{
		Title:           row.Title,
		Issuer:          row.Issuer,
		Date:            isoTime(row.Date),
		Owner:           row.Owner,
		WalletAddress:   wallet,
		ChecksumAddress: utils.ChecksumAddress(wallet),
	}
	// Tokens and profiles are immutable, so the view cannot go stale
	if err := utils.SetCache(ctx, rdb, utils.VerifyCachePrefix+tokenID, resp, verifyCacheTTL); err != nil {
		logrus.WithError(err).Warn("Verification cache write failed")
	}
	return tokenID, resp, true
}

// VerifyTokenHandler godoc
// @Summary      Verify a token
// @Description  Public lookup of a token by its UUID, returning issuer and owner metadata
// @Tags         Token
// @Produce      json
// @Param        tokenId  query     string  true  "Token UUID"
// @Success      200      {object}  VerifyResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/verify-token [get]
func VerifyTokenHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID, resp, ok := lookupVerification(c, db, rdb)
		if !ok {
			return
		}
		logrus.WithField("token_id", tokenID).Info("Token verified")
		c.JSON(http.StatusOK, resp)
	}
}

// VerifyTokenQRHandler godoc
// @Summary      Verification QR code
// @Description  PNG QR code linking to the public verification page of a token
// @Tags         Token
// @Produce      png
// @Param        tokenId  query  string  true  "Token UUID"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/verify-token/qr [get]
func VerifyTokenQRHandler(db *gorm.DB, rdb *redis.Client, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID, _, ok := lookupVerification(c, db, rdb)
		if !ok {
			return
		}
		link := publicBaseURL + "/verify?tokenId=" + url.QueryEscape(tokenID)
		png, err := qrcode.Encode(link, qrcode.Medium, qrCodeSize)
		if err != nil {
			abortInternal(c, err, "Failed to render QR code", logrus.Fields{"token_id": tokenID})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
