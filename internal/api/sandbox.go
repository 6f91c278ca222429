package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"soulid/internal/sandbox" // Flat-file sandbox store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const identiconURL = "https://api.dicebear.com/7.x/identicon/svg?seed="

// SandboxMintRequest represents a sandbox mint request
type SandboxMintRequest struct {
	ProfileID   string `json:"profileId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Issuer      string `json:"issuer" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Evidence    string `json:"evidence"`
}

// SandboxMintResponse flattens the stored token next to its ID and image link
type SandboxMintResponse struct {
	TokenID  string `json:"tokenId"`
	ImageURL string `json:"imageUrl"`
	sandbox.SoulboundToken
}

// SandboxProfileRequest represents a sandbox profile registration
type SandboxProfileRequest struct {
	Name          string   `json:"name" binding:"required"`
	Region        string   `json:"region"`
	Age           int      `json:"age"`
	SkillTags     []string `json:"skillTags"`
	WalletAddress string   `json:"walletAddress" binding:"required"`
	IDFile        string   `json:"idFile"`
}

// SandboxProfileResponse is a sandbox profile with its tokens
type SandboxProfileResponse struct {
	Profile         sandbox.Profile          `json:"profile"`
	SoulboundTokens []sandbox.SoulboundToken `json:"soulboundTokens"`
}

// SandboxMintHandler godoc
// @Summary      Sandbox mint
// @Description  Appends a token to the flat-file demo store. Sandbox tokens are not verifiable.
// @Tags         Sandbox
// @Accept       json
// @Produce      json
// @Param        body  body      SandboxMintRequest  true  "Token"
// @Success      200   {object}  SandboxMintResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/sandbox/mint-sbt [post]
func SandboxMintHandler(store *sandbox.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SandboxMintRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		token, err := store.AddSoulboundToken(sandbox.SoulboundToken{
			ProfileID:   req.ProfileID,
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Issuer:      req.Issuer,
			Evidence:    req.Evidence,
			Type:        req.Type,
		})
		if err != nil {
			abortInternal(c, err, "Failed to mint sandbox token", logrus.Fields{"profile_id": req.ProfileID})
			return
		}

		logrus.WithFields(logrus.Fields{
			"token_id":   token.ID,
			"profile_id": token.ProfileID,
		}).Info("Sandbox token minted")

		c.JSON(http.StatusOK, SandboxMintResponse{
			TokenID:        token.ID,
			ImageURL:       identiconURL + token.ID,
			SoulboundToken: token,
		})
	}
}

// CreateSandboxProfileHandler godoc
// @Summary      Create a sandbox profile
// @Tags         Sandbox
// @Accept       json
// @Produce      json
// @Param        body  body      SandboxProfileRequest  true  "Profile"
// @Success      201   {object}  sandbox.Profile
// @Failure      400   {object}  map[string]string
// @Router       /api/sandbox/profiles [post]
func CreateSandboxProfileHandler(store *sandbox.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SandboxProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		tags := req.SkillTags
		if tags == nil {
			tags = []string{}
		}
		profile, err := store.AddProfile(sandbox.Profile{
			Name:          strings.TrimSpace(req.Name),
			Region:        req.Region,
			Age:           req.Age,
			SkillTags:     tags,
			WalletAddress: req.WalletAddress,
			IDFile:        req.IDFile,
		})
		if err != nil {
			abortInternal(c, err, "Failed to create sandbox profile", nil)
			return
		}
		c.JSON(http.StatusCreated, profile)
	}
}

// GetSandboxProfileHandler godoc
// @Summary      Get a sandbox profile
// @Tags         Sandbox
// @Produce      json
// @Param        id   path      string  true  "Sandbox profile ID"
// @Success      200  {object}  SandboxProfileResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/sandbox/profiles/{id} [get]
func GetSandboxProfileHandler(store *sandbox.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := store.GetProfile(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
			return
		}
		c.JSON(http.StatusOK, SandboxProfileResponse{
			Profile:         profile,
			SoulboundTokens: store.GetSoulboundTokens(profile.ID),
		})
	}
}

// ListSandboxTokensHandler godoc
// @Summary      List sandbox tokens
// @Tags         Sandbox
// @Produce      json
// @Param        profileId  query     string  true  "Sandbox profile ID"
// @Success      200        {object}  map[string]interface{}
// @Failure      400        {object}  map[string]string
// @Router       /api/sandbox/tokens [get]
func ListSandboxTokensHandler(store *sandbox.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := strings.TrimSpace(c.Query("profileId"))
		if profileID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Profile ID is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"soulboundTokens": store.GetSoulboundTokens(profileID)})
	}
}
