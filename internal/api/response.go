package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamp formatting

	"soulid/internal/domain" // Importing domain models
	"soulid/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// isoLayout matches JavaScript's Date.prototype.toISOString
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func isoTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ProfileResponse is the public projection of a profile
type ProfileResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	WalletAddress string  `json:"walletAddress"`
	ProfileImage  *string `json:"profileImage"`
	CreatedAt     string  `json:"createdAt"`
}

func newProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		WalletAddress: utils.NormalizeWalletAddress(p.WalletAddress),
		ProfileImage:  p.ProfileImage,
		CreatedAt:     isoTime(p.CreatedAt),
	}
}

// TokenResponse is the public projection of a token. Attributes of every
// category are always present and null when unset.
type TokenResponse struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	Title             string  `json:"title"`
	Issuer            string  `json:"issuer"`
	Date              string  `json:"date"`
	CreatedAt         string  `json:"createdAt"`
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

func newTokenResponse(t *domain.Token) TokenResponse {
	return TokenResponse{
		ID:                t.ID,
		Type:              t.Type,
		Title:             t.Title,
		Issuer:            t.Issuer,
		Date:              isoTime(t.Date),
		CreatedAt:         isoTime(t.CreatedAt),
		DegreeName:        t.DegreeName,
		FieldOfStudy:      t.FieldOfStudy,
		Grade:             t.Grade,
		CertificationName: t.CertificationName,
		IssuingBody:       t.IssuingBody,
		ValidityPeriod:    t.ValidityPeriod,
		SkillName:         t.SkillName,
		ProficiencyLevel:  t.ProficiencyLevel,
		Description:       t.Description,
	}
}

// abortInternal logs the cause and answers with a generic 500; the cause never reaches the client
func abortInternal(c *gin.Context, err error, msg string, fields logrus.Fields) {
	entry := logrus.WithFields(fields).WithError(err)
	entry.WithField("path", c.FullPath()).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
