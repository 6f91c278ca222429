package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token categories with dedicated attributes. Any other non-empty category is accepted.
const (
	CategoryDegree        = "degree"
	CategoryCertification = "certification"
	CategorySkill         = "skill"
)

// Token Model. A minted credential; rows are never updated or deleted.
type Token struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`     // UUID, public verification key
	Type      string    `gorm:"type:varchar(64);not null"`       // Category
	Title     string    `gorm:"not null"`                        // Credential title
	Issuer    string    `gorm:"not null"`                        // Issuer name
	Date      time.Time `gorm:"not null"`                        // Issue date
	CreatedAt time.Time // Set by GORM on insert
	ProfileID string    `gorm:"type:varchar(36);index;not null"` // Foreign key to Profile

	// Degree attributes
	DegreeName   *string
	FieldOfStudy *string
	Grade        *string

	// Certification attributes
	CertificationName *string
	IssuingBody       *string
	ValidityPeriod    *string

	// Skill attributes
	SkillName        *string
	ProficiencyLevel *string

	Description *string // Common to all categories
}

// BeforeCreate assigns a UUID when the caller did not supply one
func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
