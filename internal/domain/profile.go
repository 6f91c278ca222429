package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile Model
type Profile struct {
	ID            string    `gorm:"type:varchar(36);primaryKey"`            // UUID primary key
	Name          string    `gorm:"not null"`                               // Display name
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"` // Unique, stored lowercase
	WalletAddress string    `gorm:"type:varchar(42);uniqueIndex;not null"`  // Unique, stored lowercase
	ProfileImage  *string   // Public reference of the uploaded image
	CreatedAt     time.Time // Set by GORM on insert
	UpdatedAt     time.Time // Set by GORM on insert and update
	Tokens        []Token   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"` // One-to-many relationship with Token
}

// BeforeCreate assigns a UUID when the caller did not supply one
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
