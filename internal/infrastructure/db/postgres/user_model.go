package postgres

import (
	"time"
)

// UserModel is the users row. Provider columns are nullable so the composite
// unique index only bites when an external identity is present; one external
// identity maps to at most one local account.
type UserModel struct {
	Id              uint    `gorm:"primaryKey"`
	Email           string  `gorm:"size:100;uniqueIndex;not null"`
	Password        string  `gorm:"size:100"`
	FirstName       string  `gorm:"size:100"`
	LastName        string  `gorm:"size:100"`
	Role            string  `gorm:"size:20;not null;default:PUBLIC"`
	EmailVerified   bool    `gorm:"not null;default:false"`
	Status          int     `gorm:"default:1"`
	Provider        *string `gorm:"size:20;uniqueIndex:idx_users_provider_identity"`
	ProviderId      *string `gorm:"size:100;uniqueIndex:idx_users_provider_identity"`
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (UserModel) TableName() string {
	return "users"
}
