package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel is the GORM-specific struct for the 'admins' table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(200);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	SuperAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
