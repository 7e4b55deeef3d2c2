// Package model contains the GORM-specific structs for the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// Latitude/Longitude stay null when postal-code geocoding failed at save time.
type LocationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string     `gorm:"type:varchar(200);not null"`
	Street       string     `gorm:"type:varchar(200);not null"`
	City         string     `gorm:"type:varchar(100);not null;index"`
	State        string     `gorm:"type:varchar(2);not null"`
	PostalCode   string     `gorm:"type:varchar(5);not null"`
	Latitude     *float64   `gorm:"type:decimal(10,8)"`
	Longitude    *float64   `gorm:"type:decimal(11,8)"`
	Organization string     `gorm:"type:varchar(50);not null;default:'other'"`
	Description  string     `gorm:"type:text"`
	ContactName  string     `gorm:"type:varchar(100)"`
	ContactPhone string     `gorm:"type:varchar(30)"`
	ContactEmail string     `gorm:"type:varchar(200)"`
	AdminID      *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
