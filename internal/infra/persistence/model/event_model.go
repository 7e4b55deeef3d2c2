package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	LocationID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Location        *LocationModel `gorm:"foreignKey:LocationID"`
	Date            time.Time      `gorm:"type:date;not null;index"`
	StartTime       string         `gorm:"type:varchar(5)"`
	EndTime         string         `gorm:"type:varchar(5)"`
	DineInAvailable bool           `gorm:"not null;default:true"`
	PickupAvailable bool           `gorm:"not null;default:true"`
	Active          bool           `gorm:"not null;default:true;index"`
	Notes           string         `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
