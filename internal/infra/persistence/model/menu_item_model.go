package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItemModel is the GORM-specific struct for the 'menu_items' table.
// Tags holds the dietary tag set as a comma-delimited string; the repository
// mapper splits and joins it.
type MenuItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Category    string    `gorm:"type:varchar(50);not null;default:'other'"`
	Available   bool      `gorm:"not null;default:true"`
	PrepMinutes *int
	Tags        string `gorm:"type:text"`
	DineInOnly  bool   `gorm:"not null;default:false"`
	PickupOnly  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
