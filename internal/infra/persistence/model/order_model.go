package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string    `gorm:"type:varchar(200);not null"`
	CustomerPhone string    `gorm:"type:varchar(30)"`
	CustomerEmail string    `gorm:"type:varchar(200)"`
	OrderType     string    `gorm:"type:varchar(10);not null"`
	PickupTime    string    `gorm:"type:varchar(100)"`
	Notes         string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Total         float64   `gorm:"type:decimal(10,2);not null;default:0"`
	EstimatedWait *int
	Items         []*OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Name and UnitPrice are copied from the menu item at order time.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(200);not null"`
	UnitPrice  float64   `gorm:"type:decimal(10,2);not null"`
	Quantity   int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
