package entity

import (
	"time"

	"github.com/google/uuid"
)

// Canonical menu categories. Category is free text on purpose; these values
// only drive display grouping order.
const (
	CategoryFish     = "fish"
	CategorySides    = "sides"
	CategoryDrinks   = "drinks"
	CategoryDesserts = "desserts"
	CategoryOther    = "other"
)

// DietaryTags is the fixed vocabulary of dietary tags a menu item may carry.
var DietaryTags = []string{
	"Gluten Free",
	"Dairy Free",
	"Nut Free",
	"Vegetarian",
	"Vegan",
	"Spicy",
}

// MenuItem is a sellable item scoped to exactly one Event.
// DineInOnly and PickupOnly are mutually exclusive; both false means the item
// is available in both order modes.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	EventID     uuid.UUID `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"` // non-negative
	Category    string    `json:"category"`
	Available   bool      `json:"available"`
	PrepMinutes *int      `json:"prep_minutes,omitempty"` // optional prep time in minutes
	Tags        []string  `json:"tags,omitempty"`         // drawn from DietaryTags
	DineInOnly  bool      `json:"dine_in_only"`
	PickupOnly  bool      `json:"pickup_only"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AvailableFor reports whether the item can be ordered with the given order type.
func (m *MenuItem) AvailableFor(t OrderType) bool {
	if m.PickupOnly && t == OrderTypeDineIn {
		return false
	}
	if m.DineInOnly && t == OrderTypePickup {
		return false
	}

	return true
}
