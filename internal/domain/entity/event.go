package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is one scheduled serving session at a Location.
type Event struct {
	ID              uuid.UUID `json:"id"`
	LocationID      uuid.UUID `json:"location_id"`
	Location        *Location `json:"location,omitempty"`   // embedded when loaded with its location
	Date            time.Time `json:"date"`                 // calendar date, midnight UTC
	StartTime       string    `json:"start_time,omitempty"` // optional "HH:MM" time of day
	EndTime         string    `json:"end_time,omitempty"`
	DineInAvailable bool      `json:"dine_in_available"`
	PickupAvailable bool      `json:"pickup_available"`
	Active          bool      `json:"active"` // visibility/soft-delete flag
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SupportsOrderType reports whether the event accepts orders of the given type.
func (e *Event) SupportsOrderType(t OrderType) bool {
	switch t {
	case OrderTypeDineIn:
		return e.DineInAvailable
	case OrderTypePickup:
		return e.PickupAvailable
	default:
		return false
	}
}
