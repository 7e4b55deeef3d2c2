// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationType classifies the kind of organization hosting fish-fry events.
type OrganizationType string

const (
	OrganizationChurch            OrganizationType = "church"
	OrganizationVFW               OrganizationType = "vfw"
	OrganizationKnightsOfColumbus OrganizationType = "knights-of-columbus"
	OrganizationOther             OrganizationType = "other"
)

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is an organization/venue hosting fish-fry events.
// Coordinates are resolved from the postal code at save time and stay nil
// when resolution failed; distance features simply skip such locations.
type Location struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Street       string           `json:"street"`
	City         string           `json:"city"`
	State        string           `json:"state"`       // two-letter state code
	PostalCode   string           `json:"postal_code"` // 5-digit US postal code
	Coordinates  *Coordinates     `json:"coordinates,omitempty"`
	Organization OrganizationType `json:"organization"`
	Description  string           `json:"description,omitempty"`
	ContactName  string           `json:"contact_name,omitempty"`
	ContactPhone string           `json:"contact_phone,omitempty"`
	ContactEmail string           `json:"contact_email,omitempty"`
	AdminID      *uuid.UUID       `json:"admin_id,omitempty"` // nil while unowned, pending admin assignment
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// OwnedBy reports whether the given admin owns this location.
func (l *Location) OwnedBy(adminID uuid.UUID) bool {
	return l.AdminID != nil && *l.AdminID == adminID
}
