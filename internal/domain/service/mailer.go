package service

import (
	"context"
	"time"
)

// OrderConfirmation carries the content of an order confirmation email.
type OrderConfirmation struct {
	LocationName  string
	EventDate     time.Time
	Lines         []ConfirmationLine
	Total         float64
	EstimatedWait *int   // minutes; nil when no selected item had a prep time
	PickupTime    string // free text, empty for dine-in
}

// ConfirmationLine is one priced line in a confirmation email.
type ConfirmationLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// Mailer defines the outbound transactional email collaborator.
// Implementations are best-effort: they return an error for the caller to log
// but must never panic, and they no-op with a logged warning when no
// credential is configured.
type Mailer interface {
	// SendOrderConfirmation sends the order summary to the customer.
	SendOrderConfirmation(ctx context.Context, to string, confirmation *OrderConfirmation) error

	// SendOrderReady tells the customer their order is ready for pickup/serving.
	SendOrderReady(ctx context.Context, to string, locationName string) error
}
