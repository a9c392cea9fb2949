package request

import "github.com/google/uuid"

// CheckoutCartEntry represents one cart line in a checkout request. The
// price is the caller's quote and is recorded as-is.
type CheckoutCartEntry struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
	Price    float64   `json:"price"`
}

// CheckoutRequest represents a checkout request
type CheckoutRequest struct {
	CustomerID    *uuid.UUID          `json:"customer_id"`
	Type          string              `json:"type" binding:"required,oneof=Sale Rental Return"`
	Items         []CheckoutCartEntry `json:"items" binding:"required,min=1,dive"`
	DueDate       *string             `json:"due_date"` // YYYY-MM-DD, required for rentals
	PaymentMethod string              `json:"payment_method" binding:"required"`
	UseCredit     bool                `json:"use_credit"`
}
