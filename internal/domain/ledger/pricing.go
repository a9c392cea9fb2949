package ledger

import (
	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/pkg/apperror"
)

// CartEntry is one requested line submitted at checkout time, not yet
// persisted. The price is the caller's quote and is frozen into history
// as-is.
type CartEntry struct {
	ItemID   uuid.UUID
	Quantity int
	Price    float64
}

// Totals is the output of the pricing calculator. TotalPrice is signed:
// negative when the transaction is a return.
type Totals struct {
	Subtotal   float64
	TaxAmount  float64
	TotalPrice float64
}

// Quote computes subtotal, tax and signed total for a cart. Returns carry no
// tax and a negated total. The only failure mode is a malformed entry:
// non-positive quantity or negative price.
func Quote(entries []CartEntry, txType enum.TransactionType, taxRate float64) (Totals, error) {
	var subtotal float64
	for _, e := range entries {
		if e.Quantity <= 0 {
			return Totals{}, apperror.NewUnprocessableError("Cart entry quantity must be positive")
		}
		if e.Price < 0 {
			return Totals{}, apperror.NewUnprocessableError("Cart entry price must not be negative")
		}
		subtotal += e.Price * float64(e.Quantity)
	}

	var tax float64
	if txType != enum.TransactionTypeReturn {
		tax = subtotal * taxRate
	}

	total := subtotal + tax
	if txType == enum.TransactionTypeReturn {
		total = -total
	}

	return Totals{
		Subtotal:   subtotal,
		TaxAmount:  tax,
		TotalPrice: total,
	}, nil
}

// StockDelta returns the signed stock adjustment for one line: returns put
// stock back, everything else takes it out.
func StockDelta(txType enum.TransactionType, quantity int) int {
	if txType == enum.TransactionTypeReturn {
		return quantity
	}
	return -quantity
}
