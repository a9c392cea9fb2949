package ledger

import "github.com/mkamau/tillpoint/internal/domain/enum"

// AllocateCredit decides how much of a checkout total is paid from a
// customer's store credit. It applies only to sales and rentals when the
// customer asked to redeem credit; degenerate inputs simply consume nothing.
// The consumed amount never exceeds the balance and the remaining total is
// never negative.
func AllocateCredit(total, balance float64, useCredit bool, txType enum.TransactionType) (consumed, remaining float64) {
	if !useCredit {
		return 0, total
	}
	if txType != enum.TransactionTypeSale && txType != enum.TransactionTypeRental {
		return 0, total
	}
	if balance <= 0 || total <= 0 {
		return 0, total
	}

	if balance >= total {
		return total, 0
	}
	return balance, total - balance
}
