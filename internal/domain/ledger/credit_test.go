package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkamau/tillpoint/internal/domain/enum"
)

func TestAllocateCredit_BalanceBelowTotal(t *testing.T) {
	consumed, remaining := AllocateCredit(120, 50, true, enum.TransactionTypeSale)

	assert.InDelta(t, 50.0, consumed, 1e-9)
	assert.InDelta(t, 70.0, remaining, 1e-9)
}

func TestAllocateCredit_BalanceCoversTotal(t *testing.T) {
	consumed, remaining := AllocateCredit(120, 200, true, enum.TransactionTypeSale)

	assert.InDelta(t, 120.0, consumed, 1e-9)
	assert.Zero(t, remaining)
}

func TestAllocateCredit_ExactBalance(t *testing.T) {
	consumed, remaining := AllocateCredit(120, 120, true, enum.TransactionTypeRental)

	assert.InDelta(t, 120.0, consumed, 1e-9)
	assert.Zero(t, remaining)
}

func TestAllocateCredit_NotRequested(t *testing.T) {
	consumed, remaining := AllocateCredit(120, 200, false, enum.TransactionTypeSale)

	assert.Zero(t, consumed)
	assert.InDelta(t, 120.0, remaining, 1e-9)
}

func TestAllocateCredit_ReturnsNeverConsume(t *testing.T) {
	consumed, remaining := AllocateCredit(-120, 200, true, enum.TransactionTypeReturn)

	assert.Zero(t, consumed)
	assert.InDelta(t, -120.0, remaining, 1e-9)
}

func TestAllocateCredit_ZeroBalance(t *testing.T) {
	consumed, remaining := AllocateCredit(120, 0, true, enum.TransactionTypeSale)

	assert.Zero(t, consumed)
	assert.InDelta(t, 120.0, remaining, 1e-9)
}

func TestAllocateCredit_ZeroTotal(t *testing.T) {
	consumed, remaining := AllocateCredit(0, 200, true, enum.TransactionTypeSale)

	assert.Zero(t, consumed)
	assert.Zero(t, remaining)
}
