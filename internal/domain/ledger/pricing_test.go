package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/pkg/apperror"
)

func TestQuote_SaleSingleLine(t *testing.T) {
	entries := []CartEntry{
		{ItemID: uuid.New(), Quantity: 1, Price: 999.99},
	}

	totals, err := Quote(entries, enum.TransactionTypeSale, 0.10)
	require.NoError(t, err)

	assert.InDelta(t, 999.99, totals.Subtotal, 1e-9)
	assert.InDelta(t, 99.999, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 1099.989, totals.TotalPrice, 1e-9)
}

func TestQuote_SaleMultipleLines(t *testing.T) {
	entries := []CartEntry{
		{ItemID: uuid.New(), Quantity: 2, Price: 25.50},
		{ItemID: uuid.New(), Quantity: 3, Price: 10.00},
	}

	totals, err := Quote(entries, enum.TransactionTypeSale, 0.10)
	require.NoError(t, err)

	assert.InDelta(t, 81.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 8.10, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 89.10, totals.TotalPrice, 1e-9)
}

func TestQuote_RentalTaxedLikeSale(t *testing.T) {
	entries := []CartEntry{
		{ItemID: uuid.New(), Quantity: 1, Price: 150.00},
	}

	totals, err := Quote(entries, enum.TransactionTypeRental, 0.10)
	require.NoError(t, err)

	assert.InDelta(t, 150.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 15.00, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 165.00, totals.TotalPrice, 1e-9)
}

func TestQuote_ReturnNegatesTotalAndSkipsTax(t *testing.T) {
	entries := []CartEntry{
		{ItemID: uuid.New(), Quantity: 1, Price: 999.99},
	}

	totals, err := Quote(entries, enum.TransactionTypeReturn, 0.10)
	require.NoError(t, err)

	assert.InDelta(t, 999.99, totals.Subtotal, 1e-9)
	assert.Zero(t, totals.TaxAmount)
	assert.InDelta(t, -999.99, totals.TotalPrice, 1e-9)
}

func TestQuote_EmptyCartIsZero(t *testing.T) {
	totals, err := Quote(nil, enum.TransactionTypeSale, 0.10)
	require.NoError(t, err)

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.TaxAmount)
	assert.Zero(t, totals.TotalPrice)
}

func TestQuote_ZeroPriceLineIsAccepted(t *testing.T) {
	entries := []CartEntry{
		{ItemID: uuid.New(), Quantity: 2, Price: 0},
	}

	totals, err := Quote(entries, enum.TransactionTypeSale, 0.10)
	require.NoError(t, err)
	assert.Zero(t, totals.TotalPrice)
}

func TestQuote_RejectsNonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		entries := []CartEntry{
			{ItemID: uuid.New(), Quantity: qty, Price: 10.00},
		}

		_, err := Quote(entries, enum.TransactionTypeSale, 0.10)
		require.Error(t, err)

		appErr := apperror.GetAppError(err)
		assert.Equal(t, 422, appErr.Code)
	}
}

func TestQuote_RejectsNegativePrice(t *testing.T) {
	entries := []CartEntry{
		{ItemID: uuid.New(), Quantity: 1, Price: -0.01},
	}

	_, err := Quote(entries, enum.TransactionTypeSale, 0.10)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
}

func TestStockDelta(t *testing.T) {
	assert.Equal(t, -3, StockDelta(enum.TransactionTypeSale, 3))
	assert.Equal(t, -1, StockDelta(enum.TransactionTypeRental, 1))
	assert.Equal(t, 3, StockDelta(enum.TransactionTypeReturn, 3))
}
