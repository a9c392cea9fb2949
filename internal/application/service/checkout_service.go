package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/internal/domain/ledger"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
)

// PaymentMethodStoreCredit routes a return's refund back onto the
// customer's credit balance instead of cash.
const PaymentMethodStoreCredit = "Store Credit"

// CheckoutService orchestrates the checkout: it prices the cart, allocates
// store credit and applies every ledger mutation inside one database
// transaction. Either all of it commits or none of it does.
type CheckoutService struct {
	ledgerRepo repository.LedgerRepository
	taxRate    float64
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(ledgerRepo repository.LedgerRepository, taxRate float64) *CheckoutService {
	return &CheckoutService{
		ledgerRepo: ledgerRepo,
		taxRate:    taxRate,
	}
}

// CheckoutInput represents one checkout request
type CheckoutInput struct {
	EmployeeID    uuid.UUID
	CustomerID    *uuid.UUID
	Type          enum.TransactionType
	Entries       []ledger.CartEntry
	DueDate       *time.Time
	PaymentMethod string
	UseCredit     bool
}

// CheckoutOutput reports the committed transaction and the credit movement
// that went with it.
type CheckoutOutput struct {
	Transaction *entity.Transaction
	CreditUsed  float64
	FinalTotal  float64
}

// Checkout runs the full checkout flow. Cart prices are taken as quoted by
// the caller and frozen into line items; stock is adjusted without a
// sufficiency check, so it may go negative.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid transaction type")
	}
	if len(input.Entries) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}
	if input.Type == enum.TransactionTypeRental && input.DueDate == nil {
		return nil, apperror.NewBadRequestError("Due date is required for rentals")
	}

	totals, err := ledger.Quote(input.Entries, input.Type, s.taxRate)
	if err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ids := make([]uuid.UUID, 0, len(input.Entries))
	for _, e := range input.Entries {
		ids = append(ids, e.ItemID)
	}

	items, err := tx.ItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range input.Entries {
		if _, ok := items[e.ItemID]; !ok {
			return nil, apperror.NewNotFoundError("Item")
		}
	}

	var customer *entity.Customer
	if input.CustomerID != nil {
		customer, err = tx.CustomerForUpdate(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	var balance float64
	if customer != nil {
		balance = customer.StoreCredit
	}
	creditUsed, finalTotal := ledger.AllocateCredit(totals.TotalPrice, balance, input.UseCredit && customer != nil, input.Type)

	transaction := &entity.Transaction{
		CustomerID:      input.CustomerID,
		EmployeeID:      input.EmployeeID,
		TransactionType: input.Type,
		TransactionDate: time.Now(),
		Subtotal:        totals.Subtotal,
		TaxAmount:       totals.TaxAmount,
		TotalPrice:      finalTotal,
		PaymentMethod:   input.PaymentMethod,
	}
	if err := tx.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	for _, e := range input.Entries {
		lineItem := &entity.LineItem{
			TransactionID: transaction.ID,
			ItemID:        e.ItemID,
			Quantity:      e.Quantity,
			PriceAtTime:   e.Price,
		}
		if err := tx.CreateLineItem(ctx, lineItem); err != nil {
			return nil, err
		}

		if err := tx.AdjustStock(ctx, e.ItemID, ledger.StockDelta(input.Type, e.Quantity)); err != nil {
			return nil, err
		}

		if input.Type == enum.TransactionTypeRental {
			rental := &entity.Rental{
				LineItemID: lineItem.ID,
				DueDate:    *input.DueDate,
			}
			if err := tx.CreateRental(ctx, rental); err != nil {
				return nil, err
			}
		}

		transaction.LineItems = append(transaction.LineItems, *lineItem)
	}

	if customer != nil {
		if creditUsed > 0 {
			if err := tx.AdjustCredit(ctx, customer.ID, -creditUsed); err != nil {
				return nil, err
			}
		}
		if input.Type == enum.TransactionTypeReturn && input.PaymentMethod == PaymentMethodStoreCredit {
			if err := tx.AdjustCredit(ctx, customer.ID, math.Abs(finalTotal)); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &CheckoutOutput{
		Transaction: transaction,
		CreditUsed:  creditUsed,
		FinalTotal:  finalTotal,
	}, nil
}
