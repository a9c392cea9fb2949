package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkamau/tillpoint/internal/application/service"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/internal/domain/ledger"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
)

func newLedgerMocks(t *testing.T) (*repository.MockLedgerRepository, *repository.MockLedgerTx) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockLedgerRepository(ctrl)
	tx := repository.NewMockLedgerTx(ctrl)
	return repo, tx
}

func itemsMap(items ...entity.Item) map[uuid.UUID]entity.Item {
	m := make(map[uuid.UUID]entity.Item, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return m
}

func TestCheckout_SaleWithoutCustomer(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	laptop := entity.Item{ID: uuid.New(), Name: "Laptop", Price: 999.99, QuantityInStock: 10, ItemType: enum.ItemTypeSale}
	employeeID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(laptop), nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, transaction *entity.Transaction) error {
			transaction.ID = uuid.New()
			return nil
		})
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lineItem *entity.LineItem) error {
			lineItem.ID = uuid.New()
			return nil
		})
	tx.EXPECT().AdjustStock(gomock.Any(), laptop.ID, -1).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := service.NewCheckoutService(repo, 0.10)
	out, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    employeeID,
		Type:          enum.TransactionTypeSale,
		Entries:       []ledger.CartEntry{{ItemID: laptop.ID, Quantity: 1, Price: 999.99}},
		PaymentMethod: "Cash",
	})

	require.NoError(t, err)
	assert.InDelta(t, 999.99, out.Transaction.Subtotal, 1e-9)
	assert.InDelta(t, 99.999, out.Transaction.TaxAmount, 1e-9)
	assert.InDelta(t, 1099.989, out.Transaction.TotalPrice, 1e-9)
	assert.InDelta(t, 1099.989, out.FinalTotal, 1e-9)
	assert.Zero(t, out.CreditUsed)
	assert.Len(t, out.Transaction.LineItems, 1)
	assert.InDelta(t, 999.99, out.Transaction.LineItems[0].PriceAtTime, 1e-9)
}

func TestCheckout_PartialCreditRedemption(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	item := entity.Item{ID: uuid.New(), Price: 50.00, ItemType: enum.ItemTypeSale}
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID, PhoneNumber: "0712345678", StoreCredit: 50}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(item), nil)
	tx.EXPECT().CustomerForUpdate(gomock.Any(), customerID).Return(customer, nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), item.ID, -2).Return(nil)
	tx.EXPECT().AdjustCredit(gomock.Any(), customerID, -50.0).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	// 20% tax turns the 100.00 subtotal into a 120.00 total
	svc := service.NewCheckoutService(repo, 0.20)
	out, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		CustomerID:    &customerID,
		Type:          enum.TransactionTypeSale,
		Entries:       []ledger.CartEntry{{ItemID: item.ID, Quantity: 2, Price: 50.00}},
		PaymentMethod: "Cash",
		UseCredit:     true,
	})

	require.NoError(t, err)
	assert.InDelta(t, 50.0, out.CreditUsed, 1e-9)
	assert.InDelta(t, 70.0, out.FinalTotal, 1e-9)
	assert.InDelta(t, 70.0, out.Transaction.TotalPrice, 1e-9)
}

func TestCheckout_CreditCoversTotal(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	item := entity.Item{ID: uuid.New(), Price: 50.00, ItemType: enum.ItemTypeSale}
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID, StoreCredit: 200}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(item), nil)
	tx.EXPECT().CustomerForUpdate(gomock.Any(), customerID).Return(customer, nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), item.ID, -2).Return(nil)
	tx.EXPECT().AdjustCredit(gomock.Any(), customerID, -120.0).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := service.NewCheckoutService(repo, 0.20)
	out, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		CustomerID:    &customerID,
		Type:          enum.TransactionTypeSale,
		Entries:       []ledger.CartEntry{{ItemID: item.ID, Quantity: 2, Price: 50.00}},
		PaymentMethod: "Cash",
		UseCredit:     true,
	})

	require.NoError(t, err)
	assert.InDelta(t, 120.0, out.CreditUsed, 1e-9)
	assert.Zero(t, out.FinalTotal)
	assert.Zero(t, out.Transaction.TotalPrice)
}

func TestCheckout_RentalCreatesRentalRows(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	projector := entity.Item{ID: uuid.New(), Price: 150.00, ItemType: enum.ItemTypeRental}
	dueDate := time.Now().AddDate(0, 0, 7)

	var createdRental *entity.Rental
	var lineItemID uuid.UUID

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(projector), nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lineItem *entity.LineItem) error {
			lineItem.ID = uuid.New()
			lineItemID = lineItem.ID
			return nil
		})
	tx.EXPECT().AdjustStock(gomock.Any(), projector.ID, -1).Return(nil)
	tx.EXPECT().CreateRental(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rental *entity.Rental) error {
			createdRental = rental
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := service.NewCheckoutService(repo, 0.10)
	out, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		Type:          enum.TransactionTypeRental,
		Entries:       []ledger.CartEntry{{ItemID: projector.ID, Quantity: 1, Price: 150.00}},
		DueDate:       &dueDate,
		PaymentMethod: "Card",
	})

	require.NoError(t, err)
	require.NotNil(t, createdRental)
	assert.Equal(t, lineItemID, createdRental.LineItemID)
	assert.True(t, createdRental.DueDate.Equal(dueDate))
	assert.InDelta(t, 165.0, out.FinalTotal, 1e-9)
}

func TestCheckout_RentalRequiresDueDate(t *testing.T) {
	repo, _ := newLedgerMocks(t)

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		Type:          enum.TransactionTypeRental,
		Entries:       []ledger.CartEntry{{ItemID: uuid.New(), Quantity: 1, Price: 150.00}},
		PaymentMethod: "Cash",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCheckout_ReturnRefundsToStoreCredit(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	item := entity.Item{ID: uuid.New(), Price: 100.00, ItemType: enum.ItemTypeSale}
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID, StoreCredit: 10}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(item), nil)
	tx.EXPECT().CustomerForUpdate(gomock.Any(), customerID).Return(customer, nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), item.ID, 1).Return(nil)
	tx.EXPECT().AdjustCredit(gomock.Any(), customerID, 100.0).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := service.NewCheckoutService(repo, 0.10)
	out, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		CustomerID:    &customerID,
		Type:          enum.TransactionTypeReturn,
		Entries:       []ledger.CartEntry{{ItemID: item.ID, Quantity: 1, Price: 100.00}},
		PaymentMethod: service.PaymentMethodStoreCredit,
	})

	require.NoError(t, err)
	assert.Zero(t, out.CreditUsed)
	assert.Zero(t, out.Transaction.TaxAmount)
	assert.InDelta(t, -100.0, out.FinalTotal, 1e-9)
}

func TestCheckout_ReturnToCashLeavesCreditAlone(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	item := entity.Item{ID: uuid.New(), Price: 100.00, ItemType: enum.ItemTypeSale}
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID, StoreCredit: 10}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(item), nil)
	tx.EXPECT().CustomerForUpdate(gomock.Any(), customerID).Return(customer, nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), item.ID, 1).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		CustomerID:    &customerID,
		Type:          enum.TransactionTypeReturn,
		Entries:       []ledger.CartEntry{{ItemID: item.ID, Quantity: 1, Price: 100.00}},
		PaymentMethod: "Cash",
	})

	require.NoError(t, err)
}

func TestCheckout_UnknownItemRollsBack(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]entity.Item{}, nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		Type:          enum.TransactionTypeSale,
		Entries:       []ledger.CartEntry{{ItemID: uuid.New(), Quantity: 1, Price: 5.00}},
		PaymentMethod: "Cash",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCheckout_UnknownCustomerRollsBack(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	item := entity.Item{ID: uuid.New(), Price: 5.00, ItemType: enum.ItemTypeSale}
	customerID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(item), nil)
	tx.EXPECT().CustomerForUpdate(gomock.Any(), customerID).Return(nil, nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		CustomerID:    &customerID,
		Type:          enum.TransactionTypeSale,
		Entries:       []ledger.CartEntry{{ItemID: item.ID, Quantity: 1, Price: 5.00}},
		PaymentMethod: "Cash",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCheckout_LineItemFailureAbortsWithoutCommit(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	first := entity.Item{ID: uuid.New(), Price: 10.00, ItemType: enum.ItemTypeSale}
	second := entity.Item{ID: uuid.New(), Price: 20.00, ItemType: enum.ItemTypeSale}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(first, second), nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), first.ID, -1).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	tx.EXPECT().Rollback().Return(nil)

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID: uuid.New(),
		Type:       enum.TransactionTypeSale,
		Entries: []ledger.CartEntry{
			{ItemID: first.ID, Quantity: 1, Price: 10.00},
			{ItemID: second.ID, Quantity: 1, Price: 20.00},
		},
		PaymentMethod: "Cash",
	})

	require.Error(t, err)
	// Unknown storage errors surface as an opaque 500
	assert.Equal(t, http.StatusInternalServerError, apperror.GetAppError(err).Code)
	assert.Equal(t, "Internal server error", apperror.GetAppError(err).Message)
}

func TestCheckout_EmptyCartRejectedBeforeBegin(t *testing.T) {
	repo, _ := newLedgerMocks(t)

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		Type:          enum.TransactionTypeSale,
		PaymentMethod: "Cash",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCheckout_InvalidEntryRejectedBeforeBegin(t *testing.T) {
	repo, _ := newLedgerMocks(t)

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		Type:          enum.TransactionTypeSale,
		Entries:       []ledger.CartEntry{{ItemID: uuid.New(), Quantity: 0, Price: 5.00}},
		PaymentMethod: "Cash",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCheckout_InvalidTypeRejected(t *testing.T) {
	repo, _ := newLedgerMocks(t)

	svc := service.NewCheckoutService(repo, 0.10)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		Type:          enum.TransactionType("Exchange"),
		Entries:       []ledger.CartEntry{{ItemID: uuid.New(), Quantity: 1, Price: 5.00}},
		PaymentMethod: "Cash",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCheckout_CreditIgnoredWithoutCustomer(t *testing.T) {
	repo, tx := newLedgerMocks(t)

	item := entity.Item{ID: uuid.New(), Price: 10.00, ItemType: enum.ItemTypeSale}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ItemsByIDs(gomock.Any(), gomock.Any()).Return(itemsMap(item), nil)
	tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), item.ID, -1).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := service.NewCheckoutService(repo, 0.10)
	out, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		EmployeeID:    uuid.New(),
		Type:          enum.TransactionTypeSale,
		Entries:       []ledger.CartEntry{{ItemID: item.ID, Quantity: 1, Price: 10.00}},
		PaymentMethod: "Cash",
		UseCredit:     true,
	})

	require.NoError(t, err)
	assert.Zero(t, out.CreditUsed)
	assert.InDelta(t, 11.0, out.FinalTotal, 1e-9)
}
