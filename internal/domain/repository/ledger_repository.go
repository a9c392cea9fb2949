package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
)

//go:generate mockgen -source=ledger_repository.go -destination=ledger_repository_mock.go -package=repository

// LedgerRepository is the write side of the transaction ledger. All checkout
// mutations go through a single LedgerTx so they commit or roll back as one
// unit.
type LedgerRepository interface {
	Begin(ctx context.Context) (LedgerTx, error)
}

// LedgerTx scopes the ledger mutations of one checkout to one database
// transaction. The caller must end it with exactly one Commit or Rollback.
type LedgerTx interface {
	// ItemsByIDs loads the requested items inside the transaction, keyed by
	// ID. Missing IDs are simply absent from the map.
	ItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Item, error)
	// CustomerForUpdate loads a customer row with a row-level lock so
	// concurrent checkouts against the same credit balance serialize.
	CustomerForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	CreateTransaction(ctx context.Context, transaction *entity.Transaction) error
	CreateLineItem(ctx context.Context, lineItem *entity.LineItem) error
	// AdjustStock applies a signed delta to an item's stock. There is no
	// sufficiency check; stock may go negative.
	AdjustStock(ctx context.Context, itemID uuid.UUID, delta int) error
	CreateRental(ctx context.Context, rental *entity.Rental) error
	// AdjustCredit applies a signed delta to a customer's store credit.
	AdjustCredit(ctx context.Context, customerID uuid.UUID, delta float64) error
	Commit() error
	Rollback() error
}
