package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	domainRepo "github.com/mkamau/tillpoint/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates the write-side repository for checkout. Every
// mutation of a single checkout runs on one database transaction obtained
// from Begin.
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Begin(ctx context.Context) (domainRepo.LedgerTx, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &ledgerTx{tx: tx}, nil
}

type ledgerTx struct {
	tx *gorm.DB
}

func (t *ledgerTx) ItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Item, error) {
	var items []entity.Item
	if err := t.tx.WithContext(ctx).Find(&items, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]entity.Item, len(items))
	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

// CustomerForUpdate takes a SELECT ... FOR UPDATE lock on the customer row.
// Concurrent checkouts that touch the same customer's credit serialize here
// and read committed balances.
func (t *ledgerTx) CustomerForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := t.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (t *ledgerTx) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	return t.tx.WithContext(ctx).Create(transaction).Error
}

func (t *ledgerTx) CreateLineItem(ctx context.Context, lineItem *entity.LineItem) error {
	return t.tx.WithContext(ctx).Create(lineItem).Error
}

func (t *ledgerTx) AdjustStock(ctx context.Context, itemID uuid.UUID, delta int) error {
	return t.tx.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ?", itemID).
		UpdateColumn("quantity_in_stock", gorm.Expr("quantity_in_stock + ?", delta)).Error
}

func (t *ledgerTx) CreateRental(ctx context.Context, rental *entity.Rental) error {
	return t.tx.WithContext(ctx).Create(rental).Error
}

func (t *ledgerTx) AdjustCredit(ctx context.Context, customerID uuid.UUID, delta float64) error {
	return t.tx.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", customerID).
		UpdateColumn("store_credit", gorm.Expr("store_credit + ?", delta)).Error
}

func (t *ledgerTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *ledgerTx) Rollback() error {
	return t.tx.Rollback().Error
}
