package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	domainRepo "github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/pagination"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Customer").
		Preload("LineItems").
		Preload("LineItems.Item").
		First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) List(ctx context.Context, params *pagination.PaginationParams, filters domainRepo.TransactionFilters) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if filters.Type != "" {
		query = query.Where("transaction_type = ?", filters.Type)
	}
	if filters.CustomerID != uuid.Nil {
		query = query.Where("customer_id = ?", filters.CustomerID)
	}
	if filters.EmployeeID != uuid.Nil {
		query = query.Where("employee_id = ?", filters.EmployeeID)
	}
	if !filters.From.IsZero() {
		query = query.Where("transaction_date >= ?", filters.From)
	}
	if !filters.To.IsZero() {
		query = query.Where("transaction_date <= ?", filters.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("LineItems").
		Order("transaction_date DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&transactions).Error

	return transactions, total, err
}
