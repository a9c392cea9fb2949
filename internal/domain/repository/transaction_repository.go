package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

// TransactionFilters narrows transaction listings. Zero values mean "no
// filter".
type TransactionFilters struct {
	Type       enum.TransactionType
	CustomerID uuid.UUID
	EmployeeID uuid.UUID
	From       time.Time
	To         time.Time
}

// TransactionRepository is the read side of the transaction ledger. Writes
// only happen through LedgerRepository.
type TransactionRepository interface {
	// GetWithDetails retrieves a transaction with its line items, employee
	// and customer preloaded.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, params *pagination.PaginationParams, filters TransactionFilters) ([]entity.Transaction, int64, error)
}
