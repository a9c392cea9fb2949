package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

//go:generate mockgen -source=customer_repository.go -destination=customer_repository_mock.go -package=repository

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// AdjustCredit applies a signed delta to a customer's store credit
	// outside of a checkout, e.g. a counter top-up.
	AdjustCredit(ctx context.Context, id uuid.UUID, delta float64) error
}
