package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

// RentalRepository defines read access to rental records. Rentals are
// created inside the checkout transaction; the returned flag has no write
// path yet.
type RentalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)
	// List returns rentals with their line items preloaded. When openOnly is
	// true only unreturned rentals are included; when overdueOnly is true
	// only unreturned rentals past their due date are included.
	List(ctx context.Context, params *pagination.PaginationParams, openOnly, overdueOnly bool) ([]entity.Rental, int64, error)
}
