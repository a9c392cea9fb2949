package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

// RentalService exposes read access to rental records
type RentalService struct {
	rentalRepo repository.RentalRepository
}

// NewRentalService creates a new rental service
func NewRentalService(rentalRepo repository.RentalRepository) *RentalService {
	return &RentalService{rentalRepo: rentalRepo}
}

// GetRental retrieves a rental by ID
func (s *RentalService) GetRental(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, apperror.NewNotFoundError("Rental")
	}
	return rental, nil
}

// ListRentals lists rentals, optionally restricted to open or overdue ones
func (s *RentalService) ListRentals(ctx context.Context, params *pagination.PaginationParams, openOnly, overdueOnly bool) (*pagination.PaginatedResult[entity.Rental], error) {
	rentals, total, err := s.rentalRepo.List(ctx, params, openOnly, overdueOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(rentals, pag), nil
}
