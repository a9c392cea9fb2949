package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	domainRepo "github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/pagination"
	"gorm.io/gorm"
)

type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates a new rental repository
func NewRentalRepository(db *gorm.DB) domainRepo.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	var rental entity.Rental
	err := r.db.WithContext(ctx).
		Preload("LineItem").
		Preload("LineItem.Item").
		First(&rental, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rental, err
}

func (r *rentalRepository) List(ctx context.Context, params *pagination.PaginationParams, openOnly, overdueOnly bool) ([]entity.Rental, int64, error) {
	var rentals []entity.Rental
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Rental{})

	if openOnly || overdueOnly {
		query = query.Where("returned = ?", false)
	}
	if overdueOnly {
		query = query.Where("due_date < ?", time.Now())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("LineItem").
		Preload("LineItem.Item").
		Order("due_date ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&rentals).Error

	return rentals, total, err
}
