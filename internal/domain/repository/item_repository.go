package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

// ItemRepository defines the interface for inventory item operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns items with page-based pagination, optionally filtered by
	// name search and item type.
	List(ctx context.Context, params *pagination.PaginationParams, search string, itemType enum.ItemType) ([]entity.Item, int64, error)
	// AdjustStock applies a signed delta to an item's stock level. Stock may
	// go negative.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
