package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

// ItemService handles inventory item management
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name            string
	Price           float64
	QuantityInStock int
	ItemType        enum.ItemType
}

// CreateItem adds a new item to the catalog
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if !input.ItemType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid item type")
	}

	item := &entity.Item{
		Name:            input.Name,
		Price:           input.Price,
		QuantityInStock: input.QuantityInStock,
		ItemType:        input.ItemType,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateItemInput represents the update item input. Nil fields are left
// unchanged.
type UpdateItemInput struct {
	Name     *string
	Price    *float64
	ItemType *enum.ItemType
}

// UpdateItem updates catalog attributes of an item. Stock changes go
// through Restock or checkout, not here.
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price must not be negative")
		}
		item.Price = *input.Price
	}
	if input.ItemType != nil {
		if !input.ItemType.Valid() {
			return nil, apperror.NewBadRequestError("Invalid item type")
		}
		item.ItemType = *input.ItemType
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem soft-deletes an item. Historical line items keep pointing at
// the soft-deleted row.
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// ListItems lists items with pagination and optional name/type filters
func (s *ItemService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string, itemType enum.ItemType) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search, itemType)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// Restock applies a manual stock adjustment outside of checkout, e.g. a
// delivery or a stocktake correction.
func (s *ItemService) Restock(ctx context.Context, id uuid.UUID, delta int) (*entity.Item, error) {
	if delta == 0 {
		return nil, apperror.NewBadRequestError("Adjustment must not be zero")
	}

	if _, err := s.GetItem(ctx, id); err != nil {
		return nil, err
	}

	if err := s.itemRepo.AdjustStock(ctx, id, delta); err != nil {
		return nil, err
	}

	return s.GetItem(ctx, id)
}
