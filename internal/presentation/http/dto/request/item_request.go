package request

// CreateItemRequest represents a create item request
type CreateItemRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=255"`
	Price           float64 `json:"price" binding:"min=0"`
	QuantityInStock int     `json:"quantity_in_stock"`
	ItemType        string  `json:"item_type" binding:"required,oneof=Sale Rental"`
}

// UpdateItemRequest represents an update item request
type UpdateItemRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	ItemType *string  `json:"item_type" binding:"omitempty,oneof=Sale Rental"`
}

// RestockItemRequest represents a manual stock adjustment
type RestockItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}
