package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"gorm.io/gorm"
)

// Item represents a product in the store's inventory. QuantityInStock is
// adjusted during checkout and may go negative: no sufficiency floor is
// enforced at this layer.
type Item struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Price           float64        `gorm:"not null" json:"price"`
	QuantityInStock int            `gorm:"not null;default:0" json:"quantity_in_stock"`
	ItemType        enum.ItemType  `gorm:"size:50;not null" json:"item_type"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
