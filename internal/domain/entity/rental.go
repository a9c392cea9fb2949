package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rental tracks the due date and return status of a rental-type line item.
// The Returned transition exists as schema only: no endpoint currently
// mutates it.
type Rental struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	LineItemID uuid.UUID  `gorm:"type:uuid;not null;index" json:"line_item_id"`
	DueDate    time.Time  `gorm:"type:date;not null" json:"due_date"`
	Returned   bool       `gorm:"not null;default:false" json:"returned"`
	ReturnDate *time.Time `gorm:"type:date" json:"return_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	// Relationships
	LineItem LineItem `gorm:"foreignKey:LineItemID" json:"line_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new rental
func (r *Rental) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Rental model
func (Rental) TableName() string {
	return "rentals"
}
