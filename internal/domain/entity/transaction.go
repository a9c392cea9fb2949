package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction represents one committed checkout. TotalPrice is signed:
// negative for returns, and already net of any store credit redeemed.
// Rows are created exactly once per checkout and never updated.
type Transaction struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      *uuid.UUID           `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	EmployeeID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"employee_id"`
	TransactionType enum.TransactionType `gorm:"size:50;not null" json:"transaction_type"`
	TransactionDate time.Time            `gorm:"not null" json:"transaction_date"`
	Subtotal        float64              `gorm:"not null" json:"subtotal"`
	TaxAmount       float64              `gorm:"not null" json:"tax_amount"`
	TotalPrice      float64              `gorm:"not null" json:"total_price"`
	PaymentMethod   string               `gorm:"size:50" json:"payment_method"`
	CreatedAt       time.Time            `json:"created_at"`

	// Relationships
	Employee  Employee   `gorm:"foreignKey:EmployeeID" json:"-"`
	Customer  *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	LineItems []LineItem `gorm:"foreignKey:TransactionID" json:"line_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// LineItem represents one cart entry once a transaction has committed.
// PriceAtTime freezes the price quoted at checkout, independent of later
// catalog changes.
type LineItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	PriceAtTime   float64   `gorm:"not null" json:"price_at_time"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
	Item        Item        `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}
