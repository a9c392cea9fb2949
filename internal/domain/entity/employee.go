package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"gorm.io/gorm"
)

// Employee represents a store employee who can operate the register
type Employee struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username     string         `gorm:"size:255;unique;not null" json:"username"`
	FullName     string         `gorm:"size:255" json:"full_name"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Role         enum.Role      `gorm:"size:50;not null" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:EmployeeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
