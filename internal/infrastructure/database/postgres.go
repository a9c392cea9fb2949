package database

import (
	"fmt"
	"log"

	"github.com/mkamau/tillpoint/internal/config"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Employee{},
		&entity.Item{},
		&entity.Customer{},
		&entity.Transaction{},
		&entity.LineItem{},
		&entity.Rental{},
		&entity.Coupon{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds a default admin, a cashier and a starter inventory so
// a fresh install is usable at the counter immediately.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	employees := []struct {
		username string
		fullName string
		password string
		role     enum.Role
	}{
		{"admin", "Store Admin", "admin123", enum.RoleAdmin},
		{"cashier", "Jane Doe", "cashier123", enum.RoleCashier},
	}

	for _, e := range employees {
		var existing entity.Employee
		if err := db.Where("username = ?", e.username).First(&existing).Error; err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", e.username, err)
		}

		employee := entity.Employee{
			Username:     e.username,
			FullName:     e.fullName,
			PasswordHash: string(hash),
			Role:         e.role,
		}
		if err := db.Create(&employee).Error; err != nil {
			log.Printf("Warning: failed to create employee %s: %v", e.username, err)
			continue
		}
		log.Printf("Created employee %s (%s)", e.username, e.role)
	}

	items := []entity.Item{
		{Name: "Laptop", Price: 999.99, QuantityInStock: 10, ItemType: enum.ItemTypeSale},
		{Name: "Mouse", Price: 25.50, QuantityInStock: 50, ItemType: enum.ItemTypeSale},
		{Name: "Projector", Price: 150.00, QuantityInStock: 5, ItemType: enum.ItemTypeRental},
		{Name: "HDMI Cable", Price: 10.00, QuantityInStock: 100, ItemType: enum.ItemTypeSale},
	}

	for i := range items {
		var existing entity.Item
		if err := db.Where("name = ?", items[i].Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&items[i]).Error; err != nil {
			log.Printf("Warning: failed to create item %s: %v", items[i].Name, err)
			continue
		}
		log.Printf("Added item: %s", items[i].Name)
	}

	log.Println("Default data seeding completed")
	return nil
}
