package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/tillpoint/internal/application/service"
	"github.com/mkamau/tillpoint/internal/config"
	"github.com/mkamau/tillpoint/internal/infrastructure/database"
	"github.com/mkamau/tillpoint/internal/infrastructure/repository"
	"github.com/mkamau/tillpoint/internal/presentation/http/handler"
	"github.com/mkamau/tillpoint/internal/presentation/http/routes"
	"github.com/mkamau/tillpoint/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	itemRepo := repository.NewItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(employeeRepo, jwtManager)
	employeeService := service.NewEmployeeService(employeeRepo)
	itemService := service.NewItemService(itemRepo)
	customerService := service.NewCustomerService(customerRepo)
	checkoutService := service.NewCheckoutService(ledgerRepo, cfg.Checkout.TaxRate)
	transactionService := service.NewTransactionService(transactionRepo)
	rentalService := service.NewRentalService(rentalRepo)
	reportService := service.NewReportService(reportRepo)

	// Initialize handlers
	h := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		Item:        handler.NewItemHandler(itemService),
		Customer:    handler.NewCustomerHandler(customerService),
		Checkout:    handler.NewCheckoutHandler(checkoutService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Rental:      handler.NewRentalHandler(rentalService),
		Report:      handler.NewReportHandler(reportService),
	}

	// Setup router
	router := routes.Setup(h, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
