package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/tillpoint/internal/config"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	domainRepo "github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/internal/presentation/http/handler"
	"github.com/mkamau/tillpoint/internal/presentation/http/middleware"
	"github.com/mkamau/tillpoint/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Employee    *handler.EmployeeHandler
	Item        *handler.ItemHandler
	Customer    *handler.CustomerHandler
	Checkout    *handler.CheckoutHandler
	Transaction *handler.TransactionHandler
	Rental      *handler.RentalHandler
	Report      *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-employee rate limiter
		rateLimiter := middleware.NewEmployeeRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Employee management is admin-only
	employees := protected.Group("/employees")
	employees.Use(middleware.RequireRole(enum.RoleAdmin))
	{
		employees.POST("", h.Employee.Create)
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
	}

	// Inventory
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.GET("/:id", h.Item.Get)
		items.POST("", middleware.RequireRole(enum.RoleAdmin), h.Item.Create)
		items.PUT("/:id", middleware.RequireRole(enum.RoleAdmin), h.Item.Update)
		items.DELETE("/:id", middleware.RequireRole(enum.RoleAdmin), h.Item.Delete)
		items.POST("/:id/restock", middleware.RequireRole(enum.RoleAdmin), h.Item.Restock)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("/:id/credit", h.Customer.AddCredit)
	}

	// Checkout requires an idempotency key so a retried request cannot
	// charge twice. Expired keys are purged in the background.
	middleware.StartIdempotencyCleanup(deps.IdempotencyRepo, time.Hour)
	checkout := protected.Group("/checkout")
	checkout.Use(middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}))
	{
		checkout.POST("", h.Checkout.Checkout)
	}

	// Transaction history
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.GET("/:id", h.Transaction.Get)
	}

	// Rentals
	rentals := protected.Group("/rentals")
	{
		rentals.GET("", h.Rental.List)
		rentals.GET("/:id", h.Rental.Get)
	}

	// Reports are admin-only
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(enum.RoleAdmin))
	{
		reports.GET("/sales/daily", h.Report.DailySales)
		reports.GET("/sales/summary", h.Report.Summary)
	}
}
