package repository

import (
	"context"
	"time"
)

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date             time.Time
	TransactionCount int
	GrossSales       float64
	TaxCollected     float64
}

// SalesSummaryResult aggregates the ledger over a date range
type SalesSummaryResult struct {
	TransactionCount int
	GrossSales       float64
	TaxCollected     float64
	NetTotal         float64
	CreditRedeemed   float64
}

// ReportRepository defines interface for sales aggregation queries
type ReportRepository interface {
	// GetDailySales returns per-day sales figures for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetSalesSummary aggregates all transactions between from and to
	GetSalesSummary(ctx context.Context, from, to time.Time) (*SalesSummaryResult, error)
}
