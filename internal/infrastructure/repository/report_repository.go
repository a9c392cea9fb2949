package repository

import (
	"context"
	"time"

	domainRepo "github.com/mkamau/tillpoint/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// GetDailySales returns per-day figures for the last N days. Returns carry
// negative totals, so the sums net refunds out naturally.
func (r *reportRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	var results []domainRepo.DailySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(transaction_date) as date,
			COUNT(*) as transaction_count,
			COALESCE(SUM(total_price), 0) as gross_sales,
			COALESCE(SUM(tax_amount), 0) as tax_collected
		FROM transactions
		WHERE transaction_date >= CURRENT_DATE - make_interval(days => ?)
		GROUP BY DATE(transaction_date)
		ORDER BY date DESC
	`, days).Scan(&results).Error

	return results, err
}

func (r *reportRepository) GetSalesSummary(ctx context.Context, from, to time.Time) (*domainRepo.SalesSummaryResult, error) {
	var result domainRepo.SalesSummaryResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as transaction_count,
			COALESCE(SUM(subtotal), 0) as gross_sales,
			COALESCE(SUM(tax_amount), 0) as tax_collected,
			COALESCE(SUM(total_price), 0) as net_total,
			COALESCE(SUM(subtotal + tax_amount - total_price)
				FILTER (WHERE transaction_type IN ('Sale', 'Rental')), 0) as credit_redeemed
		FROM transactions
		WHERE transaction_date >= ? AND transaction_date <= ?
	`, from, to).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}
