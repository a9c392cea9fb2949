package service

import (
	"context"
	"time"

	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
)

// ReportService produces sales aggregates for the admin dashboard
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// GetDailySales returns per-day sales for the last N days (default 30,
// capped at 365)
func (s *ReportService) GetDailySales(ctx context.Context, days int) ([]repository.DailySalesResult, error) {
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		days = 365
	}
	return s.reportRepo.GetDailySales(ctx, days)
}

// GetSalesSummary aggregates the ledger between from and to. A zero from
// means the beginning of time; a zero to means now.
func (s *ReportService) GetSalesSummary(ctx context.Context, from, to time.Time) (*repository.SalesSummaryResult, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if !from.IsZero() && from.After(to) {
		return nil, apperror.NewBadRequestError("Invalid date range")
	}
	return s.reportRepo.GetSalesSummary(ctx, from, to)
}
