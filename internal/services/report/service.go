// Package report serves screening reports from the backing store
package report

import (
	"context"
	"strings"

	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/interfaces"
	"github.com/rathishpadman/stockpulse/internal/models"
	"github.com/rathishpadman/stockpulse/internal/signals"
)

// Service implements ReportService. It normalizes raw request parameters
// into the bounded query contract and delegates to the report store.
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new report service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

func (s *Service) GetDailyReport(ctx context.Context, opts interfaces.ReportOptions) ([]models.StockSnapshot, error) {
	return s.storage.ReportStore().GetDailyReports(ctx, normalizeQuery(opts))
}

func (s *Service) GetWeeklyReport(ctx context.Context, opts interfaces.ReportOptions) ([]models.StockSnapshot, error) {
	return s.storage.ReportStore().GetWeeklyReports(ctx, normalizeQuery(opts))
}

func (s *Service) GetMonthlyReport(ctx context.Context, opts interfaces.ReportOptions) ([]models.StockSnapshot, error) {
	return s.storage.ReportStore().GetMonthlyReports(ctx, normalizeQuery(opts))
}

func (s *Service) GetSeasonality(ctx context.Context, limit int) ([]models.SeasonalityRecord, error) {
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}
	rows, err := s.storage.ReportStore().GetSeasonality(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		signals.AnnotateHeat(&rows[i])
	}
	return rows, nil
}

func (s *Service) GetTickerSeasonality(ctx context.Context, ticker string) (*models.SeasonalityRecord, error) {
	rec, err := s.storage.ReportStore().GetTickerSeasonality(ctx, ticker)
	if err != nil {
		return nil, err
	}
	signals.AnnotateHeat(rec)
	return rec, nil
}

// normalizeQuery applies the parameter contract: uppercase ticker, bounded
// limit (default 200, cap 1000), non-negative period count.
func normalizeQuery(opts interfaces.ReportOptions) models.ReportQuery {
	q := models.ReportQuery{
		Ticker:  strings.ToUpper(strings.TrimSpace(opts.Ticker)),
		Limit:   opts.Limit,
		OrderBy: opts.OrderBy,
	}

	if q.Limit <= 0 {
		q.Limit = models.DefaultLimit
	}
	if q.Limit > models.MaxLimit {
		q.Limit = models.MaxLimit
	}
	if opts.Periods > 0 {
		q.Periods = opts.Periods
	}

	return q
}

// Ensure Service implements ReportService
var _ interfaces.ReportService = (*Service)(nil)
