package interfaces

import (
	"context"

	"github.com/rathishpadman/stockpulse/internal/models"
)

// ReportService normalizes request parameters and serves screening reports.
type ReportService interface {
	// GetDailyReport serves daily rows; empty ticker means latest trade date.
	GetDailyReport(ctx context.Context, opts ReportOptions) ([]models.StockSnapshot, error)

	// GetWeeklyReport serves weekly rows; empty ticker means latest week ending.
	GetWeeklyReport(ctx context.Context, opts ReportOptions) ([]models.StockSnapshot, error)

	// GetMonthlyReport serves monthly rows; empty ticker means latest month.
	GetMonthlyReport(ctx context.Context, opts ReportOptions) ([]models.StockSnapshot, error)

	// GetSeasonality serves the seasonality table.
	GetSeasonality(ctx context.Context, limit int) ([]models.SeasonalityRecord, error)

	// GetTickerSeasonality looks up one ticker; returns models.ErrNoData on a miss.
	GetTickerSeasonality(ctx context.Context, ticker string) (*models.SeasonalityRecord, error)
}

// ReportOptions carries raw request parameters before normalization.
type ReportOptions struct {
	Ticker  string
	Limit   int
	Periods int    // weeks/months parameter for single-ticker queries
	OrderBy string
}

// SignalService scans the latest snapshots into signal buckets.
type SignalService interface {
	// Scan classifies the latest daily snapshots into signal buckets.
	Scan(ctx context.Context) (*models.SignalReport, error)
}

// AgentService proxies analysis requests to the external agent service.
type AgentService interface {
	// Analyze validates the request and performs exactly one downstream call.
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AgentAnalysis, error)
}
