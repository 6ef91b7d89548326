// Package interfaces defines service contracts for StockPulse
package interfaces

import (
	"context"

	"github.com/rathishpadman/stockpulse/internal/models"
)

// ReportStore reads pre-computed screening rows from the backing store.
// All list queries are bounded by the query's limit; when no ticker filter
// is given, the store resolves the latest period first and returns only
// that period's rows (two sequential queries).
type ReportStore interface {
	// GetDailyReports returns daily screening rows per the query contract.
	GetDailyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error)

	// GetWeeklyReports returns weekly screening rows per the query contract.
	GetWeeklyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error)

	// GetMonthlyReports returns monthly screening rows per the query contract.
	GetMonthlyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error)

	// GetSeasonality returns seasonality rows ordered by positive-month count.
	GetSeasonality(ctx context.Context, limit int) ([]models.SeasonalityRecord, error)

	// GetTickerSeasonality looks up one ticker's seasonality record.
	// The lookup is case-insensitive and retries once with the alternate
	// exchange-suffix form; a final miss returns models.ErrNoData.
	GetTickerSeasonality(ctx context.Context, ticker string) (*models.SeasonalityRecord, error)
}

// StorageManager owns the store connections and their lifecycle.
type StorageManager interface {
	ReportStore() ReportStore
	Close() error
}
