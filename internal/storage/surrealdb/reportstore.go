package surrealdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"

	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/models"
)

// MarketSuffix is the NSE exchange suffix used by the upstream pipeline.
// Ticker lookups retry exactly once with the alternate form (suffix
// appended or stripped) before reporting a miss.
const MarketSuffix = ".NS"

// reportTable binds a report table to the column that identifies its period.
type reportTable struct {
	name        string
	periodField string
}

var (
	dailyTable   = reportTable{name: "daily_reports", periodField: "trade_date"}
	weeklyTable  = reportTable{name: "weekly_reports", periodField: "week_ending"}
	monthlyTable = reportTable{name: "monthly_reports", periodField: "month"}
)

// orderFields whitelists columns accepted for ORDER BY. SurrealQL cannot
// parameterize identifiers, so anything else falls back to the default.
var orderFields = map[string]bool{
	"composite_score": true,
	"return_pct":      true,
	"return_1w":       true,
	"return_1m":       true,
	"return_3m":       true,
	"return_6m":       true,
	"return_1y":       true,
	"rsi_14":          true,
	"adx_14":          true,
	"volume_ratio":    true,
	"price":           true,
}

const defaultOrderField = "composite_score"

// ReportStore serves pre-computed screening rows. It never writes; the
// upstream pipeline owns all report tables.
type ReportStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewReportStore(db *surrealdb.DB, logger *common.Logger) *ReportStore {
	return &ReportStore{
		db:     db,
		logger: logger,
	}
}

func (s *ReportStore) GetDailyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error) {
	return s.getReports(ctx, dailyTable, q)
}

func (s *ReportStore) GetWeeklyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error) {
	return s.getReports(ctx, weeklyTable, q)
}

func (s *ReportStore) GetMonthlyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error) {
	return s.getReports(ctx, monthlyTable, q)
}

// getReports applies the report query contract: a ticker filter spans all
// periods (most recent first, one alternate-suffix retry on a miss); no
// ticker means resolve the latest period, then fetch only that period's
// rows. The two queries in the latter case are strictly sequential.
func (s *ReportStore) getReports(ctx context.Context, tbl reportTable, q models.ReportQuery) ([]models.StockSnapshot, error) {
	limit := clampLimit(q.Limit)
	if q.Periods > 0 && q.Periods < limit {
		limit = q.Periods
	}

	if q.Ticker != "" {
		ticker := normalizeTicker(q.Ticker)
		rows, err := s.tickerRows(ctx, tbl, ticker, limit)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			rows, err = s.tickerRows(ctx, tbl, alternateTicker(ticker), limit)
			if err != nil {
				return nil, err
			}
		}
		return rows, nil
	}

	period, err := s.latestPeriod(ctx, tbl)
	if err != nil {
		return nil, err
	}
	if period == "" {
		return nil, nil
	}

	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s = $period ORDER BY %s DESC LIMIT %d",
		tbl.name, tbl.periodField, orderField(q.OrderBy), limit)
	vars := map[string]any{"period": period}

	results, err := surrealdb.Query[[]models.StockSnapshot](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", tbl.name, err)
	}
	return firstResult(results), nil
}

// tickerRows fetches one ticker's rows across all periods, newest first.
func (s *ReportStore) tickerRows(ctx context.Context, tbl reportTable, ticker string, limit int) ([]models.StockSnapshot, error) {
	sql := fmt.Sprintf("SELECT * FROM %s WHERE ticker = $ticker ORDER BY %s DESC LIMIT %d",
		tbl.name, tbl.periodField, limit)
	vars := map[string]any{"ticker": ticker}

	results, err := surrealdb.Query[[]models.StockSnapshot](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for %s: %w", tbl.name, ticker, err)
	}
	return firstResult(results), nil
}

// latestPeriod resolves the single most recent period value in the table.
func (s *ReportStore) latestPeriod(ctx context.Context, tbl reportTable) (string, error) {
	type latestResult struct {
		Latest string `json:"latest"`
	}

	sql := fmt.Sprintf("SELECT math::max(%s) AS latest FROM %s GROUP ALL", tbl.periodField, tbl.name)

	results, err := surrealdb.Query[[]latestResult](ctx, s.db, sql, nil)
	if err != nil {
		return "", fmt.Errorf("failed to resolve latest %s: %w", tbl.periodField, err)
	}

	rows := firstResult(results)
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Latest, nil
}

func (s *ReportStore) GetSeasonality(ctx context.Context, limit int) ([]models.SeasonalityRecord, error) {
	sql := fmt.Sprintf("SELECT * FROM seasonality ORDER BY positive_months DESC LIMIT %d", clampLimit(limit))

	results, err := surrealdb.Query[[]models.SeasonalityRecord](ctx, s.db, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasonality: %w", err)
	}
	return firstResult(results), nil
}

// GetTickerSeasonality looks up one ticker's record, retrying once with
// the alternate suffix form. A final miss is models.ErrNoData.
func (s *ReportStore) GetTickerSeasonality(ctx context.Context, ticker string) (*models.SeasonalityRecord, error) {
	ticker = normalizeTicker(ticker)

	rec, err := s.lookupSeasonality(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec, err = s.lookupSeasonality(ctx, alternateTicker(ticker))
		if err != nil {
			return nil, err
		}
	}
	if rec == nil {
		return nil, models.ErrNoData
	}
	return rec, nil
}

func (s *ReportStore) lookupSeasonality(ctx context.Context, ticker string) (*models.SeasonalityRecord, error) {
	sql := "SELECT * FROM seasonality WHERE ticker = $ticker LIMIT 1"
	vars := map[string]any{"ticker": ticker}

	results, err := surrealdb.Query[[]models.SeasonalityRecord](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to look up seasonality for %s: %w", ticker, err)
	}

	rows := firstResult(results)
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// firstResult unwraps the first statement's rows from a query response.
func firstResult[T any](results *[]surrealdb.QueryResult[[]T]) []T {
	if results != nil && len(*results) > 0 {
		return (*results)[0].Result
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return models.DefaultLimit
	}
	if limit > models.MaxLimit {
		return models.MaxLimit
	}
	return limit
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// alternateTicker flips between the bare symbol and its suffixed form.
func alternateTicker(ticker string) string {
	if strings.HasSuffix(ticker, MarketSuffix) {
		return strings.TrimSuffix(ticker, MarketSuffix)
	}
	return ticker + MarketSuffix
}

func orderField(requested string) string {
	if orderFields[requested] {
		return requested
	}
	return defaultOrderField
}
