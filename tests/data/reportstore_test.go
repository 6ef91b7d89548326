package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathishpadman/stockpulse/internal/models"
)

func TestDailyReportServesLatestTradeDateOnly(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()
	ctx := testContext()

	seed(t, mgr, "daily_reports", dailyRow("RELIANCE.NS", "2024-02-28", 72, 61))
	seed(t, mgr, "daily_reports", dailyRow("TCS.NS", "2024-02-28", 65, 55))
	seed(t, mgr, "daily_reports", dailyRow("RELIANCE.NS", "2024-02-29", 74, 63))
	seed(t, mgr, "daily_reports", dailyRow("INFY.NS", "2024-02-29", 58, 47))

	rows, err := store.GetDailyReports(ctx, models.ReportQuery{Limit: 200})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "2024-02-29", row.TradeDate)
	}
	// Default ordering is composite score, highest first
	assert.Equal(t, "RELIANCE.NS", rows[0].Ticker)
	assert.Equal(t, "INFY.NS", rows[1].Ticker)
}

func TestDailyReportOrderByWhitelist(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()
	ctx := testContext()

	seed(t, mgr, "daily_reports", dailyRow("RELIANCE.NS", "2024-02-29", 60, 80))
	seed(t, mgr, "daily_reports", dailyRow("TCS.NS", "2024-02-29", 70, 40))

	rows, err := store.GetDailyReports(ctx, models.ReportQuery{Limit: 10, OrderBy: "rsi_14"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "RELIANCE.NS", rows[0].Ticker)

	// A column outside the whitelist falls back to composite score
	rows, err = store.GetDailyReports(ctx, models.ReportQuery{Limit: 10, OrderBy: "ticker; DROP TABLE"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "TCS.NS", rows[0].Ticker)
}

func TestTickerLookupRetriesWithSuffix(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()
	ctx := testContext()

	seed(t, mgr, "monthly_reports", monthlyRow("TCS.NS", "2024-01", 3.2))
	seed(t, mgr, "monthly_reports", monthlyRow("TCS.NS", "2024-02", -1.1))

	// Bare symbol finds the suffixed rows on the retry
	rows, err := store.GetMonthlyReports(ctx, models.ReportQuery{Ticker: "TCS", Limit: 200})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-02", rows[0].Month, "most recent period first")

	// Unknown ticker yields an empty result, not an error
	rows, err = store.GetMonthlyReports(ctx, models.ReportQuery{Ticker: "NOEXIST", Limit: 200})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTickerPeriodsCap(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()
	ctx := testContext()

	seed(t, mgr, "monthly_reports", monthlyRow("INFY.NS", "2023-12", 1.0))
	seed(t, mgr, "monthly_reports", monthlyRow("INFY.NS", "2024-01", 2.0))
	seed(t, mgr, "monthly_reports", monthlyRow("INFY.NS", "2024-02", 3.0))

	rows, err := store.GetMonthlyReports(ctx, models.ReportQuery{Ticker: "INFY.NS", Limit: 200, Periods: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-02", rows[0].Month)
	assert.Equal(t, "2024-01", rows[1].Month)
}

func TestMonthlyReportResolvesLatestMonth(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()
	ctx := testContext()

	seed(t, mgr, "monthly_reports", monthlyRow("RELIANCE.NS", "2024-01-31", 2.4))
	seed(t, mgr, "monthly_reports", monthlyRow("TCS.NS", "2024-01-31", 1.1))
	seed(t, mgr, "monthly_reports", monthlyRow("RELIANCE.NS", "2024-02-29", -0.8))

	rows, err := store.GetMonthlyReports(ctx, models.ReportQuery{Limit: 200})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-02-29", rows[0].Month)
	assert.Equal(t, "RELIANCE.NS", rows[0].Ticker)
}

func TestEmptyTableYieldsNoRows(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()

	rows, err := store.GetWeeklyReports(testContext(), models.ReportQuery{Limit: 200})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSeasonalityTableOrdering(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()
	ctx := testContext()

	seed(t, mgr, "seasonality", seasonalityRow("RELIANCE.NS", 7))
	seed(t, mgr, "seasonality", seasonalityRow("TCS.NS", 9))
	seed(t, mgr, "seasonality", seasonalityRow("INFY.NS", 5))

	rows, err := store.GetSeasonality(ctx, 200)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "TCS.NS", rows[0].Ticker)
	assert.Equal(t, 9, rows[0].PositiveMonths)
	assert.Equal(t, "INFY.NS", rows[2].Ticker)
}

func TestTickerSeasonalityLookup(t *testing.T) {
	mgr := testManager(t)
	store := mgr.ReportStore()
	ctx := testContext()

	seed(t, mgr, "seasonality", seasonalityRow("TCS.NS", 9))

	// Lowercase bare symbol resolves through normalization plus the
	// suffix retry
	rec, err := store.GetTickerSeasonality(ctx, "tcs")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "TCS.NS", rec.Ticker)
	assert.Equal(t, "Dec", rec.BestMonth)
	require.NotNil(t, rec.Dec)
	assert.InDelta(t, 4.8, *rec.Dec, 0.0001)

	// A miss after both lookups is ErrNoData
	_, err = store.GetTickerSeasonality(ctx, "NOEXIST")
	assert.ErrorIs(t, err, models.ErrNoData)
}
