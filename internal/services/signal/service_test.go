package signal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/interfaces"
	"github.com/rathishpadman/stockpulse/internal/models"
)

type stubStore struct {
	lastQuery models.ReportQuery
	rows      []models.StockSnapshot
	err       error
}

func (s *stubStore) GetDailyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error) {
	s.lastQuery = q
	return s.rows, s.err
}

func (s *stubStore) GetWeeklyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error) {
	return nil, nil
}

func (s *stubStore) GetMonthlyReports(ctx context.Context, q models.ReportQuery) ([]models.StockSnapshot, error) {
	return nil, nil
}

func (s *stubStore) GetSeasonality(ctx context.Context, limit int) ([]models.SeasonalityRecord, error) {
	return nil, nil
}

func (s *stubStore) GetTickerSeasonality(ctx context.Context, ticker string) (*models.SeasonalityRecord, error) {
	return nil, models.ErrNoData
}

type stubManager struct {
	store *stubStore
}

func (m *stubManager) ReportStore() interfaces.ReportStore { return m.store }
func (m *stubManager) Close() error                        { return nil }

func fptr(v float64) *float64 { return &v }

func TestScan_ClassifiesLatestSnapshots(t *testing.T) {
	store := &stubStore{
		rows: []models.StockSnapshot{
			{Ticker: "RELIANCE", TradeDate: "2024-02-29", RSI14: fptr(78)},
			{Ticker: "INFY", TradeDate: "2024-02-29", RSI14: fptr(22)},
			{Ticker: "HDFCBANK", TradeDate: "2024-02-29", ADX14: fptr(31)},
		},
	}
	svc := NewService(&stubManager{store: store}, common.NewSilentLogger())

	report, err := svc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Universe)
	assert.Equal(t, "2024-02-29", report.TradeDate)
	assert.False(t, report.GeneratedAt.IsZero())
	// Latest-period query, no ticker filter
	assert.Empty(t, store.lastQuery.Ticker)
	assert.Equal(t, scanUniverse, store.lastQuery.Limit)

	byKey := map[string][]models.StockSnapshot{}
	for _, b := range report.Buckets {
		byKey[b.Key] = b.Stocks
	}
	require.Len(t, byKey["rsi_overbought"], 1)
	assert.Equal(t, "RELIANCE", byKey["rsi_overbought"][0].Ticker)
	require.Len(t, byKey["rsi_oversold"], 1)
	assert.Equal(t, "INFY", byKey["rsi_oversold"][0].Ticker)
	require.Len(t, byKey["strong_trend"], 1)
	assert.Equal(t, "HDFCBANK", byKey["strong_trend"][0].Ticker)
}

func TestScan_EmptyUniverse(t *testing.T) {
	svc := NewService(&stubManager{store: &stubStore{}}, common.NewSilentLogger())

	report, err := svc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Universe)
	assert.Empty(t, report.TradeDate)
	for _, b := range report.Buckets {
		assert.Empty(t, b.Stocks)
	}
}

func TestScan_StoreError(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	svc := NewService(&stubManager{store: store}, common.NewSilentLogger())

	_, err := svc.Scan(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}
