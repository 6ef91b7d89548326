package data

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	sdb "github.com/surrealdb/surrealdb.go"

	"github.com/rathishpadman/stockpulse/internal/common"
	surrealdb "github.com/rathishpadman/stockpulse/internal/storage/surrealdb"
	tcommon "github.com/rathishpadman/stockpulse/tests/common"
)

// testManager creates a storage manager connected to the shared SurrealDB
// container with a unique database per test for isolation.
func testManager(t *testing.T) *surrealdb.Manager {
	t.Helper()

	sc := tcommon.StartSurrealDB(t)

	cfg := &common.Config{
		Environment: "test",
		Storage: common.StorageConfig{
			Address:   sc.Address(),
			Namespace: "stockpulse_data_test",
			Database:  fmt.Sprintf("d_%s_%d", strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()), time.Now().UnixNano()%100000),
			Username:  "root",
			Password:  "root",
		},
	}

	logger := common.NewSilentLogger()
	mgr, err := surrealdb.NewManager(logger, cfg)
	if err != nil {
		t.Fatalf("create storage manager: %v", err)
	}

	t.Cleanup(func() {
		mgr.Close()
	})

	return mgr
}

// testContext returns a background context.
func testContext() context.Context {
	return context.Background()
}

// seed inserts one row into the given table. The report tables are owned
// by the upstream pipeline in production, so tests write through the raw
// connection rather than the store.
func seed(t *testing.T, mgr *surrealdb.Manager, table string, row map[string]any) {
	t.Helper()

	sql := fmt.Sprintf("CREATE %s CONTENT $row", table)
	if _, err := sdb.Query[any](testContext(), mgr.DB(), sql, map[string]any{"row": row}); err != nil {
		t.Fatalf("seed %s: %v", table, err)
	}
}

func dailyRow(ticker, tradeDate string, compositeScore, rsi float64) map[string]any {
	return map[string]any{
		"ticker":          ticker,
		"trade_date":      tradeDate,
		"price":           2950.0,
		"return_pct":      1.2,
		"rsi_14":          rsi,
		"composite_score": compositeScore,
	}
}

func monthlyRow(ticker, month string, returnPct float64) map[string]any {
	return map[string]any{
		"ticker":          ticker,
		"month":           month,
		"return_pct":      returnPct,
		"composite_score": 50.0,
	}
}

func seasonalityRow(ticker string, positiveMonths int) map[string]any {
	return map[string]any{
		"ticker":          ticker,
		"jan":             2.1,
		"feb":             -0.4,
		"dec":             4.8,
		"best_month":      "Dec",
		"worst_month":     "Feb",
		"positive_months": positiveMonths,
	}
}
