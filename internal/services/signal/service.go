// Package signal provides the technical-signal scan service
package signal

import (
	"context"
	"fmt"
	"time"

	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/interfaces"
	"github.com/rathishpadman/stockpulse/internal/models"
	"github.com/rathishpadman/stockpulse/internal/signals"
)

// scanUniverse bounds how many latest-day rows feed one scan.
const scanUniverse = 500

// Service implements SignalService. Each scan classifies the latest daily
// snapshots fresh; nothing is cached or updated incrementally.
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new signal service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Scan fetches the latest daily snapshots and classifies them into the
// fixed signal buckets.
func (s *Service) Scan(ctx context.Context) (*models.SignalReport, error) {
	snapshots, err := s.storage.ReportStore().GetDailyReports(ctx, models.ReportQuery{
		Limit: scanUniverse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots for signal scan: %w", err)
	}

	report := &models.SignalReport{
		GeneratedAt: time.Now().UTC(),
		Universe:    len(snapshots),
		Buckets:     signals.Classify(snapshots),
	}
	if len(snapshots) > 0 {
		report.TradeDate = snapshots[0].TradeDate
	}

	s.logger.Debug().
		Int("universe", report.Universe).
		Str("trade_date", report.TradeDate).
		Msg("Signal scan complete")

	return report, nil
}

// Ensure Service implements SignalService
var _ interfaces.SignalService = (*Service)(nil)
