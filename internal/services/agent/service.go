// Package agent proxies analysis requests to the multi-agent service
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/interfaces"
	"github.com/rathishpadman/stockpulse/internal/models"
)

// ErrUnknownAnalysisType marks a request whose type is outside the fixed
// enumeration. Endpoints translate it to 400.
type ErrUnknownAnalysisType struct {
	Type string
}

func (e *ErrUnknownAnalysisType) Error() string {
	return fmt.Sprintf("unknown analysis type %q (expected weekly, monthly or seasonality)", e.Type)
}

// Service implements AgentService. Validation happens here; the single
// bounded outbound call happens in the client. Caching, if any, lives in
// the external service.
type Service struct {
	client interfaces.AgentsClient
	logger *common.Logger
}

// NewService creates a new agent proxy service
func NewService(client interfaces.AgentsClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Analyze validates the request, performs one downstream call, and wraps
// the verbatim payload with provenance metadata.
func (s *Service) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AgentAnalysis, error) {
	if !models.ValidAnalysisType(req.Type) {
		return nil, &ErrUnknownAnalysisType{Type: req.Type}
	}

	data, err := s.client.FetchAnalysis(ctx, req.Type, req.Ticker, req.Sector)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("type", req.Type).
		Str("ticker", req.Ticker).
		Bool("force_refresh", req.ForceRefresh).
		Msg("Agent analysis fetched")

	return &models.AgentAnalysis{
		Data: data,
		Meta: models.AnalysisMeta{
			Source:    "agents",
			Type:      req.Type,
			FetchedAt: time.Now().UTC(),
		},
	}, nil
}

// Ensure Service implements AgentService
var _ interfaces.AgentService = (*Service)(nil)
