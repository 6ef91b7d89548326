package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/rathishpadman/stockpulse/internal/clients/agents"
	"github.com/rathishpadman/stockpulse/internal/interfaces"
	"github.com/rathishpadman/stockpulse/internal/models"
	agentsvc "github.com/rathishpadman/stockpulse/internal/services/agent"
)

// reportOptions extracts the shared query parameters for report endpoints.
// periodParam names the per-table row-count parameter (weeks/months);
// empty means the endpoint has no period cap.
func reportOptions(r *http.Request, periodParam string) interfaces.ReportOptions {
	opts := interfaces.ReportOptions{
		Ticker:  r.URL.Query().Get("ticker"),
		Limit:   QueryInt(r, "limit", 0),
		OrderBy: r.URL.Query().Get("order_by"),
	}
	if periodParam != "" {
		opts.Periods = QueryInt(r, periodParam, 0)
	}
	return opts
}

func (s *Server) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	s.serveReport(w, r, "", s.reports.GetDailyReport)
}

func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	s.serveReport(w, r, "weeks", s.reports.GetWeeklyReport)
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	s.serveReport(w, r, "months", s.reports.GetMonthlyReport)
}

func (s *Server) serveReport(w http.ResponseWriter, r *http.Request, periodParam string, fetch func(context.Context, interfaces.ReportOptions) ([]models.StockSnapshot, error)) {
	rows, err := fetch(r.Context(), reportOptions(r, periodParam))
	if err != nil {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Report query failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []models.StockSnapshot{}
	}
	WriteJSON(w, http.StatusOK, rows)
}

func (s *Server) handleSeasonality(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	rows, err := s.reports.GetSeasonality(r.Context(), QueryInt(r, "limit", 0))
	if err != nil {
		s.logger.Error().Err(err).Msg("Seasonality query failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []models.SeasonalityRecord{}
	}
	WriteJSON(w, http.StatusOK, rows)
}

// handleTickerSeasonality looks up one ticker. A miss is not an error for
// the dashboard: it renders the empty state off a null body, so ErrNoData
// maps to 200 with a null payload.
func (s *Server) handleTickerSeasonality(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	rec, err := s.reports.GetTickerSeasonality(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, models.ErrNoData) {
			WriteJSON(w, http.StatusOK, nil)
			return
		}
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Seasonality lookup failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}

func (s *Server) handleSignals(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	report, err := s.signals.Scan(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Signal scan failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, report)
}

// handleAgentAnalysis proxies to the agent service. GET takes query
// parameters; POST takes a JSON body with the same fields.
func (s *Server) handleAgentAnalysis(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	var req models.AnalysisRequest
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req = models.AnalysisRequest{
			Type:         q.Get("type"),
			Ticker:       q.Get("ticker"),
			Sector:       q.Get("sector"),
			ForceRefresh: q.Get("force_refresh") == "true",
		}
	case http.MethodPost:
		if !DecodeJSON(w, r, &req) {
			return
		}
	}

	result, err := s.agent.Analyze(r.Context(), req)
	if err != nil {
		s.writeAgentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// writeAgentError maps agent proxy failures onto HTTP statuses. Upstream
// status errors pass through verbatim so the dashboard sees exactly what
// the agent service returned.
func (s *Server) writeAgentError(w http.ResponseWriter, err error) {
	var unknownType *agentsvc.ErrUnknownAnalysisType
	if errors.As(err, &unknownType) {
		WriteError(w, http.StatusBadRequest, unknownType.Error())
		return
	}

	if errors.Is(err, agents.ErrTimeout) {
		s.logger.Error().Err(err).Msg("Agent analysis timed out")
		WriteError(w, http.StatusGatewayTimeout, "Agent analysis timed out")
		return
	}

	var statusErr *agents.StatusError
	if errors.As(err, &statusErr) {
		s.logger.Error().
			Int("upstream_status", statusErr.StatusCode).
			Str("upstream_path", statusErr.Path).
			Msg("Agent service returned error")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusErr.StatusCode)
		w.Write(statusErr.Body)
		return
	}

	s.logger.Error().Err(err).Msg("Agent analysis failed")
	WriteError(w, http.StatusInternalServerError, "Agent analysis failed")
}
