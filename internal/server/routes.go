package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/rathishpadman/stockpulse/internal/common"
)

// registerRoutes sets up all API routes.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Screening reports
	mux.HandleFunc("/api/reports/daily", s.handleDailyReport)
	mux.HandleFunc("/api/reports/weekly", s.handleWeeklyReport)
	mux.HandleFunc("/api/reports/monthly", s.handleMonthlyReport)

	// Seasonality table and per-ticker lookup
	mux.HandleFunc("/api/seasonality", s.handleSeasonality)
	mux.HandleFunc("/api/seasonality/", s.routeSeasonality)

	// Signal scanner
	mux.HandleFunc("/api/signals", s.handleSignals)

	// Agent analysis proxy
	mux.HandleFunc("/api/agent/analysis", s.handleAgentAnalysis)
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

// routeSeasonality dispatches /api/seasonality/{ticker}.
func (s *Server) routeSeasonality(w http.ResponseWriter, r *http.Request) {
	ticker := PathParam(r, "/api/seasonality/", "")
	if ticker == "" || strings.Contains(ticker, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	s.handleTickerSeasonality(w, r, ticker)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleConfig returns a sanitized view of the runtime configuration.
// Credentials never leave the process.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment": s.config.Environment,
		"server": map[string]interface{}{
			"host": s.config.Server.Host,
			"port": s.config.Server.Port,
		},
		"storage": map[string]interface{}{
			"address":   s.config.Storage.Address,
			"namespace": s.config.Storage.Namespace,
			"database":  s.config.Storage.Database,
		},
		"clients": map[string]interface{}{
			"agents": map[string]interface{}{
				"base_url": s.config.Clients.Agents.BaseURL,
				"timeout":  s.config.Clients.Agents.Timeout,
			},
		},
		"logging": map[string]interface{}{
			"level":  s.config.Logging.Level,
			"format": s.config.Logging.Format,
		},
	})
}
